/*
Copyright 2025 Langmatch Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package langid provides the language identifier value type consumed by the
// language matcher, together with parsing and likely-subtags maximization.
//
// A language identifier is the language-script-region core of a BCP 47
// language tag, as used by the CLDR language matching data (UTS #35,
// Part 1, Section 3): a mandatory primary language subtag plus optional
// script and region subtags. Variants, extensions, and private-use subtags
// are deliberately outside this package's vocabulary; the matching algorithm
// never consults them.
//
// # Key Features
//
//   - Transparent Value Type: LanguageID is a plain comparable struct, safe
//     to copy, compare, and use as a map key.
//   - Strict Subset Parsing: Parse accepts exactly the
//     language[-script][-region] shape, with case normalization per RFC 5646
//     conventions, and rejects everything else.
//   - Maximization: the Expander interface models the likely-subtags
//     expansion required by the matching algorithm; LikelySubtags implements
//     it on top of the golang.org/x/text CLDR data.
package langid

import (
	"errors"
	"strings"
)

// Errors that can occur while parsing a language identifier.
var (
	ErrEmptyIdentifier = errors.New("a language identifier must not be empty")
	ErrInvalidLanguage = errors.New("the primary language subtag is invalid")
	ErrInvalidScript   = errors.New("the script subtag must be four letters")
	ErrInvalidRegion   = errors.New("the region subtag must be two letters or three digits")
	ErrTrailingSubtags = errors.New("unexpected subtags after the region subtag")
)

// Subtag length constants per RFC 5646, Section 2.2.
const (
	minLanguageLen   = 2 // Shortest primary language subtag (ISO 639-1).
	maxLanguageLen   = 8 // Longest primary language subtag allowed by syntax.
	scriptLen        = 4 // A script subtag is always 4 letters.
	regionAlphaLen   = 2 // An alphabetic region subtag is always 2 letters.
	regionNumericLen = 3 // A numeric region subtag is always 3 digits.
)

// LanguageID is the language-script-region core of a language tag. The zero
// value of a subtag field is the empty string, meaning the subtag is absent.
// A zero LanguageID is not a valid identifier: the language subtag is
// mandatory.
type LanguageID struct {
	Language string
	Script   string
	Region   string
}

// Parse parses the language[-script][-region] subset of a BCP 47 language
// tag. Subtags may be separated by '-' or '_' (CLDR data uses underscores),
// and input case is irrelevant: subtags are normalized to the conventional
// case on output (language lowercase, script titlecase, region uppercase).
//
// Subtags beyond the region, such as variants or extensions, are rejected
// with ErrTrailingSubtags rather than silently dropped.
func Parse(s string) (LanguageID, error) {
	if s == "" {
		return LanguageID{}, ErrEmptyIdentifier
	}

	subtags := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '_' })
	if len(subtags) == 0 {
		return LanguageID{}, ErrEmptyIdentifier
	}

	lang := subtags[0]
	if len(lang) < minLanguageLen || len(lang) > maxLanguageLen || !isAlphabetic(lang) {
		return LanguageID{}, ErrInvalidLanguage
	}
	id := LanguageID{Language: strings.ToLower(lang)}

	rest := subtags[1:]
	if len(rest) > 0 && len(rest[0]) == scriptLen && isAlphabetic(rest[0]) {
		id.Script = titlecase(rest[0])
		rest = rest[1:]
	}
	if len(rest) > 0 && isRegion(rest[0]) {
		id.Region = strings.ToUpper(rest[0])
		rest = rest[1:]
	}
	if len(rest) > 0 {
		// A well-formed but unconsumed subtag: either a malformed
		// script/region or something past this package's vocabulary.
		if id.Script == "" && len(rest[0]) == scriptLen {
			return LanguageID{}, ErrInvalidScript
		}
		if id.Region == "" && (len(rest[0]) == regionAlphaLen || len(rest[0]) == regionNumericLen) {
			return LanguageID{}, ErrInvalidRegion
		}
		return LanguageID{}, ErrTrailingSubtags
	}

	return id, nil
}

// String returns the canonical hyphen-separated form of the identifier.
// It implements the fmt.Stringer interface.
func (id LanguageID) String() string {
	var builder strings.Builder
	builder.Grow(len(id.Language) + len(id.Script) + len(id.Region) + 2)
	builder.WriteString(id.Language)
	if id.Script != "" {
		builder.WriteByte('-')
		builder.WriteString(id.Script)
	}
	if id.Region != "" {
		builder.WriteByte('-')
		builder.WriteString(id.Region)
	}
	return builder.String()
}

// IsMaximized reports whether all three subtags are populated, which is the
// precondition for entering distance computation.
func (id LanguageID) IsMaximized() bool {
	return id.Language != "" && id.Script != "" && id.Region != ""
}
