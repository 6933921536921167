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

package matcher

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Errors that can occur while loading or compiling language matching data.
var (
	ErrNoMatchData        = errors.New("the data contains no languageMatches element")
	ErrNoRules            = errors.New("the data contains no languageMatch rules")
	ErrInvalidVariable    = errors.New("a matchVariable is malformed")
	ErrDuplicateVariable  = errors.New("the same matchVariable id appears more than once")
	ErrUndefinedVariable  = errors.New("a pattern references an undefined variable")
	ErrEmptyPattern       = errors.New("a pattern subtag slot must not be empty")
	ErrInvalidPattern     = errors.New("a pattern string is malformed")
	ErrDistanceOutOfRange = errors.New("a rule distance must be between 0 and 100")
	ErrMissingFallback    = errors.New("the rule table lacks a universal wildcard fallback rule")
)

// matchTypeWrittenNew identifies the enhanced written-language matching rule
// set within the CLDR supplemental data. When several languageMatches
// elements are present, this is the one the matcher consumes.
const matchTypeWrittenNew = "written_new"

// variableValueSeparator joins the subtag values of a matchVariable.
const variableValueSeparator = "+"

// MatchData holds the language matching rule set parsed from the CLDR
// languageInfo.xml supplemental data (UTS #35, Part 1, Section 4.4,
// "Enhanced Language Matching"). It is the raw, uncompiled form; pass it to
// NewMatcherFromData to obtain a usable Matcher.
type MatchData struct {
	// ParadigmLocales lists the locales singled out for the paradigm
	// distance discount, as written in the data (not yet maximized).
	ParadigmLocales []string
	// Variables lists the named subtag sets referenced by rule patterns,
	// in document order.
	Variables []MatchVariable
	// Rules lists the match rules in document order. Order is significant:
	// it encodes specificity priority and must not be re-sorted.
	Rules []MatchRule
}

// MatchVariable is a named set of subtag values, e.g. id "$enUS" with value
// "AS+CA+GU+US+...". The id keeps its '$' sigil as written in the data.
type MatchVariable struct {
	ID    string
	Value string
}

// MatchRule is one languageMatch entry in its raw string form. Desired and
// Supported use '_'-separated subtag slots where '*' means any subtag, a
// leading '$' a variable reference, and a leading '$!' a negated variable
// reference.
type MatchRule struct {
	Desired   string
	Supported string
	Distance  int
	OneWay    bool
}

// XML schema of the languageInfo.xml fragment the matcher consumes.
type xmlSupplementalData struct {
	XMLName          xml.Name            `xml:"supplementalData"`
	LanguageMatching xmlLanguageMatching `xml:"languageMatching"`
}

type xmlLanguageMatching struct {
	Matches []xmlLanguageMatches `xml:"languageMatches"`
}

type xmlLanguageMatches struct {
	Type            string             `xml:"type,attr"`
	ParadigmLocales []xmlParadigm      `xml:"paradigmLocales"`
	Variables       []xmlMatchVariable `xml:"matchVariable"`
	Rules           []xmlLanguageMatch `xml:"languageMatch"`
}

type xmlParadigm struct {
	Locales string `xml:"locales,attr"`
}

type xmlMatchVariable struct {
	ID    string `xml:"id,attr"`
	Value string `xml:"value,attr"`
}

type xmlLanguageMatch struct {
	Desired   string `xml:"desired,attr"`
	Supported string `xml:"supported,attr"`
	Distance  int    `xml:"distance,attr"`
	OneWay    bool   `xml:"oneway,attr"`
}

// ParseLanguageInfo reads CLDR languageInfo.xml data from the given reader
// and returns the language matching rule set. When the data carries several
// languageMatches elements, the "written_new" one is selected; otherwise the
// first element is used.
//
// Only document syntax and variable declarations are checked here; pattern
// compilation and structural validation of the rule table happen in
// NewMatcherFromData.
func ParseLanguageInfo(r io.Reader) (*MatchData, error) {
	var doc xmlSupplementalData
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode languageInfo data: %w", err)
	}

	matches, err := selectMatches(doc.LanguageMatching.Matches)
	if err != nil {
		return nil, err
	}

	data := &MatchData{}
	for _, p := range matches.ParadigmLocales {
		data.ParadigmLocales = append(data.ParadigmLocales, strings.Fields(p.Locales)...)
	}

	seen := make(map[string]struct{}, len(matches.Variables))
	for _, v := range matches.Variables {
		if err := validateVariable(v.ID, v.Value); err != nil {
			return nil, err
		}
		if _, dup := seen[v.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateVariable, v.ID)
		}
		seen[v.ID] = struct{}{}
		data.Variables = append(data.Variables, MatchVariable{ID: v.ID, Value: v.Value})
	}

	if len(matches.Rules) == 0 {
		return nil, ErrNoRules
	}
	data.Rules = make([]MatchRule, 0, len(matches.Rules))
	for _, rule := range matches.Rules {
		data.Rules = append(data.Rules, MatchRule{
			Desired:   rule.Desired,
			Supported: rule.Supported,
			Distance:  rule.Distance,
			OneWay:    rule.OneWay,
		})
	}
	return data, nil
}

// selectMatches picks the languageMatches element to consume.
func selectMatches(all []xmlLanguageMatches) (*xmlLanguageMatches, error) {
	if len(all) == 0 {
		return nil, ErrNoMatchData
	}
	for i := range all {
		if all[i].Type == matchTypeWrittenNew {
			return &all[i], nil
		}
	}
	return &all[0], nil
}

// validateVariable checks that a matchVariable declaration is well-formed:
// an id of the form "$name" and a non-empty '+'-separated value list.
func validateVariable(id, value string) error {
	if len(id) < 2 || !strings.HasPrefix(id, variableSigil) {
		return fmt.Errorf("%w: id %q must have the form $name", ErrInvalidVariable, id)
	}
	if value == "" {
		return fmt.Errorf("%w: %s has an empty value", ErrInvalidVariable, id)
	}
	for _, val := range strings.Split(value, variableValueSeparator) {
		if val == "" {
			return fmt.Errorf("%w: %s contains an empty subtag value", ErrInvalidVariable, id)
		}
	}
	return nil
}
