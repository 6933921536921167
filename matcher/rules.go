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
	"fmt"
	"strings"

	"github.com/jplu/langmatch/langid"
)

// Pattern-string syntax constants (UTS #35, languageMatch element).
const (
	subtagSeparator = "_"
	wildcardSubtag  = "*"
	variableSigil   = "$"
	excludeSigil    = "$!"
	maxPatternSlots = 3 // language, script, region
)

// subtagKind enumerates the closed set of subtag pattern forms. The set is
// fixed by the data format; matching dispatches with an exhaustive switch.
type subtagKind uint8

const (
	subtagAbsent          subtagKind = iota // No pattern: matches only an absent subtag.
	subtagAny                               // "*": matches presence and absence alike.
	subtagLiteral                           // A literal subtag value.
	subtagVariable                          // "$name": membership in a named variable set.
	subtagVariableExclude                   // "$!name": non-membership in a named variable set.
)

// subtagPattern matches a single subtag slot. value holds the literal text
// for subtagLiteral and the variable name (without sigil) for the variable
// kinds; it is empty otherwise.
type subtagPattern struct {
	kind  subtagKind
	value string
}

// variables maps a variable name (without its '$' sigil) to the set of
// subtag values it stands for. Built once at construction, read-only after.
type variables map[string]map[string]struct{}

// matches reports whether the pattern accepts the given subtag, where the
// empty string means the subtag is absent.
func (p subtagPattern) matches(subtag string, vars variables) bool {
	switch p.kind {
	case subtagAbsent:
		return subtag == ""
	case subtagAny:
		return true
	case subtagLiteral:
		return subtag == p.value
	case subtagVariable:
		if subtag == "" {
			return false
		}
		_, ok := vars[p.value][subtag]
		return ok
	case subtagVariableExclude:
		if subtag == "" {
			return false
		}
		_, ok := vars[p.value][subtag]
		return !ok
	default:
		return false
	}
}

// tagPattern matches a whole language identifier: one subtag pattern per
// slot. The language slot is always present; absent script/region slots
// match only identifiers whose corresponding subtag is absent.
type tagPattern struct {
	language subtagPattern
	script   subtagPattern
	region   subtagPattern
}

// matches reports whether the pattern accepts the identifier. It is the
// conjunction of the three per-slot matches.
func (p tagPattern) matches(id langid.LanguageID, vars variables) bool {
	return p.language.matches(id.Language, vars) &&
		p.script.matches(id.Script, vars) &&
		p.region.matches(id.Region, vars)
}

// isCatchAll reports whether every slot is the "*" wildcard. Such a pattern
// matches any identifier regardless of which subtags are present, since the
// wildcard accepts absent subtags too.
func (p tagPattern) isCatchAll() bool {
	return p.language.kind == subtagAny &&
		p.script.kind == subtagAny &&
		p.region.kind == subtagAny
}

// matchRule is a compiled languageMatch entry: a desired-side and a
// supported-side pattern, a base distance, and the one-way flag.
type matchRule struct {
	desired   tagPattern
	supported tagPattern
	distance  int
	oneWay    bool
}

// compileSubtagPattern parses one slot of a pattern string.
func compileSubtagPattern(s string, vars variables) (subtagPattern, error) {
	switch {
	case s == "":
		return subtagPattern{}, ErrEmptyPattern
	case s == wildcardSubtag:
		return subtagPattern{kind: subtagAny}, nil
	case strings.HasPrefix(s, excludeSigil):
		name := s[len(excludeSigil):]
		if _, ok := vars[name]; !ok {
			return subtagPattern{}, fmt.Errorf("%w: %s", ErrUndefinedVariable, s)
		}
		return subtagPattern{kind: subtagVariableExclude, value: name}, nil
	case strings.HasPrefix(s, variableSigil):
		name := s[len(variableSigil):]
		if _, ok := vars[name]; !ok {
			return subtagPattern{}, fmt.Errorf("%w: %s", ErrUndefinedVariable, s)
		}
		return subtagPattern{kind: subtagVariable, value: name}, nil
	default:
		return subtagPattern{kind: subtagLiteral, value: s}, nil
	}
}

// compileTagPattern parses a full pattern string such as "en_*_$enUS" into a
// tagPattern. Between one and three '_'-separated slots are allowed; missing
// slots compile to the absent pattern.
func compileTagPattern(s string, vars variables) (tagPattern, error) {
	slots := strings.Split(s, subtagSeparator)
	if len(slots) > maxPatternSlots {
		return tagPattern{}, fmt.Errorf("%w: %q has more than %d subtag slots", ErrInvalidPattern, s, maxPatternSlots)
	}

	var pattern tagPattern
	for i, slot := range slots {
		sub, err := compileSubtagPattern(slot, vars)
		if err != nil {
			return tagPattern{}, fmt.Errorf("%w in pattern %q", err, s)
		}
		switch i {
		case 0:
			pattern.language = sub
		case 1:
			pattern.script = sub
		case 2:
			pattern.region = sub
		}
	}
	return pattern, nil
}
