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

package langid

import (
	"fmt"

	"golang.org/x/text/language"
)

// Unknown-subtag sentinels used by the x/text likely-subtags tables.
const (
	unknownScript = "Zzzz"
	unknownRegion = "ZZ"
)

// Expander fills in the missing script and region subtags of a language
// identifier using likely-subtags inference (UTS #35, Part 1, Section 4.3,
// "Likely Subtags"). The language matcher requires every identifier entering
// distance computation to be maximized through an Expander first.
//
// Implementations must be safe for concurrent use and must guarantee the
// postcondition that the returned identifier has all three subtags populated
// whenever the error is nil.
type Expander interface {
	Maximize(id LanguageID) (LanguageID, error)
}

// LikelySubtags is an Expander backed by the CLDR likely-subtags data
// shipped with golang.org/x/text. The zero value is ready to use and safe
// for concurrent use.
//
// Maximization may canonicalize deprecated subtags along the way (for
// example "iw" becomes "he"), following the x/text canonicalization rules.
type LikelySubtags struct{}

// Maximize returns a copy of id with the script and region subtags filled in
// from the likely-subtags data. It returns an error if the identifier does
// not name a known language or if no likely script and region exist for the
// given combination of subtags.
func (LikelySubtags) Maximize(id LanguageID) (LanguageID, error) {
	if id.Language == "" {
		return LanguageID{}, ErrEmptyIdentifier
	}

	tag, err := language.Parse(id.String())
	if err != nil {
		return LanguageID{}, fmt.Errorf("cannot maximize %q: %w", id.String(), err)
	}

	base, _ := tag.Base()
	script, _ := tag.Script()
	region, _ := tag.Region()

	max := LanguageID{
		Language: base.String(),
		Script:   script.String(),
		Region:   region.String(),
	}
	if max.Script == unknownScript || max.Region == unknownRegion {
		return LanguageID{}, fmt.Errorf("no likely subtags known for %q", id.String())
	}
	return max, nil
}
