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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package langid

import (
	"errors"
	"testing"
)

// mustParse is a test helper that parses an identifier and fails the test if
// an error occurs.
func mustParse(t *testing.T, s string) LanguageID {
	t.Helper()
	id, err := Parse(s)
	if err != nil {
		t.Fatalf("mustParse failed for %q: %v", s, err)
	}
	return id
}

// TestParse_Valid checks the accepted language[-script][-region] shapes.
// RFC 5646, Section 2.1.1 recommends lowercase language, titlecase script,
// and uppercase region subtags; Parse normalizes to that convention
// regardless of input case or separator.
func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  LanguageID
	}{
		{"language only", "en", LanguageID{Language: "en"}},
		{"three letter language", "gsw", LanguageID{Language: "gsw"}},
		{"language and region", "en-US", LanguageID{Language: "en", Region: "US"}},
		{"language and script", "zh-Hans", LanguageID{Language: "zh", Script: "Hans"}},
		{"full identifier", "sr-Latn-RS", LanguageID{Language: "sr", Script: "Latn", Region: "RS"}},
		{"numeric region", "es-419", LanguageID{Language: "es", Region: "419"}},
		{"underscore separators", "pt_BR", LanguageID{Language: "pt", Region: "BR"}},
		{"mixed separators", "zh_Hant-HK", LanguageID{Language: "zh", Script: "Hant", Region: "HK"}},
		{"case normalization", "ZH-hANS-cn", LanguageID{Language: "zh", Script: "Hans", Region: "CN"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

// TestParse_Invalid checks the rejected shapes and the error each produces.
// Variants, extensions, and private-use subtags (RFC 5646, Sections 2.2.4
// through 2.2.7) are outside the matcher's vocabulary and must be rejected,
// not silently dropped.
func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty string", "", ErrEmptyIdentifier},
		{"separators only", "--", ErrEmptyIdentifier},
		{"one letter language", "a", ErrInvalidLanguage},
		{"nine letter language", "abcdefghi", ErrInvalidLanguage},
		{"digits in language", "e1", ErrInvalidLanguage},
		{"digits in script", "en-La1n", ErrInvalidScript},
		{"letters in numeric region", "en-Latn-41x", ErrInvalidRegion},
		{"variant subtag", "sl-rozaj", ErrTrailingSubtags},
		{"extension subtag", "en-US-u-co-phonebk", ErrTrailingSubtags},
		{"subtags after region", "en-Latn-US-GB", ErrTrailingSubtags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) should have failed", tt.input)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

// TestLanguageID_String verifies the canonical hyphenated rendering for each
// combination of present subtags.
func TestLanguageID_String(t *testing.T) {
	tests := []struct {
		name string
		id   LanguageID
		want string
	}{
		{"language only", LanguageID{Language: "ja"}, "ja"},
		{"with script", LanguageID{Language: "zh", Script: "Hant"}, "zh-Hant"},
		{"with region", LanguageID{Language: "en", Region: "GB"}, "en-GB"},
		{"all subtags", LanguageID{Language: "uz", Script: "Cyrl", Region: "UZ"}, "uz-Cyrl-UZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestLanguageID_RoundTrip verifies that String output parses back to the
// same value.
func TestLanguageID_RoundTrip(t *testing.T) {
	for _, s := range []string{"en", "zh-Hans", "en-US", "sr-Latn-RS", "es-419"} {
		id := mustParse(t, s)
		back := mustParse(t, id.String())
		if back != id {
			t.Errorf("round trip of %q: got %+v, want %+v", s, back, id)
		}
	}
}

// TestLanguageID_IsMaximized verifies the maximization predicate used as the
// distance engine's precondition.
func TestLanguageID_IsMaximized(t *testing.T) {
	tests := []struct {
		name string
		id   LanguageID
		want bool
	}{
		{"zero value", LanguageID{}, false},
		{"language only", LanguageID{Language: "en"}, false},
		{"missing region", LanguageID{Language: "zh", Script: "Hans"}, false},
		{"missing script", LanguageID{Language: "en", Region: "US"}, false},
		{"maximized", LanguageID{Language: "en", Script: "Latn", Region: "US"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.IsMaximized(); got != tt.want {
				t.Errorf("IsMaximized() = %v, want %v", got, tt.want)
			}
		})
	}
}
