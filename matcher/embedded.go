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
	"bytes"
	_ "embed" // Note the blank import for go:embed
	"errors"
)

//go:embed languageInfo.xml
var embeddedLanguageInfo []byte

// embeddedMatchData parses the CLDR language matching data embedded in the
// library.
func embeddedMatchData() (*MatchData, error) {
	if len(embeddedLanguageInfo) == 0 {
		return nil, errors.New("embedded languageInfo.xml file is empty or not found")
	}
	return ParseLanguageInfo(bytes.NewReader(embeddedLanguageInfo))
}
