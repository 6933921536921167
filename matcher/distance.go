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

import "github.com/jplu/langmatch/langid"

// distance runs the three-pass decomposition over two maximized
// identifiers: score the region difference, erase regions, score the script
// difference, erase scripts, score the language difference. The erasure
// order is load-bearing: rules with absent script/region slots only become
// eligible in the later passes, and an identifier with a cleared subtag is
// no longer a paradigm locale.
//
// Both parameters are received by value, so clearing subtags here never
// touches the caller's identifiers.
func (m *Matcher) distance(desired, supported langid.LanguageID) int {
	if !desired.IsMaximized() || !supported.IsMaximized() {
		panic("matcher: distance requires maximized language identifiers")
	}

	total := 0

	if desired.Region != supported.Region {
		total += m.lookup(desired, supported)
	}
	desired.Region, supported.Region = "", ""

	if desired.Script != supported.Script {
		total += m.lookup(desired, supported)
	}
	desired.Script, supported.Script = "", ""

	if desired.Language != supported.Language {
		total += m.lookup(desired, supported)
	}

	return total
}

// lookup scans the rule table in order and returns the distance of the
// first rule matching the pair. A rule that is not one-way is also tried
// with desired and supported swapped. The matched rule's distance is scaled
// by 10, minus 1 when exactly one of the two identifiers is a paradigm
// locale.
//
// Construction guarantees a universal fallback rule, so the scan cannot run
// off the end of a table a Matcher was actually built from; the panic is a
// defensive invariant check.
func (m *Matcher) lookup(desired, supported langid.LanguageID) int {
	for i := range m.rules {
		rule := &m.rules[i]
		matched := rule.desired.matches(desired, m.vars) && rule.supported.matches(supported, m.vars)
		if !matched && !rule.oneWay {
			matched = rule.supported.matches(desired, m.vars) && rule.desired.matches(supported, m.vars)
		}
		if !matched {
			continue
		}
		d := rule.distance * distanceScale
		if m.isParadigm(desired) != m.isParadigm(supported) {
			d--
		}
		return d
	}
	panic("matcher: no rule matched; the rule table lost its universal fallback")
}
