/*
   Copyright 2025 The DIRPX Authors

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

// Package nepali renders calendar values for display: Devanagari and
// romanized month, weekday and numeral forms, and full date formatting.
//
// The package is pure presentation. It owns no calendar semantics — month
// lengths, validation and conversion live in pcore/calendar — and none of
// its functions consult external state, so everything here is safe for
// concurrent use. Display names are deliberately separate from the
// canonical lowercase names that the calendar types use for serialization:
// changing how a date looks must never change how it round-trips.
package nepali

import "strconv"

// DigitMap maps each decimal digit 0 through 9, by index, to the string
// that renders it. Transliteration is a pure function of the digit map
// passed in, so alternative scripts need only a different map, not new
// code.
type DigitMap [10]string

// Devanagari maps decimal digits to Devanagari numerals, the script used
// for Nepali.
var Devanagari = DigitMap{"०", "१", "२", "३", "४", "५", "६", "७", "८", "९"}

// Numeral renders n using the given digit map, digit by digit. A negative
// n keeps its leading minus sign. Numeral(2082, Devanagari) is "२०८२".
func Numeral(n int, digits DigitMap) string {
	s := strconv.Itoa(n)
	out := make([]byte, 0, len(s)*3)
	for _, c := range s {
		if c == '-' {
			out = append(out, '-')
			continue
		}
		out = append(out, digits[c-'0']...)
	}
	return string(out)
}
