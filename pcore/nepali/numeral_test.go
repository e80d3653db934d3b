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

package nepali

import "testing"

func TestNumeralDevanagari(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "०"},
		{7, "७"},
		{25, "२५"},
		{2082, "२०८२"},
		{1234567890, "१२३४५६७८९०"},
		{-42, "-४२"},
	}

	for _, tt := range tests {
		if got := Numeral(tt.n, Devanagari); got != tt.want {
			t.Errorf("Numeral(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestNumeralCustomDigitMap(t *testing.T) {
	// The digit map is a parameter, not baked-in state; any script works.
	ascii := DigitMap{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	if got := Numeral(2082, ascii); got != "2082" {
		t.Errorf("Numeral(2082, ascii) = %q, want %q", got, "2082")
	}
}
