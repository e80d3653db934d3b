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

package calendar

import (
	"encoding/json"
	"errors"
	"testing"

	perrors "dirpx.dev/patro/pcore/errors"
	"gopkg.in/yaml.v3"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		year         int
		month        int
		day          int
		wantErr      bool
		missingField string
	}{
		{"valid date", 2082, 5, 25, false, ""},
		{"out of range constructs fine", 2099, 1, 1, false, ""},
		{"zero year", 0, 5, 25, true, "Year"},
		{"zero month", 2082, 0, 25, true, "Month"},
		{"zero day", 2082, 5, 0, true, "Day"},
		{"all zero reports year first", 0, 0, 0, true, "Year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.year, tt.month, tt.day)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("New(%d, %d, %d) expected error, got nil", tt.year, tt.month, tt.day)
				}
				var consErr *perrors.ConstructionError
				if !errors.As(err, &consErr) {
					t.Fatalf("error type = %T, want *ConstructionError", err)
				}
				if consErr.Field != tt.missingField {
					t.Errorf("ConstructionError.Field = %q, want %q", consErr.Field, tt.missingField)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%d, %d, %d) unexpected error: %v", tt.year, tt.month, tt.day, err)
			}
			if d.Year != tt.year || int(d.Month) != tt.month || d.Day != tt.day {
				t.Errorf("New(%d, %d, %d) = %v", tt.year, tt.month, tt.day, d)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"canonical", "2082-05-25", Date{2082, Bhadau, 25}, false},
		{"unpadded", "2082-5-25", Date{2082, Bhadau, 25}, false},
		{"epoch", "2000-01-01", Date{2000, Baisakh, 1}, false},
		{"out of range parses", "2099-01-01", Date{2099, Baisakh, 1}, false},
		{"too few parts", "2082-05", Date{}, true},
		{"too many parts", "2082-05-25-01", Date{}, true},
		{"non-numeric", "2082-xx-25", Date{}, true},
		{"empty", "", Date{}, true},
		{"slashes", "2082/05/25", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	tests := []struct {
		date Date
		want string
	}{
		{Date{2082, Bhadau, 25}, "2082-05-25"},
		{Date{2000, Baisakh, 1}, "2000-01-01"},
		{Date{2090, Chaitra, 30}, "2090-12-30"},
		{Date{}, "0000-00-00"},
	}

	for _, tt := range tests {
		if got := tt.date.String(); got != tt.want {
			t.Errorf("Date%v.String() = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestDateValidate(t *testing.T) {
	tests := []struct {
		name    string
		date    Date
		wantErr string
	}{
		{"valid", Date{2082, Bhadau, 25}, ""},
		{"epoch", Date{2000, Baisakh, 1}, ""},
		{"last tabulated day", Date{2090, Chaitra, 30}, ""},
		{"32-day month", Date{2000, Jestha, 32}, ""},
		{"year below range", Date{1999, Baisakh, 1}, "year not in calendar table"},
		{"year above range", Date{2091, Baisakh, 1}, "year not in calendar table"},
		{"month 13", Date{2082, Month(13), 1}, "month must be between 1 and 12"},
		{"month zero", Date{2082, 0, 1}, "month must be between 1 and 12"},
		{"day zero", Date{2082, Bhadau, 0}, "day must be at least 1"},
		{"day 33", Date{2082, Bhadau, 33}, "day exceeds month length"},
		{"day past 31 in 31-day month", Date{2082, Jestha, 33}, "day exceeds month length"},
		{"day 30 in 29-day month", Date{2082, Poush, 30}, "day exceeds month length"},
		{"zero date", Date{}, "year not in calendar table"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.date.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error, got nil")
			}
			var rangeErr *perrors.BSRangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("error type = %T, want *BSRangeError", err)
			}
			if rangeErr.Reason != tt.wantErr {
				t.Errorf("BSRangeError.Reason = %q, want %q", rangeErr.Reason, tt.wantErr)
			}
		})
	}
}

func TestDateCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Date
		want int
	}{
		{"equal", Date{2082, Bhadau, 25}, Date{2082, Bhadau, 25}, 0},
		{"earlier year", Date{2081, Chaitra, 30}, Date{2082, Baisakh, 1}, -1},
		{"later year", Date{2083, Baisakh, 1}, Date{2082, Chaitra, 30}, 1},
		{"earlier month", Date{2082, Shrawan, 25}, Date{2082, Bhadau, 1}, -1},
		{"earlier day", Date{2082, Bhadau, 24}, Date{2082, Bhadau, 25}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
			if got := tt.b.Compare(tt.a); got != -tt.want {
				t.Errorf("reversed Compare() = %d, want %d", got, -tt.want)
			}
			if got := tt.a.Less(tt.b); got != (tt.want < 0) {
				t.Errorf("Less() = %v, want %v", got, tt.want < 0)
			}
		})
	}
}

func TestDateEqual(t *testing.T) {
	d := Date{2082, Bhadau, 25}
	same := Date{2082, Bhadau, 25}
	other := Date{2082, Bhadau, 26}

	if !d.Equal(same) {
		t.Error("Equal(same value) = false, want true")
	}
	if !d.Equal(&same) {
		t.Error("Equal(pointer to same value) = false, want true")
	}
	if d.Equal(other) {
		t.Error("Equal(different value) = true, want false")
	}
	if d.Equal((*Date)(nil)) {
		t.Error("Equal(nil pointer) = true, want false")
	}
	if d.Equal("2082-05-25") {
		t.Error("Equal(string) = true, want false")
	}
}

func TestDateIsZero(t *testing.T) {
	if !(Date{}).IsZero() {
		t.Error("zero Date IsZero() = false, want true")
	}
	if (Date{Year: 2082}).IsZero() {
		t.Error("partial Date IsZero() = true, want false")
	}
}

func TestDateTypeNameAndRedacted(t *testing.T) {
	d := Date{2082, Bhadau, 25}
	if got := d.TypeName(); got != "Date" {
		t.Errorf("TypeName() = %q, want %q", got, "Date")
	}
	if got := d.Redacted(); got != d.String() {
		t.Errorf("Redacted() = %q, want %q", got, d.String())
	}
}

func TestDateJSON(t *testing.T) {
	d := Date{2082, Bhadau, 25}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `"2082-05-25"` {
		t.Errorf("Marshal = %s, want %q", data, `"2082-05-25"`)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if back != d {
		t.Errorf("round-trip = %v, want %v", back, d)
	}
}

func TestDateJSONRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"out-of-range year", `"2099-01-01"`},
		{"day exceeds month", `"2082-05-33"`},
		{"malformed", `"not-a-date"`},
		{"wrong type", `12345`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			if err := json.Unmarshal([]byte(tt.input), &d); err == nil {
				t.Errorf("Unmarshal(%s) expected error, got nil", tt.input)
			}
		})
	}
}

func TestDateMarshalInvalid(t *testing.T) {
	d := Date{2099, Baisakh, 1}
	if _, err := json.Marshal(d); err == nil {
		t.Error("Marshal of out-of-range date expected error, got nil")
	}
	if _, err := yaml.Marshal(d); err == nil {
		t.Error("yaml.Marshal of out-of-range date expected error, got nil")
	}
	if _, err := d.MarshalText(); err == nil {
		t.Error("MarshalText of out-of-range date expected error, got nil")
	}
}

func TestDateYAML(t *testing.T) {
	d := Date{2082, Bhadau, 25}

	data, err := yaml.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var back Date
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if back != d {
		t.Errorf("round-trip = %v, want %v", back, d)
	}

	var bad Date
	if err := yaml.Unmarshal([]byte("2082-05-33"), &bad); err == nil {
		t.Error("Unmarshal of invalid day expected error, got nil")
	}
}

func TestDateText(t *testing.T) {
	d := Date{2082, Bhadau, 25}

	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText error: %v", err)
	}
	if string(text) != "2082-05-25" {
		t.Errorf("MarshalText = %q, want %q", text, "2082-05-25")
	}

	var back Date
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText error: %v", err)
	}
	if back != d {
		t.Errorf("round-trip = %v, want %v", back, d)
	}
}
