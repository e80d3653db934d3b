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

package errors

import (
	"testing"
	"time"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			"Month type",
			&ParseError{Type: "Month", Value: "tripe"},
			"patro: invalid Month value: tripe",
		},
		{
			"Date type",
			&ParseError{Type: "Date", Value: "2082/05/25"},
			"patro: invalid Date value: 2082/05/25",
		},
		{
			"NameForm type",
			&ParseError{Type: "NameForm", Value: "bad"},
			"patro: invalid NameForm value: bad",
		},
		{
			"empty value",
			&ParseError{Type: "Weekday", Value: ""},
			"patro: invalid Weekday value: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MarshalError
		want string
	}{
		{
			"invalid month",
			&MarshalError{Type: "Month", Value: 13},
			"patro: cannot marshal invalid Month value: 13",
		},
		{
			"negative weekday",
			&MarshalError{Type: "Weekday", Value: -1},
			"patro: cannot marshal invalid Weekday value: -1",
		},
		{
			"zero",
			&MarshalError{Type: "NameForm", Value: 0},
			"patro: cannot marshal invalid NameForm value: 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UnmarshalError
		want string
	}{
		{
			"empty data",
			&UnmarshalError{Type: "Month", Data: nil, Reason: "empty data"},
			"patro: cannot unmarshal Month: empty data",
		},
		{
			"bad numeric",
			&UnmarshalError{Type: "Date", Data: []byte("17"), Reason: "invalid numeric value"},
			"patro: cannot unmarshal Date: invalid numeric value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("UnmarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			"with field",
			&ValidationError{Type: "Options", Field: "Romanized", Reason: "must not be combined"},
			"patro: invalid Options.Romanized: must not be combined",
		},
		{
			"without field",
			&ValidationError{Type: "NameForm", Reason: "invalid NameForm value"},
			"patro: invalid NameForm: invalid NameForm value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConstructionError_Error(t *testing.T) {
	err := &ConstructionError{Type: "Date", Field: "Month"}
	want := "patro: cannot construct Date: missing Month"
	if got := err.Error(); got != want {
		t.Errorf("ConstructionError.Error() = %q, want %q", got, want)
	}
}

func TestBSRangeError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *BSRangeError
		want string
	}{
		{
			"year below table",
			&BSRangeError{Year: 1999, Month: 5, Day: 25, MinYear: 2000, MaxYear: 2090, Reason: "year not in calendar table"},
			"patro: BS date 1999-05-25 out of range: year not in calendar table (supported years 2000-2090)",
		},
		{
			"invalid month",
			&BSRangeError{Year: 2000, Month: 13, Day: 25, MinYear: 2000, MaxYear: 2090, Reason: "month must be between 1 and 12"},
			"patro: BS date 2000-13-25 out of range: month must be between 1 and 12 (supported years 2000-2090)",
		},
		{
			"day exceeds month",
			&BSRangeError{Year: 2000, Month: 1, Day: 33, MinYear: 2000, MaxYear: 2090, Reason: "day exceeds month length"},
			"patro: BS date 2000-01-33 out of range: day exceeds month length (supported years 2000-2090)",
		},
		{
			"from julian day",
			&BSRangeError{MinYear: 2000, MaxYear: 2090, Reason: "Julian day precedes epoch"},
			"patro: BS date 0-00-00 out of range: Julian day precedes epoch (supported years 2000-2090)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("BSRangeError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestADRangeError_Error(t *testing.T) {
	err := &ADRangeError{
		Date:  time.Date(1942, time.June, 25, 0, 0, 0, 0, time.UTC),
		Start: time.Date(1943, time.April, 14, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2034, time.April, 13, 0, 0, 0, 0, time.UTC),
	}
	want := "patro: AD date 1942-06-25 out of range: supported 1943-04-14 to 2034-04-13"
	if got := err.Error(); got != want {
		t.Errorf("ADRangeError.Error() = %q, want %q", got, want)
	}
}

func TestOptionConflictError_Error(t *testing.T) {
	err := &OptionConflictError{Type: "Options", Options: []string{"Romanized", "Localized"}}
	want := "patro: conflicting Options options: Romanized, Localized"
	if got := err.Error(); got != want {
		t.Errorf("OptionConflictError.Error() = %q, want %q", got, want)
	}
}
