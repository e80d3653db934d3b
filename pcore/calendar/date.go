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

// Package calendar implements the Bikram Sambat calendar core: the
// tabulated month lengths for BS years 2000 through 2090, the Date, Month
// and Weekday value types, and the bidirectional conversion between Bikram
// Sambat dates and Gregorian dates through a Julian-day-number bridge.
//
// Bikram Sambat month lengths are not derivable from an astronomical rule;
// they are survey data published year by year. The package therefore covers
// a bounded range — exactly the tabulated years, which correspond to the
// civil dates 1943-04-14 through 2034-04-13 — and fails with a typed range
// error outside it.
//
// Validation is two-phase by design. Constructing a Date only requires the
// three components to be present (non-zero); whether the date actually
// exists in the table is checked when the date is validated or converted.
// Callers may therefore construct tentative dates freely and decide later
// whether to convert them.
//
// The calendar table is immutable, package-level state initialized at
// process start; every conversion is a pure function of its input and the
// table, so all operations are safe for unsynchronized concurrent use.
package calendar

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"dirpx.dev/patro/pcore/errors"
	"dirpx.dev/patro/pcore/model"
	"gopkg.in/yaml.v3"
)

// Date represents a Bikram Sambat calendar date as a year, month and day.
//
// Date is an immutable value type: it has no setters, copies by assignment
// and is safe for concurrent reads. A Date is NOT guaranteed to exist in
// the calendar table — construction checks only that all three components
// are present. Use Validate (or any conversion, all of which validate
// first) to establish that the date is within the tabulated range.
//
// The zero value is not a meaningful date; IsZero detects it and Validate
// rejects it.
type Date struct {
	// Year is the Bikram Sambat year. The tabulated range is
	// [MinYear, MaxYear]; values outside it construct fine but fail
	// validation and conversion.
	Year int

	// Month is the Bikram Sambat month, Baisakh (1) through Chaitra (12).
	Month Month

	// Day is the 1-based day of the month. Tabulated month lengths run
	// from 29 to 32 days, so the largest valid Day is 32; the exact bound
	// depends on Year and Month.
	Day int
}

// New constructs a Date from its three components.
//
// All three components are mandatory: a zero year, month or day is a
// construction error (*ConstructionError naming the missing field), because
// a partially specified date has no meaning. No range validation happens
// here — the returned Date may still lie outside the calendar table and
// will only fail when validated or converted. This two-phase contract is
// deliberate; callers may construct tentative dates before deciding whether
// to convert them.
func New(year, month, day int) (Date, error) {
	if year == 0 {
		return Date{}, &errors.ConstructionError{Type: "Date", Field: "Year"}
	}
	if month == 0 {
		return Date{}, &errors.ConstructionError{Type: "Date", Field: "Month"}
	}
	if day == 0 {
		return Date{}, &errors.ConstructionError{Type: "Date", Field: "Day"}
	}
	return Date{Year: year, Month: Month(month), Day: day}, nil
}

// ParseDate parses a Date from its canonical "YYYY-MM-DD" textual form (for
// example, "2082-05-25").
//
// The three components must be decimal integers separated by hyphens;
// anything else returns a *ParseError carrying the original string. Like
// New, ParseDate performs no range validation: "2099-01-01" parses
// successfully and fails only on validation or conversion. A component that
// parses to zero is a *ConstructionError, as with New.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, &errors.ParseError{Type: "Date", Value: s}
	}
	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Date{}, &errors.ParseError{Type: "Date", Value: s}
		}
		nums[i] = n
	}
	return New(nums[0], nums[1], nums[2])
}

// String returns the canonical textual representation of the Date in
// "YYYY-MM-DD" form with zero-padded month and day (for example,
// "2082-05-25").
//
// String does not validate; an out-of-range Date still formats, which keeps
// it usable in error messages and logs.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Validate checks that the Date exists in the calendar table.
//
// This is the deferred half of the two-phase construction contract and the
// gate through which every conversion passes. Validation enforces, in
// order:
//
//   - Year is a key of the month-length table (the tabulated range
//     [MinYear, MaxYear]),
//   - Month is between Baisakh (1) and Chaitra (12),
//   - Day is between 1 and the tabulated length of that month in that year.
//
// Each failure is a *BSRangeError carrying the offending components, the
// violated constraint and the supported year bounds.
func (d Date) Validate() error {
	lengths, ok := monthLengths[d.Year]
	if !ok {
		return d.rangeError("year not in calendar table")
	}
	if !d.Month.Valid() {
		return d.rangeError("month must be between 1 and 12")
	}
	if d.Day < 1 {
		return d.rangeError("day must be at least 1")
	}
	if d.Day > lengths[d.Month-1] {
		return d.rangeError("day exceeds month length")
	}
	return nil
}

func (d Date) rangeError(reason string) error {
	return &errors.BSRangeError{
		Year:    d.Year,
		Month:   int(d.Month),
		Day:     d.Day,
		MinYear: MinYear,
		MaxYear: MaxYear,
		Reason:  reason,
	}
}

// IsZero reports whether the Date has all three components at their zero
// value. A zero Date is never valid.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// TypeName returns "Date", the name of the type for logging and debugging.
func (d Date) TypeName() string {
	return "Date"
}

// Redacted returns the same string representation as String. A calendar
// date carries no sensitive information beyond the date itself.
func (d Date) Redacted() string {
	return d.String()
}

// Compare compares d with other and reports their ordering.
//
// Dates order lexicographically by (Year, Month, Day), which coincides with
// chronological order for valid dates. It returns:
//
//	-1 if d <  other
//	 0 if d == other
//	+1 if d >  other
//
// Compare does not validate; it orders whatever components the dates carry.
func (d Date) Compare(other Date) int {
	if d.Year != other.Year {
		if d.Year < other.Year {
			return -1
		}
		return 1
	}
	if d.Month != other.Month {
		if d.Month < other.Month {
			return -1
		}
		return 1
	}
	if d.Day != other.Day {
		if d.Day < other.Day {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether d is strictly before other in chronological order.
func (d Date) Less(other Date) bool {
	return d.Compare(other) < 0
}

// Equal reports whether this Date is equal to another value.
//
// The method accepts any type for other and uses type assertion to check if
// it is a Date or *Date. Two Dates are equal if all three components match.
func (d Date) Equal(other any) bool {
	switch v := other.(type) {
	case Date:
		return d == v
	case *Date:
		if v == nil {
			return false
		}
		return d == *v
	default:
		return false
	}
}

// MarshalJSON implements json.Marshaler for Date.
//
// A valid Date is serialized as its canonical "YYYY-MM-DD" string. Before
// encoding, MarshalJSON calls Validate; an out-of-range Date returns the
// *BSRangeError and produces no JSON output, so invalid dates never leak
// into payloads.
func (d Date) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler for Date.
//
// The JSON value must be a string in "YYYY-MM-DD" form. The string is
// parsed via ParseDate and the result validated against the calendar
// table, so syntactically correct but out-of-range input is rejected with
// a *BSRangeError at the boundary.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Date", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Date.
//
// A valid Date is serialized as a scalar "YYYY-MM-DD" string. Validation is
// performed before encoding; an out-of-range Date returns the
// *BSRangeError and no YAML value is produced.
func (d Date) MarshalYAML() (any, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Date.
//
// The YAML value is expected to be a scalar string in "YYYY-MM-DD" form,
// parsed via ParseDate and validated against the calendar table.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Date", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Date, using the same
// canonical "YYYY-MM-DD" form as String and the same validate-first
// behavior as MarshalJSON.
func (d Date) MarshalText() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Date, accepting the
// same form as ParseDate and validating the result.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Compile-time check that Date implements model.Model interface.
var _ model.Model = (*Date)(nil)
