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
	"strings"

	"dirpx.dev/patro/pcore/errors"
	"dirpx.dev/patro/pcore/model"
	"gopkg.in/yaml.v3"
)

// Month identifies a Bikram Sambat month, 1 (Baisakh) through 12 (Chaitra).
//
// The numbering matches the position of the month's length in the calendar
// table, so monthLengths[year][m-1] is the number of days in month m of that
// year. Month lengths vary year to year (29 to 32 days); Month itself only
// identifies the month and carries no length information.
//
// The zero value is not a valid Month. Values produced by deserialization
// or numeric casts SHOULD be checked with Valid before use.
type Month int

const (
	// Baisakh is the first month of the Bikram Sambat year. The epoch date
	// BS 2000-01-01 is Baisakh 1.
	Baisakh Month = 1 + iota

	// Jestha is the second month.
	Jestha

	// Ashadh is the third month.
	Ashadh

	// Shrawan is the fourth month.
	Shrawan

	// Bhadau is the fifth month.
	Bhadau

	// Ashoj is the sixth month.
	Ashoj

	// Kartik is the seventh month.
	Kartik

	// Mangsir is the eighth month.
	Mangsir

	// Poush is the ninth month.
	Poush

	// Magh is the tenth month.
	Magh

	// Falgun is the eleventh month.
	Falgun

	// Chaitra is the twelfth and last month of the Bikram Sambat year.
	Chaitra
)

// monthNames holds the canonical lowercase romanized names, indexed by
// Month-1. These names form the stable external representation of Month and
// MAY be persisted in configuration files, CLI flags and JSON/YAML
// documents. Changing them is a breaking change for any consumer that
// relies on textual configuration. Display names (Devanagari and title-case
// romanized) are owned by the presentation layer, not by this package.
var monthNames = [12]string{
	"baisakh", "jestha", "ashadh", "shrawan", "bhadau", "ashoj",
	"kartik", "mangsir", "poush", "magh", "falgun", "chaitra",
}

// ParseMonth converts a textual representation into a Month value.
//
// The canonical lowercase romanized names ("baisakh" through "chaitra") are
// accepted case-insensitively. Any other input is invalid and ParseMonth
// returns a *ParseError carrying the original string.
func ParseMonth(s string) (Month, error) {
	lc := strings.ToLower(s)
	for i, name := range monthNames {
		if lc == name {
			return Month(i + 1), nil
		}
	}
	return 0, &errors.ParseError{Type: "Month", Value: s}
}

// String returns the canonical lowercase romanized name of the Month (for
// example, "baisakh").
//
// If the Month is not one of the twelve defined constants, String returns
// "unknown". Callers that need to ensure only valid values are emitted
// SHOULD call Valid before invoking String.
func (m Month) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return monthNames[m-1]
}

// Valid reports whether the Month is one of the twelve defined constants.
func (m Month) Valid() bool {
	return m >= Baisakh && m <= Chaitra
}

// TypeName returns "Month", the name of the type for logging and debugging.
func (m Month) TypeName() string {
	return "Month"
}

// Redacted returns the same string representation as String. Month values
// contain no sensitive information.
func (m Month) Redacted() string {
	return m.String()
}

// IsZero reports whether the Month has its zero value. The zero value is
// not a valid Month; a zero Month in a Date indicates a missing component.
func (m Month) IsZero() bool {
	return m == 0
}

// Equal reports whether this Month is equal to another value.
//
// The method accepts any type for other and uses type assertion to check if
// it is a Month or *Month.
func (m Month) Equal(other any) bool {
	switch v := other.(type) {
	case Month:
		return m == v
	case *Month:
		if v == nil {
			return false
		}
		return m == *v
	default:
		return false
	}
}

// Validate checks whether the Month value is one of the twelve defined
// constants, returning a *ValidationError otherwise.
func (m Month) Validate() error {
	if !m.Valid() {
		return &errors.ValidationError{
			Type:   "Month",
			Reason: "invalid Month value",
			Value:  int(m),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Month.
//
// A valid Month is serialized as its canonical name (for example,
// "bhadau"). If the value is not valid, MarshalJSON returns a
// *MarshalError and produces no JSON output.
func (m Month) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return nil, &errors.MarshalError{Type: "Month", Value: int(m)}
	}
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Month.
//
// The method accepts both string and numeric JSON representations:
//
//   - String: a canonical month name, case-insensitive, via ParseMonth.
//   - Number: 1 (Baisakh) through 12 (Chaitra).
//
// String input is the preferred, stable representation. Numeric input is
// accepted for compatibility with payloads that store months as integers.
func (m *Month) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Month", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Month", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseMonth(s)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Month", Data: data, Reason: err.Error()}
	}
	*m = Month(i)
	if !m.Valid() {
		return &errors.UnmarshalError{Type: "Month", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Month.
//
// A valid Month is serialized as its canonical name. If the value is not
// valid, MarshalYAML returns a *MarshalError.
func (m Month) MarshalYAML() (any, error) {
	if !m.Valid() {
		return nil, &errors.MarshalError{Type: "Month", Value: int(m)}
	}
	return m.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Month.
//
// The YAML value is expected to be a scalar month name, resolved via
// ParseMonth. On failure the underlying *ParseError is returned.
func (m *Month) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Month", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseMonth(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Month, using the same
// canonical name as String. If the value is invalid, MarshalText returns a
// *MarshalError.
func (m Month) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, &errors.MarshalError{Type: "Month", Value: int(m)}
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Month, accepting
// the same vocabulary as ParseMonth.
func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Compile-time check that Month implements model.Model interface.
var _ model.Model = (*Month)(nil)
