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

// Weekday identifies a day of the week, 0 (Aaitabar, Sunday) through
// 6 (Shanibar, Saturday).
//
// The Bikram Sambat week coincides with the Gregorian week; only the names
// differ. The numbering matches time.Weekday, so converting between the two
// is a plain cast and a Date's weekday can be read directly off its
// Gregorian equivalent.
//
// The zero value is Aaitabar, which is a valid Weekday.
type Weekday int

const (
	// Aaitabar is Sunday, the first day of the Nepali week.
	Aaitabar Weekday = iota

	// Sombar is Monday.
	Sombar

	// Mangalbar is Tuesday.
	Mangalbar

	// Budhabar is Wednesday.
	Budhabar

	// Bihibar is Thursday.
	Bihibar

	// Shukrabar is Friday.
	Shukrabar

	// Shanibar is Saturday, the weekly holiday in Nepal.
	Shanibar
)

// weekdayNames holds the canonical lowercase romanized names, indexed by
// Weekday. These names form the stable external representation of Weekday.
// Display names (Devanagari and title-case romanized) are owned by the
// presentation layer.
var weekdayNames = [7]string{
	"aaitabar", "sombar", "mangalbar", "budhabar", "bihibar", "shukrabar", "shanibar",
}

// ParseWeekday converts a textual representation into a Weekday value.
//
// The canonical lowercase romanized names ("aaitabar" through "shanibar")
// are accepted case-insensitively. Any other input is invalid and
// ParseWeekday returns a *ParseError carrying the original string.
func ParseWeekday(s string) (Weekday, error) {
	lc := strings.ToLower(s)
	for i, name := range weekdayNames {
		if lc == name {
			return Weekday(i), nil
		}
	}
	return 0, &errors.ParseError{Type: "Weekday", Value: s}
}

// String returns the canonical lowercase romanized name of the Weekday (for
// example, "budhabar").
//
// If the Weekday is not one of the seven defined constants, String returns
// "unknown".
func (w Weekday) String() string {
	if !w.Valid() {
		return "unknown"
	}
	return weekdayNames[w]
}

// Valid reports whether the Weekday is one of the seven defined constants.
func (w Weekday) Valid() bool {
	return w >= Aaitabar && w <= Shanibar
}

// TypeName returns "Weekday", the name of the type for logging and
// debugging.
func (w Weekday) TypeName() string {
	return "Weekday"
}

// Redacted returns the same string representation as String. Weekday values
// contain no sensitive information.
func (w Weekday) Redacted() string {
	return w.String()
}

// IsZero reports whether the Weekday has its zero value.
//
// Note: the zero value (Aaitabar) is a valid Weekday, so IsZero returning
// true does not indicate an error condition.
func (w Weekday) IsZero() bool {
	return w == Aaitabar
}

// Equal reports whether this Weekday is equal to another value.
//
// The method accepts any type for other and uses type assertion to check if
// it is a Weekday or *Weekday.
func (w Weekday) Equal(other any) bool {
	switch v := other.(type) {
	case Weekday:
		return w == v
	case *Weekday:
		if v == nil {
			return false
		}
		return w == *v
	default:
		return false
	}
}

// Validate checks whether the Weekday value is one of the seven defined
// constants, returning a *ValidationError otherwise.
func (w Weekday) Validate() error {
	if !w.Valid() {
		return &errors.ValidationError{
			Type:   "Weekday",
			Reason: "invalid Weekday value",
			Value:  int(w),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Weekday.
//
// A valid Weekday is serialized as its canonical name (for example,
// "shanibar"). If the value is not valid, MarshalJSON returns a
// *MarshalError and produces no JSON output.
func (w Weekday) MarshalJSON() ([]byte, error) {
	if !w.Valid() {
		return nil, &errors.MarshalError{Type: "Weekday", Value: int(w)}
	}
	return []byte(`"` + w.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Weekday.
//
// The method accepts both string and numeric JSON representations:
//
//   - String: a canonical weekday name, case-insensitive, via ParseWeekday.
//   - Number: 0 (Aaitabar) through 6 (Shanibar).
func (w *Weekday) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Weekday", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Weekday", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseWeekday(s)
		if err != nil {
			return err
		}
		*w = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Weekday", Data: data, Reason: err.Error()}
	}
	*w = Weekday(i)
	if !w.Valid() {
		return &errors.UnmarshalError{Type: "Weekday", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Weekday.
//
// A valid Weekday is serialized as its canonical name. If the value is not
// valid, MarshalYAML returns a *MarshalError.
func (w Weekday) MarshalYAML() (any, error) {
	if !w.Valid() {
		return nil, &errors.MarshalError{Type: "Weekday", Value: int(w)}
	}
	return w.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Weekday.
//
// The YAML value is expected to be a scalar weekday name, resolved via
// ParseWeekday. On failure the underlying *ParseError is returned.
func (w *Weekday) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Weekday", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseWeekday(str)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Weekday, using the same
// canonical name as String. If the value is invalid, MarshalText returns a
// *MarshalError.
func (w Weekday) MarshalText() ([]byte, error) {
	if !w.Valid() {
		return nil, &errors.MarshalError{Type: "Weekday", Value: int(w)}
	}
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Weekday, accepting
// the same vocabulary as ParseWeekday.
func (w *Weekday) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// Compile-time check that Weekday implements model.Model interface.
var _ model.Model = (*Weekday)(nil)
