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

import (
	"encoding/json"
	"strings"

	"dirpx.dev/patro/pcore/errors"
	"dirpx.dev/patro/pcore/model"
	"gopkg.in/yaml.v3"
)

// NameForm selects how month names, weekday names and numerals are
// rendered: in Devanagari script or in romanized Latin script.
//
// The zero value is FormLocalized; output defaults to the native script
// unless romanized is asked for explicitly.
type NameForm int

const (
	// FormLocalized renders Devanagari names and Devanagari numerals.
	// This is the zero value and the default rendering.
	FormLocalized NameForm = iota

	// FormRomanized renders title-case Latin-script names and Arabic
	// numerals.
	FormRomanized
)

// formNames holds the canonical lowercase names, indexed by NameForm.
var formNames = [2]string{"localized", "romanized"}

// ParseNameForm converts a textual representation into a NameForm value.
//
// The canonical names "localized" and "romanized" are accepted
// case-insensitively. Any other input returns a *ParseError carrying the
// original string.
func ParseNameForm(s string) (NameForm, error) {
	lc := strings.ToLower(s)
	for i, name := range formNames {
		if lc == name {
			return NameForm(i), nil
		}
	}
	return 0, &errors.ParseError{Type: "NameForm", Value: s}
}

// String returns the canonical lowercase name of the NameForm, or
// "unknown" if the value is not one of the defined constants.
func (f NameForm) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return formNames[f]
}

// Valid reports whether the NameForm is one of the defined constants.
func (f NameForm) Valid() bool {
	return f >= FormLocalized && f <= FormRomanized
}

// TypeName returns "NameForm", the name of the type for logging and
// debugging.
func (f NameForm) TypeName() string {
	return "NameForm"
}

// Redacted returns the same string representation as String. NameForm
// values contain no sensitive information.
func (f NameForm) Redacted() string {
	return f.String()
}

// IsZero reports whether the NameForm has its zero value.
//
// Note: the zero value (FormLocalized) is a valid NameForm and the
// default rendering, so IsZero returning true does not indicate an error
// condition.
func (f NameForm) IsZero() bool {
	return f == FormLocalized
}

// Equal reports whether this NameForm is equal to another value.
//
// The method accepts any type for other and uses type assertion to check
// if it is a NameForm or *NameForm.
func (f NameForm) Equal(other any) bool {
	switch v := other.(type) {
	case NameForm:
		return f == v
	case *NameForm:
		if v == nil {
			return false
		}
		return f == *v
	default:
		return false
	}
}

// Validate checks whether the NameForm value is one of the defined
// constants, returning a *ValidationError otherwise.
func (f NameForm) Validate() error {
	if !f.Valid() {
		return &errors.ValidationError{
			Type:   "NameForm",
			Reason: "invalid NameForm value",
			Value:  int(f),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for NameForm.
//
// A valid NameForm is serialized as its canonical name. If the value is
// not valid, MarshalJSON returns a *MarshalError and produces no JSON
// output.
func (f NameForm) MarshalJSON() ([]byte, error) {
	if !f.Valid() {
		return nil, &errors.MarshalError{Type: "NameForm", Value: int(f)}
	}
	return []byte(`"` + f.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for NameForm.
//
// The method accepts both string and numeric JSON representations:
//
//   - String: "localized" or "romanized", case-insensitive.
//   - Number: 0 (FormLocalized) or 1 (FormRomanized).
func (f *NameForm) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "NameForm", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "NameForm", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseNameForm(s)
		if err != nil {
			return err
		}
		*f = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "NameForm", Data: data, Reason: err.Error()}
	}
	*f = NameForm(i)
	if !f.Valid() {
		return &errors.UnmarshalError{Type: "NameForm", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for NameForm.
//
// A valid NameForm is serialized as its canonical name. If the value is
// not valid, MarshalYAML returns a *MarshalError.
func (f NameForm) MarshalYAML() (any, error) {
	if !f.Valid() {
		return nil, &errors.MarshalError{Type: "NameForm", Value: int(f)}
	}
	return f.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for NameForm.
//
// The YAML value is expected to be a scalar form name, resolved via
// ParseNameForm. On failure the underlying *ParseError is returned.
func (f *NameForm) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "NameForm", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseNameForm(str)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for NameForm, using the
// same canonical name as String. If the value is invalid, MarshalText
// returns a *MarshalError.
func (f NameForm) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, &errors.MarshalError{Type: "NameForm", Value: int(f)}
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for NameForm,
// accepting the same vocabulary as ParseNameForm.
func (f *NameForm) UnmarshalText(text []byte) error {
	parsed, err := ParseNameForm(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Compile-time check that NameForm implements model.Model interface.
var _ model.Model = (*NameForm)(nil)
