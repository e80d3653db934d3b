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
	"fmt"
	"strconv"

	"dirpx.dev/patro/pcore/calendar"
	"dirpx.dev/patro/pcore/errors"
	"dirpx.dev/patro/pcore/model"
	"gopkg.in/yaml.v3"
)

// Options selects the rendering of formatted output.
//
// The two flags mirror the typical CLI surface: --romanized and
// --localized. At most one may be set; setting both is a validation error,
// detected at runtime rather than by construction so that options bound
// directly to CLI flags or configuration files surface the conflict as a
// typed error instead of silently preferring one flag. With neither flag
// set the output is localized, matching FormLocalized being the zero
// NameForm.
//
// The zero value is valid and means localized output.
type Options struct {
	// Romanized requests title-case Latin-script names and Arabic
	// numerals.
	Romanized bool `json:"romanized,omitempty" yaml:"romanized,omitempty"`

	// Localized requests Devanagari names and numerals explicitly. This
	// is also the default when neither flag is set.
	Localized bool `json:"localized,omitempty" yaml:"localized,omitempty"`
}

// Validate checks that at most one rendering flag is set. Both flags set
// is an *OptionConflictError naming the conflicting options.
func (o Options) Validate() error {
	if o.Romanized && o.Localized {
		return &errors.OptionConflictError{
			Type:    "Options",
			Options: []string{"Romanized", "Localized"},
		}
	}
	return nil
}

// Form resolves the Options to the NameForm they select. Conflicting
// options return the *OptionConflictError from Validate.
func (o Options) Form() (NameForm, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}
	if o.Romanized {
		return FormRomanized, nil
	}
	return FormLocalized, nil
}

// String returns a compact representation of the Options for logs, for
// example "Options{romanized}".
func (o Options) String() string {
	switch {
	case o.Romanized && o.Localized:
		return "Options{romanized,localized}"
	case o.Romanized:
		return "Options{romanized}"
	case o.Localized:
		return "Options{localized}"
	default:
		return "Options{}"
	}
}

// Redacted returns the same string representation as String. Options
// contain no sensitive information.
func (o Options) Redacted() string {
	return o.String()
}

// TypeName returns "Options", the name of the type for logging and
// debugging.
func (o Options) TypeName() string {
	return "Options"
}

// IsZero reports whether neither flag is set. Zero Options are valid and
// mean localized output.
func (o Options) IsZero() bool {
	return !o.Romanized && !o.Localized
}

// Equal reports whether this Options is equal to another value.
//
// The method accepts any type for other and uses type assertion to check
// if it is an Options or *Options.
func (o Options) Equal(other any) bool {
	switch v := other.(type) {
	case Options:
		return o == v
	case *Options:
		if v == nil {
			return false
		}
		return o == *v
	default:
		return false
	}
}

// MarshalJSON implements json.Marshaler for Options. Conflicting options
// fail to marshal with the *OptionConflictError.
func (o Options) MarshalJSON() ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	type alias Options
	return json.Marshal((alias)(o))
}

// UnmarshalJSON implements json.Unmarshaler for Options, rejecting
// payloads that set both flags.
func (o *Options) UnmarshalJSON(data []byte) error {
	type alias Options
	if err := json.Unmarshal(data, (*alias)(o)); err != nil {
		return &errors.UnmarshalError{Type: "Options", Data: data, Reason: err.Error()}
	}
	return o.Validate()
}

// MarshalYAML implements yaml.Marshaler for Options. Conflicting options
// fail to marshal with the *OptionConflictError.
func (o Options) MarshalYAML() (any, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	type alias Options
	return (alias)(o), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Options, rejecting
// documents that set both flags.
func (o *Options) UnmarshalYAML(node *yaml.Node) error {
	type alias Options
	if err := node.Decode((*alias)(o)); err != nil {
		return &errors.UnmarshalError{Type: "Options", Data: []byte(node.Value), Reason: err.Error()}
	}
	return o.Validate()
}

// Compile-time check that Options implements model.Model interface.
var _ model.Model = (*Options)(nil)

// MonthName returns the display name of the month in the form the options
// select: Devanagari ("भदौ") when localized, title-case romanized
// ("Bhadau") when romanized.
//
// An invalid month or conflicting options return the respective typed
// error.
func MonthName(m calendar.Month, opts Options) (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}
	form, err := opts.Form()
	if err != nil {
		return "", err
	}
	if form == FormRomanized {
		return monthsRomanized[m-1], nil
	}
	return monthsDevanagari[m-1], nil
}

// WeekdayName returns the display name of the weekday in the form the
// options select: Devanagari ("बुधबार") when localized, title-case
// romanized ("Budhabar") when romanized.
//
// An invalid weekday or conflicting options return the respective typed
// error.
func WeekdayName(w calendar.Weekday, opts Options) (string, error) {
	if err := w.Validate(); err != nil {
		return "", err
	}
	form, err := opts.Form()
	if err != nil {
		return "", err
	}
	if form == FormRomanized {
		return weekdaysRomanized[w], nil
	}
	return weekdaysDevanagari[w], nil
}

// FormatDate renders a date as "day month year" in the form the options
// select: "२५ भदौ २०८२" localized, "25 Bhadau 2082" romanized.
//
// The date is validated first; an out-of-range date returns its
// *BSRangeError, and conflicting options return the *OptionConflictError.
func FormatDate(d calendar.Date, opts Options) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	form, err := opts.Form()
	if err != nil {
		return "", err
	}

	month, err := MonthName(d.Month, opts)
	if err != nil {
		return "", err
	}

	if form == FormRomanized {
		return fmt.Sprintf("%s %s %s", strconv.Itoa(d.Day), month, strconv.Itoa(d.Year)), nil
	}
	return fmt.Sprintf("%s %s %s", Numeral(d.Day, Devanagari), month, Numeral(d.Year, Devanagari)), nil
}

// FormatDateWithWeekday renders a date preceded by its weekday:
// "बुधबार, २५ भदौ २०८२" localized, "Budhabar, 25 Bhadau 2082" romanized.
//
// Validation behaves as in FormatDate.
func FormatDateWithWeekday(d calendar.Date, opts Options) (string, error) {
	base, err := FormatDate(d, opts)
	if err != nil {
		return "", err
	}
	wd, err := d.Weekday()
	if err != nil {
		return "", err
	}
	name, err := WeekdayName(wd, opts)
	if err != nil {
		return "", err
	}
	return name + ", " + base, nil
}
