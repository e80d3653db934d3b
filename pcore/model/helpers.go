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

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered, rather than stopping at the first failure.
//
// The function iterates through each model in the provided slice and
// invokes its Validate method. When a model fails validation, the error is
// wrapped with the model's position in the slice (zero-indexed) and its
// type name from TypeName, so callers can identify exactly which values
// failed and why — useful when validating a batch of dates loaded from a
// configuration file.
//
// If one or more models fail validation, ValidateAll returns a single
// combined error aggregating all failures via rxmerr.Collector. If all
// models pass, it returns nil. Empty slices are valid and return nil. The
// function always processes the entire slice, ensuring complete error
// reporting.
//
// Example:
//
//	dates := []calendar.Date{d1, d2, d3}
//	if err := model.ValidateAll(dates); err != nil {
//	    return err
//	}
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only non-zero models, removing
// all instances where IsZero reports true.
//
// The returned slice is always a new allocation and never shares backing
// storage with the input. If all models are zero, or the input is empty or
// nil, FilterZero returns an empty non-nil slice. The function does not
// validate models; it only checks for zero values.
//
// Callers SHOULD use FilterZero before serializing collections to avoid
// emitting empty placeholder values into documents.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate validates a model and panics if validation fails.
//
// This is intended for contexts where an invalid model is a programming
// error rather than a recoverable runtime condition: test setup, package
// initialization and command-line tools. The panic message includes the
// model's type name and the validation error.
//
// Callers MUST NOT use MustValidate in server code or any context where a
// panic would disrupt availability.
//
// Example:
//
//	d := model.MustValidate(mustDate(2082, 5, 25))
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns a string representation of a model that is safe for
// logging by default, or the full String representation when unsafe is
// explicitly requested.
//
// When unsafe is false, SafeString returns the model's Redacted form; this
// is the representation production logging SHOULD use. When unsafe is true,
// it returns String. Making the choice a visible parameter keeps logging
// decisions auditable at the call site.
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON converts a model to JSON bytes after validating it.
//
// The function first invokes Validate; if validation fails, ToJSON returns
// an error wrapping the failure with the model's type name and attempts no
// marshaling, ensuring that out-of-range dates or conflicting options never
// reach the encoder. On success it delegates to json.Marshal, which honors
// the model's MarshalJSON implementation.
//
// Example:
//
//	data, err := model.ToJSON(date)
//	if err != nil {
//	    return err
//	}
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML converts a model to YAML bytes after validating it.
//
// Behavior mirrors ToJSON: validation failure aborts with a wrapped error
// before any encoding, and success delegates to yaml.Marshal, which honors
// the model's MarshalYAML implementation. The returned bytes are typically
// written into configuration files.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON parses JSON bytes into a model and validates the result.
//
// The function first unmarshals into the provided pointer; malformed input
// returns the unmarshaling error with no validation attempted. If decoding
// succeeds, the model's Validate method gates the result so that
// syntactically correct but out-of-range input (for example, a date whose
// day exceeds its month's tabulated length) is rejected at the boundary.
//
// If FromJSON returns an error, the state of *m is undefined and MUST NOT
// be used.
//
// Example:
//
//	var d calendar.Date
//	if err := model.FromJSON(data, &d); err != nil {
//	    return err
//	}
func FromJSON[T Model](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML parses YAML bytes into a model and validates the result.
//
// Behavior mirrors FromJSON for YAML input: decoding errors are returned
// as-is, and decoded values must pass Validate before being accepted. Use
// this when loading dates or presentation options from configuration files.
//
// If FromYAML returns an error, the state of *m is undefined and MUST NOT
// be used.
func FromYAML[T Model](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// Clone creates a deep copy of a model via a JSON round-trip.
//
// Serializing to JSON and back guarantees that the copy shares no
// references with the original, without type-specific copy logic. For
// patro's plain value types this is never faster than assignment, but it
// lets generic code clone any Model uniformly. Types on hot paths SHOULD
// implement Cloneable with hand-written logic instead.
//
// Callers MUST check the returned error; on failure the returned model is
// the zero value and MUST NOT be used.
func Clone[T Model](m T) (T, error) {
	var zero T

	data, err := json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("clone marshal failed: %w", err)
	}

	var clone T
	if err := json.Unmarshal(data, &clone); err != nil {
		return zero, fmt.Errorf("clone unmarshal failed: %w", err)
	}

	return clone, nil
}

// Equal compares two models for equality by comparing their JSON
// representations byte-for-byte.
//
// If either value fails to marshal, Equal returns false rather than
// guessing; comparison errors are never mistaken for equality. The
// comparison covers all exported fields and respects custom MarshalJSON
// implementations, so two Dates are equal exactly when they serialize to
// the same "YYYY-MM-DD" string.
//
// Types compared frequently SHOULD implement Comparable with direct field
// comparison instead.
func Equal[T Model](a, b T) bool {
	dataA, errA := json.Marshal(a)
	dataB, errB := json.Marshal(b)

	if errA != nil || errB != nil {
		return false
	}

	return string(dataA) == string(dataB)
}
