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

// Package errors provides reusable error types for the patro calendar
// packages.
//
// This package defines the error vocabulary shared by the calendar core and
// the presentation layer when parsing, validating, converting and marshaling
// strongly typed calendar values. Centralizing these types gives callers a
// single, stable set of kinds to match on with errors.As, and keeps message
// formats consistent across the whole patro surface.
//
// The errors in this package are intentionally simple value carriers with
// stable message formats. They are designed to be:
//
//   - easy to construct from parsing / validation / conversion code,
//   - easy to recognize via type assertions or errors.As,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into a typed calendar value fails.
//     Use this when implementing ParseXxx helpers that accept textual input
//     (for example, from configuration files, CLI flags or API payloads).
//
//   - MarshalError
//     Returned when marshaling an invalid typed value fails.
//     Use this in MarshalJSON / MarshalText implementations to reject values
//     that do not correspond to known constants or valid dates.
//
//   - UnmarshalError
//     Returned when unmarshaling data into a typed value fails due to
//     invalid input, parse errors or constraint violations.
//
//   - ValidationError
//     Returned when validation of a model type fails for reasons other than
//     the tabulated calendar range (for which BSRangeError exists).
//
//   - ConstructionError
//     Returned when a calendar value is constructed with a missing (zero)
//     component. Construction is deliberately cheap and unvalidated beyond
//     this completeness check; range validation is deferred to conversion.
//
//   - BSRangeError
//     Returned when a Bikram Sambat date falls outside the tabulated range:
//     the year is not a table key, the month is outside 1-12, or the day
//     exceeds the month's tabulated length. Carries the supported year
//     bounds for diagnostics.
//
//   - ADRangeError
//     Returned when a Gregorian date falls outside the span covered by the
//     Bikram Sambat table.
//
//   - OptionConflictError
//     Returned when a formatting request combines mutually exclusive
//     presentation options.
//
// All errors are raised synchronously at the point of detection and carry no
// retry semantics: failure is a deterministic function of the input.
package errors

import "strconv"

// ParseError is returned when parsing a string into a strongly typed
// calendar value fails.
//
// Type identifies the logical type being parsed (for example, "Month",
// "Date", "NameForm"), and Value contains the exact string that could not
// be interpreted. Callers MAY pattern-match on Type to provide type-specific
// guidance to users or to translate errors into friendlier messages.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Month").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"patro: invalid {Type} value: {Value}"
//
// The format is intentionally stable so that callers can rely on it for
// diagnostics, while still preferring type assertions where possible.
func (e *ParseError) Error() string {
	return "patro: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it
// being outside the set of valid constants or tabulated dates.
//
// Type identifies the logical type being marshaled (for example, "Month"),
// and Value contains the underlying numeric value that was deemed invalid.
//
// This error is primarily a guardrail: it prevents invalid calendar values
// from being silently emitted into JSON, YAML or other serialized forms. In
// most cases a MarshalError indicates a programming error (for example, a
// zero value that was never validated).
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a valid value.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"patro: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "patro: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value
// fails.
//
// Type identifies the logical type being populated, Data contains the
// original raw payload (typically a JSON fragment), and Reason provides a
// human-readable description of what went wrong (for example, parse errors,
// an invalid numeric value or empty input).
//
// Callers MAY wrap UnmarshalError with additional context when propagating
// it further up the stack.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Callers MAY choose to log or redact this field depending on size
	// considerations.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	//
	// Reason SHOULD describe what went wrong (for example, "empty data" or
	// "unknown value 'foo'") rather than repeating the type name; the type
	// name is already available in the Type field and reflected in Error().
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"patro: cannot unmarshal {Type}: {Reason}"
//
// The Data field is intentionally not included in the formatted message to
// avoid excessively verbose logs; callers can log it separately when
// appropriate.
func (e *UnmarshalError) Error() string {
	return "patro: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails for a
// reason that is not a calendar-range violation.
//
// Type identifies the logical name of the type being validated (for example,
// "Options"), Field optionally identifies which field failed validation,
// Reason provides a human-readable explanation of the failure, and Value
// optionally contains the problematic value.
//
// Range violations against the Bikram Sambat table use BSRangeError instead,
// because callers need to distinguish "structurally malformed" from "outside
// the tabulated range" when handling conversion failures.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"patro: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"patro: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "patro: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "patro: invalid " + e.Type + ": " + e.Reason
}
