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

// Package model defines the core contracts that all patro domain types MUST
// implement to ensure consistency, type safety and proper behavior across
// the module.
//
// Every domain type representing a calendar value (such as Date, Month,
// Weekday or NameForm) SHOULD implement the Model interface or its
// constituent parts (Validatable, Serializable, Loggable, Identifiable,
// ZeroCheckable). These interfaces establish a common contract for
// validation, serialization, logging and identity that enables generic
// operations and guarantees safety at compile time.
//
// The contracts prioritize data integrity and debuggability. Validation
// ensures that out-of-range or malformed calendar values cannot be
// serialized or silently propagated. Serialization provides round-trip
// guarantees for configuration files (YAML) and API payloads (JSON).
// Loggable supplies stable string representations for logs and
// diagnostics. Identifiable enables structured logging and reflection.
// ZeroCheckable supports optional-field detection.
//
// All patro model types are immutable value types: methods never mutate
// their receiver, and concurrent reads are always safe. Unmarshal methods
// are the only mutating entry points and require exclusive access to the
// receiver, as usual in Go.
//
// Types implementing Model can be used with the generic helper functions in
// this package, such as ValidateAll, FilterZero, ToJSON, ToYAML, Clone and
// Equal. These helpers rely on the Model contract and fail at compile time
// when applied to types that do not implement it.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for patro domain types. Any type implementing Model gains automatic
// support for validation, serialization to JSON and YAML, safe logging,
// type identification and zero-value detection.
//
// Implementations MUST satisfy all embedded interfaces: Validatable ensures
// data integrity by checking invariants; Serializable provides round-trip
// JSON and YAML encoding; Loggable offers stable string representations;
// Identifiable supplies a canonical type name; and ZeroCheckable detects
// empty or uninitialized instances.
//
// Model instances are treated as immutable value types. Methods defined on
// Model MUST NOT mutate the receiver unless explicitly documented (the
// unmarshal methods). Concurrent reads are safe; concurrent writes require
// external synchronization.
//
// Example implementation:
//
//	type Era struct {
//	    Name string
//	}
//
//	func (e Era) Validate() error {
//	    if e.Name == "" {
//	        return errors.New("name required")
//	    }
//	    return nil
//	}
//
//	func (e Era) TypeName() string { return "Era" }
//	func (e Era) IsZero() bool { return e.Name == "" }
//	func (e Era) Redacted() string { return "Era{" + e.Name + "}" }
//	func (e Era) String() string { return e.Name }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*Era)(nil) // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
// Every model type MUST implement Validate to verify that all invariants
// hold and that the instance is in a consistent state suitable for use in
// conversion logic, persistence or transmission.
//
// Validate MUST check all required fields, verify cross-field consistency
// (for example, that a day does not exceed the tabulated length of its
// month), and return nil if and only if the instance is fully valid. When
// validation fails, the returned error MUST describe what is invalid in a
// way that helps callers diagnose the problem; the typed errors in
// pcore/errors are the vocabulary for this.
//
// Validate MUST be fast, deterministic and idempotent. It MUST NOT mutate
// the receiver, MUST NOT have side effects, and MUST NOT depend on external
// mutable state — for calendar types the only external state consulted is
// the immutable month-length table.
//
// Callers SHOULD invoke Validate at boundaries: immediately after
// unmarshaling external input, after constructing values from user input,
// and before converting a date — patro itself defers range validation from
// construction to conversion, so Validate is the gate through which every
// conversion passes.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong.
	//
	// This method MUST NOT mutate the receiver and MUST NOT have side
	// effects. It MUST be safe to call concurrently.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to and
// deserialized from JSON and YAML. All model types MUST support both
// formats so that dates and presentation options can appear directly in
// configuration files (typically YAML) and API payloads (typically JSON).
//
// Implementations MUST validate before marshaling so that only valid
// instances are serialized; an out-of-range date MUST fail to marshal with
// the validation error rather than leak into a document. Implementations
// MUST likewise validate after unmarshaling and reject input that parses
// syntactically but violates calendar invariants.
//
// A value serialized to JSON and then deserialized MUST equal the original
// value, and the same MUST hold for YAML.
//
// Marshal methods are safe for concurrent use on immutable receivers.
// Unmarshal methods mutate the receiver and require exclusive access.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide string
// representations for logging and debugging.
//
// The Redacted method returns a representation suitable for production
// logging. Calendar values carry no credentials or personal data beyond the
// date itself, so for patro types Redacted and String typically agree; the
// two methods are kept distinct so that embedding applications can treat
// all their model types uniformly when choosing a logging representation.
//
// Both methods MUST be fast, MUST NOT perform I/O, MUST NOT mutate the
// receiver and MUST be safe to call concurrently. The same instance MUST
// always produce the same representation.
type Loggable interface {
	// Redacted returns a string representation safe for production logs.
	Redacted() string

	// String returns a human-readable representation of the instance.
	String() string
}

// Identifiable defines the contract for types that can identify themselves
// by a canonical type name.
//
// The name returned by TypeName MUST be constant for a given type, unique
// within patro, in CamelCase (for example, "Date", "Month", "NameForm") and
// without a package prefix. Type names appear in error messages, structured
// logs and the typed errors of pcore/errors.
//
// TypeName MUST be fast, MUST NOT allocate, and SHOULD return a string
// constant.
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in a zero or empty state. This enables optional-field detection and
// conditional logic based on whether an instance carries meaningful data.
//
// An instance is zero when all of its fields are at their type's zero
// value. For a Date this means year, month and day are all zero — note that
// a zero Date is also invalid, since patro has no year 0, month 0 or day 0.
// For enum types whose zero constant is a meaningful value (Weekday, whose
// zero is Aaitabar), IsZero still reports the numeric zero value; it detects
// "is the zero value", not "is invalid".
//
// IsZero MUST be fast, deterministic, idempotent, allocation-free and safe
// to call concurrently.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for
// equality. This interface is optional but recommended for value types that
// require equality testing in tests, assertions or business logic.
//
// Equal MUST be reflexive, symmetric, transitive and consistent. It SHOULD
// compare all semantically significant fields and MUST NOT mutate either
// operand or have side effects.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type.
	Equal(other T) bool
}

// Cloneable defines the contract for types that can create deep copies of
// themselves. This interface is optional; patro's value types are plain
// data and copy by assignment, but implementing Cloneable lets them
// participate in generic code written against it.
//
// Clone MUST return an instance equal to the receiver that shares no
// references with it, MUST NOT mutate the receiver, and MUST be safe to
// call concurrently.
type Cloneable[T any] interface {
	// Clone creates a deep copy of this instance.
	Clone() T
}
