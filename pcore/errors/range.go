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
	"strconv"
	"strings"
	"time"
)

// ConstructionError is returned when a calendar value is constructed with a
// missing component.
//
// Construction of a Date requires all three of year, month and day to be
// non-zero; any zero component is a programming error at the call site, not
// a range violation, and fails immediately. Range validation against the
// calendar table is deliberately deferred until conversion, so a
// ConstructionError never indicates an out-of-range date — only an
// incomplete one.
type ConstructionError struct {
	// Type is the logical name of the type being constructed (for example,
	// "Date").
	Type string

	// Field is the name of the missing (zero) component.
	Field string
}

// Error implements the error interface for ConstructionError.
//
// The error message format is:
//
//	"patro: cannot construct {Type}: missing {Field}"
func (e *ConstructionError) Error() string {
	return "patro: cannot construct " + e.Type + ": missing " + e.Field
}

// BSRangeError is returned when a Bikram Sambat date cannot be resolved
// against the tabulated calendar range.
//
// It covers three distinct failures, distinguished by Reason: the year is
// not a key of the month-length table, the month is outside 1-12, or the
// day exceeds the tabulated length of the month for that year. It is also
// returned when a Julian day number falls before the table epoch or beyond
// the last tabulated day.
//
// MinYear and MaxYear always carry the supported year bounds so that the
// formatted message tells users what range the library can convert.
type BSRangeError struct {
	// Year, Month and Day identify the offending date. Any of them may be
	// zero when the error was produced from a Julian day number rather than
	// from date components.
	Year  int
	Month int
	Day   int

	// MinYear and MaxYear are the inclusive bounds of the tabulated years.
	MinYear int
	MaxYear int

	// Reason is a short, human-readable explanation of which constraint was
	// violated (for example, "year not in calendar table" or
	// "day exceeds month length").
	Reason string
}

// Error implements the error interface for BSRangeError.
//
// The error message format is:
//
//	"patro: BS date {Year}-{Month}-{Day} out of range: {Reason} (supported years {MinYear}-{MaxYear})"
//
// The supported year bounds are always included so that a caller surfacing
// the message verbatim still communicates the usable range.
func (e *BSRangeError) Error() string {
	var b strings.Builder
	b.WriteString("patro: BS date ")
	b.WriteString(strconv.Itoa(e.Year))
	b.WriteByte('-')
	b.WriteString(pad2(e.Month))
	b.WriteByte('-')
	b.WriteString(pad2(e.Day))
	b.WriteString(" out of range: ")
	b.WriteString(e.Reason)
	b.WriteString(" (supported years ")
	b.WriteString(strconv.Itoa(e.MinYear))
	b.WriteByte('-')
	b.WriteString(strconv.Itoa(e.MaxYear))
	b.WriteByte(')')
	return b.String()
}

// ADRangeError is returned when a Gregorian date falls outside the span
// covered by the Bikram Sambat table.
//
// The conversion core only understands Gregorian dates whose Bikram Sambat
// equivalents are tabulated; Start and End carry the exact inclusive civil
// bounds so callers can report them without consulting documentation.
type ADRangeError struct {
	// Date is the offending Gregorian date. Only its civil year, month and
	// day are meaningful; time-of-day and location play no part in the
	// range check.
	Date time.Time

	// Start and End are the inclusive bounds of the supported civil range.
	Start time.Time
	End   time.Time
}

// Error implements the error interface for ADRangeError.
//
// The error message format is:
//
//	"patro: AD date {Date} out of range: supported {Start} to {End}"
//
// with all three dates rendered as "YYYY-MM-DD".
func (e *ADRangeError) Error() string {
	const layout = "2006-01-02"
	return "patro: AD date " + e.Date.Format(layout) +
		" out of range: supported " + e.Start.Format(layout) +
		" to " + e.End.Format(layout)
}

// OptionConflictError is returned when a formatting request combines
// mutually exclusive presentation options.
//
// Type identifies the option carrier (for example, "Options") and Options
// lists the names of the options that conflict, in the order they are
// defined on the carrier. The presentation layer accepts an open option
// struct for source compatibility, so exclusivity is enforced at validation
// time rather than by construction.
type OptionConflictError struct {
	// Type is the logical name of the option carrier.
	Type string

	// Options are the names of the conflicting options.
	Options []string
}

// Error implements the error interface for OptionConflictError.
//
// The error message format is:
//
//	"patro: conflicting {Type} options: {a}, {b}"
func (e *OptionConflictError) Error() string {
	return "patro: conflicting " + e.Type + " options: " + strings.Join(e.Options, ", ")
}

func pad2(n int) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
