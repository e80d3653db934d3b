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
	"math"
	"time"

	"dirpx.dev/patro/pcore/errors"
)

// ADStart is the first Gregorian date convertible to Bikram Sambat,
// 1943-04-14 UTC, the civil equivalent of BS 2000-01-01. Derived from the
// epoch at process start.
var ADStart = func() time.Time {
	y, m, d := jdnGregorian(epochJDN)
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}()

// ADEnd is the last Gregorian date convertible to Bikram Sambat,
// 2034-04-13 UTC, the civil equivalent of BS 2090-12-30. Derived from the
// epoch and the table span at process start.
var ADEnd = func() time.Time {
	y, m, d := jdnGregorian(epochJDN + tableSpanDays - 1)
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}()

// JulianDay converts the Date to its Julian day number at astronomical
// midnight (a half-integer value; the epoch BS 2000-01-01 maps to
// 2430828.5).
//
// The date is validated first; an out-of-range Date returns a *BSRangeError
// and no conversion is attempted. The conversion itself is pure table
// arithmetic: the epoch Julian day plus the days of every tabulated year
// before d.Year, plus the days of every month of d.Year before d.Month,
// plus d.Day-1.
func (d Date) JulianDay() (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}

	offset := 0
	for year := MinYear; year < d.Year; year++ {
		offset += daysInYear[year]
	}
	lengths := monthLengths[d.Year]
	for month := Baisakh; month < d.Month; month++ {
		offset += lengths[month-1]
	}
	offset += d.Day - 1

	return epochJulianDay + float64(offset), nil
}

// FromJulianDay converts a Julian day number back to the Bikram Sambat date
// whose day contains it.
//
// The instant is first reduced to a 1-based count of days since the epoch:
// the whole days elapsed plus one, so any instant within a civil day
// resolves to that day. The count is then walked through the calendar
// table: while it exceeds the days remaining in the candidate year it moves
// to the next year, then likewise through the months. Equality stays in the
// current period, so a count that exactly exhausts a month resolves to that
// month's last day.
//
// Instants before the epoch or beyond the last tabulated day return a
// *BSRangeError naming the violated bound.
func FromJulianDay(jd float64) (Date, error) {
	days := int(math.Floor(jd-epochJulianDay)) + 1

	if days < 1 {
		return Date{}, &errors.BSRangeError{
			MinYear: MinYear,
			MaxYear: MaxYear,
			Reason:  "Julian day precedes epoch",
		}
	}
	if days > tableSpanDays {
		return Date{}, &errors.BSRangeError{
			MinYear: MinYear,
			MaxYear: MaxYear,
			Reason:  "Julian day beyond calendar table",
		}
	}

	year := MinYear
	for days > daysInYear[year] {
		days -= daysInYear[year]
		year++
	}

	lengths := monthLengths[year]
	month := Baisakh
	for days > lengths[month-1] {
		days -= lengths[month-1]
		month++
	}

	return Date{Year: year, Month: month, Day: days}, nil
}

// FromTime converts a Gregorian civil date to its Bikram Sambat equivalent.
//
// Only the civil date of t in its own location is significant; the clock
// time and zone offset are discarded, so 23:59 in Kathmandu and 00:01 in
// New York on the same calendar date convert identically. Dates before
// ADStart or after ADEnd return an *ADRangeError carrying the supported
// civil bounds.
func FromTime(t time.Time) (Date, error) {
	y, m, d := t.Date()
	jdn := gregorianJDN(y, m, d)

	if jdn < epochJDN || jdn > epochJDN+tableSpanDays-1 {
		return Date{}, &errors.ADRangeError{
			Date:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
			Start: ADStart,
			End:   ADEnd,
		}
	}

	// jdn is a noon-anchored day number; the midnight Julian day of the
	// same civil day is jdn - 0.5.
	return FromJulianDay(float64(jdn) - 0.5)
}

// Time converts the Date to the corresponding Gregorian civil date as a
// time.Time at midnight UTC.
//
// The date is validated first; an out-of-range Date returns a *BSRangeError.
// Every valid tabulated date has a Gregorian equivalent, so once validation
// passes the conversion cannot fail.
func (d Date) Time() (time.Time, error) {
	jd, err := d.JulianDay()
	if err != nil {
		return time.Time{}, err
	}
	y, m, day := jdnGregorian(int(jd + 0.5))
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC), nil
}

// Weekday returns the day of the week the Date falls on.
//
// The date is validated first; an out-of-range Date returns a *BSRangeError.
// The weekday comes straight off the Gregorian equivalent, since the two
// calendars share the same seven-day cycle.
func (d Date) Weekday() (Weekday, error) {
	t, err := d.Time()
	if err != nil {
		return 0, err
	}
	return Weekday(t.Weekday()), nil
}

// Today converts the current civil date in the given location to Bikram
// Sambat. Pass time.Local for the machine's local date or a loaded
// Asia/Kathmandu location for the official Nepali date.
func Today(loc *time.Location) (Date, error) {
	return FromTime(time.Now().In(loc))
}

// gregorianJDN returns the noon-anchored Julian day number of a Gregorian
// civil date, using the Fliegel-Van Flandern integer algorithm. Valid for
// all dates in the supported range.
func gregorianJDN(year int, month time.Month, day int) int {
	y := year
	m := int(month)
	return day - 32075 +
		1461*(y+4800+(m-14)/12)/4 +
		367*(m-2-(m-14)/12*12)/12 -
		3*((y+4900+(m-14)/12)/100)/4
}

// jdnGregorian is the inverse of gregorianJDN: it returns the Gregorian
// civil date of a noon-anchored Julian day number.
func jdnGregorian(jdn int) (year int, month time.Month, day int) {
	l := jdn + 68569
	n := 4 * l / 146097
	l = l - (146097*n+3)/4
	i := 4000 * (l + 1) / 1461001
	l = l - 1461*i/4 + 31
	j := 80 * l / 2447
	day = l - 2447*j/80
	l = j / 11
	month = time.Month(j + 2 - 12*l)
	year = 100*(n-49) + i + l
	return year, month, day
}
