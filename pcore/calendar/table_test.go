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
	"errors"
	"testing"

	perrors "dirpx.dev/patro/pcore/errors"
)

func TestTableContiguous(t *testing.T) {
	if len(monthLengths) != MaxYear-MinYear+1 {
		t.Fatalf("monthLengths has %d entries, want %d", len(monthLengths), MaxYear-MinYear+1)
	}
	for year := MinYear; year <= MaxYear; year++ {
		if _, ok := monthLengths[year]; !ok {
			t.Errorf("monthLengths missing year %d", year)
		}
	}
}

func TestTableEntriesPlausible(t *testing.T) {
	for year, lengths := range monthLengths {
		total := 0
		for i, days := range lengths {
			if days < 29 || days > 32 {
				t.Errorf("monthLengths[%d][%d] = %d, want between 29 and 32", year, i, days)
			}
			total += days
		}
		if total < 364 || total > 366 {
			t.Errorf("year %d has %d days, want between 364 and 366", year, total)
		}
		if got := daysInYear[year]; got != total {
			t.Errorf("daysInYear[%d] = %d, want %d", year, got, total)
		}
	}
}

func TestTableSpan(t *testing.T) {
	span := 0
	for _, total := range daysInYear {
		span += total
	}
	if tableSpanDays != span {
		t.Errorf("tableSpanDays = %d, want %d", tableSpanDays, span)
	}
	// 91 years of roughly 365 days each.
	if tableSpanDays < 91*364 || tableSpanDays > 91*366 {
		t.Errorf("tableSpanDays = %d, outside plausible bounds", tableSpanDays)
	}
}

func TestTableKnownRows(t *testing.T) {
	tests := []struct {
		year int
		want [12]int
	}{
		{2000, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
		{2082, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}},
		{2090, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}},
	}

	for _, tt := range tests {
		got, err := MonthLengths(tt.year)
		if err != nil {
			t.Errorf("MonthLengths(%d) error: %v", tt.year, err)
			continue
		}
		if got != tt.want {
			t.Errorf("MonthLengths(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestMonthLengthsOutOfRange(t *testing.T) {
	for _, year := range []int{1999, 2091, 0, -5} {
		_, err := MonthLengths(year)
		if err == nil {
			t.Errorf("MonthLengths(%d) expected error, got nil", year)
			continue
		}
		var rangeErr *perrors.BSRangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("MonthLengths(%d) error type = %T, want *BSRangeError", year, err)
			continue
		}
		if rangeErr.Year != year {
			t.Errorf("MonthLengths(%d) error Year = %d, want %d", year, rangeErr.Year, year)
		}
		if rangeErr.MinYear != MinYear || rangeErr.MaxYear != MaxYear {
			t.Errorf("MonthLengths(%d) error bounds = %d-%d, want %d-%d",
				year, rangeErr.MinYear, rangeErr.MaxYear, MinYear, MaxYear)
		}
	}
}

func TestDaysInYear(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{2000, 365},
		{2082, 365},
	}

	for _, tt := range tests {
		got, err := DaysInYear(tt.year)
		if err != nil {
			t.Errorf("DaysInYear(%d) error: %v", tt.year, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DaysInYear(%d) = %d, want %d", tt.year, got, tt.want)
		}
	}

	if _, err := DaysInYear(1999); err == nil {
		t.Error("DaysInYear(1999) expected error, got nil")
	}
}

func TestSupportedYearRange(t *testing.T) {
	minYear, maxYear := SupportedYearRange()
	if minYear != 2000 || maxYear != 2090 {
		t.Errorf("SupportedYearRange() = %d, %d, want 2000, 2090", minYear, maxYear)
	}
}

func TestEpoch(t *testing.T) {
	date, jd := Epoch()
	want := Date{Year: 2000, Month: Baisakh, Day: 1}
	if date != want {
		t.Errorf("Epoch() date = %v, want %v", date, want)
	}
	if jd != 2430828.5 {
		t.Errorf("Epoch() jd = %v, want 2430828.5", jd)
	}
}
