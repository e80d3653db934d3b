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

package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// newTestRoot builds a root command wired the same way as the patro binary.
func newTestRoot() *cobra.Command {
	root := &cobra.Command{Use: "patro", SilenceUsage: true}
	root.PersistentFlags().Bool("romanized", false, "")
	root.PersistentFlags().Bool("localized", false, "")
	root.AddCommand(NewToBSCommand())
	root.AddCommand(NewToADCommand())
	root.AddCommand(NewTodayCommand())
	root.AddCommand(NewRangeCommand())
	return root
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newTestRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestToBS(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			"localized default",
			[]string{"to-bs", "2025-09-10"},
			"बुधबार, २५ भदौ २०८२ (2082-05-25)\n",
		},
		{
			"romanized",
			[]string{"to-bs", "2025-09-10", "--romanized"},
			"Budhabar, 25 Bhadau 2082 (2082-05-25)\n",
		},
		{
			"epoch",
			[]string{"to-bs", "1943-04-14", "--romanized"},
			"Budhabar, 1 Baisakh 2000 (2000-01-01)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute error: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToBSErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"malformed date", []string{"to-bs", "september-10"}},
		{"before supported range", []string{"to-bs", "1942-06-25"}},
		{"after supported range", []string{"to-bs", "2035-06-25"}},
		{"conflicting flags", []string{"to-bs", "2025-09-10", "--romanized", "--localized"}},
		{"missing argument", []string{"to-bs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Errorf("Execute(%v) expected error, got nil", tt.args)
			}
		})
	}
}

func TestToAD(t *testing.T) {
	got, err := run(t, "to-ad", "2082-05-25")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if want := "2025-09-10 (Wednesday)\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestToADErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"malformed date", []string{"to-ad", "bhadau-25"}},
		{"year below range", []string{"to-ad", "1999-01-01"}},
		{"year above range", []string{"to-ad", "2091-01-01"}},
		{"day exceeds month", []string{"to-ad", "2082-05-33"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Errorf("Execute(%v) expected error, got nil", tt.args)
			}
		})
	}
}

func TestToday(t *testing.T) {
	got, err := run(t, "today", "--romanized")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !strings.Contains(got, ", ") || !strings.Contains(got, "(") {
		t.Errorf("output = %q, want weekday-prefixed date", got)
	}
}

func TestRange(t *testing.T) {
	got, err := run(t, "range")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	for _, want := range []string{"2000", "2090", "1943-04-14", "2034-04-13"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}
