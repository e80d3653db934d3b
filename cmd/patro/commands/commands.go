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

// Package commands defines the patro CLI commands. Each command parses its
// argument, runs the conversion and prints the result; all calendar logic
// lives in pcore/calendar and pcore/nepali.
package commands

import (
	"fmt"
	"time"

	"dirpx.dev/patro/pcore/calendar"
	"dirpx.dev/patro/pcore/nepali"
	"github.com/spf13/cobra"
)

// renderOptions reads the rendering flags off the command. The flags are
// registered as persistent flags on the root command, so every subcommand
// sees them. Conflicting flags surface as the options' own validation
// error when the options are used.
func renderOptions(cmd *cobra.Command) nepali.Options {
	romanized, _ := cmd.Flags().GetBool("romanized")
	localized, _ := cmd.Flags().GetBool("localized")
	return nepali.Options{Romanized: romanized, Localized: localized}
}

// NewToBSCommand creates the to-bs command, which converts a Gregorian
// date to Bikram Sambat.
func NewToBSCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "to-bs <YYYY-MM-DD>",
		Short: "Convert a Gregorian date to Bikram Sambat",
		Long:  "Convert a Gregorian calendar date to its Bikram Sambat equivalent and print it with its weekday.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tm, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("invalid Gregorian date %q: expected YYYY-MM-DD", args[0])
			}

			bs, err := calendar.FromTime(tm)
			if err != nil {
				return err
			}

			out, err := nepali.FormatDateWithWeekday(bs, renderOptions(cmd))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", out, bs)
			return nil
		},
	}
}

// NewToADCommand creates the to-ad command, which converts a Bikram Sambat
// date to Gregorian.
func NewToADCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "to-ad <YYYY-MM-DD>",
		Short: "Convert a Bikram Sambat date to Gregorian",
		Long:  "Convert a Bikram Sambat calendar date to its Gregorian equivalent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := calendar.ParseDate(args[0])
			if err != nil {
				return err
			}

			tm, err := bs.Time()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", tm.Format("2006-01-02"), tm.Weekday())
			return nil
		},
	}
}

// NewTodayCommand creates the today command, which prints the current date
// in Bikram Sambat.
func NewTodayCommand() *cobra.Command {
	var zone string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print today's date in Bikram Sambat",
		Long:  "Convert the current civil date to Bikram Sambat and print it with its weekday. The date is taken in the machine's local time zone unless --zone names another one.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := time.Local
			if zone != "" {
				var err error
				loc, err = time.LoadLocation(zone)
				if err != nil {
					return fmt.Errorf("unknown time zone %q: %w", zone, err)
				}
			}

			bs, err := calendar.Today(loc)
			if err != nil {
				return err
			}

			out, err := nepali.FormatDateWithWeekday(bs, renderOptions(cmd))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", out, bs)
			return nil
		},
	}

	cmd.Flags().StringVar(&zone, "zone", "", "IANA time zone for the current date (for example, Asia/Kathmandu)")
	return cmd
}

// NewRangeCommand creates the range command, which prints the supported
// conversion bounds of the calendar table.
func NewRangeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "range",
		Short: "Print the supported date range",
		Long:  "Print the Bikram Sambat years and the Gregorian dates the calendar table covers.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			minYear, maxYear := calendar.SupportedYearRange()
			fmt.Fprintf(cmd.OutOrStdout(), "BS years:  %d through %d\n", minYear, maxYear)
			fmt.Fprintf(cmd.OutOrStdout(), "AD dates:  %s through %s\n",
				calendar.ADStart.Format("2006-01-02"), calendar.ADEnd.Format("2006-01-02"))
			return nil
		},
	}
}
