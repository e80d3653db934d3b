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

package main

import (
	"os"

	"github.com/spf13/cobra"

	"dirpx.dev/patro/cmd/patro/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "patro",
		Short:         "Bikram Sambat calendar converter",
		Long:          `patro converts dates between the Bikram Sambat (Nepali) calendar and the Gregorian calendar, covering BS years 2000 through 2090.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().Bool("romanized", false, "print names in Latin script with Arabic numerals")
	rootCmd.PersistentFlags().Bool("localized", false, "print names in Devanagari script (the default)")

	rootCmd.AddCommand(commands.NewToBSCommand())
	rootCmd.AddCommand(commands.NewToADCommand())
	rootCmd.AddCommand(commands.NewTodayCommand())
	rootCmd.AddCommand(commands.NewRangeCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
