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

// monthsDevanagari holds the Devanagari month names, indexed by Month-1.
// These are display forms only; the canonical serialized names live with
// the Month type itself.
var monthsDevanagari = [12]string{
	"बैशाख", "जेठ", "असार", "साउन", "भदौ", "असोज",
	"कात्तिक", "मंसिर", "पुष", "माघ", "फागुन", "चैत",
}

// monthsRomanized holds the title-case romanized month names, indexed by
// Month-1.
var monthsRomanized = [12]string{
	"Baisakh", "Jestha", "Ashadh", "Shrawan", "Bhadau", "Ashoj",
	"Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra",
}

// weekdaysDevanagari holds the Devanagari weekday names, indexed by
// Weekday (0 is Sunday).
var weekdaysDevanagari = [7]string{
	"आइतबार", "सोमबार", "मङ्गलबार", "बुधबार", "बिहिबार", "शुक्रबार", "शनिबार",
}

// weekdaysRomanized holds the title-case romanized weekday names, indexed
// by Weekday.
var weekdaysRomanized = [7]string{
	"Aaitabar", "Sombar", "Mangalbar", "Budhabar", "Bihibar", "Shukrabar", "Shanibar",
}
