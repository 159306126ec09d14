// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package strftime

import "time"

// Name tables are fixed to the POSIX locale;
// locale-dependent lookup is deliberately out of scope.

var monthLong = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

var monthShort = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// weekday tables are indexed by time.Weekday (Sunday = 0)
var weekdayLong = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

var weekdayShort = [7]string{
	"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
}

func ampmUpper(hour int) string {
	if hour < 12 {
		return "AM"
	}
	return "PM"
}

func ampmLower(hour int) string {
	if hour < 12 {
		return "am"
	}
	return "pm"
}

func isleap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthdays = [12]int{
	31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31,
}

func daysin(y, m int) int {
	d := monthdays[m-1]
	if m == 2 && isleap(y) {
		d++
	}
	return d
}

func yeardays(y int) int {
	if isleap(y) {
		return 366
	}
	return 365
}

// ordinal2date converts a 1-based day-of-year
// into a (month, day) pair; the ordinal must
// already be validated against yeardays.
func ordinal2date(y, ordinal int) (month, day int) {
	m := 1
	for ordinal > daysin(y, m) {
		ordinal -= daysin(y, m)
		m++
	}
	return m, ordinal
}

// weekdayMonday1 is the ISO weekday number
// (Monday = 1 through Sunday = 7).
func weekdayMonday1(wd time.Weekday) int {
	return (int(wd)+6)%7 + 1
}

// weekSunday is the week-of-year number with
// Sunday starting each week (strftime %U).
func weekSunday(t time.Time) int {
	return (t.YearDay() - 1 + 7 - int(t.Weekday())) / 7
}

// weekMonday is the week-of-year number with
// Monday starting each week (strftime %W).
func weekMonday(t time.Time) int {
	return (t.YearDay() - 1 + 7 - (int(t.Weekday())+6)%7) / 7
}

// hour12 converts a 0-23 hour into a 1-12 clock hour.
func hour12(hour int) int {
	return (hour+11)%12 + 1
}

// prefixFold returns whether s begins with
// prefix under ASCII case folding.
func prefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		a, b := s[i], prefix[i]
		if a|0x20 != b|0x20 {
			return false
		}
	}
	return true
}
