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

import (
	"testing"
	"time"
)

func TestOrdinal2Date(t *testing.T) {
	for _, year := range []int{1900, 2000, 2020, 2022} {
		want := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		for ord := 1; ord <= yeardays(year); ord++ {
			m, d := ordinal2date(year, ord)
			if m != int(want.Month()) || d != want.Day() {
				t.Fatalf("year %d ordinal %d: got %d-%d, want %d-%d",
					year, ord, m, d, want.Month(), want.Day())
			}
			want = want.AddDate(0, 0, 1)
		}
	}
}

func TestDaysIn(t *testing.T) {
	tcs := []struct {
		y, m, want int
	}{
		{2022, 1, 31},
		{2022, 2, 28},
		{2020, 2, 29},
		{2000, 2, 29},
		{1900, 2, 28},
		{2022, 4, 30},
		{2022, 12, 31},
	}
	for _, tc := range tcs {
		if got := daysin(tc.y, tc.m); got != tc.want {
			t.Errorf("daysin(%d, %d): got %d, want %d", tc.y, tc.m, got, tc.want)
		}
	}
}

func TestHour12(t *testing.T) {
	want := [24]int{12, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11,
		12, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	for h := 0; h < 24; h++ {
		if got := hour12(h); got != want[h] {
			t.Errorf("hour12(%d): got %d, want %d", h, got, want[h])
		}
	}
}

func TestPrefixFold(t *testing.T) {
	tcs := []struct {
		s, prefix string
		want      bool
	}{
		{"April 17", "April", true},
		{"APRIL 17", "april", true},
		{"apr", "Apr", true},
		{"Ap", "Apr", false},
		{"May", "Mar", false},
		{"", "", true},
	}
	for _, tc := range tcs {
		if got := prefixFold(tc.s, tc.prefix); got != tc.want {
			t.Errorf("prefixFold(%q, %q): got %v", tc.s, tc.prefix, got)
		}
	}
}
