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
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	// 2022-04-17 is a Sunday, day-of-year 107
	ref := time.Date(2022, time.April, 17, 14, 16, 22, 0, time.UTC)
	tcs := []struct {
		format string
		t      time.Time
		want   string
	}{
		{"%Y-%m-%d %H:%M:%S", ref, "2022-04-17 14:16:22"},
		{"%a %A %b %B %h", ref, "Sun Sunday Apr April Apr"},
		{"%d %e %j", ref, "17 17 107"},
		{"%d %e %j", time.Date(2022, time.April, 7, 0, 0, 0, 0, time.UTC), "07  7 097"},
		{"%H %k %I %l %p %P", ref, "14 14 02  2 PM pm"},
		{"%H %k %I %l %p %P",
			time.Date(2022, time.April, 17, 9, 0, 0, 0, time.UTC),
			"09  9 09  9 AM am"},
		{"%I %p", time.Date(2022, time.April, 17, 0, 0, 0, 0, time.UTC), "12 AM"},
		{"%I %p", time.Date(2022, time.April, 17, 12, 0, 0, 0, time.UTC), "12 PM"},
		{"%u %w", ref, "7 0"},
		{"%u %w", time.Date(2022, time.April, 18, 0, 0, 0, 0, time.UTC), "1 1"},
		{"%U %W %V", ref, "16 15 15"},
		// 2022-01-01 is a Saturday in ISO week 52 of 2021
		{"%U %W %V %G %g", time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
			"00 00 52 2021 21"},
		{"%y %Y", ref, "22 2022"},
		{"%y %Y", time.Date(410, time.April, 17, 0, 0, 0, 0, time.UTC), "10 0410"},
		{"%%x %n%t", ref, "%x \n\t"},
		{"literal text", ref, "literal text"},
		{"%m/%d 100%", ref, "04/17 100%"},
		// composite specifiers
		{"%c", ref, "Sun Apr 17 14:16:22 2022"},
		{"%c", time.Date(2022, time.April, 7, 9, 3, 4, 0, time.UTC), "Thu Apr  7 09:03:04 2022"},
		{"%D", ref, "04/17/22"},
		{"%x", ref, "04/17/22"},
		{"%F", ref, "2022-04-17"},
		{"%r", ref, "02:16:22 PM"},
		{"%R", ref, "14:16"},
		{"%T", ref, "14:16:22"},
		{"%X", ref, "14:16:22"},
	}
	for _, tc := range tcs {
		got, err := Format(tc.format, tc.t)
		if err != nil {
			t.Errorf("Format(%q): %s", tc.format, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Format(%q): got %q, want %q", tc.format, got, tc.want)
		}
	}
}

func TestFormatCentury(t *testing.T) {
	tcs := []struct {
		year int
		want string
	}{
		{2022, "20"},
		{1999, "19"},
		{410, "04"},
		{0, "00"},
		{-1, "-1"},
		{-99, "-1"},
		{-100, "-1"},
		{-101, "-2"},
		{-1000, "-10"},
	}
	for _, tc := range tcs {
		ref := time.Date(tc.year, time.June, 1, 0, 0, 0, 0, time.UTC)
		got, err := Format("%C", ref)
		if err != nil {
			t.Fatalf("year %d: %s", tc.year, err)
		}
		if got != tc.want {
			t.Errorf("year %d: got %q, want %q", tc.year, got, tc.want)
		}
	}
}

func TestFormatNanos(t *testing.T) {
	// leading zeros kept, trailing zeros stripped
	tcs := []struct {
		ns   int
		want string
	}{
		{0, "0"},
		{2, "000000002"},
		{900000000, "9"},
		{987654320, "98765432"},
		{123000000, "123"},
		{123456789, "123456789"},
		{1000, "000001"},
	}
	for _, tc := range tcs {
		ref := time.Date(2022, time.April, 17, 14, 16, 22, tc.ns, time.UTC)
		got, err := Format("%S.%f", ref)
		if err != nil {
			t.Fatalf("ns %d: %s", tc.ns, err)
		}
		if got != "22."+tc.want {
			t.Errorf("ns %d: got %q, want %q", tc.ns, got, "22."+tc.want)
		}
	}
}

func TestFormatOffset(t *testing.T) {
	utc := time.Date(2022, time.April, 17, 14, 16, 22, 0, time.UTC)
	jst := utc.In(time.FixedZone("JST", 9*3600))
	ind := utc.In(time.FixedZone("", -(3*3600 + 30*60)))

	// plain Format carries no offset, so %z renders nothing
	got, err := Format("%H:%M%z", utc)
	if err != nil {
		t.Fatal(err)
	}
	if got != "14:16" {
		t.Errorf("got %q, want %q", got, "14:16")
	}
	tcs := []struct {
		t    time.Time
		want string
	}{
		{utc, "14:16:22+0000"},
		{jst, "23:16:22+0900"},
		{ind, "10:46:22-0330"},
	}
	for _, tc := range tcs {
		got, err := FormatOffset("%T%z", tc.t)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}

func TestFormatZoned(t *testing.T) {
	ref := time.Date(2022, time.April, 17, 23, 16, 22, 0, time.FixedZone("JST", 9*3600))
	got, err := FormatZoned("%T %Z", ref, "JST")
	if err != nil {
		t.Fatal(err)
	}
	if got != "23:16:22 JST" {
		t.Errorf("got %q", got)
	}
	// the zone name renders only through FormatZoned
	got, err = FormatOffset("%T%Z", ref)
	if err != nil {
		t.Fatal(err)
	}
	if got != "23:16:22" {
		t.Errorf("got %q", got)
	}
}

func TestFormatUnknown(t *testing.T) {
	_, err := Format("%Y-%q", time.Now())
	var unk *UnknownSpecifierError
	if !errors.As(err, &unk) {
		t.Fatalf("got %v, want UnknownSpecifierError", err)
	}
	if unk.Specifier != 'q' {
		t.Errorf("got specifier %q", unk.Specifier)
	}
}

func TestFormatTrailingPercent(t *testing.T) {
	got, err := Format("%Y%", time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if got != "2022%" {
		t.Errorf("got %q", got)
	}
}

func TestAppendFormat(t *testing.T) {
	ref := time.Date(2022, time.April, 17, 14, 16, 22, 0, time.UTC)
	buf := []byte("ts=")
	buf, err := AppendFormat(buf, "%F", ref)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != "ts=2022-04-17" {
		t.Errorf("got %q", buf)
	}
}

func TestWriteFormat(t *testing.T) {
	ref := time.Date(2022, time.April, 17, 14, 16, 22, 0, time.UTC)
	var sb strings.Builder
	if err := WriteFormat(&sb, "%FT%T", ref); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "2022-04-17T14:16:22" {
		t.Errorf("got %q", sb.String())
	}
	if err := WriteFormat(&sb, "%q", ref); err == nil {
		t.Error("expected error for unknown specifier")
	}
}

func TestFormatWeekNumbers(t *testing.T) {
	// %U counts Sunday-started weeks, %W Monday-started ones;
	// days before the first week render as week 00
	tcs := []struct {
		date  string
		wantU string
		wantW string
	}{
		{"2022-01-01", "00", "00"}, // Saturday
		{"2022-01-02", "01", "00"}, // Sunday
		{"2022-01-03", "01", "01"}, // Monday
		{"2022-12-31", "52", "52"},
		{"2017-01-01", "01", "00"}, // Sunday, January 1st
	}
	for _, tc := range tcs {
		d, err := time.Parse("2006-01-02", tc.date)
		if err != nil {
			t.Fatal(err)
		}
		gotU, err := Format("%U", d)
		if err != nil {
			t.Fatal(err)
		}
		gotW, err := Format("%W", d)
		if err != nil {
			t.Fatal(err)
		}
		if gotU != tc.wantU || gotW != tc.wantW {
			t.Errorf("%s: got %%U=%s %%W=%s, want %%U=%s %%W=%s",
				tc.date, gotU, gotW, tc.wantU, tc.wantW)
		}
	}
}
