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
	"reflect"
	"testing"
	"time"
)

// composite specifiers compile to the same nodes as their
// primitive spellings, so the expansions cannot drift apart
func TestCompileComposites(t *testing.T) {
	tcs := []struct {
		composite string
		expanded  string
	}{
		{"%D", "%m/%d/%y"},
		{"%x", "%m/%d/%y"},
		{"%F", "%Y-%m-%d"},
		{"%R", "%H:%M"},
		{"%T", "%H:%M:%S"},
		{"%X", "%H:%M:%S"},
		{"%r", "%I:%M:%S %p"},
		{"%c", "%a %b %e %T %Y"},
	}
	for _, tc := range tcs {
		got, err := CompileFormat(tc.composite)
		if err != nil {
			t.Fatalf("CompileFormat(%q): %s", tc.composite, err)
		}
		want, err := CompileFormat(tc.expanded)
		if err != nil {
			t.Fatalf("CompileFormat(%q): %s", tc.expanded, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("CompileFormat(%q) != CompileFormat(%q):\n%#v\n%#v",
				tc.composite, tc.expanded, got, want)
		}
	}
	// %x and %X are the tight-separator flavors in the
	// recovery direction; their separators compile without
	// optional whitespace
	got, err := CompileParse("%x")
	if err != nil {
		t.Fatal(err)
	}
	want, err := CompileParse("%m/%d/%y")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CompileParse(%%x) mismatch:\n%#v\n%#v", got, want)
	}
}

func TestCompileNoRepresentation(t *testing.T) {
	for _, format := range []string{"%C", "%Z", "%C%y"} {
		if _, err := CompileFormat(format); err == nil {
			t.Errorf("CompileFormat(%q): expected error", format)
		}
		if _, err := CompileParse(format); err == nil {
			t.Errorf("CompileParse(%q): expected error", format)
		}
	}
	_, err := CompileFormat("%C")
	var nr *NoRepresentationError
	if !errors.As(err, &nr) {
		t.Fatalf("got %v, want NoRepresentationError", err)
	}
	if _, err := CompileFormat("%q"); err == nil {
		t.Error("expected error for unknown specifier")
	}
}

// a compiled rendering program agrees with direct rendering
func TestProgramFormat(t *testing.T) {
	ref := time.Date(2022, time.April, 7, 9, 16, 22, 123000000, time.UTC)
	formats := []string{
		"%Y-%m-%dT%H:%M:%S.%f",
		"%c",
		"%e %B %Y %l:%M %P",
		"%a %A %u %w %U %W %V %G %g",
		"%j %% %n%t",
	}
	for _, f := range formats {
		prog, err := CompileFormat(f)
		if err != nil {
			t.Fatalf("CompileFormat(%q): %s", f, err)
		}
		want, err := Format(f, ref)
		if err != nil {
			t.Fatal(err)
		}
		if got := prog.Format(ref); got != want {
			t.Errorf("format %q: got %q, want %q", f, got, want)
		}
	}
}

// compiled %z always renders the value's own offset
func TestProgramFormatOffset(t *testing.T) {
	prog, err := CompileFormat("%T%z")
	if err != nil {
		t.Fatal(err)
	}
	jst := time.Date(2022, time.April, 17, 23, 16, 22, 0, time.FixedZone("JST", 9*3600))
	if got := prog.Format(jst); got != "23:16:22+0900" {
		t.Errorf("got %q", got)
	}
	utc := jst.UTC()
	if got := prog.Format(utc); got != "14:16:22+0000" {
		t.Errorf("got %q", got)
	}
}

func TestProgramParse(t *testing.T) {
	tcs := []struct {
		format string
		input  string
		want   time.Time
	}{
		{"%Y-%m-%dT%H:%M:%S", "2022-04-17T14:16:22", date(2022, 4, 17, 14, 16, 22, 0)},
		{"%Y-%m-%dT%H:%M:%S.%f", "2022-04-17T14:16:22.25", date(2022, 4, 17, 14, 16, 22, 250000000)},
		{"%d %b %Y", "17 Apr 2022", date(2022, 4, 17, 0, 0, 0, 0)},
		{"%d %B %Y", "17 April 2022", date(2022, 4, 17, 0, 0, 0, 0)},
		// name fields try the long form first
		{"%b", "January", date(1900, 1, 1, 0, 0, 0, 0)},
		{"%b", "Jan", date(1900, 1, 1, 0, 0, 0, 0)},
		// numeric fields tolerate any padding convention
		{"%d", "05", date(1900, 1, 5, 0, 0, 0, 0)},
		{"%d", " 5", date(1900, 1, 5, 0, 0, 0, 0)},
		{"%d", "5", date(1900, 1, 5, 0, 0, 0, 0)},
		{"%I %p", "7 pm", date(1900, 1, 1, 19, 0, 0, 0)},
		{"%y", "70", date(1970, 1, 1, 0, 0, 0, 0)},
		{"%Y %j", "2022 107", date(2022, 4, 17, 0, 0, 0, 0)},
		{"%r", "02:16:22 PM", date(1900, 1, 1, 14, 16, 22, 0)},
	}
	for _, tc := range tcs {
		prog, err := CompileParse(tc.format)
		if err != nil {
			t.Fatalf("CompileParse(%q): %s", tc.format, err)
		}
		got, err := prog.Parse(tc.input)
		if err != nil {
			t.Errorf("Parse(%q, %q): %s", tc.format, tc.input, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("Parse(%q, %q): got %v, want %v", tc.format, tc.input, got, tc.want)
		}
	}
}

// the offset colon is optional on input
func TestProgramParseOffset(t *testing.T) {
	prog, err := CompileParse("%Y-%m-%dT%H:%M:%S%z")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2022, time.April, 17, 14, 16, 22, 0, time.FixedZone("", 9*3600))
	for _, input := range []string{
		"2022-04-17T14:16:22+09:00",
		"2022-04-17T14:16:22+0900",
	} {
		got, err := prog.Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %s", input, err)
		}
		if !got.Equal(want) {
			t.Errorf("Parse(%q): got %v, want %v", input, got, want)
		}
		if _, off := got.Zone(); off != 9*3600 {
			t.Errorf("Parse(%q): got offset %d", input, off)
		}
	}
	got, err := prog.Parse("2022-04-17T14:16:22-05:30")
	if err != nil {
		t.Fatal(err)
	}
	if _, off := got.Zone(); off != -(5*3600 + 30*60) {
		t.Errorf("got offset %d", off)
	}
}

func TestProgramParseErrors(t *testing.T) {
	tcs := []struct {
		format string
		input  string
	}{
		// the whole input must be consumed
		{"%Y", "2022-04"},
		{"%Y-%m-%d", "2022-13-01"},
		{"%b", "Foo"},
		{"%z", "0900"},
		{"%d", "  5"}, // space padding admits at most width-1 blanks
	}
	for _, tc := range tcs {
		prog, err := CompileParse(tc.format)
		if err != nil {
			t.Fatalf("CompileParse(%q): %s", tc.format, err)
		}
		if _, err := prog.Parse(tc.input); err == nil {
			t.Errorf("Parse(%q, %q): expected error", tc.format, tc.input)
		}
	}
}

// a failed branch must consume no input and leave no
// partial field updates behind
func TestProgramBacktracking(t *testing.T) {
	prog := Program{
		Optional{Item: Field{Kind: KindYear, Pad: PadZero}},
		Field{Kind: KindYearTwo, Pad: PadNone},
	}
	got, err := prog.Parse("70")
	if err != nil {
		t.Fatal(err)
	}
	if got.Year() != 1970 {
		t.Errorf("got year %d, want 1970", got.Year())
	}

	prog = Program{
		First{Literal("AB"), Literal("A")},
		Literal("C"),
	}
	if _, err := prog.Parse("AC"); err != nil {
		t.Fatalf("alternation did not backtrack: %s", err)
	}
	if _, err := prog.Parse("ABC"); err != nil {
		t.Fatal(err)
	}
	if _, err := prog.Parse("AX"); err == nil {
		t.Error("expected error")
	}
}
