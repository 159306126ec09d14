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
	"strings"
	"unicode"
	"unicode/utf8"
)

// formatCollector is the capability set driven by walkFormat,
// one method per primitive rendering specifier. Composite
// specifiers never appear here; they are fixed sequences of
// these primitives (see fmtDateTime and friends) shared by
// every realization of the rendering direction.
//
// %E and %O modifiers are not implemented; the grammar is
// fixed to the POSIX locale.
type formatCollector interface {
	weekdayNameShort() error // %a
	weekdayNameLong() error  // %A
	monthNameShort() error   // %b, %h
	monthNameLong() error    // %B
	century() error          // %C
	dayOfMonth() error       // %d
	dayOfMonthBlank() error  // %e
	isoYearShort() error     // %g
	isoYear() error          // %G
	hourOfDay() error        // %H
	hourOfDay12() error      // %I
	dayOfYear() error        // %j
	hourOfDayBlank() error   // %k
	hourOfDay12Blank() error // %l
	monthOfYear() error      // %m
	minuteOfHour() error     // %M
	ampmUpper() error        // %p
	ampmLower() error        // %P
	secondOfMinute() error   // %S
	nanosecond() error       // %f
	weekdayNumMonday() error // %u, Monday=1..Sunday=7
	weekNumSunday() error    // %U
	weekNumISO() error       // %V
	weekdayNumSunday() error // %w, Sunday=0..Saturday=6
	weekNumMonday() error    // %W
	yearShort() error        // %y
	year() error             // %Y
	offset() error           // %z
	zoneName() error         // %Z

	// static receives fixed separators and the expansions
	// of %n, %t and %%; literal receives runs of ordinary
	// format characters as sub-slices of the format string.
	static(s string) error
	literal(lit string) error
	unknown(spec rune) error
}

// parseCollector is the capability set driven by walkParse.
// Specifiers that are indistinguishable on input share one
// method (%d/%e, %H/%k, %I/%l, %a/%A, %b/%B/%h, %p/%P).
type parseCollector interface {
	// spaces consumes zero or more whitespace characters;
	// any whitespace run in the format maps to one call.
	spaces() error
	weekdayName() error    // %a, %A
	monthName() error      // %b, %B, %h
	century() error        // %C
	dayOfMonth() error     // %d, %e
	hourOfDay() error      // %H, %k
	hourOfDay12() error    // %I, %l
	dayOfYear() error      // %j
	monthOfYear() error    // %m
	minuteOfHour() error   // %M
	ampm() error           // %p, %P
	secondOfMinute() error // %S
	nanosecond() error     // %f
	weekNumSunday() error  // %U
	weekdayNumSunday() error
	weekNumMonday() error // %W
	yearShort() error     // %y
	year() error          // %Y
	offset() error        // %z
	zoneName() error      // %Z

	static(s string) error
	literal(lit string) error
	unknown(spec rune) error
}

// %T and %X: %H:%M:%S
func fmtClock(c formatCollector) error {
	if err := c.hourOfDay(); err != nil {
		return err
	}
	if err := c.static(":"); err != nil {
		return err
	}
	if err := c.minuteOfHour(); err != nil {
		return err
	}
	if err := c.static(":"); err != nil {
		return err
	}
	return c.secondOfMinute()
}

// %c: %a %b %e %T %Y
func fmtDateTime(c formatCollector) error {
	if err := c.weekdayNameShort(); err != nil {
		return err
	}
	if err := c.static(" "); err != nil {
		return err
	}
	if err := c.monthNameShort(); err != nil {
		return err
	}
	if err := c.static(" "); err != nil {
		return err
	}
	if err := c.dayOfMonthBlank(); err != nil {
		return err
	}
	if err := c.static(" "); err != nil {
		return err
	}
	if err := fmtClock(c); err != nil {
		return err
	}
	if err := c.static(" "); err != nil {
		return err
	}
	return c.year()
}

// %D and %x: %m/%d/%y
func fmtUSDate(c formatCollector) error {
	if err := c.monthOfYear(); err != nil {
		return err
	}
	if err := c.static("/"); err != nil {
		return err
	}
	if err := c.dayOfMonth(); err != nil {
		return err
	}
	if err := c.static("/"); err != nil {
		return err
	}
	return c.yearShort()
}

// %F: %Y-%m-%d
func fmtISODate(c formatCollector) error {
	if err := c.year(); err != nil {
		return err
	}
	if err := c.static("-"); err != nil {
		return err
	}
	if err := c.monthOfYear(); err != nil {
		return err
	}
	if err := c.static("-"); err != nil {
		return err
	}
	return c.dayOfMonth()
}

// %r: %I:%M:%S %p
func fmtClock12(c formatCollector) error {
	if err := c.hourOfDay12(); err != nil {
		return err
	}
	if err := c.static(":"); err != nil {
		return err
	}
	if err := c.minuteOfHour(); err != nil {
		return err
	}
	if err := c.static(":"); err != nil {
		return err
	}
	if err := c.secondOfMinute(); err != nil {
		return err
	}
	if err := c.static(" "); err != nil {
		return err
	}
	return c.ampmUpper()
}

// %R: %H:%M
func fmtHourMinute(c formatCollector) error {
	if err := c.hourOfDay(); err != nil {
		return err
	}
	if err := c.static(":"); err != nil {
		return err
	}
	return c.minuteOfHour()
}

// walkFormat scans format once and drives c, one call per
// literal run or specifier. A trailing lone % is a literal %.
func walkFormat(format string, c formatCollector) error {
	for len(format) > 0 {
		i := strings.IndexByte(format, '%')
		if i < 0 {
			return c.literal(format)
		}
		if i > 0 {
			if err := c.literal(format[:i]); err != nil {
				return err
			}
			format = format[i:]
		}
		format = format[1:]
		if format == "" {
			return c.static("%")
		}
		var err error
		switch format[0] {
		case 'a':
			err = c.weekdayNameShort()
		case 'A':
			err = c.weekdayNameLong()
		case 'b', 'h':
			err = c.monthNameShort()
		case 'B':
			err = c.monthNameLong()
		case 'c':
			err = fmtDateTime(c)
		case 'C':
			err = c.century()
		case 'd':
			err = c.dayOfMonth()
		case 'D':
			err = fmtUSDate(c)
		case 'e':
			err = c.dayOfMonthBlank()
		case 'f':
			err = c.nanosecond()
		case 'F':
			err = fmtISODate(c)
		case 'g':
			err = c.isoYearShort()
		case 'G':
			err = c.isoYear()
		case 'H':
			err = c.hourOfDay()
		case 'I':
			err = c.hourOfDay12()
		case 'j':
			err = c.dayOfYear()
		case 'k':
			err = c.hourOfDayBlank()
		case 'l':
			err = c.hourOfDay12Blank()
		case 'm':
			err = c.monthOfYear()
		case 'M':
			err = c.minuteOfHour()
		case 'n':
			err = c.static("\n")
		case 'p':
			err = c.ampmUpper()
		case 'P':
			err = c.ampmLower()
		case 'r':
			err = fmtClock12(c)
		case 'R':
			err = fmtHourMinute(c)
		case 'S':
			err = c.secondOfMinute()
		case 't':
			err = c.static("\t")
		case 'T', 'X':
			err = fmtClock(c)
		case 'u':
			err = c.weekdayNumMonday()
		case 'U':
			err = c.weekNumSunday()
		case 'V':
			err = c.weekNumISO()
		case 'w':
			err = c.weekdayNumSunday()
		case 'W':
			err = c.weekNumMonday()
		case 'x':
			err = fmtUSDate(c)
		case 'y':
			err = c.yearShort()
		case 'Y':
			err = c.year()
		case 'z':
			err = c.offset()
		case 'Z':
			err = c.zoneName()
		case '%':
			err = c.static("%")
		default:
			r, size := utf8.DecodeRuneInString(format)
			if err := c.unknown(r); err != nil {
				return err
			}
			format = format[size:]
			continue
		}
		if err != nil {
			return err
		}
		format = format[1:]
	}
	return nil
}

// %T in the recovery direction tolerates whitespace
// around the separators.
func scanClock(c parseCollector) error {
	if err := c.hourOfDay(); err != nil {
		return err
	}
	if err := c.spaces(); err != nil {
		return err
	}
	if err := c.static(":"); err != nil {
		return err
	}
	if err := c.spaces(); err != nil {
		return err
	}
	if err := c.minuteOfHour(); err != nil {
		return err
	}
	if err := c.spaces(); err != nil {
		return err
	}
	if err := c.static(":"); err != nil {
		return err
	}
	if err := c.spaces(); err != nil {
		return err
	}
	return c.secondOfMinute()
}

// %X is the strict-separator flavor of %T.
func scanClockTight(c parseCollector) error {
	if err := c.hourOfDay(); err != nil {
		return err
	}
	if err := c.static(":"); err != nil {
		return err
	}
	if err := c.minuteOfHour(); err != nil {
		return err
	}
	if err := c.static(":"); err != nil {
		return err
	}
	return c.secondOfMinute()
}

// %c
func scanDateTime(c parseCollector) error {
	if err := c.weekdayName(); err != nil {
		return err
	}
	if err := c.spaces(); err != nil {
		return err
	}
	if err := c.monthName(); err != nil {
		return err
	}
	if err := c.spaces(); err != nil {
		return err
	}
	if err := c.dayOfMonth(); err != nil {
		return err
	}
	if err := c.spaces(); err != nil {
		return err
	}
	if err := scanClock(c); err != nil {
		return err
	}
	if err := c.spaces(); err != nil {
		return err
	}
	return c.year()
}

// %D
func scanUSDate(c parseCollector) error {
	if err := c.monthOfYear(); err != nil {
		return err
	}
	if err := c.spaces(); err != nil {
		return err
	}
	if err := c.static("/"); err != nil {
		return err
	}
	if err := c.spaces(); err != nil {
		return err
	}
	if err := c.dayOfMonth(); err != nil {
		return err
	}
	if err := c.spaces(); err != nil {
		return err
	}
	if err := c.static("/"); err != nil {
		return err
	}
	if err := c.spaces(); err != nil {
		return err
	}
	return c.yearShort()
}

// %x is the strict-separator flavor of %D.
func scanUSDateTight(c parseCollector) error {
	if err := c.monthOfYear(); err != nil {
		return err
	}
	if err := c.static("/"); err != nil {
		return err
	}
	if err := c.dayOfMonth(); err != nil {
		return err
	}
	if err := c.static("/"); err != nil {
		return err
	}
	return c.yearShort()
}

// %F
func scanISODate(c parseCollector) error {
	if err := c.year(); err != nil {
		return err
	}
	if err := c.static("-"); err != nil {
		return err
	}
	if err := c.monthOfYear(); err != nil {
		return err
	}
	if err := c.static("-"); err != nil {
		return err
	}
	return c.dayOfMonth()
}

// %r
func scanClock12(c parseCollector) error {
	if err := c.hourOfDay12(); err != nil {
		return err
	}
	if err := c.spaces(); err != nil {
		return err
	}
	if err := c.static(":"); err != nil {
		return err
	}
	if err := c.spaces(); err != nil {
		return err
	}
	if err := c.minuteOfHour(); err != nil {
		return err
	}
	if err := c.spaces(); err != nil {
		return err
	}
	if err := c.static(":"); err != nil {
		return err
	}
	if err := c.spaces(); err != nil {
		return err
	}
	if err := c.secondOfMinute(); err != nil {
		return err
	}
	if err := c.spaces(); err != nil {
		return err
	}
	return c.ampm()
}

// %R
func scanHourMinute(c parseCollector) error {
	if err := c.hourOfDay(); err != nil {
		return err
	}
	if err := c.spaces(); err != nil {
		return err
	}
	if err := c.static(":"); err != nil {
		return err
	}
	if err := c.spaces(); err != nil {
		return err
	}
	return c.minuteOfHour()
}

// walkParse scans format once and drives c. Unlike
// walkFormat, literal runs additionally break at whitespace:
// each whitespace run in the format becomes a single spaces
// call, so any amount of input whitespace (including none)
// matches any amount of format whitespace.
func walkParse(format string, c parseCollector) error {
	for len(format) > 0 {
		i := strings.IndexFunc(format, func(r rune) bool {
			return r == '%' || unicode.IsSpace(r)
		})
		if i != 0 {
			if i < 0 {
				i = len(format)
			}
			if err := c.literal(format[:i]); err != nil {
				return err
			}
			format = format[i:]
			if format == "" {
				break
			}
		}
		if format[0] != '%' {
			if err := c.spaces(); err != nil {
				return err
			}
			format = strings.TrimLeftFunc(format, unicode.IsSpace)
			continue
		}
		format = format[1:]
		if format == "" {
			return c.static("%")
		}
		var err error
		switch format[0] {
		case 'a', 'A':
			err = c.weekdayName()
		case 'b', 'B', 'h':
			err = c.monthName()
		case 'c':
			err = scanDateTime(c)
		case 'C':
			err = c.century()
		case 'd', 'e':
			err = c.dayOfMonth()
		case 'D':
			err = scanUSDate(c)
		case 'f':
			err = c.nanosecond()
		case 'F':
			err = scanISODate(c)
		case 'H', 'k':
			err = c.hourOfDay()
		case 'I', 'l':
			err = c.hourOfDay12()
		case 'j':
			err = c.dayOfYear()
		case 'm':
			err = c.monthOfYear()
		case 'M':
			err = c.minuteOfHour()
		case 'n', 't':
			err = c.spaces()
		case 'p', 'P':
			err = c.ampm()
		case 'r':
			err = scanClock12(c)
		case 'R':
			err = scanHourMinute(c)
		case 'S':
			err = c.secondOfMinute()
		case 'T':
			err = scanClock(c)
		case 'U':
			err = c.weekNumSunday()
		case 'w':
			err = c.weekdayNumSunday()
		case 'W':
			err = c.weekNumMonday()
		case 'x':
			err = scanUSDateTight(c)
		case 'X':
			err = scanClockTight(c)
		case 'y':
			err = c.yearShort()
		case 'Y':
			err = c.year()
		case 'z':
			err = c.offset()
		case 'Z':
			err = c.zoneName()
		case '%':
			err = c.static("%")
		default:
			r, size := utf8.DecodeRuneInString(format)
			if err := c.unknown(r); err != nil {
				return err
			}
			format = format[size:]
			continue
		}
		if err != nil {
			return err
		}
		format = format[1:]
	}
	return nil
}
