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
	"time"

	"golang.org/x/exp/slices"
)

// A Program is a format string lowered into a replayable
// tree of nodes by CompileFormat or CompileParse. Programs
// are immutable once built and safe to share between
// goroutines; compiling once and replaying avoids walking
// the format string on every call.
type Program []Item

// Item is a single Program node: a Literal byte run, a
// Field, an Optional sub-tree, or a First alternation.
type Item interface {
	item()
}

// Literal matches (or emits) a fixed byte run.
type Literal string

func (Literal) item() {}

// Optional wraps a node that may match zero input.
// Rendering always emits the wrapped node.
type Optional struct {
	Item Item
}

func (Optional) item() {}

// First is an ordered alternation: parsing tries each
// alternative in order and keeps the first match;
// rendering emits the first alternative.
type First []Item

func (First) item() {}

// Padding is the numeric padding policy of a Field.
type Padding uint8

const (
	PadZero Padding = iota
	PadSpace
	PadNone
)

// FieldKind identifies the date-time component a Field
// carries.
type FieldKind uint8

const (
	KindYear       FieldKind = iota // 4-digit year, sign allowed
	KindYearTwo                     // last two digits of the year
	KindISOYear                     // ISO 8601 week-based year
	KindISOYearTwo                  // week-based year modulo 100
	KindMonth                       // numeric month 01-12
	KindMonthShort                  // "Jan"
	KindMonthLong                   // "January"
	KindDay                         // day of month 01-31
	KindOrdinal                     // day of year 001-366
	KindHour                        // 00-23
	KindHour12                      // 01-12
	KindMinute
	KindSecond
	KindSubsecond    // fraction of a second, 1-9 digits
	KindPeriodUpper  // AM/PM
	KindPeriodLower  // am/pm
	KindWeekdayShort // "Sun"
	KindWeekdayLong  // "Sunday"
	KindWeekdayMon1  // numeric, Monday=1..Sunday=7
	KindWeekdaySun0  // numeric, Sunday=0..Saturday=6
	KindWeekSunday   // week of year, Sunday first
	KindWeekMonday   // week of year, Monday first
	KindWeekISO      // ISO 8601 week number
	KindOffsetHour   // signed offset hours, sign mandatory
	KindOffsetMinute // offset minutes, no sign
)

// Field matches (or emits) one date-time component
// under a padding policy.
type Field struct {
	Kind FieldKind
	Pad  Padding
}

func (Field) item() {}

// width is the padded digit count of a numeric field.
func (f Field) width() int {
	switch f.Kind {
	case KindYear, KindISOYear:
		return 4
	case KindOrdinal:
		return 3
	case KindWeekdayMon1, KindWeekdaySun0:
		return 1
	default:
		return 2
	}
}

// AppendFormat renders t through the program and appends
// the result to dst. Offset fields use t's own UTC offset.
func (p Program) AppendFormat(dst []byte, t time.Time) []byte {
	for _, it := range p {
		dst = renderItem(dst, it, t)
	}
	return dst
}

// Format renders t through the program.
func (p Program) Format(t time.Time) string {
	return string(p.AppendFormat(nil, t))
}

func renderItem(dst []byte, it Item, t time.Time) []byte {
	switch v := it.(type) {
	case Literal:
		return append(dst, v...)
	case Optional:
		return renderItem(dst, v.Item, t)
	case First:
		if len(v) > 0 {
			return renderItem(dst, v[0], t)
		}
		return dst
	case Field:
		return renderField(dst, v, t)
	}
	return dst
}

func renderField(dst []byte, f Field, t time.Time) []byte {
	pad, width := byte('0'), f.width()
	switch f.Pad {
	case PadSpace:
		pad = ' '
	case PadNone:
		width = 0
	}
	switch f.Kind {
	case KindYear:
		return appendPadded(dst, t.Year(), width, pad)
	case KindYearTwo:
		y := t.Year()
		if y < 0 {
			y = -y
		}
		return appendPadded(dst, y%100, width, pad)
	case KindISOYear:
		y, _ := t.ISOWeek()
		return appendPadded(dst, y, width, pad)
	case KindISOYearTwo:
		y, _ := t.ISOWeek()
		return appendPadded(dst, ((y%100)+100)%100, width, pad)
	case KindMonth:
		return appendPadded(dst, int(t.Month()), width, pad)
	case KindMonthShort:
		return append(dst, monthShort[t.Month()-1]...)
	case KindMonthLong:
		return append(dst, monthLong[t.Month()-1]...)
	case KindDay:
		return appendPadded(dst, t.Day(), width, pad)
	case KindOrdinal:
		return appendPadded(dst, t.YearDay(), width, pad)
	case KindHour:
		return appendPadded(dst, t.Hour(), width, pad)
	case KindHour12:
		return appendPadded(dst, hour12(t.Hour()), width, pad)
	case KindMinute:
		return appendPadded(dst, t.Minute(), width, pad)
	case KindSecond:
		return appendPadded(dst, t.Second(), width, pad)
	case KindSubsecond:
		return appendNanos(dst, t.Nanosecond())
	case KindPeriodUpper:
		return append(dst, ampmUpper(t.Hour())...)
	case KindPeriodLower:
		return append(dst, ampmLower(t.Hour())...)
	case KindWeekdayShort:
		return append(dst, weekdayShort[t.Weekday()]...)
	case KindWeekdayLong:
		return append(dst, weekdayLong[t.Weekday()]...)
	case KindWeekdayMon1:
		return append(dst, byte('0'+weekdayMonday1(t.Weekday())))
	case KindWeekdaySun0:
		return append(dst, byte('0'+int(t.Weekday())))
	case KindWeekSunday:
		return appendPadded(dst, weekSunday(t), width, pad)
	case KindWeekMonday:
		return appendPadded(dst, weekMonday(t), width, pad)
	case KindWeekISO:
		_, w := t.ISOWeek()
		return appendPadded(dst, w, width, pad)
	case KindOffsetHour:
		_, off := t.Zone()
		sign := byte('+')
		if off < 0 {
			sign, off = '-', -off
		}
		dst = append(dst, sign)
		return appendPadded(dst, off/3600, width, pad)
	case KindOffsetMinute:
		_, off := t.Zone()
		if off < 0 {
			off = -off
		}
		return appendPadded(dst, off%3600/60, width, pad)
	}
	return dst
}

// progParser replays a parse-direction program against an
// input string, reusing the recovery accumulator and adding
// the offset components that only exist in compiled form.
type progParser struct {
	parser
	offHour int
	offMin  int
	hasOff  bool
}

// Parse recovers a date-time from s by replaying the
// program. The whole input must be consumed. If offset
// fields matched, the result carries the parsed fixed-zone
// offset; otherwise it is in UTC.
func (p Program) Parse(s string) (time.Time, error) {
	e := progParser{parser: parser{s: s, strict: true}}
	if err := e.run(p); err != nil {
		return time.Time{}, err
	}
	t, _, err := e.finalize()
	if err != nil {
		return time.Time{}, err
	}
	if e.hasOff {
		off := e.offHour*3600 + e.offMin*60
		if e.offHour < 0 {
			off = e.offHour*3600 - e.offMin*60
		}
		t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(),
			t.Second(), t.Nanosecond(), time.FixedZone("", off))
	}
	return t, nil
}

func (e *progParser) run(items []Item) error {
	for _, it := range items {
		if err := e.eval(it); err != nil {
			return err
		}
	}
	return nil
}

// eval consumes input for a single node. Optional and First
// snapshot the whole parser state so a failed branch leaves
// no partial field updates behind.
func (e *progParser) eval(it Item) error {
	switch v := it.(type) {
	case Literal:
		return e.literal(string(v))
	case Optional:
		saved := *e
		if err := e.eval(v.Item); err != nil {
			*e = saved
		}
		return nil
	case First:
		saved := *e
		err := error(&NoMatchError{Field: "alternation"})
		for _, alt := range v {
			*e = saved
			if err = e.eval(alt); err == nil {
				return nil
			}
		}
		return err
	case Field:
		return e.field(v)
	}
	return nil
}

// scanPadded consumes a numeric field under f's padding
// policy: zero padding demands the exact width, space
// padding tolerates leading blanks, and no padding takes
// 1 to width digits.
func (e *progParser) scanPadded(f Field) (int, error) {
	width := f.width()
	switch f.Pad {
	case PadZero:
		v, err := fixedDigits(e.s, width)
		if err != nil {
			return 0, err
		}
		e.s = e.s[width:]
		return v, nil
	case PadSpace:
		skip := 0
		for skip < width-1 && skip < len(e.s) && e.s[skip] == ' ' {
			skip++
		}
		e.s = e.s[skip:]
		return e.scanNatLenient(width - skip)
	default:
		return e.scanNatLenient(width)
	}
}

func (e *progParser) signed(f Field) (int, error) {
	if e.s == "" {
		return 0, &UnexpectedEndError{Expected: "digits or sign"}
	}
	neg := false
	switch e.s[0] {
	case '+':
		e.s = e.s[1:]
	case '-':
		neg = true
		e.s = e.s[1:]
	default:
		if f.Kind == KindOffsetHour {
			// sign is mandatory for offsets
			return 0, &UnexpectedByteError{Expected: "sign", Byte: e.s[0]}
		}
	}
	v, err := e.scanPadded(f)
	if err != nil {
		return 0, err
	}
	if neg {
		v = -v
	}
	return v, nil
}

// matchName consumes a case-insensitive name from the table
// and returns its index.
func (e *progParser) matchName(names []string, field string) (int, error) {
	i := slices.IndexFunc(names, func(n string) bool {
		return prefixFold(e.s, n)
	})
	if i < 0 {
		return 0, &NoMatchError{Field: field}
	}
	e.s = e.s[len(names[i]):]
	return i, nil
}

func (e *progParser) field(f Field) error {
	switch f.Kind {
	case KindYear:
		v, err := e.signed(f)
		if err != nil {
			return err
		}
		e.yearKind, e.fullYear = yearFull, v
	case KindYearTwo:
		v, err := e.scanPadded(f)
		if err != nil {
			return err
		}
		if v > 99 {
			return &RangeError{Field: "year-suffix"}
		}
		if e.yearKind != yearFull {
			c := 19
			if v < 69 {
				c = 20
			}
			e.yearKind, e.cent, e.suffix = yearSplit, c, v
		}
	case KindISOYear, KindISOYearTwo:
		// consumed for symmetry with rendering; the
		// accumulator has no week-date resolution
		if _, err := e.signed(f); err != nil {
			return err
		}
	case KindMonth:
		v, err := e.scanPadded(f)
		if err != nil {
			return err
		}
		if v < 1 || v > 12 {
			return &RangeError{Field: "month"}
		}
		e.setMonth(v)
	case KindMonthShort:
		i, err := e.matchName(monthShort[:], "month name")
		if err != nil {
			return err
		}
		e.setMonth(i + 1)
	case KindMonthLong:
		i, err := e.matchName(monthLong[:], "month name")
		if err != nil {
			return err
		}
		e.setMonth(i + 1)
	case KindDay:
		v, err := e.scanPadded(f)
		if err != nil {
			return err
		}
		if v < 1 || v > 31 {
			return &RangeError{Field: "day-of-month"}
		}
		e.setMonthDay(v)
	case KindOrdinal:
		v, err := e.scanPadded(f)
		if err != nil {
			return err
		}
		if v < 1 || v > 366 {
			return &RangeError{Field: "day-of-year"}
		}
		e.dayKind, e.ordinal = dayOrdinal, v
	case KindHour:
		v, err := e.scanPadded(f)
		if err != nil {
			return err
		}
		if v > 23 {
			return &RangeError{Field: "hour-of-day"}
		}
		e.hourKind, e.hour = hourFull, v
	case KindHour12:
		v, err := e.scanPadded(f)
		if err != nil {
			return err
		}
		if v < 1 || v > 12 {
			return &RangeError{Field: "hour-of-half-day"}
		}
		if e.hourKind != hourFull {
			e.hourKind, e.hour = hourHalf, v%12
		}
	case KindMinute:
		v, err := e.scanPadded(f)
		if err != nil {
			return err
		}
		if v > 59 {
			return &RangeError{Field: "minute"}
		}
		e.minute = v
	case KindSecond:
		v, err := e.scanPadded(f)
		if err != nil {
			return err
		}
		if v > 60 {
			return &RangeError{Field: "second"}
		}
		e.second = v
	case KindSubsecond:
		return e.nanosecond()
	case KindPeriodUpper, KindPeriodLower:
		switch {
		case prefixFold(e.s, "am"):
			if e.hourKind != hourFull {
				e.hourKind, e.pm = hourHalf, false
			}
		case prefixFold(e.s, "pm"):
			if e.hourKind != hourFull {
				e.hourKind, e.pm = hourHalf, true
			}
		default:
			return &NoMatchError{Field: "am/pm"}
		}
		e.s = e.s[2:]
	case KindWeekdayShort:
		_, err := e.matchName(weekdayShort[:], "day of week name")
		return err
	case KindWeekdayLong:
		_, err := e.matchName(weekdayLong[:], "day of week name")
		return err
	case KindWeekdayMon1:
		v, err := e.scanPadded(f)
		if err != nil {
			return err
		}
		if v < 1 || v > 7 {
			return &RangeError{Field: "day-of-week"}
		}
	case KindWeekdaySun0:
		v, err := e.scanPadded(f)
		if err != nil {
			return err
		}
		if v > 6 {
			return &RangeError{Field: "day-of-week"}
		}
	case KindWeekSunday, KindWeekMonday, KindWeekISO:
		v, err := e.scanPadded(f)
		if err != nil {
			return err
		}
		if v > 53 {
			return &RangeError{Field: "week-number"}
		}
	case KindOffsetHour:
		v, err := e.signed(f)
		if err != nil {
			return err
		}
		if v < -23 || v > 23 {
			return &RangeError{Field: "offset-hour"}
		}
		e.offHour, e.hasOff = v, true
	case KindOffsetMinute:
		v, err := e.scanPadded(f)
		if err != nil {
			return err
		}
		if v > 59 {
			return &RangeError{Field: "offset-minute"}
		}
		e.offMin, e.hasOff = v, true
	}
	return nil
}
