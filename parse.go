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
	"time"
	"unicode"
)

// TimeZoneSpecifier is the zone information recovered by
// Parse, either a ZoneOffset or a ZoneName. It is nil when
// the format contained no zone specifier or %z matched
// nothing.
type TimeZoneSpecifier interface {
	zoneSpec()
}

// ZoneOffset is a fixed UTC offset in seconds east of UTC,
// produced by %z.
type ZoneOffset int

func (ZoneOffset) zoneSpec() {}

// ZoneName is an unresolved zone name or abbreviation
// captured by %Z. It is a sub-slice of the parsed input;
// resolving it against a timezone database is the caller's
// concern.
type ZoneName string

func (ZoneName) zoneSpec() {}

// year ambiguity states
const (
	yearNone  = iota // default 1900
	yearFull         // %Y seen; wins over century/suffix
	yearSplit        // assembled from %C and/or %y
)

// day-of-year ambiguity states
const (
	dayNone     = iota // default January 1st
	dayMonthDay        // assembled from %m/%b and %d
	dayOrdinal         // %j seen; wins over month/day
)

// hour ambiguity states
const (
	hourNone = iota // default 0
	hourFull        // %H seen; wins over half-day + am/pm
	hourHalf        // assembled from %I and %p
)

// parser is the recovery realization of parseCollector: every
// primitive call consumes a prefix of the remaining input and
// updates the partially-resolved components. Ambiguous fields
// resolve under "strong wins, else last write wins"; the
// precedence for each logical field lives in exactly one
// method pair below.
type parser struct {
	s      string // remaining input
	strict bool

	yearKind int
	fullYear int // %Y value (yearFull)
	cent     int // signed century (yearSplit)
	suffix   int // last two digits (yearSplit)

	dayKind int
	month   int // 1-12 (dayMonthDay)
	mday    int // 1-31 (dayMonthDay)
	ordinal int // 1-366 (dayOrdinal)

	hourKind int
	hour     int // 0-23 (hourFull), 0-11 (hourHalf)
	pm       bool

	minute int
	second int
	ns     int

	zone TimeZoneSpecifier
}

// scanNat consumes up to max digits, or exactly max in
// strict mode.
func (p *parser) scanNat(max int) (int, error) {
	if p.s == "" {
		return 0, &UnexpectedEndError{Expected: "digits"}
	}
	n, i := 0, 0
	for i < max && i < len(p.s) {
		c := p.s[i]
		if c < '0' || c > '9' {
			if i == 0 {
				return 0, &UnexpectedByteError{Expected: "digits", Byte: c}
			}
			break
		}
		n = n*10 + int(c-'0')
		i++
	}
	if p.strict && i < max {
		if i < len(p.s) {
			return 0, &UnexpectedByteError{Expected: "digits", Byte: p.s[i]}
		}
		return 0, &UnexpectedEndError{Expected: "digits"}
	}
	p.s = p.s[i:]
	return n, nil
}

// scanInt is scanNat with an optional leading sign.
func (p *parser) scanInt(max int) (int, error) {
	if p.s == "" {
		return 0, &UnexpectedEndError{Expected: "digits or sign"}
	}
	neg := false
	switch p.s[0] {
	case '+':
		p.s = p.s[1:]
	case '-':
		neg = true
		p.s = p.s[1:]
	default:
		if p.s[0] < '0' || p.s[0] > '9' {
			return 0, &UnexpectedByteError{Expected: "digits or sign", Byte: p.s[0]}
		}
	}
	n, err := p.scanNat(max)
	if err != nil {
		return 0, err
	}
	if neg {
		n = -n
	}
	return n, nil
}

func (p *parser) spaces() error {
	p.s = strings.TrimLeftFunc(p.s, unicode.IsSpace)
	return nil
}

// weekdayName matches a weekday name case-insensitively,
// preferring the long form over the short one, and discards
// it: weekday never participates in resolution.
func (p *parser) weekdayName() error {
	for wd := 0; wd < 7; wd++ {
		if prefixFold(p.s, weekdayLong[wd]) {
			p.s = p.s[len(weekdayLong[wd]):]
			return nil
		}
		if prefixFold(p.s, weekdayShort[wd]) {
			p.s = p.s[len(weekdayShort[wd]):]
			return nil
		}
	}
	return &NoMatchError{Field: "day of week name"}
}

func (p *parser) monthName() error {
	for m := 0; m < 12; m++ {
		if prefixFold(p.s, monthLong[m]) {
			p.s = p.s[len(monthLong[m]):]
			p.setMonth(m + 1)
			return nil
		}
		if prefixFold(p.s, monthShort[m]) {
			p.s = p.s[len(monthShort[m]):]
			p.setMonth(m + 1)
			return nil
		}
	}
	return &NoMatchError{Field: "month name"}
}

func (p *parser) setMonth(m int) {
	switch p.dayKind {
	case dayNone:
		p.dayKind, p.month, p.mday = dayMonthDay, m, 1
	case dayMonthDay:
		p.month = m
	case dayOrdinal:
		// day-of-year dominates month/day
	}
}

func (p *parser) setMonthDay(d int) {
	switch p.dayKind {
	case dayNone:
		p.dayKind, p.month, p.mday = dayMonthDay, 1, d
	case dayMonthDay:
		p.mday = d
	case dayOrdinal:
		// day-of-year dominates month/day
	}
}

func (p *parser) century() error {
	c, err := p.scanInt(2)
	if err != nil {
		return err
	}
	switch p.yearKind {
	case yearNone:
		p.yearKind, p.cent, p.suffix = yearSplit, c, 0
	case yearFull:
		// full year dominates century/suffix
	case yearSplit:
		p.cent = c
	}
	return nil
}

func (p *parser) dayOfMonth() error {
	d, err := p.scanNat(2)
	if err != nil {
		return err
	}
	if d < 1 || d > 31 {
		return &RangeError{Field: "day-of-month"}
	}
	p.setMonthDay(d)
	return nil
}

func (p *parser) hourOfDay() error {
	h, err := p.scanNat(2)
	if err != nil {
		return err
	}
	if h > 23 {
		return &RangeError{Field: "hour-of-day"}
	}
	switch p.hourKind {
	case hourNone:
		p.hourKind, p.hour = hourFull, h
	case hourFull:
		p.hour = h
	case hourHalf:
		// full-day hour dominates half-day + am/pm
	}
	return nil
}

func (p *parser) hourOfDay12() error {
	h, err := p.scanNat(2)
	if err != nil {
		return err
	}
	if h < 1 || h > 12 {
		return &RangeError{Field: "hour-of-half-day"}
	}
	h %= 12 // 12 AM is hour 0; 12 PM gains 12 back at the end
	switch p.hourKind {
	case hourNone:
		p.hourKind, p.hour = hourHalf, h
	case hourFull:
		// full-day hour dominates half-day + am/pm
	case hourHalf:
		p.hour = h
	}
	return nil
}

func (p *parser) dayOfYear() error {
	d, err := p.scanNat(3)
	if err != nil {
		return err
	}
	if d < 1 || d > 366 {
		return &RangeError{Field: "day-of-year"}
	}
	// ordinal dominates month/day, even ones seen later
	p.dayKind, p.ordinal = dayOrdinal, d
	return nil
}

func (p *parser) monthOfYear() error {
	m, err := p.scanNat(2)
	if err != nil {
		return err
	}
	if m < 1 || m > 12 {
		return &RangeError{Field: "month"}
	}
	p.setMonth(m)
	return nil
}

func (p *parser) minuteOfHour() error {
	m, err := p.scanNat(2)
	if err != nil {
		return err
	}
	if m > 59 {
		return &RangeError{Field: "minute"}
	}
	p.minute = m
	return nil
}

func (p *parser) ampm() error {
	var pm bool
	switch {
	case prefixFold(p.s, "am"):
		pm = false
	case prefixFold(p.s, "pm"):
		pm = true
	default:
		return &NoMatchError{Field: "am/pm"}
	}
	p.s = p.s[2:]
	switch p.hourKind {
	case hourNone:
		p.hourKind, p.hour, p.pm = hourHalf, 0, pm
	case hourFull:
		// full-day hour dominates half-day + am/pm
	case hourHalf:
		p.pm = pm
	}
	return nil
}

// second tolerates 60 for leap seconds; the calendar
// construction normalizes it into the next minute.
func (p *parser) secondOfMinute() error {
	s, err := p.scanNat(2)
	if err != nil {
		return err
	}
	if s > 60 {
		return &RangeError{Field: "second"}
	}
	p.second = s
	return nil
}

// nanosecond reads 1 to 9 digits as a left-aligned fraction
// of a second: "123" is 123ms, "000001234" is 1234ns.
func (p *parser) nanosecond() error {
	before := len(p.s)
	n, err := p.scanNatLenient(9)
	if err != nil {
		return err
	}
	for digits := before - len(p.s); digits < 9; digits++ {
		n *= 10
	}
	p.ns = n
	return nil
}

// scanNatLenient is scanNat without the strict exact-width
// requirement, for fields that are variable-width by nature.
func (p *parser) scanNatLenient(max int) (int, error) {
	strict := p.strict
	p.strict = false
	n, err := p.scanNat(max)
	p.strict = strict
	return n, err
}

func (p *parser) weekNumSunday() error {
	w, err := p.scanNat(2)
	if err != nil {
		return err
	}
	if w > 53 {
		return &RangeError{Field: "week-number"}
	}
	// consumed but never used in resolution
	return nil
}

func (p *parser) weekdayNumSunday() error {
	w, err := p.scanNat(1)
	if err != nil {
		return err
	}
	if w > 6 {
		return &RangeError{Field: "day-of-week"}
	}
	return nil
}

func (p *parser) weekNumMonday() error {
	w, err := p.scanNat(2)
	if err != nil {
		return err
	}
	if w > 53 {
		return &RangeError{Field: "week-number"}
	}
	return nil
}

// yearShort applies the POSIX century split: 00-68 land in
// the 2000s, 69-99 in the 1900s, unless %C said otherwise.
func (p *parser) yearShort() error {
	y, err := p.scanNat(2)
	if err != nil {
		return err
	}
	if y > 99 {
		return &RangeError{Field: "year-suffix"}
	}
	switch p.yearKind {
	case yearNone:
		c := 19
		if y < 69 {
			c = 20
		}
		p.yearKind, p.cent, p.suffix = yearSplit, c, y
	case yearFull:
		// full year dominates century/suffix
	case yearSplit:
		p.suffix = y
	}
	return nil
}

func (p *parser) year() error {
	y, err := p.scanInt(4)
	if err != nil {
		return err
	}
	// full year dominates century/suffix, in both directions
	p.yearKind, p.fullYear = yearFull, y
	return nil
}

// offset accepts Z (UTC), or a sign, exactly two hour digits,
// an optional colon, and exactly two minute digits.
func (p *parser) offset() error {
	if p.s == "" {
		return &UnexpectedEndError{Expected: "timezone offset"}
	}
	if p.s[0] == 'Z' {
		p.s = p.s[1:]
		p.zone = ZoneOffset(0)
		return nil
	}
	neg := false
	switch p.s[0] {
	case '+':
	case '-':
		neg = true
	default:
		return &UnexpectedByteError{Expected: "timezone offset", Byte: p.s[0]}
	}
	rest := p.s[1:]
	h, err := fixedDigits(rest, 2)
	if err != nil {
		return err
	}
	rest = rest[2:]
	if rest != "" && rest[0] == ':' {
		rest = rest[1:]
	}
	m, err := fixedDigits(rest, 2)
	if err != nil {
		return err
	}
	rest = rest[2:]
	if h > 23 {
		return &RangeError{Field: "offset-hour"}
	}
	if m > 59 {
		return &RangeError{Field: "offset-minute"}
	}
	off := h*3600 + m*60
	if neg {
		off = -off
	}
	p.s = rest
	p.zone = ZoneOffset(off)
	return nil
}

// fixedDigits reads exactly n leading digits of s.
func fixedDigits(s string, n int) (int, error) {
	v := 0
	for i := 0; i < n; i++ {
		if i >= len(s) {
			return 0, &UnexpectedEndError{Expected: "digits"}
		}
		c := s[i]
		if c < '0' || c > '9' {
			return 0, &UnexpectedByteError{Expected: "digits", Byte: c}
		}
		v = v*10 + int(c-'0')
	}
	return v, nil
}

// zoneName captures the run of non-whitespace input as an
// opaque zone token; no offset lookup happens here.
func (p *parser) zoneName() error {
	i := strings.IndexFunc(p.s, unicode.IsSpace)
	if i < 0 {
		i = len(p.s)
	}
	p.zone = ZoneName(p.s[:i])
	p.s = p.s[i:]
	return nil
}

func (p *parser) static(s string) error {
	if !strings.HasPrefix(p.s, s) {
		return &NoMatchError{Field: s}
	}
	p.s = p.s[len(s):]
	return nil
}

func (p *parser) literal(lit string) error {
	if !strings.HasPrefix(p.s, lit) {
		return &NoMatchError{Field: "string literal"}
	}
	p.s = p.s[len(lit):]
	return nil
}

func (p *parser) unknown(spec rune) error {
	return &UnknownSpecifierError{Specifier: spec}
}

// finalize resolves the accumulated components into a
// calendar value, applying the documented defaults
// (year 1900, January 1st, midnight).
func (p *parser) finalize() (time.Time, TimeZoneSpecifier, error) {
	if p.strict && p.s != "" {
		return time.Time{}, nil, &UnconvertedDataError{Data: p.s}
	}
	year := 1900
	switch p.yearKind {
	case yearFull:
		year = p.fullYear
	case yearSplit:
		year = p.cent*100 + p.suffix
	}
	month, day := 1, 1
	switch p.dayKind {
	case dayMonthDay:
		if p.mday > daysin(year, p.month) {
			return time.Time{}, nil, &RangeError{Field: "day-of-month"}
		}
		month, day = p.month, p.mday
	case dayOrdinal:
		if p.ordinal > yeardays(year) {
			return time.Time{}, nil, &RangeError{Field: "day-of-year"}
		}
		month, day = ordinal2date(year, p.ordinal)
	}
	hour := 0
	switch p.hourKind {
	case hourFull:
		hour = p.hour
	case hourHalf:
		hour = p.hour
		if p.pm {
			hour += 12
		}
	}
	t := time.Date(year, time.Month(month), day, hour, p.minute, p.second, p.ns, time.UTC)
	return t, p.zone, nil
}

// Parse recovers a date-time from s according to the
// strftime format string. Fields absent from the format
// default to midnight, January 1st 1900. The returned time
// is constructed in UTC; any zone information captured by
// %z or %Z is returned as a TimeZoneSpecifier for the
// caller to resolve. Trailing input beyond the format is
// accepted and ignored.
//
// Numeric fields accept fewer digits than their padded
// width, so "5" satisfies %d. Use ParseStrict to require
// exact widths.
func Parse(format, s string) (time.Time, TimeZoneSpecifier, error) {
	p := parser{s: s}
	if err := walkParse(format, &p); err != nil {
		return time.Time{}, nil, err
	}
	return p.finalize()
}

// ParseStrict is Parse with exact-width numeric fields, and
// it fails with UnconvertedDataError if any input remains
// once the format is fully consumed.
func ParseStrict(format, s string) (time.Time, TimeZoneSpecifier, error) {
	p := parser{s: s, strict: true}
	if err := walkParse(format, &p); err != nil {
		return time.Time{}, nil, err
	}
	return p.finalize()
}
