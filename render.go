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
	"io"
	"time"
)

// formatter is the rendering realization of formatCollector:
// every primitive call appends the field text to dst. It never
// fails except on an unknown specifier; the value is a valid
// time.Time, so no bounds checking happens here.
type formatter struct {
	dst        []byte
	t          time.Time
	withOffset bool
	zone       string
}

// appendPadded appends v to dst padded to width with pad.
// The sign, if present, counts toward the width; zero padding
// goes after the sign, space padding before it.
func appendPadded(dst []byte, v, width int, pad byte) []byte {
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	n := len(buf) - i
	if neg {
		n++
	}
	if pad == '0' && neg {
		dst = append(dst, '-')
	}
	for ; n < width; n++ {
		dst = append(dst, pad)
	}
	if pad != '0' && neg {
		dst = append(dst, '-')
	}
	return append(dst, buf[i:]...)
}

// appendNanos appends the minimal fraction-of-a-second digit
// string that round-trips ns: leading zeros are kept, trailing
// zeros are stripped down to the last significant digit.
func appendNanos(dst []byte, ns int) []byte {
	if ns == 0 {
		return append(dst, '0')
	}
	var buf [9]byte
	for i := 8; i >= 0; i-- {
		buf[i] = byte('0' + ns%10)
		ns /= 10
	}
	n := 9
	for n > 1 && buf[n-1] == '0' {
		n--
	}
	return append(dst, buf[:n]...)
}

func floorDiv(x, y int) int {
	if x < 0 {
		x = x - y + 1
	}
	return x / y
}

func (f *formatter) weekdayNameShort() error {
	f.dst = append(f.dst, weekdayShort[f.t.Weekday()]...)
	return nil
}

func (f *formatter) weekdayNameLong() error {
	f.dst = append(f.dst, weekdayLong[f.t.Weekday()]...)
	return nil
}

func (f *formatter) monthNameShort() error {
	f.dst = append(f.dst, monthShort[f.t.Month()-1]...)
	return nil
}

func (f *formatter) monthNameLong() error {
	f.dst = append(f.dst, monthLong[f.t.Month()-1]...)
	return nil
}

// century is at least two digits but unbounded;
// floor division keeps negative years sane
// (year -1 is century -1, year -1000 is century -10).
func (f *formatter) century() error {
	f.dst = appendPadded(f.dst, floorDiv(f.t.Year(), 100), 2, '0')
	return nil
}

func (f *formatter) dayOfMonth() error {
	f.dst = appendPadded(f.dst, f.t.Day(), 2, '0')
	return nil
}

func (f *formatter) dayOfMonthBlank() error {
	f.dst = appendPadded(f.dst, f.t.Day(), 2, ' ')
	return nil
}

func (f *formatter) isoYearShort() error {
	y, _ := f.t.ISOWeek()
	f.dst = appendPadded(f.dst, ((y%100)+100)%100, 2, '0')
	return nil
}

func (f *formatter) isoYear() error {
	y, _ := f.t.ISOWeek()
	f.dst = appendPadded(f.dst, y, 4, ' ')
	return nil
}

func (f *formatter) hourOfDay() error {
	f.dst = appendPadded(f.dst, f.t.Hour(), 2, '0')
	return nil
}

func (f *formatter) hourOfDay12() error {
	f.dst = appendPadded(f.dst, hour12(f.t.Hour()), 2, '0')
	return nil
}

func (f *formatter) dayOfYear() error {
	f.dst = appendPadded(f.dst, f.t.YearDay(), 3, '0')
	return nil
}

func (f *formatter) hourOfDayBlank() error {
	f.dst = appendPadded(f.dst, f.t.Hour(), 2, ' ')
	return nil
}

func (f *formatter) hourOfDay12Blank() error {
	f.dst = appendPadded(f.dst, hour12(f.t.Hour()), 2, ' ')
	return nil
}

func (f *formatter) monthOfYear() error {
	f.dst = appendPadded(f.dst, int(f.t.Month()), 2, '0')
	return nil
}

func (f *formatter) minuteOfHour() error {
	f.dst = appendPadded(f.dst, f.t.Minute(), 2, '0')
	return nil
}

func (f *formatter) ampmUpper() error {
	f.dst = append(f.dst, ampmUpper(f.t.Hour())...)
	return nil
}

func (f *formatter) ampmLower() error {
	f.dst = append(f.dst, ampmLower(f.t.Hour())...)
	return nil
}

func (f *formatter) secondOfMinute() error {
	f.dst = appendPadded(f.dst, f.t.Second(), 2, '0')
	return nil
}

func (f *formatter) nanosecond() error {
	f.dst = appendNanos(f.dst, f.t.Nanosecond())
	return nil
}

func (f *formatter) weekdayNumMonday() error {
	f.dst = append(f.dst, byte('0'+weekdayMonday1(f.t.Weekday())))
	return nil
}

func (f *formatter) weekNumSunday() error {
	f.dst = appendPadded(f.dst, weekSunday(f.t), 2, '0')
	return nil
}

func (f *formatter) weekNumISO() error {
	_, w := f.t.ISOWeek()
	f.dst = appendPadded(f.dst, w, 2, '0')
	return nil
}

func (f *formatter) weekdayNumSunday() error {
	f.dst = append(f.dst, byte('0'+int(f.t.Weekday())))
	return nil
}

func (f *formatter) weekNumMonday() error {
	f.dst = appendPadded(f.dst, weekMonday(f.t), 2, '0')
	return nil
}

func (f *formatter) yearShort() error {
	y := f.t.Year()
	if y < 0 {
		y = -y
	}
	f.dst = appendPadded(f.dst, y%100, 2, '0')
	return nil
}

func (f *formatter) year() error {
	f.dst = appendPadded(f.dst, f.t.Year(), 4, '0')
	return nil
}

// offset renders ±hhmm, or nothing at all when no
// offset is attached to the value.
func (f *formatter) offset() error {
	if !f.withOffset {
		return nil
	}
	_, off := f.t.Zone()
	sign := byte('+')
	if off < 0 {
		sign, off = '-', -off
	}
	f.dst = append(f.dst, sign)
	f.dst = appendPadded(f.dst, off/3600, 2, '0')
	f.dst = appendPadded(f.dst, off%3600/60, 2, '0')
	return nil
}

func (f *formatter) zoneName() error {
	f.dst = append(f.dst, f.zone...)
	return nil
}

func (f *formatter) static(s string) error {
	f.dst = append(f.dst, s...)
	return nil
}

func (f *formatter) literal(lit string) error {
	f.dst = append(f.dst, lit...)
	return nil
}

func (f *formatter) unknown(spec rune) error {
	return &UnknownSpecifierError{Specifier: spec}
}

// Format renders t according to the strftime format string.
// No offset or zone name is attached to the value, so %z and
// %Z render nothing.
func Format(format string, t time.Time) (string, error) {
	b, err := AppendFormat(nil, format, t)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// AppendFormat appends the rendering of t to dst
// and returns the extended buffer.
func AppendFormat(dst []byte, format string, t time.Time) ([]byte, error) {
	f := formatter{dst: dst, t: t}
	if err := walkFormat(format, &f); err != nil {
		return nil, err
	}
	return f.dst, nil
}

// FormatOffset is Format with t's own UTC offset attached,
// so %z renders ±hhmm. %Z still renders nothing.
func FormatOffset(format string, t time.Time) (string, error) {
	f := formatter{t: t, withOffset: true}
	if err := walkFormat(format, &f); err != nil {
		return "", err
	}
	return string(f.dst), nil
}

// FormatZoned is FormatOffset with an explicit zone name
// attached for %Z. The name is rendered verbatim; it is not
// resolved against any timezone database.
func FormatZoned(format string, t time.Time, zone string) (string, error) {
	f := formatter{t: t, withOffset: true, zone: zone}
	if err := walkFormat(format, &f); err != nil {
		return "", err
	}
	return string(f.dst), nil
}

// WriteFormat renders t into w. Rendering errors are
// reported before anything is written; write faults
// propagate unchanged.
func WriteFormat(w io.Writer, format string, t time.Time) error {
	b, err := AppendFormat(nil, format, t)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
