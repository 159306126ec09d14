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

// formatCompiler is the compiling realization of
// formatCollector: instead of producing text it appends
// declarative nodes to a program. Rendering a value many
// times against one format then replays the program
// without re-walking the format string.
type formatCompiler struct {
	prog Program
}

func (c *formatCompiler) push(it Item) error {
	c.prog = append(c.prog, it)
	return nil
}

func (c *formatCompiler) weekdayNameShort() error { return c.push(Field{Kind: KindWeekdayShort}) }
func (c *formatCompiler) weekdayNameLong() error  { return c.push(Field{Kind: KindWeekdayLong}) }
func (c *formatCompiler) monthNameShort() error   { return c.push(Field{Kind: KindMonthShort}) }
func (c *formatCompiler) monthNameLong() error    { return c.push(Field{Kind: KindMonthLong}) }

// century has no bounded node representation
// (it is unbounded-width on output)
func (c *formatCompiler) century() error {
	return &NoRepresentationError{Specifier: "%C"}
}

func (c *formatCompiler) dayOfMonth() error {
	return c.push(Field{Kind: KindDay, Pad: PadZero})
}

func (c *formatCompiler) dayOfMonthBlank() error {
	return c.push(Field{Kind: KindDay, Pad: PadSpace})
}

func (c *formatCompiler) isoYearShort() error {
	return c.push(Field{Kind: KindISOYearTwo, Pad: PadZero})
}

func (c *formatCompiler) isoYear() error {
	return c.push(Field{Kind: KindISOYear, Pad: PadSpace})
}

func (c *formatCompiler) hourOfDay() error {
	return c.push(Field{Kind: KindHour, Pad: PadZero})
}

func (c *formatCompiler) hourOfDay12() error {
	return c.push(Field{Kind: KindHour12, Pad: PadZero})
}

func (c *formatCompiler) dayOfYear() error {
	return c.push(Field{Kind: KindOrdinal, Pad: PadZero})
}

func (c *formatCompiler) hourOfDayBlank() error {
	return c.push(Field{Kind: KindHour, Pad: PadSpace})
}

func (c *formatCompiler) hourOfDay12Blank() error {
	return c.push(Field{Kind: KindHour12, Pad: PadSpace})
}

func (c *formatCompiler) monthOfYear() error {
	return c.push(Field{Kind: KindMonth, Pad: PadZero})
}

func (c *formatCompiler) minuteOfHour() error {
	return c.push(Field{Kind: KindMinute, Pad: PadZero})
}

func (c *formatCompiler) ampmUpper() error { return c.push(Field{Kind: KindPeriodUpper}) }
func (c *formatCompiler) ampmLower() error { return c.push(Field{Kind: KindPeriodLower}) }

func (c *formatCompiler) secondOfMinute() error {
	return c.push(Field{Kind: KindSecond, Pad: PadZero})
}

func (c *formatCompiler) nanosecond() error {
	return c.push(Field{Kind: KindSubsecond})
}

func (c *formatCompiler) weekdayNumMonday() error {
	return c.push(Field{Kind: KindWeekdayMon1})
}

func (c *formatCompiler) weekNumSunday() error {
	return c.push(Field{Kind: KindWeekSunday, Pad: PadZero})
}

func (c *formatCompiler) weekNumISO() error {
	return c.push(Field{Kind: KindWeekISO, Pad: PadZero})
}

func (c *formatCompiler) weekdayNumSunday() error {
	return c.push(Field{Kind: KindWeekdaySun0})
}

func (c *formatCompiler) weekNumMonday() error {
	return c.push(Field{Kind: KindWeekMonday, Pad: PadZero})
}

func (c *formatCompiler) yearShort() error {
	return c.push(Field{Kind: KindYearTwo, Pad: PadZero})
}

func (c *formatCompiler) year() error {
	return c.push(Field{Kind: KindYear, Pad: PadZero})
}

func (c *formatCompiler) offset() error {
	c.prog = append(c.prog,
		Field{Kind: KindOffsetHour, Pad: PadZero},
		Field{Kind: KindOffsetMinute, Pad: PadZero})
	return nil
}

// zone names are opaque input tokens; a program
// node cannot reproduce them
func (c *formatCompiler) zoneName() error {
	return &NoRepresentationError{Specifier: "timezone name"}
}

func (c *formatCompiler) static(s string) error { return c.push(Literal(s)) }
func (c *formatCompiler) literal(lit string) error { return c.push(Literal(lit)) }

func (c *formatCompiler) unknown(spec rune) error {
	return &UnknownSpecifierError{Specifier: spec}
}

// CompileFormat lowers a format string into a
// rendering-direction program. %C and %Z are rejected:
// they have no node representation.
func CompileFormat(format string) (Program, error) {
	c := formatCompiler{}
	if err := walkFormat(format, &c); err != nil {
		return nil, err
	}
	return c.prog, nil
}

// parseCompiler is the compiling realization of
// parseCollector. Numeric fields compile to an alternation
// over the three padding policies so that input produced
// under any padding convention parses; name fields try the
// long form before the short one.
type parseCompiler struct {
	prog Program
}

func (c *parseCompiler) push(it Item) error {
	c.prog = append(c.prog, it)
	return nil
}

// anyPad tolerates zero-padded, space-padded, and
// unpadded renderings of the same field.
func anyPad(kind FieldKind) First {
	return First{
		Field{Kind: kind, Pad: PadZero},
		Field{Kind: kind, Pad: PadSpace},
		Field{Kind: kind, Pad: PadNone},
	}
}

// spaces compiles a whitespace run into a single optional
// whitespace character; the distinct characters form an
// ordered alternation.
func (c *parseCompiler) spaces() error {
	return c.push(Optional{Item: First{
		Literal(" "),
		Literal("\n"),
		Literal("\t"),
	}})
}

func (c *parseCompiler) weekdayName() error {
	return c.push(First{
		Field{Kind: KindWeekdayLong},
		Field{Kind: KindWeekdayShort},
	})
}

func (c *parseCompiler) monthName() error {
	return c.push(First{
		Field{Kind: KindMonthLong},
		Field{Kind: KindMonthShort},
	})
}

func (c *parseCompiler) century() error {
	return &NoRepresentationError{Specifier: "%C"}
}

func (c *parseCompiler) dayOfMonth() error     { return c.push(anyPad(KindDay)) }
func (c *parseCompiler) hourOfDay() error      { return c.push(anyPad(KindHour)) }
func (c *parseCompiler) hourOfDay12() error    { return c.push(anyPad(KindHour12)) }
func (c *parseCompiler) dayOfYear() error      { return c.push(anyPad(KindOrdinal)) }
func (c *parseCompiler) monthOfYear() error    { return c.push(anyPad(KindMonth)) }
func (c *parseCompiler) minuteOfHour() error   { return c.push(anyPad(KindMinute)) }
func (c *parseCompiler) secondOfMinute() error { return c.push(anyPad(KindSecond)) }

func (c *parseCompiler) ampm() error {
	return c.push(Field{Kind: KindPeriodUpper})
}

func (c *parseCompiler) nanosecond() error {
	return c.push(Field{Kind: KindSubsecond})
}

func (c *parseCompiler) weekNumSunday() error { return c.push(anyPad(KindWeekSunday)) }
func (c *parseCompiler) weekNumMonday() error { return c.push(anyPad(KindWeekMonday)) }

func (c *parseCompiler) weekdayNumSunday() error {
	return c.push(Field{Kind: KindWeekdaySun0})
}

func (c *parseCompiler) yearShort() error { return c.push(anyPad(KindYearTwo)) }
func (c *parseCompiler) year() error      { return c.push(anyPad(KindYear)) }

// the colon between offset hours and minutes is optional
// on input ("+0900" and "+09:00" both parse)
func (c *parseCompiler) offset() error {
	c.prog = append(c.prog,
		Field{Kind: KindOffsetHour, Pad: PadZero},
		Optional{Item: Literal(":")},
		Field{Kind: KindOffsetMinute, Pad: PadZero})
	return nil
}

func (c *parseCompiler) zoneName() error {
	return &NoRepresentationError{Specifier: "timezone name"}
}

func (c *parseCompiler) static(s string) error { return c.push(Literal(s)) }
func (c *parseCompiler) literal(lit string) error { return c.push(Literal(lit)) }

func (c *parseCompiler) unknown(spec rune) error {
	return &UnknownSpecifierError{Specifier: spec}
}

// CompileParse lowers a format string into a
// recovery-direction program. %C and %Z are rejected:
// they have no node representation.
func CompileParse(format string) (Program, error) {
	c := parseCompiler{}
	if err := walkParse(format, &c); err != nil {
		return nil, err
	}
	return c.prog, nil
}
