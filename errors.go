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

import "fmt"

// UnknownSpecifierError indicates that the format string
// contained a %-escape that is not a recognized specifier.
type UnknownSpecifierError struct {
	Specifier rune
}

func (e *UnknownSpecifierError) Error() string {
	return fmt.Sprintf("strftime: unknown specifier %%%c", e.Specifier)
}

// UnexpectedByteError indicates that token consumption
// hit a byte that the current field cannot accept.
type UnexpectedByteError struct {
	Expected string // what the field wanted, e.g. "digits"
	Byte     byte
}

func (e *UnexpectedByteError) Error() string {
	return fmt.Sprintf("strftime: expected %s but got byte %q", e.Expected, e.Byte)
}

// UnexpectedEndError indicates that the input ended
// while a field still required more bytes.
type UnexpectedEndError struct {
	Expected string
}

func (e *UnexpectedEndError) Error() string {
	return fmt.Sprintf("strftime: expected %s but reached the end of input", e.Expected)
}

// NoMatchError indicates that a textual field or a
// literal did not match the input.
type NoMatchError struct {
	Field string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("strftime: expected %s but input does not match", e.Field)
}

// RangeError indicates that a component parsed
// successfully but lies outside its valid domain,
// or that the resolved components do not form a
// valid calendar date.
type RangeError struct {
	Field string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("strftime: %s component out of range", e.Field)
}

// UnconvertedDataError is returned by ParseStrict when
// input remains after the whole format has been consumed.
type UnconvertedDataError struct {
	Data string
}

func (e *UnconvertedDataError) Error() string {
	return fmt.Sprintf("strftime: unconverted data remains: %q", e.Data)
}

// NoRepresentationError is returned by the compilers for
// specifiers that have no program-node equivalent.
type NoRepresentationError struct {
	Specifier string
}

func (e *NoRepresentationError) Error() string {
	return fmt.Sprintf("strftime: no program representation for %s", e.Specifier)
}
