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

// Package strftime implements POSIX strftime-style rendering
// and strptime-style parsing of time values.
//
// One format grammar drives everything: composite specifiers
// such as %c, %D, %F, %r, %R, %T, %x and %X expand to their
// primitive fields in exactly one place, so rendering, parsing,
// and compilation cannot drift apart.
//
// Format renders a time.Time against a format string; Parse
// recovers one from text, resolving partial and conflicting
// fields (two-digit years, 12-hour clocks with %p, ordinal
// dates) the way strptime does. CompileFormat and CompileParse
// lower a format string into a Program, a reusable tree of
// literal, field, optional, and alternation nodes that can be
// evaluated many times without re-walking the format.
package strftime
