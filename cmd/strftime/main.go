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

// Command strftime renders and parses date-times from the
// command line.
//
// With no arguments the current time is rendered through the
// format string:
//
//	strftime -f '%Y-%m-%dT%H:%M:%S%z'
//
// With -p, each argument is parsed through the format string
// instead and echoed back as RFC 3339:
//
//	strftime -p -f '%d %b %Y' '17 Apr 2022'
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/SnellerInc/strftime"
)

var (
	format = flag.String("f", "%c", "strftime format string")
	parse  = flag.Bool("p", false, "parse arguments instead of rendering")
	strict = flag.Bool("s", false, "strict parsing (exact field widths, no trailing input)")
	utc    = flag.Bool("u", false, "render in UTC rather than local time")
)

func main() {
	flag.Parse()
	if *parse {
		parseArgs(flag.Args())
		return
	}
	if args := flag.Args(); len(args) != 0 {
		fmt.Fprintln(os.Stderr, "strftime: arguments require -p")
		os.Exit(1)
	}
	now := time.Now()
	if *utc {
		now = now.UTC()
	}
	out, err := strftime.FormatOffset(*format, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "strftime: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func parseArgs(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "strftime: -p requires at least one argument")
		os.Exit(1)
	}
	do := strftime.Parse
	if *strict {
		do = strftime.ParseStrict
	}
	for _, arg := range args {
		t, zone, err := do(*format, arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "strftime: %q: %s\n", arg, err)
			os.Exit(1)
		}
		if off, ok := zone.(strftime.ZoneOffset); ok {
			t = t.Add(-time.Duration(off) * time.Second).
				In(time.FixedZone("", int(off)))
		}
		out := t.Format(time.RFC3339Nano)
		if name, ok := zone.(strftime.ZoneName); ok {
			out += " " + string(name)
		}
		fmt.Println(out)
	}
}
