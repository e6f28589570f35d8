// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guesttz

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var monthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// parseZdump extracts a Rule from the lines of a verbose zone dump
// filtered to a single year. A zone with daylight saving yields exactly
// four lines, the last second of each regime paired with the first second
// of the next, for example:
//
//	America/New_York  Sun Mar 13 06:59:59 2016 UT = Sun Mar 13 01:59:59 2016 EST isdst=0 [gmtoff=-18000]
//	America/New_York  Sun Mar 13 07:00:00 2016 UT = Sun Mar 13 03:00:00 2016 EDT isdst=1 [gmtoff=-14400]
//	America/New_York  Sun Nov  6 05:59:59 2016 UT = Sun Nov  6 01:59:59 2016 EDT isdst=1 [gmtoff=-14400]
//	America/New_York  Sun Nov  6 06:00:00 2016 UT = Sun Nov  6 01:00:00 2016 EST isdst=0 [gmtoff=-18000]
//
// The second and fourth lines carry the post-transition state; the UTC
// instant is in tokens three to six and the local instant in tokens ten
// to thirteen. The trailing gmtoff field is not present on all systems
// and is not used: each edge's offset is the difference between its local
// and UTC instants.
func parseZdump(lines []string) (Rule, error) {
	if len(lines) != 4 {
		return Rule{}, fmt.Errorf("unexpected number of transition lines: %d", len(lines))
	}
	var (
		r       Rule
		dstEdge int
	)
	for _, i := range []int{1, 3} {
		tok := strings.Fields(lines[i])
		if len(tok) < 13 {
			return Rule{}, fmt.Errorf("short transition line: %q", lines[i])
		}
		utc, err := parseZdumpDate(tok[2:6])
		if err != nil {
			return Rule{}, err
		}
		local, err := parseZdumpDate(tok[9:13])
		if err != nil {
			return Rule{}, err
		}
		if i == 1 {
			r.DaylightStart = utc
			dstEdge = diffSeconds(local, utc)
		} else {
			r.StandardStart = utc
			r.StandardOffset = diffSeconds(local, utc)
		}
	}
	r.DaylightOffset = dstEdge - r.StandardOffset
	return r, nil
}

// parseZdumpDate parses a civil instant from four tokens of the form
// "Mar" "13" "07:00:00" "2016".
func parseZdumpDate(tok []string) (Civil, error) {
	mon := slices.Index(monthNames, tok[0])
	if mon < 0 {
		return Civil{}, fmt.Errorf("invalid month: %q", tok[0])
	}
	day, err := strconv.Atoi(tok[1])
	if err != nil {
		return Civil{}, fmt.Errorf("invalid day: %q", tok[1])
	}
	clock := tok[2]
	if len(clock) != 8 || clock[2] != ':' || clock[5] != ':' {
		return Civil{}, fmt.Errorf("invalid time: %q", clock)
	}
	hour, err := strconv.Atoi(clock[0:2])
	if err != nil {
		return Civil{}, fmt.Errorf("invalid time: %q", clock)
	}
	min, err := strconv.Atoi(clock[3:5])
	if err != nil {
		return Civil{}, fmt.Errorf("invalid time: %q", clock)
	}
	sec, err := strconv.Atoi(clock[6:8])
	if err != nil {
		return Civil{}, fmt.Errorf("invalid time: %q", clock)
	}
	year, err := strconv.Atoi(tok[3])
	if err != nil {
		return Civil{}, fmt.Errorf("invalid year: %q", tok[3])
	}
	return Civil{Year: year, Month: mon + 1, Day: day, Hour: hour, Min: min, Sec: sec}, nil
}

// parseNumericOffset parses a ±HHMM offset as printed by date +%z,
// returning seconds east of UTC.
func parseNumericOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	if len(s) != 5 {
		return 0, fmt.Errorf("invalid offset %q", s)
	}
	var sign int
	switch s[0] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return 0, fmt.Errorf("invalid offset %q", s)
	}
	hour, err := strconv.Atoi(s[1:3])
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q", s)
	}
	min, err := strconv.Atoi(s[3:5])
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q", s)
	}
	return sign * (hour*3600 + min*60), nil
}
