// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guesttz

import (
	"cmp"
	"time"
)

// Civil is a calendar/clock representation of an instant, as opposed to a
// linear time. The month is 1-based.
type Civil struct {
	Year  int
	Month int
	Day   int
	Hour  int
	Min   int
	Sec   int
}

// civilOf returns the civil breakdown of t in loc.
func civilOf(t time.Time, loc *time.Location) Civil {
	t = t.In(loc)
	return Civil{
		Year:  t.Year(),
		Month: int(t.Month()),
		Day:   t.Day(),
		Hour:  t.Hour(),
		Min:   t.Minute(),
		Sec:   t.Second(),
	}
}

// Compare returns -1 if c is before o, 0 if they are equal and 1 if c is
// after o.
func (c Civil) Compare(o Civil) int {
	for _, v := range []int{
		cmp.Compare(c.Year, o.Year),
		cmp.Compare(c.Month, o.Month),
		cmp.Compare(c.Day, o.Day),
		cmp.Compare(c.Hour, o.Hour),
		cmp.Compare(c.Min, o.Min),
		cmp.Compare(c.Sec, o.Sec),
	} {
		if v != 0 {
			return v
		}
	}
	return 0
}

const secondsPerDay = 24 * 60 * 60

// diffSeconds returns end minus start in seconds, assuming the two
// instants are within 24 hours of each other. A difference in the year or
// month fields is treated as a single day boundary; only within a shared
// month are the day fields weighted. This holds for its callers because
// real UTC offsets are always less than 24 hours.
func diffSeconds(end, start Civil) int {
	e := end.Sec + 60*(end.Min+60*end.Hour)
	s := start.Sec + 60*(start.Min+60*start.Hour)
	switch {
	case end.Year > start.Year:
		e += secondsPerDay
	case end.Year < start.Year:
		s += secondsPerDay
	case end.Month > start.Month:
		e += secondsPerDay
	case end.Month < start.Month:
		s += secondsPerDay
	default:
		e += secondsPerDay * end.Day
		s += secondsPerDay * start.Day
	}
	return e - s
}

// Localtime is a civil breakdown with a daylight saving flag. IsDST is 1
// during daylight saving, 0 outside it and -1 when the zone does not
// observe daylight saving.
type Localtime struct {
	Civil
	IsDST int
}

// Rule describes a zone's offsets and daylight saving transitions for one
// calendar year.
type Rule struct {
	// StandardOffset is the offset from UTC in seconds with no
	// daylight saving applied.
	StandardOffset int
	// DaylightOffset is the additional offset in seconds applied
	// during daylight saving. Zero means the zone is treated as not
	// observing daylight saving, whatever the transition fields hold.
	DaylightOffset int
	// DaylightStart and StandardStart are the two UTC instants within
	// Year at which the offset changes, in the order the probe reports
	// them. An instant from DaylightStart up to but excluding
	// StandardStart has DaylightOffset applied.
	DaylightStart Civil
	StandardStart Civil
	// Year is the UTC calendar year the transitions describe.
	Year int
}

// isDST reports daylight saving membership for a UTC civil instant:
// -1 if the zone has no daylight saving, otherwise 0 or 1.
func (r Rule) isDST(utc Civil) int {
	if r.DaylightOffset == 0 {
		return -1
	}
	if utc.Compare(r.DaylightStart) < 0 || utc.Compare(r.StandardStart) >= 0 {
		return 0
	}
	return 1
}

// offsetAt returns the offset from UTC in seconds for a UTC civil instant.
func (r Rule) offsetAt(utc Civil) int {
	if r.isDST(utc) == 1 {
		return r.StandardOffset + r.DaylightOffset
	}
	return r.StandardOffset
}
