// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guesttz

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// regTZI is the layout of the binary TZI value stored under each time
// zone's registry key, the REG_TZI_FORMAT structure. All fields are
// little-endian. The biases are minutes to add to local time to reach
// UTC.
type regTZI struct {
	Bias         int32
	StandardBias int32
	DaylightBias int32
	StandardDate systemTime
	DaylightDate systemTime
}

// systemTime is the Windows SYSTEMTIME structure.
type systemTime struct {
	Year         uint16
	Month        uint16
	DayOfWeek    uint16
	Day          uint16
	Hour         uint16
	Minute       uint16
	Second       uint16
	Milliseconds uint16
}

// parseRegTZI decodes a TZI registry value.
func parseRegTZI(b []byte) (regTZI, error) {
	var t regTZI
	if len(b) != binary.Size(t) {
		return t, fmt.Errorf("invalid TZI length: %d", len(b))
	}
	err := binary.Read(bytes.NewReader(b), binary.LittleEndian, &t)
	return t, err
}

// rule converts the registry record to a Rule. A zero daylight bias means
// the zone has no daylight saving and the transition fields are left
// zero; otherwise each transition is taken from its own date field.
func (t regTZI) rule() Rule {
	r := Rule{
		StandardOffset: -int(t.Bias+t.StandardBias) * 60,
		DaylightOffset: int(t.StandardBias-t.DaylightBias) * 60,
	}
	if r.DaylightOffset != 0 {
		r.DaylightStart = civilFromSystemTime(t.DaylightDate)
		r.StandardStart = civilFromSystemTime(t.StandardDate)
	}
	return r
}

// civilFromSystemTime converts a SYSTEMTIME to a Civil instant. Registry
// transition dates with a zero year encode a recurring month/week/weekday
// rule; the day field is read as a day of the month and the rule is not
// expanded to an absolute date.
func civilFromSystemTime(t systemTime) Civil {
	return Civil{
		Year:  int(t.Year),
		Month: int(t.Month),
		Day:   int(t.Day),
		Hour:  int(t.Hour),
		Min:   int(t.Minute),
		Sec:   int(t.Second),
	}
}
