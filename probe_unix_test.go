// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package guesttz

import "testing"

var probeCommandTests = []struct {
	zone      string
	year      int
	wantZdump string
	wantDate  string
}{
	0: {
		zone: "America/New_York", year: 2016,
		wantZdump: `zdump -v "America/New_York" | grep 2016`,
		wantDate:  `TZ="America/New_York" date +%z`,
	},
	1: {
		// The zonename grammar admits characters the shell would
		// otherwise interpret; they must arrive quoted.
		zone: "Bad Zone/Loc*", year: 2024,
		wantZdump: `zdump -v "Bad Zone/Loc*" | grep 2024`,
		wantDate:  `TZ="Bad Zone/Loc*" date +%z`,
	},
}

func TestProbeCommands(t *testing.T) {
	for i, test := range probeCommandTests {
		if got := zdumpCommand(test.zone, test.year); got != test.wantZdump {
			t.Errorf("unexpected zdump command for test %d:\ngot: %s\nwant:%s", i, got, test.wantZdump)
		}
		if got := dateCommand(test.zone); got != test.wantDate {
			t.Errorf("unexpected date command for test %d:\ngot: %s\nwant:%s", i, got, test.wantDate)
		}
	}
}
