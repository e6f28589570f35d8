// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wintz

import "testing"

var zoneinfoTests = []struct {
	win    string
	want   string
	wantOK bool
}{
	0: {win: "Pacific Standard Time", want: "America/Los_Angeles", wantOK: true},
	1: {win: "Eastern Standard Time", want: "America/New_York", wantOK: true},
	2: {win: "AUS Eastern Standard Time", want: "Australia/Sydney", wantOK: true},
	3: {win: "Tokyo Standard Time", want: "Asia/Tokyo", wantOK: true},
	4: {win: "UTC", want: "Etc/GMT", wantOK: true},
	5: {win: "Etc/GMT", wantOK: false},
	6: {win: "Moon Standard Time", wantOK: false},
	7: {win: "", wantOK: false},
}

func TestZoneinfo(t *testing.T) {
	for i, test := range zoneinfoTests {
		got, ok := Zoneinfo(test.win)
		if ok != test.wantOK {
			t.Errorf("unexpected lookup success for test %d: got:%t want:%t", i, ok, test.wantOK)
			continue
		}
		if got != test.want {
			t.Errorf("unexpected zoneinfo name for test %d: got:%q want:%q", i, got, test.want)
		}
	}
}

var windowsNameTests = []struct {
	zone   string
	want   string
	wantOK bool
}{
	0: {zone: "America/Los_Angeles", want: "Pacific Standard Time", wantOK: true},
	1: {zone: "America/Vancouver", want: "Pacific Standard Time", wantOK: true},
	2: {zone: "Australia/Melbourne", want: "AUS Eastern Standard Time", wantOK: true},
	3: {zone: "America/New_York", want: "Eastern Standard Time", wantOK: true},
	4: {zone: "Pacific Standard Time", wantOK: false},
	5: {zone: "Mare/Tranquillitatis", wantOK: false},
}

func TestWindowsName(t *testing.T) {
	for i, test := range windowsNameTests {
		got, ok := WindowsName(test.zone)
		if ok != test.wantOK {
			t.Errorf("unexpected lookup success for test %d: got:%t want:%t", i, ok, test.wantOK)
			continue
		}
		if got != test.want {
			t.Errorf("unexpected Windows name for test %d: got:%q want:%q", i, got, test.want)
		}
	}
}

func TestTableShape(t *testing.T) {
	if len(table) == 0 {
		t.Fatal("empty table")
	}
	for i, e := range table {
		if e.win == "" || e.zone == "" {
			t.Errorf("incomplete entry %d: %+v", i, e)
		}
	}
}
