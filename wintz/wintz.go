// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wintz maps between Windows time zone names and IANA zoneinfo
// names. The mapping is many-to-one; where a Windows name has several
// zoneinfo names, or a zoneinfo name several Windows names, the first
// entry in the table's declaration order wins, so WindowsName is not an
// inverse of Zoneinfo.
package wintz

type entry struct {
	win  string
	zone string
}

// zoneinfoFor holds the first zoneinfo name declared for each Windows
// time zone name.
var zoneinfoFor = func() map[string]string {
	m := make(map[string]string, len(table))
	for _, e := range table {
		if _, ok := m[e.win]; !ok {
			m[e.win] = e.zone
		}
	}
	return m
}()

// Zoneinfo returns the zoneinfo name for the given Windows time zone
// name, and whether the name is known.
func Zoneinfo(win string) (string, bool) {
	zone, ok := zoneinfoFor[win]
	return zone, ok
}

// WindowsName returns the Windows time zone name for the given zoneinfo
// name, and whether the name is known. Where several Windows names share
// the zoneinfo name the first declared is returned.
func WindowsName(zone string) (string, bool) {
	for _, e := range table {
		if e.zone == zone {
			return e.win, true
		}
	}
	return "", false
}
