// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zonename validates IANA zoneinfo identifiers.
package zonename

import "strings"

// Valid reports whether tz is a zoneinfo identifier of the form
// Area/Location or Area/Location/SubLocation. All segments must be
// non-empty.
func Valid(tz string) bool {
	if tz == "" {
		return false
	}
	seg := strings.Split(tz, "/")
	if len(seg) < 2 || len(seg) > 3 {
		return false
	}
	for _, s := range seg {
		if s == "" {
			return false
		}
	}
	return true
}
