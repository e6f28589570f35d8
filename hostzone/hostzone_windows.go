// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package hostzone

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/kortschak/guesttz/wintz"
)

// resolve determines the host timezone from the configured time zone
// label, mapped through the wintz table. Localized Windows builds report
// translated labels that are not in the table and so resolve to an error;
// recovering those by walking the time zone registry keys is not
// implemented.
func resolve() (string, error) {
	var tzi windows.Timezoneinformation
	_, err := windows.GetTimeZoneInformation(&tzi)
	if err != nil {
		return "", fmt.Errorf("could not get time zone information: %w", err)
	}
	label := windows.UTF16ToString(tzi.StandardName[:])
	zone, ok := wintz.Zoneinfo(label)
	if !ok {
		return "", fmt.Errorf("no zoneinfo name for %q: %w", label, ErrNotFound)
	}
	return zone, nil
}
