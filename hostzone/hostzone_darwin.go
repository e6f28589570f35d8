// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build darwin

package hostzone

import (
	"fmt"
	"os"

	"github.com/kortschak/guesttz/internal/zonename"
)

// resolve determines the host timezone from the /etc/localtime symlink,
// which macOS keeps pointing into /usr/share/zoneinfo. A valid TZ
// environment value takes precedence.
func resolve() (string, error) {
	if tz, ok := os.LookupEnv("TZ"); ok && zonename.Valid(tz) {
		return tz, nil
	}
	target, err := os.Readlink(localtimeFile)
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", localtimeFile, err)
	}
	name, ok := stripZoneRoot(target, zoneinfoDir)
	if !ok {
		return "", fmt.Errorf("%s links to %s outside %s: %w", localtimeFile, target, zoneinfoDir, ErrNotFound)
	}
	return name, nil
}
