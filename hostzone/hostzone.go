// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hostzone determines the IANA zoneinfo identifier the host
// operating system is configured to use.
//
// There is no portable API for this, so each platform uses its own
// strategy: on macOS the /etc/localtime symlink target, on Linux and
// FreeBSD the symlink target or a content comparison against the zoneinfo
// tree, and on Windows the configured time zone label mapped through the
// wintz table. The result is resolved at most once per process; host
// timezone identity is assumed stable for the process lifetime.
package hostzone

import (
	"errors"
	"sync"
)

// Unknown is the name reported when the host timezone cannot be determined.
const Unknown = "Unknown/Unknown"

// ErrNotFound is returned by Resolve when no strategy could determine a
// zoneinfo name for the host.
var ErrNotFound = errors.New("timezone not found")

// Canonical locations shared by the Unix strategies.
const (
	localtimeFile = "/etc/localtime"
	zoneinfoDir   = "/usr/share/zoneinfo"
)

var cached = sync.OnceValues(resolve)

// Resolve returns the host's zoneinfo timezone name. The name is resolved
// once; all subsequent calls return the first result. Resolve is safe for
// concurrent use.
func Resolve() (string, error) {
	return cached()
}

// Name returns the host's zoneinfo timezone name, or Unknown if it cannot
// be determined.
func Name() string {
	name, err := Resolve()
	if err != nil {
		return Unknown
	}
	return name
}
