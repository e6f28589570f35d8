// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux || freebsd

package hostzone

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/godbus/dbus/v5"
	"golang.org/x/sys/unix"

	"github.com/kortschak/guesttz/internal/zonename"
)

// resolve determines the host timezone. A valid TZ environment value takes
// precedence, then the timedated Timezone property where a system bus is
// available. Otherwise the localtime file is located — /etc/localtime, or
// localtime under the zoneinfo root, which may be moved with TZDIR — and
// either followed as a symlink into the root or byte-compared against the
// files of the zoneinfo tree. Not all distributions install /etc/localtime
// as a symlink; many install a copy of the zone file, which is why the
// content scan exists.
func resolve() (string, error) {
	if tz, ok := os.LookupEnv("TZ"); ok && zonename.Valid(tz) {
		return tz, nil
	}
	if tz, err := timedateZone(); err == nil && zonename.Valid(tz) {
		return tz, nil
	}

	root := zoneinfoDir
	if env, ok := os.LookupEnv("TZDIR"); ok {
		env = strings.TrimSuffix(env, "/")
		if env != "" && readable(env) {
			root = env
		}
	}
	if !readable(root) {
		return "", fmt.Errorf("no zoneinfo directory at %s: %w", root, ErrNotFound)
	}

	localtime := localtimeFile
	if !readable(localtime) {
		localtime = filepath.Join(root, "localtime")
		if !readable(localtime) {
			return "", fmt.Errorf("no localtime file at %s or %s: %w", localtimeFile, localtime, ErrNotFound)
		}
	}

	if target, err := os.Readlink(localtime); err == nil {
		if name, ok := stripZoneRoot(target, root); ok {
			return name, nil
		}
	}
	return scanTree(root, localtime)
}

func readable(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}

// timedateZone is a hook for testing.
var timedateZone = timedate1Zone

// timedate1Zone returns the Timezone property of the timedated service on
// the system bus.
func timedate1Zone() (string, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return "", err
	}
	defer conn.Close()
	p, err := conn.Object("org.freedesktop.timedate1", "/org/freedesktop/timedate1").GetProperty("org.freedesktop.timedate1.Timezone")
	if err != nil {
		return "", fmt.Errorf("could not get time zone: %w", err)
	}
	tz, ok := p.Value().(string)
	if !ok {
		return "", fmt.Errorf("invalid type for %T", p.Value())
	}
	return tz, nil
}
