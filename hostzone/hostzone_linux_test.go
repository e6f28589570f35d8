// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux || freebsd

package hostzone

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveTZ(t *testing.T) {
	t.Setenv("TZ", "America/New_York")
	got, err := resolve()
	if err != nil {
		t.Fatalf("unexpected error from resolve: %v", err)
	}
	if want := "America/New_York"; got != want {
		t.Errorf("unexpected zone: got:%q want:%q", got, want)
	}
}

func TestResolveTimedate(t *testing.T) {
	t.Setenv("TZ", "not a zone")
	defer stubTimedate(t, "Europe/Berlin", nil)()
	got, err := resolve()
	if err != nil {
		t.Fatalf("unexpected error from resolve: %v", err)
	}
	if want := "Europe/Berlin"; got != want {
		t.Errorf("unexpected zone: got:%q want:%q", got, want)
	}
}

func TestResolveScan(t *testing.T) {
	// The scan compares the host's localtime file against a synthetic
	// zoneinfo tree seeded with its content, so the result is fixed no
	// matter which zone the host is really in.
	local, err := os.ReadFile(localtimeFile)
	if err != nil {
		t.Skipf("no readable %s: %v", localtimeFile, err)
	}

	t.Setenv("TZ", "not a zone")
	defer stubTimedate(t, "", errors.New("no bus"))()

	root := filepath.Join(t.TempDir(), "zoneinfo")
	err = os.MkdirAll(filepath.Join(root, "Test_Area"), 0o755)
	if err != nil {
		t.Fatalf("failed to create zoneinfo tree: %v", err)
	}
	err = os.WriteFile(filepath.Join(root, "Test_Area", "Test_Loc"), local, 0o644)
	if err != nil {
		t.Fatalf("failed to write zone file: %v", err)
	}
	t.Setenv("TZDIR", root)

	got, err := resolve()
	if err != nil {
		t.Fatalf("unexpected error from resolve: %v", err)
	}
	if want := "Test_Area/Test_Loc"; got != want {
		t.Errorf("unexpected zone: got:%q want:%q", got, want)
	}
}

func stubTimedate(t *testing.T, zone string, err error) func() {
	t.Helper()
	orig := timedateZone
	timedateZone = func() (string, error) { return zone, err }
	return func() { timedateZone = orig }
}
