// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hostzone

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var stripZoneRootTests = []struct {
	path, root string
	want       string
	wantOK     bool
}{
	0: {path: "/usr/share/zoneinfo/America/New_York", root: "/usr/share/zoneinfo", want: "America/New_York", wantOK: true},
	1: {path: "/usr/share/zoneinfo/America/New_York", root: "/usr/share/zoneinfo/", want: "America/New_York", wantOK: true},
	2: {path: "/usr/share/zoneinfo/America/Argentina/Ushuaia", root: "/usr/share/zoneinfo", want: "America/Argentina/Ushuaia", wantOK: true},
	3: {path: "/usr/share/zoneinfo/UTC", root: "/usr/share/zoneinfo", wantOK: false},
	4: {path: "/etc/zoneinfo/America/New_York", root: "/usr/share/zoneinfo", wantOK: false},
	5: {path: "/usr/share/zoneinfo", root: "/usr/share/zoneinfo", wantOK: false},
	6: {path: "/usr/share/zoneinfo/posix/America/New_York/x", root: "/usr/share/zoneinfo", wantOK: false},
	7: {path: "America/New_York", root: "", wantOK: false},
}

func TestStripZoneRoot(t *testing.T) {
	for i, test := range stripZoneRootTests {
		got, ok := stripZoneRoot(test.path, test.root)
		if ok != test.wantOK {
			t.Errorf("unexpected success for test %d: got:%t want:%t", i, ok, test.wantOK)
			continue
		}
		if got != test.want {
			t.Errorf("unexpected name for test %d: got:%q want:%q", i, got, test.want)
		}
	}
}

func TestScanTree(t *testing.T) {
	zone := []byte("TZif2 zone data for scanning")
	decoy := []byte("TZif2 zone data 4 scanning~~")[:len(zone)]

	dir := t.TempDir()
	root := filepath.Join(dir, "zoneinfo")
	files := map[string][]byte{
		// Two byte-identical candidates; which is returned depends
		// on directory order, pinned below.
		"Area1/Loc1": zone,
		"Area2/Loc2": zone,
		// Same size, different content.
		"Area0/Near": decoy,
		// Different size.
		"Area0/Short": zone[:4],
		// Identical content, but too deep to be visited.
		"Area1/Sub/Too/Deep": zone,
		// Identical content in a hidden directory.
		".hidden/Loc": zone,
		// Identical content at the root; not a zoneinfo name.
		"localtime.copy": zone,
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		err := os.MkdirAll(filepath.Dir(path), 0o755)
		if err != nil {
			t.Fatalf("failed to create directory for %s: %v", name, err)
		}
		err = os.WriteFile(path, content, 0o644)
		if err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	// An aliasing link to a subtree holding a match. It must not be
	// followed. Not all systems allow the link to be made; the scan
	// behaviour is the same either way.
	err := os.Symlink(filepath.Join(root, "Area2"), filepath.Join(root, "Area9"))
	if err != nil {
		t.Logf("could not create symlink: %v", err)
	}

	localtime := filepath.Join(dir, "localtime")
	err = os.WriteFile(localtime, zone, 0o644)
	if err != nil {
		t.Fatalf("failed to write localtime: %v", err)
	}

	got, err := scanTree(root, localtime)
	if err != nil {
		t.Fatalf("unexpected error from scanTree: %v", err)
	}
	want := firstCandidate(t, root)
	if got != want {
		t.Errorf("unexpected match: got:%q want:%q", got, want)
	}
	if strings.HasPrefix(got, "Area9/") {
		t.Errorf("scan followed a symlinked subtree: %q", got)
	}

	// A second scan must agree; the walk order within one tree is stable.
	again, err := scanTree(root, localtime)
	if err != nil {
		t.Fatalf("unexpected error from rescan: %v", err)
	}
	if again != got {
		t.Errorf("unstable result: got:%q then:%q", got, again)
	}
}

// firstCandidate returns the candidate name expected from scanTree by
// reading the root in the same unsorted order the scan uses. The walk
// order is whatever the OS reports, so the test pins it rather than
// assuming it is sorted.
func firstCandidate(t *testing.T, root string) string {
	t.Helper()
	f, err := os.Open(root)
	if err != nil {
		t.Fatalf("failed to open root: %v", err)
	}
	defer f.Close()
	ents, err := f.ReadDir(-1)
	if err != nil {
		t.Fatalf("failed to read root: %v", err)
	}
	for _, e := range ents {
		switch e.Name() {
		case "Area1":
			return "Area1/Loc1"
		case "Area2":
			return "Area2/Loc2"
		}
	}
	t.Fatal("no candidate directory found")
	return ""
}

func TestScanTreeNoMatch(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "zoneinfo")
	err := os.MkdirAll(filepath.Join(root, "Area1"), 0o755)
	if err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	err = os.WriteFile(filepath.Join(root, "Area1", "Loc1"), []byte("other zone"), 0o644)
	if err != nil {
		t.Fatalf("failed to write zone file: %v", err)
	}
	localtime := filepath.Join(dir, "localtime")
	err = os.WriteFile(localtime, []byte("local zone"), 0o644)
	if err != nil {
		t.Fatalf("failed to write localtime: %v", err)
	}

	_, err = scanTree(root, localtime)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unexpected error: got:%v want:%v", err, ErrNotFound)
	}
}
