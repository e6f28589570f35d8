// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hostzone

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kortschak/guesttz/internal/zonename"
)

// scanTree walks the zoneinfo tree rooted at root, to a depth of two
// directories, looking for a regular file with the same content as the
// localtime file, and returns the root-relative name of the first match.
//
// Entries are visited in the order the operating system reports them, so
// when the tree holds several byte-identical copies of the zone data the
// name returned depends on that order. Symbolic links within the tree are
// not followed; some distributions alias zones with links such as
// Australia/ACT → Australia/Sydney and following them would multiply
// matches.
func scanTree(root, localtime string) (string, error) {
	want, err := os.ReadFile(localtime)
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", localtime, err)
	}
	name := scanDir(root, "", 0, want)
	if name == "" {
		return "", fmt.Errorf("no match for %s under %s: %w", localtime, root, ErrNotFound)
	}
	return name, nil
}

// scanDir scans a single directory depth levels below the tree root,
// recursing into subdirectories to depth two and comparing regular files
// at depths one and two. It returns the first matching name, or the empty
// string. Unreadable entries are skipped.
func scanDir(dir, rel string, depth int, want []byte) string {
	f, err := os.Open(dir)
	if err != nil {
		return ""
	}
	ents, _ := f.ReadDir(-1)
	f.Close()
	for _, e := range ents {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		child := name
		if rel != "" {
			child = rel + "/" + name
		}
		path := filepath.Join(dir, name)
		switch {
		case e.IsDir() && depth < 2:
			found := scanDir(path, child, depth+1, want)
			if found != "" {
				return found
			}
		case e.Type().IsRegular() && 1 <= depth && depth <= 2:
			if !zonename.Valid(child) {
				continue
			}
			fi, err := e.Info()
			if err != nil || fi.Size() != int64(len(want)) {
				continue
			}
			b, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if bytes.Equal(b, want) {
				return child
			}
		}
	}
	return ""
}
