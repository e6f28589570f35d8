// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hostzone

import (
	"strings"

	"github.com/kortschak/guesttz/internal/zonename"
)

// stripZoneRoot returns the zoneinfo name for a path within the tree
// rooted at root, and whether the path refers into root with a remainder
// that is a valid zoneinfo name.
func stripZoneRoot(path, root string) (string, bool) {
	root = strings.TrimSuffix(root, "/")
	if root == "" {
		return "", false
	}
	rest, ok := strings.CutPrefix(path, root+"/")
	if !ok || !zonename.Valid(rest) {
		return "", false
	}
	return rest, true
}
