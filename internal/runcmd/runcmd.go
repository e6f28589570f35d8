// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runcmd runs external commands with a bounded timeout, capturing
// standard output to a file.
package runcmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/execabs"
)

// Output runs argv with the given timeout, writing its standard output
// to a temporary file, and returns the file's path. The caller is
// responsible for removing the file. Expiry of the timeout, failure to
// start or a non-zero exit status is an error, and no file is returned.
func Output(ctx context.Context, timeout time.Duration, argv ...string) (string, error) {
	if len(argv) == 0 {
		return "", errors.New("no command")
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	f, err := os.CreateTemp("", "runcmd-*")
	if err != nil {
		return "", err
	}
	cmd := execabs.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = f
	err = cmd.Run()
	cerr := f.Close()
	if err != nil {
		os.Remove(f.Name())
		if ctx.Err() != nil {
			return "", fmt.Errorf("%s: %w", argv[0], ctx.Err())
		}
		return "", fmt.Errorf("%s: %w", argv[0], err)
	}
	if cerr != nil {
		os.Remove(f.Name())
		return "", cerr
	}
	return f.Name(), nil
}
