// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package runcmd

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

func TestOutput(t *testing.T) {
	out, err := Output(context.Background(), time.Second, "/bin/sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer os.Remove(out)
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("unexpected error reading output: %v", err)
	}
	if got, want := string(b), "hello\n"; got != want {
		t.Errorf("unexpected output: got %q want %q", got, want)
	}
}

func TestOutputTimeout(t *testing.T) {
	out, err := Output(context.Background(), 100*time.Millisecond, "/bin/sh", "-c", "sleep 2")
	if err == nil {
		os.Remove(out)
		t.Fatal("expected error for timed out command")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("unexpected error: got %v want %v", err, context.DeadlineExceeded)
	}
}

func TestOutputFailure(t *testing.T) {
	out, err := Output(context.Background(), time.Second, "/bin/sh", "-c", "exit 1")
	if err == nil {
		os.Remove(out)
		t.Fatal("expected error for failing command")
	}
}
