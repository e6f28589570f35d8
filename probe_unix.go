// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package guesttz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kortschak/guesttz/internal/runcmd"
)

// Probe timeouts. The zone dump is slow on loaded machines; the date
// fallback is not.
const (
	zdumpTimeout = 5 * time.Second
	dateTimeout  = time.Second
)

// systemProbe derives timezone rules from the system's zdump tool,
// falling back to the date command when the dump cannot be parsed. The
// fallback reports a fixed offset with no daylight saving.
type systemProbe struct {
	log *slog.Logger
}

func (p systemProbe) Transitions(ctx context.Context, zone string, year int) (Rule, error) {
	r, zerr := p.zdump(ctx, zone, year)
	if zerr == nil {
		return r, nil
	}
	p.log.LogAttrs(ctx, slog.LevelDebug, "zone dump probe failed",
		slog.String("zone", zone), slog.Int("year", year), slog.Any("error", zerr))
	r, derr := p.dateOffset(ctx, zone)
	if derr != nil {
		return Rule{}, errors.Join(zerr, derr)
	}
	return r, nil
}

// zdumpCommand returns the shell line deriving the year's transitions
// for a zone. The zone name is quoted; the zonename grammar admits
// characters the shell would otherwise interpret.
func zdumpCommand(zone string, year int) string {
	return fmt.Sprintf("zdump -v %q | grep %d", zone, year)
}

// dateCommand returns the shell line printing the zone's current numeric
// offset.
func dateCommand(zone string) string {
	return fmt.Sprintf("TZ=%q date +%%z", zone)
}

// zdump derives a full rule from the verbose zone dump filtered to year.
func (p systemProbe) zdump(ctx context.Context, zone string, year int) (Rule, error) {
	out, err := runcmd.Output(ctx, zdumpTimeout, "/bin/sh", "-c", zdumpCommand(zone, year))
	if err != nil {
		return Rule{}, err
	}
	defer os.Remove(out)
	b, err := os.ReadFile(out)
	if err != nil {
		return Rule{}, err
	}
	r, err := parseZdump(strings.Split(strings.TrimRight(string(b), "\n"), "\n"))
	if err != nil {
		return Rule{}, err
	}
	r.Year = year
	return r, nil
}

// dateOffset derives a fixed-offset rule from the date command run in the
// zone.
func (p systemProbe) dateOffset(ctx context.Context, zone string) (Rule, error) {
	out, err := runcmd.Output(ctx, dateTimeout, "/bin/sh", "-c", dateCommand(zone))
	if err != nil {
		return Rule{}, err
	}
	defer os.Remove(out)
	b, err := os.ReadFile(out)
	if err != nil {
		return Rule{}, err
	}
	off, err := parseNumericOffset(string(b))
	if err != nil {
		return Rule{}, err
	}
	return Rule{StandardOffset: off}, nil
}
