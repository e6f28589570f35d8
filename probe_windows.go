// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package guesttz

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sys/windows/registry"

	"github.com/kortschak/guesttz/wintz"
)

const timeZonesKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\Time Zones\`

// systemProbe derives timezone rules from the registry record for the
// zone's Windows name. The record holds one transition rule, not a
// per-year table, so the same rule is reported for every year. Reading
// the record does not work under Wine.
type systemProbe struct {
	log *slog.Logger
}

func (p systemProbe) Transitions(ctx context.Context, zone string, year int) (Rule, error) {
	win, ok := wintz.WindowsName(zone)
	if !ok {
		return Rule{}, fmt.Errorf("no Windows name for %q", zone)
	}
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, timeZonesKey+win, registry.QUERY_VALUE)
	if err != nil {
		return Rule{}, fmt.Errorf("could not open time zone key for %q: %w", win, err)
	}
	defer k.Close()
	b, _, err := k.GetBinaryValue("TZI")
	if err != nil {
		return Rule{}, fmt.Errorf("could not read TZI for %q: %w", win, err)
	}
	tzi, err := parseRegTZI(b)
	if err != nil {
		return Rule{}, err
	}
	p.log.LogAttrs(ctx, slog.LevelDebug, "read registry rule",
		slog.String("zone", zone), slog.String("windows_name", win))
	r := tzi.rule()
	r.Year = year
	return r, nil
}
