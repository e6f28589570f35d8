// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package guesttz maintains an emulated guest's notion of its timezone.
//
// A TimeZone answers offset and local time queries for the guest. Until a
// zone has been set, or whenever setting one fails, answers fall back to
// the host's own local time semantics, so queries always succeed. Once a
// zone is set, the standard offset, daylight saving offset and the year's
// two transition instants are derived by a platform probe — the system
// zone dump and date tools on POSIX systems, the time zone registry
// records on Windows — and rederived when a query's year moves past the
// derived year.
//
// The host's own zoneinfo name, used to seed SetZone, is available from
// the hostzone package.
package guesttz

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kortschak/guesttz/internal/zonename"
)

// Probe derives the offset and transition rule for a zone and year.
// Implementations are provided per platform; WithProbe replaces them.
type Probe interface {
	Transitions(ctx context.Context, zone string, year int) (Rule, error)
}

// TimeZone is a guest timezone. It is safe for concurrent use. The zero
// value is not usable; use New.
type TimeZone struct {
	log   *slog.Logger
	probe Probe

	mu       sync.Mutex
	zone     string
	rule     Rule
	resolved bool
}

// Option is a TimeZone construction option.
type Option func(*TimeZone)

// WithLogger sets the logger used by the TimeZone and its probe.
func WithLogger(log *slog.Logger) Option {
	return func(z *TimeZone) { z.log = log }
}

// WithProbe sets the transition probe, replacing the platform default.
func WithProbe(p Probe) Option {
	return func(z *TimeZone) { z.probe = p }
}

// New returns a new TimeZone in the unset state, answering queries with
// host local time semantics until SetZone succeeds.
func New(opts ...Option) *TimeZone {
	z := &TimeZone{log: slog.Default()}
	for _, o := range opts {
		o(z)
	}
	if z.probe == nil {
		z.probe = systemProbe{log: z.log}
	}
	return z
}

// SetZone sets the guest timezone and derives its rule for the current
// year. The name must be a zoneinfo identifier of the form Area/Location
// or Area/Location/SubLocation; anything else is rejected without
// changing state. If derivation fails the error is returned and the guest
// reverts to host local time semantics; queries continue to work.
func (z *TimeZone) SetZone(name string) error {
	if !zonename.Valid(name) {
		return fmt.Errorf("invalid zoneinfo name %q", name)
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	z.zone = name
	return z.derive(time.Now().UTC().Year())
}

// Zone returns the configured zone name and whether the guest currently
// holds a derived rule for it.
func (z *TimeZone) Zone() (name string, ok bool) {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.zone, z.resolved
}

// derive replaces the rule with one derived for year, leaving the guest
// unresolved on failure. It must be called with z.mu held.
func (z *TimeZone) derive(year int) error {
	z.resolved = false
	ctx := context.Background()
	rule, err := z.probe.Transitions(ctx, z.zone, year)
	if err != nil {
		z.rule = Rule{}
		z.log.LogAttrs(ctx, slog.LevelWarn, "could not derive timezone rule",
			slog.String("zone", z.zone), slog.Int("year", year), slog.Any("error", err))
		return err
	}
	rule.Year = year
	z.rule = rule
	z.resolved = true
	z.log.LogAttrs(ctx, slog.LevelDebug, "derived timezone rule",
		slog.String("zone", z.zone), slog.Int("year", year),
		slog.Int("standard", rule.StandardOffset), slog.Int("daylight", rule.DaylightOffset))
	return nil
}

// refresh rederives the rule if t has moved past the derived year. It
// must be called with z.mu held.
func (z *TimeZone) refresh(t time.Time) {
	if z.resolved && t.UTC().Year() != z.rule.Year {
		// Failure reverts to host semantics until a later SetZone.
		z.derive(t.UTC().Year())
	}
}

// OffsetAt returns the guest's offset from UTC in seconds at t. Before a
// zone is set this is the host's local offset at t.
func (z *TimeZone) OffsetAt(t time.Time) int {
	z.mu.Lock()
	defer z.mu.Unlock()
	z.refresh(t)
	if !z.resolved {
		return hostOffset(t)
	}
	return z.rule.offsetAt(civilOf(t, time.UTC))
}

// LocalAt returns the guest's civil local time at t with its daylight
// saving flag. Before a zone is set this is the host's local time at t.
func (z *TimeZone) LocalAt(t time.Time) Localtime {
	z.mu.Lock()
	defer z.mu.Unlock()
	z.refresh(t)
	if !z.resolved {
		isdst := 0
		if t.In(time.Local).IsDST() {
			isdst = 1
		}
		return Localtime{Civil: civilOf(t, time.Local), IsDST: isdst}
	}
	utc := civilOf(t, time.UTC)
	isdst := z.rule.isDST(utc)
	off := z.rule.StandardOffset
	if isdst == 1 {
		off += z.rule.DaylightOffset
	}
	shifted := t.Add(time.Duration(off) * time.Second)
	return Localtime{Civil: civilOf(shifted, time.UTC), IsDST: isdst}
}

// hostOffset returns the host's local offset from UTC in seconds at t,
// computed by differencing the civil breakdowns of t in the local and UTC
// timezones.
func hostOffset(t time.Time) int {
	return diffSeconds(civilOf(t, time.Local), civilOf(t, time.UTC))
}

var def = sync.OnceValue(func() *TimeZone { return New() })

// Default returns the process-wide TimeZone, constructing it on first
// use. All callers share the one instance.
func Default() *TimeZone {
	return def()
}

// Set sets the zone of the process-wide TimeZone. See TimeZone.SetZone.
func Set(name string) error {
	return Default().SetZone(name)
}

// Offset returns the offset of the process-wide TimeZone at t.
func Offset(t time.Time) int {
	return Default().OffsetAt(t)
}

// Local returns the local time of the process-wide TimeZone at t.
func Local(t time.Time) Localtime {
	return Default().LocalAt(t)
}
