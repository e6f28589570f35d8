// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The guesttz executable reports a guest timezone's offset and civil
// local time for an instant, deriving transition rules with the system's
// timezone tools. With no zone it answers with the host's local time
// semantics, and with -host it prints the host's own zoneinfo name.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/kortschak/guesttz"
	"github.com/kortschak/guesttz/hostzone"
	"github.com/kortschak/guesttz/internal/slogext"
	"github.com/kortschak/guesttz/internal/version"
	"github.com/kortschak/guesttz/internal/zonename"
)

// Exit status codes.
const (
	success       = 0
	internalError = 1 << (iota - 1)
	invocationError
)

func main() { os.Exit(Main()) }

// config is the TOML configuration schema. Command line flags take
// precedence over configuration values.
type config struct {
	Zone      string `toml:"zone"`
	LogLevel  string `toml:"log"`
	AddSource bool   `toml:"lines"`
}

func Main() int {
	zone := flag.String("zone", "", "guest zoneinfo name (Area/Location)")
	at := flag.String("at", "", "query instant in RFC 3339 format (default now)")
	host := flag.Bool("host", false, "print the host zoneinfo name and exit")
	cfgPath := flag.String("config", "", "path to a TOML configuration file")
	logging := flag.String("log", "info", "logging level (debug, info, warn or error)")
	lines := flag.Bool("lines", false, "display source line details in logs")
	v := flag.Bool("version", false, "print version and exit")
	flag.Parse()
	if *v {
		err := version.Print()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return internalError
		}
		return success
	}

	cfg := config{LogLevel: "info"}
	if *cfgPath != "" {
		_, err := toml.DecodeFile(*cfgPath, &cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return invocationError
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "zone":
			cfg.Zone = *zone
		case "log":
			cfg.LogLevel = *logging
		case "lines":
			cfg.AddSource = *lines
		}
	})

	var level slog.LevelVar
	err := level.UnmarshalText([]byte(cfg.LogLevel))
	if err != nil {
		flag.Usage()
		return invocationError
	}
	log := slog.New(slogext.GoID{Handler: slogext.NewJSONHandler(os.Stderr, &slogext.HandlerOptions{
		Level:     &level,
		AddSource: slogext.NewAtomicBool(cfg.AddSource),
	})})

	ctx := context.Background()

	if *host {
		name, err := hostzone.Resolve()
		if err != nil {
			log.LogAttrs(ctx, slog.LevelError, "could not resolve host zone", slog.Any("error", err))
			fmt.Println(hostzone.Unknown)
			return internalError
		}
		fmt.Println(name)
		return success
	}

	when := time.Now()
	if *at != "" {
		when, err = time.Parse(time.RFC3339, *at)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			flag.Usage()
			return invocationError
		}
	}

	tz := guesttz.New(guesttz.WithLogger(log))
	if cfg.Zone != "" {
		if !zonename.Valid(cfg.Zone) {
			fmt.Fprintf(os.Stderr, "invalid zoneinfo name %q\n", cfg.Zone)
			return invocationError
		}
		err = tz.SetZone(cfg.Zone)
		if err != nil {
			// Already logged; queries fall back to host semantics.
			log.LogAttrs(ctx, slog.LevelWarn, "using host local time", slog.String("zone", cfg.Zone))
		}
	}

	lt := tz.LocalAt(when)
	fmt.Printf("offset %d\n", tz.OffsetAt(when))
	fmt.Printf("local %04d-%02d-%02d %02d:%02d:%02d dst=%d\n",
		lt.Year, lt.Month, lt.Day, lt.Hour, lt.Min, lt.Sec, lt.IsDST)

	return success
}
