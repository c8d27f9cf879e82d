// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

// Command headerlint maintains the structured copyright header at the top
// of source files, driven by git blame for authorship. Grounded on
// JensRoland-blamebot/cmd/root.go's flag-based entry point: this tool has
// one flat flag set and no subcommands, so flag.FlagSet is a better fit
// than a subcommand framework.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/copyrightkit/headerlint/internal/dispatcher"
	"github.com/copyrightkit/headerlint/internal/errs"
	"github.com/copyrightkit/headerlint/internal/gitutil"
	"github.com/copyrightkit/headerlint/internal/headerconst"
	"github.com/copyrightkit/headerlint/internal/logging"
	"github.com/copyrightkit/headerlint/internal/runconfig"
	"github.com/copyrightkit/headerlint/internal/staticconfig"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("headerlint", flag.ContinueOnError)

	component := fs.String("component", "", "set or remove (if empty) the Component header field")
	updateCopyright := fs.Bool("update-copyright", false, "update the Copyright field from the static config template")
	updateFileName := fs.Bool("update-filename", false, "update the File field to the target's basename")
	updateAuthors := fs.Bool("update-authors", false, "update the Author field from git blame")
	updateAuthorsOnlyIfEmpty := fs.Bool("update-authors-only-if-empty", false, "only touch Author when it's currently empty")
	maxBlameAuthors := fs.Int("max-blame-authors-to-start-update", 0, "author count above which Author is left untouched; <=0 means unlimited")
	dontSkipBrokenMerges := fs.Bool("dont-skip-broken-merges", false, "disable broken-commit (merge) filtering in blame attribution")
	staticConfigPath := fs.String("static-config", "", "path to static_config.json (default: next to the executable)")
	dryRun := fs.Bool("dry", false, "read-only mode: log proposed changes, write nothing")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	gitBackend := fs.String("git-backend", "cli", "git adapter backend: cli or library")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `headerlint: maintain structured copyright headers from git blame.

Usage:
    headerlint [flags] <path>...

Flags:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(reorderArgs(args)); err != nil {
		return int(errs.RunArgError)
	}

	componentGiven := false
	staticConfigGiven := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "component":
			componentGiven = true
		case "static-config":
			staticConfigGiven = true
		}
	})

	cfg := runconfig.New()
	cfg.ComponentName = *component
	cfg.UpdateComponent = componentGiven
	cfg.UpdateCopyright = *updateCopyright
	cfg.UpdateFileName = *updateFileName
	cfg.UpdateAuthorsOnlyIfEmpty = *updateAuthorsOnlyIfEmpty
	cfg.DontSkipBrokenMerges = *dontSkipBrokenMerges
	cfg.ReadOnlyMode = *dryRun
	cfg.Verbose = *verbose

	// Two independent checks on the same env var, per the external
	// interfaces: authors updates are dropped for any non-empty value,
	// while ReadOnlyMode is forced only by the narrower falsy set.
	if *updateAuthors && os.Getenv("LINT_ENABLE_COPYRIGHT_UPDATE") == "" {
		cfg.UpdateAuthors = true
	}
	if envForcesReadOnly() {
		cfg.ReadOnlyMode = true
	}

	if *maxBlameAuthors <= 0 {
		cfg.MaxBlameAuthors = headerconst.UnlimitedBlameAuthors
	} else {
		cfg.MaxBlameAuthors = *maxBlameAuthors
	}

	switch *gitBackend {
	case "cli":
		cfg.GitBackend = runconfig.GitBackendCLI
	case "library":
		cfg.GitBackend = runconfig.GitBackendLibrary
	default:
		fmt.Fprintf(os.Stderr, "error: --git-backend must be \"cli\" or \"library\", got %q\n", *gitBackend)
		return int(errs.RunArgError)
	}

	cfg.TargetPaths = nonEmpty(fs.Args())
	if len(cfg.TargetPaths) == 0 {
		fmt.Fprintln(os.Stderr, "error: at least one target path is required")
		return int(errs.RunArgError)
	}

	logging.Init(cfg.Verbose)

	if componentGiven && *component == "" {
		logging.L().WithField("code", errs.BadComponentName.String()).
			Warn("component name is empty, the Component field will be deleted")
	}

	if staticConfigGiven && *staticConfigPath == "" {
		e := errs.New(errs.BadStaticConfigPaths, fmt.Errorf("--static-config should not be an empty string"))
		logging.L().WithField("code", e.Kind.String()).Error(e.Error())
		return int(e.Kind.ExitCode())
	}

	cfg.StaticConfigPath = *staticConfigPath
	if cfg.StaticConfigPath == "" {
		exe, err := os.Executable()
		if err != nil {
			e := errs.New(errs.BadStaticConfigPaths, fmt.Errorf("resolving default static config path: %w", err))
			logging.L().WithField("code", e.Kind.String()).Error(e.Error())
			return int(e.Kind.ExitCode())
		}
		cfg.StaticConfigPath = filepath.Join(filepath.Dir(exe), headerconst.DefaultStaticConfigName)
	}

	staticCfg, cfgErr := staticconfig.Load(cfg.StaticConfigPath)
	if cfgErr != nil {
		logging.L().WithField("code", cfgErr.Kind.String()).Error(cfgErr.Error())
		return int(cfgErr.Kind.ExitCode())
	}

	newAdapter := func() gitutil.Adapter {
		if cfg.GitBackend == runconfig.GitBackendLibrary {
			return gitutil.NewLibraryAdapter()
		}
		return gitutil.NewCLIAdapter()
	}

	// Per-file errors are logged and skipped; per the error handling design
	// the process exit code is Success whenever the run completed at all.
	dispatcher.Run(context.Background(), cfg, staticCfg, newAdapter)
	return int(errs.Success)
}

// envForcesReadOnly checks LINT_ENABLE_COPYRIGHT_UPDATE against the falsy
// value set that forces ReadOnlyMode. This is independent of the broader
// "non-empty" check that gates --update-authors.
func envForcesReadOnly() bool {
	v := os.Getenv("LINT_ENABLE_COPYRIGHT_UPDATE")
	switch v {
	case "False", "false", "F", "f", "0":
		return true
	default:
		return false
	}
}

func nonEmpty(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// reorderArgs moves flags before positional args so flag.Parse works
// regardless of argument order, the same trick
// JensRoland-blamebot/cmd/root.go uses for its flat flag set.
func reorderArgs(args []string) []string {
	boolFlags := map[string]bool{
		"-update-copyright": true, "--update-copyright": true,
		"-update-filename": true, "--update-filename": true,
		"-update-authors": true, "--update-authors": true,
		"-update-authors-only-if-empty": true, "--update-authors-only-if-empty": true,
		"-dont-skip-broken-merges": true, "--dont-skip-broken-merges": true,
		"-dry": true, "--dry": true,
		"-verbose": true, "--verbose": true,
	}

	var flags, positional []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if len(a) > 0 && a[0] == '-' {
			flags = append(flags, a)
			if !boolFlags[a] && !strings.Contains(a, "=") && i+1 < len(args) && (args[i+1] == "" || args[i+1][0] != '-') {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, a)
		}
	}
	return append(flags, positional...)
}
