// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

// Package logging configures the process-wide logrus logger and exposes a
// handful of helpers that attach the error-kind code and file path
// consistently, so every call site in the engine logs the same shape.
package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/copyrightkit/headerlint/internal/errs"
)

var (
	log     = logrus.New()
	initOne sync.Once
)

// Init configures the shared logger. Safe to call more than once; only the
// first call has an effect, matching the one-shot initialization the rest
// of the engine uses for its process-wide singletons.
func Init(verbose bool) {
	initOne.Do(func() {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		} else {
			log.SetLevel(logrus.InfoLevel)
		}
	})
}

// L returns the shared logger.
func L() *logrus.Logger {
	return log
}

// ForFile returns an entry scoped to a single file path, the field every
// per-file log line in the engine carries.
func ForFile(path string) *logrus.Entry {
	return log.WithField("file", path)
}

// Err logs a recoverable error-kind against a file path at the level
// appropriate to its kind (warnings for skip conditions, errors for
// failures) and returns it unchanged, so call sites can `return logging.Err(...)`.
func Err(path string, e *errs.Error) *errs.Error {
	entry := ForFile(path).WithField("code", e.Kind.String())
	switch e.Kind {
	case errs.FileOrDirIsNotExist:
		entry.Warn(e.Error())
	default:
		entry.Error(e.Error())
	}
	return e
}

// Info logs one of the informational codes at info level.
func Info(path string, kind errs.Kind, message string) {
	ForFile(path).WithField("code", kind.String()).Info(message)
}

// Debug logs a free-form debug note, used for the engine's many
// "left alone" / "recovered" notices that aren't error conditions.
func Debug(path string, message string) {
	ForFile(path).Debug(message)
}
