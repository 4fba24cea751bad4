// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log renders user-facing copy output. Informational lines go to
// the out stream and only when verbose; warnings and errors always go to
// the error stream. Stream selection and verbosity gating live here, never
// in the copy core.
package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/gocp/pkg/cp"
)

// 🎯 Logger handles console output for copy operations
type Logger struct {
	out     io.Writer // informational stream
	errOut  io.Writer // warning/error stream
	verbose bool
	mu      sync.Mutex
}

// 🏭 New creates a new logger writing to the given streams
func New(out, errOut io.Writer, verbose bool) *Logger {
	return &Logger{
		out:     out,
		errOut:  errOut,
		verbose: verbose,
	}
}

// 📝 Report renders a per-entry copy outcome. Implements cp.Reporter.
func (l *Logger) Report(ctx context.Context, ev cp.Event) {
	zerolog.Ctx(ctx).Debug().
		Stringer("outcome", ev.Outcome).
		Str("source", ev.Source).
		Str("dest", ev.Dest).
		Msg("copy event")

	switch ev.Outcome {
	case cp.OutcomeCopied:
		l.Infof("%s Copy %s -> %s",
			color.New(color.FgGreen).Sprint("✓"), ev.Source, ev.Dest)
	case cp.OutcomeRecursed:
		l.Infof("%s Recursing into %s",
			color.New(color.FgCyan).Sprint("•"), ev.Source)
	case cp.OutcomeSkippedExists:
		l.Infof("%s Skipping %s -> %s as -o is not present",
			color.New(color.FgYellow).Sprint("-"), ev.Source, ev.Dest)
	case cp.OutcomeSkippedExcluded:
		l.Infof("%s Skipping %s because it matches an exclude pattern",
			color.New(color.FgYellow).Sprint("-"), ev.Source)
	case cp.OutcomeSkippedUnsupported:
		l.Warningf("Skipping %s because file type is not supported", ev.Source)
	}
}

// 📝 Info logs an informational message, shown only when verbose
func (l *Logger) Info(msg string) {
	if !l.verbose {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, msg)
}

// 📝 Warning logs a warning message, always shown
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.errOut, "%s %s\n", color.New(color.FgYellow).Sprint("⚠"), msg)
}

// 📝 Error logs an error message, always shown
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.errOut, "%s %s\n", color.New(color.FgRed).Sprint("✗"), msg)
}

// 📝 Infof logs a formatted informational message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}
