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

package cp

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🚶 walk copies the children of srcDir into destDir, depth-first and
// pre-order. destDir must already exist. rel is the slash-separated path of
// srcDir relative to the walk root, used for exclude matching.
//
// A destination file that is not confirmed for overwrite is a soft skip:
// the walk reports it and continues with the remaining siblings. An I/O
// failure while copying is not caught here; it aborts the entire walk.
// Enumeration order is whatever the filesystem yields.
func (o *Operator) walk(ctx context.Context, srcDir, destDir, rel string) error {
	logger := zerolog.Ctx(ctx)

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return errors.Errorf("reading directory %s: %w", srcDir, err)
	}

	for _, entry := range entries {
		srcChild := filepath.Join(srcDir, entry.Name())
		destChild := filepath.Join(destDir, entry.Name())
		relChild := path.Join(rel, entry.Name())

		if o.excluded(relChild) {
			o.reporter.Report(ctx, Event{Outcome: OutcomeSkippedExcluded, Source: srcChild, Dest: destChild})
			continue
		}

		// classify fresh per entry, tolerating external tree mutation
		kind, err := Classify(srcChild)
		if err != nil {
			return err
		}
		logger.Debug().Str("entry", srcChild).Stringer("kind", kind).Msg("classified entry")

		switch kind {
		case KindDir:
			if err := os.MkdirAll(destChild, 0755); err != nil {
				return errors.Errorf("creating directory %s: %w", destChild, err)
			}
			o.reporter.Report(ctx, Event{Outcome: OutcomeRecursed, Source: srcChild, Dest: destChild})
			if err := o.walk(ctx, srcChild, destChild, relChild); err != nil {
				return err
			}

		case KindFile:
			destKind, err := Classify(destChild)
			if err != nil {
				return err
			}

			confirmed := true
			if destKind == KindFile {
				confirmed, err = ResolveOverwrite(ctx, o.policy, o.prompter, destChild)
				if err != nil {
					return err
				}
			}

			if !confirmed {
				o.reporter.Report(ctx, Event{Outcome: OutcomeSkippedExists, Source: srcChild, Dest: destChild})
				continue
			}

			if err := touch(destChild); err != nil {
				return err
			}
			if err := CopyContents(srcChild, destChild); err != nil {
				return err
			}
			o.reporter.Report(ctx, Event{Outcome: OutcomeCopied, Source: srcChild, Dest: destChild})

		default:
			// neither file nor directory, or vanished since ReadDir
			o.reporter.Report(ctx, Event{Outcome: OutcomeSkippedUnsupported, Source: srcChild, Dest: destChild})
		}
	}

	return nil
}

// 🔍 excluded checks rel against the policy's exclude globs
func (o *Operator) excluded(rel string) bool {
	for _, pattern := range o.policy.Exclude {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
