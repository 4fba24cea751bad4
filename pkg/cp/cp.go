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
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/gocp/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// 📦 Request names what to copy where. It is built once per invocation and
// immutable afterwards.
type Request struct {
	Source string // file or directory to copy
	Dest   string // target file or directory
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Policy is the per-invocation copy policy
	Policy config.Policy
	// Prompter answers interactive overwrite questions; required when the
	// policy overwrite mode is ask
	Prompter Prompter
	// Reporter receives per-entry outcome events; may be nil
	Reporter Reporter
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (*Operator, error) {
	if opts.Policy.Overwrite == config.OverwriteAsk && opts.Prompter == nil {
		return nil, errors.New("prompter is required in interactive mode")
	}
	if opts.Reporter == nil {
		opts.Reporter = nopReporter{}
	}
	return &Operator{
		policy:   opts.Policy,
		prompter: opts.Prompter,
		reporter: opts.Reporter,
	}, nil
}

// 🎮 Operator performs copy requests. It is the single entry point: shape
// validation, destination root creation, and dispatch to the file copy or
// the recursive walk all happen here.
type Operator struct {
	policy   config.Policy
	prompter Prompter
	reporter Reporter
}

// 🏃 Run executes a copy request. Terminal failures are one of the error
// kinds in errors.go or an underlying I/O error; either way the run stops
// and nothing is retried.
func (o *Operator) Run(ctx context.Context, req Request) error {
	zerolog.Ctx(ctx).Debug().
		Str("source", req.Source).
		Str("dest", req.Dest).
		Str("policy", o.policy.String()).
		Msg("starting copy")

	srcKind, err := Classify(req.Source)
	if err != nil {
		return err
	}

	switch srcKind {
	case KindFile:
		return o.copyFile(ctx, req.Source, req.Dest)
	case KindDir:
		return o.copyDirectory(ctx, req.Source, req.Dest)
	default:
		return errors.Errorf("%s: %w", req.Source, ErrUnsupportedFileType)
	}
}

// 📄 copyFile handles a regular-file source. An existing directory
// destination means the file lands inside it under its own name. An
// existing file destination goes through overwrite resolution, and a
// denial here is a hard error, unlike the per-entry soft skip inside a
// recursive walk.
func (o *Operator) copyFile(ctx context.Context, src, dest string) error {
	destKind, err := Classify(dest)
	if err != nil {
		return err
	}

	if destKind == KindDir {
		dest = filepath.Join(dest, filepath.Base(src))
		destKind, err = Classify(dest)
		if err != nil {
			return err
		}
	}

	if destKind == KindFile {
		confirmed, err := ResolveOverwrite(ctx, o.policy, o.prompter, dest)
		if err != nil {
			return err
		}
		if !confirmed {
			return errors.Errorf("cannot override %q, specify -o option: %w", dest, ErrOverwriteDenied)
		}
	}

	if err := touch(dest); err != nil {
		return err
	}
	if err := CopyContents(src, dest); err != nil {
		return err
	}

	o.reporter.Report(ctx, Event{Outcome: OutcomeCopied, Source: src, Dest: dest})
	return nil
}

// 📁 copyDirectory handles a directory source: validate the destination
// shape, settle the true destination root, create it, then walk. When the
// destination already exists as a directory the tree nests under
// dest/<source name>, matching conventional copy-tool semantics.
func (o *Operator) copyDirectory(ctx context.Context, src, dest string) error {
	destKind, err := Classify(dest)
	if err != nil {
		return err
	}
	if destKind != KindDir && destKind != KindMissing {
		return errors.Errorf("destination %s: %w", dest, ErrNotADirectory)
	}
	if !o.policy.Recursive {
		return errors.Errorf("%s: %w", src, ErrRecursiveRequired)
	}

	root := dest
	if destKind == KindDir {
		root = filepath.Join(dest, filepath.Base(src))
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return errors.Errorf("creating destination directory: %w", err)
	}

	return o.walk(ctx, src, root, "")
}
