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

package config

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🔀 OverwriteMode governs behavior when a destination file already exists
type OverwriteMode int

const (
	OverwriteDeny  OverwriteMode = iota // never replace (default)
	OverwriteForce                      // always replace
	OverwriteAsk                        // ask interactively per file
)

// String returns a string representation of OverwriteMode
func (m OverwriteMode) String() string {
	switch m {
	case OverwriteDeny:
		return "deny"
	case OverwriteForce:
		return "force"
	case OverwriteAsk:
		return "ask"
	default:
		return "unknown"
	}
}

// 📚 Policy is the immutable per-invocation configuration. Build it with
// NewPolicy so that conflicting options are rejected before the copy starts;
// the core never re-checks mutual exclusion.
type Policy struct {
	Recursive bool          // permit descending into directories
	Overwrite OverwriteMode // conflict behavior for existing destination files
	Verbose   bool          // surface informational events
	Exclude   []string      // glob patterns of entries to skip during a walk
}

// 🏭 NewPolicy builds a Policy from raw option values, validating them.
// Override and interactive are mutually exclusive.
func NewPolicy(recursive, override, interactive, verbose bool, exclude []string) (Policy, error) {
	if override && interactive {
		return Policy{}, errors.New("override and interactive options are mutually exclusive")
	}

	mode := OverwriteDeny
	switch {
	case override:
		mode = OverwriteForce
	case interactive:
		mode = OverwriteAsk
	}

	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return Policy{}, errors.Errorf("invalid exclude pattern: %q", pattern)
		}
	}

	return Policy{
		Recursive: recursive,
		Overwrite: mode,
		Verbose:   verbose,
		Exclude:   exclude,
	}, nil
}

// 📝 String returns a string representation of the policy
func (p Policy) String() string {
	return fmt.Sprintf("recursive=%t overwrite=%s verbose=%t exclude=%d",
		p.Recursive, p.Overwrite, p.Verbose, len(p.Exclude))
}
