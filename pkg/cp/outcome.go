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

import "context"

// 📊 Outcome is the per-entry result of a copy decision
type Outcome int

const (
	OutcomeUnknown            Outcome = iota
	OutcomeCopied                     // file content was duplicated
	OutcomeRecursed                   // directory entered, children follow
	OutcomeSkippedExists              // destination exists and was not confirmed
	OutcomeSkippedUnsupported         // entry is neither file nor directory
	OutcomeSkippedExcluded            // entry matched an exclude pattern
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeCopied:
		return "copied"
	case OutcomeRecursed:
		return "recursed"
	case OutcomeSkippedExists:
		return "skipped-exists"
	case OutcomeSkippedUnsupported:
		return "skipped-unsupported"
	case OutcomeSkippedExcluded:
		return "skipped-excluded"
	default:
		return "unknown"
	}
}

// 📄 Event pairs an outcome with the paths it applies to. Events are
// ephemeral: produced during the walk, handed to the reporter, never stored.
type Event struct {
	Outcome Outcome
	Source  string // source path of the entry
	Dest    string // destination path of the entry
}

// 📢 Reporter receives events as they occur. The walk does not buffer
// outcomes; each event is delivered before the next entry is visited.
// Implementations decide stream selection and verbosity gating.
type Reporter interface {
	Report(ctx context.Context, ev Event)
}

// nopReporter discards all events.
type nopReporter struct{}

func (nopReporter) Report(context.Context, Event) {}
