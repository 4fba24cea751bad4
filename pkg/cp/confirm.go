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
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/gocp/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// 💬 Prompter answers a yes/no question shown to the user. Ask blocks until
// an answer arrives; the whole walk pauses on it. Test doubles return
// scripted answers.
type Prompter interface {
	Ask(ctx context.Context, question string) (string, error)
}

// ✅ ResolveOverwrite decides whether an existing destination file may be
// replaced. It is the single decision point for the force/ask/deny policy,
// shared by the top-level file copy and every entry of a recursive walk.
// Only call it when dest already exists as a file.
func ResolveOverwrite(ctx context.Context, policy config.Policy, prompter Prompter, dest string) (bool, error) {
	switch policy.Overwrite {
	case config.OverwriteForce:
		return true, nil

	case config.OverwriteAsk:
		if prompter == nil {
			return false, errors.New("interactive mode requires a prompter")
		}
		answer, err := prompter.Ask(ctx, fmt.Sprintf("Override %s ? [n/y]", dest))
		if err != nil {
			return false, errors.Errorf("reading confirmation: %w", err)
		}
		confirmed := strings.Contains(strings.ToLower(answer), "y")
		zerolog.Ctx(ctx).Debug().
			Str("dest", dest).
			Str("answer", answer).
			Bool("confirmed", confirmed).
			Msg("interactive overwrite decision")
		return confirmed, nil

	default:
		// deny, no prompt
		return false, nil
	}
}
