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

// Package prompt provides the interactive terminal prompter used for
// overwrite confirmation. The raw answer text is returned untouched; the
// copy core decides what counts as a yes.
package prompt

import (
	"context"

	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

// 💬 Interactive asks yes/no questions on the terminal. Implements
// cp.Prompter. Ask blocks the whole copy until the user answers.
type Interactive struct{}

// 🏭 NewInteractive creates a terminal prompter
func NewInteractive() *Interactive {
	return &Interactive{}
}

// Ask shows the question and returns the raw answer line.
func (p *Interactive) Ask(ctx context.Context, question string) (string, error) {
	answer, err := pterm.DefaultInteractiveTextInput.Show(question)
	if err != nil {
		return "", errors.Errorf("reading answer: %w", err)
	}
	return answer, nil
}
