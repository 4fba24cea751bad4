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
	"gitlab.com/tozd/go/errors"
)

// ❌ Terminal failure kinds raised at the Run boundary. Callers match them
// with errors.Is; the wrapped message carries the offending path.
var (
	// ErrNotADirectory means the destination exists but is not a directory
	// while the source is a directory requiring a directory target.
	ErrNotADirectory = errors.New("destination is not a directory")

	// ErrRecursiveRequired means the source is a directory and recursion
	// was not requested.
	ErrRecursiveRequired = errors.New("source is a directory, specify -r to copy recursively")

	// ErrOverwriteDenied means the destination file exists and the
	// overwrite policy denied replacing it.
	ErrOverwriteDenied = errors.New("destination exists and override was denied")

	// ErrUnsupportedFileType means the source is neither a regular file
	// nor a directory.
	ErrUnsupportedFileType = errors.New("file type not supported")
)
