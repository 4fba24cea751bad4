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
	"io"
	"os"

	"gitlab.com/tozd/go/errors"
)

// 📥 CopyContents duplicates the contents of src into dest, replacing
// whatever dest held. The caller touches dest first, so a partially written
// file is visible under its final name; there is no temp-file-plus-rename
// staging. I/O errors surface verbatim and are never retried.
func CopyContents(src, dest string) error {
	source, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	destination, err := os.Create(dest)
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return errors.Errorf("copying file content: %w", err)
	}

	return nil
}

// touch creates path as an empty file if absent, leaving existing content
// alone.
func touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Errorf("touching destination file: %w", err)
	}
	return f.Close()
}
