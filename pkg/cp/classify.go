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
	"os"

	"gitlab.com/tozd/go/errors"
)

// 🔍 EntryKind is the classification of a filesystem entry
type EntryKind int

const (
	KindMissing     EntryKind = iota // entry does not exist
	KindFile                         // regular file
	KindDir                          // directory
	KindUnsupported                  // symlink, device node, socket, FIFO, ...
)

// String returns a string representation of EntryKind
func (k EntryKind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// 🔎 Classify inspects path and reports what kind of entry lives there.
// It stats fresh on every call and never follows symlinks, so a link to a
// directory still classifies as unsupported.
func Classify(path string) (EntryKind, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return KindMissing, nil
		}
		return KindMissing, errors.Errorf("inspecting %s: %w", path, err)
	}

	switch {
	case info.Mode().IsRegular():
		return KindFile, nil
	case info.IsDir():
		return KindDir, nil
	default:
		return KindUnsupported, nil
	}
}
