// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package dictionary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar"
	"github.com/edsrzf/mmap-go"
)

// ErrNoMatch is returned when a word-list pattern matches no file.
var ErrNoMatch = errors.New("no word-list file matches")

// Files is a [Source] reading word lists, one word per line, from files matching glob patterns.
// Patterns support `**` for recursive matches.
type Files []string

// Load implements [Source].
func (f Files) Load(ctx context.Context, b *Builder) error {
	for _, pattern := range f {
		paths, err := doublestar.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}

		if len(paths) == 0 {
			return fmt.Errorf("%w %q", ErrNoMatch, pattern)
		}

		slices.Sort(paths)

		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := loadFile(path, b); err != nil {
				return err
			}
		}
	}

	return nil
}

// LogAttr implements [Source].
func (f Files) LogAttr() slog.Attr {
	return slog.Any("files", []string(f))
}

// loadFile maps the word list at path into memory and adds its lines to b.
func loadFile(path string, b *Builder) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}

	if info.IsDir() {
		return nil
	}

	if info.Size() == 0 {
		return nil // can't map empty files
	}

	m, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("can't map %s: %w", path, err)
	}

	b.AddLines(m)

	if err := m.Unmap(); err != nil {
		return fmt.Errorf("can't unmap %s: %w", path, err)
	}

	return nil
}
