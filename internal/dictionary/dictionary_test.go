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

package dictionary_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "fillmore-labs.com/typoguard/internal/dictionary"
)

func TestContains(t *testing.T) {
	t.Parallel()

	d := New("build", "Subject", "")

	tests := []struct {
		word string
		want bool
	}{
		{"build", true},
		{"Subject", true},
		{"subject", false},
		{"Build", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := d.Contains(tt.word); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}

	if got, want := d.Len(), 2; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestNilDictionary(t *testing.T) {
	t.Parallel()

	var d *Dictionary

	if d.Contains("word") {
		t.Error("Nil dictionary contains a word")
	}

	if d.Len() != 0 {
		t.Errorf("Nil dictionary has %d words", d.Len())
	}
}

func TestAddLines(t *testing.T) {
	t.Parallel()

	b := NewBuilder(0)

	n := b.AddLines([]byte("alpha\r\nbeta\n\n  gamma  \nalpha\ndelta"))
	if n != 5 {
		t.Errorf("AddLines() = %d, want 5", n)
	}

	d := b.Dictionary()
	for _, w := range []string{"alpha", "beta", "gamma", "delta"} {
		if !d.Contains(w) {
			t.Errorf("Missing %q", w)
		}
	}

	if got, want := d.Len(), 4; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "en.txt"), "hello\nworld\n")
	writeFile(t, filepath.Join(dir, "nested", "code.txt"), "json\r\nparse\n")
	writeFile(t, filepath.Join(dir, "empty.txt"), "")

	d, err := Load(context.Background(), nil, Files{filepath.Join(dir, "**", "*.txt")})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for _, w := range []string{"hello", "world", "json", "parse"} {
		if !d.Contains(w) {
			t.Errorf("Missing %q", w)
		}
	}
}

func TestFilesNoMatch(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), nil, Files{filepath.Join(t.TempDir(), "*.txt")})
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("Load() error = %v, want %v", err, ErrNoMatch)
	}
}

func TestLoadEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "empty.txt"), "\n\n")

	_, err := Load(context.Background(), nil, Files{filepath.Join(dir, "*.txt")})
	if !errors.Is(err, ErrNoDictionary) {
		t.Errorf("Load() error = %v, want %v", err, ErrNoDictionary)
	}
}

func writeFile(tb testing.TB, path, content string) {
	tb.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatal(err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		tb.Fatal(err)
	}
}
