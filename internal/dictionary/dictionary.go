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

// Package dictionary holds the set of known words typos are judged against.
//
// A [Dictionary] is assembled once from one or more [Source]s and is read-only afterwards,
// so a single instance can be shared by any number of goroutines without synchronization.
package dictionary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Dictionary is an immutable set of known words. Lookups are exact and case-sensitive.
type Dictionary struct {
	words map[string]struct{}
}

// New returns a [Dictionary] containing words.
func New(words ...string) *Dictionary {
	b := NewBuilder(len(words))
	for _, w := range words {
		b.Add(w)
	}

	return b.Dictionary()
}

// Contains reports whether word is a known word. A nil [Dictionary] knows no words.
func (d *Dictionary) Contains(word string) bool {
	if d == nil {
		return false
	}

	_, ok := d.words[word]

	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}

	return len(d.words)
}

// LogValue implements [slog.LogValuer].
func (d *Dictionary) LogValue() slog.Value {
	return slog.GroupValue(slog.Int("words", d.Len()))
}

// Builder accumulates words for a [Dictionary]. It is not safe for concurrent use.
type Builder struct {
	words map[string]struct{}
}

// NewBuilder returns a [Builder] with room for capacity words.
func NewBuilder(capacity int) *Builder {
	return &Builder{words: make(map[string]struct{}, capacity)}
}

// Add inserts a single word. Empty words are ignored.
func (b *Builder) Add(word string) {
	if word == "" {
		return
	}

	b.words[word] = struct{}{}
}

// AddLines inserts one word per line of data, ignoring surrounding white space and blank lines.
// It returns the number of words read.
func (b *Builder) AddLines(data []byte) int {
	var n int

	for len(data) > 0 {
		var line []byte

		line, data, _ = bytes.Cut(data, []byte{'\n'})
		if line = bytes.TrimSpace(line); len(line) == 0 {
			continue
		}

		b.words[string(line)] = struct{}{}
		n++
	}

	return n
}

// Len returns the number of distinct words collected so far.
func (b *Builder) Len() int {
	return len(b.words)
}

// Dictionary freezes the collected words. The [Builder] must not be used afterwards.
func (b *Builder) Dictionary() *Dictionary {
	d := &Dictionary{words: b.words}
	b.words = nil

	return d
}

// Source supplies known words.
type Source interface {
	// Load adds the words of this source to b.
	Load(ctx context.Context, b *Builder) error

	// LogAttr is for logging with [slog.Logger.LogAttrs].
	LogAttr() slog.Attr
}

// ErrNoDictionary is returned by [Load] when the sources yield no words at all.
var ErrNoDictionary = errors.New("no dictionary words loaded")

// Load builds a [Dictionary] from all sources. Any failing source fails the whole load.
func Load(ctx context.Context, logger *slog.Logger, sources ...Source) (*Dictionary, error) {
	if logger == nil {
		logger = slog.Default()
	}

	b := NewBuilder(500_000)

	for _, s := range sources {
		before := b.Len()

		if err := s.Load(ctx, b); err != nil {
			return nil, fmt.Errorf("dictionary source %s: %w", s.LogAttr().Value, err)
		}

		logger.LogAttrs(ctx, slog.LevelDebug, "Loaded dictionary source", s.LogAttr(), slog.Int("new", b.Len()-before))
	}

	if b.Len() == 0 {
		return nil, ErrNoDictionary
	}

	return b.Dictionary(), nil
}
