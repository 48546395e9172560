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

// Package run drives typo checking over files and Go packages.
package run

import (
	"log/slog"
	"runtime"

	"fillmore-labs.com/typoguard/internal/config"
	"fillmore-labs.com/typoguard/internal/syntax"
	"fillmore-labs.com/typoguard/internal/syntax/treesitter"
)

// Options represent configuration options for a typoguard run.
type Options struct {
	// Kinds are the syntax node kinds to check.
	Kinds config.Kinds

	// Generated enables checking generated Go files.
	Generated bool

	// Language forces a tree-sitter grammar for all files. When nil the grammar is chosen by file
	// extension, and Go files are parsed with go/parser.
	Language *treesitter.Language

	// Workers is the maximum number of files processed concurrently.
	Workers int

	// Logger receives per-file failures. When nil [slog.Default] is used.
	Logger *slog.Logger

	// OnFinding is called for every typo found by [Options.Run]. It is called concurrently.
	OnFinding func(Finding)
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Kinds:   config.DefaultKinds(),
		Workers: runtime.GOMAXPROCS(0),
	}
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}

	return o.Logger
}

func (o *Options) workers() int {
	if o.Workers < 1 {
		return 1
	}

	return o.Workers
}

// Finding is a typo in a file.
type Finding struct {
	Path         string
	Line, Column int
	syntax.Span

	// Word is the first unknown word of the span.
	Word string
}

// LogValue implements [slog.LogValuer].
func (f Finding) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("file", f.Path),
		slog.Int("line", f.Line),
		slog.Int("column", f.Column),
		slog.String("kind", f.Kind.String()),
		slog.String("word", f.Word),
	)
}
