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

// Package report aggregates typo counts per file and per run.
package report

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"time"

	"fillmore-labs.com/typoguard/internal/syntax"
)

// Result is the number of typos found among the checked spans of one or more files.
// Results combine by summation, in any order.
type Result struct {
	Found int
	Total int
}

// Add accumulates o into r.
func (r *Result) Add(o Result) {
	r.Found += o.Found
	r.Total += o.Total
}

// LogValue implements [slog.LogValuer].
func (r Result) LogValue() slog.Value {
	return slog.GroupValue(slog.Int("found", r.Found), slog.Int("total", r.Total))
}

// Tally counts the spans and those for which typo reports true.
// It returns the first error of spans.
func Tally(spans iter.Seq2[syntax.Span, error], typo func(syntax.Span) bool) (Result, error) {
	var r Result

	for span, err := range spans {
		if err != nil {
			return Result{}, err
		}

		r.Total++

		if typo(span) {
			r.Found++
		}
	}

	return r, nil
}

// Summary is the outcome of a run over many files.
type Summary struct {
	Result

	// Files is the number of files analyzed successfully.
	Files int

	// Failed is the number of files skipped because of errors.
	Failed int

	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// LogValue implements [slog.LogValuer].
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("found", s.Found),
		slog.Int("total", s.Total),
		slog.Int("files", s.Files),
		slog.Int("failed", s.Failed),
		slog.Duration("elapsed", s.Elapsed),
	)
}

// Print writes a human-readable summary to w.
func (s Summary) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "[*] Done with %d files in %v\n", s.Files, s.Elapsed.Round(time.Millisecond)); err != nil {
		return err
	}

	if s.Failed > 0 {
		if _, err := fmt.Fprintf(w, "[!] Skipped %d files with errors\n", s.Failed); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "[*] Found %d typos in %d words\n", s.Found, s.Total)

	return err
}
