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

package run

import (
	"bytes"
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/trace"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/typoguard/internal/classify"
	"fillmore-labs.com/typoguard/internal/report"
	"fillmore-labs.com/typoguard/internal/syntax"
	"fillmore-labs.com/typoguard/internal/syntax/goast"
	"fillmore-labs.com/typoguard/internal/syntax/treesitter"
)

// Run checks all files with up to [Options.Workers] files in parallel.
// Files that fail are logged and skipped.
func (o *Options) Run(ctx context.Context, cl *classify.Classifier, paths []string) report.Summary {
	ctx, task := trace.NewTask(ctx, "TypoGuard")
	defer task.End()

	start := time.Now()

	results := make([]report.Result, len(paths))
	done := make([]bool, len(paths))

	var g errgroup.Group
	g.SetLimit(o.workers())

	for i, path := range paths {
		g.Go(func() error {
			result, err := o.File(ctx, cl, path)
			if err != nil {
				o.logger().LogAttrs(ctx, slog.LevelWarn, "Skipping file", slog.String("file", path), slog.Any("error", err))

				return nil
			}

			results[i], done[i] = result, true

			return nil
		})
	}

	_ = g.Wait() // workers never fail

	var s report.Summary

	for i, result := range results {
		if !done[i] {
			s.Failed++

			continue
		}

		s.Add(result)
		s.Files++
	}

	s.Elapsed = time.Since(start)

	return s
}

// File checks a single file.
func (o *Options) File(ctx context.Context, cl *classify.Classifier, path string) (report.Result, error) {
	defer trace.StartRegion(ctx, "File").End()

	src, err := os.ReadFile(path)
	if err != nil {
		return report.Result{}, &ReadError{Path: path, Err: err}
	}

	spans, release, err := o.spans(ctx, path, src)
	if err != nil {
		return report.Result{}, err
	}
	defer release()

	result, err := report.Tally(spans, func(span syntax.Span) bool {
		word, typo := cl.FirstTypo(span.Text)
		if typo && o.OnFinding != nil {
			line, column := position(src, span.Start)
			o.OnFinding(Finding{Path: path, Line: line, Column: column, Span: span, Word: word})
		}

		return typo
	})
	if err != nil {
		return report.Result{}, fmt.Errorf("%s: %w", path, err)
	}

	return result, nil
}

// spans parses src and returns its candidate spans and a function releasing the syntax tree.
func (o *Options) spans(ctx context.Context, path string, src []byte) (iter.Seq2[syntax.Span, error], func(), error) {
	if o.Language == nil && filepath.Ext(path) == ".go" {
		return o.goSpans(path, src)
	}

	lang := o.Language
	if lang == nil {
		var err error
		if lang, err = treesitter.LanguageForPath(path); err != nil {
			return nil, nil, &ParseError{Path: path, Err: err}
		}
	}

	tree, err := treesitter.Parse(ctx, lang, src)
	if err != nil {
		return nil, nil, &ParseError{Path: path, Language: lang.Name(), Err: err}
	}

	if tree.HasError() {
		o.logger().LogAttrs(ctx, slog.LevelDebug, "Syntax errors", slog.String("file", path), slog.String("language", lang.Name()))
	}

	c := tree.Walk()

	release := func() {
		c.Close()
		tree.Close()
	}

	return syntax.Spans(c, string(src), o.Kinds), release, nil
}

func (o *Options) goSpans(path string, src []byte) (iter.Seq2[syntax.Span, error], func(), error) {
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, path, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, nil, &ParseError{Path: path, Language: "go", Err: err}
	}

	if ast.IsGenerated(f) && !o.Generated {
		return func(func(syntax.Span, error) bool) {}, func() {}, nil
	}

	root := inspector.New([]*ast.File{f}).Root()
	for file := range root.Children() {
		return goast.Spans(fset.File(f.FileStart), f, file, string(src), o.Kinds), func() {}, nil
	}

	return nil, nil, &ParseError{Path: path, Language: "go", Err: errNoFile}
}

// position returns the 1-based line and byte column of offset in src.
func position(src []byte, offset uint32) (line, column int) {
	before := src[:offset]
	line = bytes.Count(before, []byte{'\n'}) + 1
	column = len(before) - bytes.LastIndexByte(before, '\n')

	return line, column
}
