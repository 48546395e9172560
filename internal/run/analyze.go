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
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/typoguard/internal/astutil"
	"fillmore-labs.com/typoguard/internal/classify"
	"fillmore-labs.com/typoguard/internal/syntax/goast"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Analyze executes the typoguard analyzer on a Go package.
func (o *Options) Analyze(p *analysis.Pass, cl *classify.Classifier) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("typoguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "TypoGuard")
	defer task.End()

	if p.Pkg != nil {
		trace.Log(ctx, "package", p.Pkg.Path())
	}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, fmt.Errorf("file %s without valid position info", file.Name.Name))

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !o.Generated {
			continue
		}

		// Skip files with nolint comment
		if astutil.FileNoLint(file) {
			continue
		}

		src, err := currentFile.Source(p.ReadFile)
		if err != nil {
			astutil.InternalError(p, file, fmt.Errorf("can't read source: %w", err))

			continue
		}

		o.analyzeFile(ctx, p, cl, currentFile, f, string(src))
	}

	return nil, nil
}

func (o *Options) analyzeFile(ctx context.Context, p *analysis.Pass, cl *classify.Classifier, currentFile astutil.CurrentFile, f inspector.Cursor, src string) {
	defer trace.StartRegion(ctx, "File").End()

	for span, err := range goast.Spans(currentFile.Handle(), currentFile.File(), f, src, o.Kinds) {
		if err != nil {
			astutil.InternalError(p, currentFile.File(), err)

			return
		}

		word, typo := cl.FirstTypo(span.Text)
		if !typo {
			continue
		}

		pos := currentFile.Pos(span.Start)

		// Skip spans with nolint comment
		if currentFile.NoLintComment(pos) {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:      pos,
			End:      currentFile.Pos(span.End),
			Category: span.Kind.String(),
			Message:  fmt.Sprintf("possible typo %q in %s", word, span.Kind.Description()),
		})
	}
}
