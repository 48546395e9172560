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

// Package testsource provides utilities for parsing Go source code in tests.
//
// It is designed to simplify testing of the typoguard Go syntax adapter by handling common
// boilerplate code for parsing Go source fragments.
package testsource

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Source is a parsed Go source file.
type Source struct {
	// Text is the complete source text.
	Text string

	// File is the token file of the source, mapping positions to offsets.
	File *token.File

	// AST is the parsed file, including comments.
	AST *ast.File

	// Cursor is positioned at the node under test.
	Cursor inspector.Cursor
}

// Parse parses a complete Go source file. The cursor of the result is positioned at the file.
func Parse(tb testing.TB, src string) Source {
	tb.Helper()

	fset, f := parse(tb, src)

	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Children() {
		return Source{Text: src, File: fset.File(f.FileStart), AST: f, Cursor: c}
	}

	tb.Fatal("Can't find file")

	return Source{}
}

// ParseBody parses a Go source code fragment.
// The provided source `src` is automatically wrapped in a function body `func _() { ... }`
// within a package `test`. This allows testing statement-level code fragments without
// manually constructing the surrounding package and function scaffolding.
//
// The cursor of the result is positioned at the wrapper function's Body field.
func ParseBody(tb testing.TB, src string) Source {
	tb.Helper()

	text := wrapSource(src)
	fset, f := parse(tb, text)

	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		return Source{Text: text, File: fset.File(f.FileStart), AST: f, Cursor: c.ChildAt(edge.FuncDecl_Body, -1)}
	}

	tb.Fatal("Can't find function")

	return Source{}
}

func parse(tb testing.TB, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

func wrapSource(src string) string {
	const (
		header = "package " + testpkg + "\n\nfunc _() {\n"
		suffix = "\n}\n"
	)

	return header + src + suffix
}
