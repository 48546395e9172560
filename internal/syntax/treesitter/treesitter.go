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

// Package treesitter provides syntax trees for TypeScript and JavaScript sources using
// tree-sitter grammars.
package treesitter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Language is a tree-sitter grammar.
type Language struct {
	name    string
	grammar func() *sitter.Language
}

// Name returns the name of the language.
func (l *Language) Name() string {
	return l.name
}

func (l *Language) String() string {
	return l.name
}

var (
	// TypeScript is the grammar for .ts files.
	TypeScript = &Language{name: "typescript", grammar: typescript.GetLanguage}

	// TSX is the grammar for .tsx files.
	TSX = &Language{name: "tsx", grammar: tsx.GetLanguage}

	// JavaScript is the grammar for .js and .jsx files.
	JavaScript = &Language{name: "javascript", grammar: javascript.GetLanguage}
)

// ErrUnknownLanguage is returned for unsupported language names or file extensions.
var ErrUnknownLanguage = errors.New("unknown language")

var byName = map[string]*Language{
	TypeScript.name: TypeScript,
	"ts":            TypeScript,
	TSX.name:        TSX,
	JavaScript.name: JavaScript,
	"js":            JavaScript,
}

var byExtension = map[string]*Language{
	".ts":  TypeScript,
	".mts": TypeScript,
	".cts": TypeScript,
	".tsx": TSX,
	".js":  JavaScript,
	".mjs": JavaScript,
	".cjs": JavaScript,
	".jsx": JavaScript,
}

// LanguageByName returns the language called name.
func LanguageByName(name string) (*Language, error) {
	if l, ok := byName[strings.ToLower(name)]; ok {
		return l, nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownLanguage, name)
}

// LanguageForPath returns the language for the file extension of path.
func LanguageForPath(path string) (*Language, error) {
	ext := filepath.Ext(path)
	if l, ok := byExtension[strings.ToLower(ext)]; ok {
		return l, nil
	}

	return nil, fmt.Errorf("%w for %q", ErrUnknownLanguage, path)
}

// Extensions returns the file extensions with a known language.
func Extensions() []string {
	exts := make([]string, 0, len(byExtension))
	for ext := range byExtension {
		exts = append(exts, ext)
	}

	return exts
}

// Tree is a parsed syntax tree. It must be closed after use.
type Tree struct {
	tree *sitter.Tree
}

// Parse parses src with the grammar of lang. Syntax errors do not fail the parse,
// see [Tree.HasError].
func Parse(ctx context.Context, lang *Language, src []byte) (*Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(lang.grammar())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, err
	}

	if tree == nil {
		return nil, fmt.Errorf("no %s syntax tree", lang.name)
	}

	return &Tree{tree: tree}, nil
}

// HasError reports whether the tree contains syntax errors.
func (t *Tree) HasError() bool {
	return t.tree.RootNode().HasError()
}

// Walk returns a cursor positioned at the root node. It must be closed after use and must
// not outlive the tree.
func (t *Tree) Walk() *Cursor {
	return &Cursor{cursor: sitter.NewTreeCursor(t.tree.RootNode())}
}

// Close releases the tree.
func (t *Tree) Close() {
	t.tree.Close()
}

// Cursor implements [syntax.Cursor] over a tree-sitter tree.
type Cursor struct {
	cursor *sitter.TreeCursor
}

func (c *Cursor) Kind() string {
	return c.cursor.CurrentNode().Type()
}

func (c *Cursor) Range() (start, end uint32) {
	n := c.cursor.CurrentNode()

	return n.StartByte(), n.EndByte()
}

func (c *Cursor) GotoFirstChild() bool {
	return c.cursor.GoToFirstChild()
}

func (c *Cursor) GotoNextSibling() bool {
	return c.cursor.GoToNextSibling()
}

func (c *Cursor) GotoParent() bool {
	return c.cursor.GoToParent()
}

// Close releases the cursor.
func (c *Cursor) Close() {
	c.cursor.Close()
}
