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

// Package goast adapts Go syntax trees to [syntax.Cursor].
//
// Identifiers map to "identifier", selected fields and methods to "property_identifier".
// String literals have "string_fragment" children for the text between escape sequences.
// Comments are not part of the tree, see [Comments].
package goast

import (
	"go/ast"
	"go/token"
	"iter"
	"strings"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/typoguard/internal/config"
	"fillmore-labs.com/typoguard/internal/syntax"
)

// Kinds of Go nodes that contain no checked text.
const (
	kindNode       = "node"
	kindString     = "string"
	kindImportPath = "import_path"
	kindTag        = "tag"
)

// Cursor implements [syntax.Cursor] for the subtree below an [inspector.Cursor].
type Cursor struct {
	file      *token.File
	root, cur inspector.Cursor

	frags []fragment // string fragments, when positioned inside a string literal
	frag  int
}

type fragment struct {
	start, end uint32
}

// NewCursor returns a cursor positioned at root. file must contain root's node.
func NewCursor(file *token.File, root inspector.Cursor) *Cursor {
	return &Cursor{file: file, root: root, cur: root}
}

func (c *Cursor) Kind() string {
	if c.frags != nil {
		return config.StringFragment.String()
	}

	switch n := c.cur.Node().(type) {
	case *ast.Ident:
		if e, _ := c.cur.ParentEdge(); e == edge.SelectorExpr_Sel {
			return config.PropertyIdentifier.String()
		}

		return config.Identifier.String()

	case *ast.BasicLit:
		if n.Kind != token.STRING {
			return kindNode
		}

		switch e, _ := c.cur.ParentEdge(); e {
		case edge.ImportSpec_Path:
			return kindImportPath

		case edge.Field_Tag:
			return kindTag

		default:
			return kindString
		}

	default:
		return kindNode
	}
}

func (c *Cursor) Range() (start, end uint32) {
	if c.frags != nil {
		f := c.frags[c.frag]

		return f.start, f.end
	}

	n := c.cur.Node()

	return c.offset(n.Pos()), c.offset(n.End())
}

func (c *Cursor) GotoFirstChild() bool {
	if c.frags != nil {
		return false
	}

	if c.Kind() == kindString {
		lit := c.cur.Node().(*ast.BasicLit)
		if frags := stringFragments(lit.Value, c.offset(lit.Pos())); len(frags) > 0 {
			c.frags, c.frag = frags, 0

			return true
		}

		return false
	}

	child, ok := c.cur.FirstChild()
	if ok {
		c.cur = child
	}

	return ok
}

func (c *Cursor) GotoNextSibling() bool {
	if c.frags != nil {
		if c.frag+1 >= len(c.frags) {
			return false
		}

		c.frag++

		return true
	}

	if c.cur == c.root {
		return false
	}

	next, ok := c.cur.NextSibling()
	if ok {
		c.cur = next
	}

	return ok
}

func (c *Cursor) GotoParent() bool {
	if c.frags != nil {
		c.frags = nil

		return true
	}

	if c.cur == c.root {
		return false
	}

	c.cur = c.cur.Parent()

	return true
}

func (c *Cursor) offset(pos token.Pos) uint32 {
	return uint32(c.file.Offset(pos))
}

// stringFragments splits a string literal at offset into the text runs between escape sequences.
func stringFragments(lit string, offset uint32) []fragment {
	if len(lit) < 2 {
		return nil
	}

	if lit[0] == '`' {
		if len(lit) == 2 {
			return nil
		}

		return []fragment{{offset + 1, offset + uint32(len(lit)) - 1}}
	}

	var frags []fragment

	body, base := lit[1:len(lit)-1], offset+1
	add := func(start, end int) {
		if start < end {
			frags = append(frags, fragment{base + uint32(start), base + uint32(end)})
		}
	}

	start := 0
	for i := 0; i < len(body); {
		if body[i] != '\\' {
			i++

			continue
		}

		add(start, i)

		i += escapeLen(body[i:])
		start = i
	}

	add(start, len(body))

	return frags
}

// escapeLen returns the length of the escape sequence at the start of s.
func escapeLen(s string) int {
	n := 2

	if len(s) > 1 {
		switch c := s[1]; {
		case c == 'x':
			n = 4

		case c == 'u':
			n = 6

		case c == 'U':
			n = 10

		case '0' <= c && c <= '7':
			n = 4
		}
	}

	return min(n, len(s))
}

// Comments yields the comments of f as [config.Comment] spans, omitting directives like
// //go:generate or //nolint.
func Comments(file *token.File, f *ast.File, src string) iter.Seq2[syntax.Span, error] {
	return func(yield func(syntax.Span, error) bool) {
		for _, group := range f.Comments {
			for _, comment := range group.List {
				if IsDirective(comment.Text) {
					continue
				}

				start := uint32(file.Offset(comment.Pos()))
				end := start + uint32(len(comment.Text))

				span, err := syntax.Extract(src, config.Comment, start, end)
				if !yield(span, err) || err != nil {
					return
				}
			}
		}
	}
}

var directives = [...]string{"//go:", "//line ", "/*line ", "//nolint", "//export ", "//extern ", "//lint:"}

// IsDirective reports whether comment is a tool directive.
func IsDirective(comment string) bool {
	for _, prefix := range directives {
		if strings.HasPrefix(comment, prefix) {
			return true
		}
	}

	return false
}

// Spans yields the spans of the Go syntax tree below root, followed by the comments of f when
// kinds includes [config.Comment].
func Spans(file *token.File, f *ast.File, root inspector.Cursor, src string, kinds config.Kinds) iter.Seq2[syntax.Span, error] {
	return func(yield func(syntax.Span, error) bool) {
		for span, err := range syntax.Spans(NewCursor(file, root), src, kinds) {
			if !yield(span, err) || err != nil {
				return
			}
		}

		if !kinds.Enabled(config.Comment) {
			return
		}

		for span, err := range Comments(file, f, src) {
			if !yield(span, err) || err != nil {
				return
			}
		}
	}
}
