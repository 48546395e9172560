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

package syntax_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/typoguard/internal/config"

	. "fillmore-labs.com/typoguard/internal/syntax"
)

// node is an in-memory syntax tree.
type node struct {
	kind       string
	start, end uint32
	parent     *node
	children   []*node
	index      int
}

func (n *node) add(kind string, start, end uint32) *node {
	c := &node{kind: kind, start: start, end: end, parent: n, index: len(n.children)}
	n.children = append(n.children, c)

	return c
}

// treeCursor is a [Cursor] over a [node] tree that can not leave its root.
type treeCursor struct {
	root, cur *node
}

func newCursor(root *node) *treeCursor { return &treeCursor{root: root, cur: root} }

func (c *treeCursor) Kind() string { return c.cur.kind }

func (c *treeCursor) Range() (uint32, uint32) { return c.cur.start, c.cur.end }

func (c *treeCursor) GotoFirstChild() bool {
	if len(c.cur.children) == 0 {
		return false
	}

	c.cur = c.cur.children[0]

	return true
}

func (c *treeCursor) GotoNextSibling() bool {
	if c.cur == c.root || c.cur.index+1 >= len(c.cur.parent.children) {
		return false
	}

	c.cur = c.cur.parent.children[c.cur.index+1]

	return true
}

func (c *treeCursor) GotoParent() bool {
	if c.cur == c.root {
		return false
	}

	c.cur = c.cur.parent

	return true
}

func collect(tb testing.TB, c Cursor, src string, kinds config.Kinds) []string {
	tb.Helper()

	var texts []string

	for span, err := range Spans(c, src, kinds) {
		if err != nil {
			tb.Fatalf("Unexpected error: %v", err)
		}

		texts = append(texts, span.Kind.String()+":"+span.Text)
	}

	return texts
}

func TestSpansPreOrder(t *testing.T) {
	t.Parallel()

	const src = "// hi\nfoo.bar(\"baz qux\")"

	root := &node{kind: "program", end: uint32(len(src))}
	root.add("comment", 0, 5)
	stmt := root.add("expression_statement", 6, 24)
	call := stmt.add("call_expression", 6, 24)
	member := call.add("member_expression", 6, 13)
	member.add("identifier", 6, 9)
	member.add(".", 9, 10)
	member.add("property_identifier", 10, 13)
	args := call.add("arguments", 13, 24)
	str := args.add("string", 14, 23)
	str.add("string_fragment", 15, 22)

	got := collect(t, newCursor(root), src, config.DefaultKinds())
	want := []string{
		"comment:// hi",
		"identifier:foo",
		"property_identifier:bar",
		"string_fragment:baz qux",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Spans() mismatch (-want +got):\n%s", diff)
	}
}

func TestSpansKinds(t *testing.T) {
	t.Parallel()

	const src = "// note\nx"

	root := &node{kind: "program", end: uint32(len(src))}
	root.add("comment", 0, 7)
	root.add("identifier", 8, 9)

	kinds := config.DefaultKinds()
	kinds.Disable(config.Comment)

	got := collect(t, newCursor(root), src, kinds)
	if diff := cmp.Diff([]string{"identifier:x"}, got); diff != "" {
		t.Errorf("Spans() mismatch (-want +got):\n%s", diff)
	}
}

func TestSpansDeep(t *testing.T) {
	t.Parallel()

	const depth = 100_000

	src := "deep"
	root := &node{kind: "program", end: 4}

	n := root
	for range depth {
		n = n.add("parenthesized_expression", 0, 4)
	}

	n.add("identifier", 0, 4)

	got := collect(t, newCursor(root), src, config.DefaultKinds())
	if diff := cmp.Diff([]string{"identifier:deep"}, got); diff != "" {
		t.Errorf("Spans() mismatch (-want +got):\n%s", diff)
	}
}

func TestSpansExtractError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		src        string
		start, end uint32
		want       error
	}{
		{"out_of_bounds", "short", 2, 10, ErrInvalidRange},
		{"reversed", "short", 4, 2, ErrInvalidRange},
		{"split_rune", "héllo", 0, 2, ErrInvalidText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := &node{kind: "program", end: uint32(len(tt.src))}
			root.add("identifier", tt.start, tt.end)
			root.add("identifier", 0, 1)

			var errs int

			for _, err := range Spans(newCursor(root), tt.src, config.DefaultKinds()) {
				if err == nil {
					t.Fatal("Expected error before any span")
				}

				errs++

				if !errors.Is(err, tt.want) {
					t.Errorf("Got error %v, want %v", err, tt.want)
				}

				var extractErr *ExtractError
				if !errors.As(err, &extractErr) || extractErr.Kind != config.Identifier {
					t.Errorf("Got error %#v, want *ExtractError for identifier", err)
				}
			}

			if errs != 1 {
				t.Errorf("Got %d errors, want 1", errs)
			}
		})
	}
}

func TestSpansStop(t *testing.T) {
	t.Parallel()

	const src = "one two"

	root := &node{kind: "program", end: uint32(len(src))}
	root.add("identifier", 0, 3)
	root.add("identifier", 4, 7)

	var n int
	for range Spans(newCursor(root), src, config.DefaultKinds()) {
		n++

		break
	}

	if n != 1 {
		t.Errorf("Got %d spans, want 1", n)
	}
}
