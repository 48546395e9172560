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

// Package syntax selects the text spans of a syntax tree that are checked for typos.
//
// Trees are accessed through a [Cursor], so any parser producing node kinds, byte ranges
// and child, sibling and parent navigation can be used. The walk is iterative and uses only
// the cursor, supporting trees of any depth.
package syntax

import (
	"iter"
	"unicode/utf8"

	"fillmore-labs.com/typoguard/internal/config"
)

// Cursor navigates a syntax tree. Movement methods report whether the cursor moved.
type Cursor interface {
	// Kind returns the kind of the current node.
	Kind() string

	// Range returns the byte offsets of the current node in the source text.
	Range() (start, end uint32)

	GotoFirstChild() bool
	GotoNextSibling() bool
	GotoParent() bool
}

// Span is the source text of a syntax node selected for checking.
type Span struct {
	Text       string
	Kind       config.Kind
	Start, End uint32
}

// Spans walks the tree below c in depth-first pre-order and yields the spans of all nodes
// with a kind in kinds. The walk stops after the first [ExtractError].
//
// The returned sequence moves c and is single-use.
func Spans(c Cursor, src string, kinds config.Kinds) iter.Seq2[Span, error] {
	return func(yield func(Span, error) bool) {
		for {
			if kind, ok := config.ParseKind(c.Kind()); ok && kinds.Enabled(kind) {
				start, end := c.Range()

				span, err := Extract(src, kind, start, end)
				if !yield(span, err) || err != nil {
					return
				}
			}

			if c.GotoFirstChild() {
				continue
			}

			for !c.GotoNextSibling() {
				if !c.GotoParent() {
					return
				}
			}
		}
	}
}

// Extract returns the span of src between start and end.
func Extract(src string, kind config.Kind, start, end uint32) (Span, error) {
	if start > end || uint64(end) > uint64(len(src)) {
		return Span{}, &ExtractError{Kind: kind, Start: start, End: end, Err: ErrInvalidRange}
	}

	text := src[start:end]
	if !utf8.ValidString(text) {
		return Span{}, &ExtractError{Kind: kind, Start: start, End: end, Err: ErrInvalidText}
	}

	return Span{Text: text, Kind: kind, Start: start, End: end}, nil
}
