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

package goast_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/typoguard/internal/config"
	"fillmore-labs.com/typoguard/internal/syntax"
	"fillmore-labs.com/typoguard/internal/testsource"

	. "fillmore-labs.com/typoguard/internal/syntax/goast"
)

var _ syntax.Cursor = (*Cursor)(nil)

func collect(tb testing.TB, s testsource.Source, kinds config.Kinds) []string {
	tb.Helper()

	var got []string

	for span, err := range Spans(s.File, s.AST, s.Cursor, s.Text, kinds) {
		if err != nil {
			tb.Fatalf("Unexpected error: %v", err)
		}

		got = append(got, span.Kind.String()+":"+span.Text)
	}

	return got
}

func TestSpans(t *testing.T) {
	t.Parallel()

	const src = `package sample

import "strings"

//go:generate echo skipped

// greet the user
func greet(userName string) string {
	return strings.ToUpper("hello\tworld" + userName) /* done */
}

type record struct {
	Value int ` + "`json:\"value\"`" + `
}
`

	s := testsource.Parse(t, src)

	got := collect(t, s, config.DefaultKinds())
	want := []string{
		"identifier:sample",
		"identifier:greet",
		"identifier:userName",
		"identifier:string",
		"identifier:string",
		"identifier:strings",
		"property_identifier:ToUpper",
		"string_fragment:hello",
		"string_fragment:world",
		"identifier:userName",
		"identifier:record",
		"identifier:Value",
		"identifier:int",
		"comment:// greet the user",
		"comment:/* done */",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Spans() mismatch (-want +got):\n%s", diff)
	}
}

func TestSpansBody(t *testing.T) {
	t.Parallel()

	s := testsource.ParseBody(t, "x := `raw text`\n_ = x.field // trailing")

	kinds := config.DefaultKinds()
	kinds.Disable(config.Comment)

	got := collect(t, s, kinds)
	want := []string{
		"identifier:x",
		"string_fragment:raw text",
		"identifier:_",
		"identifier:x",
		"property_identifier:field",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Spans() mismatch (-want +got):\n%s", diff)
	}
}

func TestStringFragments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lit  string
		want []string
	}{
		{"plain", `"hello"`, []string{"hello"}},
		{"empty", `""`, nil},
		{"raw", "`a\\nb`", []string{`a\nb`}},
		{"escapes", `"one\ntwo\x41three\u00e9four\101five"`, []string{"one", "two", "three", "four", "five"}},
		{"leading", `"\"quoted\""`, []string{"quoted"}},
		{"only_escape", `"\n"`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := testsource.ParseBody(t, "_ = "+tt.lit)

			var got []string

			for span, err := range Spans(s.File, s.AST, s.Cursor, s.Text, config.NewBitMask(config.StringFragment)) {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}

				got = append(got, span.Text)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Fragments of %s mismatch (-want +got):\n%s", tt.lit, diff)
			}
		})
	}
}

func TestIsDirective(t *testing.T) {
	t.Parallel()

	tests := []struct {
		comment string
		want    bool
	}{
		{"//go:generate stringer", true},
		{"//nolint:typoguard", true},
		{"//line foo.go:1", true},
		{"// go is great", false},
		{"/* block */", false},
	}

	for _, tt := range tests {
		if got := IsDirective(tt.comment); got != tt.want {
			t.Errorf("IsDirective(%q) = %v, want %v", tt.comment, got, tt.want)
		}
	}
}
