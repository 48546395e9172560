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

package treesitter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/typoguard/internal/config"
	"fillmore-labs.com/typoguard/internal/syntax"

	. "fillmore-labs.com/typoguard/internal/syntax/treesitter"
)

var _ syntax.Cursor = (*Cursor)(nil)

func spans(tb testing.TB, lang *Language, src string) []string {
	tb.Helper()

	tree, err := Parse(context.Background(), lang, []byte(src))
	if err != nil {
		tb.Fatalf("Parse failed: %v", err)
	}
	defer tree.Close()

	c := tree.Walk()
	defer c.Close()

	var got []string

	for span, err := range syntax.Spans(c, src, config.DefaultKinds()) {
		if err != nil {
			tb.Fatalf("Unexpected error: %v", err)
		}

		got = append(got, span.Kind.String()+":"+span.Text)
	}

	return got
}

func TestTypeScript(t *testing.T) {
	t.Parallel()

	const src = `// greet the user
const userName = "hello world";
console.log(userName.length);
`

	got := spans(t, TypeScript, src)
	want := []string{
		"comment:// greet the user",
		"identifier:userName",
		"string_fragment:hello world",
		"identifier:console",
		"property_identifier:log",
		"identifier:userName",
		"property_identifier:length",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Spans() mismatch (-want +got):\n%s", diff)
	}
}

func TestJavaScript(t *testing.T) {
	t.Parallel()

	const src = "let total = 0;\ntotal.value = 'done';\n"

	got := spans(t, JavaScript, src)
	want := []string{
		"identifier:total",
		"identifier:total",
		"property_identifier:value",
		"string_fragment:done",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Spans() mismatch (-want +got):\n%s", diff)
	}
}

func TestHasError(t *testing.T) {
	t.Parallel()

	tree, err := Parse(context.Background(), TypeScript, []byte("const = ;"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	defer tree.Close()

	if !tree.HasError() {
		t.Error("Expected syntax error")
	}
}

func TestLanguageForPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want *Language
	}{
		{"src/index.ts", TypeScript},
		{"src/App.TSX", TSX},
		{"lib/util.mjs", JavaScript},
		{"component.jsx", JavaScript},
		{"types.d.cts", TypeScript},
	}

	for _, tt := range tests {
		got, err := LanguageForPath(tt.path)
		if err != nil {
			t.Errorf("LanguageForPath(%q) failed: %v", tt.path, err)

			continue
		}

		if got != tt.want {
			t.Errorf("LanguageForPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}

	if _, err := LanguageForPath("main.go"); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("LanguageForPath(main.go) error = %v, want %v", err, ErrUnknownLanguage)
	}
}

func TestLanguageByName(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]*Language{"typescript": TypeScript, "TS": TypeScript, "tsx": TSX, "js": JavaScript} {
		if got, err := LanguageByName(name); err != nil || got != want {
			t.Errorf("LanguageByName(%q) = %v, %v, want %v", name, got, err, want)
		}
	}

	if _, err := LanguageByName("rust"); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("LanguageByName(rust) error = %v, want %v", err, ErrUnknownLanguage)
	}
}
