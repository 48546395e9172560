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

package segment_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/typoguard/internal/segment"
)

func TestSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		want  []string
	}{
		{"snake", "hello_world_test", []string{"hello", "world", "test"}},
		{"camel", "camelCaseTest", []string{"camel", "case", "test"}},
		{"digits", "hello2world", []string{"hello", "world"}},
		{"sentence", "Hello, world!", []string{"hello", "world"}},
		{"path", "/test/bin/bath", []string{"test", "bin", "bath"}},
		{"pascal_digits", "PascalCase123", []string{"pascal", "case"}},
		{"acronym_first", "XMLParser", []string{"xml", "parser"}},
		{"acronym_last", "parseXML", []string{"parse", "xml"}},
		{"acronym_digits", "HTTPServer2Config", []string{"http", "server", "config"}},
		{"interface_prefix", "IInterfaceCat", []string{"interface", "cat"}},
		{"signature", "function parseJson(text: string)", []string{"function", "parse", "json", "text", "string"}},
		{"short_words", "fn isTheCatInTheDog", []string{"the", "cat", "the", "dog"}},
		{"screaming_snake", "MAX_BUFFER_SIZE", []string{"max", "buffer", "size"}},
		{"accents", "café_au_lait", []string{"café", "lait"}},
		{"contraction", "don't", []string{"don't"}},
		{"comment", "// greet the user", []string{"greet", "the", "user"}},
		{"unsegmentable", "xyzqqqw", []string{"xyzqqqw"}},
		{"too_short", "ab", []string{"ab"}},
		{"only_digits", "123", []string{"123"}},
		{"short_parts", "a_b", []string{"a_b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Segment(tt.token)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Segment(%q) mismatch (-want +got):\n%s", tt.token, diff)
			}
		})
	}
}

func TestWordsFiltered(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"", "ab", "a_b", "123", "__", "   ", "x1y2z3"} {
		if got := Words(token); len(got) != 0 {
			t.Errorf("Words(%q) = %q, want none", token, got)
		}
	}
}

func TestSegmentTotal(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"a", "ab", "!!", "42", "__init__", "x", "é", "Hello", "getHTTP2Response"} {
		if got := Segment(token); len(got) == 0 {
			t.Errorf("Segment(%q) is empty", token)
		}
	}
}

func TestSegmentIdempotent(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"getUserName", "HTTPServer", "snake_case_name", "Grüße aus Köln"} {
		for _, word := range Segment(token) {
			if got := Segment(word); len(got) != 1 || got[0] != word {
				t.Errorf("Segment(%q) = %q, want [%q]", word, got, word)
			}
		}
	}
}
