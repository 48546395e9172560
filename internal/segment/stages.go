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

package segment

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

func splitBoundaries(dst []string, s string) []string {
	return appendFields(dst, s, isBoundary)
}

func isBoundary(r rune) bool {
	switch r {
	case '_', '\'':
		return false

	default:
		return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
	}
}

func splitDigits(dst []string, s string) []string {
	return appendFields(dst, s, isDigit)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func splitSnake(dst []string, s string) []string {
	return appendFields(dst, s, func(r rune) bool { return r == '_' })
}

// splitWords splits s at Unicode word boundaries, dropping segments without letters or digits.
func splitWords(dst []string, s string) []string {
	state := -1
	for s != "" {
		var word string

		word, s, state = uniseg.FirstWordInString(s, state)
		if strings.IndexFunc(word, isWordRune) >= 0 {
			dst = append(dst, word)
		}
	}

	return dst
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// splitCamel starts a new fragment at each uppercase letter following a non-uppercase rune,
// and at the last uppercase letter of an acronym followed by a lowercase letter.
//
//	camelCaseTest → camel Case Test
//	XMLParser     → XML Parser
//	IInterface    → I Interface
func splitCamel(dst []string, s string) []string {
	if s == "" {
		return dst
	}

	start := 0
	prevUpper := false

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])

		upper := unicode.IsUpper(r)
		if upper && i > start && (!prevUpper || nextIsLower(s[i+size:])) {
			dst = append(dst, s[start:i])
			start = i
		}

		prevUpper = upper
		i += size
	}

	return append(dst, s[start:])
}

func nextIsLower(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)

	return unicode.IsLower(r)
}

func appendFields(dst []string, s string, sep func(rune) bool) []string {
	for field := range strings.FieldsFuncSeq(s, sep) {
		dst = append(dst, field)
	}

	return dst
}
