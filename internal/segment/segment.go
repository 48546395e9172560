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

// Package segment decomposes source code tokens into natural-language words.
//
// A token passes through a fixed pipeline of splitting stages, each applied to every
// fragment the previous stage produced:
//
//  1. white space, punctuation and symbols (except '_' and '\'')
//  2. ASCII digit runs
//  3. Unicode word boundaries (UAX #29)
//  4. snake_case underscores
//  5. camelCase and PascalCase transitions, keeping acronyms together
//
// The surviving fragments are lowercased and fragments shorter than [MinWordLen] runes are
// dropped.
package segment

import (
	"strings"
	"unicode/utf8"
)

// MinWordLen is the minimum length in runes of a word. Shorter tokens are never judged.
const MinWordLen = 3

// stage splits s and appends the fragments to dst.
type stage func(dst []string, s string) []string

var pipeline = [...]stage{
	splitBoundaries,
	splitDigits,
	splitWords,
	splitSnake,
	splitCamel,
}

// Words returns the lowercase words of token that are at least [MinWordLen] runes long,
// in order of appearance. The result may be empty.
func Words(token string) []string {
	parts := []string{token}

	for _, split := range pipeline {
		next := make([]string, 0, len(parts)+1)
		for _, part := range parts {
			next = split(next, part)
		}

		parts = next
	}

	words := parts[:0]
	for _, part := range parts {
		if utf8.RuneCountInString(part) < MinWordLen {
			continue
		}

		words = append(words, strings.ToLower(part))
	}

	return words
}

// Segment returns the words of token like [Words], but is never empty:
// When no word survives the pipeline the token itself is returned.
func Segment(token string) []string {
	if words := Words(token); len(words) > 0 {
		return words
	}

	return []string{token}
}
