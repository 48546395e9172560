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

// Package classify decides whether a token is a likely typo.
//
// A token is clean when it is too short to judge or a known word. Otherwise it is split
// into words with [segment.Segment], and each word is judged by the same rule. An unknown
// token that yields a single word is a typo, even when that word is known.
package classify

import (
	"log/slog"
	"unicode/utf8"

	"github.com/hashicorp/golang-lru/v2"

	"fillmore-labs.com/typoguard/internal/segment"
)

// Dictionary is the set of known words.
type Dictionary interface {
	Contains(word string) bool
}

// Classifier judges tokens against a [Dictionary]. It is safe for concurrent use.
type Classifier struct {
	dict      Dictionary
	memo      *lru.Cache[string, verdict]
	normalize bool
}

type verdict struct {
	word string
	typo bool
}

// New creates a [Classifier] for the given dictionary.
func New(dict Dictionary, opts ...Option) (*Classifier, error) {
	o := makeOptions(opts)

	c := &Classifier{dict: dict, normalize: o.normalize}

	if o.cacheSize > 0 {
		memo, err := lru.New[string, verdict](o.cacheSize)
		if err != nil {
			return nil, err
		}

		c.memo = memo
	}

	return c, nil
}

// IsTypo reports whether token contains a likely typo.
func (c *Classifier) IsTypo(token string) bool {
	_, typo := c.FirstTypo(token)

	return typo
}

// FirstTypo returns the first unknown word of token, if any.
// A token that segments into a single word is returned as a whole.
func (c *Classifier) FirstTypo(token string) (string, bool) {
	if c.memo != nil {
		if v, ok := c.memo.Get(token); ok {
			return v.word, v.typo
		}
	}

	word, typo := c.classify(token)

	if c.memo != nil {
		c.memo.Add(token, verdict{word: word, typo: typo})
	}

	return word, typo
}

func (c *Classifier) classify(token string) (string, bool) {
	if utf8.RuneCountInString(token) < segment.MinWordLen {
		return "", false
	}

	if c.dict.Contains(token) {
		return "", false
	}

	parts := segment.Segment(token)
	if len(parts) == 1 {
		if c.normalize && parts[0] != token && c.dict.Contains(parts[0]) {
			return "", false
		}

		return token, true
	}

	for _, part := range parts {
		if word, typo := c.FirstTypo(part); typo {
			return word, true
		}
	}

	return "", false
}

// LogValue implements [slog.LogValuer].
func (c *Classifier) LogValue() slog.Value {
	size := 0
	if c.memo != nil {
		size = c.memo.Len()
	}

	return slog.GroupValue(slog.Int("cached", size))
}
