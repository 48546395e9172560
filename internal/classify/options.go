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

package classify

import "log/slog"

// Option configures a [Classifier].
type Option interface {
	apply(opts *options)
	LogAttr() slog.Attr
}

type options struct {
	cacheSize int
	normalize bool
}

func makeOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt.apply(&o)
	}

	return o
}

// WithCache enables memoization of up to size verdicts. A size of zero disables it.
func WithCache(size int) Option {
	return cacheOption{size: size}
}

type cacheOption struct{ size int }

func (c cacheOption) apply(opts *options) {
	opts.cacheSize = c.size
}

func (c cacheOption) LogAttr() slog.Attr {
	return slog.Int("cache", c.size)
}

// WithNormalization accepts a token whose only word differs from it by case or surrounding
// punctuation when that word is known, like "Hello" or "hello." for "hello".
// Disabled by default, such tokens are typos unless the dictionary contains them verbatim.
func WithNormalization(enabled bool) Option {
	return normalizeOption{enabled: enabled}
}

type normalizeOption struct{ enabled bool }

func (n normalizeOption) apply(opts *options) {
	opts.normalize = n.enabled
}

func (n normalizeOption) LogAttr() slog.Attr {
	return slog.Bool("normalize", n.enabled)
}
