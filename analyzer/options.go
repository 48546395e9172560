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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/typoguard/internal/config"
)

// Option configures specific behavior of a [New] typoguard analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithDictionary is an [Option] adding known words.
func WithDictionary(words ...string) Option { return wordsOption{words: words} }

type wordsOption struct{ words []string }

func (o wordsOption) apply(r *runOptions) {
	r.words = append(r.words, o.words...)
}

func (o wordsOption) LogAttr() slog.Attr {
	return slog.Int("words", len(o.words))
}

// WithDictionaryFiles is an [Option] adding word-list files, one word per line.
// Patterns may contain `**` to match directories recursively.
func WithDictionaryFiles(patterns ...string) Option { return filesOption{patterns: patterns} }

type filesOption struct{ patterns []string }

func (o filesOption) apply(r *runOptions) {
	r.dictionaries = append(r.dictionaries, o.patterns...)
}

func (o filesOption) LogAttr() slog.Attr {
	return slog.Any("dictionaries", o.patterns)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.run.Generated = o.generated
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithCacheSize is an [Option] to configure the number of memoized classifications.
func WithCacheSize(size int) Option { return cacheSizeOption{size: size} }

type cacheSizeOption struct{ size int }

func (o cacheSizeOption) apply(r *runOptions) {
	r.cacheSize = o.size
}

func (o cacheSizeOption) LogAttr() slog.Attr {
	return slog.Int("cache", o.size)
}

// WithNormalization is an [Option] to accept tokens whose only word is known
// after lowercasing and removing punctuation.
func WithNormalization(normalize bool) Option { return normalizeOption{normalize: normalize} }

type normalizeOption struct{ normalize bool }

func (o normalizeOption) apply(r *runOptions) {
	r.normalize = o.normalize
}

func (o normalizeOption) LogAttr() slog.Attr {
	return slog.Bool("normalize", o.normalize)
}

// WithComments is an [Option] to configure whether comments are checked.
func WithComments(comments bool) Option { return kindOption{kind: config.Comment, enabled: comments} }

// WithStrings is an [Option] to configure whether string literals are checked.
func WithStrings(strings bool) Option {
	return kindOption{kind: config.StringFragment, enabled: strings}
}

// WithIdentifiers is an [Option] to configure whether identifiers are checked.
func WithIdentifiers(identifiers bool) Option {
	return kindOption{kind: config.Identifier, enabled: identifiers}
}

// WithProperties is an [Option] to configure whether selected fields and methods are checked.
func WithProperties(properties bool) Option {
	return kindOption{kind: config.PropertyIdentifier, enabled: properties}
}

type kindOption struct {
	kind    config.Kind
	enabled bool
}

func (o kindOption) apply(r *runOptions) {
	r.run.Kinds.Set(o.kind, o.enabled)
}

func (o kindOption) LogAttr() slog.Attr {
	return slog.Bool(o.kind.Description(), o.enabled)
}
