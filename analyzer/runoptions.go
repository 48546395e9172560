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
	"context"
	"log/slog"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/typoguard/internal/classify"
	"fillmore-labs.com/typoguard/internal/dictionary"
	"fillmore-labs.com/typoguard/internal/run"
)

// defaultCacheSize is the default number of memoized classifications.
const defaultCacheSize = 16_384

// runOptions represent configuration runOptions for the typoguard analyzer.
type runOptions struct {
	// run holds the checked kinds and generated file handling.
	run *run.Options

	// dictionaries are glob patterns of word-list files.
	dictionaries []string

	// words are additional known words.
	words []string

	// cacheSize is the number of memoized classifications.
	cacheSize int

	// normalize accepts single words known after normalization.
	normalize bool

	// classifier is built on first use, after flags are parsed.
	classifier func() (*classify.Classifier, error)
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	r.classifier = sync.OnceValues(r.buildClassifier)

	return r
}

// defaultRunOptions initializes and returns a new Options instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		run:       run.DefaultOptions(),
		cacheSize: defaultCacheSize,
	}
}

// analyzer returns a typoguard *[analysis.Analyzer] instance.
func (r *runOptions) analyzer() *analysis.Analyzer {
	a := &analysis.Analyzer{
		Name:     name,
		Doc:      doc,
		URL:      url,
		Run:      r.runPass,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	return a
}

func (r *runOptions) buildClassifier() (*classify.Classifier, error) {
	var sources []dictionary.Source
	if len(r.words) > 0 {
		sources = append(sources, words(r.words))
	}

	if len(r.dictionaries) > 0 {
		sources = append(sources, dictionary.Files(r.dictionaries))
	}

	dict, err := dictionary.Load(context.Background(), nil, sources...)
	if err != nil {
		return nil, err
	}

	return classify.New(dict, classify.WithCache(r.cacheSize), classify.WithNormalization(r.normalize))
}

// words is a [dictionary.Source] of inline words.
type words []string

func (w words) Load(_ context.Context, b *dictionary.Builder) error {
	for _, word := range w {
		b.Add(word)
	}

	return nil
}

func (w words) LogAttr() slog.Attr {
	return slog.Int("words", len(w))
}
