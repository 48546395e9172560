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

package gclplugin

import typoguard "fillmore-labs.com/typoguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Dictionaries lists word-list file patterns.
	Dictionaries []string `json:"dictionaries,omitzero"`
	// Words lists additional known words.
	Words []string `json:"words,omitzero"`
	// Comments enables checking comments.
	Comments *bool `json:"comments,omitzero"`
	// Strings enables checking string literals.
	Strings *bool `json:"strings,omitzero"`
	// Identifiers enables checking identifiers.
	Identifiers *bool `json:"identifiers,omitzero"`
	// Properties enables checking selected fields and methods.
	Properties *bool `json:"properties,omitzero"`
	// Normalize accepts known words differing only by case or punctuation.
	Normalize *bool `json:"normalize,omitzero"`
	// CacheSize sets the number of memoized classifications.
	CacheSize *int `json:"cache-size,omitzero"`
}

// Options converts [Settings] into a list of [typoguard.Option] for the typoguard analyzer.
// Settings are applied only when explicitly set.
func (s Settings) Options() []typoguard.Option {
	var opts []typoguard.Option

	if len(s.Dictionaries) > 0 {
		opts = append(opts, typoguard.WithDictionaryFiles(s.Dictionaries...))
	}

	if len(s.Words) > 0 {
		opts = append(opts, typoguard.WithDictionary(s.Words...))
	}

	opts = appendOption(opts, s.Comments, typoguard.WithComments)
	opts = appendOption(opts, s.Strings, typoguard.WithStrings)
	opts = appendOption(opts, s.Identifiers, typoguard.WithIdentifiers)
	opts = appendOption(opts, s.Properties, typoguard.WithProperties)
	opts = appendOption(opts, s.Normalize, typoguard.WithNormalization)
	opts = appendOption(opts, s.CacheSize, typoguard.WithCacheSize)

	return opts
}

func appendOption[T any](opts []typoguard.Option, value *T, constructor func(T) typoguard.Option) []typoguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
