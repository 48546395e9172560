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
	"golang.org/x/tools/go/analysis"
)

// Public API constants for the typoguard analyzer.
const (
	name = "typoguard"
	doc  = `typoguard reports likely misspellings in identifiers, comments and string literals`
	url  = "https://pkg.go.dev/fillmore-labs.com/typoguard"
)

// New creates a new instance of the typoguard analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools. For command-line use, the
// pre-configured [Analyzer] variable is typically sufficient.
func New(opts ...Option) *analysis.Analyzer {
	r := makeRunOptions(opts)

	a := r.analyzer()

	r.registerFlags(&a.Flags)

	return a
}

// Analyzer is a pre-configured *[analysis.Analyzer] for detecting likely typos.
// A dictionary must be configured with the -dict flag.
var Analyzer = New()
