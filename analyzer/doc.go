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

// Package analyzer implements the typoguard static analysis pass.
//
// # Overview
//
// TypoGuard splits identifiers, selected fields and methods, comments and the text of
// string literals into words and reports words missing from a dictionary.
//
// Compound names are split at snake_case underscores, camelCase transitions, digits and
// punctuation. Acronyms stay together, so parseHTTPRequest is checked as "parse",
// "http" and "request". Words shorter than three letters are never reported.
//
// # Example
//
//	// Recieve reads the next message.
//	func Recieve() (msg string)
//
// reports
//
//	possible typo "recieve" in comment
//	possible typo "recieve" in identifier
//
// # Suppressing Diagnostics
//
// A trailing //nolint:typoguard comment suppresses diagnostics on its line, a
// //nolint:typoguard comment in the package documentation suppresses the whole file.
// Generated files are skipped unless -generated is set.
package analyzer
