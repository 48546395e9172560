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

package config

// Kind is a syntax node kind whose text is checked for typos.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// Comment selects comment nodes.
	Comment Kind = 1 << iota // comment

	// StringFragment selects the text content of string literals, without delimiters.
	StringFragment // string_fragment

	// Identifier selects identifiers.
	Identifier // identifier

	// PropertyIdentifier selects property names in member access expressions.
	PropertyIdentifier // property_identifier
)

// Kinds is a set of [Kind] values.
type Kinds = BitMask[Kind]

// DefaultKinds returns the full, fixed allow-list of checked node kinds.
func DefaultKinds() Kinds {
	return NewBitMask(Comment, StringFragment, Identifier, PropertyIdentifier)
}

var kindByName = map[string]Kind{
	Comment.String():            Comment,
	StringFragment.String():     StringFragment,
	Identifier.String():         Identifier,
	PropertyIdentifier.String(): PropertyIdentifier,
}

// ParseKind returns the [Kind] for a syntax node kind name.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindByName[name]

	return k, ok
}

// Description is the short human-readable name used in diagnostics.
func (k Kind) Description() string {
	switch k {
	case Comment:
		return "comment"

	case StringFragment:
		return "string"

	case Identifier:
		return "identifier"

	case PropertyIdentifier:
		return "property"

	default:
		return k.String()
	}
}

// Usage is the help text of the flag toggling this kind.
func (k Kind) Usage() string {
	switch k {
	case Comment:
		return "check comments"

	case StringFragment:
		return "check string literals"

	case Identifier:
		return "check identifiers"

	case PropertyIdentifier:
		return "check property and field selectors"

	default:
		return "check " + k.String()
	}
}
