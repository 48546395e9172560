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

package syntax

import (
	"errors"
	"fmt"

	"fillmore-labs.com/typoguard/internal/config"
)

var (
	// ErrInvalidRange is returned when a node's byte range lies outside the source text.
	ErrInvalidRange = errors.New("byte range out of bounds")

	// ErrInvalidText is returned when a node's byte range does not hold valid UTF-8 text.
	ErrInvalidText = errors.New("invalid UTF-8 text")
)

// ExtractError is returned when the text of a syntax node can not be extracted.
type ExtractError struct {
	Kind       config.Kind
	Start, End uint32
	Err        error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("can't extract %s at [%d:%d]: %v", e.Kind, e.Start, e.End, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}
