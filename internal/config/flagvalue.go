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

import (
	"flag"
	"strconv"
	"strings"
)

// FlagValue is a boolean [flag.Value] toggling a single flag of a [BitMask].
type FlagValue[T flagBits] struct {
	mask *BitMask[T]
	flag T
}

// NewFlagValue returns a [FlagValue] bound to flag in mask.
func NewFlagValue[T flagBits](mask *BitMask[T], flag T) FlagValue[T] {
	return FlagValue[T]{mask: mask, flag: flag}
}

// Set implements [flag.Value].
func (f FlagValue[_]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.mask.Set(f.flag, b)

	return nil
}

// String implements [flag.Value].
func (f FlagValue[_]) String() string {
	if f.mask == nil {
		return "false"
	}

	return strconv.FormatBool(f.mask.Enabled(f.flag))
}

// Get implements [flag.Getter].
func (f FlagValue[_]) Get() any {
	if f.mask == nil {
		return false
	}

	return f.mask.Enabled(f.flag)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f FlagValue[_]) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

// RegisterKindFlags binds one boolean flag per checked node kind to kinds.
func RegisterKindFlags(flags *flag.FlagSet, kinds *Kinds) {
	for kind := range DefaultKinds().All() {
		flags.Var(NewFlagValue(kinds, kind), kind.Description(), kind.Usage())
	}
}

// ListValue is a [flag.Value] collecting comma-separated values over repeated flags.
type ListValue struct {
	list *[]string
}

// NewListValue returns a [ListValue] appending to list.
func NewListValue(list *[]string) ListValue {
	return ListValue{list: list}
}

// Set implements [flag.Value].
func (l ListValue) Set(s string) error {
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			*l.list = append(*l.list, item)
		}
	}

	return nil
}

// String implements [flag.Value].
func (l ListValue) String() string {
	if l.list == nil {
		return ""
	}

	return strings.Join(*l.list, ",")
}

// Get implements [flag.Getter].
func (l ListValue) Get() any {
	if l.list == nil {
		return []string(nil)
	}

	return *l.list
}
