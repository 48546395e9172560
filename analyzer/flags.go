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
	"flag"

	"fillmore-labs.com/typoguard/internal/config"
)

// registerFlags binds the [runOptions] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func (r *runOptions) registerFlags(flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(config.NewListValue(&r.dictionaries), "dict", "comma-separated word-list file patterns")
	flags.BoolVar(&r.run.Generated, "generated", r.run.Generated, "check generated files")
	flags.IntVar(&r.cacheSize, "cache", r.cacheSize, "number of memoized classifications, 0 disables the cache")
	flags.BoolVar(&r.normalize, "normalize", r.normalize, "accept known words differing only by case or punctuation")
	config.RegisterKindFlags(flags, &r.run.Kinds)
}
