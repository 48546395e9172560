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

// Typoguard reports likely misspellings in TypeScript, JavaScript and Go sources.
//
// Usage:
//
//	typoguard [flags] pattern...
//	typoguard words add|remove|list [word...]
//
// Patterns are files, directories or globs, where `**` matches any number of directories.
// Word lists, custom Redis words and S3 word lists are configured with flags, a
// .typoguard.yaml file in the working directory, or TYPOGUARD_* environment variables,
// which may also be set in a .env file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"

	"github.com/joho/godotenv"

	"fillmore-labs.com/typoguard/internal/classify"
	"fillmore-labs.com/typoguard/internal/dictionary"
	"fillmore-labs.com/typoguard/internal/run"
)

// Exit codes.
const (
	exitOK    = 0
	exitTypos = 1
	exitError = 2
)

func main() {
	_ = godotenv.Load() // .env is optional

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr, os.Getenv)

	stop()
	os.Exit(code)
}

// execute runs the command line args and returns the exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	if len(args) > 0 && args[0] == "words" {
		return wordsCommand(ctx, args[1:], stdout, stderr, getenv)
	}

	s, err := parseSettings(args, stderr, getenv)
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, err)
		}

		return exitError
	}

	logger := s.logger(stderr)

	paths, err := expandPatterns(s.patterns)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "Can't find files", slog.Any("error", err))

		return exitError
	}

	cl, err := s.classifier(ctx, logger)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "Can't load dictionary", slog.Any("error", err))

		return exitError
	}

	opts := run.DefaultOptions()
	opts.Kinds = s.kinds
	opts.Generated = s.generated
	opts.Language = s.language
	opts.Logger = logger

	if s.file.Workers > 0 {
		opts.Workers = s.file.Workers
	}

	if s.list {
		var mu sync.Mutex

		opts.OnFinding = func(f run.Finding) {
			mu.Lock()
			defer mu.Unlock()

			fmt.Fprintf(stdout, "%s:%d:%d: %s %q\n", f.Path, f.Line, f.Column, f.Kind, f.Text)
		}
	}

	summary := opts.Run(ctx, cl, paths)

	logger.LogAttrs(ctx, slog.LevelDebug, "Run finished", slog.Any("summary", summary), slog.Any("classifier", cl))

	if err := summary.Print(stdout); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "Can't print summary", slog.Any("error", err))

		return exitError
	}

	if summary.Found > 0 {
		return exitTypos
	}

	return exitOK
}

// classifier loads the dictionary from all configured sources.
func (s *settings) classifier(ctx context.Context, logger *slog.Logger) (*classify.Classifier, error) {
	sources, closeSources, err := s.sources()
	if err != nil {
		return nil, err
	}
	defer closeSources()

	dict, err := dictionary.Load(ctx, logger, sources...)
	if err != nil {
		return nil, err
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Dictionary loaded", slog.Any("dictionary", dict))

	return classify.New(dict, classify.WithCache(s.file.CacheSize), classify.WithNormalization(s.file.Normalize))
}
