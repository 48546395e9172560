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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/redis/go-redis/v9"

	"fillmore-labs.com/typoguard/internal/config"
	"fillmore-labs.com/typoguard/internal/dictionary"
	"fillmore-labs.com/typoguard/internal/syntax/treesitter"
)

var errUsage = errors.New("usage error")

// defaultCacheSize is the default number of memoized classifications.
const defaultCacheSize = 65_536

// settings is the resolved configuration of a check run.
type settings struct {
	file      config.File
	kinds     config.Kinds
	language  *treesitter.Language
	generated bool
	list      bool
	verbose   bool
	patterns  []string
}

// parseSettings merges, in increasing precedence, defaults, the configuration file,
// the environment and command line flags.
func parseSettings(args []string, stderr io.Writer, getenv func(string) string) (*settings, error) {
	var (
		configFile string
		dicts      []string
		lang       string
		workers    int
		cacheSize  int
		normalize  bool
	)

	s := &settings{kinds: config.DefaultKinds()}
	flagKinds := s.kinds

	fs := flag.NewFlagSet("typoguard", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: typoguard [flags] pattern...\n       typoguard words add|remove|list [word...]")
		fs.PrintDefaults()
	}

	fs.StringVar(&configFile, "config", "", "configuration file (default "+config.DefaultFile+" if present)")
	fs.Var(config.NewListValue(&dicts), "dict", "comma-separated word-list file patterns")
	fs.StringVar(&lang, "lang", "", "force a grammar: typescript, tsx or javascript")
	fs.IntVar(&workers, "workers", 0, "number of files checked in parallel (default GOMAXPROCS)")
	fs.IntVar(&cacheSize, "cache", defaultCacheSize, "number of memoized classifications, 0 disables the cache")
	fs.BoolVar(&normalize, "normalize", false, "accept known words differing only by case or punctuation")
	fs.BoolVar(&s.generated, "generated", false, "check generated Go files")
	fs.BoolVar(&s.list, "list", false, "print every span with a typo")
	fs.BoolVar(&s.verbose, "v", false, "verbose logging")
	config.RegisterKindFlags(fs, &flagKinds)

	if err := fs.Parse(args); err != nil {
		return nil, errUsage
	}

	if fs.NArg() == 0 {
		fs.Usage()

		return nil, errUsage
	}

	s.patterns = fs.Args()

	file, err := loadConfig(configFile)
	if err != nil {
		return nil, err
	}

	if err := file.ApplyEnv(getenv); err != nil {
		return nil, err
	}

	file.Kinds.Apply(&s.kinds)

	if file.CacheSize == 0 {
		file.CacheSize = defaultCacheSize
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dict":
			file.Dictionaries = append(file.Dictionaries, dicts...)

		case "lang":
			file.Language = lang

		case "workers":
			file.Workers = workers

		case "cache":
			file.CacheSize = cacheSize

		case "normalize":
			file.Normalize = normalize

		default:
			if kind, ok := kindFlag(f.Name); ok {
				s.kinds.Set(kind, flagKinds.Enabled(kind))
			}
		}
	})

	if file.Language != "" {
		if s.language, err = treesitter.LanguageByName(file.Language); err != nil {
			return nil, err
		}
	}

	s.file = file

	return s, nil
}

func kindFlag(name string) (config.Kind, bool) {
	for kind := range config.DefaultKinds().All() {
		if kind.Description() == name {
			return kind, true
		}
	}

	return 0, false
}

// loadConfig reads the named configuration file, or the default file when present.
func loadConfig(path string) (config.File, error) {
	if path != "" {
		return config.Load(path)
	}

	file, err := config.Load(config.DefaultFile)
	if errors.Is(err, config.ErrNoFile) {
		return config.File{}, nil
	}

	return file, err
}

func (s *settings) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if s.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// sources returns the configured dictionary sources and a function releasing their connections.
func (s *settings) sources() ([]dictionary.Source, func(), error) {
	var (
		sources []dictionary.Source
		closers []io.Closer
	)

	release := func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}

	if len(s.file.Dictionaries) > 0 {
		sources = append(sources, dictionary.Files(s.file.Dictionaries))
	}

	if s.file.Redis.Enabled() {
		client := redisClient(s.file.Redis)
		closers = append(closers, client)
		sources = append(sources, dictionary.NewRedisSet(client, s.file.Redis.Key))
	}

	if s3 := s.file.S3; s3.Enabled() {
		bucket, prefix, err := dictionary.ParseS3URL(s3.URL)
		if err != nil {
			release()

			return nil, nil, err
		}

		client, err := dictionary.NewS3Client(s3.Endpoint, s3.AccessKey, s3.SecretKey, s3.UseSSL)
		if err != nil {
			release()

			return nil, nil, err
		}

		sources = append(sources, dictionary.NewS3Objects(client, bucket, prefix))
	}

	return sources, release, nil
}

// setCloser is a Redis connection holding custom words.
type setCloser interface {
	dictionary.SetClient
	io.Closer
}

// redisClient connects to Redis. It is replaced in tests.
var redisClient = func(cfg config.Redis) setCloser {
	return redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
}

// expandPatterns resolves files, directories and globs to a sorted list of unique files.
// Directories include all files with a supported extension below them.
func expandPatterns(patterns []string) ([]string, error) {
	var paths []string

	for _, pattern := range patterns {
		matches, err := doublestar.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				return nil, err
			}

			if !info.IsDir() {
				paths = append(paths, match)

				continue
			}

			sources, err := doublestar.Glob(filepath.Join(match, "**", "*"))
			if err != nil {
				return nil, err
			}

			for _, source := range sources {
				if supported(source) {
					paths = append(paths, source)
				}
			}
		}
	}

	slices.Sort(paths)

	return slices.Compact(paths), nil
}

func supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	return ext == ".go" || slices.Contains(treesitter.Extensions(), ext)
}
