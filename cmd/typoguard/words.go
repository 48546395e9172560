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
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"

	"fillmore-labs.com/typoguard/internal/config"
	"fillmore-labs.com/typoguard/internal/dictionary"
)

var errNoRedis = errors.New("no Redis server configured, use -redis or " + config.EnvRedisAddr)

// wordsCommand manages the custom words stored in Redis.
func wordsCommand(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	var configFile, addr, key string

	fs := flag.NewFlagSet("typoguard words", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: typoguard words [flags] add|remove word... | list")
		fs.PrintDefaults()
	}

	fs.StringVar(&configFile, "config", "", "configuration file")
	fs.StringVar(&addr, "redis", "", "Redis server address")
	fs.StringVar(&key, "key", "", "Redis set name (default "+dictionary.DefaultRedisKey+")")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	command, words := fs.Arg(0), fs.Args()[min(1, fs.NArg()):]

	valid := command == "list" && len(words) == 0 ||
		(command == "add" || command == "remove") && len(words) > 0
	if !valid {
		fs.Usage()

		return exitError
	}

	file, err := loadConfig(configFile)
	if err == nil {
		err = file.ApplyEnv(getenv)
	}

	if err != nil {
		fmt.Fprintln(stderr, err)

		return exitError
	}

	if addr != "" {
		file.Redis.Addr = addr
	}

	if key != "" {
		file.Redis.Key = key
	}

	if !file.Redis.Enabled() {
		fmt.Fprintln(stderr, errNoRedis)

		return exitError
	}

	client := redisClient(file.Redis)
	defer client.Close()

	set := dictionary.NewRedisSet(client, file.Redis.Key)

	switch command {
	case "add":
		err = set.Add(ctx, words...)

	case "remove":
		err = set.Remove(ctx, words...)

	case "list":
		err = listWords(ctx, set, stdout)
	}

	if err != nil {
		fmt.Fprintf(stderr, "words %s: %v\n", command, err)

		return exitError
	}

	return exitOK
}

func listWords(ctx context.Context, set *dictionary.RedisSet, w io.Writer) error {
	words, err := set.All(ctx)
	if err != nil {
		return err
	}

	slices.Sort(words)

	for _, word := range words {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}

	return nil
}
