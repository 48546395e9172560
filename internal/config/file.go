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
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file name looked up in the working directory.
const DefaultFile = ".typoguard.yaml"

// File is the on-disk configuration of a typoguard run.
type File struct {
	// Dictionaries lists glob patterns of word-list files.
	Dictionaries []string `yaml:"dictionaries"`

	// Language forces a grammar instead of choosing one by file extension.
	Language string `yaml:"language"`

	// Workers limits the number of files analyzed in parallel.
	Workers int `yaml:"workers"`

	// CacheSize is the number of memoized classifications. Zero selects the default,
	// a negative size disables the cache.
	CacheSize int `yaml:"cache-size"`

	// Normalize accepts tokens whose only word is known after lowercasing and
	// removing punctuation.
	Normalize bool `yaml:"normalize"`

	Kinds KindSettings `yaml:"kinds"`
	Redis Redis        `yaml:"redis"`
	S3    S3           `yaml:"s3"`
}

// KindSettings enables or disables checked node kinds. Unset entries keep their default.
type KindSettings struct {
	Comment    *bool `yaml:"comment"`
	String     *bool `yaml:"string"`
	Identifier *bool `yaml:"identifier"`
	Property   *bool `yaml:"property"`
}

// Apply sets the configured kinds in k.
func (s KindSettings) Apply(k *Kinds) {
	for kind, value := range map[Kind]*bool{
		Comment:            s.Comment,
		StringFragment:     s.String,
		Identifier:         s.Identifier,
		PropertyIdentifier: s.Property,
	} {
		if value != nil {
			k.Set(kind, *value)
		}
	}
}

// Redis configures the Redis set holding custom words.
type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

// Enabled reports whether a Redis server is configured.
func (r Redis) Enabled() bool { return r.Addr != "" }

// S3 configures word lists stored in an S3 compatible bucket.
type S3 struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access-key"`
	SecretKey string `yaml:"secret-key"`
	UseSSL    bool   `yaml:"use-ssl"`

	// URL is the location of the word lists, s3://bucket/prefix.
	URL string `yaml:"url"`
}

// Enabled reports whether an S3 location is configured.
func (s S3) Enabled() bool { return s.URL != "" }

// ErrNoFile is returned by [Load] when an explicitly named file does not exist.
var ErrNoFile = errors.New("configuration file not found")

// Load reads the configuration file at path.
func Load(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return File{}, fmt.Errorf("%w: %s", ErrNoFile, path)
		}

		return File{}, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a configuration from r, rejecting unknown keys.
func Decode(r io.Reader) (File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg File
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("can't decode configuration: %w", err)
	}

	return cfg, nil
}

// Environment variables overriding the configuration file.
const (
	EnvRedisAddr     = "TYPOGUARD_REDIS_ADDR"
	EnvRedisPassword = "TYPOGUARD_REDIS_PASSWORD"
	EnvRedisDB       = "TYPOGUARD_REDIS_DB"
	EnvS3Endpoint    = "TYPOGUARD_S3_ENDPOINT"
	EnvS3AccessKey   = "TYPOGUARD_S3_ACCESS_KEY"
	EnvS3SecretKey   = "TYPOGUARD_S3_SECRET_KEY"
	EnvS3UseSSL      = "TYPOGUARD_S3_USE_SSL"
)

// ApplyEnv overrides connection settings from the environment.
func (c *File) ApplyEnv(getenv func(string) string) error {
	setString(&c.Redis.Addr, getenv(EnvRedisAddr))
	setString(&c.Redis.Password, getenv(EnvRedisPassword))
	setString(&c.S3.Endpoint, getenv(EnvS3Endpoint))
	setString(&c.S3.AccessKey, getenv(EnvS3AccessKey))
	setString(&c.S3.SecretKey, getenv(EnvS3SecretKey))

	if v := getenv(EnvRedisDB); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRedisDB, err)
		}

		c.Redis.DB = db
	}

	if v := getenv(EnvS3UseSSL); v != "" {
		ssl, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvS3UseSSL, err)
		}

		c.S3.UseSSL = ssl
	}

	return nil
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
