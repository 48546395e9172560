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

package config_test

import (
	"slices"
	"strings"
	"testing"

	. "fillmore-labs.com/typoguard/internal/config"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want Kind
		ok   bool
	}{
		{"comment", Comment, true},
		{"string_fragment", StringFragment, true},
		{"identifier", Identifier, true},
		{"property_identifier", PropertyIdentifier, true},
		{"string", 0, false},
		{"type_identifier", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseKind(tt.name)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseKind(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestBitMaskAll(t *testing.T) {
	t.Parallel()

	kinds := DefaultKinds()
	kinds.Disable(StringFragment)

	got := slices.Collect(kinds.All())
	want := []Kind{Comment, Identifier, PropertyIdentifier}

	if !slices.Equal(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}

	var none Kinds
	if !none.Empty() {
		t.Error("Zero bitmask is not empty")
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	const src = `
dictionaries:
  - words/*.txt
language: tsx
workers: 4
cache-size: 128
kinds:
  comment: false
redis:
  addr: localhost:6379
  key: custom
`

	cfg, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if got, want := cfg.Dictionaries, []string{"words/*.txt"}; !slices.Equal(got, want) {
		t.Errorf("Dictionaries = %v, want %v", got, want)
	}

	if cfg.Language != "tsx" || cfg.Workers != 4 || cfg.CacheSize != 128 {
		t.Errorf("Got language %q, workers %d, cache size %d", cfg.Language, cfg.Workers, cfg.CacheSize)
	}

	if !cfg.Redis.Enabled() || cfg.Redis.Key != "custom" {
		t.Errorf("Redis = %+v", cfg.Redis)
	}

	if cfg.S3.Enabled() {
		t.Error("S3 enabled without URL")
	}

	kinds := DefaultKinds()
	cfg.Kinds.Apply(&kinds)

	if kinds.Enabled(Comment) || !kinds.Enabled(Identifier) {
		t.Errorf("Kinds = %v", slices.Collect(kinds.All()))
	}
}

func TestDecodeUnknownField(t *testing.T) {
	t.Parallel()

	if _, err := Decode(strings.NewReader("dictionary: words.txt\n")); err == nil {
		t.Error("Expected error for unknown field")
	}
}

func TestDecodeEmpty(t *testing.T) {
	t.Parallel()

	cfg, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if len(cfg.Dictionaries) != 0 {
		t.Errorf("Dictionaries = %v, want none", cfg.Dictionaries)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		EnvRedisAddr:  "redis:6379",
		EnvRedisDB:    "3",
		EnvS3UseSSL:   "true",
		EnvS3Endpoint: "minio:9000",
	}

	cfg := File{Redis: Redis{Addr: "localhost:6379", Password: "keep"}}
	if err := cfg.ApplyEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	if cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 3 || cfg.Redis.Password != "keep" {
		t.Errorf("Redis = %+v", cfg.Redis)
	}

	if !cfg.S3.UseSSL || cfg.S3.Endpoint != "minio:9000" {
		t.Errorf("S3 = %+v", cfg.S3)
	}

	bad := File{}
	if err := bad.ApplyEnv(func(k string) string {
		if k == EnvRedisDB {
			return "zero"
		}

		return ""
	}); err == nil {
		t.Error("Expected error for invalid database number")
	}
}
