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

package dictionary

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the Redis set holding custom words.
const DefaultRedisKey = "typoguard:words"

// SetClient is the subset of [redis.Cmdable] used by [RedisSet].
type SetClient interface {
	SAdd(ctx context.Context, key string, members ...any) *redis.IntCmd
	SRem(ctx context.Context, key string, members ...any) *redis.IntCmd
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
}

// RedisSet stores custom words in a Redis set. It is also a [Source].
type RedisSet struct {
	client SetClient
	key    string
}

// NewRedisSet creates a new [RedisSet] with the provided Redis client.
// An empty key selects [DefaultRedisKey].
func NewRedisSet(client SetClient, key string) *RedisSet {
	if key == "" {
		key = DefaultRedisKey
	}

	return &RedisSet{client: client, key: key}
}

// Add inserts words into the custom dictionary.
func (r *RedisSet) Add(ctx context.Context, words ...string) error {
	return r.client.SAdd(ctx, r.key, members(words)...).Err()
}

// Remove deletes words from the custom dictionary.
func (r *RedisSet) Remove(ctx context.Context, words ...string) error {
	return r.client.SRem(ctx, r.key, members(words)...).Err()
}

// All returns all words stored in the custom dictionary.
func (r *RedisSet) All(ctx context.Context) ([]string, error) {
	return r.client.SMembers(ctx, r.key).Result()
}

// Load implements [Source].
func (r *RedisSet) Load(ctx context.Context, b *Builder) error {
	words, err := r.All(ctx)
	if err != nil {
		return err
	}

	for _, w := range words {
		b.Add(w)
	}

	return nil
}

// LogAttr implements [Source].
func (r *RedisSet) LogAttr() slog.Attr {
	return slog.String("redis", r.key)
}

func members(words []string) []any {
	m := make([]any, len(words))
	for i, w := range words {
		m[i] = w
	}

	return m
}
