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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrInvalidS3URL is returned for locations that are not of the form s3://bucket/prefix.
var ErrInvalidS3URL = errors.New("invalid S3 location")

// ParseS3URL splits an s3://bucket/prefix location into bucket and object prefix.
func ParseS3URL(location string) (bucket, prefix string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("%w %q: %w", ErrInvalidS3URL, location, err)
	}

	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("%w %q", ErrInvalidS3URL, location)
	}

	return u.Host, strings.TrimPrefix(u.Path, "/"), nil
}

// NewS3Client connects to an S3 compatible endpoint with static credentials.
func NewS3Client(endpoint, accessKey, secretKey string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
}

// S3Objects is a [Source] reading every object below a prefix as a word list.
type S3Objects struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewS3Objects returns a [Source] for the objects in bucket below prefix.
func NewS3Objects(client *minio.Client, bucket, prefix string) *S3Objects {
	return &S3Objects{client: client, bucket: bucket, prefix: prefix}
}

// Load implements [Source].
func (s *S3Objects) Load(ctx context.Context, b *Builder) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel() // stops the listing goroutine on early return

	opts := minio.ListObjectsOptions{Prefix: s.prefix, Recursive: true}
	for info := range s.client.ListObjects(ctx, s.bucket, opts) {
		if info.Err != nil {
			return info.Err
		}

		if strings.HasSuffix(info.Key, "/") {
			continue
		}

		if err := s.loadObject(ctx, info.Key, b); err != nil {
			return err
		}
	}

	return nil
}

func (s *S3Objects) loadObject(ctx context.Context, key string, b *Builder) error {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("can't get %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return fmt.Errorf("can't read %s: %w", key, err)
	}

	b.AddLines(data)

	return nil
}

// LogAttr implements [Source].
func (s *S3Objects) LogAttr() slog.Attr {
	return slog.String("s3", "s3://"+s.bucket+"/"+s.prefix)
}
