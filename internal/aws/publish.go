// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dustin/go-humanize"

	"github.com/cloudscale/cloudscale/internal/log"
)

// PutObjectAPI is the slice of the S3 client the publisher needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
}

// Object is one file to upload.
type Object struct {
	Key          string
	ContentType  string
	CacheControl string
	Body         []byte
}

// Size is the humanized body size.
func (o Object) Size() string {
	return humanize.Bytes(uint64(len(o.Body)))
}

// Upload records one object the publisher sent, or would send.
type Upload struct {
	URI  string
	Size string
	ETag string
}

// Publisher uploads objects under s3://Bucket/Prefix.
type Publisher struct {
	Client PutObjectAPI
	Bucket string
	Prefix string
	DryRun bool
}

// ErrNoBucket is returned when no bucket is configured.
var ErrNoBucket = errors.New("publish: bucket is required")

// Key joins the prefix and name into an object key.
func (p Publisher) Key(name string) string {
	prefix := strings.Trim(p.Prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// Publish uploads objs in order and stops at the first failure. In dry-run
// mode nothing is sent and the client may be nil.
func (p Publisher) Publish(ctx context.Context, objs ...Object) ([]Upload, error) {
	if p.Bucket == "" {
		return nil, ErrNoBucket
	}

	uploads := make([]Upload, 0, len(objs))
	for _, o := range objs {
		key := p.Key(o.Key)
		up := Upload{URI: fmt.Sprintf("s3://%s/%s", p.Bucket, key), Size: o.Size()}

		if p.DryRun {
			log.Infof("dry-run: would upload %s (%s)", up.URI, up.Size)
			uploads = append(uploads, up)
			continue
		}
		if p.Client == nil {
			return uploads, errors.New("publish: no s3 client")
		}

		in := &s3v2.PutObjectInput{
			Bucket:      awsv2.String(p.Bucket),
			Key:         awsv2.String(key),
			Body:        bytes.NewReader(o.Body),
			ContentType: awsv2.String(o.ContentType),
		}
		if o.CacheControl != "" {
			in.CacheControl = awsv2.String(o.CacheControl)
		}

		out, err := p.Client.PutObject(ctx, in)
		if err != nil {
			return uploads, fmt.Errorf("put %s: %w", up.URI, err)
		}
		if out != nil && out.ETag != nil {
			up.ETag = *out.ETag
		}
		log.Infof("uploaded %s (%s)", up.URI, up.Size)
		uploads = append(uploads, up)
	}
	return uploads, nil
}
