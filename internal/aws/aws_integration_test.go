// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

//go:build integration
// +build integration

package aws

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIntegration_Publish uploads to a throwaway bucket using the default
// credential chain and reads the objects back.
func TestIntegration_Publish(t *testing.T) {
	ctx := context.Background()

	client, err := NewPublisherClient(ctx, WithRegion("us-east-1"))
	require.NoError(t, err)

	bucket := fmt.Sprintf("cloudscale-test-%d", time.Now().UnixNano())
	_, err = client.CreateBucket(ctx, &s3v2.CreateBucketInput{Bucket: awsv2.String(bucket)})
	require.NoError(t, err)

	p := Publisher{Client: client, Bucket: bucket, Prefix: "site"}
	defer func() {
		for _, o := range objects() {
			client.DeleteObject(ctx, &s3v2.DeleteObjectInput{Bucket: awsv2.String(bucket), Key: awsv2.String(p.Key(o.Key))})
		}
		client.DeleteBucket(ctx, &s3v2.DeleteBucketInput{Bucket: awsv2.String(bucket)})
	}()

	ups, err := p.Publish(ctx, objects()...)
	require.NoError(t, err)
	assert.Len(t, ups, 2)

	got, err := client.GetObject(ctx, &s3v2.GetObjectInput{Bucket: awsv2.String(bucket), Key: awsv2.String("site/index.html")})
	require.NoError(t, err)
	defer got.Body.Close()

	body, err := io.ReadAll(got.Body)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(body))
	assert.Equal(t, "text/html; charset=utf-8", awsv2.ToString(got.ContentType))
}
