// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/cloudscale/cloudscale/internal/aws"
	"github.com/cloudscale/cloudscale/internal/meta"
	"github.com/cloudscale/cloudscale/internal/render/html"
)

// newPublisherClient builds the S3 client. Tests replace it.
var newPublisherClient = func(ctx context.Context, opts ...aws.Option) (aws.PutObjectAPI, error) {
	return aws.NewPublisherClient(ctx, opts...)
}

// publishCommandAction is the action handler for the "publish" subcommand. It
// uploads a standalone index.html and a catalog.json snapshot.
func publishCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "publish") {
		return nil
	}

	p := aws.Publisher{
		Bucket: cmd.String("bucket"),
		Prefix: cmd.String("prefix"),
		DryRun: cmd.Bool("dry-run"),
	}
	if p.Bucket == "" {
		return aws.ErrNoBucket
	}

	objs, err := siteObjects(cmd)
	if err != nil {
		return err
	}

	if !p.DryRun {
		var opts []aws.Option
		if v := cmd.String("profile"); v != "" {
			opts = append(opts, aws.WithProfile(v))
		}
		if v := cmd.String("region"); v != "" {
			opts = append(opts, aws.WithRegion(v))
		}
		if v := cmd.String("endpoint"); v != "" {
			opts = append(opts, aws.WithEndpoint(v))
		}
		client, err := newPublisherClient(ctx, opts...)
		if err != nil {
			return err
		}
		p.Client = client
	}

	uploads, err := p.Publish(ctx, objs...)
	verb := "uploaded"
	if p.DryRun {
		verb = "would upload"
	}
	w := stdout(cmd)
	for _, u := range uploads {
		fmt.Fprintf(w, "%s %s (%s)\n", verb, u.URI, u.Size)
	}
	return err
}

// siteObjects renders the files a static site needs.
func siteObjects(cmd *cli.Command) ([]aws.Object, error) {
	root := NewRoot(cmd)
	defer root.Close()

	var page bytes.Buffer
	if err := html.Render(&page, root, html.Options{
		Title:        cmd.String("title"),
		Tailwind:     cmd.String("tailwind"),
		InlineScript: true,
	}); err != nil {
		return nil, err
	}

	snap, err := json.MarshalIndent(root.Catalog(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal catalog: %w", err)
	}
	log.Debugf("site objects: page=%d catalog=%d", page.Len(), len(snap))

	cache := cmd.String("cache-control")
	return []aws.Object{
		{Key: "index.html", ContentType: "text/html; charset=utf-8", CacheControl: cache, Body: page.Bytes()},
		{Key: "catalog.json", ContentType: "application/json", CacheControl: cache, Body: snap},
	}, nil
}

func publishCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "publish",
		Usage:     "upload the page to an S3 website bucket",
		UsageText: "cloudscale publish --bucket NAME [--prefix PATH] [--dry-run]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			newTldrFlag(),
			NewBucketFlag("publish", meta.Config.Source),
			NewConfigStringFlag("prefix", "key prefix inside the bucket", "", "publish", meta.Config.Source),
			NewConfigStringFlag("profile", "AWS shared config profile", "", "publish", meta.Config.Source),
			NewConfigStringFlag("region", "AWS region", "", "publish", meta.Config.Source),
			NewConfigStringFlag("endpoint", "S3 endpoint URL for compatible stores", "", "publish", meta.Config.Source),
			NewConfigStringFlag("cache-control", "Cache-Control header for uploaded objects", "max-age=300", "publish", meta.Config.Source),
			NewConfigStringFlag("title", "document title, defaults to the brand name", "", "publish", meta.Config.Source),
			NewTailwindFlag("publish", meta.Config.Source),
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "list the uploads without sending them",
			},
		},
		Action: publishCommandAction,
	}
}
