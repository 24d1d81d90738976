// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/cloudscale/cloudscale/internal/aws"
	"github.com/cloudscale/cloudscale/internal/catalog"
	"github.com/cloudscale/cloudscale/internal/differ"
	"github.com/cloudscale/cloudscale/internal/meta"
	"github.com/cloudscale/cloudscale/internal/render/html"
)

// run builds the app the way main does and runs args against it, returning
// what the command wrote to stdout.
func run(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	argv := append([]string{"cloudscale"}, args...)
	app, err := InitApp(context.Background(), argv)
	require.NoError(t, err)

	var buf bytes.Buffer
	app.Writer = &buf
	app.ErrWriter = io.Discard
	if stdin != nil {
		app.Reader = stdin
	}

	err = app.Run(context.Background(), argv)
	return buf.String(), err
}

func TestInitAppCommands(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"cloudscale", "render"})
	require.NoError(t, err)

	var names []string
	for _, c := range app.Commands {
		names = append(names, c.Name)
		assert.Equal(t, catalog.Load(), GetMeta(c).Catalog, c.Name)
	}
	assert.ElementsMatch(t, []string{
		"browse", "completion", "diff", "export", "pq", "publish", "render", "scq", "serve", "tq",
	}, names)

	for _, c := range app.Commands {
		for i := 1; i < len(c.Flags); i++ {
			assert.LessOrEqual(t, c.Flags[i-1].Names()[0], c.Flags[i].Names()[0], c.Name)
		}
	}
}

func TestGetMetaMissing(t *testing.T) {
	assert.Equal(t, meta.Meta{}, GetMeta(nil))
	assert.Equal(t, meta.Meta{}, GetMeta(&cli.Command{}))
	assert.Equal(t, meta.Meta{}, GetMeta(&cli.Command{Metadata: map[string]any{"meta": "x"}}))
}

func TestRenderHTML(t *testing.T) {
	out, err := run(t, nil, "render")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(strings.ToLower(out), "<!doctype html>"), out[:40])
	for _, id := range []string{"overview", "aws", "azure", "gcp", "scenarios", "recommendations"} {
		assert.Contains(t, out, `id="`+id+`"`)
	}
	assert.Contains(t, out, html.DefaultTailwind)
	assert.Contains(t, out, "<title>CloudScale</title>")
	assert.NotContains(t, out, html.ScriptPath)
}

func TestRenderHTMLOptions(t *testing.T) {
	out, err := run(t, nil, "render", "--inline=false", "--tailwind", "", "--title", "Storage")
	require.NoError(t, err)

	assert.Contains(t, out, `src="`+html.ScriptPath+`"`)
	assert.NotContains(t, out, html.DefaultTailwind)
	assert.Contains(t, out, "<title>Storage</title>")
}

func TestRenderTextToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.txt")

	out, err := run(t, nil, "render", "--format", "text", "--width", "90", "--out", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	page := string(data)
	assert.Contains(t, page, "Amazon Web Services")
	assert.Contains(t, page, "Key Features")
	assert.Contains(t, page, "Petabyte-Scale Storage")
	assert.NotContains(t, page, "<div")
}

func TestRenderBadFormat(t *testing.T) {
	_, err := run(t, nil, "render", "--format", "pdf")
	assert.ErrorContains(t, err, "must be one of")
}

func TestProviderQuery(t *testing.T) {
	out, err := run(t, nil, "pq", "--output", "json", "--sort", "-id")
	require.NoError(t, err)

	rows := gjson.Parse(out).Array()
	require.Len(t, rows, 3)
	assert.Equal(t, "gcp", rows[0].Get("id").String())
	assert.Equal(t, "azure", rows[1].Get("id").String())
	assert.Equal(t, "aws", rows[2].Get("id").String())
	assert.Equal(t, "Amazon Web Services", rows[2].Get("name").String())
	assert.Len(t, []rune(rows[2].Get("storage").String()), 40)
}

func TestProviderQueryText(t *testing.T) {
	out, err := run(t, nil, "pq", "--attrs", "accent", "--titles")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "accent")
	assert.Contains(t, out, "orange")
}

func TestScenarioQuery(t *testing.T) {
	out, err := run(t, nil, "scq", "-o", "json", "--filter", "provider=Azure", "--attrs", ".id,rank")
	require.NoError(t, err)

	rows := gjson.Parse(out).Array()
	require.Len(t, rows, len(catalog.Scenarios()))
	for _, r := range rows {
		assert.Equal(t, "Azure", r.Get("provider").String())
		assert.Equal(t, int64(2), r.Get("rank").Int())
		assert.True(t, strings.HasSuffix(r.Get("id").String(), "-azure"), r.Raw)
		assert.NotEmpty(t, r.Get("solution").String())
	}
}

func TestTierQuery(t *testing.T) {
	out, err := run(t, nil, "tq", "-o", "yaml", "--attrs", ".id,tiers::n", "--sort", "-count")
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "aws", rows[0]["id"])
	assert.EqualValues(t, 7, rows[0]["tiers"])
	assert.Equal(t, "gcp", rows[1]["id"])
	assert.Equal(t, "azure", rows[2]["id"])
}

func TestTierQueryProviders(t *testing.T) {
	out, err := run(t, nil, "tq", "-o", "json", "--sort", "-provider")
	require.NoError(t, err)

	rows := gjson.Parse(out).Array()
	require.Len(t, rows, 3)
	assert.Equal(t, "Google Cloud Storage", rows[0].Get("provider").String())
	assert.Equal(t, "AWS S3", rows[2].Get("provider").String())

	out, err = run(t, nil, "tq", "-o", "json", "--filter", "provider~gcp")
	require.NoError(t, err)
	rows = gjson.Parse(out).Array()
	require.Len(t, rows, 1)
	assert.Equal(t, "Google Cloud Storage", rows[0].Get("provider").String())
}

func TestQueryRaw(t *testing.T) {
	out, err := run(t, nil, "tq", "-o", "raw")
	require.NoError(t, err)

	assert.Equal(t, int64(3), gjson.Get(out, "data.#").Int())
	assert.Equal(t, "tiers", gjson.Get(out, "data.0.type").String())
	assert.Equal(t, "aws", gjson.Get(out, "data.0.id").String())
	assert.Equal(t, "Hot", gjson.Get(out, "data.1.attributes.tiers.0").String())
}

func TestQuerySchema(t *testing.T) {
	out, err := run(t, nil, "pq", "--schema")
	require.NoError(t, err)

	assert.Contains(t, out, "--attrs")
	assert.Regexp(t, `\n\.id\s+anchor id on the page`, out)
	assert.Regexp(t, `\nfeatures\s+key features \(list\)\n`, out)
	assert.Regexp(t, `\nstorage\s+primary storage offering\n`, out)

	out, err = run(t, nil, "tq", "--schema")
	require.NoError(t, err)
	assert.Regexp(t, `\ncount\s+number of tiers\n`, out)
}

func TestQueryErrors(t *testing.T) {
	_, err := run(t, nil, "pq", "--attrs", "name,,accent")
	assert.ErrorContains(t, err, "invalid --attrs")

	_, err = run(t, nil, "pq", "--output", "csv")
	assert.ErrorContains(t, err, "must be one of")

	_, err = run(t, nil, "tq", "--padding=-1")
	assert.ErrorContains(t, err, "padding")
}

func TestExportDiffRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	_, err := run(t, nil, "export", "--out", path)
	require.NoError(t, err)

	out, err := run(t, nil, "diff", "--exit-code", path)
	require.NoError(t, err)
	assert.Equal(t, differ.Identical+"\n", out)

	out, err = run(t, nil, "diff", path, path)
	require.NoError(t, err)
	assert.Equal(t, differ.Identical+"\n", out)
}

func TestExportYAML(t *testing.T) {
	out, err := run(t, nil, "export", "--format", "yaml")
	require.NoError(t, err)

	var snap catalog.Snapshot
	require.NoError(t, yaml.Unmarshal([]byte(out), &snap))
	assert.Equal(t, catalog.Load(), snap)
}

func TestDiffDrift(t *testing.T) {
	s := catalog.Load()
	s.Providers[1].Name = "Microsoft Azure Cloud"
	drifted, err := json.Marshal(s)
	require.NoError(t, err)

	out, err := run(t, bytes.NewReader(drifted), "diff", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Microsoft Azure Cloud")
	assert.NotContains(t, out, differ.Identical)

	_, err = run(t, bytes.NewReader(drifted), "diff", "--exit-code", "-")
	assert.ErrorIs(t, err, ErrCatalogsDiffer)

	out, err = run(t, bytes.NewReader(drifted), "diff", "--ignore", "providers", "-")
	require.NoError(t, err)
	assert.Equal(t, differ.Identical+"\n", out)
}

func TestDiffUsage(t *testing.T) {
	_, err := run(t, nil, "diff")
	assert.ErrorContains(t, err, "usage")

	_, err = run(t, nil, "diff", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "read snapshot")
}

type fakePutter struct {
	keys  []string
	types []string
}

func (f *fakePutter) PutObject(_ context.Context, in *s3v2.PutObjectInput, _ ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error) {
	f.keys = append(f.keys, awsv2.ToString(in.Key))
	f.types = append(f.types, awsv2.ToString(in.ContentType))
	return &s3v2.PutObjectOutput{ETag: awsv2.String(`"x"`)}, nil
}

func TestPublishDryRun(t *testing.T) {
	t.Setenv("CLOUDSCALE_BUCKET", "")

	out, err := run(t, nil, "publish", "--bucket", "www", "--prefix", "site", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "would upload s3://www/site/index.html")
	assert.Contains(t, out, "would upload s3://www/site/catalog.json")
}

func TestPublishUploads(t *testing.T) {
	fake := &fakePutter{}
	var optCount int
	orig := newPublisherClient
	newPublisherClient = func(_ context.Context, opts ...aws.Option) (aws.PutObjectAPI, error) {
		optCount = len(opts)
		return fake, nil
	}
	t.Cleanup(func() { newPublisherClient = orig })

	t.Setenv("CLOUDSCALE_BUCKET", "site-bucket")
	out, err := run(t, nil, "publish", "--region", "eu-west-1", "--endpoint", "http://localhost:9000")
	require.NoError(t, err)

	assert.Equal(t, 2, optCount)
	assert.Equal(t, []string{"index.html", "catalog.json"}, fake.keys)
	assert.Equal(t, []string{"text/html; charset=utf-8", "application/json"}, fake.types)
	assert.Contains(t, out, "uploaded s3://site-bucket/index.html")
}

func TestPublishNoBucket(t *testing.T) {
	t.Setenv("CLOUDSCALE_BUCKET", "")

	_, err := run(t, nil, "publish", "--dry-run")
	assert.ErrorIs(t, err, aws.ErrNoBucket)
}

func TestServeBadAddr(t *testing.T) {
	_, err := run(t, nil, "serve", "--addr", "nope")
	assert.ErrorContains(t, err, "invalid listen address")
}

func TestBrowseOptions(t *testing.T) {
	cmd := browseCommandBuilder(meta.Meta{})

	var got struct {
		breakpoint, steps int
		interval          time.Duration
	}
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		o := browseOptions(c)
		got.breakpoint, got.steps, got.interval = o.Breakpoint, o.ScrollSteps, o.ScrollInterval
		return nil
	}

	err := cmd.Run(context.Background(), []string{"browse", "--breakpoint", "100", "--scroll-steps", "3", "--scroll-interval", "5ms"})
	require.NoError(t, err)
	assert.Equal(t, 100, got.breakpoint)
	assert.Equal(t, 3, got.steps)
	assert.Equal(t, 5*time.Millisecond, got.interval)
}

func TestCompletion(t *testing.T) {
	out, err := run(t, nil, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "complete -F _cloudscale cloudscale")

	out, err = run(t, nil, "completion", "zsh")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "#compdef cloudscale"))
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		fn      FlagValidatorType
		value   any
		wantErr bool
	}{
		{"output text", OutputValidator, "text", false},
		{"output csv", OutputValidator, "csv", true},
		{"format html", FormatValidator, "html", false},
		{"format pdf", FormatValidator, "pdf", true},
		{"export yaml", ExportFormatValidator, "yaml", false},
		{"export text", ExportFormatValidator, "text", true},
		{"addr loopback", AddrValidator, "127.0.0.1:8080", false},
		{"addr any host", AddrValidator, ":0", false},
		{"addr no port", AddrValidator, "localhost", true},
		{"addr bad port", AddrValidator, "localhost:http", true},
		{"addr big port", AddrValidator, "localhost:70000", true},
		{"not a string", OutputValidator, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FlagValidators(tt.value, tt.fn)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "long-term-archiving", slug("Long-term Archiving"))
	assert.Equal(t, "high-performance-computing", slug("  High-Performance  Computing "))
}
