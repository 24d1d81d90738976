// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudscale/cloudscale/internal/config"
)

func TestWantsVersion(t *testing.T) {
	assert.True(t, wantsVersion([]string{"cloudscale", "--version"}))
	assert.True(t, wantsVersion([]string{"cloudscale", "pq", "-v"}))
	assert.False(t, wantsVersion([]string{"cloudscale", "pq", "--titles"}))
	assert.False(t, wantsVersion([]string{"-v"}))
	assert.False(t, wantsVersion(nil))
}

func TestExpandArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		tty  bool
		want []string
	}{
		{
			name: "bare on a terminal renders text",
			args: []string{"cloudscale"},
			tty:  true,
			want: []string{"cloudscale", "render", "--format", "text"},
		},
		{
			name: "bare when redirected renders html",
			args: []string{"cloudscale"},
			want: []string{"cloudscale", "render"},
		},
		{
			name: "help passes through",
			args: []string{"cloudscale", "pq", "@wide", "--help"},
			want: []string{"cloudscale", "pq", "@wide", "--help"},
		},
		{
			name: "completion passes through",
			args: []string{"cloudscale", "completion", "@zsh"},
			want: []string{"cloudscale", "completion", "@zsh"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expandArgs(tt.args, tt.tty))
		})
	}
}

// useConfig points the config package at a temporary file holding body.
func useConfig(t *testing.T, body string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cloudscale.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("CLOUDSCALE_CFG_FILE", path)

	saved := config.Config
	t.Cleanup(func() { config.Config = saved })
	config.Config = config.Type{}
	_, err := config.Load()
	require.NoError(t, err)
}

func TestExpandSet(t *testing.T) {
	useConfig(t, `
pq:
  wide:
    - --attrs accent,features::n
    - --titles
tq:
  defaults:
    - -o yaml
`)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "no set",
			args: []string{"cloudscale", "pq", "-o", "json"},
			want: []string{"cloudscale", "pq", "-o", "json"},
		},
		{
			name: "named set expands in place",
			args: []string{"cloudscale", "pq", "@wide", "-o", "json"},
			want: []string{"cloudscale", "pq", "--attrs", "accent,features::n", "--titles", "-o", "json"},
		},
		{
			name: "set after flags",
			args: []string{"cloudscale", "tq", "--color", "@defaults"},
			want: []string{"cloudscale", "tq", "--color", "-o", "yaml"},
		},
		{
			name: "unknown set is dropped",
			args: []string{"cloudscale", "pq", "@missing"},
			want: []string{"cloudscale", "pq"},
		},
		{
			name: "short args",
			args: []string{"cloudscale", "pq"},
			want: []string{"cloudscale", "pq"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expandSet(tt.args))
		})
	}
}

func TestInitAndRunApp(t *testing.T) {
	useConfig(t, "{}\n")
	out := filepath.Join(t.TempDir(), "catalog.json")

	assert.Equal(t, 0, initAndRunApp(context.Background(), []string{"cloudscale", "export", "--out", out}))
	assert.FileExists(t, out)

	assert.Equal(t, 2, initAndRunApp(context.Background(), []string{"cloudscale", "export", "--format", "toml"}))

	page := filepath.Join(t.TempDir(), "page.txt")
	args := append(expandArgs([]string{"cloudscale"}, true), "--out", page)
	assert.Equal(t, 0, initAndRunApp(context.Background(), args))
	assert.FileExists(t, page)
}
