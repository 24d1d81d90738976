// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	apex "github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleLogLevels(t *testing.T) {
	tests := []struct {
		name  string
		level apex.Level
		msg   string
		want  string
	}{
		{"debug", apex.DebugLevel, "hello", " D hello\n"},
		{"info", apex.InfoLevel, "hello", " I hello\n"},
		{"warn", apex.WarnLevel, "hello", " W hello\n"},
		{"error", apex.ErrorLevel, "hello", " E hello\n"},
		{"trace prefix", apex.DebugLevel, "TRACE: deep", " T deep\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetOutput(&buf)
			t.Cleanup(func() { SetOutput(os.Stderr) })

			h := &CustomHandler{}
			err := h.HandleLog(&apex.Entry{Level: tt.level, Message: tt.msg})
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestHandleLogWithError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	h := &CustomHandler{}
	entry := &apex.Entry{
		Level:   apex.ErrorLevel,
		Message: "upload failed",
		Fields:  apex.Fields{"error": errors.New("boom")},
	}
	require.NoError(t, h.HandleLog(entry))
	assert.Contains(t, buf.String(), "E upload failed: boom")
}

func TestInitLoggerLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloudscale.log")
	t.Setenv("CLOUDSCALE_LOG", "info")
	t.Setenv("CLOUDSCALE_LOG_FILE", path)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	InitLogger()
	Infof("served %d bytes", 42)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "I served 42 bytes")
}
