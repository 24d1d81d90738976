// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudscale/cloudscale/internal/catalog"
)

func snapshot(t *testing.T, mutate func(*catalog.Snapshot)) []byte {
	t.Helper()
	s := catalog.Load()
	if mutate != nil {
		mutate(&s)
	}
	b, err := json.MarshalIndent(s, "", "  ")
	require.NoError(t, err)
	return b
}

func hasLine(out, prefix, needle string) bool {
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, prefix) && strings.Contains(line, needle) {
			return true
		}
	}
	return false
}

func TestParseIgnore(t *testing.T) {
	assert.Nil(t, ParseIgnore(""))
	assert.Equal(t, []string{"brand", "proTip"}, ParseIgnore(" brand, ,proTip,"))
}

func TestDiffIdentical(t *testing.T) {
	var buf bytes.Buffer
	changed, err := Diff(&buf, snapshot(t, nil), snapshot(t, nil), Options{})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, Identical+"\n", buf.String())
}

func TestDiffModified(t *testing.T) {
	renamed := snapshot(t, func(s *catalog.Snapshot) {
		s.Providers[0].Name = "AWS Renamed"
		s.Tiers[1].Tiers = append(s.Tiers[1].Tiers, "Premium")
	})

	var buf bytes.Buffer
	changed, err := Diff(&buf, snapshot(t, nil), renamed, Options{})
	require.NoError(t, err)
	assert.True(t, changed)

	out := buf.String()
	assert.True(t, hasLine(out, "-", "Amazon Web Services"), out)
	assert.True(t, hasLine(out, "+", "AWS Renamed"), out)
	assert.True(t, hasLine(out, "+", "Premium"), out)
	assert.NotContains(t, out, "\x1b[")
}

func TestDiffIgnore(t *testing.T) {
	rebranded := snapshot(t, func(s *catalog.Snapshot) {
		s.Brand.Name = "OtherScale"
	})

	out, err := Compare(snapshot(t, nil), rebranded, Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "OtherScale")

	out, err = Compare(snapshot(t, nil), rebranded, Options{Ignore: []string{"brand"}})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDiffColoring(t *testing.T) {
	renamed := snapshot(t, func(s *catalog.Snapshot) { s.ProTip.Title = "Con Tip" })

	out, err := Compare(snapshot(t, nil), renamed, Options{Coloring: true})
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
}

func TestDiffErrors(t *testing.T) {
	_, err := Diff(nil, nil, snapshot(t, nil), Options{})
	assert.ErrorIs(t, err, ErrEmptySnapshot)

	_, err = Compare([]byte("{"), snapshot(t, nil), Options{})
	assert.ErrorContains(t, err, "left snapshot")

	_, err = Compare(snapshot(t, nil), []byte("[]"), Options{})
	assert.ErrorContains(t, err, "right snapshot")
}
