// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package text

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudscale/cloudscale/internal/catalog"
	"github.com/cloudscale/cloudscale/internal/nav"
	"github.com/cloudscale/cloudscale/internal/page"
)

func TestLayoutAnchors(t *testing.T) {
	doc := Layout(page.New(), 100, DefaultTheme())
	lines := strings.Split(doc.Body, "\n")
	require.Equal(t, len(lines), doc.Lines())

	want := map[string]string{
		nav.Overview:        "Petabyte-Scale Storage",
		nav.AWS:             "Amazon Web Services",
		nav.Azure:           "Microsoft Azure",
		nav.GCP:             "Google Cloud",
		nav.Scenarios:       "Use Case Scenarios",
		nav.Recommendations: "Quick Recommendations",
	}
	require.Len(t, doc.Anchors, len(want))

	for id, needle := range want {
		off, ok := doc.Anchors[id]
		require.True(t, ok, id)
		require.Less(t, off, len(lines), id)

		// The needle sits within the first few lines of the section.
		window := strings.Join(lines[off:min(off+4, len(lines))], "\n")
		assert.Contains(t, window, needle, id)
	}
}

func TestLayoutAnchorsAscend(t *testing.T) {
	root := page.New()
	doc := Layout(root, 80, DefaultTheme())

	prev := -1
	for _, id := range root.Anchors() {
		assert.Greater(t, doc.Anchors[id], prev, id)
		prev = doc.Anchors[id]
	}
	assert.Zero(t, doc.Anchors[nav.Overview])
}

func TestLayoutContent(t *testing.T) {
	doc := Layout(page.New(), 120, DefaultTheme())

	for _, label := range []string{"Key Features", "Analytics Integration", "Pricing Structure", "Strengths for Scale"} {
		assert.Equal(t, 3, strings.Count(doc.Body, label), label)
	}
	for _, r := range catalog.Tiers() {
		assert.Contains(t, doc.Body, r.Provider)
	}
	assert.Contains(t, doc.Body, "Start Comparison")
	assert.Contains(t, doc.Body, catalog.BrandInfo().Tagline)
}

func TestLayoutRespectsWidth(t *testing.T) {
	for _, w := range []int{10, 60, 100} {
		doc := Layout(page.New(), w, DefaultTheme())
		limit := max(w, MinWidth)
		for _, line := range strings.Split(doc.Body, "\n") {
			assert.LessOrEqual(t, lipgloss.Width(line), limit, "width %d", w)
		}
	}
}

func TestHeader(t *testing.T) {
	theme := DefaultTheme()
	state := func(open bool, width int) HeaderState {
		return HeaderState{Brand: catalog.BrandInfo(), Items: nav.Items(), Open: open, Width: width, Breakpoint: 80}
	}

	t.Run("wide lists every link", func(t *testing.T) {
		out := Header(state(false, 140), theme)
		for _, it := range nav.Items() {
			assert.Contains(t, out, it.Label)
		}
	})

	t.Run("narrow closed hides links", func(t *testing.T) {
		out := Header(state(false, 60), theme)
		assert.Contains(t, out, catalog.BrandInfo().Name)
		assert.Contains(t, out, "[≡]")
		assert.NotContains(t, out, "Recommendations")
	})

	t.Run("narrow open lists links", func(t *testing.T) {
		st := state(true, 60)
		st.Cursor = 2
		out := Header(st, theme)
		assert.Contains(t, out, "[✕]")
		assert.Contains(t, out, "› 3  Azure")
		for _, it := range nav.Items() {
			assert.Contains(t, out, it.Label)
		}
	})
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, page.New(), 100, DefaultTheme()))
	assert.True(t, strings.HasPrefix(buf.String(), Glyph(catalog.IconDatabase)))
	assert.Contains(t, buf.String(), "Storage Tiers Comparison")
}

func TestGlyphFallback(t *testing.T) {
	assert.Equal(t, "✓", Glyph(catalog.IconCheck))
	assert.Equal(t, "•", Glyph("nope"))
}

func TestThemeResolve(t *testing.T) {
	theme := DefaultTheme()

	dark := theme.Resolve(true)
	assert.Equal(t, "#f9fafb", dark.Title)
	assert.Equal(t, "#9ca3af", dark.Muted)
	assert.Equal(t, []string{"#f97316", "#3b82f6", "#22c55e"}, dark.Accents)

	light := theme.Resolve(false)
	assert.Equal(t, "#111827", light.Title)
	assert.Equal(t, "#374151", light.Body)

	theme.Accents[catalog.AccentBlue] = lipgloss.Color("#000080")
	assert.Equal(t, "#000080", theme.Resolve(true).Accents[1])
}
