// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cloudscale/cloudscale/internal/catalog"
	"github.com/cloudscale/cloudscale/internal/config"
)

// Theme is the palette the terminal layout paints with.
type Theme struct {
	Title   lipgloss.TerminalColor
	Body    lipgloss.TerminalColor
	Muted   lipgloss.TerminalColor
	Accents map[catalog.Accent]lipgloss.TerminalColor
}

// DefaultTheme adapts to light and dark terminals.
func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.AdaptiveColor{Light: "#111827", Dark: "#f9fafb"},
		Body:  lipgloss.AdaptiveColor{Light: "#374151", Dark: "#d1d5db"},
		Muted: lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"},
		Accents: map[catalog.Accent]lipgloss.TerminalColor{
			catalog.AccentOrange:  lipgloss.Color("#f97316"),
			catalog.AccentBlue:    lipgloss.Color("#3b82f6"),
			catalog.AccentGreen:   lipgloss.Color("#22c55e"),
			catalog.AccentPurple:  lipgloss.Color("#a855f7"),
			catalog.AccentRed:     lipgloss.Color("#ef4444"),
			catalog.AccentEmerald: lipgloss.Color("#10b981"),
		},
	}
}

// LoadTheme starts from DefaultTheme and applies any colors.* overrides from
// the user configuration, e.g. colors.title or colors.orange.
func LoadTheme() Theme {
	t := DefaultTheme()
	if v, err := config.GetString("colors.title"); err == nil {
		t.Title = lipgloss.Color(v)
	}
	if v, err := config.GetString("colors.body"); err == nil {
		t.Body = lipgloss.Color(v)
	}
	if v, err := config.GetString("colors.muted"); err == nil {
		t.Muted = lipgloss.Color(v)
	}
	for a := range t.Accents {
		if v, err := config.GetString("colors." + string(a)); err == nil {
			t.Accents[a] = lipgloss.Color(v)
		}
	}
	return t
}

// Swatch is a Theme resolved to hex strings for one terminal background.
// Accents follow catalog.ProviderOrder.
type Swatch struct {
	Title   string
	Body    string
	Muted   string
	Accents []string
}

// Resolve flattens the theme for callers that paint with lipgloss v2.
func (t Theme) Resolve(dark bool) Swatch {
	hex := func(c lipgloss.TerminalColor) string {
		switch c := c.(type) {
		case lipgloss.Color:
			return string(c)
		case lipgloss.AdaptiveColor:
			if dark {
				return c.Dark
			}
			return c.Light
		}
		return ""
	}

	s := Swatch{Title: hex(t.Title), Body: hex(t.Body), Muted: hex(t.Muted)}
	for _, p := range catalog.Providers() {
		s.Accents = append(s.Accents, hex(t.accent(p.Accent)))
	}
	return s
}

func (t Theme) accent(a catalog.Accent) lipgloss.TerminalColor {
	if c, ok := t.Accents[a]; ok {
		return c
	}
	return t.Muted
}

var glyphs = map[catalog.Icon]string{
	catalog.IconCloud:    "☁",
	catalog.IconServer:   "▤",
	catalog.IconDatabase: "⛁",
	catalog.IconZap:      "ϟ",
	catalog.IconShield:   "⛨",
	catalog.IconDollar:   "$",
	catalog.IconCheck:    "✓",
	catalog.IconArrow:    "→",
}

// Glyph maps an icon onto a single terminal symbol.
func Glyph(i catalog.Icon) string {
	if s, ok := glyphs[i]; ok {
		return s
	}
	return "•"
}
