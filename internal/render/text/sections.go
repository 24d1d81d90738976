// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cloudscale/cloudscale/internal/catalog"
	"github.com/cloudscale/cloudscale/internal/nav"
)

type painter struct {
	theme Theme
	width int
}

func (p painter) style() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.theme.Body)
}

func (p painter) wrap(s string, indent int) string {
	return p.style().Width(p.width - indent).PaddingLeft(indent).Render(s)
}

func (p painter) heading(title, lead string) string {
	t := lipgloss.NewStyle().Bold(true).Foreground(p.theme.Title).Width(p.width).Align(lipgloss.Center).Render(title)
	l := lipgloss.NewStyle().Foreground(p.theme.Muted).Width(p.width).Align(lipgloss.Center).Render(lead)
	return t + "\n" + l
}

func (p painter) card(accent catalog.Accent, body string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.theme.accent(accent)).
		Padding(0, 1).
		Width(p.width - 2).
		Render(body)
}

// inner is the text width available inside a card.
func (p painter) inner() int {
	return p.width - 4
}

func (p painter) hero(b catalog.Brand) string {
	center := lipgloss.NewStyle().Width(p.width).Align(lipgloss.Center)
	icons := strings.Join([]string{
		lipgloss.NewStyle().Foreground(p.theme.accent(catalog.AccentBlue)).Render(Glyph(catalog.IconCloud)),
		lipgloss.NewStyle().Foreground(p.theme.accent(catalog.AccentPurple)).Render(Glyph(catalog.IconDatabase)),
		lipgloss.NewStyle().Foreground(p.theme.accent(catalog.AccentEmerald)).Render(Glyph(catalog.IconServer)),
	}, "  ")
	title := lipgloss.NewStyle().Bold(true).Foreground(p.theme.Title).Render(b.HeroTitle)
	sub := lipgloss.NewStyle().Bold(true).Foreground(p.theme.accent(catalog.AccentBlue)).Render(b.HeroSubtitle)
	cta := lipgloss.NewStyle().Bold(true).Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		Render(fmt.Sprintf("%s %s  [g]", b.CallToAction, Glyph(catalog.IconArrow)))

	return lipgloss.JoinVertical(lipgloss.Center,
		center.Render(icons),
		"",
		center.Render(title),
		center.Render(sub),
		"",
		center.Foreground(p.theme.Body).Render(b.HeroLead),
		"",
		center.Render(cta),
	)
}

func (p painter) provider(pr catalog.Provider) string {
	accent := lipgloss.NewStyle().Foreground(p.theme.accent(pr.Accent))
	label := lipgloss.NewStyle().Bold(true).Foreground(p.theme.Title)
	w := p.inner()
	sub := painter{theme: p.theme, width: w}

	var sb strings.Builder
	sb.WriteString(accent.Bold(true).Render(Glyph(pr.Icon) + " " + pr.Name))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Foreground(p.theme.Muted).Width(w).Render(pr.PrimaryStorage))
	sb.WriteString("\n\n")

	sb.WriteString(label.Render(Glyph(catalog.IconShield) + " Key Features"))
	for _, f := range pr.Features {
		check := lipgloss.NewStyle().Foreground(p.theme.accent(catalog.AccentEmerald)).Render(Glyph(catalog.IconCheck))
		line := lipgloss.NewStyle().Foreground(p.theme.Body).Width(w - 4).Render(f)
		sb.WriteString("\n")
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, "  ", check, " ", line))
	}

	for _, s := range []struct {
		icon catalog.Icon
		name string
		body string
	}{
		{catalog.IconDatabase, "Analytics Integration", pr.Analytics},
		{catalog.IconDollar, "Pricing Structure", pr.Pricing},
		{catalog.IconZap, "Strengths for Scale", pr.Strengths},
	} {
		sb.WriteString("\n\n")
		sb.WriteString(label.Render(Glyph(s.icon) + " " + s.name))
		sb.WriteString("\n")
		sb.WriteString(sub.wrap(s.body, 2))
	}

	return p.card(pr.Accent, sb.String())
}

func (p painter) scenarios(b catalog.Brand, scenarios []catalog.Scenario) string {
	parts := []string{p.heading(b.ScenarioTitle, b.ScenarioLead)}
	w := p.inner()
	for _, s := range scenarios {
		var sb strings.Builder
		sb.WriteString(lipgloss.NewStyle().Bold(true).Foreground(p.theme.accent(s.Accent)).Render(Glyph(s.Icon) + " " + s.Title))
		for _, r := range s.Recommendations {
			rec := lipgloss.JoinVertical(lipgloss.Left,
				lipgloss.NewStyle().Bold(true).Foreground(p.theme.Title).Render(r.Provider),
				lipgloss.NewStyle().Foreground(p.theme.Body).Width(w-3).Render(r.Solution),
				lipgloss.NewStyle().Foreground(p.theme.Muted).Width(w-3).Render(r.Benefit),
			)
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().
				Border(lipgloss.ThickBorder(), false, false, false, true).
				BorderForeground(p.theme.accent(catalog.AccentBlue)).
				PaddingLeft(1).
				Render(rec))
		}
		parts = append(parts, p.card(s.Accent, sb.String()))
	}
	return strings.Join(parts, "\n\n")
}

// tiers renders the tier rows as a three-column table.
func (p painter) tiers(b catalog.Brand, rows []catalog.TierRow) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(p.theme.Muted).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(p.theme.Body).Padding(0, 1)

	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{r.Provider, strings.Join(r.Tiers, " · "), r.Note})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(p.theme.Muted)).
		Width(p.width).
		Headers("PROVIDER", "AVAILABLE TIERS", "KEY NOTES").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return cell.Bold(true).Foreground(p.theme.Title)
			default:
				return cell
			}
		})

	title := lipgloss.NewStyle().Bold(true).Foreground(p.theme.Title).Render("Storage Tiers Comparison")
	return p.heading(b.TierTitle, b.TierLead) + "\n\n" + title + "\n" + t.Render()
}

func (p painter) picks(b catalog.Brand, picks []catalog.Pick) string {
	parts := []string{p.heading(b.PickTitle, b.PickLead)}
	w := p.inner()
	for _, pk := range picks {
		body := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Foreground(p.theme.Title).Render(pk.Title),
			lipgloss.NewStyle().Foreground(p.theme.Body).Width(w).Render(pk.Body),
			lipgloss.NewStyle().Foreground(p.theme.accent(pk.Accent)).Width(w).
				Render(Glyph(catalog.IconCheck)+" Best for: "+pk.BestFor),
		)
		parts = append(parts, p.card(pk.Accent, body))
	}
	return strings.Join(parts, "\n\n")
}

func (p painter) costTips(b catalog.Brand, tips []catalog.CostTip) string {
	parts := []string{p.heading(b.CostTitle, b.CostLead)}
	for _, t := range tips {
		body := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Foreground(p.theme.accent(t.Accent)).Render(Glyph(t.Icon)+" "+t.Title),
			lipgloss.NewStyle().Foreground(p.theme.Body).Width(p.inner()).Render(t.Body),
		)
		parts = append(parts, p.card(t.Accent, body))
	}
	return strings.Join(parts, "\n\n")
}

func (p painter) proTip(pt catalog.ProTip) string {
	var body strings.Builder
	for _, s := range pt.Body {
		if s.Strong {
			body.WriteString(lipgloss.NewStyle().Bold(true).Render(s.Text))
			continue
		}
		body.WriteString(s.Text)
	}

	center := lipgloss.NewStyle().Width(p.width).Align(lipgloss.Center)
	aside := p.card(catalog.AccentEmerald, lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(p.theme.Title).Render(pt.AsideTitle),
		lipgloss.NewStyle().Foreground(p.theme.Body).Width(p.inner()).Render(pt.AsideBody),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		center.Bold(true).Foreground(p.theme.accent(catalog.AccentEmerald)).Render(pt.Title),
		"",
		center.Foreground(p.theme.Body).Render(body.String()),
		"",
		aside,
	)
}

func (p painter) footer(b catalog.Brand) string {
	center := lipgloss.NewStyle().Width(p.width).Align(lipgloss.Center)
	name := lipgloss.NewStyle().Bold(true).Foreground(p.theme.Title).
		Render(Glyph(catalog.IconDatabase) + " " + b.Name)
	return lipgloss.JoinVertical(lipgloss.Left,
		center.Render(name),
		center.Foreground(p.theme.Muted).Render(b.Tagline),
	)
}

// HeaderState is what the fixed navigation bar shows.
type HeaderState struct {
	Brand catalog.Brand
	Items []nav.Item
	Open  bool
	// Cursor is the highlighted item in the open menu list.
	Cursor     int
	Width      int
	Breakpoint int
}

// Header renders the fixed navigation bar. Below Breakpoint columns the links
// collapse behind the menu toggle and are listed only while the menu is open.
func Header(st HeaderState, theme Theme) string {
	brand := lipgloss.NewStyle().Bold(true).Foreground(theme.Title).
		Render(lipgloss.NewStyle().Foreground(theme.accent(catalog.AccentBlue)).Render(Glyph(catalog.IconDatabase)) + " " + st.Brand.Name)
	link := lipgloss.NewStyle().Foreground(theme.Body)
	key := lipgloss.NewStyle().Foreground(theme.Muted)
	rule := lipgloss.NewStyle().Foreground(theme.Muted).Render(strings.Repeat("─", max(st.Width, 1)))

	if st.Width >= st.Breakpoint {
		links := make([]string, 0, len(st.Items))
		for i, it := range st.Items {
			links = append(links, key.Render(fmt.Sprint(i+1))+" "+link.Render(it.Label))
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, brand, "   ", strings.Join(links, "  "))
		return line + "\n" + rule
	}

	toggle := "[≡]"
	if st.Open {
		toggle = "[✕]"
	}
	gap := st.Width - lipgloss.Width(brand) - lipgloss.Width(toggle)
	line := brand + strings.Repeat(" ", max(gap, 1)) + key.Render(toggle)
	if !st.Open {
		return line + "\n" + rule
	}

	current := lipgloss.NewStyle().Bold(true).Foreground(theme.accent(catalog.AccentBlue))
	rows := []string{line, rule}
	for i, it := range st.Items {
		marker, label := " ", link.Render(it.Label)
		if i == st.Cursor {
			marker, label = current.Render("›"), current.Render(it.Label)
		}
		rows = append(rows, marker+" "+key.Render(fmt.Sprint(i+1))+"  "+label)
	}
	return strings.Join(append(rows, rule), "\n")
}
