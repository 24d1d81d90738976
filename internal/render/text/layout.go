// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cloudscale/cloudscale/internal/catalog"
	"github.com/cloudscale/cloudscale/internal/page"
)

// MinWidth is the narrowest layout produced. Narrower requests are widened.
const MinWidth = 40

// Document is a laid out page body.
type Document struct {
	Body string
	// Anchors maps each anchor id to the body line its section starts on.
	Anchors map[string]int
}

// Lines returns the number of lines in Body.
func (d Document) Lines() int {
	if d.Body == "" {
		return 0
	}
	return strings.Count(d.Body, "\n") + 1
}

// Layout renders every section of root in document order at the given width.
func Layout(root *page.Root, width int, theme Theme) Document {
	if width < MinWidth {
		width = MinWidth
	}
	p := painter{theme: theme, width: width}
	snap := root.Catalog()

	doc := Document{Anchors: map[string]int{}}
	var blocks []string
	line := 0
	for _, s := range root.Sections() {
		block := p.section(snap, s)
		if block == "" {
			continue
		}
		if s.Anchor != "" {
			doc.Anchors[s.Anchor] = line
		}
		blocks = append(blocks, block)
		// One blank separator line follows every block.
		line += lipgloss.Height(block) + 1
	}
	doc.Body = strings.Join(blocks, "\n\n")
	return doc
}

func (p painter) section(snap catalog.Snapshot, s page.Section) string {
	switch s.Kind {
	case page.KindHero:
		return p.hero(snap.Brand)
	case page.KindProvider:
		return p.provider(s.Provider)
	case page.KindScenarios:
		return p.scenarios(snap.Brand, snap.Scenarios)
	case page.KindTiers:
		return p.tiers(snap.Brand, snap.Tiers)
	case page.KindPicks:
		return p.picks(snap.Brand, snap.Picks)
	case page.KindCostTips:
		return p.costTips(snap.Brand, snap.CostTips)
	case page.KindProTip:
		return p.proTip(snap.ProTip)
	case page.KindFooter:
		return p.footer(snap.Brand)
	}
	return ""
}

// Write lays root out and writes the header and body to w. It is the
// non-interactive rendering used by the render command.
func Write(w io.Writer, root *page.Root, width int, theme Theme) error {
	doc := Layout(root, width, theme)
	head := Header(HeaderState{
		Brand: root.Catalog().Brand,
		Items: root.Bar().Items(),
		Open:  root.MenuOpen(),
		Width: max(width, MinWidth),
	}, theme)
	_, err := io.WriteString(w, head+"\n\n"+doc.Body+"\n")
	return err
}
