// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package html

import (
	"fmt"
	"io"
	"slices"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/cloudscale/cloudscale/internal/catalog"
	"github.com/cloudscale/cloudscale/internal/page"
)

// DefaultTailwind is the stylesheet script the page loads unless overridden.
const DefaultTailwind = "https://cdn.tailwindcss.com"

// Options controls the document shell.
type Options struct {
	// Title is the document title. Empty uses the brand name.
	Title string
	// Tailwind is the stylesheet script URL. Empty omits it.
	Tailwind string
	// InlineScript embeds the navigation script instead of referencing
	// ScriptSrc. Standalone files use it.
	InlineScript bool
	// ScriptSrc is the navigation script URL. Empty uses ScriptPath.
	ScriptSrc string
}

// Page builds the full document for root.
func Page(root *page.Root, opts Options) g.Node {
	snap := root.Catalog()
	title := opts.Title
	if title == "" {
		title = snap.Brand.Name
	}

	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Meta(h.Name("description"), h.Content(snap.Brand.HeroLead)),
				h.TitleEl(g.Text(title)),
				g.If(opts.Tailwind != "", h.Script(h.Src(opts.Tailwind))),
			),
			h.Body(h.Class("min-h-screen bg-gradient-to-br from-slate-50 to-blue-50"),
				NavBar(snap.Brand, root.Bar().Items(), root.MenuOpen()),
				g.Map(root.Sections(), func(s page.Section) g.Node {
					return section(snap, s)
				}),
				script(opts),
			),
		),
	)
}

// section renders one document section.
func section(snap catalog.Snapshot, s page.Section) g.Node {
	switch s.Kind {
	case page.KindHero:
		return Hero(snap.Brand)
	case page.KindProvider:
		return providerSection(snap, s.Provider)
	case page.KindScenarios:
		return h.Section(h.ID(s.Anchor), h.Class("py-16 bg-white"),
			h.Div(h.Class(container),
				sectionHeading(snap.Brand.ScenarioTitle, snap.Brand.ScenarioLead, false),
				h.Div(h.Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
					g.Map(snap.Scenarios, ScenarioCard),
				),
			),
		)
	case page.KindTiers:
		return h.Section(h.Class("py-16"),
			h.Div(h.Class(container),
				sectionHeading(snap.Brand.TierTitle, snap.Brand.TierLead, false),
				TierTable(snap.Tiers),
			),
		)
	case page.KindPicks:
		return h.Section(h.ID(s.Anchor), h.Class("py-16 bg-gradient-to-br from-gray-900 to-blue-900"),
			h.Div(h.Class(container),
				sectionHeading(snap.Brand.PickTitle, snap.Brand.PickLead, true),
				h.Div(h.Class("grid md:grid-cols-2 gap-8"),
					g.Map(snap.Picks, PickCard),
				),
			),
		)
	case page.KindCostTips:
		return h.Section(h.Class("py-16 bg-white"),
			h.Div(h.Class(container),
				sectionHeading(snap.Brand.CostTitle, snap.Brand.CostLead, false),
				h.Div(h.Class("grid md:grid-cols-3 gap-8"),
					g.Map(snap.CostTips, CostTipCard),
				),
			),
		)
	case page.KindProTip:
		return ProTip(snap.ProTip)
	case page.KindFooter:
		return Footer(snap.Brand)
	}
	return nil
}

// providerSection gives each provider its own full-width band so every nav
// target has a distinct offset. Bands alternate with white starting at the
// second provider.
func providerSection(snap catalog.Snapshot, p catalog.Provider) g.Node {
	class := "py-16"
	if i := slices.IndexFunc(snap.Providers, func(q catalog.Provider) bool { return q.ID == p.ID }); i%2 == 1 {
		class += " bg-white"
	}
	return h.Section(h.ID(p.ID), h.Class(class),
		h.Div(h.Class(container), ProviderCard(p)),
	)
}

func script(opts Options) g.Node {
	if opts.InlineScript {
		return h.Script(g.Raw(NavScript()))
	}
	src := opts.ScriptSrc
	if src == "" {
		src = ScriptPath
	}
	return h.Script(h.Src(src), h.Defer())
}

// Render writes the document for root to w.
func Render(w io.Writer, root *page.Root, opts Options) error {
	if err := Page(root, opts).Render(w); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
