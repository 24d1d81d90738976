// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package html

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/cloudscale/cloudscale/internal/catalog"
	"github.com/cloudscale/cloudscale/internal/nav"
)

const container = "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"

// NavBar is the fixed header. The desktop links are hidden below the md
// breakpoint, where the toggle button and the collapsible menu take over.
func NavBar(brand catalog.Brand, items []nav.Item, open bool) g.Node {
	return h.Nav(h.Class("fixed top-0 left-0 right-0 bg-white/95 backdrop-blur-sm border-b border-gray-200 z-50"),
		h.Div(h.Class(container),
			h.Div(h.Class("flex justify-between items-center h-16"),
				h.Div(h.Class("flex items-center space-x-2"),
					Icon(catalog.IconDatabase, "h-8 w-8 text-blue-600"),
					h.Span(h.Class("text-xl font-bold text-gray-900"), g.Text(brand.Name)),
				),
				h.Div(h.Class("hidden md:flex space-x-8"),
					g.Map(items, func(it nav.Item) g.Node {
						return navButton(it, "text-gray-700 hover:text-blue-600 px-3 py-2 text-sm font-medium transition-colors duration-200")
					}),
				),
				h.Button(h.Type("button"),
					h.Class("md:hidden p-2 rounded-md text-gray-700 hover:text-blue-600 hover:bg-gray-100"),
					g.Attr("data-menu-toggle"),
					g.Attr("aria-controls", "mobile-menu"),
					g.Attr("aria-expanded", boolString(open)),
					g.Attr("aria-label", "Toggle navigation"),
					Icon(iconMenu, hiddenIf("h-6 w-6", open), g.Attr("data-menu-icon", "open")),
					Icon(iconX, hiddenIf("h-6 w-6", !open), g.Attr("data-menu-icon", "close")),
				),
			),
		),
		h.Div(h.ID("mobile-menu"),
			c.Classes{"md:hidden bg-white border-t border-gray-200": true, "hidden": !open},
			h.Div(h.Class("px-2 pt-2 pb-3 space-y-1"),
				g.Map(items, func(it nav.Item) g.Node {
					return navButton(it, "block w-full text-left px-3 py-2 text-base font-medium text-gray-700 hover:text-blue-600 hover:bg-gray-50")
				}),
			),
		),
	)
}

func navButton(it nav.Item, class string) g.Node {
	return h.Button(h.Type("button"), h.Class(class),
		g.Attr("data-nav-target", it.ID),
		g.Text(it.Label),
	)
}

// Hero is the overview section.
func Hero(brand catalog.Brand) g.Node {
	return h.Section(h.ID(nav.Overview), h.Class("pt-24 pb-16 bg-gradient-to-br from-blue-900 via-blue-800 to-indigo-900"),
		h.Div(h.Class(container),
			h.Div(h.Class("text-center"),
				h.Div(h.Class("flex justify-center mb-6"),
					h.Div(h.Class("flex items-center space-x-4"),
						Icon(catalog.IconCloud, "h-12 w-12 text-blue-300"),
						Icon(catalog.IconDatabase, "h-12 w-12 text-purple-300"),
						Icon(catalog.IconServer, "h-12 w-12 text-emerald-300"),
					),
				),
				h.H1(h.Class("text-4xl md:text-6xl font-bold text-white mb-6"),
					g.Text(brand.HeroTitle),
					h.Span(h.Class("block text-blue-300"), g.Text(brand.HeroSubtitle)),
				),
				h.P(h.Class("text-xl text-blue-100 max-w-3xl mx-auto leading-relaxed"), g.Text(brand.HeroLead)),
				h.Div(h.Class("mt-8"),
					h.Button(h.Type("button"),
						h.Class("bg-white text-blue-900 px-8 py-3 rounded-full font-semibold hover:bg-blue-50 transition-all duration-200 inline-flex items-center space-x-2"),
						g.Attr("data-nav-target", brand.CallToTarget),
						h.Span(g.Text(brand.CallToAction)),
						Icon(catalog.IconArrow, "h-5 w-5"),
					),
				),
			),
		),
	)
}

// ProviderCard renders one provider entry with its four labelled
// subsections.
func ProviderCard(p catalog.Provider) g.Node {
	return h.Div(h.Class("bg-white rounded-2xl shadow-lg hover:shadow-xl transition-all duration-300 overflow-hidden"),
		g.Attr("data-provider", p.ID),
		h.Div(h.Class(gradient(p.Accent)+" p-6 text-white"),
			h.Div(h.Class("flex items-center space-x-3 mb-3"),
				Icon(p.Icon, "h-8 w-8"),
				h.H3(h.Class("text-2xl font-bold"), g.Text(p.Name)),
			),
			h.P(h.Class("text-sm opacity-90"), g.Text(p.PrimaryStorage)),
		),
		h.Div(h.Class("p-6"),
			cardSection("features", catalog.IconShield, "Key Features", "mb-6",
				h.Ul(h.Class("space-y-2"),
					g.Map(p.Features, func(f string) g.Node {
						return h.Li(h.Class("flex items-start"),
							Icon(catalog.IconCheck, "h-4 w-4 text-emerald-500 mr-2 mt-0.5 flex-shrink-0"),
							h.Span(h.Class("text-sm text-gray-700"), g.Text(f)),
						)
					}),
				),
			),
			cardSection("analytics", catalog.IconDatabase, "Analytics Integration", "mb-6",
				h.P(h.Class("text-sm text-gray-700"), g.Text(p.Analytics)),
			),
			cardSection("pricing", catalog.IconDollar, "Pricing Structure", "mb-6",
				h.P(h.Class("text-sm text-gray-700"), g.Text(p.Pricing)),
			),
			cardSection("strengths", catalog.IconZap, "Strengths for Scale", "",
				h.P(h.Class("text-sm text-gray-700"), g.Text(p.Strengths)),
			),
		),
	)
}

func cardSection(key string, icon catalog.Icon, label, class string, body g.Node) g.Node {
	return h.Div(g.If(class != "", h.Class(class)), g.Attr("data-section", key),
		h.H4(h.Class("font-semibold text-gray-900 mb-3 flex items-center"),
			Icon(icon, "h-5 w-5 mr-2 text-gray-600"),
			g.Text(label),
		),
		body,
	)
}

// ScenarioCard renders a scenario with one block per recommendation.
func ScenarioCard(s catalog.Scenario) g.Node {
	return h.Div(h.Class("bg-white rounded-xl shadow-md hover:shadow-lg transition-all duration-300 p-6"),
		g.Attr("data-scenario", s.Title),
		h.Div(h.Class("flex items-center space-x-3 mb-4"),
			Icon(s.Icon, "h-6 w-6 "+textColor(s.Accent, "600")),
			h.H3(h.Class("text-xl font-semibold text-gray-900"), g.Text(s.Title)),
		),
		h.Div(h.Class("space-y-4"),
			g.Map(s.Recommendations, func(r catalog.Recommendation) g.Node {
				return h.Div(h.Class("border-l-4 border-blue-500 pl-4"), g.Attr("data-recommendation", r.Provider),
					h.H4(h.Class("font-medium text-gray-900"), g.Text(r.Provider)),
					h.P(h.Class("text-sm text-gray-700 mb-1"), g.Text(r.Solution)),
					h.P(h.Class("text-xs text-gray-500"), g.Text(r.Benefit)),
				)
			}),
		),
	)
}

// TierTable renders the storage tier rows as a static table.
func TierTable(rows []catalog.TierRow) g.Node {
	th := func(label string) g.Node {
		return h.Th(h.Class("px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider"), g.Text(label))
	}

	return h.Div(h.Class("bg-white rounded-xl shadow-md overflow-hidden"),
		h.Div(h.Class("px-6 py-4 bg-gray-50 border-b"),
			h.H3(h.Class("text-lg font-semibold text-gray-900"), g.Text("Storage Tiers Comparison")),
		),
		h.Div(h.Class("overflow-x-auto"),
			h.Table(h.Class("w-full"),
				h.THead(h.Class("bg-gray-50"),
					h.Tr(th("Provider"), th("Available Tiers"), th("Key Notes")),
				),
				h.TBody(h.Class("divide-y divide-gray-200"),
					g.Map(rows, func(row catalog.TierRow) g.Node {
						return h.Tr(h.Class("hover:bg-gray-50 transition-colors"),
							h.Td(h.Class("px-6 py-4 whitespace-nowrap font-medium text-gray-900"), g.Text(row.Provider)),
							h.Td(h.Class("px-6 py-4"),
								h.Div(h.Class("flex flex-wrap gap-2"),
									g.Map(row.Tiers, func(t string) g.Node {
										return h.Span(h.Class("inline-block bg-blue-100 text-blue-800 text-xs px-2 py-1 rounded-full"), g.Text(t))
									}),
								),
							),
							h.Td(h.Class("px-6 py-4 text-sm text-gray-700"), g.Text(row.Note)),
						)
					}),
				),
			),
		),
	)
}

// PickCard is one quick recommendation.
func PickCard(p catalog.Pick) g.Node {
	return h.Div(h.Class("bg-white/10 backdrop-blur-sm rounded-xl p-6 hover:bg-white/20 transition-all duration-300"),
		h.H3(h.Class("text-lg font-semibold text-white mb-3"), g.Text(p.Title)),
		h.P(h.Class("text-gray-300 mb-4"), g.Text(p.Body)),
		h.Div(h.Class("flex items-center "+textColor(p.Accent, "300")),
			Icon(catalog.IconCheck, "h-5 w-5 mr-2"),
			h.Span(h.Class("font-medium"), g.Text("Best for: "+p.BestFor)),
		),
	)
}

// CostTipCard is one cost optimisation signal.
func CostTipCard(t catalog.CostTip) g.Node {
	return h.Div(h.Class("bg-white rounded-lg p-6 shadow-md"),
		h.Div(h.Class("flex items-center space-x-3 mb-4"),
			Icon(t.Icon, "h-8 w-8 "+textColor(t.Accent, "600")),
			h.H3(h.Class("text-lg font-semibold text-gray-900"), g.Text(t.Title)),
		),
		h.P(h.Class("text-gray-700"), g.Text(t.Body)),
	)
}

// ProTip is the closing callout.
func ProTip(p catalog.ProTip) g.Node {
	return h.Section(h.Class("py-16 bg-gradient-to-r from-emerald-600 to-teal-600"),
		h.Div(h.Class("max-w-4xl mx-auto px-4 sm:px-6 lg:px-8 text-center"),
			h.H2(h.Class("text-3xl font-bold text-white mb-6"), g.Text(p.Title)),
			h.P(h.Class("text-xl text-emerald-100 leading-relaxed mb-8"),
				g.Map(p.Body, func(s catalog.Segment) g.Node {
					if s.Strong {
						return h.Strong(g.Text(s.Text))
					}
					return g.Text(s.Text)
				}),
			),
			h.Div(h.Class("bg-white/10 backdrop-blur-sm rounded-lg p-6 text-left"),
				h.H3(h.Class("text-lg font-semibold text-white mb-3"), g.Text(p.AsideTitle)),
				h.P(h.Class("text-emerald-100 mb-4"), g.Text(p.AsideBody)),
			),
		),
	)
}

// Footer closes the page.
func Footer(brand catalog.Brand) g.Node {
	return h.Footer(h.Class("bg-gray-900 py-8"),
		h.Div(h.Class(container),
			h.Div(h.Class("text-center"),
				h.Div(h.Class("flex justify-center items-center space-x-2 mb-4"),
					Icon(catalog.IconDatabase, "h-6 w-6 text-blue-400"),
					h.Span(h.Class("text-white font-semibold"), g.Text(brand.Name)),
				),
				h.P(h.Class("text-gray-400"), g.Text(brand.Tagline)),
			),
		),
	)
}

// sectionHeading is the centred title and lead above a grid.
func sectionHeading(title, lead string, dark bool) g.Node {
	titleClass, leadClass := "text-3xl font-bold text-gray-900 mb-4", "text-xl text-gray-600"
	if dark {
		titleClass, leadClass = "text-3xl font-bold text-white mb-4", "text-xl text-gray-300"
	}
	return h.Div(h.Class("text-center mb-12"),
		h.H2(h.Class(titleClass), g.Text(title)),
		h.P(h.Class(leadClass), g.Text(lead)),
	)
}

func hiddenIf(class string, hidden bool) string {
	if hidden {
		return class + " hidden"
	}
	return class
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
