// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package html

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/cloudscale/cloudscale/internal/catalog"
)

const (
	iconMenu catalog.Icon = "menu"
	iconX    catalog.Icon = "x"
)

// iconPaths are 24x24 stroke glyphs.
var iconPaths = map[catalog.Icon]string{
	catalog.IconCloud:    `<path d="M17.5 19H9a7 7 0 1 1 6.71-9h1.79a4.5 4.5 0 1 1 0 9Z"/>`,
	catalog.IconServer:   `<rect width="20" height="8" x="2" y="2" rx="2" ry="2"/><rect width="20" height="8" x="2" y="14" rx="2" ry="2"/><line x1="6" x2="6.01" y1="6" y2="6"/><line x1="6" x2="6.01" y1="18" y2="18"/>`,
	catalog.IconDatabase: `<ellipse cx="12" cy="5" rx="9" ry="3"/><path d="M3 5V19A9 3 0 0 0 21 19V5"/><path d="M3 12A9 3 0 0 0 21 12"/>`,
	catalog.IconZap:      `<path d="M4 14a1 1 0 0 1-.78-1.63l9.9-10.2a.5.5 0 0 1 .86.46l-1.92 6.02A1 1 0 0 0 13 10h7a1 1 0 0 1 .78 1.63l-9.9 10.2a.5.5 0 0 1-.86-.46l1.92-6.02A1 1 0 0 0 11 14z"/>`,
	catalog.IconShield:   `<path d="M20 13c0 5-3.5 7.5-7.66 8.95a1 1 0 0 1-.67-.01C7.5 20.5 4 18 4 13V6a1 1 0 0 1 1-1c2 0 4.5-1.2 6.24-2.72a1.17 1.17 0 0 1 1.52 0C14.51 3.81 17 5 19 5a1 1 0 0 1 1 1z"/>`,
	catalog.IconDollar:   `<line x1="12" x2="12" y1="2" y2="22"/><path d="M17 5H9.5a3.5 3.5 0 0 0 0 7h5a3.5 3.5 0 0 1 0 7H6"/>`,
	catalog.IconCheck:    `<circle cx="12" cy="12" r="10"/><path d="m9 12 2 2 4-4"/>`,
	catalog.IconArrow:    `<path d="M5 12h14"/><path d="m12 5 7 7-7 7"/>`,
	iconMenu:             `<line x1="4" x2="20" y1="12" y2="12"/><line x1="4" x2="20" y1="6" y2="6"/><line x1="4" x2="20" y1="18" y2="18"/>`,
	iconX:                `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`,
}

// Icon renders the named glyph as an inline SVG. Unknown names render an
// empty SVG of the same size.
func Icon(name catalog.Icon, class string, extra ...g.Node) g.Node {
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.Attr("data-icon", string(name)),
		h.Class(class),
		g.Group(extra),
		g.Raw(iconPaths[name]),
	)
}

var gradients = map[catalog.Accent]string{
	catalog.AccentOrange: "bg-gradient-to-r from-orange-500 to-orange-600",
	catalog.AccentBlue:   "bg-gradient-to-r from-blue-600 to-indigo-600",
	catalog.AccentGreen:  "bg-gradient-to-r from-green-500 to-emerald-600",
	catalog.AccentPurple: "bg-gradient-to-r from-purple-500 to-purple-600",
	catalog.AccentRed:    "bg-gradient-to-r from-red-500 to-red-600",
}

func gradient(a catalog.Accent) string {
	if c, ok := gradients[a]; ok {
		return c
	}
	return "bg-gradient-to-r from-gray-600 to-gray-700"
}

// textColor maps an accent to a Tailwind text colour at the given shade.
func textColor(a catalog.Accent, shade string) string {
	if a == "" {
		return "text-gray-600"
	}
	return "text-" + string(a) + "-" + shade
}
