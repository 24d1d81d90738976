// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package html

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xhtml "golang.org/x/net/html"

	"github.com/cloudscale/cloudscale/internal/catalog"
	"github.com/cloudscale/cloudscale/internal/page"
)

func renderDoc(t *testing.T, root *page.Root, opts Options) (*xhtml.Node, string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, root, opts))
	doc, err := xhtml.Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)
	return doc, buf.String()
}

func attr(n *xhtml.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func findAll(n *xhtml.Node, match func(*xhtml.Node) bool) []*xhtml.Node {
	var out []*xhtml.Node
	var walk func(*xhtml.Node)
	walk = func(n *xhtml.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func byTag(tag string) func(*xhtml.Node) bool {
	return func(n *xhtml.Node) bool { return n.Type == xhtml.ElementNode && n.Data == tag }
}

func byAttr(key string) func(*xhtml.Node) bool {
	return func(n *xhtml.Node) bool {
		_, ok := attr(n, key)
		return n.Type == xhtml.ElementNode && ok
	}
}

func byID(id string) func(*xhtml.Node) bool {
	return func(n *xhtml.Node) bool {
		v, ok := attr(n, "id")
		return n.Type == xhtml.ElementNode && ok && v == id
	}
}

func text(n *xhtml.Node) string {
	var sb strings.Builder
	var walk func(*xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func hasClass(n *xhtml.Node, class string) bool {
	v, _ := attr(n, "class")
	for _, f := range strings.Fields(v) {
		if f == class {
			return true
		}
	}
	return false
}

func TestEveryAnchorIsPresentOnce(t *testing.T) {
	doc, _ := renderDoc(t, page.New(), Options{})
	for _, id := range []string{"overview", "aws", "azure", "gcp", "scenarios", "recommendations"} {
		assert.Len(t, findAll(doc, byID(id)), 1, id)
	}
}

func TestNavTargetsResolve(t *testing.T) {
	doc, _ := renderDoc(t, page.New(), Options{})
	buttons := findAll(doc, byAttr("data-nav-target"))

	// Six desktop, six mobile and the hero call to action.
	require.Len(t, buttons, 13)
	for _, b := range buttons {
		target, _ := attr(b, "data-nav-target")
		assert.Len(t, findAll(doc, byID(target)), 1, target)
	}
}

func TestHeroCallToActionTargetsAWS(t *testing.T) {
	doc, _ := renderDoc(t, page.New(), Options{})
	hero := findAll(doc, byID("overview"))
	require.Len(t, hero, 1)

	cta := findAll(hero[0], byAttr("data-nav-target"))
	require.Len(t, cta, 1)
	target, _ := attr(cta[0], "data-nav-target")
	assert.Equal(t, "aws", target)
	assert.Contains(t, text(cta[0]), "Start Comparison")
}

func TestProviderCards(t *testing.T) {
	doc, _ := renderDoc(t, page.New(), Options{})
	cards := findAll(doc, byAttr("data-provider"))
	require.Len(t, cards, 3)

	for i, p := range catalog.Providers() {
		id, _ := attr(cards[i], "data-provider")
		assert.Equal(t, p.ID, id)

		body := text(cards[i])
		assert.Contains(t, body, p.Name)
		assert.Contains(t, body, p.PrimaryStorage)
		for _, label := range []string{"Key Features", "Analytics Integration", "Pricing Structure", "Strengths for Scale"} {
			assert.Contains(t, body, label)
		}
		assert.Len(t, findAll(cards[i], byTag("li")), len(p.Features))
	}
}

func TestProviderSectionsStackFullWidth(t *testing.T) {
	doc, _ := renderDoc(t, page.New(), Options{})

	var order []string
	for _, sec := range findAll(doc, byTag("section")) {
		if id, ok := attr(sec, "id"); ok {
			order = append(order, id)
		}
	}
	assert.Equal(t, []string{"overview", "aws", "azure", "gcp", "scenarios", "recommendations"}, order)

	for i, p := range catalog.Providers() {
		sec := findAll(doc, byID(p.ID))
		require.Len(t, sec, 1)
		assert.Equal(t, "section", sec[0].Data, p.ID)
		assert.Equal(t, i%2 == 1, hasClass(sec[0], "bg-white"), p.ID)

		cards := findAll(sec[0], byAttr("data-provider"))
		require.Len(t, cards, 1, p.ID)
		id, _ := attr(cards[0], "data-provider")
		assert.Equal(t, p.ID, id)
	}
	assert.Empty(t, findAll(doc, func(n *xhtml.Node) bool { return hasClass(n, "lg:grid-cols-3") && len(findAll(n, byAttr("data-provider"))) > 0 }))
}

func TestNavScriptBehaviour(t *testing.T) {
	js := NavScript()

	// Missing targets are a silent no-op.
	assert.Regexp(t, `if \(!el\) \{\s*return;\s*\}`, js)
	assert.Contains(t, js, `scrollIntoView({ behavior: "smooth" })`)

	// The scroll listener only lives while the menu is open and scrolling
	// closes the menu.
	assert.Regexp(t, `if \(open\) \{\s*window\.addEventListener\("scroll", onScroll`, js)
	assert.Regexp(t, `\} else \{\s*window\.removeEventListener\("scroll", onScroll\);`, js)
	assert.Regexp(t, `function onScroll\(\) \{\s*setOpen\(false\);`, js)
	assert.Contains(t, js, `window.addEventListener("pagehide"`)

	// Toggle flips the menu.
	assert.Contains(t, js, "setOpen(!open);")
}

func TestScenarioRecommendationsInProviderOrder(t *testing.T) {
	doc, _ := renderDoc(t, page.New(), Options{})
	scenarios := findAll(doc, byAttr("data-scenario"))
	require.Len(t, scenarios, len(catalog.Scenarios()))

	for _, s := range scenarios {
		var got []string
		for _, r := range findAll(s, byAttr("data-recommendation")) {
			v, _ := attr(r, "data-recommendation")
			got = append(got, v)
		}
		assert.Equal(t, catalog.ProviderOrder, got)
	}
}

func TestTierTableRows(t *testing.T) {
	doc, _ := renderDoc(t, page.New(), Options{})
	tbody := findAll(doc, byTag("tbody"))
	require.Len(t, tbody, 1)

	rows := findAll(tbody[0], byTag("tr"))
	require.Len(t, rows, 3)
	for i, row := range catalog.Tiers() {
		assert.Contains(t, text(rows[i]), row.Provider)
		assert.Len(t, findAll(rows[i], byTag("span")), len(row.Tiers))
	}
}

func TestMenuClosedByDefault(t *testing.T) {
	doc, _ := renderDoc(t, page.New(), Options{})
	menu := findAll(doc, byID("mobile-menu"))
	require.Len(t, menu, 1)
	assert.True(t, hasClass(menu[0], "hidden"))

	toggle := findAll(doc, byAttr("data-menu-toggle"))
	require.Len(t, toggle, 1)
	expanded, _ := attr(toggle[0], "aria-expanded")
	assert.Equal(t, "false", expanded)
}

func TestMenuOpenRendersExpanded(t *testing.T) {
	root := page.New()
	root.Bar().Toggle()
	defer root.Close()

	doc, _ := renderDoc(t, root, Options{})
	menu := findAll(doc, byID("mobile-menu"))
	require.Len(t, menu, 1)
	assert.False(t, hasClass(menu[0], "hidden"))

	for _, icon := range findAll(doc, byAttr("data-menu-icon")) {
		which, _ := attr(icon, "data-menu-icon")
		assert.Equal(t, which == "open", hasClass(icon, "hidden"), which)
	}
}

func TestScriptModes(t *testing.T) {
	t.Run("external", func(t *testing.T) {
		doc, _ := renderDoc(t, page.New(), Options{})
		var srcs []string
		for _, s := range findAll(doc, byTag("script")) {
			if v, ok := attr(s, "src"); ok {
				srcs = append(srcs, v)
			}
		}
		assert.Equal(t, []string{ScriptPath}, srcs)
	})

	t.Run("inline", func(t *testing.T) {
		_, raw := renderDoc(t, page.New(), Options{InlineScript: true, Tailwind: DefaultTailwind})
		assert.Contains(t, raw, "data-menu-toggle")
		assert.Contains(t, raw, `src="`+DefaultTailwind+`"`)
		assert.NotContains(t, raw, `src="`+ScriptPath+`"`)
		assert.Contains(t, raw, NavScript())
	})
}

func TestTitleDefaultsToBrand(t *testing.T) {
	doc, _ := renderDoc(t, page.New(), Options{})
	title := findAll(doc, byTag("title"))
	require.Len(t, title, 1)
	assert.Equal(t, "CloudScale", text(title[0]))

	doc, _ = renderDoc(t, page.New(), Options{Title: "Storage"})
	assert.Equal(t, "Storage", text(findAll(doc, byTag("title"))[0]))
}

func TestIconUnknownRendersEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Icon("nope", "h-4").Render(&buf))
	assert.Contains(t, buf.String(), `data-icon="nope"`)
	assert.True(t, strings.HasSuffix(buf.String(), "></svg>"))
}

func TestStaticServesScript(t *testing.T) {
	b, err := Static().Open("nav.js")
	require.NoError(t, err)
	defer b.Close()
	assert.NotEmpty(t, NavScript())
}
