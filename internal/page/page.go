// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package page is the page root. It owns the menu state, holds the catalog
// every section is fed from, and fixes the document order of the sections.
package page

import (
	"github.com/cloudscale/cloudscale/internal/catalog"
	"github.com/cloudscale/cloudscale/internal/log"
	"github.com/cloudscale/cloudscale/internal/nav"
)

// Kind identifies a section of the document.
type Kind int

const (
	KindHero Kind = iota
	KindProvider
	KindScenarios
	KindTiers
	KindPicks
	KindCostTips
	KindProTip
	KindFooter
)

var kindNames = map[Kind]string{
	KindHero:      "hero",
	KindProvider:  "provider",
	KindScenarios: "scenarios",
	KindTiers:     "tiers",
	KindPicks:     "recommendations",
	KindCostTips:  "cost-tips",
	KindProTip:    "pro-tip",
	KindFooter:    "footer",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Section is one block of the document. Anchor is empty for sections that
// are not scroll targets. Provider is only set for KindProvider.
type Section struct {
	Kind     Kind
	Anchor   string
	Provider catalog.Provider
}

// Root is the page root.
type Root struct {
	snap     catalog.Snapshot
	open     bool
	bus      nav.ScrollBus
	release  func()
	scroller nav.Scroller
	bar      *nav.Bar
}

// Option customises a Root.
type Option func(*Root)

// WithScroller sets the scroll capability the navigation bar drives.
func WithScroller(s nav.Scroller) Option {
	return func(r *Root) { r.scroller = s }
}

// WithSnapshot replaces the built-in catalog. Tests use it.
func WithSnapshot(s catalog.Snapshot) Option {
	return func(r *Root) { r.snap = s }
}

// New returns a page root with the menu closed.
func New(opts ...Option) *Root {
	r := &Root{snap: catalog.Load()}
	for _, opt := range opts {
		opt(r)
	}
	r.bar = nav.NewBar(nav.Menu{Open: r.MenuOpen, Set: r.setMenuOpen}, scrollerProxy{r})
	return r
}

// scrollerProxy defers to the root's current scroller so it can be swapped
// after the bar is built.
type scrollerProxy struct{ r *Root }

func (p scrollerProxy) ScrollTo(target string) bool {
	if p.r.scroller == nil {
		return false
	}
	return p.r.scroller.ScrollTo(target)
}

// SetScroller swaps the scroll capability. Renderers that only know their
// anchor offsets after layout use this.
func (r *Root) SetScroller(s nav.Scroller) {
	r.scroller = s
}

// Catalog returns the snapshot the page is rendered from.
func (r *Root) Catalog() catalog.Snapshot {
	return r.snap
}

// Bar returns the navigation bar bound to this root's menu state.
func (r *Root) Bar() *nav.Bar {
	return r.bar
}

// MenuOpen reports whether the mobile menu is open.
func (r *Root) MenuOpen() bool {
	return r.open
}

// setMenuOpen is the only writer of the menu boolean. While the menu is open
// the root holds a scroll subscription that closes it; the subscription is
// released as soon as the menu closes.
func (r *Root) setMenuOpen(open bool) {
	if r.open == open {
		return
	}
	r.open = open
	log.Tracef("menu state: open=%v", open)

	if open && r.release == nil {
		r.release = r.bus.Subscribe(r.bar.OnScroll)
		return
	}
	if !open && r.release != nil {
		r.release()
		r.release = nil
	}
}

// Scrolled delivers a page scroll event.
func (r *Root) Scrolled() {
	r.bus.Publish()
}

// Subscriptions returns the number of live scroll subscriptions.
func (r *Root) Subscriptions() int {
	return r.bus.Len()
}

// Close releases the scroll subscription. The menu keeps whatever state it
// was in.
func (r *Root) Close() {
	if r.release != nil {
		r.release()
		r.release = nil
	}
}

// Sections returns the document in order: hero, the three providers,
// scenarios, tiers table, recommendations, cost tips, pro tip, footer.
func (r *Root) Sections() []Section {
	out := []Section{{Kind: KindHero, Anchor: nav.Overview}}
	for _, p := range r.snap.Providers {
		out = append(out, Section{Kind: KindProvider, Anchor: p.ID, Provider: p})
	}
	return append(out,
		Section{Kind: KindScenarios, Anchor: nav.Scenarios},
		Section{Kind: KindTiers},
		Section{Kind: KindPicks, Anchor: nav.Recommendations},
		Section{Kind: KindCostTips},
		Section{Kind: KindProTip},
		Section{Kind: KindFooter},
	)
}

// Anchors returns the anchor ids present in the document, in order.
func (r *Root) Anchors() []string {
	var out []string
	for _, s := range r.Sections() {
		if s.Anchor != "" {
			out = append(out, s.Anchor)
		}
	}
	return out
}
