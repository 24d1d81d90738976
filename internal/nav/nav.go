// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package nav

import (
	"github.com/cloudscale/cloudscale/internal/log"
)

// Anchor identifiers used as smooth-scroll targets.
const (
	Overview        = "overview"
	AWS             = "aws"
	Azure           = "azure"
	GCP             = "gcp"
	Scenarios       = "scenarios"
	Recommendations = "recommendations"
)

// Item is one navigation link.
type Item struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Items returns the navigation links in bar order.
func Items() []Item {
	return []Item{
		{ID: Overview, Label: "Overview"},
		{ID: AWS, Label: "AWS"},
		{ID: Azure, Label: "Azure"},
		{ID: GCP, Label: "Google Cloud"},
		{ID: Scenarios, Label: "Scenarios"},
		{ID: Recommendations, Label: "Recommendations"},
	}
}

// Menu is the state-and-setter pair for the mobile menu. The page root owns
// the boolean; the bar only reads and writes it through this pair.
type Menu struct {
	Open func() bool
	Set  func(open bool)
}

// Bar wires navigation clicks, the menu toggle and scroll events onto a Menu
// and a Scroller.
type Bar struct {
	items    []Item
	menu     Menu
	scroller Scroller
}

// NewBar returns a bar over the standard Items. A nil scroller behaves as if
// no target exists.
func NewBar(menu Menu, scroller Scroller) *Bar {
	if scroller == nil {
		scroller = NopScroller
	}
	return &Bar{
		items:    Items(),
		menu:     menu,
		scroller: scroller,
	}
}

// Items returns the bar's links.
func (b *Bar) Items() []Item {
	out := make([]Item, len(b.items))
	copy(out, b.items)
	return out
}

// Open reports whether the mobile menu is open.
func (b *Bar) Open() bool {
	return b.menu.Open()
}

// Select scrolls to the section with the given id and closes the menu. A
// missing target is a no-op: nothing scrolls and the menu is left as is.
// Select reports whether the target was found.
func (b *Bar) Select(id string) bool {
	if !b.scroller.ScrollTo(id) {
		log.Debugf("nav target not found: id=%s", id)
		return false
	}
	log.Debugf("nav select: id=%s", id)
	b.menu.Set(false)
	return true
}

// SelectIndex selects the i-th item. Out of range indexes are ignored.
func (b *Bar) SelectIndex(i int) bool {
	if i < 0 || i >= len(b.items) {
		return false
	}
	return b.Select(b.items[i].ID)
}

// Toggle flips the mobile menu.
func (b *Bar) Toggle() {
	b.menu.Set(!b.menu.Open())
	log.Tracef("menu toggled: open=%v", b.menu.Open())
}

// OnScroll handles a page scroll event. It only ever closes the menu.
func (b *Bar) OnScroll() {
	if b.menu.Open() {
		log.Tracef("scroll closed menu")
		b.menu.Set(false)
	}
}
