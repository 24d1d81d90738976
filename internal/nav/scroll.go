// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package nav

import (
	"sync"
)

// Scroller smooth-scrolls to a named target. ScrollTo reports whether the
// target exists; when it does not, nothing happens.
type Scroller interface {
	ScrollTo(target string) bool
}

// ScrollerFunc adapts a function to Scroller.
type ScrollerFunc func(target string) bool

// ScrollTo calls f(target).
func (f ScrollerFunc) ScrollTo(target string) bool { return f(target) }

// NopScroller knows no targets.
var NopScroller Scroller = ScrollerFunc(func(string) bool { return false })

// AnchorScroller resolves targets against a table of anchor offsets and hands
// the offset to Scroll. The unit of the offset belongs to the renderer (lines
// in the terminal).
type AnchorScroller struct {
	Anchors map[string]int
	Scroll  func(offset int)
}

// ScrollTo implements Scroller.
func (a AnchorScroller) ScrollTo(target string) bool {
	offset, ok := a.Anchors[target]
	if !ok {
		return false
	}
	if a.Scroll != nil {
		a.Scroll(offset)
	}
	return true
}

// ScrollBus fans page scroll events out to subscribers. Subscriptions are
// scoped: Subscribe returns the release func and releasing twice is safe.
type ScrollBus struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

// Subscribe registers fn for scroll events.
func (b *ScrollBus) Subscribe(fn func()) (release func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs == nil {
		b.subs = make(map[int]func())
	}
	id := b.next
	b.next++
	b.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// Publish delivers one scroll event. Subscribers may release themselves from
// inside the callback.
func (b *ScrollBus) Publish() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Len returns the number of live subscriptions.
func (b *ScrollBus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
