// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package browse

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cloudscale/cloudscale/internal/log"
	"github.com/cloudscale/cloudscale/internal/nav"
	"github.com/cloudscale/cloudscale/internal/page"
	"github.com/cloudscale/cloudscale/internal/render/text"
)

// Options tunes the terminal rendition.
type Options struct {
	// Breakpoint is the width below which the inline links collapse behind
	// the menu toggle.
	Breakpoint int
	// ScrollSteps is the number of frames a smooth scroll takes.
	ScrollSteps int
	// ScrollInterval is the delay between frames.
	ScrollInterval time.Duration
	Theme          text.Theme
}

const (
	DefaultBreakpoint     = 80
	DefaultScrollSteps    = 6
	DefaultScrollInterval = 16 * time.Millisecond
	wheelLines            = 3
)

func (o Options) withDefaults() Options {
	if o.Breakpoint <= 0 {
		o.Breakpoint = DefaultBreakpoint
	}
	if o.ScrollSteps <= 0 {
		o.ScrollSteps = DefaultScrollSteps
	}
	if o.ScrollInterval <= 0 {
		o.ScrollInterval = DefaultScrollInterval
	}
	if o.Theme.Accents == nil {
		o.Theme = text.DefaultTheme()
	}
	return o
}

// tickMsg advances the smooth scroll identified by seq.
type tickMsg struct {
	seq int
}

type animation struct {
	seq      int
	from, to int
	step     int
	active   bool
}

// Model is the bubbletea model. It is used through a pointer because the page
// root's scroller calls back into it.
type Model struct {
	root *page.Root
	opts Options
	keys keyMap
	help help.Model
	vp   viewport.Model
	doc  text.Document

	width, height int
	ready         bool
	cursor        int
	anim          animation
	// pending is the anchor line a nav choice asked for during the current
	// update, or -1.
	pending int
}

// New binds a model to root. The model installs itself as the root's
// scroller.
func New(root *page.Root, opts Options) *Model {
	m := &Model{
		root:    root,
		opts:    opts.withDefaults(),
		keys:    defaultKeys(),
		help:    help.New(),
		pending: -1,
	}
	root.SetScroller(nav.ScrollerFunc(m.scrollTo))
	return m
}

// scrollTo resolves target against the current layout and records the line
// to animate toward.
func (m *Model) scrollTo(target string) bool {
	return nav.AnchorScroller{
		Anchors: m.doc.Anchors,
		Scroll:  func(off int) { m.pending = off },
	}.ScrollTo(target)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil

	case tickMsg:
		return m, m.advance(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollBy(-wheelLines)
		case tea.MouseButtonWheelDown:
			m.scrollBy(wheelLines)
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.Close()
			return m, tea.Quit
		}
		m.handleKey(msg)
		m.resize()
		return m, m.startPending()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	bar := m.root.Bar()
	switch {
	case key.Matches(msg, m.keys.Menu):
		bar.Toggle()
		m.cursor = 0
	case key.Matches(msg, m.keys.Next):
		if bar.Open() {
			m.cursor = (m.cursor + 1) % len(bar.Items())
		}
	case key.Matches(msg, m.keys.Prev):
		if bar.Open() {
			n := len(bar.Items())
			m.cursor = (m.cursor + n - 1) % n
		}
	case key.Matches(msg, m.keys.Choose):
		if bar.Open() {
			bar.SelectIndex(m.cursor)
		}
	case key.Matches(msg, m.keys.Jump):
		bar.SelectIndex(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.CTA):
		bar.Select(m.root.Catalog().Brand.CallToTarget)
	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-max(m.vp.Height, 1))
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(max(m.vp.Height, 1))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
}

// scrollBy is a user scroll. It cancels any running animation and delivers a
// scroll event to the page root.
func (m *Model) scrollBy(n int) {
	m.anim.active = false
	m.vp.SetYOffset(m.vp.YOffset + n)
	m.root.Scrolled()
	m.resize()
}

// startPending begins the animation a nav choice asked for, if any.
func (m *Model) startPending() tea.Cmd {
	if m.pending < 0 {
		return nil
	}
	to := m.pending
	m.pending = -1

	m.anim = animation{
		seq:    m.anim.seq + 1,
		from:   m.vp.YOffset,
		to:     to,
		active: true,
	}
	log.Debugf("smooth scroll: from=%d to=%d", m.anim.from, to)
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	seq := m.anim.seq
	return tea.Tick(m.opts.ScrollInterval, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

// advance moves one frame. Ticks from a superseded animation are dropped.
func (m *Model) advance(msg tickMsg) tea.Cmd {
	if !m.anim.active || msg.seq != m.anim.seq {
		return nil
	}
	m.anim.step++
	m.vp.SetYOffset(frame(m.anim.from, m.anim.to, m.anim.step, m.opts.ScrollSteps))
	if m.anim.step >= m.opts.ScrollSteps {
		m.anim.active = false
		return nil
	}
	return m.tick()
}

// frame is the offset at step of steps, eased out cubically.
func frame(from, to, step, steps int) int {
	if step >= steps {
		return to
	}
	t := float64(step) / float64(steps)
	eased := 1 - math.Pow(1-t, 3)
	return from + int(math.Round(float64(to-from)*eased))
}

// relayout renders the body for the current width and rebuilds the viewport.
func (m *Model) relayout() {
	m.doc = text.Layout(m.root, m.width, m.opts.Theme)
	if !m.ready {
		m.vp = viewport.New(m.width, 1)
		m.ready = true
	}
	m.vp.Width = m.width
	m.vp.SetContent(m.doc.Body)
	m.resize()
}

// resize fits the viewport between the header and the help line. The header
// grows while the narrow menu is open.
func (m *Model) resize() {
	if !m.ready {
		return
	}
	used := lipgloss.Height(m.header()) + lipgloss.Height(m.help.View(m.keys))
	m.vp.Height = max(m.height-used, 1)
	m.vp.SetYOffset(m.vp.YOffset)
}

func (m *Model) header() string {
	return text.Header(text.HeaderState{
		Brand:      m.root.Catalog().Brand,
		Items:      m.root.Bar().Items(),
		Open:       m.root.MenuOpen(),
		Cursor:     m.cursor,
		Width:      m.width,
		Breakpoint: m.opts.Breakpoint,
	}, m.opts.Theme)
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "\n  Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.header(), m.vp.View(), m.help.View(m.keys))
}

// Offset returns the viewport's top line.
func (m *Model) Offset() int {
	return m.vp.YOffset
}

// Close releases the page root's scroll subscription.
func (m *Model) Close() {
	m.root.Close()
}
