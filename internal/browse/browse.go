// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package browse

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/cloudscale/cloudscale/internal/log"
	"github.com/cloudscale/cloudscale/internal/page"
)

// ErrNoTerminal is returned when stdout is not a terminal.
var ErrNoTerminal = errors.New("browse requires an interactive terminal")

// Run shows root in the alternate screen until the user quits or ctx is
// done. The root's scroll subscription is released on the way out.
func Run(ctx context.Context, root *page.Root, opts Options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNoTerminal
	}

	m := New(root, opts)
	defer m.Close()

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	log.Debugf("browse start: breakpoint=%d steps=%d", m.opts.Breakpoint, m.opts.ScrollSteps)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}
