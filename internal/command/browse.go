// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/cloudscale/cloudscale/internal/browse"
	"github.com/cloudscale/cloudscale/internal/config"
	"github.com/cloudscale/cloudscale/internal/log"
	"github.com/cloudscale/cloudscale/internal/meta"
	"github.com/cloudscale/cloudscale/internal/render/text"
)

// browseCommandAction is the action handler for the "browse" subcommand. It
// runs the interactive terminal rendition of the page.
func browseCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "browse") {
		return nil
	}

	// Log lines would paint over the alternate screen.
	if os.Getenv("CLOUDSCALE_LOG_FILE") == "" {
		log.SetOutput(io.Discard)
		defer log.SetOutput(os.Stderr)
	}

	root := NewRoot(cmd)
	defer root.Close()

	return browse.Run(ctx, root, browseOptions(cmd))
}

// browseOptions maps the command's flags onto browse.Options.
func browseOptions(cmd *cli.Command) browse.Options {
	return browse.Options{
		Breakpoint:     cmd.Int("breakpoint"),
		ScrollSteps:    cmd.Int("scroll-steps"),
		ScrollInterval: cmd.Duration("scroll-interval"),
		Theme:          text.LoadTheme(),
	}
}

func browseCommandBuilder(meta meta.Meta) *cli.Command {
	breakpoint, _ := config.GetInt("browse.breakpoint", browse.DefaultBreakpoint)
	steps, _ := config.GetInt("browse.scroll_steps", browse.DefaultScrollSteps)
	interval, err := config.GetDuration("browse.scroll_interval", browse.DefaultScrollInterval)
	if err != nil {
		log.Warnf("browse.scroll_interval: %v", err)
		interval = browse.DefaultScrollInterval
	}

	return &cli.Command{
		Name:      "browse",
		Usage:     "browse the comparison page in the terminal",
		UsageText: "cloudscale browse",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			newTldrFlag(),
			&cli.IntFlag{
				Name:  "breakpoint",
				Usage: "width below which the links collapse behind the menu",
				Value: breakpoint,
			},
			&cli.IntFlag{
				Name:  "scroll-steps",
				Usage: "frames per smooth scroll",
				Value: steps,
			},
			&cli.DurationFlag{
				Name:  "scroll-interval",
				Usage: "delay between smooth scroll frames",
				Value: max(interval, time.Millisecond),
			},
		},
		Action: browseCommandAction,
	}
}
