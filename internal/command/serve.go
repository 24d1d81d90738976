// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/cloudscale/cloudscale/internal/config"
	"github.com/cloudscale/cloudscale/internal/meta"
	"github.com/cloudscale/cloudscale/internal/render/html"
	"github.com/cloudscale/cloudscale/internal/server"
)

// serveCommandAction is the action handler for the "serve" subcommand. It
// serves the page until interrupted.
func serveCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "serve") {
		return nil
	}

	root := NewRoot(cmd)
	defer root.Close()

	srv, err := server.New(root, cmd.String("addr"), cmd.Duration("shutdown"), html.Options{
		Title:    cmd.String("title"),
		Tailwind: cmd.String("tailwind"),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Debugf("serve: addr=%s shutdown=%s", srv.Addr, srv.ShutdownTimeout)
	return srv.ListenAndServe(ctx)
}

func serveCommandBuilder(meta meta.Meta) *cli.Command {
	shutdown, err := config.GetDuration("serve.shutdown", server.DefaultShutdownTimeout)
	if err != nil {
		log.Warnf("serve.shutdown: %v", err)
		shutdown = server.DefaultShutdownTimeout
	}

	return &cli.Command{
		Name:      "serve",
		Usage:     "serve the comparison page over HTTP",
		UsageText: "cloudscale serve [--addr HOST:PORT]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			newTldrFlag(),
			NewAddrFlag("serve", meta.Config.Source),
			&cli.DurationFlag{
				Name:  "shutdown",
				Usage: "graceful shutdown timeout",
				Value: shutdown,
			},
			NewConfigStringFlag("title", "document title, defaults to the brand name", "", "serve", meta.Config.Source),
			NewTailwindFlag("serve", meta.Config.Source),
		},
		Action: serveCommandAction,
	}
}
