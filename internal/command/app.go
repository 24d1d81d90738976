// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/cloudscale/cloudscale/internal/catalog"
	"github.com/cloudscale/cloudscale/internal/config"
	"github.com/cloudscale/cloudscale/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the cloudscale
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}
	config.Config.Namespace = ns

	// A missing config file is fine; every setting has a default.
	cfg, err := config.Load()
	if err != nil {
		log.Debugf("config not loaded: %v", err)
	}

	snap := catalog.Load()
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		Catalog:     snap,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "cloudscale",
		Usage: "Cloud storage comparison",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "cloudscale version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		browseCommandBuilder(meta),
		diffCommandBuilder(meta),
		exportCommandBuilder(meta),
		pqCommandBuilder(meta),
		publishCommandBuilder(meta),
		renderCommandBuilder(meta),
		scqCommandBuilder(meta),
		serveCommandBuilder(meta),
		tqCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
