// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/cloudscale/cloudscale/internal/catalog"
	"github.com/cloudscale/cloudscale/internal/differ"
	"github.com/cloudscale/cloudscale/internal/meta"
)

// ErrCatalogsDiffer is returned by diff --exit-code when the snapshots differ.
var ErrCatalogsDiffer = errors.New("catalogs differ")

// exportCommandAction is the action handler for the "export" subcommand. It
// writes the catalog snapshot as indented JSON or YAML.
func exportCommandAction(ctx context.Context, cmd *cli.Command) error {
	snap := builtIn(cmd)

	var data []byte
	var err error
	switch cmd.String("format") {
	case "yaml":
		data, err = yaml.Marshal(snap)
	default:
		data, err = json.MarshalIndent(snap, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	return writeOut(cmd, cmd.String("out"), data)
}

func exportCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "export the catalog snapshot",
		UsageText: "cloudscale export [--format json|yaml] [--out FILE]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"F"},
				Usage:   "json or yaml",
				Value:   "json",
				Validator: func(value string) error {
					return FlagValidators(value, ExportFormatValidator)
				},
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"O"},
				Usage:   "output file, - for stdout",
				Value:   "-",
			},
		},
		Action: exportCommandAction,
	}
}

// readSnapshot loads a JSON snapshot from path, or stdin for "-".
func readSnapshot(cmd *cli.Command, path string) ([]byte, error) {
	if path == "-" {
		r := cmd.Root().Reader
		if r == nil {
			r = os.Stdin
		}
		return io.ReadAll(r)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return data, nil
}

// diffCommandAction is the action handler for the "diff" subcommand. With
// one argument the snapshot is compared against the built-in catalog, with
// two the snapshots are compared with each other.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("usage: %s", cmd.UsageText)
	}

	left, err := readSnapshot(cmd, args[0])
	if err != nil {
		return err
	}

	var right []byte
	if len(args) == 2 {
		right, err = readSnapshot(cmd, args[1])
	} else {
		right, err = json.Marshal(builtIn(cmd))
	}
	if err != nil {
		return err
	}

	changed, err := differ.Diff(stdout(cmd), left, right, differ.Options{
		Ignore:   differ.ParseIgnore(cmd.String("ignore")),
		Coloring: cmd.Bool("color"),
	})
	if err != nil {
		return err
	}
	log.Debugf("diff: changed=%t", changed)

	if changed && cmd.Bool("exit-code") {
		return ErrCatalogsDiffer
	}
	return nil
}

// builtIn is the catalog the commands run with.
func builtIn(cmd *cli.Command) catalog.Snapshot {
	if snap := GetMeta(cmd).Catalog; len(snap.Providers) > 0 {
		return snap
	}
	return catalog.Load()
}

func diffCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "compare a catalog snapshot with the built-in catalog",
		UsageText: "cloudscale diff SNAPSHOT [SNAPSHOT]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "ignore",
				Usage: "comma-separated top level keys to skip, e.g. brand,proTip",
			},
			&cli.BoolFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Usage:   "enable colored diff output",
			},
			&cli.BoolFlag{
				Name:  "exit-code",
				Usage: "fail when the snapshots differ",
			},
		},
		Action: diffCommandAction,
	}
}
