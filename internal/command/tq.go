// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/cloudscale/cloudscale/internal/meta"
)

var tqDefaultAttrs = []string{"provider", "count", "tiers"}

// tierRow is the JSON:API form of a storage tier row.
type tierRow struct {
	ID       string   `jsonapi:"primary,tiers" doc:"provider anchor id"`
	Provider string   `jsonapi:"attr,provider" doc:"storage service"`
	Count    int      `jsonapi:"attr,count" doc:"number of tiers"`
	Tiers    []string `jsonapi:"attr,tiers" doc:"storage classes, hottest first (list)"`
	Note     string   `jsonapi:"attr,note" doc:"tiering notes"`
}

// tqCommandAction is the action handler for the "tq" subcommand. Rows are
// keyed by the provider anchor id when the tier table lines up with the
// provider list, which the catalog guarantees.
func tqCommandAction(ctx context.Context, cmd *cli.Command) error {
	fn := func(_ context.Context, cmd *cli.Command) ([]*tierRow, error) {
		snap := GetMeta(cmd).Catalog
		rows := make([]*tierRow, 0, len(snap.Tiers))
		for i, t := range snap.Tiers {
			id := slug(t.Provider)
			if i < len(snap.Providers) {
				id = snap.Providers[i].ID
			}
			rows = append(rows, &tierRow{
				ID:       id,
				Provider: t.Provider,
				Count:    len(t.Tiers),
				Tiers:    t.Tiers,
				Note:     t.Note,
			})
		}
		return rows, nil
	}

	return NewQueryActionRunner("tq", tqDefaultAttrs, fn).Run(ctx, cmd)
}

// tqCommandBuilder constructs the cli.Command for "tq".
func tqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:   "tq",
		Usage:  "storage tier query",
		Action: tqCommandAction,
		Meta:   meta,
	}).Build()
}
