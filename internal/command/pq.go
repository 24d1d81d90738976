// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/cloudscale/cloudscale/internal/meta"
)

var pqDefaultAttrs = []string{".id", "name", "storage::40"}

// providerRow is the JSON:API form of a catalog provider.
type providerRow struct {
	ID        string   `jsonapi:"primary,providers" doc:"anchor id on the page (aws, azure, gcp)"`
	Name      string   `jsonapi:"attr,name" doc:"provider name"`
	Icon      string   `jsonapi:"attr,icon" doc:"card icon"`
	Storage   string   `jsonapi:"attr,storage" doc:"primary storage offering"`
	Features  []string `jsonapi:"attr,features" doc:"key features (list)"`
	Analytics string   `jsonapi:"attr,analytics" doc:"analytics integration"`
	Pricing   string   `jsonapi:"attr,pricing" doc:"pricing structure"`
	Strengths string   `jsonapi:"attr,strengths" doc:"strengths for scale"`
	Accent    string   `jsonapi:"attr,accent" doc:"card colour"`
}

// pqCommandAction is the action handler for the "pq" subcommand. It lists
// the catalog providers in page order.
func pqCommandAction(ctx context.Context, cmd *cli.Command) error {
	fn := func(_ context.Context, cmd *cli.Command) ([]*providerRow, error) {
		snap := GetMeta(cmd).Catalog
		rows := make([]*providerRow, 0, len(snap.Providers))
		for _, p := range snap.Providers {
			rows = append(rows, &providerRow{
				ID:        p.ID,
				Name:      p.Name,
				Icon:      string(p.Icon),
				Storage:   p.PrimaryStorage,
				Features:  p.Features,
				Analytics: p.Analytics,
				Pricing:   p.Pricing,
				Strengths: p.Strengths,
				Accent:    string(p.Accent),
			})
		}
		return rows, nil
	}

	return NewQueryActionRunner("pq", pqDefaultAttrs, fn).Run(ctx, cmd)
}

// pqCommandBuilder constructs the cli.Command for "pq", wiring metadata,
// flags, and action/validator handlers.
func pqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:   "pq",
		Usage:  "provider query",
		Action: pqCommandAction,
		Meta:   meta,
	}).Build()
}
