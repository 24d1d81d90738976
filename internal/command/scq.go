// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/cloudscale/cloudscale/internal/meta"
)

var scqDefaultAttrs = []string{"scenario", "provider", "solution"}

// recommendationRow is one scenario recommendation, flattened so each row
// carries its scenario.
type recommendationRow struct {
	ID       string `jsonapi:"primary,recommendations" doc:"scenario and provider slug"`
	Scenario string `jsonapi:"attr,scenario" doc:"use-case scenario title"`
	Rank     int    `jsonapi:"attr,rank" doc:"position within the scenario card"`
	Provider string `jsonapi:"attr,provider" doc:"AWS, Azure or GCP"`
	Solution string `jsonapi:"attr,solution" doc:"recommended services"`
	Benefit  string `jsonapi:"attr,benefit" doc:"why it fits the scenario"`
}

// slug lowercases s and joins its words with '-'.
func slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

// scqCommandAction is the action handler for the "scq" subcommand. It lists
// every scenario recommendation, one row per provider.
func scqCommandAction(ctx context.Context, cmd *cli.Command) error {
	fn := func(_ context.Context, cmd *cli.Command) ([]*recommendationRow, error) {
		var rows []*recommendationRow
		for _, sc := range GetMeta(cmd).Catalog.Scenarios {
			for i, r := range sc.Recommendations {
				rows = append(rows, &recommendationRow{
					ID:       slug(sc.Title) + "-" + slug(r.Provider),
					Scenario: sc.Title,
					Rank:     i + 1,
					Provider: r.Provider,
					Solution: r.Solution,
					Benefit:  r.Benefit,
				})
			}
		}
		return rows, nil
	}

	return NewQueryActionRunner("scq", scqDefaultAttrs, fn).Run(ctx, cmd)
}

// scqCommandBuilder constructs the cli.Command for "scq".
func scqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:   "scq",
		Usage:  "scenario recommendation query",
		Action: scqCommandAction,
		Meta:   meta,
	}).Build()
}
