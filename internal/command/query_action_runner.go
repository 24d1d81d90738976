// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"reflect"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
)

// QueryActionRunner[T] encapsulates the common query action pattern for all
// catalog query subcommands. It handles the short-circuit checks, BuildAttrs,
// schema dumping and output emission, with the rows provided by FetchFn.
type QueryActionRunner[T any] struct {
	CommandName  string
	SchemaType   reflect.Type
	DefaultAttrs []string
	FetchFn      func(context.Context, *cli.Command) ([]*T, error)
}

// Run executes the query action with the provided context and command.
func (qar *QueryActionRunner[T]) Run(
	ctx context.Context,
	cmd *cli.Command,
) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	if ShortCircuitTLDR(ctx, cmd, qar.CommandName) {
		return nil
	}
	w := stdout(cmd)
	if DumpSchemaIfRequested(cmd, qar.SchemaType, w) {
		return nil
	}

	attrs, err := BuildAttrs(cmd, qar.DefaultAttrs...)
	if err != nil {
		return err
	}
	log.Debugf("attrs: %v", attrs)

	results, err := qar.FetchFn(ctx, cmd)
	if err != nil {
		return err
	}

	return EmitJSONAPISlice(results, attrs, cmd, w)
}

// NewQueryActionRunner creates a QueryActionRunner with the provided
// configuration. The schema type is taken from T.
func NewQueryActionRunner[T any](
	commandName string,
	defaultAttrs []string,
	fetchFn func(context.Context, *cli.Command) ([]*T, error),
) *QueryActionRunner[T] {
	return &QueryActionRunner[T]{
		CommandName:  commandName,
		SchemaType:   reflect.TypeOf((*T)(nil)).Elem(),
		DefaultAttrs: defaultAttrs,
		FetchFn:      fetchFn,
	}
}
