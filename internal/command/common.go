// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"reflect"

	"github.com/hashicorp/jsonapi"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/cloudscale/cloudscale/internal/attrs"
	"github.com/cloudscale/cloudscale/internal/meta"
	"github.com/cloudscale/cloudscale/internal/output"
	"github.com/cloudscale/cloudscale/internal/page"
)

// defaultTextWidth is used for text rendering when stdout is not a terminal.
const defaultTextWidth = 100

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList, err error) {
	for _, d := range defaults {
		if err = al.Set(d); err != nil {
			return nil, err
		}
	}
	if extras := cmd.String("attrs"); extras != "" {
		if err = al.Set(extras); err != nil {
			return nil, fmt.Errorf("invalid --attrs: %w", err)
		}
	}
	err = al.SetGlobalTransformSpec()
	return
}

// DumpSchemaIfRequested writes the attribute list for the provided type to w
// when --schema is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command, t reflect.Type, w io.Writer) bool {
	if cmd.Bool("schema") {
		output.DumpSchema(t, w)
		return true
	}
	return false
}

// EmitJSONAPISlice marshals a slice as JSONAPI and passes it to the common
// output routine.
func EmitJSONAPISlice(results any, al attrs.AttrList, cmd *cli.Command, w io.Writer) error {
	var raw bytes.Buffer
	if err := jsonapi.MarshalPayload(&raw, results); err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	return output.SliceDiceSpit(raw, al, cmd, "data", w, nil)
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// NewRoot builds the page root for a command from the validated catalog in
// its meta. Callers must Close it.
func NewRoot(cmd *cli.Command) *page.Root {
	m := GetMeta(cmd)
	if len(m.Catalog.Providers) == 0 {
		return page.New()
	}
	return page.New(page.WithSnapshot(m.Catalog))
}

// stdout returns the writer the root command was configured with. Tests set
// it to capture output.
func stdout(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

// terminalWidth is the width of stdout when it is a terminal, otherwise
// defaultTextWidth.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return defaultTextWidth
}

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr cloudscale <subcmd>` and returns true so the caller can exit
// early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "cloudscale", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}
