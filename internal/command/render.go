// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/cloudscale/cloudscale/internal/meta"
	"github.com/cloudscale/cloudscale/internal/render/html"
	"github.com/cloudscale/cloudscale/internal/render/text"
)

// renderCommandAction is the action handler for the "render" subcommand. It
// writes the page as a standalone HTML document or as terminal text.
func renderCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "render") {
		return nil
	}

	root := NewRoot(cmd)
	defer root.Close()

	format := cmd.String("format")
	var buf bytes.Buffer
	switch format {
	case "text":
		width := cmd.Int("width")
		if width <= 0 {
			width = terminalWidth()
		}
		if err := text.Write(&buf, root, width, text.LoadTheme()); err != nil {
			return fmt.Errorf("render text: %w", err)
		}
	default:
		if err := html.Render(&buf, root, html.Options{
			Title:        cmd.String("title"),
			Tailwind:     cmd.String("tailwind"),
			InlineScript: cmd.Bool("inline"),
			ScriptSrc:    cmd.String("script-src"),
		}); err != nil {
			return err
		}
	}
	log.Infof("rendered %s page: %s", format, humanize.Bytes(uint64(buf.Len())))

	return writeOut(cmd, cmd.String("out"), buf.Bytes())
}

// writeOut writes data to path, or to the command's stdout when path is
// empty or "-".
func writeOut(cmd *cli.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout(cmd).Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Infof("wrote %s (%s)", path, humanize.Bytes(uint64(len(data))))
	return nil
}

func renderCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "render the comparison page",
		UsageText: "cloudscale render [--format html|text] [--out FILE]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			newTldrFlag(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"F"},
				Usage:   "html or text",
				Value:   "html",
				Validator: func(value string) error {
					return FlagValidators(value, FormatValidator)
				},
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"O"},
				Usage:   "output file, - for stdout",
				Value:   "-",
			},
			&cli.BoolFlag{
				Name:  "inline",
				Usage: "embed the navigation script in the document",
				Value: true,
			},
			&cli.StringFlag{
				Name:  "script-src",
				Usage: "navigation script URL when not inlined",
				Value: html.ScriptPath,
			},
			NewConfigStringFlag("title", "document title, defaults to the brand name", "", "render", meta.Config.Source),
			NewTailwindFlag("render", meta.Config.Source),
			&cli.IntFlag{
				Name:    "width",
				Aliases: []string{"W"},
				Usage:   "text width, defaults to the terminal width",
			},
		},
		Action: renderCommandAction,
	}
}
