// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen writes a markdown reference page per cloudscale subcommand
// from the live command tree, so flags and usage never drift from the code.
package main

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/cloudscale/cloudscale/internal/command"
)

//go:embed command.md.tmpl
var commandTemplate string

// CommandDoc is the template data for one subcommand.
type CommandDoc struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []string
	Date      string
	Version   string
}

func main() {
	docs := "docs"
	if len(os.Args) > 1 {
		docs = os.Args[1]
	}

	if err := generate(docs, time.Now(), getVersion(), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// generate writes <docs>/commands/<name>.md for every subcommand.
func generate(docs string, now time.Time, version string, progress io.Writer) error {
	app, err := command.InitApp(context.Background(), []string{"cloudscale"})
	if err != nil {
		return err
	}

	tmpl, err := template.New("command").Parse(commandTemplate)
	if err != nil {
		return err
	}

	folder := filepath.Join(docs, "commands")
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return err
	}

	for _, c := range app.Commands {
		path := filepath.Join(folder, c.Name+".md")
		fmt.Fprintln(progress, "Generating", path)

		file, err := os.Create(path)
		if err != nil {
			return err
		}
		err = tmpl.Execute(file, describe(c, now, version))
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// describe collects the visible flags of c in their help text form.
func describe(c *cli.Command, now time.Time, version string) CommandDoc {
	doc := CommandDoc{
		Name:      c.Name,
		Usage:     c.Usage,
		UsageText: c.UsageText,
		Date:      now.Format("January 2, 2006"),
		Version:   version,
	}
	if doc.UsageText == "" {
		doc.UsageText = "cloudscale " + c.Name + " [flags]"
	}

	for _, f := range c.Flags {
		if v, ok := f.(cli.VisibleFlag); ok && !v.IsVisible() {
			continue
		}
		doc.Flags = append(doc.Flags, strings.TrimSpace(f.String()))
	}
	return doc
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
