// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/term"

	"github.com/cloudscale/cloudscale/internal/command"
	"github.com/cloudscale/cloudscale/internal/config"
	"github.com/cloudscale/cloudscale/internal/log"
	"github.com/cloudscale/cloudscale/internal/version"
)

func main() {
	os.Exit(realMain(os.Args))
}

func realMain(args []string) int {
	log.InitLogger()
	log.Debugf("args captured: args=%v", args)

	if wantsVersion(args) {
		fmt.Println(version.Version)
		return 0
	}

	args = expandArgs(args, term.IsTerminal(int(os.Stdout.Fd())))
	log.Debugf("args expanded: args=%v", args)
	return initAndRunApp(context.Background(), args)
}

func wantsVersion(args []string) bool {
	return slices.ContainsFunc(args[min(1, len(args)):], func(a string) bool {
		return a == "--version" || a == "-v"
	})
}

// defaultArgs is what a bare "cloudscale" runs: the page as text on a
// terminal, or the HTML document when stdout is redirected, so
// "cloudscale > index.html" works.
func defaultArgs(tty bool) []string {
	if tty {
		return []string{"render", "--format", "text"}
	}
	return []string{"render"}
}

// expandArgs fills in the default command and expands @set references.
// Help and completion requests pass through untouched.
func expandArgs(args []string, tty bool) []string {
	if len(args) <= 1 {
		return append(slices.Clone(args), defaultArgs(tty)...)
	}
	isHelp := func(a string) bool { return a == "--help" || a == "-h" }
	if args[1] == "completion" || slices.ContainsFunc(args, isHelp) {
		return args
	}
	return expandSet(args)
}

// expandSet replaces the first @name argument after the command with the
// argument list configured at <command>.<name>, e.g. pq.wide. An unknown
// set expands to nothing.
func expandSet(args []string) []string {
	if len(args) < 3 {
		return args
	}

	i := slices.IndexFunc(args[2:], func(a string) bool { return strings.HasPrefix(a, "@") })
	if i < 0 {
		return args
	}
	i += 2

	sets, err := config.GetStringSlice(args[1] + "." + args[i][1:])
	if err != nil {
		log.Debugf("set not found: set=%s err=%v", args[i], err)
	}
	var expanded []string
	for _, s := range sets {
		expanded = append(expanded, strings.Fields(s)...)
	}

	out := slices.Clone(args[:i])
	out = append(out, expanded...)
	return append(out, args[i+1:]...)
}

// initAndRunApp builds the app and runs it. Exit codes: 1 when the app
// cannot be built, 2 when the command fails.
func initAndRunApp(ctx context.Context, args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}
	return 0
}
