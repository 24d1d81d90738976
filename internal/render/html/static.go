// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package html

import (
	"embed"
	"io/fs"
)

// StaticFS holds the embedded browser assets.
//
//go:embed static/*
var StaticFS embed.FS

// ScriptPath is where the server exposes the navigation script.
const ScriptPath = "/static/nav.js"

// Static returns the assets rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(StaticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// NavScript returns the navigation script source.
func NavScript() string {
	b, err := StaticFS.ReadFile("static/nav.js")
	if err != nil {
		panic(err)
	}
	return string(b)
}
