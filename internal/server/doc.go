// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package server delivers the rendered page over HTTP. The document is
// rendered once when the handler is built; the navigation script comes from
// the embedded assets.
package server
