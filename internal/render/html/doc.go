// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package html renders the page root as a standalone HTML document. Components
// are built with gomponents; the navigation behaviour ships as an embedded
// script that either sits inline or is served from ScriptPath.
package html
