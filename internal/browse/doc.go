// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package browse is the interactive terminal rendition of the page. The
// navigation header stays fixed while the body scrolls in a viewport; nav
// choices animate the viewport toward the anchor line in a few ticks.
package browse
