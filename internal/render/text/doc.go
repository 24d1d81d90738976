// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package text lays the page root out as styled terminal text. Layout returns
// the scrollable body together with the line offset of every anchor so a
// viewport can smooth-scroll to a section. The navigation header is rendered
// separately because it stays fixed above the body.
package text
