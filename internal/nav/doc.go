// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package nav models the page navigation independently of any rendering
// target: the fixed list of section links, the open/closed mobile menu, the
// "smooth-scroll to a named target" capability and the scroll event bus that
// closes the menu.
package nav
