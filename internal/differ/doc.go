// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ compares catalog snapshots and renders the drift as an ASCII
// JSON diff.
package differ
