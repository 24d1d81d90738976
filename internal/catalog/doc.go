// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package catalog holds the static content rendered by every cloudscale
// target: the provider entries, use-case scenarios, storage tier rows and the
// supporting copy for the recommendation, cost tip and pro tip sections.
//
// The data is defined once at package load and is never mutated. Accessors
// return deep copies so callers cannot reach the package-level values.
package catalog
