// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for cloudscale's user
// configuration. The configuration is expected to be a YAML document located
// in the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/cloudscale.yaml or $HOME/.config/cloudscale.yaml
//   - macOS: $HOME/Library/Application Support/cloudscale.yaml
//   - Windows: %APPDATA%/cloudscale.yaml
//
// CLOUDSCALE_CFG_FILE overrides the location. Keys are dotted paths
// (serve.addr, browse.scroll_steps, colors.title) and lookups prefer the
// current command's namespace.
package config
