// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"cmp"
	"slices"
	"strings"

	"github.com/cloudscale/cloudscale/internal/catalog"
)

// sortKey is one entry of a --sort spec.
type sortKey struct {
	field         string
	descending    bool
	caseSensitive bool
}

func parseSortKeys(spec string) []sortKey {
	var keys []sortKey
	for _, f := range strings.Split(spec, ",") {
		k := sortKey{}
		f = strings.TrimSpace(f)
		f, k.descending = strings.CutPrefix(f, "-")
		f, k.caseSensitive = strings.CutPrefix(f, "!")
		if f == "" {
			continue
		}
		k.field = f
		keys = append(keys, k)
	}
	return keys
}

// compare orders two cell values. Numbers compare numerically. The provider
// column follows page order (AWS, Azure, Google Cloud) rather than the
// alphabet. Everything else compares as strings.
func (k sortKey) compare(a, b interface{}) int {
	if x, ok := a.(float64); ok {
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y)
		}
	}

	sa, sb := InterfaceToString(a), InterfaceToString(b)
	if k.field == "provider" {
		x, okx := catalog.ProviderRank(sa)
		y, oky := catalog.ProviderRank(sb)
		if okx && oky {
			return cmp.Compare(x, y)
		}
	}

	if !k.caseSensitive {
		sa, sb = strings.ToLower(sa), strings.ToLower(sb)
	}
	return strings.Compare(sa, sb)
}

// SortDataset sorts rows in place by a comma separated list of output keys.
// A leading '-' sorts descending and '!' compares case-sensitively, e.g.
// --sort -count,provider. Ties keep catalog order.
func SortDataset(rows []map[string]interface{}, spec string) {
	keys := parseSortKeys(spec)
	if len(keys) == 0 {
		return
	}

	slices.SortStableFunc(rows, func(a, b map[string]interface{}) int {
		for _, k := range keys {
			c := k.compare(a[k.field], b[k.field])
			if c == 0 {
				continue
			}
			if k.descending {
				return -c
			}
			return c
		}
		return 0
	})
}
