// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ProviderOrder is the order providers appear in every table and every
// scenario.
var ProviderOrder = []string{"AWS", "Azure", "GCP"}

// BrandInfo returns the site-wide copy.
func BrandInfo() Brand {
	return brand
}

// Providers returns a copy of the three provider entries in page order.
func Providers() []Provider {
	out := make([]Provider, len(providers))
	for i, p := range providers {
		p.Features = slices.Clone(p.Features)
		out[i] = p
	}
	return out
}

// ProviderByID returns the provider with the given anchor id.
func ProviderByID(id string) (Provider, bool) {
	for _, p := range providers {
		if p.ID == id {
			p.Features = slices.Clone(p.Features)
			return p, true
		}
	}
	return Provider{}, false
}

// ProviderRank resolves any label a provider goes by on the page (anchor id,
// short name, full name or tier table name) to its index in ProviderOrder.
// Matching ignores case.
func ProviderRank(label string) (int, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return -1, false
	}
	for i, p := range providers {
		names := []string{p.ID, p.Name, ProviderOrder[i]}
		if i < len(tiers) {
			names = append(names, tiers[i].Provider)
		}
		for _, n := range names {
			if strings.EqualFold(label, n) {
				return i, true
			}
		}
	}
	return -1, false
}

// Scenarios returns a copy of the use-case scenarios.
func Scenarios() []Scenario {
	out := make([]Scenario, len(scenarios))
	for i, s := range scenarios {
		s.Recommendations = slices.Clone(s.Recommendations)
		out[i] = s
	}
	return out
}

// Tiers returns a copy of the storage tier rows.
func Tiers() []TierRow {
	out := make([]TierRow, len(tiers))
	for i, t := range tiers {
		t.Tiers = slices.Clone(t.Tiers)
		out[i] = t
	}
	return out
}

// Picks returns a copy of the quick recommendation cards.
func Picks() []Pick {
	return slices.Clone(picks)
}

// CostTips returns a copy of the cost optimisation tips.
func CostTips() []CostTip {
	return slices.Clone(costTips)
}

// ProTipInfo returns a copy of the pro tip callout.
func ProTipInfo() ProTip {
	p := proTip
	p.Body = slices.Clone(p.Body)
	return p
}

// Load returns the whole catalog as a Snapshot.
func Load() Snapshot {
	return Snapshot{
		Brand:     BrandInfo(),
		Providers: Providers(),
		Scenarios: Scenarios(),
		Tiers:     Tiers(),
		Picks:     Picks(),
		CostTips:  CostTips(),
		ProTip:    ProTipInfo(),
	}
}

// Validate checks the invariants every renderer relies on: three providers,
// no empty entries, and every scenario carrying exactly one recommendation
// per provider in ProviderOrder.
func (s Snapshot) Validate() error {
	var errs []error

	if len(s.Providers) != len(ProviderOrder) {
		errs = append(errs, fmt.Errorf("want %d providers, got %d", len(ProviderOrder), len(s.Providers)))
	}
	seen := map[string]bool{}
	for _, p := range s.Providers {
		if p.ID == "" || p.Name == "" {
			errs = append(errs, fmt.Errorf("provider %q: missing id or name", p.Name))
		}
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("provider %q: duplicate id", p.ID))
		}
		seen[p.ID] = true
		if len(p.Features) == 0 {
			errs = append(errs, fmt.Errorf("provider %q: no features", p.ID))
		}
	}

	if len(s.Scenarios) == 0 {
		errs = append(errs, errors.New("no scenarios"))
	}
	for _, sc := range s.Scenarios {
		if len(sc.Recommendations) != len(ProviderOrder) {
			errs = append(errs, fmt.Errorf("scenario %q: want %d recommendations, got %d",
				sc.Title, len(ProviderOrder), len(sc.Recommendations)))
			continue
		}
		for i, r := range sc.Recommendations {
			if r.Provider != ProviderOrder[i] {
				errs = append(errs, fmt.Errorf("scenario %q: recommendation %d is %q, want %q",
					sc.Title, i, r.Provider, ProviderOrder[i]))
			}
		}
	}

	if len(s.Tiers) != len(ProviderOrder) {
		errs = append(errs, fmt.Errorf("want %d tier rows, got %d", len(ProviderOrder), len(s.Tiers)))
	}
	rows := map[string]bool{}
	for _, t := range s.Tiers {
		if rows[t.Provider] {
			errs = append(errs, fmt.Errorf("tier row %q: duplicate provider", t.Provider))
		}
		rows[t.Provider] = true
		if len(t.Tiers) == 0 {
			errs = append(errs, fmt.Errorf("tier row %q: no tiers", t.Provider))
		}
	}

	return errors.Join(errs...)
}
