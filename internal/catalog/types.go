// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

// Icon names a glyph. Renderers map it onto whatever they can draw (an SVG in
// HTML, a unicode symbol in the terminal).
type Icon string

const (
	IconCloud    Icon = "cloud"
	IconServer   Icon = "server"
	IconDatabase Icon = "database"
	IconZap      Icon = "zap"
	IconShield   Icon = "shield"
	IconDollar   Icon = "dollar"
	IconCheck    Icon = "check"
	IconArrow    Icon = "arrow-right"
)

// Accent is the named colour family a card is painted with.
type Accent string

const (
	AccentOrange  Accent = "orange"
	AccentBlue    Accent = "blue"
	AccentGreen   Accent = "green"
	AccentPurple  Accent = "purple"
	AccentRed     Accent = "red"
	AccentEmerald Accent = "emerald"
)

// Provider is the static description block for one cloud vendor's storage
// offering.
type Provider struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Icon           Icon     `json:"icon" yaml:"icon"`
	PrimaryStorage string   `json:"primaryStorage" yaml:"primaryStorage"`
	Features       []string `json:"features" yaml:"features"`
	Analytics      string   `json:"analytics" yaml:"analytics"`
	Pricing        string   `json:"pricing" yaml:"pricing"`
	Strengths      string   `json:"strengths" yaml:"strengths"`
	Accent         Accent   `json:"accent" yaml:"accent"`
}

// Recommendation is one provider's answer to a Scenario.
type Recommendation struct {
	Provider string `json:"provider" yaml:"provider"`
	Solution string `json:"solution" yaml:"solution"`
	Benefit  string `json:"benefit" yaml:"benefit"`
}

// Scenario maps a use case to one Recommendation per provider.
type Scenario struct {
	Title           string           `json:"title" yaml:"title"`
	Icon            Icon             `json:"icon" yaml:"icon"`
	Accent          Accent           `json:"accent" yaml:"accent"`
	Recommendations []Recommendation `json:"recommendations" yaml:"recommendations"`
}

// TierRow lists the storage classes a provider offers.
type TierRow struct {
	Provider string   `json:"provider" yaml:"provider"`
	Tiers    []string `json:"tiers" yaml:"tiers"`
	Note     string   `json:"note" yaml:"note"`
}

// Pick is a quick recommendation card.
type Pick struct {
	Title   string `json:"title" yaml:"title"`
	Body    string `json:"body" yaml:"body"`
	BestFor string `json:"bestFor" yaml:"bestFor"`
	Accent  Accent `json:"accent" yaml:"accent"`
}

// CostTip is one cost optimisation signal.
type CostTip struct {
	Title  string `json:"title" yaml:"title"`
	Icon   Icon   `json:"icon" yaml:"icon"`
	Accent Accent `json:"accent" yaml:"accent"`
	Body   string `json:"body" yaml:"body"`
}

// Segment is a run of text, optionally emphasised.
type Segment struct {
	Text   string `json:"text" yaml:"text"`
	Strong bool   `json:"strong,omitempty" yaml:"strong,omitempty"`
}

// ProTip is the closing callout.
type ProTip struct {
	Title      string    `json:"title" yaml:"title"`
	Body       []Segment `json:"body" yaml:"body"`
	AsideTitle string    `json:"asideTitle" yaml:"asideTitle"`
	AsideBody  string    `json:"asideBody" yaml:"asideBody"`
}

// Brand is the site-wide copy used by the navigation bar, hero and footer.
type Brand struct {
	Name          string `json:"name" yaml:"name"`
	Tagline       string `json:"tagline" yaml:"tagline"`
	HeroTitle     string `json:"heroTitle" yaml:"heroTitle"`
	HeroSubtitle  string `json:"heroSubtitle" yaml:"heroSubtitle"`
	HeroLead      string `json:"heroLead" yaml:"heroLead"`
	CallToAction  string `json:"callToAction" yaml:"callToAction"`
	CallToTarget  string `json:"callToTarget" yaml:"callToTarget"`
	ScenarioTitle string `json:"scenarioTitle" yaml:"scenarioTitle"`
	ScenarioLead  string `json:"scenarioLead" yaml:"scenarioLead"`
	TierTitle     string `json:"tierTitle" yaml:"tierTitle"`
	TierLead      string `json:"tierLead" yaml:"tierLead"`
	PickTitle     string `json:"pickTitle" yaml:"pickTitle"`
	PickLead      string `json:"pickLead" yaml:"pickLead"`
	CostTitle     string `json:"costTitle" yaml:"costTitle"`
	CostLead      string `json:"costLead" yaml:"costLead"`
}

// Snapshot is the complete catalog as one value. It is what export writes and
// what diff compares.
type Snapshot struct {
	Brand     Brand      `json:"brand" yaml:"brand"`
	Providers []Provider `json:"providers" yaml:"providers"`
	Scenarios []Scenario `json:"scenarios" yaml:"scenarios"`
	Tiers     []TierRow  `json:"tiers" yaml:"tiers"`
	Picks     []Pick     `json:"picks" yaml:"picks"`
	CostTips  []CostTip  `json:"costTips" yaml:"costTips"`
	ProTip    ProTip     `json:"proTip" yaml:"proTip"`
}
