package model

// Rule type discriminators used in catalog documents.
const (
	RuleTypeFlat   = "flat"
	RuleTypeBundle = "bundle"
)

// RuleConfig represents one pricing rule entry in a catalog document.
// Flat rules use UnitCost; bundle rules use LoneCost, BundleSize and
// BundleCost. All costs are integral minor currency units.
type RuleConfig struct {
	Type       string `json:"type"`
	Product    string `json:"product"`
	UnitCost   int64  `json:"unitCost,omitempty"`
	LoneCost   int64  `json:"loneCost,omitempty"`
	BundleSize int    `json:"bundleSize,omitempty"`
	BundleCost int64  `json:"bundleCost,omitempty"`
}

// RuleCatalog represents a catalog document listing the active pricing rules.
type RuleCatalog struct {
	Rules []RuleConfig `json:"rules"`
}
