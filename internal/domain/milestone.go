package domain

import "fmt"

// Category groups milestones for presentation.
type Category string

const (
	CategoryRegion   Category = "region"
	CategoryNational Category = "national"
	CategoryVault    Category = "vault"
	CategoryType     Category = "type"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{CategoryRegion, CategoryNational, CategoryVault, CategoryType}
}

// RewardKind tags the Reward variant.
type RewardKind string

const (
	RewardBadge   RewardKind = "badge"
	RewardTitle   RewardKind = "title"
	RewardPokemon RewardKind = "pokemon"
	RewardUnlock  RewardKind = "unlock"
)

// Reward is granted once when a milestone is claimed.
// Value carries the badge/title/pokemon name; Area and Key are set for unlocks.
type Reward struct {
	Kind  RewardKind `json:"kind"`
	Value string     `json:"value,omitempty"`
	Area  UnlockArea `json:"area,omitempty"`
	Key   UnlockKey  `json:"key,omitempty"`
}

func BadgeReward(name string) Reward   { return Reward{Kind: RewardBadge, Value: name} }
func TitleReward(name string) Reward   { return Reward{Kind: RewardTitle, Value: name} }
func PokemonReward(name string) Reward { return Reward{Kind: RewardPokemon, Value: name} }

func UnlockReward(area UnlockArea, key UnlockKey) Reward {
	return Reward{Kind: RewardUnlock, Area: area, Key: key}
}

// Presentational reports whether the reward only signals the UI/inventory
// and leaves progression state untouched.
func (r Reward) Presentational() bool {
	switch r.Kind {
	case RewardBadge, RewardTitle, RewardPokemon:
		return true
	}
	return false
}

func (r Reward) String() string {
	if r.Kind == RewardUnlock {
		return fmt.Sprintf("unlock %s %s", r.Area, r.Key)
	}
	return fmt.Sprintf("%s: %s", r.Kind, r.Value)
}

// RuleKind selects how a Rule is evaluated.
type RuleKind string

const (
	// RuleThreshold: Signal (optionally narrowed by Key) >= Min
	RuleThreshold RuleKind = "threshold"
	// RuleRangeComplete: every id of region Key (or "national") is caught
	RuleRangeComplete RuleKind = "range_complete"
	// RuleLivingDex: unique stored species cover the national total
	RuleLivingDex RuleKind = "living_dex"
	// RuleAll: every child rule holds
	RuleAll RuleKind = "all"
)

// Signal names a numeric progress input read by threshold rules.
type Signal string

const (
	SignalNationalCaught        Signal = "national_caught"
	SignalRegionCaught          Signal = "region_caught" // Key = region id
	SignalVaultTotalStored      Signal = "vault_total_stored"
	SignalVaultUniqueSpecies    Signal = "vault_unique_species"
	SignalVaultShinyCount       Signal = "vault_shiny_count"
	SignalTypeCount             Signal = "type_count" // Key = type tag
	SignalDuplicatesTransferred Signal = "duplicates_transferred"
)

// Rule is a declarative, serializable milestone predicate.
type Rule struct {
	Kind   RuleKind `json:"kind"`
	Signal Signal   `json:"signal,omitempty"`
	Key    string   `json:"key,omitempty"`
	Min    int      `json:"min,omitempty"`
	Rules  []Rule   `json:"rules,omitempty"`
}

func Threshold(signal Signal, key string, min int) Rule {
	return Rule{Kind: RuleThreshold, Signal: signal, Key: key, Min: min}
}

func RangeComplete(rangeID string) Rule {
	return Rule{Kind: RuleRangeComplete, Key: rangeID}
}

func LivingDex() Rule {
	return Rule{Kind: RuleLivingDex}
}

func All(rules ...Rule) Rule {
	return Rule{Kind: RuleAll, Rules: rules}
}

// Milestone is a static catalog entry.
type Milestone struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Rule        Rule     `json:"rule"`
	Reward      Reward   `json:"reward"`
}

// MilestoneStatus is the presentation state of a milestone.
type MilestoneStatus string

const (
	StatusLocked    MilestoneStatus = "locked"
	StatusClaimable MilestoneStatus = "claimable"
	StatusClaimed   MilestoneStatus = "claimed"
)

// MilestoneView pairs a catalog entry with its current status.
type MilestoneView struct {
	Milestone
	Status MilestoneStatus `json:"status"`
}
