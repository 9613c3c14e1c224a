package domain

import "time"

// UnlockArea names a feature area whose toggles can be unlocked by rewards.
type UnlockArea string

const (
	AreaPokedex UnlockArea = "pokedex"
	AreaVault   UnlockArea = "vault"
)

// UnlockKey names one toggle within an area.
type UnlockKey string

const (
	KeyMissingOnly  UnlockKey = "missingOnly"  // pokedex
	KeyCaughtOnly   UnlockKey = "caughtOnly"   // pokedex
	KeyRegionFilter UnlockKey = "regionFilter" // pokedex
	KeyBulkTrash    UnlockKey = "bulkTrash"    // vault
)

// PokedexUnlocks are the pokedex feature toggles.
type PokedexUnlocks struct {
	MissingOnly  bool `json:"missingOnly"`
	CaughtOnly   bool `json:"caughtOnly"`
	RegionFilter bool `json:"regionFilter"`
}

// VaultUnlocks are the vault feature toggles.
type VaultUnlocks struct {
	BulkTrash bool `json:"bulkTrash"`
}

// Unlocks holds every feature toggle. Toggles only ever move from false to true.
type Unlocks struct {
	Pokedex PokedexUnlocks `json:"pokedex"`
	Vault   VaultUnlocks   `json:"vault"`
}

// Counters are monotonically non-decreasing progress counters.
type Counters struct {
	DuplicatesTransferred int `json:"duplicatesTransferred"`
}

// ProgressionState is the persisted progression document.
type ProgressionState struct {
	ClaimedMilestones []string `json:"claimedMilestones"`
	Unlocks           Unlocks  `json:"unlocks"`
	Counters          Counters `json:"counters"`
}

// Profile is the collector's display identity.
type Profile struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// Grant is a presentational reward waiting for the inventory/UI to hand it out.
type Grant struct {
	ID          string    `json:"id"`
	MilestoneID string    `json:"milestoneId"`
	Reward      Reward    `json:"reward"`
	CreatedAt   time.Time `json:"createdAt"`
}
