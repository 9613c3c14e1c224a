// Package progression holds the pure claim/reward state machine. Every
// transition returns a new state; inputs are never mutated.
package progression

import (
	"math"

	"github.com/mmcdole/dextrack/internal/domain"
)

// Default returns an empty progression: nothing claimed, everything locked.
func Default() domain.ProgressionState {
	return domain.ProgressionState{ClaimedMilestones: []string{}}
}

// IsClaimed reports whether id is in the claimed list.
func IsClaimed(state domain.ProgressionState, id string) bool {
	for _, c := range state.ClaimedMilestones {
		if c == id {
			return true
		}
	}
	return false
}

// Claim records id as claimed. Claiming twice is a no-op.
// Rewards are applied separately by ApplyReward.
func Claim(state domain.ProgressionState, id string) domain.ProgressionState {
	if IsClaimed(state, id) {
		return clone(state)
	}
	next := clone(state)
	next.ClaimedMilestones = append(next.ClaimedMilestones, id)
	return next
}

// ApplyReward folds a reward into the state. Badge, title and pokemon rewards
// leave state untouched. Unlocks set their flag; unknown area/key pairs are ignored.
func ApplyReward(state domain.ProgressionState, reward domain.Reward) domain.ProgressionState {
	next := clone(state)
	if reward.Kind != domain.RewardUnlock {
		return next
	}
	setUnlock(&next.Unlocks, reward.Area, reward.Key)
	return next
}

// IsUnlocked reads a single flag; unknown pairs report false.
func IsUnlocked(unlocks domain.Unlocks, area domain.UnlockArea, key domain.UnlockKey) bool {
	if flag := unlockFlag(&unlocks, area, key); flag != nil {
		return *flag
	}
	return false
}

// unlockOrder lists every known area/key pair in display order.
var unlockOrder = []struct {
	area domain.UnlockArea
	key  domain.UnlockKey
}{
	{domain.AreaPokedex, domain.KeyMissingOnly},
	{domain.AreaPokedex, domain.KeyCaughtOnly},
	{domain.AreaPokedex, domain.KeyRegionFilter},
	{domain.AreaVault, domain.KeyBulkTrash},
}

// UnlockedKeys names the flags that are on, as "area.key".
func UnlockedKeys(unlocks domain.Unlocks) []string {
	var out []string
	for _, u := range unlockOrder {
		if IsUnlocked(unlocks, u.area, u.key) {
			out = append(out, string(u.area)+"."+string(u.key))
		}
	}
	return out
}

func setUnlock(unlocks *domain.Unlocks, area domain.UnlockArea, key domain.UnlockKey) {
	if flag := unlockFlag(unlocks, area, key); flag != nil {
		*flag = true
	}
}

func unlockFlag(unlocks *domain.Unlocks, area domain.UnlockArea, key domain.UnlockKey) *bool {
	switch area {
	case domain.AreaPokedex:
		switch key {
		case domain.KeyMissingOnly:
			return &unlocks.Pokedex.MissingOnly
		case domain.KeyCaughtOnly:
			return &unlocks.Pokedex.CaughtOnly
		case domain.KeyRegionFilter:
			return &unlocks.Pokedex.RegionFilter
		}
	case domain.AreaVault:
		if key == domain.KeyBulkTrash {
			return &unlocks.Vault.BulkTrash
		}
	}
	return nil
}

// AddDuplicatesTransferred bumps the duplicate counter by floor(amount).
// Non-positive, NaN and infinite amounts are ignored.
func AddDuplicatesTransferred(state domain.ProgressionState, amount float64) domain.ProgressionState {
	next := clone(state)
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return next
	}
	inc := math.Floor(amount)
	if inc > float64(math.MaxInt32) {
		inc = float64(math.MaxInt32)
	}
	next.Counters.DuplicatesTransferred += int(inc)
	return next
}

func clone(state domain.ProgressionState) domain.ProgressionState {
	next := state
	next.ClaimedMilestones = make([]string, len(state.ClaimedMilestones), len(state.ClaimedMilestones)+1)
	copy(next.ClaimedMilestones, state.ClaimedMilestones)
	return next
}
