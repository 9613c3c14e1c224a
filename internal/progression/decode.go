package progression

import (
	"encoding/json"
	"math"

	"github.com/mmcdole/dextrack/internal/domain"
)

// Decode parses a persisted progression document. It never fails: malformed
// input yields defaults, and each field falls back on its own.
//   - claimedMilestones keeps string entries only, first occurrence wins
//   - unlock flags are read individually when they are booleans
//   - duplicatesTransferred is kept when it is a non-negative finite number (floored)
func Decode(data []byte) domain.ProgressionState {
	state := Default()

	var raw struct {
		ClaimedMilestones json.RawMessage `json:"claimedMilestones"`
		Unlocks           struct {
			Pokedex map[string]json.RawMessage `json:"pokedex"`
			Vault   map[string]json.RawMessage `json:"vault"`
		} `json:"unlocks"`
		Counters map[string]json.RawMessage `json:"counters"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		// a structurally wrong section should not discard the others
		decodeLoose(data, &state)
		return state
	}

	state.ClaimedMilestones = decodeClaimed(raw.ClaimedMilestones)
	decodeFlags(&state.Unlocks, domain.AreaPokedex, raw.Unlocks.Pokedex)
	decodeFlags(&state.Unlocks, domain.AreaVault, raw.Unlocks.Vault)
	state.Counters.DuplicatesTransferred = decodeCounter(raw.Counters["duplicatesTransferred"])
	return state
}

// decodeLoose handles documents whose sections have the wrong shape
// (e.g. unlocks is a string). Each section is decoded independently.
func decodeLoose(data []byte, state *domain.ProgressionState) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return
	}
	state.ClaimedMilestones = decodeClaimed(top["claimedMilestones"])

	var unlocks map[string]json.RawMessage
	if json.Unmarshal(top["unlocks"], &unlocks) == nil {
		for area, rawFlags := range unlocks {
			var flags map[string]json.RawMessage
			if json.Unmarshal(rawFlags, &flags) == nil {
				decodeFlags(&state.Unlocks, domain.UnlockArea(area), flags)
			}
		}
	}

	var counters map[string]json.RawMessage
	if json.Unmarshal(top["counters"], &counters) == nil {
		state.Counters.DuplicatesTransferred = decodeCounter(counters["duplicatesTransferred"])
	}
}

func decodeClaimed(data json.RawMessage) []string {
	out := []string{}
	var entries []json.RawMessage
	if len(data) == 0 || json.Unmarshal(data, &entries) != nil {
		return out
	}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		var v any
		if json.Unmarshal(e, &v) != nil {
			continue
		}
		id, ok := v.(string)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func decodeFlags(unlocks *domain.Unlocks, area domain.UnlockArea, flags map[string]json.RawMessage) {
	for key, rawValue := range flags {
		var v any
		if json.Unmarshal(rawValue, &v) != nil {
			continue
		}
		if on, ok := v.(bool); !ok || !on {
			continue
		}
		setUnlock(unlocks, area, domain.UnlockKey(key))
	}
}

func decodeCounter(data json.RawMessage) int {
	var raw any
	if len(data) == 0 || json.Unmarshal(data, &raw) != nil {
		return 0
	}
	v, ok := raw.(float64)
	if !ok {
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	if v > float64(math.MaxInt32) {
		return math.MaxInt32
	}
	return int(math.Floor(v))
}

// Encode serialises a state for storage.
func Encode(state domain.ProgressionState) ([]byte, error) {
	if state.ClaimedMilestones == nil {
		state.ClaimedMilestones = []string{}
	}
	return json.Marshal(state)
}
