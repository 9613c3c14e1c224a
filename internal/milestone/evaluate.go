package milestone

import "github.com/mmcdole/dextrack/internal/domain"

// Signals bundles every input a rule may read. Build it once per evaluation cycle.
type Signals struct {
	Dex      domain.ProgressSnapshot
	Vault    domain.VaultStats
	Types    domain.TypeProgress
	Counters domain.Counters
}

// Evaluate reports whether the milestone's rule holds for the given inputs.
func Evaluate(m domain.Milestone, dex domain.ProgressSnapshot, vault domain.VaultStats, types domain.TypeProgress, counters domain.Counters) bool {
	return EvaluateRule(m.Rule, Signals{Dex: dex, Vault: vault, Types: types, Counters: counters})
}

// EvaluateRule dispatches on the rule kind. Unknown kinds, unknown signals and
// missing regions are unmet, never errors.
func EvaluateRule(rule domain.Rule, s Signals) bool {
	switch rule.Kind {
	case domain.RuleThreshold:
		value, ok := signalValue(rule.Signal, rule.Key, s)
		return ok && value >= rule.Min

	case domain.RuleRangeComplete:
		if rule.Key == domain.NationalRangeID {
			return s.Dex.National().Complete()
		}
		r, ok := s.Dex.Region(rule.Key)
		return ok && r.Complete()

	case domain.RuleLivingDex:
		return s.Dex.NationalTotal > 0 && s.Vault.UniqueSpecies >= s.Dex.NationalTotal

	case domain.RuleAll:
		if len(rule.Rules) == 0 {
			return false
		}
		for _, child := range rule.Rules {
			if !EvaluateRule(child, s) {
				return false
			}
		}
		return true
	}
	return false
}

func signalValue(signal domain.Signal, key string, s Signals) (int, bool) {
	switch signal {
	case domain.SignalNationalCaught:
		return s.Dex.NationalCaught, true
	case domain.SignalRegionCaught:
		r, ok := s.Dex.Region(key)
		return r.Caught, ok
	case domain.SignalVaultTotalStored:
		return s.Vault.TotalStored, true
	case domain.SignalVaultUniqueSpecies:
		return s.Vault.UniqueSpecies, true
	case domain.SignalVaultShinyCount:
		return s.Vault.ShinyCount, true
	case domain.SignalTypeCount:
		return s.Types.Count(key), true
	case domain.SignalDuplicatesTransferred:
		return s.Counters.DuplicatesTransferred, true
	}
	return 0, false
}

// Progress reports how far a threshold rule is toward its goal as (current, goal).
// Non-threshold rules report (0, 0).
func Progress(rule domain.Rule, s Signals) (current, goal int) {
	switch rule.Kind {
	case domain.RuleThreshold:
		v, _ := signalValue(rule.Signal, rule.Key, s)
		return v, rule.Min
	case domain.RuleRangeComplete:
		if rule.Key == domain.NationalRangeID {
			return s.Dex.NationalCaught, s.Dex.NationalTotal
		}
		r, _ := s.Dex.Region(rule.Key)
		return r.Caught, r.Total
	}
	return 0, 0
}
