package milestone

import "github.com/mmcdole/dextrack/internal/domain"

// Status resolves one milestone. A claimed id wins over evaluation, so a
// claimed milestone stays claimed even if its rule stops holding.
func Status(m domain.Milestone, s Signals, claimed map[string]bool) domain.MilestoneStatus {
	if claimed[m.ID] {
		return domain.StatusClaimed
	}
	if EvaluateRule(m.Rule, s) {
		return domain.StatusClaimable
	}
	return domain.StatusLocked
}

// Filter narrows a listing. Zero values match everything.
type Filter struct {
	Category domain.Category
	Status   domain.MilestoneStatus
}

// Match reports whether v passes the filter.
func (f Filter) Match(v domain.MilestoneView) bool {
	if f.Category != "" && v.Category != f.Category {
		return false
	}
	if f.Status != "" && v.Status != f.Status {
		return false
	}
	return true
}

// List builds views for every catalog entry that matches the filter, in catalog order.
func List(entries []domain.Milestone, s Signals, claimed []string, f Filter) []domain.MilestoneView {
	claimedSet := ClaimedSet(claimed)
	out := make([]domain.MilestoneView, 0, len(entries))
	for _, m := range entries {
		v := domain.MilestoneView{Milestone: m, Status: Status(m, s, claimedSet)}
		if f.Match(v) {
			out = append(out, v)
		}
	}
	return out
}

// Claimable returns the ids that are satisfied but not yet claimed.
func Claimable(entries []domain.Milestone, s Signals, claimed []string) []string {
	var ids []string
	for _, v := range List(entries, s, claimed, Filter{Status: domain.StatusClaimable}) {
		ids = append(ids, v.ID)
	}
	return ids
}

// ClaimedSet indexes a claimed-id list.
func ClaimedSet(claimed []string) map[string]bool {
	set := make(map[string]bool, len(claimed))
	for _, id := range claimed {
		set[id] = true
	}
	return set
}

// Counts tallies views by status.
func Counts(views []domain.MilestoneView) map[domain.MilestoneStatus]int {
	out := make(map[domain.MilestoneStatus]int, 3)
	for _, v := range views {
		out[v.Status]++
	}
	return out
}
