package dex

import (
	"sort"

	"github.com/mmcdole/dextrack/internal/domain"
)

// ComputeProgress aggregates caught/seen sets over the built-in partition table.
func ComputeProgress(caught, seen domain.IDSet) domain.ProgressSnapshot {
	return ComputeProgressFor(regions, National, caught, seen)
}

// ComputeProgressFor aggregates caught/seen sets over an arbitrary table.
// Output regions keep table order. Pure and deterministic.
func ComputeProgressFor(table []domain.Range, national domain.Range, caught, seen domain.IDSet) domain.ProgressSnapshot {
	nationalCaught := countInRange(caught, national)
	nationalTotal := national.Total()

	out := domain.ProgressSnapshot{
		NationalCaught:        nationalCaught,
		NationalSeen:          countInRange(seen, national),
		NationalTotal:         nationalTotal,
		NationalCaughtPercent: Percent(nationalCaught, nationalTotal),
		Regions:               make([]domain.RangeProgress, 0, len(table)),
	}

	for _, r := range table {
		c := countInRange(caught, r)
		total := r.Total()
		out.Regions = append(out.Regions, domain.RangeProgress{
			ID:            r.ID,
			Name:          r.Name,
			Caught:        c,
			Seen:          countInRange(seen, r),
			Total:         total,
			CaughtPercent: Percent(c, total),
		})
	}

	return out
}

// Percent returns round(100*part/total) with halves rounded up, clamped to
// [0, 100]. A zero total yields 0.
func Percent(part, total int) int {
	if total <= 0 || part <= 0 {
		return 0
	}
	if part >= total {
		return 100
	}
	return (200*part + total) / (2 * total)
}

// countInRange walks whichever is smaller: the set or the range.
func countInRange(set domain.IDSet, r domain.Range) int {
	width := r.Total()
	if width == 0 || len(set) == 0 {
		return 0
	}

	count := 0
	if len(set) < width {
		for id := range set {
			if r.Contains(id) {
				count++
			}
		}
		return count
	}

	for id := r.StartID; id <= r.EndID; id++ {
		if set.Has(id) {
			count++
		}
	}
	return count
}

// TopRegions returns up to n regions ordered by caught percent, highest first.
// Ties keep partition order.
func TopRegions(snapshot domain.ProgressSnapshot, n int) []domain.RangeProgress {
	if n <= 0 {
		return nil
	}
	sorted := make([]domain.RangeProgress, len(snapshot.Regions))
	copy(sorted, snapshot.Regions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CaughtPercent > sorted[j].CaughtPercent
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
