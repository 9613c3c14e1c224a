// Package search provides milestone filtering, region name matching and
// "did you mean" suggestions for mistyped milestone ids.
package search

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/dextrack/internal/domain"
)

// Result is one filtered milestone with match metadata for highlighting.
// MatchedIndexes refer to the lower-cased title; positions past its end hit the id.
type Result struct {
	View           domain.MilestoneView
	MatchedIndexes []int
	Score          int // higher is better
}

// MilestoneIndex implements sahilm/fuzzy.Source over milestone views.
type MilestoneIndex struct {
	views []domain.MilestoneView
	text  []string // pre-computed "title id", lower-cased
}

// NewMilestoneIndex builds an index over views.
func NewMilestoneIndex(views []domain.MilestoneView) *MilestoneIndex {
	idx := &MilestoneIndex{views: views, text: make([]string, len(views))}
	for i, v := range views {
		idx.text[i] = strings.ToLower(v.Title + " " + v.ID)
	}
	return idx
}

// String returns the searchable text at index i (implements fuzzy.Source)
func (idx *MilestoneIndex) String(i int) string { return idx.text[i] }

// Len returns the number of views (implements fuzzy.Source)
func (idx *MilestoneIndex) Len() int { return len(idx.views) }

// Filter ranks the indexed views against query. An empty query returns every
// view in its original order.
func (idx *MilestoneIndex) Filter(query string) []Result {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]Result, len(idx.views))
		for i, v := range idx.views {
			out[i] = Result{View: v}
		}
		return out
	}

	matches := fuzzy.FindFrom(query, idx)
	out := make([]Result, len(matches))
	for i, m := range matches {
		out[i] = Result{View: idx.views[m.Index], MatchedIndexes: m.MatchedIndexes, Score: m.Score}
	}
	return out
}

// FilterMilestones is a convenience for one-off filtering.
func FilterMilestones(views []domain.MilestoneView, query string) []domain.MilestoneView {
	results := NewMilestoneIndex(views).Filter(query)
	out := make([]domain.MilestoneView, len(results))
	for i, r := range results {
		out[i] = r.View
	}
	return out
}

// Suggest returns the candidate closest to input, if any is near enough to be
// a plausible typo. Prefix matches win over edit distance.
func Suggest(input string, candidates []string) (string, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", false
	}

	best, bestDist := "", -1
	for _, cand := range candidates {
		lower := strings.ToLower(cand)
		if lower == input {
			return cand, true
		}
		if len(input) >= 3 && strings.HasPrefix(lower, input) {
			if bestDist != 0 || len(cand) < len(best) {
				best, bestDist = cand, 0
			}
			continue
		}
		dist := levenshtein.ComputeDistance(input, lower)
		if dist > levenshteinLimit(len(lower)) {
			continue
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && cand < best) {
			best, bestDist = cand, dist
		}
	}
	return best, bestDist >= 0
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// MatchRegion resolves a user-typed region name ("kan", "Sinnoh", "national")
// to a range. Exact id or name matches win; otherwise the closest fuzzy match.
func MatchRegion(query string, ranges []domain.Range) (domain.Range, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.Range{}, false
	}
	for _, r := range ranges {
		if strings.EqualFold(r.ID, query) || strings.EqualFold(r.Name, query) {
			return r, true
		}
	}

	names := make([]string, len(ranges))
	for i, r := range ranges {
		names[i] = r.Name
	}
	ranks := lfuzzy.RankFindNormalizedFold(query, names)
	if len(ranks) == 0 {
		return domain.Range{}, false
	}
	sort.Sort(ranks)
	return ranges[ranks[0].OriginalIndex], true
}
