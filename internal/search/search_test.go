package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/dextrack/internal/dex"
	"github.com/mmcdole/dextrack/internal/domain"
	"github.com/mmcdole/dextrack/internal/milestone"
)

func views() []domain.MilestoneView {
	return milestone.List(milestone.Catalog(), milestone.Signals{}, nil, milestone.Filter{})
}

func TestMilestoneIndex_Source(t *testing.T) {
	all := views()
	idx := NewMilestoneIndex(all)
	assert.Equal(t, len(all), idx.Len())
	assert.Equal(t, "kanto collector kanto_50", idx.String(0))
}

func TestFilter_EmptyQueryKeepsOrder(t *testing.T) {
	all := views()
	got := FilterMilestones(all, "  ")
	assert.Equal(t, all, got)
}

func TestFilter_RanksMatches(t *testing.T) {
	results := NewMilestoneIndex(views()).Filter("Water Mastery")
	require.NotEmpty(t, results)
	for _, r := range results[:4] {
		assert.Equal(t, domain.CategoryType, r.View.Category)
		assert.Equal(t, "water", r.View.Rule.Key)
		assert.NotEmpty(t, r.MatchedIndexes)
	}
}

func TestFilter_ByID(t *testing.T) {
	got := FilterMilestones(views(), "dup_300")
	require.NotEmpty(t, got)
	assert.Equal(t, "dup_300", got[0].ID)
}

func TestFilter_NoMatch(t *testing.T) {
	assert.Empty(t, FilterMilestones(views(), "zzzzzz"))
}

func TestSuggest(t *testing.T) {
	ids := milestone.IDs()

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"kanto_15", "kanto_151", true},
		{"knato_50", "kanto_50", true},
		{"FIRST_SHINY", "first_shiny", true},
		{"first_shinny", "first_shiny", true},
		{"", "", false},
		{"something else entirely", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Suggest(tt.in, ids)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchRegion(t *testing.T) {
	table := append([]domain.Range{dex.National}, dex.Regions()...)

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"kanto", "kanto", true},
		{"Sinnoh", "sinnoh", true},
		{"NATIONAL", "national", true},
		{"pald", "paldea", true},
		{"hnn", "hoenn", true},
		{"", "", false},
		{"orre", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := MatchRegion(tt.in, table)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}
