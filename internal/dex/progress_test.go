package dex

import (
	"math/rand"
	"testing"

	"github.com/mmcdole/dextrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idRange(start, end int) domain.IDSet {
	set := domain.NewIDSet()
	for i := start; i <= end; i++ {
		set.Add(i)
	}
	return set
}

func TestComputeProgress_KantoScenario(t *testing.T) {
	p := ComputeProgress(idRange(1, 151), idRange(1, 200))

	kanto, ok := p.Region("kanto")
	require.True(t, ok)
	assert.Equal(t, 151, kanto.Caught)
	assert.Equal(t, 151, kanto.Seen)
	assert.Equal(t, 151, kanto.Total)
	assert.Equal(t, 100, kanto.CaughtPercent)

	johto, ok := p.Region("johto")
	require.True(t, ok)
	assert.Equal(t, 0, johto.Caught)
	assert.Equal(t, 49, johto.Seen)

	assert.Equal(t, 151, p.NationalCaught)
	assert.Equal(t, 200, p.NationalSeen)
	assert.Equal(t, 1025, p.NationalTotal)
	assert.Equal(t, 15, p.NationalCaughtPercent)
}

func TestComputeProgress_KeepsTableOrder(t *testing.T) {
	p := ComputeProgress(nil, nil)

	require.Len(t, p.Regions, len(regions))
	for i, r := range regions {
		assert.Equal(t, r.ID, p.Regions[i].ID)
		assert.Equal(t, r.Name, p.Regions[i].Name)
		assert.Equal(t, 0, p.Regions[i].CaughtPercent)
	}
	assert.Equal(t, 0, p.NationalCaught)
}

func TestComputeProgress_IgnoresOutOfRangeIDs(t *testing.T) {
	p := ComputeProgress(domain.NewIDSet(0, -4, 1026, 5000, 25), domain.NewIDSet(9999))

	assert.Equal(t, 1, p.NationalCaught)
	assert.Equal(t, 0, p.NationalSeen)
}

func TestComputeProgress_RegionSumsNeverExceedNational(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		caught := domain.NewIDSet()
		n := rng.Intn(1500)
		for i := 0; i < n; i++ {
			caught.Add(rng.Intn(1200) - 50)
		}

		p := ComputeProgress(caught, caught)

		sum := 0
		for _, r := range p.Regions {
			sum += r.Caught
			assert.GreaterOrEqual(t, r.CaughtPercent, 0)
			assert.LessOrEqual(t, r.CaughtPercent, 100)
		}
		assert.LessOrEqual(t, sum, p.NationalCaught)

		// The built-in table covers the whole national range.
		assert.Equal(t, p.NationalCaught, sum)
	}
}

func TestComputeProgressFor_PartialTable(t *testing.T) {
	national := domain.Range{ID: "national", Name: "National", StartID: 1, EndID: 100}
	table := []domain.Range{
		{ID: "a", Name: "A", StartID: 1, EndID: 10},
		{ID: "b", Name: "B", StartID: 50, EndID: 59},
	}
	caught := domain.NewIDSet(1, 2, 3, 20, 30, 55)

	p := ComputeProgressFor(table, national, caught, caught)

	assert.Equal(t, 6, p.NationalCaught)
	assert.Equal(t, 3, p.Regions[0].Caught)
	assert.Equal(t, 30, p.Regions[0].CaughtPercent)
	assert.Equal(t, 1, p.Regions[1].Caught)
	assert.Less(t, p.Regions[0].Caught+p.Regions[1].Caught, p.NationalCaught)
}

func TestComputeProgressFor_ZeroWidthRange(t *testing.T) {
	national := domain.Range{ID: "national", StartID: 1, EndID: 10}
	table := []domain.Range{{ID: "empty", StartID: 5, EndID: 4}}

	p := ComputeProgressFor(table, national, domain.NewIDSet(4, 5), nil)

	assert.Equal(t, 0, p.Regions[0].Total)
	assert.Equal(t, 0, p.Regions[0].Caught)
	assert.Equal(t, 0, p.Regions[0].CaughtPercent)
}

func TestCountInRange_BothStrategiesAgree(t *testing.T) {
	r := domain.Range{StartID: 100, EndID: 199}
	small := domain.NewIDSet(100, 150, 199, 200, 99)
	large := idRange(0, 500)

	assert.Equal(t, 3, countInRange(small, r))
	assert.Equal(t, 100, countInRange(large, r))
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name        string
		part, total int
		want        int
	}{
		{"zero total", 5, 0, 0},
		{"negative total", 1, -3, 0},
		{"nothing caught", 0, 151, 0},
		{"complete", 151, 151, 100},
		{"rounds down", 151, 1025, 15},
		{"half rounds up", 1, 8, 13},
		{"exact half", 1, 2, 50},
		{"just below half", 1, 200, 1},
		{"one third", 1, 3, 33},
		{"two thirds", 2, 3, 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percent(tt.part, tt.total))
		})
	}
}

func TestTopRegions(t *testing.T) {
	caught := idRange(152, 251) // all of johto
	for i := 1; i <= 75; i++ {
		caught.Add(i) // half of kanto
	}
	caught.Add(899)

	top := TopRegions(ComputeProgress(caught, caught), 3)

	require.Len(t, top, 3)
	assert.Equal(t, "johto", top[0].ID)
	assert.Equal(t, "kanto", top[1].ID)
	assert.Equal(t, "paldea", top[2].ID)

	assert.Nil(t, TopRegions(ComputeProgress(nil, nil), 0))
	assert.Len(t, TopRegions(ComputeProgress(nil, nil), 50), len(regions))
}

func TestTopRegions_TiesKeepTableOrder(t *testing.T) {
	top := TopRegions(ComputeProgress(nil, nil), 2)

	require.Len(t, top, 2)
	assert.Equal(t, "kanto", top[0].ID)
	assert.Equal(t, "johto", top[1].ID)
}
