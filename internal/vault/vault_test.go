package vault

import (
	"testing"

	"github.com/mmcdole/dextrack/internal/domain"
	"github.com/stretchr/testify/assert"
)

func rec(species int, types ...string) domain.StoredRecord {
	r := domain.StoredRecord{SpeciesID: species}
	if len(types) > 0 {
		r.PrimaryType = types[0]
	}
	if len(types) > 1 {
		r.SecondaryType = types[1]
	}
	return r
}

func TestComputeTypeProgress_BugFireScenario(t *testing.T) {
	records := []domain.StoredRecord{
		rec(10, "bug"), rec(11, "bug"), rec(13, "bug"),
		rec(636, "bug", "fire"), rec(637, "bug", "fire"),
	}

	assert.Equal(t, domain.TypeProgress{"bug": 5, "fire": 2}, ComputeTypeProgress(records))
}

func TestComputeTypeProgress_Normalization(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.StoredRecord
		want    domain.TypeProgress
	}{
		{"empty vault", nil, domain.TypeProgress{}},
		{"case and whitespace", []domain.StoredRecord{rec(1, " Grass ", "POISON")}, domain.TypeProgress{"grass": 1, "poison": 1}},
		{"repeated tag counts once", []domain.StoredRecord{rec(1, "Water", "water")}, domain.TypeProgress{"water": 1}},
		{"no tags skipped", []domain.StoredRecord{rec(1), rec(2, "", "")}, domain.TypeProgress{}},
		{"secondary without primary skipped", []domain.StoredRecord{rec(1, "", "flying")}, domain.TypeProgress{}},
		{"blank secondary ignored", []domain.StoredRecord{rec(1, "normal", "  ")}, domain.TypeProgress{"normal": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTypeProgress(tt.records))
		})
	}
}

func TestTypeProgressCountAbsentIsZero(t *testing.T) {
	assert.Equal(t, 0, ComputeTypeProgress(nil).Count("dragon"))
}

func TestComputeStats(t *testing.T) {
	records := []domain.StoredRecord{
		{SpeciesID: 25, Shiny: true},
		{SpeciesID: 25},
		{SpeciesID: 133},
		{SpeciesID: 1, Shiny: true},
	}

	assert.Equal(t, domain.VaultStats{TotalStored: 4, UniqueSpecies: 3, ShinyCount: 2}, ComputeStats(records))
	assert.Equal(t, domain.VaultStats{}, ComputeStats(nil))
}

func TestMostCaught(t *testing.T) {
	_, _, ok := MostCaught(nil)
	assert.False(t, ok)

	id, count, ok := MostCaught([]domain.StoredRecord{rec(7), rec(25), rec(25), rec(7), rec(129), rec(129), rec(129)})
	assert.True(t, ok)
	assert.Equal(t, 129, id)
	assert.Equal(t, 3, count)

	id, count, _ = MostCaught([]domain.StoredRecord{rec(4), rec(1), rec(1), rec(4)})
	assert.Equal(t, 4, id, "ties go to first appearance")
	assert.Equal(t, 2, count)
}
