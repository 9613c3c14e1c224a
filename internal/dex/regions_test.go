package dex

import (
	"testing"

	"github.com/mmcdole/dextrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltInTableIsValid(t *testing.T) {
	require.NoError(t, ValidateTable(Regions(), National))
}

func TestRegionsReturnsCopy(t *testing.T) {
	r := Regions()
	r[0].Name = "mutated"

	assert.Equal(t, "Kanto", Regions()[0].Name)
}

func TestLookup(t *testing.T) {
	r, ok := Lookup("sinnoh")
	require.True(t, ok)
	assert.Equal(t, 387, r.StartID)
	assert.Equal(t, 493, r.EndID)

	n, ok := Lookup("national")
	require.True(t, ok)
	assert.Equal(t, 1025, n.Total())

	_, ok = Lookup("orre")
	assert.False(t, ok)
}

func TestValidateTable(t *testing.T) {
	national := domain.Range{ID: "national", StartID: 1, EndID: 100}

	tests := []struct {
		name    string
		table   []domain.Range
		wantErr bool
	}{
		{"empty table", nil, false},
		{"gap between ranges is allowed", []domain.Range{{ID: "a", StartID: 1, EndID: 10}, {ID: "b", StartID: 20, EndID: 30}}, false},
		{"inverted range", []domain.Range{{ID: "a", StartID: 10, EndID: 1}}, true},
		{"outside national", []domain.Range{{ID: "a", StartID: 90, EndID: 101}}, true},
		{"overlap", []domain.Range{{ID: "a", StartID: 1, EndID: 10}, {ID: "b", StartID: 10, EndID: 20}}, true},
		{"duplicate id", []domain.Range{{ID: "a", StartID: 1, EndID: 10}, {ID: "a", StartID: 11, EndID: 20}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTable(tt.table, national)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidPartition)
				return
			}
			assert.NoError(t, err)
		})
	}
}
