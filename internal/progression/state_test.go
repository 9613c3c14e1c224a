package progression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/dextrack/internal/domain"
)

func TestClaim_Idempotent(t *testing.T) {
	once := Claim(Default(), "kanto_50")
	twice := Claim(once, "kanto_50")

	assert.Equal(t, []string{"kanto_50"}, once.ClaimedMilestones)
	assert.Equal(t, once, twice)
	assert.True(t, IsClaimed(twice, "kanto_50"))
	assert.False(t, IsClaimed(twice, "kanto_151"))
}

func TestClaim_DoesNotMutateInput(t *testing.T) {
	base := domain.ProgressionState{ClaimedMilestones: make([]string, 1, 8)}
	base.ClaimedMilestones[0] = "a"

	next := Claim(base, "b")
	_ = Claim(base, "c")

	assert.Equal(t, []string{"a"}, base.ClaimedMilestones)
	assert.Equal(t, []string{"a", "b"}, next.ClaimedMilestones)
}

func TestClaim_DoesNotApplyReward(t *testing.T) {
	next := Claim(Default(), "whatever")
	assert.Equal(t, domain.Unlocks{}, next.Unlocks)
}

func TestApplyReward(t *testing.T) {
	tests := []struct {
		name   string
		reward domain.Reward
		check  func(t *testing.T, s domain.ProgressionState)
	}{
		{
			name:   "badge leaves state",
			reward: domain.BadgeReward("Shiny Hunter"),
			check: func(t *testing.T, s domain.ProgressionState) {
				assert.Equal(t, Default(), s)
			},
		},
		{
			name:   "pokedex unlock",
			reward: domain.UnlockReward(domain.AreaPokedex, domain.KeyMissingOnly),
			check: func(t *testing.T, s domain.ProgressionState) {
				assert.True(t, s.Unlocks.Pokedex.MissingOnly)
				assert.False(t, s.Unlocks.Pokedex.CaughtOnly)
			},
		},
		{
			name:   "vault unlock",
			reward: domain.UnlockReward(domain.AreaVault, domain.KeyBulkTrash),
			check: func(t *testing.T, s domain.ProgressionState) {
				assert.True(t, s.Unlocks.Vault.BulkTrash)
				assert.True(t, IsUnlocked(s.Unlocks, domain.AreaVault, domain.KeyBulkTrash))
			},
		},
		{
			name:   "unknown key is structurally a no-op",
			reward: domain.UnlockReward(domain.AreaPokedex, "teleport"),
			check: func(t *testing.T, s domain.ProgressionState) {
				assert.Equal(t, Default(), s)
			},
		},
		{
			name:   "key under wrong area is a no-op",
			reward: domain.UnlockReward(domain.AreaVault, domain.KeyMissingOnly),
			check: func(t *testing.T, s domain.ProgressionState) {
				assert.Equal(t, Default(), s)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, ApplyReward(Default(), tt.reward))
		})
	}
}

func TestApplyReward_NeverRelocks(t *testing.T) {
	s := ApplyReward(Default(), domain.UnlockReward(domain.AreaPokedex, domain.KeyCaughtOnly))
	s = ApplyReward(s, domain.UnlockReward(domain.AreaPokedex, domain.KeyCaughtOnly))
	s = ApplyReward(s, domain.BadgeReward("x"))
	assert.True(t, s.Unlocks.Pokedex.CaughtOnly)
}

func TestUnlockedKeys(t *testing.T) {
	assert.Empty(t, UnlockedKeys(Default().Unlocks))

	s := ApplyReward(Default(), domain.UnlockReward(domain.AreaVault, domain.KeyBulkTrash))
	s = ApplyReward(s, domain.UnlockReward(domain.AreaPokedex, domain.KeyCaughtOnly))
	assert.Equal(t, []string{"pokedex.caughtOnly", "vault.bulkTrash"}, UnlockedKeys(s.Unlocks))
}

func TestAddDuplicatesTransferred(t *testing.T) {
	s := AddDuplicatesTransferred(Default(), 20)
	s = AddDuplicatesTransferred(s, 10)
	assert.Equal(t, 30, s.Counters.DuplicatesTransferred)

	for _, bad := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.Equal(t, 30, AddDuplicatesTransferred(s, bad).Counters.DuplicatesTransferred, "%v", bad)
	}

	assert.Equal(t, 32, AddDuplicatesTransferred(s, 2.9).Counters.DuplicatesTransferred)
	assert.Equal(t, 30, AddDuplicatesTransferred(s, 0.5).Counters.DuplicatesTransferred)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want domain.ProgressionState
	}{
		{"empty", ``, Default()},
		{"garbage", `not json`, Default()},
		{"wrong top-level type", `[1,2,3]`, Default()},
		{
			name: "full document",
			in:   `{"claimedMilestones":["kanto_50","dup_25"],"unlocks":{"pokedex":{"missingOnly":true},"vault":{"bulkTrash":true}},"counters":{"duplicatesTransferred":30}}`,
			want: domain.ProgressionState{
				ClaimedMilestones: []string{"kanto_50", "dup_25"},
				Unlocks: domain.Unlocks{
					Pokedex: domain.PokedexUnlocks{MissingOnly: true},
					Vault:   domain.VaultUnlocks{BulkTrash: true},
				},
				Counters: domain.Counters{DuplicatesTransferred: 30},
			},
		},
		{
			name: "non-string and duplicate claims dropped",
			in:   `{"claimedMilestones":["a",1,null,"a",{"x":1},"b"]}`,
			want: domain.ProgressionState{ClaimedMilestones: []string{"a", "b"}},
		},
		{
			name: "non-boolean and unknown flags ignored",
			in:   `{"unlocks":{"pokedex":{"missingOnly":"yes","caughtOnly":true,"teleport":true}}}`,
			want: domain.ProgressionState{
				ClaimedMilestones: []string{},
				Unlocks:           domain.Unlocks{Pokedex: domain.PokedexUnlocks{CaughtOnly: true}},
			},
		},
		{
			name: "negative counter",
			in:   `{"counters":{"duplicatesTransferred":-4}}`,
			want: Default(),
		},
		{
			name: "fractional counter floored",
			in:   `{"counters":{"duplicatesTransferred":12.7}}`,
			want: domain.ProgressionState{ClaimedMilestones: []string{}, Counters: domain.Counters{DuplicatesTransferred: 12}},
		},
		{
			name: "string counter",
			in:   `{"counters":{"duplicatesTransferred":"12"}}`,
			want: Default(),
		},
		{
			name: "malformed section keeps the rest",
			in:   `{"claimedMilestones":["a"],"unlocks":{"pokedex":"nope","vault":{"bulkTrash":true}},"counters":{"duplicatesTransferred":3}}`,
			want: domain.ProgressionState{
				ClaimedMilestones: []string{"a"},
				Unlocks:           domain.Unlocks{Vault: domain.VaultUnlocks{BulkTrash: true}},
				Counters:          domain.Counters{DuplicatesTransferred: 3},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode([]byte(tt.in)))
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	s := Claim(Default(), "kanto_50")
	s = ApplyReward(s, domain.UnlockReward(domain.AreaPokedex, domain.KeyRegionFilter))
	s = AddDuplicatesTransferred(s, 7)

	data, err := Encode(s)
	require.NoError(t, err)
	assert.Equal(t, s, Decode(data))

	data, err = Encode(domain.ProgressionState{})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"claimedMilestones":[]`)
}
