package service

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/dextrack/internal/adapter"
	"github.com/mmcdole/dextrack/internal/domain"
	"github.com/mmcdole/dextrack/internal/milestone"
	"github.com/mmcdole/dextrack/internal/progression"
	"github.com/mmcdole/dextrack/internal/store"
)

type fakeSource struct {
	snap  domain.CollectionSnapshot
	err   error
	calls int
}

func (f *fakeSource) Snapshot(ctx context.Context) (domain.CollectionSnapshot, error) {
	f.calls++
	return f.snap, f.err
}

// failingStore fails every write and optionally every read.
type failingStore struct {
	*store.DocumentStore
	readErr error
}

func (f *failingStore) GetProgression(id string) (domain.ProgressionState, error) {
	if f.readErr != nil {
		return progression.Default(), f.readErr
	}
	return f.DocumentStore.GetProgression(id)
}

func (f *failingStore) CommitClaim(string, domain.ProgressionState, *domain.Grant) error {
	return errors.New("disk full")
}

func (f *failingStore) SaveProgression(string, domain.ProgressionState) error {
	return errors.New("disk full")
}

func kanto(t *testing.T) *fakeSource {
	t.Helper()
	caught := domain.NewIDSet()
	for id := 1; id <= 151; id++ {
		caught.Add(id)
	}
	seen := domain.NewIDSet()
	for id := 1; id <= 200; id++ {
		seen.Add(id)
	}
	return &fakeSource{snap: domain.CollectionSnapshot{
		Caught: caught,
		Seen:   seen,
		Stored: []domain.StoredRecord{
			{SpeciesID: 25, Shiny: true, PrimaryType: "Electric"},
			{SpeciesID: 25, PrimaryType: "Electric"},
			{SpeciesID: 1, PrimaryType: "Grass", SecondaryType: "Poison"},
		},
	}}
}

func newService(t *testing.T, src domain.CollectionSource) (*ProgressionService, *store.DocumentStore) {
	t.Helper()
	st, err := store.Open("")
	require.NoError(t, err)
	svc := NewProgressionService(src, st, st, "local", adapter.NullLogger())
	svc.now = func() time.Time { return time.Unix(1700000000, 0).UTC() }
	return svc, st
}

func statusOf(views []domain.MilestoneView, id string) domain.MilestoneStatus {
	for _, v := range views {
		if v.ID == id {
			return v.Status
		}
	}
	return ""
}

func TestEvaluate_KantoScenario(t *testing.T) {
	src := kanto(t)
	svc, _ := newService(t, src)

	ev, err := svc.Evaluate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)

	k, ok := ev.Dex.Region("kanto")
	require.True(t, ok)
	assert.Equal(t, 151, k.Caught)
	assert.Equal(t, 100, k.CaughtPercent)
	assert.Equal(t, 151, ev.Dex.NationalCaught)
	assert.Equal(t, 15, ev.Dex.NationalCaughtPercent)
	assert.Equal(t, 200, ev.Dex.NationalSeen)

	assert.Equal(t, 3, ev.Vault.TotalStored)
	assert.Equal(t, 2, ev.Vault.UniqueSpecies)
	assert.Equal(t, 1, ev.Vault.ShinyCount)
	assert.Equal(t, 2, ev.Types.Count("electric"))
	assert.Equal(t, 25, ev.MostCaughtSpecies)
	assert.Equal(t, 2, ev.MostCaughtCount)

	assert.Equal(t, domain.StatusClaimable, statusOf(ev.Milestones, "kanto_151"))
	assert.Equal(t, domain.StatusClaimable, statusOf(ev.Milestones, "first_shiny"))
	assert.Equal(t, domain.StatusLocked, statusOf(ev.Milestones, "national_500"))
}

func TestClaim_FirstThenIdempotent(t *testing.T) {
	svc, st := newService(t, kanto(t))
	ctx := context.Background()

	res, err := svc.Claim(ctx, "kanto_50")
	require.NoError(t, err)
	assert.False(t, res.AlreadyClaimed)
	require.NotNil(t, res.Grant)
	assert.Equal(t, domain.BadgeReward("Kanto Collector"), res.Grant.Reward)

	res, err = svc.Claim(ctx, "kanto_50")
	require.NoError(t, err)
	assert.True(t, res.AlreadyClaimed)
	assert.Nil(t, res.Grant)

	state, err := svc.State()
	require.NoError(t, err)
	assert.Equal(t, []string{"kanto_50"}, state.ClaimedMilestones)

	grants, err := st.PendingGrants()
	require.NoError(t, err)
	assert.Len(t, grants, 1)

	ev, err := svc.Evaluate(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusClaimed, statusOf(ev.Milestones, "kanto_50"))
}

func TestClaim_Locked(t *testing.T) {
	svc, _ := newService(t, kanto(t))

	_, err := svc.Claim(context.Background(), "national_500")
	assert.ErrorIs(t, err, domain.ErrMilestoneLocked)

	state, err := svc.State()
	require.NoError(t, err)
	assert.Empty(t, state.ClaimedMilestones)
}

func TestClaim_UnknownSuggests(t *testing.T) {
	svc, _ := newService(t, kanto(t))

	_, err := svc.Claim(context.Background(), "kanto_15")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMilestoneNotFound)
	assert.Contains(t, errors.FlattenHints(err), "kanto_151")
}

func TestClaim_StorageFailureLeavesStateUnchanged(t *testing.T) {
	mem, err := store.Open("")
	require.NoError(t, err)
	fs := &failingStore{DocumentStore: mem}
	svc := NewProgressionService(kanto(t), fs, mem, "local", adapter.NullLogger())

	_, err = svc.Claim(context.Background(), "kanto_50")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	state, err := svc.State()
	require.NoError(t, err)
	assert.Empty(t, state.ClaimedMilestones)

	grants, err := mem.PendingGrants()
	require.NoError(t, err)
	assert.Empty(t, grants)
}

func TestState_ReadFailureSurfaces(t *testing.T) {
	mem, err := store.Open("")
	require.NoError(t, err)
	fs := &failingStore{DocumentStore: mem, readErr: errors.New("corrupt page")}
	svc := NewProgressionService(kanto(t), fs, mem, "local", adapter.NullLogger())

	_, err = svc.Evaluate(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestEvaluate_SourceFailure(t *testing.T) {
	svc, _ := newService(t, &fakeSource{err: errors.New("offline")})
	_, err := svc.Evaluate(context.Background())
	assert.ErrorContains(t, err, "offline")
}

func TestClaimAll(t *testing.T) {
	svc, st := newService(t, kanto(t))
	ctx := context.Background()

	results, err := svc.ClaimAll(ctx)
	require.NoError(t, err)

	var ids []string
	for _, r := range results {
		ids = append(ids, r.Milestone.ID)
	}
	assert.Equal(t, []string{"kanto_50", "kanto_151", "national_151", "first_shiny", "region_kanto_100"}, ids)

	state, err := svc.State()
	require.NoError(t, err)
	assert.Equal(t, ids, state.ClaimedMilestones)

	grants, err := st.PendingGrants()
	require.NoError(t, err)
	assert.Len(t, grants, 5)

	results, err = svc.ClaimAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestAddDuplicatesTransferred_FlipsDup25(t *testing.T) {
	svc, _ := newService(t, kanto(t))
	ctx := context.Background()

	_, err := svc.AddDuplicatesTransferred(20)
	require.NoError(t, err)
	ev, err := svc.Evaluate(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusLocked, statusOf(ev.Milestones, "dup_25"))

	state, err := svc.AddDuplicatesTransferred(10)
	require.NoError(t, err)
	assert.Equal(t, 30, state.Counters.DuplicatesTransferred)

	ev, err = svc.Evaluate(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusClaimable, statusOf(ev.Milestones, "dup_25"))

	state, err = svc.AddDuplicatesTransferred(-3)
	require.NoError(t, err)
	assert.Equal(t, 30, state.Counters.DuplicatesTransferred)
}

func TestMilestones_FilterAndQuery(t *testing.T) {
	svc, _ := newService(t, kanto(t))

	_, views, err := svc.Milestones(context.Background(), milestoneFilter(domain.CategoryVault, domain.StatusClaimable), "")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "first_shiny", views[0].ID)

	_, views, err = svc.Milestones(context.Background(), milestoneFilter("", ""), "electric mastery")
	require.NoError(t, err)
	assert.Len(t, views, 3)
}

func TestMilestones_ReadsSnapshotOnce(t *testing.T) {
	src := kanto(t)
	svc, _ := newService(t, src)

	ev, views, err := svc.Milestones(context.Background(), milestoneFilter(domain.CategoryRegion, ""), "")
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, 151, ev.Dex.NationalCaught)
	for _, v := range views {
		assert.Equal(t, statusOf(ev.Milestones, v.ID), v.Status, v.ID)
	}
}

func TestAckGrant(t *testing.T) {
	svc, _ := newService(t, kanto(t))
	res, err := svc.Claim(context.Background(), "first_shiny")
	require.NoError(t, err)

	require.NoError(t, svc.AckGrant(res.Grant.ID))
	grants, err := svc.PendingGrants()
	require.NoError(t, err)
	assert.Empty(t, grants)

	assert.ErrorIs(t, svc.AckGrant(res.Grant.ID), domain.ErrGrantNotFound)
}

func milestoneFilter(c domain.Category, s domain.MilestoneStatus) milestone.Filter {
	return milestone.Filter{Category: c, Status: s}
}
