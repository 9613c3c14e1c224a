package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/mmcdole/dextrack/internal/dex"
	"github.com/mmcdole/dextrack/internal/domain"
	"github.com/mmcdole/dextrack/internal/milestone"
	"github.com/mmcdole/dextrack/internal/progression"
	"github.com/mmcdole/dextrack/internal/search"
	"github.com/mmcdole/dextrack/internal/vault"
)

// Evaluation is everything derived from one collection snapshot plus the
// persisted progression state.
type Evaluation struct {
	Dex        domain.ProgressSnapshot
	Vault      domain.VaultStats
	Types      domain.TypeProgress
	State      domain.ProgressionState
	Milestones []domain.MilestoneView

	MostCaughtSpecies int
	MostCaughtCount   int
}

// Signals returns the rule inputs this evaluation was built from.
func (e Evaluation) Signals() milestone.Signals {
	return milestone.Signals{Dex: e.Dex, Vault: e.Vault, Types: e.Types, Counters: e.State.Counters}
}

// ClaimResult describes one claim attempt that did not fail.
type ClaimResult struct {
	Milestone      domain.Milestone
	AlreadyClaimed bool
	Grant          *domain.Grant // set for presentational rewards on first claim
}

// ProgressionService evaluates milestones and drives the claim state machine.
type ProgressionService struct {
	source    domain.CollectionSource
	store     domain.ProgressionStore
	grants    domain.GrantStore
	profileID string
	logger    *slog.Logger
	now       func() time.Time

	// serialises read-modify-write cycles on the progression document
	mu sync.Mutex
}

// NewProgressionService creates a new progression service.
func NewProgressionService(
	source domain.CollectionSource,
	store domain.ProgressionStore,
	grants domain.GrantStore,
	profileID string,
	logger *slog.Logger,
) *ProgressionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressionService{
		source:    source,
		store:     store,
		grants:    grants,
		profileID: profileID,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// State loads the persisted progression, substituting defaults when none exists.
func (s *ProgressionService) State() (domain.ProgressionState, error) {
	state, err := s.store.GetProgression(s.profileID)
	if err != nil {
		if domain.IsNotFound(err) {
			return progression.Default(), nil
		}
		s.logger.Error("failed to load progression", "error", err, "profile", s.profileID)
		return progression.Default(), errors.Wrap(err, "load progression")
	}
	return state, nil
}

// Evaluate takes one collection snapshot and derives every signal and milestone status from it.
func (s *ProgressionService) Evaluate(ctx context.Context) (Evaluation, error) {
	state, err := s.State()
	if err != nil {
		return Evaluation{}, err
	}
	return s.evaluate(ctx, state)
}

func (s *ProgressionService) evaluate(ctx context.Context, state domain.ProgressionState) (Evaluation, error) {
	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		s.logger.Error("failed to read collection", "error", err)
		return Evaluation{}, errors.Wrap(err, "read collection snapshot")
	}

	ev := Evaluation{
		Dex:   dex.ComputeProgress(snap.Caught, snap.Seen),
		Vault: vault.ComputeStats(snap.Stored),
		Types: vault.ComputeTypeProgress(snap.Stored),
		State: state,
	}
	if species, count, ok := vault.MostCaught(snap.Stored); ok {
		ev.MostCaughtSpecies, ev.MostCaughtCount = species, count
	}
	ev.Milestones = milestone.List(milestone.Catalog(), ev.Signals(), state.ClaimedMilestones, milestone.Filter{})

	s.logger.Debug("evaluated progression",
		"caught", ev.Dex.NationalCaught,
		"stored", ev.Vault.TotalStored,
		"claimed", len(state.ClaimedMilestones))
	return ev, nil
}

// Milestones lists milestone views matching filter, fuzzy-ranked by query when
// set. The returned evaluation is the one the views were built from.
func (s *ProgressionService) Milestones(ctx context.Context, filter milestone.Filter, query string) (Evaluation, []domain.MilestoneView, error) {
	ev, err := s.Evaluate(ctx)
	if err != nil {
		return Evaluation{}, nil, err
	}
	views := make([]domain.MilestoneView, 0, len(ev.Milestones))
	for _, v := range ev.Milestones {
		if filter.Match(v) {
			views = append(views, v)
		}
	}
	return ev, search.FilterMilestones(views, query), nil
}

// Claim claims one milestone and applies its reward in a single write.
// Claiming an already-claimed milestone succeeds without side effects.
func (s *ProgressionService) Claim(ctx context.Context, id string) (ClaimResult, error) {
	m, ok := milestone.Lookup(id)
	if !ok {
		err := errors.Wrapf(domain.ErrMilestoneNotFound, "%q", id)
		if suggestion, found := search.Suggest(id, milestone.IDs()); found {
			err = errors.WithHint(err, "did you mean "+suggestion+"?")
		}
		return ClaimResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.State()
	if err != nil {
		return ClaimResult{}, err
	}
	if progression.IsClaimed(state, id) {
		return ClaimResult{Milestone: m, AlreadyClaimed: true}, nil
	}

	ev, err := s.evaluate(ctx, state)
	if err != nil {
		return ClaimResult{}, err
	}
	if !milestone.EvaluateRule(m.Rule, ev.Signals()) {
		return ClaimResult{}, errors.Wrapf(domain.ErrMilestoneLocked, "%q", id)
	}

	return s.commit(state, m)
}

// ClaimAll claims every currently claimable milestone against one snapshot.
// It stops at the first storage failure, returning what was committed so far.
func (s *ProgressionService) ClaimAll(ctx context.Context) ([]ClaimResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.State()
	if err != nil {
		return nil, err
	}
	ev, err := s.evaluate(ctx, state)
	if err != nil {
		return nil, err
	}

	var results []ClaimResult
	for _, id := range milestone.Claimable(milestone.Catalog(), ev.Signals(), state.ClaimedMilestones) {
		m, _ := milestone.Lookup(id)
		res, err := s.commit(state, m)
		if err != nil {
			return results, err
		}
		state = progression.ApplyReward(progression.Claim(state, id), m.Reward)
		results = append(results, res)
	}
	return results, nil
}

// commit persists Claim+ApplyReward and, for presentational rewards, a grant.
func (s *ProgressionService) commit(state domain.ProgressionState, m domain.Milestone) (ClaimResult, error) {
	next := progression.ApplyReward(progression.Claim(state, m.ID), m.Reward)

	var grant *domain.Grant
	if m.Reward.Presentational() {
		grant = &domain.Grant{MilestoneID: m.ID, Reward: m.Reward, CreatedAt: s.now()}
	}

	if err := s.store.CommitClaim(s.profileID, next, grant); err != nil {
		s.logger.Error("failed to commit claim", "error", err, "milestone", m.ID)
		return ClaimResult{}, errors.Wrapf(err, "claim %s", m.ID)
	}

	s.logger.Info("milestone claimed", "milestone", m.ID, "reward", m.Reward.String())
	return ClaimResult{Milestone: m, Grant: grant}, nil
}

// AddDuplicatesTransferred records duplicates released from the vault.
// Invalid amounts leave the counter unchanged and skip the write.
func (s *ProgressionService) AddDuplicatesTransferred(amount float64) (domain.ProgressionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.State()
	if err != nil {
		return state, err
	}
	next := progression.AddDuplicatesTransferred(state, amount)
	if next.Counters == state.Counters {
		return state, nil
	}
	if err := s.store.SaveProgression(s.profileID, next); err != nil {
		s.logger.Error("failed to save progression", "error", err)
		return state, errors.Wrap(err, "save duplicate counter")
	}
	s.logger.Debug("duplicates transferred", "amount", amount, "total", next.Counters.DuplicatesTransferred)
	return next, nil
}

// PendingGrants lists rewards not yet delivered to the inventory.
func (s *ProgressionService) PendingGrants() ([]domain.Grant, error) {
	grants, err := s.grants.PendingGrants()
	if err != nil {
		return nil, errors.Wrap(err, "list grants")
	}
	return grants, nil
}

// AckGrant marks a grant as delivered.
func (s *ProgressionService) AckGrant(id string) error {
	if err := s.grants.AckGrant(id); err != nil {
		return errors.Wrap(err, "ack grant")
	}
	s.logger.Debug("grant acknowledged", "grant", id)
	return nil
}
