package domain

import "context"

// CollectionSource supplies caught/seen sets and stored records
// (implemented by adapter/source).
type CollectionSource interface {
	Snapshot(ctx context.Context) (CollectionSnapshot, error)
}

// ProgressionStore persists progression documents keyed by profile id.
// Get returns ErrNotFound when nothing has been saved yet.
type ProgressionStore interface {
	GetProgression(profileID string) (ProgressionState, error)
	SaveProgression(profileID string, state ProgressionState) error

	// CommitClaim writes the new state and any grant in one transaction.
	CommitClaim(profileID string, state ProgressionState, grant *Grant) error
}

// GrantStore is the outbox of presentational rewards.
type GrantStore interface {
	PendingGrants() ([]Grant, error)
	AckGrant(id string) error
}

// ProfileStore persists profile documents keyed by profile id.
type ProfileStore interface {
	GetProfile(profileID string) (Profile, error)
	SaveProfile(profileID string, profile Profile) error
}
