package domain

import "github.com/cockroachdb/errors"

// Sentinel errors for domain operations
var (
	// ErrNotFound indicates a persisted document does not exist yet
	ErrNotFound = errors.New("document not found")

	// ErrMilestoneNotFound indicates the milestone id is not in the catalog
	ErrMilestoneNotFound = errors.New("milestone not found")

	// ErrMilestoneLocked indicates the milestone's rule is not satisfied
	ErrMilestoneLocked = errors.New("milestone is locked")

	// ErrGrantNotFound indicates the reward grant was already acknowledged or never existed
	ErrGrantNotFound = errors.New("grant not found")

	// ErrStoreClosed indicates a write was attempted after Close
	ErrStoreClosed = errors.New("store is closed")

	// ErrInvalidPartition indicates a partition table has inverted, overlapping or out-of-bounds ranges
	ErrInvalidPartition = errors.New("invalid partition table")
)

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, ErrNotFound)
}
