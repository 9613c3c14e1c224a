package dex

import (
	"github.com/cockroachdb/errors"
	"github.com/mmcdole/dextrack/internal/domain"
)

// National is the full ordinal range the partition table subdivides.
var National = domain.Range{ID: domain.NationalRangeID, Name: "National", StartID: 1, EndID: 1025}

// regions is the partition table, in display order.
var regions = []domain.Range{
	{ID: "kanto", Name: "Kanto", StartID: 1, EndID: 151},
	{ID: "johto", Name: "Johto", StartID: 152, EndID: 251},
	{ID: "hoenn", Name: "Hoenn", StartID: 252, EndID: 386},
	{ID: "sinnoh", Name: "Sinnoh", StartID: 387, EndID: 493},
	{ID: "unova", Name: "Unova", StartID: 494, EndID: 649},
	{ID: "kalos", Name: "Kalos", StartID: 650, EndID: 721},
	{ID: "alola", Name: "Alola", StartID: 722, EndID: 809},
	{ID: "galar", Name: "Galar", StartID: 810, EndID: 898},
	{ID: "paldea", Name: "Paldea", StartID: 899, EndID: 1025},
}

// Regions returns a copy of the partition table.
func Regions() []domain.Range {
	out := make([]domain.Range, len(regions))
	copy(out, regions)
	return out
}

// Lookup finds a region by id. "national" resolves to the National range.
func Lookup(id string) (domain.Range, bool) {
	if id == National.ID {
		return National, true
	}
	for _, r := range regions {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Range{}, false
}

// ValidateTable checks that every range is well-formed, lies inside national,
// has a unique id, and does not overlap any other range.
func ValidateTable(table []domain.Range, national domain.Range) error {
	seen := make(map[string]bool, len(table))
	for i, r := range table {
		if r.StartID > r.EndID {
			return errors.Wrapf(domain.ErrInvalidPartition, "range %q: start %d > end %d", r.ID, r.StartID, r.EndID)
		}
		if r.StartID < national.StartID || r.EndID > national.EndID {
			return errors.Wrapf(domain.ErrInvalidPartition, "range %q outside %q", r.ID, national.ID)
		}
		if seen[r.ID] {
			return errors.Wrapf(domain.ErrInvalidPartition, "duplicate range id %q", r.ID)
		}
		seen[r.ID] = true
		for _, other := range table[:i] {
			if r.StartID <= other.EndID && other.StartID <= r.EndID {
				return errors.Wrapf(domain.ErrInvalidPartition, "range %q overlaps %q", r.ID, other.ID)
			}
		}
	}
	return nil
}
