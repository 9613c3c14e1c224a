package vault

import (
	"strings"

	"github.com/mmcdole/dextrack/internal/domain"
)

// ComputeStats counts stored records, distinct species and shinies.
func ComputeStats(records []domain.StoredRecord) domain.VaultStats {
	species := make(map[int]struct{}, len(records))
	shiny := 0
	for _, r := range records {
		species[r.SpeciesID] = struct{}{}
		if r.Shiny {
			shiny++
		}
	}
	return domain.VaultStats{
		TotalStored:   len(records),
		UniqueSpecies: len(species),
		ShinyCount:    shiny,
	}
}

// ComputeTypeProgress tallies each distinct type tag per record.
// A record whose secondary type equals its primary counts once.
func ComputeTypeProgress(records []domain.StoredRecord) domain.TypeProgress {
	progress := make(domain.TypeProgress)
	for _, r := range records {
		for _, tag := range RecordTags(r) {
			progress[tag]++
		}
	}
	return progress
}

// RecordTags returns the normalized, distinct tags of a record.
// Without a primary type the record has no tags.
func RecordTags(r domain.StoredRecord) []string {
	primary := normalize(r.PrimaryType)
	if primary == "" {
		return nil
	}
	secondary := normalize(r.SecondaryType)
	if secondary != "" && secondary != primary {
		return []string{primary, secondary}
	}
	return []string{primary}
}

func normalize(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// MostCaught returns the species stored the most times.
// Ties go to the species that appears first. ok is false for an empty vault.
func MostCaught(records []domain.StoredRecord) (speciesID, count int, ok bool) {
	if len(records) == 0 {
		return 0, 0, false
	}

	counts := make(map[int]int, len(records))
	order := make([]int, 0, len(records))
	for _, r := range records {
		if counts[r.SpeciesID] == 0 {
			order = append(order, r.SpeciesID)
		}
		counts[r.SpeciesID]++
	}

	for _, id := range order {
		if counts[id] > count {
			speciesID, count = id, counts[id]
		}
	}
	return speciesID, count, true
}
