// Package collection turns the classification source's per-entry forme
// statuses into the caught/seen sets the dex aggregator consumes.
package collection

import (
	"strings"

	"github.com/mmcdole/dextrack/internal/domain"
)

// caughtSuffix marks a forme status as a caught outcome ("Caught", "ShinyCaught", ...).
const caughtSuffix = "Caught"

// DeriveDexSets marks an id seen when it has any entry and caught when any
// of its forme statuses is a caught outcome.
func DeriveDexSets(entries map[int]domain.DexEntry) (caught, seen domain.IDSet) {
	caught = make(domain.IDSet)
	seen = make(domain.IDSet, len(entries))

	for id, entry := range entries {
		seen.Add(id)
		for _, status := range entry.Formes {
			if IsCaughtStatus(status) {
				caught.Add(id)
				break
			}
		}
	}
	return caught, seen
}

// IsCaughtStatus reports whether a forme status is a caught outcome.
func IsCaughtStatus(status string) bool {
	return strings.HasSuffix(status, caughtSuffix)
}
