package domain

// Range is a contiguous, inclusive span of dex numbers.
type Range struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	StartID int    `json:"startDexNum"`
	EndID   int    `json:"endDexNum"`
}

// Total returns the number of ids in the range (0 for an inverted range).
func (r Range) Total() int {
	if r.EndID < r.StartID {
		return 0
	}
	return r.EndID - r.StartID + 1
}

// Contains reports whether id falls inside [StartID, EndID].
func (r Range) Contains(id int) bool {
	return id >= r.StartID && id <= r.EndID
}

// RangeProgress is the caught/seen tally for one range. Derived, never persisted.
type RangeProgress struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Caught        int    `json:"caught"`
	Seen          int    `json:"seen"`
	Total         int    `json:"total"`
	CaughtPercent int    `json:"caughtPct"`
}

// Complete reports whether every id in a non-empty range is caught.
func (p RangeProgress) Complete() bool {
	return p.Total > 0 && p.Caught >= p.Total
}

// ProgressSnapshot (a.k.a. DexProgress) aggregates national and per-region progress.
// Regions are ordered like the partition table.
type ProgressSnapshot struct {
	NationalCaught        int             `json:"nationalCaught"`
	NationalSeen          int             `json:"nationalSeen"`
	NationalTotal         int             `json:"nationalTotal"`
	NationalCaughtPercent int             `json:"nationalCaughtPct"`
	Regions               []RangeProgress `json:"regions"`
}

// Region returns the progress entry for a region id.
func (p ProgressSnapshot) Region(id string) (RangeProgress, bool) {
	for _, r := range p.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return RangeProgress{}, false
}

// National returns the national aggregate shaped as a RangeProgress.
func (p ProgressSnapshot) National() RangeProgress {
	return RangeProgress{
		ID:            NationalRangeID,
		Name:          "National",
		Caught:        p.NationalCaught,
		Seen:          p.NationalSeen,
		Total:         p.NationalTotal,
		CaughtPercent: p.NationalCaughtPercent,
	}
}

// NationalRangeID addresses the national range wherever a range id is accepted.
const NationalRangeID = "national"

// IDSet is a deduplicated set of dex numbers.
type IDSet map[int]struct{}

// NewIDSet builds a set from ids.
func NewIDSet(ids ...int) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Add inserts id into the set.
func (s IDSet) Add(id int) {
	s[id] = struct{}{}
}

// Has reports whether id is in the set.
func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}
