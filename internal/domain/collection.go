package domain

// DexEntry is the classification source's record for one dex number:
// forme name -> status such as "Seen", "Caught" or "ShinyCaught".
type DexEntry struct {
	Formes map[string]string `json:"formes"`
}

// CollectionSnapshot is one consistent read of the external collaborators.
// Services take a snapshot once per evaluation and never re-read mid-computation.
type CollectionSnapshot struct {
	Caught IDSet
	Seen   IDSet
	Stored []StoredRecord
}
