package domain

// StoredRecord is one item held in the vault, as supplied by the inventory.
// Types are already resolved to readable names; empty means absent.
type StoredRecord struct {
	SpeciesID     int    `json:"speciesId"`
	Shiny         bool   `json:"shiny"`
	PrimaryType   string `json:"type1,omitempty"`
	SecondaryType string `json:"type2,omitempty"`
}

// VaultStats summarises the stored records.
type VaultStats struct {
	TotalStored   int `json:"totalStored"`
	UniqueSpecies int `json:"uniqueSpecies"`
	ShinyCount    int `json:"shinyCount"`
}

// TypeProgress maps a lower-cased type tag to the number of records carrying it.
type TypeProgress map[string]int

// Count returns the tally for tag, treating an absent tag as zero.
func (t TypeProgress) Count(tag string) int {
	return t[tag]
}
