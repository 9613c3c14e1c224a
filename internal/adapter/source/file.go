// Package source reads collection snapshots exported by the inventory and
// Pokédex classifier, and watches them for changes.
package source

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/mmcdole/dextrack/internal/collection"
	"github.com/mmcdole/dextrack/internal/domain"
)

// snapshotDoc is the on-disk shape shared by the JSON and YAML formats.
// Pokédex keys are dex numbers as strings.
type snapshotDoc struct {
	Pokedex map[string]dexEntryDoc `json:"pokedex" yaml:"pokedex"`
	Stored  []storedDoc            `json:"stored" yaml:"stored"`
}

type dexEntryDoc struct {
	Formes map[string]string `json:"formes" yaml:"formes"`
}

type storedDoc struct {
	SpeciesID int      `json:"speciesId" yaml:"speciesId"`
	Shiny     bool     `json:"shiny" yaml:"shiny"`
	Types     []string `json:"types" yaml:"types"`
}

// FileSource implements domain.CollectionSource over a snapshot file.
type FileSource struct {
	path   string
	logger *slog.Logger
}

var _ domain.CollectionSource = (*FileSource)(nil)

// NewFileSource creates a source reading path on every Snapshot call.
func NewFileSource(path string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSource{path: path, logger: logger}
}

// Path returns the snapshot file location.
func (s *FileSource) Path() string { return s.path }

// Snapshot reads and parses the file. A missing file is an empty collection.
func (s *FileSource) Snapshot(ctx context.Context) (domain.CollectionSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.CollectionSnapshot{}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("collection snapshot missing, using empty collection", "path", s.path)
			return emptySnapshot(), nil
		}
		return domain.CollectionSnapshot{}, errors.Wrapf(err, "read snapshot %s", s.path)
	}

	snap, err := Parse(data, formatFor(s.path))
	if err != nil {
		return domain.CollectionSnapshot{}, errors.Wrapf(err, "parse snapshot %s", s.path)
	}
	s.logger.Debug("loaded collection snapshot",
		"path", s.path, "caught", len(snap.Caught), "stored", len(snap.Stored))
	return snap, nil
}

// Format selects the snapshot decoder.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes a snapshot document. Non-numeric dex keys are skipped; the
// first two non-empty types of a stored record become its primary and secondary.
func Parse(data []byte, format Format) (domain.CollectionSnapshot, error) {
	var doc snapshotDoc
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		if len(strings.TrimSpace(string(data))) == 0 {
			return emptySnapshot(), nil
		}
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return domain.CollectionSnapshot{}, errors.Wrap(err, "decode snapshot")
	}

	entries := make(map[int]domain.DexEntry, len(doc.Pokedex))
	for key, e := range doc.Pokedex {
		id, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			continue
		}
		entries[id] = domain.DexEntry{Formes: e.Formes}
	}
	caught, seen := collection.DeriveDexSets(entries)

	stored := make([]domain.StoredRecord, 0, len(doc.Stored))
	for _, r := range doc.Stored {
		rec := domain.StoredRecord{SpeciesID: r.SpeciesID, Shiny: r.Shiny}
		var types []string
		for _, t := range r.Types {
			if strings.TrimSpace(t) != "" {
				types = append(types, t)
			}
		}
		if len(types) > 0 {
			rec.PrimaryType = types[0]
		}
		if len(types) > 1 {
			rec.SecondaryType = types[1]
		}
		stored = append(stored, rec)
	}

	return domain.CollectionSnapshot{Caught: caught, Seen: seen, Stored: stored}, nil
}

func emptySnapshot() domain.CollectionSnapshot {
	return domain.CollectionSnapshot{Caught: domain.NewIDSet(), Seen: domain.NewIDSet()}
}
