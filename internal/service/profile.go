package service

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/mmcdole/dextrack/internal/domain"
	"github.com/mmcdole/dextrack/internal/profile"
)

// ProfileService loads and saves the trainer profile.
type ProfileService struct {
	store     domain.ProfileStore
	profileID string
	logger    *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(store domain.ProfileStore, profileID string, logger *slog.Logger) *ProfileService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileService{store: store, profileID: profileID, logger: logger}
}

// Load returns the stored profile, or defaults when none is saved.
func (s *ProfileService) Load() (domain.Profile, error) {
	p, err := s.store.GetProfile(s.profileID)
	if err != nil {
		if domain.IsNotFound(err) {
			return profile.Default(), nil
		}
		s.logger.Error("failed to load profile", "error", err)
		return profile.Default(), errors.Wrap(err, "load profile")
	}
	return p, nil
}

// Save stores p, with blank fields replaced by defaults.
func (s *ProfileService) Save(p domain.Profile) (domain.Profile, error) {
	p = profile.Normalize(p)
	if err := s.store.SaveProfile(s.profileID, p); err != nil {
		s.logger.Error("failed to save profile", "error", err)
		return p, errors.Wrap(err, "save profile")
	}
	return p, nil
}

// Update changes only the non-empty fields of an existing profile.
func (s *ProfileService) Update(name, title string) (domain.Profile, error) {
	p, err := s.Load()
	if err != nil {
		return p, err
	}
	if name != "" {
		p.Name = name
	}
	if title != "" {
		p.Title = title
	}
	return s.Save(p)
}
