package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/mmcdole/dextrack/internal/domain"
	"github.com/mmcdole/dextrack/internal/profile"
	"github.com/mmcdole/dextrack/internal/progression"
)

// Bucket names
var (
	bucketProgression = []byte("progression")
	bucketProfiles    = []byte("profiles")
	bucketGrants      = []byte("grants")
)

var allBuckets = [][]byte{bucketProgression, bucketProfiles, bucketGrants}

// DocumentStore implements the progression, profile and grant stores using BoltDB.
type DocumentStore struct {
	db     *bolt.DB
	mu     sync.RWMutex // Protects memory cache
	closed bool

	// In-memory cache for hot-path reads (promoted on access).
	// In memory-only mode it is the only copy.
	cache map[string][]byte
}

var (
	_ domain.ProgressionStore = (*DocumentStore)(nil)
	_ domain.ProfileStore     = (*DocumentStore)(nil)
	_ domain.GrantStore       = (*DocumentStore)(nil)
)

// Open opens (or creates) the bolt file at path. An empty path gives a
// memory-only store with no persistence.
func Open(path string) (*DocumentStore, error) {
	if path == "" {
		return &DocumentStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create store directory")
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bolt db %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to create buckets")
	}

	return &DocumentStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *DocumentStore) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func cacheKey(bucket []byte, key string) string {
	return string(bucket) + ":" + key
}

// get returns a copy of the raw value, checking the memory cache first.
func (s *DocumentStore) get(bucket []byte, key string) ([]byte, bool, error) {
	ck := cacheKey(bucket, key)

	s.mu.RLock()
	if data, ok := s.cache[ck]; ok {
		s.mu.RUnlock()
		return data, true, nil
	}
	closed := s.closed
	s.mu.RUnlock()

	if s.db == nil {
		return nil, false, nil
	}
	if closed {
		return nil, false, domain.ErrStoreClosed
	}

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to read %s", ck)
	}
	if data == nil {
		return nil, false, nil
	}

	s.mu.Lock()
	s.cache[ck] = data
	s.mu.Unlock()

	return data, true, nil
}

// write applies puts and deletes in one bolt transaction, then updates the cache.
// The cache is only touched after a successful commit.
func (s *DocumentStore) write(puts map[string][]byte, deletes []string) error {
	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return domain.ErrStoreClosed
	}

	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			for ck, data := range puts {
				bucket, key := splitKey(ck)
				if err := tx.Bucket(bucket).Put([]byte(key), data); err != nil {
					return err
				}
			}
			for _, ck := range deletes {
				bucket, key := splitKey(ck)
				if err := tx.Bucket(bucket).Delete([]byte(key)); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return errors.Wrap(err, "failed to commit bolt transaction")
		}
	}

	s.mu.Lock()
	for ck, data := range puts {
		s.cache[ck] = data
	}
	for _, ck := range deletes {
		delete(s.cache, ck)
	}
	s.mu.Unlock()
	return nil
}

func splitKey(ck string) ([]byte, string) {
	bucket, key, _ := strings.Cut(ck, ":")
	return []byte(bucket), key
}

// === Progression ===

// GetProgression returns ErrNotFound when no document exists; a stored but
// malformed document is decoded with field-level fallback.
func (s *DocumentStore) GetProgression(profileID string) (domain.ProgressionState, error) {
	data, ok, err := s.get(bucketProgression, profileID)
	if err != nil {
		return progression.Default(), err
	}
	if !ok {
		return progression.Default(), domain.ErrNotFound
	}
	return progression.Decode(data), nil
}

func (s *DocumentStore) SaveProgression(profileID string, state domain.ProgressionState) error {
	return s.CommitClaim(profileID, state, nil)
}

// CommitClaim writes the progression document and an optional grant atomically.
// A grant without an id is assigned a fresh one.
func (s *DocumentStore) CommitClaim(profileID string, state domain.ProgressionState, grant *domain.Grant) error {
	data, err := progression.Encode(state)
	if err != nil {
		return errors.Wrap(err, "failed to encode progression")
	}
	puts := map[string][]byte{cacheKey(bucketProgression, profileID): data}

	if grant != nil {
		if grant.ID == "" {
			grant.ID = uuid.NewString()
		}
		if grant.CreatedAt.IsZero() {
			grant.CreatedAt = time.Now().UTC()
		}
		g, err := json.Marshal(grant)
		if err != nil {
			return errors.Wrap(err, "failed to encode grant")
		}
		puts[cacheKey(bucketGrants, grant.ID)] = g
	}

	return s.write(puts, nil)
}

// === Profiles ===

func (s *DocumentStore) GetProfile(profileID string) (domain.Profile, error) {
	data, ok, err := s.get(bucketProfiles, profileID)
	if err != nil {
		return profile.Default(), err
	}
	if !ok {
		return profile.Default(), domain.ErrNotFound
	}
	return profile.Decode(data), nil
}

func (s *DocumentStore) SaveProfile(profileID string, p domain.Profile) error {
	data, err := profile.Encode(p)
	if err != nil {
		return errors.Wrap(err, "failed to encode profile")
	}
	return s.write(map[string][]byte{cacheKey(bucketProfiles, profileID): data}, nil)
}

// === Grant outbox ===

// PendingGrants lists unacknowledged grants, oldest first. Undecodable
// entries are skipped.
func (s *DocumentStore) PendingGrants() ([]domain.Grant, error) {
	raw := map[string][]byte{}

	if s.db == nil {
		prefix := cacheKey(bucketGrants, "")
		s.mu.RLock()
		for k, v := range s.cache {
			if strings.HasPrefix(k, prefix) {
				raw[k] = v
			}
		}
		s.mu.RUnlock()
	} else {
		s.mu.RLock()
		closed := s.closed
		s.mu.RUnlock()
		if closed {
			return nil, domain.ErrStoreClosed
		}
		err := s.db.View(func(tx *bolt.Tx) error {
			return tx.Bucket(bucketGrants).ForEach(func(k, v []byte) error {
				data := make([]byte, len(v))
				copy(data, v)
				raw[string(k)] = data
				return nil
			})
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list grants")
		}
	}

	grants := make([]domain.Grant, 0, len(raw))
	for _, data := range raw {
		var g domain.Grant
		if json.Unmarshal(data, &g) != nil || g.ID == "" {
			continue
		}
		grants = append(grants, g)
	}
	sort.Slice(grants, func(i, j int) bool {
		if grants[i].CreatedAt.Equal(grants[j].CreatedAt) {
			return grants[i].ID < grants[j].ID
		}
		return grants[i].CreatedAt.Before(grants[j].CreatedAt)
	})
	return grants, nil
}

// AckGrant removes a delivered grant. Unknown ids return ErrGrantNotFound.
func (s *DocumentStore) AckGrant(id string) error {
	_, ok, err := s.get(bucketGrants, id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(domain.ErrGrantNotFound, "grant %s", id)
	}
	return s.write(nil, []string{cacheKey(bucketGrants, id)})
}
