// dataset/store.go
package dataset

import (
	"math/rand/v2"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/nigcomsat/coverage-dashboard/models"
)

// Store owns the session-scoped coverage dataset. Generation happens at most
// once per Store; every Records call afterwards sees the same values, so
// filter changes never re-roll the underlying data. The Store is safe for
// concurrent use by HTTP handlers.
type Store struct {
	once    sync.Once
	seed    uint64
	now     func() time.Time
	records []models.CoverageRecord
}

// Options configures a Store. The zero value is valid: entropy-seeded
// generation stamped with wall-clock time.
type Options struct {
	// Seed pins the random source; 0 means seed from entropy.
	Seed uint64
	// Now supplies the generation timestamp; nil means time.Now.
	Now func() time.Time
}

// NewStore creates an empty store. No data is generated until the first
// Records (or Warm) call.
func NewStore(opts Options) *Store {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{seed: opts.Seed, now: now}
}

// Warm forces generation up front so the first dashboard request does not
// pay for it. Calling Warm more than once is a no-op.
func (s *Store) Warm() {
	s.ensure()
}

// Records returns a copy of the memoized dataset. Callers may sort or
// mutate the returned slice freely without affecting other consumers.
func (s *Store) Records() []models.CoverageRecord {
	s.ensure()
	out := make([]models.CoverageRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the dataset cardinality (always 37 once warm).
func (s *Store) Len() int {
	s.ensure()
	return len(s.records)
}

// LatestUpdate returns the most recent Last_Update across the full dataset,
// which the sidebar shows as "Data Last Updated".
func (s *Store) LatestUpdate() time.Time {
	s.ensure()
	var latest time.Time
	for _, rec := range s.records {
		if rec.LastUpdate.After(latest) {
			latest = rec.LastUpdate
		}
	}
	return latest
}

func (s *Store) ensure() {
	s.once.Do(func() {
		rng := newRand(s.seed)
		s.records = Generate(s.now(), rng)
		log.WithField("component", "dataset").Infof(
			"Coverage dataset initialized: %d states across %d regions",
			len(s.records), len(models.Regions))
	})
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
