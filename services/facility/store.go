package facility

import (
	"context"
	"sync"
	"time"

	"cryoflow/models"
)

// Loader produces a complete center mapping. The default loader simulates the
// upstream facility feed; tests inject their own.
type Loader func(ctx context.Context) (map[string]models.FacilityRecord, error)

// Status is a snapshot of the cache for the health endpoint.
type Status struct {
	State       string    `json:"state"` // "cold" or "warm"
	RefreshedAt time.Time `json:"refreshedAt,omitempty"`
	Centers     int       `json:"centers"`
}

// Store is a read-through, time-expiring cache of facility data. One instance
// is owned by the server and shared across requests.
type Store struct {
	mu          sync.Mutex
	ttl         time.Duration
	load        Loader
	now         func() time.Time
	centers     map[string]models.FacilityRecord
	refreshedAt time.Time
}

// NewStore builds a store with the given epoch length. A nil loader gets the
// default simulated feed; a nil clock gets time.Now.
func NewStore(ttl time.Duration, load Loader, now func() time.Time) *Store {
	if load == nil {
		load = DefaultLoader(defaultRefreshDelay)
	}
	if now == nil {
		now = time.Now
	}
	return &Store{ttl: ttl, load: load, now: now}
}

// Centers returns the current mapping, reloading it when unpopulated or when
// the epoch has elapsed. The mapping is replaced wholesale; callers never see
// a partial map. Two requests racing past an expired epoch may both reload —
// the last swap wins, which is tolerable for read-mostly static data.
func (s *Store) Centers(ctx context.Context) (map[string]models.FacilityRecord, error) {
	s.mu.Lock()
	if s.centers != nil && s.now().Sub(s.refreshedAt) <= s.ttl {
		m := s.centers
		s.mu.Unlock()
		return m, nil
	}
	s.mu.Unlock()

	fresh, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.centers = fresh
	s.refreshedAt = s.now()
	s.mu.Unlock()
	return fresh, nil
}

// Status reports whether the cache holds a live epoch.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.centers == nil {
		return Status{State: "cold"}
	}
	return Status{State: "warm", RefreshedAt: s.refreshedAt, Centers: len(s.centers)}
}
