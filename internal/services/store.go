package services

import (
	"sync"
	"time"

	"github.com/indianbuddy/personal-finance-manager/internal/catalog"
	"github.com/indianbuddy/personal-finance-manager/internal/ledger"
	"github.com/indianbuddy/personal-finance-manager/internal/models"
)

// Clock returns the current instant.
type Clock func() time.Time

// ClockIn returns a wall clock that reports time in loc.
func ClockIn(loc *time.Location) Clock {
	return func() time.Time { return time.Now().In(loc) }
}

// Store guards a ledger shared by concurrent requests. A mutation and the
// version bump that invalidates cached views happen under one lock.
type Store struct {
	mu     sync.RWMutex
	ledger *ledger.Ledger
	clock  Clock
}

// Snapshot is a consistent copy of the ledger at one version.
type Snapshot struct {
	Transactions []models.Transaction
	Version      uint64
	Now          time.Time
}

// NewStore wraps l. A nil clock means time.Now.
func NewStore(l *ledger.Ledger, clock Clock) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{ledger: l, clock: clock}
}

// Now reads the store's clock.
func (s *Store) Now() time.Time {
	return s.clock()
}

// Catalog returns the category catalog. It is immutable so no lock is taken.
func (s *Store) Catalog() *catalog.Catalog {
	return s.ledger.Catalog()
}

// Version returns the current ledger version.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Version()
}

// Snapshot copies the transactions and stamps them with the version and now.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Transactions: s.ledger.Transactions(),
		Version:      s.ledger.Version(),
		Now:          s.clock(),
	}
}

// Read runs fn with shared access to the ledger.
func (s *Store) Read(fn func(l *ledger.Ledger)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.ledger)
}

// Write runs fn with exclusive access to the ledger.
func (s *Store) Write(fn func(l *ledger.Ledger)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ledger)
}
