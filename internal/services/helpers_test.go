package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/indianbuddy/personal-finance-manager/internal/catalog"
	"github.com/indianbuddy/personal-finance-manager/internal/ledger"
	"github.com/indianbuddy/personal-finance-manager/internal/models"
	"github.com/indianbuddy/personal-finance-manager/internal/pagination"
)

var ist = time.FixedZone("IST", 5*3600+1800)

// testClock is a settable clock.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func newTestStore(t *testing.T, seed bool) (*Store, *testClock) {
	t.Helper()

	l := ledger.New(catalog.Default())
	if seed {
		l.Seed(ledger.SampleTransactions())
	}
	clock := &testClock{now: time.Date(2025, 7, 31, 19, 0, 0, 0, ist)}
	return NewStore(l, clock.Now), clock
}

// recordingAudit captures Log calls.
type recordingAudit struct {
	mu      sync.Mutex
	entries []string
	ids     []int64
}

func (a *recordingAudit) Log(_ context.Context, action string, tx models.Transaction) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, action)
	a.ids = append(a.ids, tx.ID)
}

func (a *recordingAudit) List(context.Context, pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	return nil, nil
}
