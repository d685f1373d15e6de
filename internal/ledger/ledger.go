// Package ledger owns the in-memory transaction collection. A Ledger is a
// plain state object: it validates and records new transactions, runs the
// two-phase delete, and hands out snapshots for aggregation. It is not safe
// for concurrent use; callers serialise access.
package ledger

import (
	"time"

	"github.com/indianbuddy/personal-finance-manager/internal/catalog"
	"github.com/indianbuddy/personal-finance-manager/internal/models"
)

// Ledger is the transaction collection, ordered most-recent-first.
type Ledger struct {
	catalog      *catalog.Catalog
	transactions []models.Transaction
	nextID       int64
	version      uint64
	deletion     DeleteState
}

// New returns an empty ledger that validates categories against c.
func New(c *catalog.Catalog) *Ledger {
	return &Ledger{catalog: c, nextID: 1}
}

// Seed replaces the collection with txs, kept in the given order, and moves
// the id counter past the highest seeded id.
func (l *Ledger) Seed(txs []models.Transaction) {
	l.transactions = append([]models.Transaction(nil), txs...)
	l.nextID = 1
	for _, t := range txs {
		if t.ID >= l.nextID {
			l.nextID = t.ID + 1
		}
	}
	l.deletion = DeleteState{}
	l.version++
}

// Catalog returns the category catalog the ledger validates against.
func (l *Ledger) Catalog() *catalog.Catalog {
	return l.catalog
}

// Add validates in and, on success, records a new transaction at the front
// of the collection. now stamps the transaction's creation instant. On a
// validation error the ledger is left untouched.
func (l *Ledger) Add(in Input, now time.Time) (models.Transaction, error) {
	v, err := in.validate(l.catalog)
	if err != nil {
		return models.Transaction{}, err
	}

	t := models.Transaction{
		ID:          l.nextID,
		Date:        v.date,
		Amount:      v.amount,
		Category:    v.category,
		Type:        v.txType,
		Description: v.description,
		Timestamp:   now,
	}
	l.nextID++

	l.transactions = append(l.transactions, models.Transaction{})
	copy(l.transactions[1:], l.transactions)
	l.transactions[0] = t
	l.version++

	return t, nil
}

// Transactions returns a copy of the collection, most-recent-first.
func (l *Ledger) Transactions() []models.Transaction {
	return append([]models.Transaction(nil), l.transactions...)
}

// Recent returns up to n of the most recent transactions.
func (l *Ledger) Recent(n int) []models.Transaction {
	if n < 0 || n > len(l.transactions) {
		n = len(l.transactions)
	}
	return append([]models.Transaction(nil), l.transactions[:n]...)
}

// Get looks a transaction up by id.
func (l *Ledger) Get(id int64) (models.Transaction, bool) {
	if i := l.indexOf(id); i >= 0 {
		return l.transactions[i], true
	}
	return models.Transaction{}, false
}

// Len returns the number of transactions.
func (l *Ledger) Len() int {
	return len(l.transactions)
}

// Version changes on every mutation. Derived views computed at one version
// stay valid until it moves.
func (l *Ledger) Version() uint64 {
	return l.version
}

// RequestDelete marks id as the pending delete target, replacing any earlier
// request. The id does not have to exist.
func (l *Ledger) RequestDelete(id int64) {
	l.deletion = l.deletion.Request(id)
}

// PendingDelete returns the id awaiting confirmation, if any.
func (l *Ledger) PendingDelete() (int64, bool) {
	return l.deletion.Pending()
}

// ConfirmDelete removes the pending target and returns to idle. It returns
// the removed transaction, or false when nothing was pending or the target
// is already gone.
func (l *Ledger) ConfirmDelete() (models.Transaction, bool) {
	id, pending := l.deletion.Pending()
	l.deletion = l.deletion.Confirm()
	if !pending {
		return models.Transaction{}, false
	}
	return l.remove(id)
}

// CancelDelete drops the pending target without touching the collection. It
// reports whether a delete had been pending.
func (l *Ledger) CancelDelete() bool {
	_, pending := l.deletion.Pending()
	l.deletion = l.deletion.Cancel()
	return pending
}

func (l *Ledger) remove(id int64) (models.Transaction, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return models.Transaction{}, false
	}
	removed := l.transactions[i]
	l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
	l.version++
	return removed, true
}

func (l *Ledger) indexOf(id int64) int {
	for i := range l.transactions {
		if l.transactions[i].ID == id {
			return i
		}
	}
	return -1
}
