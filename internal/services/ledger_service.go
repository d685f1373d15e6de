package services

import (
	"context"
	"strings"

	apperrors "github.com/indianbuddy/personal-finance-manager/internal/errors"
	"github.com/indianbuddy/personal-finance-manager/internal/format"
	"github.com/indianbuddy/personal-finance-manager/internal/ledger"
	"github.com/indianbuddy/personal-finance-manager/internal/logger"
	"github.com/indianbuddy/personal-finance-manager/internal/models"
	"github.com/indianbuddy/personal-finance-manager/internal/pagination"
)

// DefaultRecentLimit is the length of the recent transactions list.
const DefaultRecentLimit = 15

// ledgerService handles transaction entry and the two-phase delete.
type ledgerService struct {
	store       *Store
	audit       AuditServicer
	recentLimit int
}

// NewLedgerService creates a new LedgerServicer. A non-positive recentLimit
// falls back to DefaultRecentLimit.
func NewLedgerService(store *Store, audit AuditServicer, recentLimit int) LedgerServicer {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	if audit == nil {
		audit = NewNopAuditService()
	}
	return &ledgerService{store: store, audit: audit, recentLimit: recentLimit}
}

// AddTransaction validates and records a transaction.
func (s *ledgerService) AddTransaction(ctx context.Context, in ledger.Input) (*models.Transaction, error) {
	var (
		tx  models.Transaction
		err error
	)
	s.store.Write(func(l *ledger.Ledger) {
		tx, err = l.Add(in, s.store.Now())
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Infow("transaction added",
		"id", tx.ID,
		"type", tx.Type,
		"category", tx.Category,
		"amount", tx.Amount.String(),
		"date", tx.Date.String(),
	)
	s.audit.Log(ctx, models.AuditActionAddTransaction, tx)
	return &tx, nil
}

// ListTransactions pages through the ledger, most recent first.
func (s *ledgerService) ListTransactions(page pagination.PageRequest, filter TransactionFilter) *pagination.PageResponse[models.Transaction] {
	var txs []models.Transaction
	s.store.Read(func(l *ledger.Ledger) {
		txs = l.Transactions()
	})

	if filter.Type != nil || filter.Category != "" {
		kept := txs[:0]
		for _, tx := range txs {
			if filter.Type != nil && tx.Type != *filter.Type {
				continue
			}
			if filter.Category != "" && !strings.EqualFold(tx.Category, filter.Category) {
				continue
			}
			kept = append(kept, tx)
		}
		txs = kept
	}

	resp := pagination.Slice(txs, page)
	return &resp
}

// RecentTransactions returns the newest rows formatted for display.
func (s *ledgerService) RecentTransactions() *RecentTransactions {
	var (
		recent []models.Transaction
		total  int
	)
	s.store.Read(func(l *ledger.Ledger) {
		recent = l.Recent(s.recentLimit)
		total = l.Len()
	})

	now := s.store.Now()
	cat := s.store.Catalog()
	rows := make([]TransactionRow, len(recent))
	for i, tx := range recent {
		rows[i] = TransactionRow{
			ID:          tx.ID,
			Icon:        cat.Icon(tx.Category),
			Description: tx.Description,
			Meta:        tx.Category + " • " + format.RelativeDate(tx.Date, now),
			Amount:      format.TransactionAmount(tx.Type, tx.Amount),
			Type:        tx.Type,
			Date:        tx.Date,
		}
	}

	return &RecentTransactions{
		Count:      total,
		CountLabel: format.TransactionCount(total),
		Items:      rows,
	}
}

// GetTransaction looks a transaction up by id.
func (s *ledgerService) GetTransaction(id int64) (*models.Transaction, error) {
	var (
		tx models.Transaction
		ok bool
	)
	s.store.Read(func(l *ledger.Ledger) {
		tx, ok = l.Get(id)
	})
	if !ok {
		return nil, apperrors.ErrTransactionNotFound
	}
	return &tx, nil
}

// RequestDelete marks id for deletion. Unknown ids are accepted; confirming
// them removes nothing.
func (s *ledgerService) RequestDelete(id int64) *DeleteStatus {
	var status *DeleteStatus
	s.store.Write(func(l *ledger.Ledger) {
		l.RequestDelete(id)
		status = deleteStatus(l)
	})
	return status
}

// PendingDelete reports the current delete state.
func (s *ledgerService) PendingDelete() *DeleteStatus {
	var status *DeleteStatus
	s.store.Read(func(l *ledger.Ledger) {
		status = deleteStatus(l)
	})
	return status
}

// ConfirmDelete removes the pending target, if any.
func (s *ledgerService) ConfirmDelete(ctx context.Context) *DeleteResult {
	var (
		removed models.Transaction
		ok      bool
	)
	s.store.Write(func(l *ledger.Ledger) {
		removed, ok = l.ConfirmDelete()
	})
	if !ok {
		return &DeleteResult{}
	}

	logger.Get().Infow("transaction deleted",
		"id", removed.ID,
		"category", removed.Category,
		"amount", removed.Amount.String(),
	)
	s.audit.Log(ctx, models.AuditActionDeleteTransaction, removed)
	return &DeleteResult{Removed: true, Transaction: &removed}
}

// CancelDelete discards the pending target.
func (s *ledgerService) CancelDelete() *DeleteResult {
	s.store.Write(func(l *ledger.Ledger) {
		l.CancelDelete()
	})
	return &DeleteResult{}
}

// Categories lists the catalog, optionally restricted to one type.
func (s *ledgerService) Categories(filter *models.CategoryType) []models.Category {
	return s.store.Catalog().Categories(filter)
}

func deleteStatus(l *ledger.Ledger) *DeleteStatus {
	id, pending := l.PendingDelete()
	if !pending {
		return &DeleteStatus{}
	}
	status := &DeleteStatus{Pending: true, TransactionID: &id}
	if tx, ok := l.Get(id); ok {
		status.Transaction = &tx
	}
	return status
}
