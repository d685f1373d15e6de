package testutil

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/indianbuddy/personal-finance-manager/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date parses a YYYY-MM-DD literal, failing the test on a typo.
func Date(t *testing.T, s string) models.Date {
	t.Helper()

	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", s, err)
	}
	return d
}

// Income builds an income transaction with a unique id.
func Income(t *testing.T, date, category string, amount int64) models.Transaction {
	t.Helper()
	return newTransaction(t, date, category, models.TransactionTypeIncome, amount)
}

// Expense builds an expense transaction with a unique id.
func Expense(t *testing.T, date, category string, amount int64) models.Transaction {
	t.Helper()
	return newTransaction(t, date, category, models.TransactionTypeExpense, amount)
}

func newTransaction(t *testing.T, date, category string, typ models.TransactionType, amount int64) models.Transaction {
	t.Helper()

	d := Date(t, date)
	return models.Transaction{
		ID:          nextID(),
		Date:        d,
		Amount:      decimal.NewFromInt(amount),
		Category:    category,
		Type:        typ,
		Description: category,
		Timestamp:   d.Add(12 * time.Hour),
	}
}

// CreateTestAuditLog stores an audit row for tx with the given action.
func CreateTestAuditLog(t *testing.T, db *gorm.DB, action string, tx models.Transaction) *models.AuditLog {
	t.Helper()

	entry := &models.AuditLog{
		Action:        action,
		TransactionID: tx.ID,
		Type:          tx.Type,
		Category:      tx.Category,
		Amount:        tx.Amount.String(),
		Date:          tx.Date.String(),
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test audit log: %v", err)
	}
	return entry
}
