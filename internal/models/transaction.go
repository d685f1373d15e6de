package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is a single income or expense entry. It is immutable once
// created; Type is always derived from Category.
type Transaction struct {
	ID          int64           `json:"id"`
	Date        Date            `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Timestamp   time.Time       `json:"timestamp"`
}

// IsIncome reports whether the transaction increases the balance.
func (t Transaction) IsIncome() bool { return t.Type == TransactionTypeIncome }

// IsExpense reports whether the transaction decreases the balance.
func (t Transaction) IsExpense() bool { return t.Type == TransactionTypeExpense }

// Net returns the signed contribution of the transaction to a balance.
func (t Transaction) Net() decimal.Decimal {
	if t.IsIncome() {
		return t.Amount
	}
	return t.Amount.Neg()
}
