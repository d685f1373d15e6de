package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/indianbuddy/personal-finance-manager/internal/models"
)

// SampleTransactions returns the demo data shown on a fresh install, most
// recent first.
func SampleTransactions() []models.Transaction {
	at := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02T15:04:05", s)
		return t
	}
	return []models.Transaction{
		{ID: 1, Date: models.NewDate(2025, 7, 31), Amount: decimal.NewFromInt(50000), Category: "Salary",
			Type: models.TransactionTypeIncome, Description: "Monthly salary", Timestamp: at("2025-07-31T09:00:00")},
		{ID: 2, Date: models.NewDate(2025, 7, 31), Amount: decimal.NewFromInt(25), Category: "Chai/Tea & Coffee",
			Type: models.TransactionTypeExpense, Description: "Evening chai", Timestamp: at("2025-07-31T17:30:00")},
		{ID: 3, Date: models.NewDate(2025, 7, 31), Amount: decimal.NewFromInt(80), Category: "Auto/Rickshaw",
			Type: models.TransactionTypeExpense, Description: "Auto to office", Timestamp: at("2025-07-31T09:15:00")},
		{ID: 4, Date: models.NewDate(2025, 7, 30), Amount: decimal.NewFromInt(15), Category: "Street Food",
			Type: models.TransactionTypeExpense, Description: "Samosa", Timestamp: at("2025-07-30T16:00:00")},
		{ID: 5, Date: models.NewDate(2025, 7, 30), Amount: decimal.NewFromInt(2000), Category: "Groceries/Sabzi",
			Type: models.TransactionTypeExpense, Description: "Weekly groceries", Timestamp: at("2025-07-30T10:30:00")},
		{ID: 6, Date: models.NewDate(2025, 7, 29), Amount: decimal.NewFromInt(45), Category: "Metro/Bus Transport",
			Type: models.TransactionTypeExpense, Description: "Metro day pass", Timestamp: at("2025-07-29T08:00:00")},
	}
}
