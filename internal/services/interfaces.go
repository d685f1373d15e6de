package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/indianbuddy/personal-finance-manager/internal/insights"
	"github.com/indianbuddy/personal-finance-manager/internal/ledger"
	"github.com/indianbuddy/personal-finance-manager/internal/models"
	"github.com/indianbuddy/personal-finance-manager/internal/pagination"
)

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Type     *models.TransactionType
	Category string
}

// TransactionRow is a transaction pre-formatted for the recent list.
type TransactionRow struct {
	ID          int64                  `json:"id"`
	Icon        string                 `json:"icon"`
	Description string                 `json:"description"`
	Meta        string                 `json:"meta"`
	Amount      string                 `json:"amount"`
	Type        models.TransactionType `json:"type"`
	Date        models.Date            `json:"date"`
}

// RecentTransactions is the newest slice of the ledger plus the total count.
type RecentTransactions struct {
	Count      int              `json:"count"`
	CountLabel string           `json:"count_label"`
	Items      []TransactionRow `json:"items"`
}

// DeleteStatus describes the two-phase delete state. Transaction is set when
// the pending target still exists.
type DeleteStatus struct {
	Pending       bool                `json:"pending"`
	TransactionID *int64              `json:"transaction_id,omitempty"`
	Transaction   *models.Transaction `json:"transaction,omitempty"`
}

// DeleteResult reports the outcome of confirming or cancelling a delete.
type DeleteResult struct {
	Removed     bool                `json:"removed"`
	Transaction *models.Transaction `json:"transaction,omitempty"`
}

// LedgerServicer defines the contract for reading and mutating the ledger.
type LedgerServicer interface {
	AddTransaction(ctx context.Context, in ledger.Input) (*models.Transaction, error)
	ListTransactions(page pagination.PageRequest, filter TransactionFilter) *pagination.PageResponse[models.Transaction]
	RecentTransactions() *RecentTransactions
	GetTransaction(id int64) (*models.Transaction, error)
	RequestDelete(id int64) *DeleteStatus
	PendingDelete() *DeleteStatus
	ConfirmDelete(ctx context.Context) *DeleteResult
	CancelDelete() *DeleteResult
	Categories(filter *models.CategoryType) []models.Category
}

// StatValue is an amount with its display string and, for balances, the
// colour tone.
type StatValue struct {
	Amount  decimal.Decimal `json:"amount"`
	Display string          `json:"display"`
	Tone    string          `json:"tone,omitempty"`
}

// PeriodStats holds the three figures shown per period.
type PeriodStats struct {
	Income   StatValue `json:"income"`
	Expenses StatValue `json:"expenses"`
	Balance  StatValue `json:"balance"`
}

// Dashboard is the headline view.
type Dashboard struct {
	Date             models.Date `json:"date"`
	Today            PeriodStats `json:"today"`
	Month            PeriodStats `json:"month"`
	Year             PeriodStats `json:"year"`
	SavingsRate      StatValue   `json:"savings_rate"`
	TransactionCount int         `json:"transaction_count"`
}

// Insights is the secondary figures panel.
type Insights struct {
	AverageDailySpending StatValue `json:"average_daily_spending"`
	TopCategory          string    `json:"top_category"`
	DaysRemaining        int       `json:"days_remaining"`
	MonthlyTransactions  int       `json:"monthly_transactions"`
}

// DashboardServicer defines the contract for derived views.
type DashboardServicer interface {
	Dashboard() *Dashboard
	Insights() *Insights
	ExpenseChart() *insights.Chart
	IncomeExpenseChart() *insights.Chart
	TrendChart() *insights.Chart
	MonthlyChart(months int) *insights.Chart
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ctx context.Context, action string, tx models.Transaction)
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}
