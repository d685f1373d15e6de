// Package insights derives dashboard figures and chart series from a
// transaction snapshot. Every function is pure: the caller passes the
// transactions and the reference instant, and "today" is the calendar date
// of that instant in its own location.
package insights

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/indianbuddy/personal-finance-manager/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Totals holds income and expense sums over some period.
type Totals struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// Balance returns income minus expenses.
func (t Totals) Balance() decimal.Decimal {
	return t.Income.Sub(t.Expenses)
}

func (t *Totals) add(tx models.Transaction) {
	switch tx.Type {
	case models.TransactionTypeIncome:
		t.Income = t.Income.Add(tx.Amount)
	case models.TransactionTypeExpense:
		t.Expenses = t.Expenses.Add(tx.Amount)
	}
}

// Summary is the dashboard headline: totals for today, the current month and
// the current year, plus the annual savings rate.
type Summary struct {
	Today       Totals
	Month       Totals
	Year        Totals
	SavingsRate decimal.Decimal
}

// period keys are matched as prefixes of the YYYY-MM-DD date rendering.
type periodKeys struct {
	day, month, year string
}

func keysFor(now time.Time) periodKeys {
	day := models.DateOf(now).String()
	return periodKeys{day: day, month: day[:7], year: day[:4]}
}

// Summarize computes the period totals and savings rate for now.
func Summarize(txs []models.Transaction, now time.Time) Summary {
	keys := keysFor(now)

	var s Summary
	for _, tx := range txs {
		date := tx.Date.String()
		if !strings.HasPrefix(date, keys.year) {
			continue
		}
		s.Year.add(tx)
		if strings.HasPrefix(date, keys.month) {
			s.Month.add(tx)
		}
		if date == keys.day {
			s.Today.add(tx)
		}
	}
	s.SavingsRate = SavingsRate(s.Year.Income, s.Year.Expenses)
	return s
}

// SavingsRate returns (income - expenses) / income as a percentage, or zero
// when there is no income.
func SavingsRate(income, expenses decimal.Decimal) decimal.Decimal {
	if income.IsZero() {
		return decimal.Zero
	}
	return income.Sub(expenses).Div(income).Mul(hundred)
}

// MonthTotals sums the transactions dated in now's month.
func MonthTotals(txs []models.Transaction, now time.Time) Totals {
	month := keysFor(now).month

	var t Totals
	for _, tx := range txs {
		if strings.HasPrefix(tx.Date.String(), month) {
			t.add(tx)
		}
	}
	return t
}

// Tone names the colour class for a balance: income when positive, expense
// when negative and balance when zero.
func Tone(v decimal.Decimal) string {
	switch v.Sign() {
	case 1:
		return "income"
	case -1:
		return "expense"
	default:
		return "balance"
	}
}
