package insights

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/indianbuddy/personal-finance-manager/internal/models"
)

// NoTopCategory is reported when the month has no expenses.
const NoTopCategory = "-"

// CategoryTotal is one slice of the monthly expense breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// CategoryBreakdown sums this month's expenses per category. Categories are
// listed in the order they are first met in txs.
func CategoryBreakdown(txs []models.Transaction, now time.Time) []CategoryTotal {
	month := keysFor(now).month

	var out []CategoryTotal
	index := make(map[string]int)
	for _, tx := range txs {
		if !tx.IsExpense() || !strings.HasPrefix(tx.Date.String(), month) {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(out)
			index[tx.Category] = i
			out = append(out, CategoryTotal{Category: tx.Category})
		}
		out[i].Amount = out[i].Amount.Add(tx.Amount)
	}
	return out
}

// TopCategory returns the category with the largest amount. Ties go to the
// earliest entry; an empty breakdown yields NoTopCategory.
func TopCategory(breakdown []CategoryTotal) string {
	if len(breakdown) == 0 {
		return NoTopCategory
	}
	top := breakdown[0]
	for _, c := range breakdown[1:] {
		if c.Amount.GreaterThan(top.Amount) {
			top = c
		}
	}
	return top.Category
}

// AverageDailySpending divides this month's expenses by the day of month.
func AverageDailySpending(txs []models.Transaction, now time.Time) decimal.Decimal {
	expenses := MonthTotals(txs, now).Expenses
	return expenses.Div(decimal.NewFromInt(int64(now.Day())))
}

// DaysRemainingInMonth counts the days left after today in now's month.
func DaysRemainingInMonth(now time.Time) int {
	last := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	return last - now.Day()
}

// MonthlyTransactionCount counts the transactions dated in now's month.
func MonthlyTransactionCount(txs []models.Transaction, now time.Time) int {
	month := keysFor(now).month

	n := 0
	for _, tx := range txs {
		if strings.HasPrefix(tx.Date.String(), month) {
			n++
		}
	}
	return n
}
