package insights

import (
	"time"

	"github.com/indianbuddy/personal-finance-manager/internal/models"
)

// DefaultHistoryMonths is the monthly history length used when none is given.
const DefaultHistoryMonths = 6

// MonthSummary is one month of the history series.
type MonthSummary struct {
	Month string `json:"month"` // YYYY-MM
	Label string `json:"label"` // Jan 2006
	Totals
}

// MonthlyHistory returns income and expense totals for the trailing months
// ending with now's month, oldest first. Months without transactions are
// reported as zero.
func MonthlyHistory(txs []models.Transaction, now time.Time, months int) []MonthSummary {
	if months <= 0 {
		months = DefaultHistoryMonths
	}

	start := time.Date(now.Year(), now.Month()-time.Month(months-1), 1, 0, 0, 0, 0, time.UTC)
	out := make([]MonthSummary, months)
	index := make(map[string]int, months)
	for i := range out {
		m := start.AddDate(0, i, 0)
		key := m.Format("2006-01")
		out[i] = MonthSummary{Month: key, Label: m.Format("Jan 2006")}
		index[key] = i
	}

	for _, tx := range txs {
		if i, ok := index[tx.Date.String()[:7]]; ok {
			out[i].add(tx)
		}
	}
	return out
}
