package insights

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/indianbuddy/personal-finance-manager/internal/models"
)

// TrendDays is the length of the running-balance trend, today included.
const TrendDays = 30

// TrendPoint is one day of the trend: that day's net and the running sum of
// nets from the first day of the window up to it.
type TrendPoint struct {
	Date    models.Date     `json:"date"`
	Net     decimal.Decimal `json:"net"`
	Balance decimal.Decimal `json:"balance"`
}

// Trend returns exactly TrendDays points, oldest first, ending today.
func Trend(txs []models.Transaction, now time.Time) []TrendPoint {
	today := models.DateOf(now)
	first := today.AddDays(-(TrendDays - 1))

	nets := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Date.Before(first.Time) || tx.Date.After(today.Time) {
			continue
		}
		key := tx.Date.String()
		nets[key] = nets[key].Add(tx.Net())
	}

	points := make([]TrendPoint, TrendDays)
	running := decimal.Zero
	for i := range points {
		day := first.AddDays(i)
		net := nets[day.String()]
		running = running.Add(net)
		points[i] = TrendPoint{Date: day, Net: net, Balance: running}
	}
	return points
}
