package services

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/indianbuddy/personal-finance-manager/internal/format"
	"github.com/indianbuddy/personal-finance-manager/internal/insights"
	"github.com/indianbuddy/personal-finance-manager/internal/models"
)

// dashboardService assembles the derived views from ledger snapshots.
type dashboardService struct {
	store         *Store
	cache         *ViewCache
	historyMonths int
}

// NewDashboardService creates a new DashboardServicer. cache may be nil.
func NewDashboardService(store *Store, cache *ViewCache, historyMonths int) DashboardServicer {
	if historyMonths <= 0 {
		historyMonths = insights.DefaultHistoryMonths
	}
	return &dashboardService{store: store, cache: cache, historyMonths: historyMonths}
}

// cachedView returns the view named name for the current ledger version and
// day, building it from a fresh snapshot on a miss.
func cachedView[T any](s *dashboardService, name string, build func(txs []models.Transaction, now time.Time) T) T {
	day := models.DateOf(s.store.Now()).String()
	if v, ok := s.cache.get(viewKey(name, s.store.Version(), day)); ok {
		if view, ok := v.(T); ok {
			return view
		}
	}

	snap := s.store.Snapshot()
	view := build(snap.Transactions, snap.Now)
	s.cache.set(viewKey(name, snap.Version, models.DateOf(snap.Now).String()), view)
	return view
}

// Dashboard returns the period stats and savings rate.
func (s *dashboardService) Dashboard() *Dashboard {
	return cachedView(s, "dashboard", func(txs []models.Transaction, now time.Time) *Dashboard {
		sum := insights.Summarize(txs, now)
		return &Dashboard{
			Date:             models.DateOf(now),
			Today:            periodStats(sum.Today),
			Month:            periodStats(sum.Month),
			Year:             periodStats(sum.Year),
			SavingsRate:      StatValue{Amount: sum.SavingsRate, Display: format.Percent(sum.SavingsRate)},
			TransactionCount: len(txs),
		}
	})
}

// Insights returns the secondary figures for the current month.
func (s *dashboardService) Insights() *Insights {
	return cachedView(s, "insights", func(txs []models.Transaction, now time.Time) *Insights {
		avg := insights.AverageDailySpending(txs, now)
		return &Insights{
			AverageDailySpending: StatValue{Amount: avg, Display: format.IndianCurrency(avg)},
			TopCategory:          insights.TopCategory(insights.CategoryBreakdown(txs, now)),
			DaysRemaining:        insights.DaysRemainingInMonth(now),
			MonthlyTransactions:  insights.MonthlyTransactionCount(txs, now),
		}
	})
}

// ExpenseChart returns this month's expense breakdown.
func (s *dashboardService) ExpenseChart() *insights.Chart {
	return cachedView(s, "chart:expenses", func(txs []models.Transaction, now time.Time) *insights.Chart {
		c := insights.ExpenseChart(insights.CategoryBreakdown(txs, now))
		return &c
	})
}

// IncomeExpenseChart compares this month with this year.
func (s *dashboardService) IncomeExpenseChart() *insights.Chart {
	return cachedView(s, "chart:income-expense", func(txs []models.Transaction, now time.Time) *insights.Chart {
		c := insights.IncomeExpenseChart(insights.Summarize(txs, now))
		return &c
	})
}

// TrendChart returns the 30-day running balance.
func (s *dashboardService) TrendChart() *insights.Chart {
	return cachedView(s, "chart:trend", func(txs []models.Transaction, now time.Time) *insights.Chart {
		c := insights.TrendChart(insights.Trend(txs, now))
		return &c
	})
}

// MonthlyChart returns income and expenses for the trailing months. A
// non-positive months uses the configured default.
func (s *dashboardService) MonthlyChart(months int) *insights.Chart {
	if months <= 0 {
		months = s.historyMonths
	}
	return cachedView(s, "chart:monthly:"+strconv.Itoa(months), func(txs []models.Transaction, now time.Time) *insights.Chart {
		c := insights.MonthlyChart(insights.MonthlyHistory(txs, now, months))
		return &c
	})
}

func periodStats(t insights.Totals) PeriodStats {
	balance := t.Balance()
	return PeriodStats{
		Income:   amountStat(t.Income),
		Expenses: amountStat(t.Expenses),
		Balance: StatValue{
			Amount:  balance,
			Display: format.SignedIndianCurrency(balance),
			Tone:    insights.Tone(balance),
		},
	}
}

func amountStat(v decimal.Decimal) StatValue {
	return StatValue{Amount: v, Display: format.IndianCurrency(v)}
}
