package insights

import (
	"github.com/indianbuddy/personal-finance-manager/internal/format"
)

// Chart colours.
const (
	ColorIncome      = "#1FB8CD"
	ColorExpense     = "#B4413C"
	ColorPlaceholder = "#E5E5E5"

	NoDataLabel = "No Data"
)

// Palette colours the expense breakdown slices, cycling when there are more
// categories than colours.
var Palette = []string{
	"#1FB8CD", "#FFC185", "#B4413C", "#ECEBD5", "#5D878F",
	"#DB4545", "#D2BA4C", "#964325", "#944454", "#13343B",
}

// Dataset is one labelled series of a chart.
type Dataset struct {
	Label  string    `json:"label"`
	Data   []float64 `json:"data"`
	Colors []string  `json:"colors"`
}

// Chart is a renderer-agnostic chart payload.
type Chart struct {
	Labels      []string  `json:"labels"`
	Datasets    []Dataset `json:"datasets"`
	Placeholder bool      `json:"placeholder"`
}

// ExpenseChart renders a breakdown as a doughnut series. An empty breakdown
// becomes a single grey "No Data" slice.
func ExpenseChart(breakdown []CategoryTotal) Chart {
	if len(breakdown) == 0 {
		return Chart{
			Labels: []string{NoDataLabel},
			Datasets: []Dataset{{
				Label:  "Expenses",
				Data:   []float64{1},
				Colors: []string{ColorPlaceholder},
			}},
			Placeholder: true,
		}
	}

	labels := make([]string, len(breakdown))
	data := make([]float64, len(breakdown))
	colors := make([]string, len(breakdown))
	for i, c := range breakdown {
		labels[i] = c.Category
		data[i] = c.Amount.InexactFloat64()
		colors[i] = Palette[i%len(Palette)]
	}
	return Chart{
		Labels:   labels,
		Datasets: []Dataset{{Label: "Expenses", Data: data, Colors: colors}},
	}
}

// IncomeExpenseChart compares this month with this year.
func IncomeExpenseChart(s Summary) Chart {
	return Chart{
		Labels: []string{"This Month", "This Year"},
		Datasets: []Dataset{
			{
				Label:  "Income",
				Data:   []float64{s.Month.Income.InexactFloat64(), s.Year.Income.InexactFloat64()},
				Colors: []string{ColorIncome},
			},
			{
				Label:  "Expenses",
				Data:   []float64{s.Month.Expenses.InexactFloat64(), s.Year.Expenses.InexactFloat64()},
				Colors: []string{ColorExpense},
			},
		},
	}
}

// TrendChart plots the running balance with D/M labels.
func TrendChart(points []TrendPoint) Chart {
	labels := make([]string, len(points))
	data := make([]float64, len(points))
	for i, p := range points {
		labels[i] = format.ShortDate(p.Date)
		data[i] = p.Balance.InexactFloat64()
	}
	return Chart{
		Labels:   labels,
		Datasets: []Dataset{{Label: "Running Balance", Data: data, Colors: []string{ColorIncome}}},
	}
}

// MonthlyChart plots income against expenses per month.
func MonthlyChart(history []MonthSummary) Chart {
	labels := make([]string, len(history))
	income := make([]float64, len(history))
	expenses := make([]float64, len(history))
	for i, m := range history {
		labels[i] = m.Label
		income[i] = m.Income.InexactFloat64()
		expenses[i] = m.Expenses.InexactFloat64()
	}
	return Chart{
		Labels: labels,
		Datasets: []Dataset{
			{Label: "Income", Data: income, Colors: []string{ColorIncome}},
			{Label: "Expenses", Data: expenses, Colors: []string{ColorExpense}},
		},
	}
}
