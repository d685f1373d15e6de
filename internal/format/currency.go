// Package format renders amounts and dates for display the way an Indian
// reader expects them: rupee symbol, lakh/crore units and en-IN dates.
package format

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/indianbuddy/personal-finance-manager/internal/models"
)

const rupee = "₹"

var (
	crore    = decimal.New(1, 7)
	lakh     = decimal.New(1, 5)
	thousand = decimal.New(1, 3)
)

// IndianCurrency formats the magnitude of v. Values of a crore or more are
// shown in crores ("₹1.25Cr"), a lakh or more in lakhs ("₹12.50L"), a
// thousand or more with Indian digit grouping ("₹45,230.00") and anything
// smaller with two decimals ("₹105.00"). The sign is dropped; callers add
// one where it matters.
func IndianCurrency(v decimal.Decimal) string {
	abs := v.Abs()
	switch {
	case abs.GreaterThanOrEqual(crore):
		return rupee + abs.Div(crore).StringFixed(2) + "Cr"
	case abs.GreaterThanOrEqual(lakh):
		return rupee + abs.Div(lakh).StringFixed(2) + "L"
	case abs.GreaterThanOrEqual(thousand):
		return rupee + IndianNumber(abs, 2)
	default:
		return rupee + abs.StringFixed(2)
	}
}

// SignedIndianCurrency is IndianCurrency with a leading "-" for negative
// values, for balances that can go below zero.
func SignedIndianCurrency(v decimal.Decimal) string {
	if v.IsNegative() {
		return "-" + IndianCurrency(v)
	}
	return IndianCurrency(v)
}

// TransactionAmount prefixes the formatted amount with "+" for income and "-"
// for expenses.
func TransactionAmount(t models.TransactionType, amount decimal.Decimal) string {
	if t == models.TransactionTypeIncome {
		return "+" + IndianCurrency(amount)
	}
	return "-" + IndianCurrency(amount)
}

// indianPrinter groups digits the en-IN way: the last three integer digits
// form one group and every two digits before them another.
var indianPrinter = message.NewPrinter(language.MustParse("en-IN"))

// IndianNumber renders |v| with the given number of decimals and Indian digit
// grouping ("12,50,000.00"). v is rounded half away from zero before it is
// printed; amounts are capped well inside float64's exact range.
func IndianNumber(v decimal.Decimal, places int32) string {
	rounded := v.Abs().Round(places)
	return indianPrinter.Sprint(number.Decimal(rounded.InexactFloat64(),
		number.MinFractionDigits(int(places)),
		number.MaxFractionDigits(int(places)),
	))
}

// Percent renders v with one decimal and a percent sign.
func Percent(v decimal.Decimal) string {
	return v.StringFixed(1) + "%"
}

// TransactionCount renders "1 transaction" or "N transactions".
func TransactionCount(n int) string {
	if n == 1 {
		return "1 transaction"
	}
	return fmt.Sprintf("%d transactions", n)
}
