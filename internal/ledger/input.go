package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/indianbuddy/personal-finance-manager/internal/catalog"
	apperrors "github.com/indianbuddy/personal-finance-manager/internal/errors"
	"github.com/indianbuddy/personal-finance-manager/internal/models"
)

// Input is a transaction as submitted by the user, before validation. All
// fields are raw strings; Date is YYYY-MM-DD.
type Input struct {
	Amount      string
	Category    string
	Date        string
	Description string
}

type validInput struct {
	amount      decimal.Decimal
	category    string
	txType      models.TransactionType
	date        models.Date
	description string
}

// validate checks amount, then category, then date, and returns the first
// problem as an *AppError.
func (in Input) validate(c *catalog.Catalog) (validInput, error) {
	amount, err := ParseAmount(in.Amount)
	if err != nil {
		return validInput{}, err
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		return validInput{}, apperrors.ErrMissingCategory
	}
	txType, ok := c.TypeOf(category)
	if !ok {
		return validInput{}, apperrors.WithMessage(apperrors.ErrUnknownCategory,
			"Unknown category: "+category)
	}

	raw := strings.TrimSpace(in.Date)
	if raw == "" {
		return validInput{}, apperrors.ErrMissingDate
	}
	date, err := models.ParseDate(raw)
	if err != nil {
		return validInput{}, apperrors.Wrap(apperrors.ErrInvalidDate, err)
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		description = category
	}

	return validInput{
		amount:      amount,
		category:    category,
		txType:      txType,
		date:        date,
		description: description,
	}, nil
}

// MaxAmount is the exclusive upper bound of a transaction amount.
var MaxAmount = decimal.New(1, 15)

const (
	// AmountPlaces is the number of decimal places an amount may carry.
	AmountPlaces = 2

	maxAmountLen = 32
)

// ParseAmount parses a positive decimal amount written in plain notation, with
// at most AmountPlaces decimals and below MaxAmount. Anything else, including
// exponent notation such as "1e5", is rejected with ErrInvalidAmount.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, apperrors.ErrInvalidAmount
	}
	// Checked on the text so decimal never expands a huge exponent.
	if len(s) > maxAmountLen || strings.ContainsAny(s, "eE") {
		return decimal.Zero, apperrors.ErrInvalidAmount
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInvalidAmount, err)
	}
	if !amount.IsPositive() {
		return decimal.Zero, apperrors.ErrInvalidAmount
	}
	if !amount.LessThan(MaxAmount) {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Amount is too large")
	}
	if !amount.Equal(amount.Truncate(AmountPlaces)) {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Amount can have at most 2 decimal places")
	}
	return amount, nil
}
