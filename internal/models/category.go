package models

// CategoryType partitions the category catalog.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category is one entry of the fixed category catalog.
type Category struct {
	Name string       `json:"name" yaml:"name"`
	Type CategoryType `json:"type" yaml:"-"`
	Icon string       `json:"icon,omitempty" yaml:"icon"`
}

// TransactionType returns the transaction type implied by the category type.
func (t CategoryType) TransactionType() TransactionType {
	if t == CategoryTypeIncome {
		return TransactionTypeIncome
	}
	return TransactionTypeExpense
}
