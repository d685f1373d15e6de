// Package catalog holds the fixed set of transaction categories and the
// category → transaction type mapping derived from it.
package catalog

import (
	"fmt"
	"strings"

	"github.com/indianbuddy/personal-finance-manager/internal/models"
)

// DefaultIcon is shown for categories without an icon of their own.
const DefaultIcon = "💰"

// Catalog is an immutable, validated category set. Income and expense
// categories keep their configured order.
type Catalog struct {
	income  []models.Category
	expense []models.Category
	byName  map[string]models.Category
}

// New validates the two category lists and builds a catalog. A name may appear
// only once across both lists, so the type of every category is unambiguous.
func New(income, expense []models.Category) (*Catalog, error) {
	if len(income) == 0 {
		return nil, fmt.Errorf("catalog needs at least one income category")
	}
	if len(expense) == 0 {
		return nil, fmt.Errorf("catalog needs at least one expense category")
	}

	c := &Catalog{
		income:  make([]models.Category, 0, len(income)),
		expense: make([]models.Category, 0, len(expense)),
		byName:  make(map[string]models.Category, len(income)+len(expense)),
	}
	if err := c.add(income, models.CategoryTypeIncome); err != nil {
		return nil, err
	}
	if err := c.add(expense, models.CategoryTypeExpense); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) add(categories []models.Category, t models.CategoryType) error {
	for _, cat := range categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			return fmt.Errorf("%s category with empty name", t)
		}
		if existing, ok := c.byName[name]; ok {
			return fmt.Errorf("category %q listed twice (as %s and %s)", name, existing.Type, t)
		}
		entry := models.Category{Name: name, Type: t, Icon: cat.Icon}
		c.byName[name] = entry
		if t == models.CategoryTypeIncome {
			c.income = append(c.income, entry)
		} else {
			c.expense = append(c.expense, entry)
		}
	}
	return nil
}

// TypeOf returns the transaction type implied by a category.
func (c *Catalog) TypeOf(name string) (models.TransactionType, bool) {
	cat, ok := c.byName[name]
	if !ok {
		return "", false
	}
	return cat.Type.TransactionType(), true
}

// Icon returns the icon of a category, or DefaultIcon.
func (c *Catalog) Icon(name string) string {
	if cat, ok := c.byName[name]; ok && cat.Icon != "" {
		return cat.Icon
	}
	return DefaultIcon
}

// Categories lists the catalog, income first. A non-nil filter restricts the
// result to one type.
func (c *Catalog) Categories(filter *models.CategoryType) []models.Category {
	out := make([]models.Category, 0, len(c.byName))
	if filter == nil || *filter == models.CategoryTypeIncome {
		out = append(out, c.income...)
	}
	if filter == nil || *filter == models.CategoryTypeExpense {
		out = append(out, c.expense...)
	}
	return out
}

// Default returns the built-in Indian category set.
func Default() *Catalog {
	c, err := New(defaultIncome, defaultExpense)
	if err != nil {
		panic(fmt.Sprintf("default catalog: %v", err))
	}
	return c
}

var defaultIncome = []models.Category{
	{Name: "Salary", Icon: "💰"},
	{Name: "Freelance Work", Icon: "💼"},
	{Name: "Gifts/Bonus", Icon: "🎁"},
	{Name: "Investments", Icon: "📈"},
	{Name: "Business Income", Icon: "🏪"},
}

var defaultExpense = []models.Category{
	{Name: "Chai/Tea & Coffee", Icon: "🍵"},
	{Name: "Auto/Rickshaw", Icon: "🛺"},
	{Name: "Street Food", Icon: "🥘"},
	{Name: "Metro/Bus Transport", Icon: "🚌"},
	{Name: "Mobile Recharge", Icon: "📱"},
	{Name: "Domestic Help", Icon: "🏠"},
	{Name: "Groceries/Sabzi", Icon: "🥬"},
	{Name: "Medical/Hospital", Icon: "🏥"},
	{Name: "Petrol/Fuel", Icon: "⛽"},
	{Name: "Electricity Bill", Icon: "⚡"},
	{Name: "Internet/WiFi", Icon: "📶"},
	{Name: "Clothing/Shopping", Icon: "👕"},
	{Name: "Entertainment/Movies", Icon: "🎬"},
	{Name: "Dining Out", Icon: "🍽️"},
	{Name: "EMI/Loans", Icon: "💳"},
}
