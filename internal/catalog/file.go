package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/indianbuddy/personal-finance-manager/internal/models"
)

// fileFormat is the YAML layout of a catalog file:
//
//	income:
//	  - name: Salary
//	    icon: "💰"
//	expense:
//	  - name: Groceries
type fileFormat struct {
	Income  []models.Category `yaml:"income"`
	Expense []models.Category `yaml:"expense"`
}

// Parse builds a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(f.Income, f.Expense)
}

// Load reads a catalog file. An empty path selects the default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}
