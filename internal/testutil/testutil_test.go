package testutil_test

import (
	"testing"

	"github.com/indianbuddy/personal-finance-manager/internal/errors"
	"github.com/indianbuddy/personal-finance-manager/internal/models"
	"github.com/indianbuddy/personal-finance-manager/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	if err := db.Table("audit_logs").Count(&count).Error; err != nil {
		t.Errorf("table audit_logs should exist after migration: %v", err)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	in := testutil.Income(t, "2025-07-31", "Salary", 50000)
	if in.Type != models.TransactionTypeIncome || in.Amount.IntPart() != 50000 {
		t.Errorf("unexpected income fixture: %+v", in)
	}

	out := testutil.Expense(t, "2025-07-30", "Street Food", 15)
	if out.Type != models.TransactionTypeExpense {
		t.Errorf("expected expense fixture, got %s", out.Type)
	}
	if in.ID == out.ID {
		t.Error("fixtures should get distinct ids")
	}
	if out.Date.String() != "2025-07-30" {
		t.Errorf("expected date 2025-07-30, got %s", out.Date)
	}

	entry := testutil.CreateTestAuditLog(t, db, models.AuditActionAddTransaction, in)
	if entry.ID == "" {
		t.Fatal("audit log should have an id after create")
	}
	if entry.Amount != "50000" {
		t.Errorf("expected amount 50000, got %s", entry.Amount)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrUnknownCategory, "custom message")
	testutil.AssertAppError(t, err, "UNKNOWN_CATEGORY")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
