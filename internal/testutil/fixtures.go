package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Dec parses a decimal literal and panics on bad input. Test-only shorthand.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// CreateTestCategory creates a custom category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.SpendingCategory {
	t.Helper()
	return CreateTestCategoryWithName(t, db, fmt.Sprintf("Category %d", nextID()))
}

// CreateTestCategoryWithName creates a custom category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, name string) *models.SpendingCategory {
	t.Helper()

	category := &models.SpendingCategory{
		Name: name,
		Icon: models.DefaultCategoryIcon,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestPeriod creates an active standard period spanning the given dates.
func CreateTestPeriod(t *testing.T, db *gorm.DB, start, end time.Time) *models.FinancialPeriod {
	t.Helper()
	return CreateTestPeriodWithType(t, db, models.PeriodTypeStandard, start, end, true)
}

// CreateTestPeriodWithType creates a period of the given type.
func CreateTestPeriodWithType(t *testing.T, db *gorm.DB, periodType models.PeriodType, start, end time.Time, active bool) *models.FinancialPeriod {
	t.Helper()

	period := &models.FinancialPeriod{
		Name:      fmt.Sprintf("Period %d", nextID()),
		Type:      periodType,
		StartDate: start.UTC(),
		EndDate:   end.UTC(),
		IsActive:  active,
	}
	if err := db.Create(period).Error; err != nil {
		t.Fatalf("failed to create test period: %v", err)
	}
	return period
}

// CreateTestBudgetLimit creates a limit for the category in the period.
func CreateTestBudgetLimit(t *testing.T, db *gorm.DB, categoryID, periodID string, limit string, essential bool) *models.BudgetLimit {
	t.Helper()

	bl := &models.BudgetLimit{
		CategoryID:        categoryID,
		FinancialPeriodID: periodID,
		MonthlyLimit:      Dec(limit),
		IsEssential:       essential,
	}
	if err := db.Create(bl).Error; err != nil {
		t.Fatalf("failed to create test budget limit: %v", err)
	}
	return bl
}

// CreateTestExpense creates an expense in the category on the given date.
func CreateTestExpense(t *testing.T, db *gorm.DB, categoryID string, amount string, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Date:          date.UTC(),
		Amount:        Dec(amount),
		CategoryID:    categoryID,
		Description:   fmt.Sprintf("Expense %d", nextID()),
		PaymentMethod: "Card",
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestIncome creates an income on the given date.
func CreateTestIncome(t *testing.T, db *gorm.DB, amount string, date time.Time) *models.Income {
	t.Helper()

	income := &models.Income{
		Date:   date.UTC(),
		Amount: Dec(amount),
		Source: "Salary",
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestSavingsGoal creates a goal in the period.
func CreateTestSavingsGoal(t *testing.T, db *gorm.DB, periodID string, goalType models.SavingsGoalType, target string) *models.SavingsGoal {
	t.Helper()

	goal := &models.SavingsGoal{
		Type:              goalType,
		Name:              fmt.Sprintf("Goal %d", nextID()),
		MonthlyTarget:     Dec(target),
		FinancialPeriodID: periodID,
		IsRequired:        true,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test savings goal: %v", err)
	}
	return goal
}

// CreateTestSavingsEntry creates a savings ledger entry.
func CreateTestSavingsEntry(t *testing.T, db *gorm.DB, amount string, date time.Time) *models.TotalSavings {
	t.Helper()

	entry := &models.TotalSavings{
		Date:        date.UTC(),
		Amount:      Dec(amount),
		Description: fmt.Sprintf("Transfer %d", nextID()),
		Category:    "Emergency Fund",
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test savings entry: %v", err)
	}
	return entry
}
