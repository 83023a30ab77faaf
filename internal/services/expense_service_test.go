package services

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/testutil"
)

type fakeEvaluator struct {
	calls []string
	err   error
}

func (f *fakeEvaluator) EvaluateAlerts(categoryID string) error {
	f.calls = append(f.calls, categoryID)
	return f.err
}

func newTestExpenseService(db *gorm.DB, alerts AlertEvaluator) *expenseService {
	return &expenseService{db: db, alerts: alerts, now: func() time.Time { return budgetNow }}
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func validExpenseInput(categoryID string) ExpenseInput {
	return ExpenseInput{
		Date:          day(12),
		Amount:        testutil.Dec("42.50"),
		CategoryID:    categoryID,
		Description:   "  Weekly shop ",
		PaymentMethod: " Card ",
		Tags:          "food,weekly",
	}
}

func TestCreateExpense(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		evaluator := &fakeEvaluator{}
		svc := newTestExpenseService(db, evaluator)
		cat := testutil.CreateTestCategory(t, db)

		expense, err := svc.CreateExpense(validExpenseInput(cat.ID))
		testutil.AssertNoError(t, err)

		if expense.ID == "" {
			t.Fatal("expected expense ID")
		}
		if expense.Description != "Weekly shop" || expense.PaymentMethod != "Card" {
			t.Errorf("expected trimmed fields, got %q / %q", expense.Description, expense.PaymentMethod)
		}
		testutil.AssertDecimal(t, "amount", expense.Amount, "42.5")
		if expense.Category == nil || expense.Category.ID != cat.ID {
			t.Error("expected category to be attached")
		}
		if len(evaluator.calls) != 1 || evaluator.calls[0] != cat.ID {
			t.Errorf("expected alert evaluation for %s, got %v", cat.ID, evaluator.calls)
		}
	})

	t.Run("evaluator_failure_is_not_fatal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := newTestExpenseService(db, &fakeEvaluator{err: errors.New("boom")})
		cat := testutil.CreateTestCategory(t, db)

		_, err := svc.CreateExpense(validExpenseInput(cat.ID))
		testutil.AssertNoError(t, err)
	})

	t.Run("unknown_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := newTestExpenseService(db, nil)

		_, err := svc.CreateExpense(validExpenseInput("missing"))
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	invalid := []struct {
		name   string
		mutate func(*ExpenseInput)
	}{
		{"zero_amount", func(in *ExpenseInput) { in.Amount = testutil.Dec("0") }},
		{"negative_amount", func(in *ExpenseInput) { in.Amount = testutil.Dec("-5") }},
		{"blank_description", func(in *ExpenseInput) { in.Description = "   " }},
		{"missing_date", func(in *ExpenseInput) { in.Date = time.Time{} }},
		{"missing_category", func(in *ExpenseInput) { in.CategoryID = "" }},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			svc := newTestExpenseService(db, nil)
			cat := testutil.CreateTestCategory(t, db)

			input := validExpenseInput(cat.ID)
			tc.mutate(&input)
			_, err := svc.CreateExpense(input)
			testutil.AssertAppError(t, err, "INVALID_INPUT")
		})
	}
}

func TestUpdateExpense(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		evaluator := &fakeEvaluator{}
		svc := newTestExpenseService(db, evaluator)
		cat := testutil.CreateTestCategory(t, db)
		other := testutil.CreateTestCategory(t, db)
		expense := testutil.CreateTestExpense(t, db, cat.ID, "10", day(3))

		input := validExpenseInput(other.ID)
		input.Amount = testutil.Dec("99.99")
		input.IsRecurring = true
		updated, err := svc.UpdateExpense(expense.ID, input)
		testutil.AssertNoError(t, err)

		testutil.AssertDecimal(t, "amount", updated.Amount, "99.99")
		if updated.CategoryID != other.ID || !updated.IsRecurring {
			t.Errorf("unexpected update result: %+v", updated)
		}
		if updated.Category == nil || updated.Category.ID != other.ID {
			t.Error("expected new category preloaded")
		}
		if len(evaluator.calls) != 1 || evaluator.calls[0] != other.ID {
			t.Errorf("expected evaluation for new category, got %v", evaluator.calls)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := newTestExpenseService(db, nil)
		cat := testutil.CreateTestCategory(t, db)

		_, err := svc.UpdateExpense("missing", validExpenseInput(cat.ID))
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})

	t.Run("unknown_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := newTestExpenseService(db, nil)
		cat := testutil.CreateTestCategory(t, db)
		expense := testutil.CreateTestExpense(t, db, cat.ID, "10", day(3))

		_, err := svc.UpdateExpense(expense.ID, validExpenseInput("missing"))
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestDeleteExpense(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newTestExpenseService(db, nil)
	cat := testutil.CreateTestCategory(t, db)
	expense := testutil.CreateTestExpense(t, db, cat.ID, "10", day(3))

	testutil.AssertNoError(t, svc.DeleteExpense(expense.ID))

	_, err := svc.GetExpenseByID(expense.ID)
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")

	err = svc.DeleteExpense(expense.ID)
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
}

func TestListExpenses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newTestExpenseService(db, nil)
	food := testutil.CreateTestCategory(t, db)
	fuel := testutil.CreateTestCategory(t, db)
	testutil.CreateTestExpense(t, db, food.ID, "10", day(1))
	testutil.CreateTestExpense(t, db, food.ID, "20", day(15))
	latest := testutil.CreateTestExpense(t, db, fuel.ID, "30", day(17))
	testutil.CreateTestExpense(t, db, fuel.ID, "40", time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC))
	cash := &models.Expense{Date: day(2), Amount: testutil.Dec("5"), CategoryID: fuel.ID, Description: "Parking", PaymentMethod: "Cash"}
	if err := db.Create(cash).Error; err != nil {
		t.Fatalf("failed to create expense: %v", err)
	}

	t.Run("all_newest_first", func(t *testing.T) {
		result, err := svc.ListExpenses(ExpenseFilter{}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 5 {
			t.Fatalf("expected 5 expenses, got %d", result.TotalItems)
		}
		if result.Data[0].ID != latest.ID {
			t.Errorf("expected newest expense first, got %s", result.Data[0].ID)
		}
		if result.Data[0].Category == nil {
			t.Error("expected category preloaded")
		}
	})

	t.Run("month_filter", func(t *testing.T) {
		result, err := svc.ListExpenses(ExpenseFilter{Month: intPtr(9), Year: intPtr(2026)}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 {
			t.Errorf("expected 1 September expense, got %d", result.TotalItems)
		}
	})

	t.Run("category_filter", func(t *testing.T) {
		result, err := svc.ListExpenses(ExpenseFilter{CategoryID: &food.ID}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 2 {
			t.Errorf("expected 2 food expenses, got %d", result.TotalItems)
		}
	})

	t.Run("payment_method_filter", func(t *testing.T) {
		result, err := svc.ListExpenses(ExpenseFilter{PaymentMethod: strPtr(" Cash ")}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 || result.Data[0].ID != cash.ID {
			t.Errorf("expected the cash expense only, got %d", result.TotalItems)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		result, err := svc.ListExpenses(ExpenseFilter{}, pagination.PageRequest{Page: 2, PageSize: 2})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 2 || result.TotalPages != 3 {
			t.Errorf("expected 2 items of 3 pages, got %d items of %d pages", len(result.Data), result.TotalPages)
		}
	})

	t.Run("month_without_year", func(t *testing.T) {
		_, err := svc.ListExpenses(ExpenseFilter{Month: intPtr(9)}, pagination.PageRequest{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetDailyAnalytics(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newTestExpenseService(db, nil)
	cat := testutil.CreateTestCategory(t, db)
	testutil.CreateTestExpense(t, db, cat.ID, "10", day(17))
	testutil.CreateTestExpense(t, db, cat.ID, "15", time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC))
	testutil.CreateTestExpense(t, db, cat.ID, "7", day(18))
	testutil.CreateTestExpense(t, db, cat.ID, "99", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	t.Run("defaults_to_last_30_days", func(t *testing.T) {
		days, err := svc.GetDailyAnalytics(nil, nil)
		testutil.AssertNoError(t, err)
		if len(days) != 2 {
			t.Fatalf("expected 2 days, got %d", len(days))
		}
		if !days[0].Date.Equal(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected first bucket on Oct 17, got %s", days[0].Date)
		}
		testutil.AssertDecimal(t, "oct 17 total", days[0].TotalAmount, "25")
		if days[0].TransactionCount != 2 || len(days[0].Expenses) != 2 {
			t.Errorf("expected 2 transactions, got %d", days[0].TransactionCount)
		}
	})

	t.Run("end_is_inclusive", func(t *testing.T) {
		start := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
		days, err := svc.GetDailyAnalytics(&start, &start)
		testutil.AssertNoError(t, err)
		if len(days) != 1 {
			t.Errorf("expected 1 day, got %d", len(days))
		}
	})

	t.Run("end_before_start", func(t *testing.T) {
		start := day(10)
		end := day(9)
		_, err := svc.GetDailyAnalytics(&start, &end)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetWeeklyAnalytics(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newTestExpenseService(db, nil)
	cat := testutil.CreateTestCategory(t, db)
	testutil.CreateTestExpense(t, db, cat.ID, "12", day(18))
	testutil.CreateTestExpense(t, db, cat.ID, "30", day(17))
	testutil.CreateTestExpense(t, db, cat.ID, "5", time.Date(2026, 9, 27, 8, 0, 0, 0, time.UTC))
	testutil.CreateTestExpense(t, db, cat.ID, "15", time.Date(2026, 9, 30, 22, 0, 0, 0, time.UTC))
	testutil.CreateTestExpense(t, db, cat.ID, "100", time.Date(2026, 9, 26, 8, 0, 0, 0, time.UTC))

	t.Run("current_week", func(t *testing.T) {
		result, err := svc.GetWeeklyAnalytics(nil, nil)
		testutil.AssertNoError(t, err)

		if !result.StartDate.Equal(time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected week to start Sunday Oct 18, got %s", result.StartDate)
		}
		testutil.AssertDecimal(t, "total", result.TotalAmount, "12")
		if result.TransactionCount != 1 {
			t.Errorf("expected 1 transaction, got %d", result.TransactionCount)
		}
	})

	t.Run("past_month_last_week", func(t *testing.T) {
		result, err := svc.GetWeeklyAnalytics(intPtr(9), intPtr(2026))
		testutil.AssertNoError(t, err)

		if !result.StartDate.Equal(time.Date(2026, 9, 27, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected start Sep 27, got %s", result.StartDate)
		}
		if !result.EndDate.Equal(time.Date(2026, 9, 30, 23, 59, 59, 0, time.UTC)) {
			t.Errorf("expected end of Sep 30, got %s", result.EndDate)
		}
		testutil.AssertDecimal(t, "total", result.TotalAmount, "20")
		testutil.AssertDecimal(t, "average", result.AverageAmount, "10")
		if len(result.CategoryBreakdown) != 1 || result.CategoryBreakdown[0].TransactionCount != 2 {
			t.Errorf("unexpected breakdown: %+v", result.CategoryBreakdown)
		}
	})
}

func TestGetMonthlyAnalytics(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newTestExpenseService(db, nil)
	big := testutil.CreateTestCategoryWithName(t, db, "Big")
	small := testutil.CreateTestCategoryWithName(t, db, "Small")
	testutil.CreateTestExpense(t, db, small.ID, "10", day(2))
	testutil.CreateTestExpense(t, db, big.ID, "50", day(3))
	testutil.CreateTestExpense(t, db, big.ID, "25", day(18))
	testutil.CreateTestExpense(t, db, big.ID, "500", day(25))

	t.Run("current_month_clipped_to_today", func(t *testing.T) {
		result, err := svc.GetMonthlyAnalytics(nil, nil)
		testutil.AssertNoError(t, err)

		testutil.AssertDecimal(t, "total", result.TotalAmount, "85")
		testutil.AssertDecimal(t, "average", result.AverageAmount, "28.33")
		if !result.EndDate.Equal(time.Date(2026, 10, 18, 23, 59, 59, 0, time.UTC)) {
			t.Errorf("expected end of today, got %s", result.EndDate)
		}
		if result.CategoryBreakdown[0].CategoryName != "Big" {
			t.Errorf("expected Big first, got %s", result.CategoryBreakdown[0].CategoryName)
		}
	})

	t.Run("empty_month", func(t *testing.T) {
		result, err := svc.GetMonthlyAnalytics(intPtr(1), intPtr(2025))
		testutil.AssertNoError(t, err)

		testutil.AssertDecimal(t, "total", result.TotalAmount, "0")
		if result.TransactionCount != 0 || len(result.CategoryBreakdown) != 0 {
			t.Errorf("expected empty analytics, got %+v", result)
		}
	})
}

func TestGetCategorySummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newTestExpenseService(db, nil)
	rent := testutil.CreateTestCategoryWithName(t, db, "Rent")
	fun := testutil.CreateTestCategoryWithName(t, db, "Fun")
	testutil.CreateTestExpense(t, db, fun.ID, "25", day(4))
	testutil.CreateTestExpense(t, db, rent.ID, "75", day(1))

	summaries, err := svc.GetCategorySummary(intPtr(10), intPtr(2026))
	testutil.AssertNoError(t, err)

	if len(summaries) != 2 || summaries[0].CategoryName != "Rent" {
		t.Fatalf("expected Rent first, got %+v", summaries)
	}
	testutil.AssertDecimal(t, "rent pct", summaries[0].Percentage, "75")
	testutil.AssertDecimal(t, "fun pct", summaries[1].Percentage, "25")
}

func TestGetPaymentMethodSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newTestExpenseService(db, nil)
	cat := testutil.CreateTestCategory(t, db)
	testutil.CreateTestExpense(t, db, cat.ID, "60", day(1))
	blank := &models.Expense{Date: day(2), Amount: testutil.Dec("40"), CategoryID: cat.ID, Description: "Tip", PaymentMethod: "  "}
	if err := db.Create(blank).Error; err != nil {
		t.Fatalf("failed to create expense: %v", err)
	}

	summaries, err := svc.GetPaymentMethodSummary(nil, nil)
	testutil.AssertNoError(t, err)

	if len(summaries) != 2 {
		t.Fatalf("expected 2 methods, got %d", len(summaries))
	}
	if summaries[0].PaymentMethod != "Card" || summaries[1].PaymentMethod != "Unspecified" {
		t.Errorf("unexpected methods: %s, %s", summaries[0].PaymentMethod, summaries[1].PaymentMethod)
	}
	testutil.AssertDecimal(t, "card pct", summaries[0].Percentage, "60")
}
