package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

const unknownCategory = "Unknown"

// expenseService handles expense-related business logic.
type expenseService struct {
	db     *gorm.DB
	alerts AlertEvaluator
	now    func() time.Time
}

// NewExpenseService creates a new ExpenseServicer. alerts may be nil.
func NewExpenseService(db *gorm.DB, alerts AlertEvaluator) ExpenseServicer {
	return &expenseService{db: db, alerts: alerts, now: time.Now}
}

func validateExpenseInput(input *ExpenseInput) error {
	if !input.Amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Expense amount must be greater than zero")
	}
	input.Description = strings.TrimSpace(input.Description)
	if input.Description == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Expense description is required")
	}
	if input.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Expense date is required")
	}
	if strings.TrimSpace(input.CategoryID) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Expense category is required")
	}
	input.PaymentMethod = strings.TrimSpace(input.PaymentMethod)
	input.Location = strings.TrimSpace(input.Location)
	input.Tags = strings.TrimSpace(input.Tags)
	return nil
}

// findCategory loads a category or returns ErrCategoryNotFound.
func findCategory(db *gorm.DB, id string) (*models.SpendingCategory, error) {
	var category models.SpendingCategory
	if err := db.Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// CreateExpense records a new expense and re-evaluates its category's alerts.
func (s *expenseService) CreateExpense(input ExpenseInput) (*models.Expense, error) {
	if err := validateExpenseInput(&input); err != nil {
		return nil, err
	}
	category, err := findCategory(s.db, input.CategoryID)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		Date:          input.Date.UTC(),
		Amount:        input.Amount,
		CategoryID:    category.ID,
		Description:   input.Description,
		PaymentMethod: input.PaymentMethod,
		Location:      input.Location,
		Tags:          input.Tags,
		IsRecurring:   input.IsRecurring,
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	expense.Category = category

	s.evaluateAlerts(category.ID)
	return expense, nil
}

// GetExpenseByID returns an expense with its category.
func (s *expenseService) GetExpenseByID(id string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Preload("Category").Where("id = ?", id).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense replaces every writable field of an expense.
func (s *expenseService) UpdateExpense(id string, input ExpenseInput) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(id)
	if err != nil {
		return nil, err
	}
	if err := validateExpenseInput(&input); err != nil {
		return nil, err
	}
	category, err := findCategory(s.db, input.CategoryID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"date":           input.Date.UTC(),
		"amount":         input.Amount,
		"category_id":    category.ID,
		"description":    input.Description,
		"payment_method": input.PaymentMethod,
		"location":       input.Location,
		"tags":           input.Tags,
		"is_recurring":   input.IsRecurring,
	}
	if err := s.db.Model(&models.Expense{}).Where("id = ?", expense.ID).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.evaluateAlerts(category.ID)
	return s.GetExpenseByID(expense.ID)
}

// DeleteExpense permanently removes an expense.
func (s *expenseService) DeleteExpense(id string) error {
	expense, err := s.GetExpenseByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(&models.Expense{}, "id = ?", expense.ID).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ListExpenses returns a page of expenses, newest first.
func (s *expenseService) ListExpenses(filter ExpenseFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	var start, end time.Time
	year, month, explicit, err := resolveMonth(filter.Month, filter.Year, s.now())
	if err != nil {
		return nil, err
	}
	if explicit {
		start, end = monthBounds(year, month)
	}

	scope := func(db *gorm.DB) *gorm.DB {
		if explicit {
			db = db.Where("date >= ? AND date < ?", start, end)
		}
		if filter.CategoryID != nil && *filter.CategoryID != "" {
			db = db.Where("category_id = ?", *filter.CategoryID)
		}
		if filter.PaymentMethod != nil && strings.TrimSpace(*filter.PaymentMethod) != "" {
			db = db.Where("payment_method = ?", strings.TrimSpace(*filter.PaymentMethod))
		}
		return db
	}

	var totalItems int64
	if err := s.db.Model(&models.Expense{}).Scopes(scope).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	err = s.db.Scopes(scope).
		Preload("Category").
		Order("date DESC").Order("created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetDailyAnalytics buckets expenses per calendar day between start and end
// (both inclusive). Defaults cover the last 30 days through today.
func (s *expenseService) GetDailyAnalytics(start, end *time.Time) ([]DailyExpenses, error) {
	today := startOfDay(s.now())
	from := today.AddDate(0, 0, -30)
	to := today
	if start != nil {
		from = startOfDay(*start)
	}
	if end != nil {
		to = startOfDay(*end)
	}
	if to.Before(from) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "end date must not be before start date")
	}

	expenses, err := s.expensesBetween(from, to.AddDate(0, 0, 1), "date ASC")
	if err != nil {
		return nil, err
	}

	days := make([]DailyExpenses, 0)
	for _, e := range expenses {
		day := startOfDay(e.Date)
		if n := len(days); n == 0 || !days[n-1].Date.Equal(day) {
			days = append(days, DailyExpenses{Date: day, TotalAmount: decimal.Zero, Expenses: []models.Expense{}})
		}
		bucket := &days[len(days)-1]
		bucket.TotalAmount = bucket.TotalAmount.Add(e.Amount)
		bucket.TransactionCount++
		bucket.Expenses = append(bucket.Expenses, e)
	}
	return days, nil
}

// GetWeeklyAnalytics summarizes a Sunday-started week. For the current month
// (or no month) it is this week through today; for any other month it is
// the week containing that month's last day, through the last day.
func (s *expenseService) GetWeeklyAnalytics(month, year *int) (*ExpenseAnalytics, error) {
	now := s.now()
	y, m, explicit, err := resolveMonth(month, year, now)
	if err != nil {
		return nil, err
	}

	today := startOfDay(now)
	ref := today
	if explicit && (y != today.Year() || m != today.Month()) {
		_, next := monthBounds(y, m)
		ref = next.AddDate(0, 0, -1)
	}
	start := ref.AddDate(0, 0, -int(ref.Weekday()))
	return s.analytics(start, ref.AddDate(0, 0, 1))
}

// GetMonthlyAnalytics summarizes a calendar month, clipped to today when the
// month contains today.
func (s *expenseService) GetMonthlyAnalytics(month, year *int) (*ExpenseAnalytics, error) {
	start, end, err := s.monthWindow(month, year)
	if err != nil {
		return nil, err
	}
	return s.analytics(start, end)
}

// GetCategorySummary returns each category's share of the month's spending.
func (s *expenseService) GetCategorySummary(month, year *int) ([]CategorySummary, error) {
	start, end, err := s.monthWindow(month, year)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expensesBetween(start, end, "date ASC")
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	index := make(map[string]int)
	summaries := make([]CategorySummary, 0)
	for _, e := range expenses {
		total = total.Add(e.Amount)
		i, ok := index[e.CategoryID]
		if !ok {
			i = len(summaries)
			index[e.CategoryID] = i
			summaries = append(summaries, CategorySummary{
				CategoryID:   e.CategoryID,
				CategoryName: categoryName(e.Category),
				TotalAmount:  decimal.Zero,
			})
		}
		summaries[i].TotalAmount = summaries[i].TotalAmount.Add(e.Amount)
		summaries[i].TransactionCount++
	}
	for i := range summaries {
		summaries[i].Percentage = percentOf(summaries[i].TotalAmount, total)
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalAmount.GreaterThan(summaries[j].TotalAmount)
	})
	return summaries, nil
}

// GetPaymentMethodSummary groups the month's spending by trimmed payment
// method. Blank methods are reported as "Unspecified".
func (s *expenseService) GetPaymentMethodSummary(month, year *int) ([]PaymentMethodSummary, error) {
	start, end, err := s.monthWindow(month, year)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expensesBetween(start, end, "date ASC")
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	index := make(map[string]int)
	summaries := make([]PaymentMethodSummary, 0)
	for _, e := range expenses {
		method := strings.TrimSpace(e.PaymentMethod)
		if method == "" {
			method = "Unspecified"
		}
		total = total.Add(e.Amount)
		i, ok := index[method]
		if !ok {
			i = len(summaries)
			index[method] = i
			summaries = append(summaries, PaymentMethodSummary{PaymentMethod: method, TotalAmount: decimal.Zero})
		}
		summaries[i].TotalAmount = summaries[i].TotalAmount.Add(e.Amount)
		summaries[i].TransactionCount++
	}
	for i := range summaries {
		summaries[i].Percentage = percentOf(summaries[i].TotalAmount, total)
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalAmount.GreaterThan(summaries[j].TotalAmount)
	})
	return summaries, nil
}

// monthWindow returns [month start, end) where end is tomorrow when the
// month contains today and the next month's first day otherwise.
func (s *expenseService) monthWindow(month, year *int) (time.Time, time.Time, error) {
	now := s.now()
	y, m, _, err := resolveMonth(month, year, now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start, next := monthBounds(y, m)
	today := startOfDay(now)
	if !today.Before(start) && today.Before(next) {
		return start, today.AddDate(0, 0, 1), nil
	}
	return start, next, nil
}

func (s *expenseService) expensesBetween(start, end time.Time, order string) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.Preload("Category").
		Where("date >= ? AND date < ?", start, end).
		Order(order).
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// analytics summarizes expenses in [start, end). The reported EndDate is
// the last second inside the window.
func (s *expenseService) analytics(start, end time.Time) (*ExpenseAnalytics, error) {
	expenses, err := s.expensesBetween(start, end, "date ASC")
	if err != nil {
		return nil, err
	}

	result := &ExpenseAnalytics{
		StartDate:         start,
		EndDate:           end.Add(-time.Second),
		TotalAmount:       decimal.Zero,
		AverageAmount:     decimal.Zero,
		CategoryBreakdown: []CategoryBreakdown{},
	}
	if len(expenses) == 0 {
		return result, nil
	}

	index := make(map[string]int)
	for _, e := range expenses {
		result.TotalAmount = result.TotalAmount.Add(e.Amount)
		i, ok := index[e.CategoryID]
		if !ok {
			i = len(result.CategoryBreakdown)
			index[e.CategoryID] = i
			result.CategoryBreakdown = append(result.CategoryBreakdown, CategoryBreakdown{
				CategoryID:   e.CategoryID,
				CategoryName: categoryName(e.Category),
				TotalAmount:  decimal.Zero,
			})
		}
		result.CategoryBreakdown[i].TotalAmount = result.CategoryBreakdown[i].TotalAmount.Add(e.Amount)
		result.CategoryBreakdown[i].TransactionCount++
	}
	result.TransactionCount = len(expenses)
	result.AverageAmount = result.TotalAmount.Div(decimal.NewFromInt(int64(len(expenses)))).Round(2)
	sort.SliceStable(result.CategoryBreakdown, func(i, j int) bool {
		return result.CategoryBreakdown[i].TotalAmount.GreaterThan(result.CategoryBreakdown[j].TotalAmount)
	})
	return result, nil
}

func (s *expenseService) evaluateAlerts(categoryID string) {
	if s.alerts == nil {
		return
	}
	if err := s.alerts.EvaluateAlerts(categoryID); err != nil {
		logger.Get().Warnw("failed to evaluate spending alerts", "error", err, "category_id", categoryID)
	}
}

func categoryName(c *models.SpendingCategory) string {
	if c == nil {
		return unknownCategory
	}
	return c.Name
}
