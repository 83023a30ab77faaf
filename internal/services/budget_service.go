package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/notify"
)

// budgetService computes budget metrics and manages limits and alerts.
type budgetService struct {
	db            *gorm.DB
	notifier      notify.Notifier
	defaultIncome decimal.Decimal
	now           func() time.Time
}

// NewBudgetService creates a new BudgetServicer. notifier may be nil.
func NewBudgetService(db *gorm.DB, notifier notify.Notifier, defaultIncome decimal.Decimal) BudgetServicer {
	return &budgetService{db: db, notifier: notifier, defaultIncome: defaultIncome, now: time.Now}
}

// currentPeriod returns the active period, else the one that started last.
func currentPeriod(db *gorm.DB) (*models.FinancialPeriod, error) {
	var period models.FinancialPeriod
	err := db.Where("is_active = ?", true).Order("start_date DESC").First(&period).Error
	if err == nil {
		return &period, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := db.Order("start_date DESC").First(&period).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoFinancialPeriod
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &period, nil
}

// Initialize seeds the default periods, categories and limits. Existing
// rows are left untouched so it can run on every start.
func (s *budgetService) Initialize() error {
	today := startOfDay(s.now())
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var periodCount int64
		if err := tx.Model(&models.FinancialPeriod{}).Count(&periodCount).Error; err != nil {
			return err
		}
		if periodCount == 0 {
			periods := defaultPeriods(today)
			if err := tx.Create(&periods).Error; err != nil {
				return err
			}
		}

		categories := make(map[string]*models.SpendingCategory, len(defaultCategories))
		for _, def := range defaultCategories {
			var found []models.SpendingCategory
			if err := tx.Where("name = ?", def.Name).Limit(1).Find(&found).Error; err != nil {
				return err
			}
			var category models.SpendingCategory
			if len(found) > 0 {
				category = found[0]
			} else {
				category = models.SpendingCategory{
					Name:               def.Name,
					Icon:               def.Icon,
					IsSystem:           true,
					IsEssentialDefault: def.IsEssential,
				}
				if err := tx.Create(&category).Error; err != nil {
					return err
				}
			}
			categories[def.Name] = &category
		}

		var periods []models.FinancialPeriod
		if err := tx.Find(&periods).Error; err != nil {
			return err
		}
		for _, period := range periods {
			for _, def := range defaultCategories {
				limit := def.limitFor(period.Type)
				if limit.IsZero() {
					continue
				}
				category := categories[def.Name]
				var existing int64
				err := tx.Model(&models.BudgetLimit{}).
					Where("category_id = ? AND financial_period_id = ?", category.ID, period.ID).
					Count(&existing).Error
				if err != nil {
					return err
				}
				if existing > 0 {
					continue
				}
				bl := &models.BudgetLimit{
					CategoryID:        category.ID,
					FinancialPeriodID: period.ID,
					MonthlyLimit:      limit,
					IsEssential:       def.IsEssential,
				}
				if err := tx.Create(bl).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetStatus measures the current month against the current period.
func (s *budgetService) GetStatus() (*BudgetStatus, error) {
	today := startOfDay(s.now())
	period, err := currentPeriod(s.db)
	if err != nil {
		return nil, err
	}

	start, end := monthBounds(today.Year(), today.Month())
	spent, err := spendingByCategory(s.db, start, end)
	if err != nil {
		return nil, err
	}
	monthIncome, err := incomeBetween(s.db, start, end)
	if err != nil {
		return nil, err
	}
	baseline := s.incomeBaseline(monthIncome)

	var limits []models.BudgetLimit
	if err := s.db.Preload("Category").Where("financial_period_id = ?", period.ID).Find(&limits).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var goals []models.SavingsGoal
	if err := s.db.Where("financial_period_id = ?", period.ID).Order("created_at ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	daysLeft := daysLeftInMonth(today)
	status := &BudgetStatus{
		CurrentPeriod:     period.Name,
		PeriodType:        period.Type,
		PeriodDescription: period.Description,
		MonthlyIncome:     baseline,
		TotalBudgeted:     decimal.Zero,
		TotalSpent:        decimal.Zero,
		SavingsTarget:     decimal.Zero,
		DaysLeftInMonth:   daysLeft,
		CategoryBudgets:   make([]CategoryBudget, 0, len(limits)),
		SavingsProgress:   make([]SavingsProgress, 0, len(goals)),
	}

	for _, bl := range limits {
		categorySpent := spent[bl.CategoryID]
		cb := newCategoryBudget(bl, categorySpent)
		if cb.Remaining.IsPositive() && daysLeft > 0 {
			cb.DailyRecommendation = cb.Remaining.Div(decimal.NewFromInt(int64(daysLeft))).Round(2)
		}
		status.CategoryBudgets = append(status.CategoryBudgets, cb)
		status.TotalBudgeted = status.TotalBudgeted.Add(bl.MonthlyLimit)
		status.TotalSpent = status.TotalSpent.Add(categorySpent)
	}
	sort.SliceStable(status.CategoryBudgets, func(i, j int) bool {
		a, b := status.CategoryBudgets[i], status.CategoryBudgets[j]
		if a.IsEssential != b.IsEssential {
			return a.IsEssential
		}
		return a.CategoryName < b.CategoryName
	})

	status.RemainingBudget = status.TotalBudgeted.Sub(status.TotalSpent)
	status.ActualSavings = decimal.Max(decimal.Zero, baseline.Sub(status.TotalSpent))
	status.SavingsRate = percentOf(status.ActualSavings, baseline)

	for _, goal := range goals {
		status.SavingsTarget = status.SavingsTarget.Add(goal.MonthlyTarget)
	}
	for _, goal := range goals {
		status.SavingsProgress = append(status.SavingsProgress,
			goalProgress(goal, status.ActualSavings, status.SavingsTarget))
	}

	status.MotivationalMessage = motivationalMessage(status.SavingsRate, period.Type)
	return status, nil
}

func newCategoryBudget(bl models.BudgetLimit, spent decimal.Decimal) CategoryBudget {
	pct := percentOf(spent, bl.MonthlyLimit)
	label, color := categoryStatus(pct)
	cb := CategoryBudget{
		CategoryID:          bl.CategoryID,
		CategoryName:        unknownCategory,
		Limit:               bl.MonthlyLimit,
		Spent:               spent,
		Remaining:           bl.MonthlyLimit.Sub(spent),
		PercentageUsed:      pct,
		IsEssential:         bl.IsEssential,
		Status:              label,
		StatusColor:         color,
		DailyRecommendation: decimal.Zero,
	}
	if bl.Category != nil {
		cb.CategoryName = bl.Category.Name
		cb.Icon = bl.Category.Icon
		cb.IsCustom = !bl.Category.IsSystem
	}
	return cb
}

// goalProgress credits a goal with its share of savings, pro rata to its
// target among all targets of the period.
func goalProgress(goal models.SavingsGoal, savings, totalTarget decimal.Decimal) SavingsProgress {
	actual := decimal.Zero
	if totalTarget.IsPositive() {
		actual = savings.Mul(goal.MonthlyTarget).Div(totalTarget).Round(2)
	}
	progress := percentOf(actual, goal.MonthlyTarget)
	return SavingsProgress{
		GoalID:              goal.ID,
		Type:                goal.Type,
		Name:                goal.Name,
		Target:              goal.MonthlyTarget,
		Actual:              actual,
		Progress:            decimal.Min(progress, hundred),
		IsAchieved:          actual.GreaterThanOrEqual(goal.MonthlyTarget),
		MotivationalMessage: savingsGoalMessage(progress, goal.Name),
	}
}

// CheckSpending previews how a prospective expense would affect the
// category's budget this month. It never blocks the expense.
func (s *budgetService) CheckSpending(categoryID string, amount decimal.Decimal) (*SpendingCheck, error) {
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be greater than zero")
	}
	category, err := findCategory(s.db, categoryID)
	if err != nil {
		return nil, err
	}

	neutral := &SpendingCheck{
		IsAllowed:         true,
		Message:           fmt.Sprintf("No budget limit is set for %s.", category.Name),
		RemainingBudget:   decimal.Zero,
		NewPercentageUsed: decimal.Zero,
		Encouragement:     encouragementMessage(decimal.Zero),
	}
	bl, err := s.currentLimit(categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoFinancialPeriod) || errors.Is(err, apperrors.ErrBudgetLimitNotFound) {
			return neutral, nil
		}
		return nil, err
	}
	if !bl.MonthlyLimit.IsPositive() {
		return neutral, nil
	}

	today := startOfDay(s.now())
	start, end := monthBounds(today.Year(), today.Month())
	spent, err := categorySpending(s.db, categoryID, start, end)
	if err != nil {
		return nil, err
	}

	projected := spent.Add(amount)
	pct := percentOf(projected, bl.MonthlyLimit)
	return &SpendingCheck{
		IsAllowed:         true,
		Message:           spendingCheckMessage(category.Name, pct, bl.IsEssential),
		AlertLevel:        alertLevel(pct),
		RemainingBudget:   bl.MonthlyLimit.Sub(projected),
		NewPercentageUsed: pct,
		Encouragement:     encouragementMessage(pct),
	}, nil
}

// GetFinancialHealth grades the current month's savings rate. Unlike the
// status view, savings here may be negative.
func (s *budgetService) GetFinancialHealth() (*FinancialHealth, error) {
	today := startOfDay(s.now())
	start, end := monthBounds(today.Year(), today.Month())

	monthIncome, err := incomeBetween(s.db, start, end)
	if err != nil {
		return nil, err
	}
	spent, err := spendingByCategory(s.db, start, end)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, amount := range spent {
		total = total.Add(amount)
	}

	baseline := s.incomeBaseline(monthIncome)
	rate := percentOf(baseline.Sub(total), baseline)
	grade := healthGrade(rate)
	return &FinancialHealth{
		Grade:           grade,
		SavingsRate:     rate,
		Score:           healthScore(rate),
		Message:         healthMessage(grade, rate),
		Achievements:    healthAchievements(rate),
		Recommendations: healthRecommendations(rate),
		IsOnTrack:       atLeast(rate, 20),
	}, nil
}

// GetSavingsCelebration summarizes the status savings rate for display.
func (s *budgetService) GetSavingsCelebration() (*SavingsCelebration, error) {
	status, err := s.GetStatus()
	if err != nil {
		return nil, err
	}
	return &SavingsCelebration{
		Message:       celebrationMessage(status.SavingsRate),
		SavingsRate:   status.SavingsRate,
		SavingsAmount: status.ActualSavings,
		Achievements:  celebrationBadges(status.SavingsRate),
		Encouragement: celebrationEncouragement,
	}, nil
}

// GetActiveAlerts returns unread active alerts, newest first.
func (s *budgetService) GetActiveAlerts() ([]models.SpendingAlert, error) {
	var alerts []models.SpendingAlert
	err := s.db.Preload("Category").
		Where("is_active = ? AND is_read = ?", true, false).
		Order("created_at DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return alerts, nil
}

// MarkAlertRead flags an alert as read.
func (s *budgetService) MarkAlertRead(id string) (*models.SpendingAlert, error) {
	var alert models.SpendingAlert
	if err := s.db.Where("id = ?", id).First(&alert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAlertNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Model(&alert).Update("is_read", true).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	alert.IsRead = true
	return &alert, nil
}

// EvaluateAlerts records an alert when the category's spending this month
// has reached a tier that has not been alerted yet, and notifies it.
func (s *budgetService) EvaluateAlerts(categoryID string) error {
	bl, err := s.currentLimit(categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoFinancialPeriod) || errors.Is(err, apperrors.ErrBudgetLimitNotFound) {
			return nil
		}
		return err
	}
	if !bl.MonthlyLimit.IsPositive() {
		return nil
	}

	now := s.now().UTC()
	today := startOfDay(now)
	start, end := monthBounds(today.Year(), today.Month())
	spent, err := categorySpending(s.db, categoryID, start, end)
	if err != nil {
		return err
	}
	pct := percentOf(spent, bl.MonthlyLimit)
	level := alertLevel(pct)
	if level == models.AlertTypeNone {
		return nil
	}

	month := monthKey(today)
	var existing int64
	err = s.db.Model(&models.SpendingAlert{}).
		Where("category_id = ? AND type = ? AND month = ?", categoryID, level, month).
		Count(&existing).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if existing > 0 {
		return nil
	}

	name := unknownCategory
	if bl.Category != nil {
		name = bl.Category.Name
	}
	alert := &models.SpendingAlert{
		CategoryID:      categoryID,
		Type:            level,
		Month:           month,
		Message:         alertMessage(level, name, pct),
		CurrentSpending: spent,
		BudgetLimit:     bl.MonthlyLimit,
		PercentageUsed:  pct,
		IsActive:        true,
	}
	if err := s.db.Create(alert).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if s.notifier != nil {
		err := s.notifier.Notify(context.Background(), notify.Alert{
			ID:             alert.ID,
			CategoryID:     categoryID,
			CategoryName:   name,
			Type:           string(level),
			Month:          month,
			Message:        alert.Message,
			Spent:          spent,
			Limit:          bl.MonthlyLimit,
			PercentageUsed: pct,
			CreatedAt:      alert.CreatedAt,
		})
		if err != nil {
			logger.Get().Warnw("alert notification failed", "alert_id", alert.ID, "error", err)
		}
	}
	return nil
}

func alertMessage(level models.AlertType, category string, pct decimal.Decimal) string {
	p := pct.StringFixed(0)
	switch level {
	case models.AlertTypeExceeded:
		return fmt.Sprintf("%s spending is over budget at %s%% of the monthly limit.", category, p)
	case models.AlertTypeCritical:
		return fmt.Sprintf("%s spending has reached %s%% of the monthly limit.", category, p)
	case models.AlertTypeWarning:
		return fmt.Sprintf("Heads up! %s spending is at %s%% of the monthly limit.", category, p)
	default:
		return fmt.Sprintf("%s spending has passed half of the monthly limit (%s%%).", category, p)
	}
}

// GetBudgetLimits returns the current period's limits, essential first.
func (s *budgetService) GetBudgetLimits() ([]BudgetLimitView, error) {
	period, err := currentPeriod(s.db)
	if err != nil {
		return nil, err
	}
	var limits []models.BudgetLimit
	if err := s.db.Preload("Category").Where("financial_period_id = ?", period.ID).Find(&limits).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	views := make([]BudgetLimitView, 0, len(limits))
	for _, bl := range limits {
		views = append(views, newBudgetLimitView(bl))
	}
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].IsEssential != views[j].IsEssential {
			return views[i].IsEssential
		}
		return views[i].CategoryName < views[j].CategoryName
	})
	return views, nil
}

func newBudgetLimitView(bl models.BudgetLimit) BudgetLimitView {
	view := BudgetLimitView{
		CategoryID:   bl.CategoryID,
		CategoryName: unknownCategory,
		MonthlyLimit: bl.MonthlyLimit,
		IsEssential:  bl.IsEssential,
	}
	if bl.Category != nil {
		view.CategoryName = bl.Category.Name
		view.Icon = bl.Category.Icon
		view.IsCustom = !bl.Category.IsSystem
	}
	return view
}

// GetSpendingCategories lists every category, system categories first.
func (s *budgetService) GetSpendingCategories() ([]CategoryView, error) {
	var categories []models.SpendingCategory
	if err := s.db.Order("is_system DESC").Order("name ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, CategoryView{
			ID:                 c.ID,
			Name:               c.Name,
			Icon:               c.Icon,
			IsCustom:           !c.IsSystem,
			IsEssentialDefault: c.IsEssentialDefault,
		})
	}
	return views, nil
}

// CreateCustomCategory adds a user category with a limit in the current period.
func (s *budgetService) CreateCustomCategory(name string, monthlyLimit decimal.Decimal, isEssential bool) (*CategoryBudget, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Category name is required")
	}
	if monthlyLimit.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Monthly limit must not be negative")
	}

	var created models.BudgetLimit
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureCategoryNameFree(tx, name, ""); err != nil {
			return err
		}
		period, err := currentPeriod(tx)
		if err != nil {
			return err
		}

		category := &models.SpendingCategory{
			Name:               name,
			Icon:               models.DefaultCategoryIcon,
			IsEssentialDefault: isEssential,
		}
		if err := tx.Create(category).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		created = models.BudgetLimit{
			CategoryID:        category.ID,
			FinancialPeriodID: period.ID,
			MonthlyLimit:      monthlyLimit,
			IsEssential:       isEssential,
		}
		if err := tx.Create(&created).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		created.Category = category
		return nil
	})
	if err != nil {
		return nil, err
	}

	cb := newCategoryBudget(created, decimal.Zero)
	return &cb, nil
}

// UpdateCategoryLimit changes the current period's limit for a category.
// A non-blank name renames the category, which system categories refuse.
func (s *budgetService) UpdateCategoryLimit(categoryID string, monthlyLimit decimal.Decimal, isEssential *bool, name *string) (*BudgetLimitView, error) {
	if monthlyLimit.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Monthly limit must not be negative")
	}

	var updated models.BudgetLimit
	err := s.db.Transaction(func(tx *gorm.DB) error {
		period, err := currentPeriod(tx)
		if err != nil {
			return err
		}
		err = tx.Preload("Category").
			Where("category_id = ? AND financial_period_id = ?", categoryID, period.ID).
			First(&updated).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBudgetLimitNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		updates := map[string]interface{}{"monthly_limit": monthlyLimit}
		if isEssential != nil {
			updates["is_essential"] = *isEssential
		}
		if err := tx.Model(&models.BudgetLimit{}).Where("id = ?", updated.ID).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		updated.MonthlyLimit = monthlyLimit
		if isEssential != nil {
			updated.IsEssential = *isEssential
		}

		if name == nil || updated.Category == nil {
			return nil
		}
		newName := strings.TrimSpace(*name)
		if newName == "" || newName == updated.Category.Name {
			return nil
		}
		if updated.Category.IsSystem {
			return apperrors.ErrSystemCategory
		}
		if err := ensureCategoryNameFree(tx, newName, categoryID); err != nil {
			return err
		}
		if err := tx.Model(&models.SpendingCategory{}).Where("id = ?", categoryID).Update("name", newName).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		updated.Category.Name = newName
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := newBudgetLimitView(updated)
	return &view, nil
}

func ensureCategoryNameFree(db *gorm.DB, name, exceptID string) error {
	q := db.Model(&models.SpendingCategory{}).Where("name = ?", name)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.WithMessage(apperrors.ErrDuplicateCategory,
			fmt.Sprintf("A category named '%s' already exists", name))
	}
	return nil
}

// currentLimit loads the category's limit in the current period.
func (s *budgetService) currentLimit(categoryID string) (*models.BudgetLimit, error) {
	period, err := currentPeriod(s.db)
	if err != nil {
		return nil, err
	}
	var bl models.BudgetLimit
	err = s.db.Preload("Category").
		Where("category_id = ? AND financial_period_id = ?", categoryID, period.ID).
		First(&bl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetLimitNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &bl, nil
}

func (s *budgetService) incomeBaseline(monthIncome decimal.Decimal) decimal.Decimal {
	if monthIncome.IsPositive() {
		return monthIncome
	}
	return s.defaultIncome
}

// spendingByCategory sums expenses in [start, end) per category.
func spendingByCategory(db *gorm.DB, start, end time.Time) (map[string]decimal.Decimal, error) {
	var expenses []models.Expense
	err := db.Select("category_id", "amount").
		Where("date >= ? AND date < ?", start, end).
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		totals[e.CategoryID] = totals[e.CategoryID].Add(e.Amount)
	}
	return totals, nil
}

func categorySpending(db *gorm.DB, categoryID string, start, end time.Time) (decimal.Decimal, error) {
	var expenses []models.Expense
	err := db.Select("amount").
		Where("category_id = ? AND date >= ? AND date < ?", categoryID, start, end).
		Find(&expenses).Error
	if err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total, nil
}

// incomeBetween sums incomes in [start, end).
func incomeBetween(db *gorm.DB, start, end time.Time) (decimal.Decimal, error) {
	var incomes []models.Income
	if err := db.Select("amount").Where("date >= ? AND date < ?", start, end).Find(&incomes).Error; err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	total := decimal.Zero
	for _, i := range incomes {
		total = total.Add(i.Amount)
	}
	return total, nil
}
