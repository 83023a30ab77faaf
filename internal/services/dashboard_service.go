package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fintrack/internal/charts"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// dashboardService aggregates income and spending for dashboards.
type dashboardService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db, now: time.Now}
}

// GetMonthly returns the full calendar month's totals and category spend.
func (s *dashboardService) GetMonthly(month, year *int) (*MonthlyDashboard, error) {
	y, m, _, err := resolveMonth(month, year, s.now())
	if err != nil {
		return nil, err
	}
	start, end := monthBounds(y, m)

	income, err := incomeBetween(s.db, start, end)
	if err != nil {
		return nil, err
	}
	var expenses []models.Expense
	if err := s.db.Preload("Category").Where("date >= ? AND date < ?", start, end).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	total := decimal.Zero
	index := make(map[string]int)
	byCategory := make([]CategoryAmount, 0)
	for _, e := range expenses {
		total = total.Add(e.Amount)
		name := categoryName(e.Category)
		i, ok := index[name]
		if !ok {
			i = len(byCategory)
			index[name] = i
			byCategory = append(byCategory, CategoryAmount{Category: name, Amount: decimal.Zero})
		}
		byCategory[i].Amount = byCategory[i].Amount.Add(e.Amount)
	}
	sort.SliceStable(byCategory, func(i, j int) bool {
		return byCategory[i].Amount.GreaterThan(byCategory[j].Amount)
	})

	net := income.Sub(total)
	return &MonthlyDashboard{
		Month:              int(m),
		Year:               y,
		TotalIncome:        income,
		TotalExpenses:      total,
		NetSavings:         net,
		SavingsRate:        percentOf(net, income),
		ExpensesByCategory: byCategory,
	}, nil
}

// GetYearly totals a calendar year and breaks it down per month.
func (s *dashboardService) GetYearly(year *int) (*YearlyDashboard, error) {
	y := s.now().UTC().Year()
	if year != nil {
		if *year < 1900 || *year > 9999 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be between 1900 and 9999")
		}
		y = *year
	}
	start := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var incomes []models.Income
	if err := s.db.Select("date", "amount").Where("date >= ? AND date < ?", start, end).Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var expenses []models.Expense
	if err := s.db.Select("date", "amount").Where("date >= ? AND date < ?", start, end).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := &YearlyDashboard{
		Year:          y,
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		Monthly:       make([]MonthAmount, 12),
	}
	for i := range result.Monthly {
		result.Monthly[i] = MonthAmount{Month: i + 1, Income: decimal.Zero, Expenses: decimal.Zero}
	}
	for _, in := range incomes {
		bucket := &result.Monthly[in.Date.UTC().Month()-1]
		bucket.Income = bucket.Income.Add(in.Amount)
		result.TotalIncome = result.TotalIncome.Add(in.Amount)
	}
	for _, e := range expenses {
		bucket := &result.Monthly[e.Date.UTC().Month()-1]
		bucket.Expenses = bucket.Expenses.Add(e.Amount)
		result.TotalExpenses = result.TotalExpenses.Add(e.Amount)
	}
	result.NetSavings = result.TotalIncome.Sub(result.TotalExpenses)
	result.SavingsRate = percentOf(result.NetSavings, result.TotalIncome)
	return result, nil
}

// RenderYearlyChart draws the year's monthly expenses as a PNG bar chart.
func (s *dashboardService) RenderYearlyChart(year *int) ([]byte, error) {
	yearly, err := s.GetYearly(year)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(yearly.Monthly))
	for i, m := range yearly.Monthly {
		values[i] = m.Expenses.InexactFloat64()
	}
	png, err := charts.MonthlyExpenses(yearly.Year, values)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return png, nil
}
