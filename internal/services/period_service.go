package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// periodService manages financial periods and their savings goals.
type periodService struct {
	db *gorm.DB
}

// NewPeriodService creates a new PeriodServicer.
func NewPeriodService(db *gorm.DB) PeriodServicer {
	return &periodService{db: db}
}

// ListPeriods returns every period in chronological order.
func (s *periodService) ListPeriods() ([]models.FinancialPeriod, error) {
	var periods []models.FinancialPeriod
	if err := s.db.Order("start_date ASC").Find(&periods).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return periods, nil
}

// GetPeriodByID returns a period by ID.
func (s *periodService) GetPeriodByID(id string) (*models.FinancialPeriod, error) {
	return findPeriod(s.db, id)
}

func findPeriod(db *gorm.DB, id string) (*models.FinancialPeriod, error) {
	var period models.FinancialPeriod
	if err := db.Where("id = ?", id).First(&period).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPeriodNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &period, nil
}

// GetCurrentPeriod returns the active period, else the one that started last.
func (s *periodService) GetCurrentPeriod() (*models.FinancialPeriod, error) {
	return currentPeriod(s.db)
}

// CreatePeriod adds a period. With Activate it becomes the only active
// period; with CopyLimits it inherits the current period's limits.
func (s *periodService) CreatePeriod(input PeriodInput) (*models.FinancialPeriod, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Period name is required")
	}
	if input.Type == "" {
		input.Type = models.PeriodTypeStandard
	}
	if !input.Type.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown period type")
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Period start and end dates are required")
	}
	start, end := startOfDay(input.StartDate), startOfDay(input.EndDate)
	if end.Before(start) {
		return nil, apperrors.ErrInvalidPeriodRange
	}

	period := &models.FinancialPeriod{
		Name:        input.Name,
		Type:        input.Type,
		StartDate:   start,
		EndDate:     end,
		IsActive:    input.Activate,
		Description: strings.TrimSpace(input.Description),
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var source *models.FinancialPeriod
		if input.CopyLimits {
			current, err := currentPeriod(tx)
			if err != nil && !errors.Is(err, apperrors.ErrNoFinancialPeriod) {
				return err
			}
			source = current
		}

		if input.Activate {
			if err := deactivatePeriods(tx); err != nil {
				return err
			}
		}
		if err := tx.Create(period).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if source == nil {
			return nil
		}
		var limits []models.BudgetLimit
		if err := tx.Where("financial_period_id = ?", source.ID).Find(&limits).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, bl := range limits {
			copied := &models.BudgetLimit{
				CategoryID:        bl.CategoryID,
				FinancialPeriodID: period.ID,
				MonthlyLimit:      bl.MonthlyLimit,
				IsEssential:       bl.IsEssential,
			}
			if err := tx.Create(copied).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return period, nil
}

// ActivatePeriod makes the period the only active one.
func (s *periodService) ActivatePeriod(id string) (*models.FinancialPeriod, error) {
	var period *models.FinancialPeriod
	err := s.db.Transaction(func(tx *gorm.DB) error {
		found, err := findPeriod(tx, id)
		if err != nil {
			return err
		}
		if err := deactivatePeriods(tx); err != nil {
			return err
		}
		if err := tx.Model(&models.FinancialPeriod{}).Where("id = ?", id).Update("is_active", true).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		found.IsActive = true
		period = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return period, nil
}

func deactivatePeriods(tx *gorm.DB) error {
	err := tx.Model(&models.FinancialPeriod{}).Where("is_active = ?", true).Update("is_active", false).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ListSavingsGoals returns goals with their period, optionally for one period.
func (s *periodService) ListSavingsGoals(periodID *string) ([]models.SavingsGoal, error) {
	q := s.db.Preload("FinancialPeriod").Order("created_at ASC")
	if periodID != nil && *periodID != "" {
		q = q.Where("financial_period_id = ?", *periodID)
	}
	var goals []models.SavingsGoal
	if err := q.Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

// CreateSavingsGoal adds a monthly savings target to a period.
func (s *periodService) CreateSavingsGoal(input SavingsGoalInput) (*models.SavingsGoal, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Savings goal name is required")
	}
	if !input.Type.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown savings goal type")
	}
	if !input.MonthlyTarget.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Monthly target must be greater than zero")
	}
	period, err := findPeriod(s.db, input.FinancialPeriodID)
	if err != nil {
		return nil, err
	}

	goal := &models.SavingsGoal{
		Type:              input.Type,
		Name:              input.Name,
		MonthlyTarget:     input.MonthlyTarget,
		FinancialPeriodID: period.ID,
		IsRequired:        input.IsRequired,
	}
	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	goal.FinancialPeriod = period
	return goal, nil
}

// UpdateSavingsGoal changes the given fields of a goal. A blank name keeps
// the current one.
func (s *periodService) UpdateSavingsGoal(id, name string, monthlyTarget *decimal.Decimal, isRequired *bool) (*models.SavingsGoal, error) {
	goal, err := s.findGoal(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if name = strings.TrimSpace(name); name != "" {
		updates["name"] = name
	}
	if monthlyTarget != nil {
		if !monthlyTarget.IsPositive() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Monthly target must be greater than zero")
		}
		updates["monthly_target"] = *monthlyTarget
	}
	if isRequired != nil {
		updates["is_required"] = *isRequired
	}
	if len(updates) > 0 {
		if err := s.db.Model(&models.SavingsGoal{}).Where("id = ?", goal.ID).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return s.findGoal(id)
}

// DeleteSavingsGoal permanently removes a goal.
func (s *periodService) DeleteSavingsGoal(id string) error {
	goal, err := s.findGoal(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(&models.SavingsGoal{}, "id = ?", goal.ID).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *periodService) findGoal(id string) (*models.SavingsGoal, error) {
	var goal models.SavingsGoal
	if err := s.db.Preload("FinancialPeriod").Where("id = ?", id).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSavingsGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}
