package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// incomeService handles income-related business logic.
type incomeService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db, now: time.Now}
}

func validateIncomeInput(input *IncomeInput) error {
	if !input.Amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Income amount must be greater than zero")
	}
	input.Source = strings.TrimSpace(input.Source)
	if input.Source == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Income source is required")
	}
	if input.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Income date is required")
	}
	input.Notes = strings.TrimSpace(input.Notes)
	return nil
}

// CreateIncome records a new income.
func (s *incomeService) CreateIncome(input IncomeInput) (*models.Income, error) {
	if err := validateIncomeInput(&input); err != nil {
		return nil, err
	}

	income := &models.Income{
		Date:   input.Date.UTC(),
		Amount: input.Amount,
		Source: input.Source,
		Notes:  input.Notes,
	}
	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return income, nil
}

// GetIncomeByID returns an income by ID.
func (s *incomeService) GetIncomeByID(id string) (*models.Income, error) {
	var income models.Income
	if err := s.db.Where("id = ?", id).First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &income, nil
}

// UpdateIncome replaces every writable field of an income.
func (s *incomeService) UpdateIncome(id string, input IncomeInput) (*models.Income, error) {
	income, err := s.GetIncomeByID(id)
	if err != nil {
		return nil, err
	}
	if err := validateIncomeInput(&input); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"date":   input.Date.UTC(),
		"amount": input.Amount,
		"source": input.Source,
		"notes":  input.Notes,
	}
	if err := s.db.Model(income).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetIncomeByID(id)
}

// DeleteIncome permanently removes an income.
func (s *incomeService) DeleteIncome(id string) error {
	income, err := s.GetIncomeByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(income).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ListIncomes returns a page of incomes, newest first, optionally limited to a month.
func (s *incomeService) ListIncomes(month, year *int, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error) {
	page.Defaults()

	y, m, explicit, err := resolveMonth(month, year, s.now())
	if err != nil {
		return nil, err
	}
	scope := func(db *gorm.DB) *gorm.DB {
		if explicit {
			start, end := monthBounds(y, m)
			db = db.Where("date >= ? AND date < ?", start, end)
		}
		return db
	}

	var totalItems int64
	if err := s.db.Model(&models.Income{}).Scopes(scope).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var incomes []models.Income
	if err := s.db.Scopes(scope, pagination.Paginate(page)).Order("date DESC").Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(incomes, page.Page, page.PageSize, totalItems)
	return &result, nil
}
