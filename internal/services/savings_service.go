package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

const defaultSavingsCategory = "General"

// savingsService manages the manual total savings ledger.
type savingsService struct {
	db *gorm.DB
}

// NewSavingsService creates a new SavingsServicer.
func NewSavingsService(db *gorm.DB) SavingsServicer {
	return &savingsService{db: db}
}

func validateSavingsInput(input *SavingsInput) error {
	if !input.Amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Savings amount must be greater than zero")
	}
	if input.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Savings date is required")
	}
	input.Description = strings.TrimSpace(input.Description)
	input.Category = strings.TrimSpace(input.Category)
	if input.Category == "" {
		input.Category = defaultSavingsCategory
	}
	return nil
}

// CreateSavings records a savings entry.
func (s *savingsService) CreateSavings(input SavingsInput) (*models.TotalSavings, error) {
	if err := validateSavingsInput(&input); err != nil {
		return nil, err
	}
	entry := &models.TotalSavings{
		Date:        input.Date.UTC(),
		Amount:      input.Amount,
		Description: input.Description,
		Category:    input.Category,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entry, nil
}

// GetSavingsByID returns a savings entry by ID.
func (s *savingsService) GetSavingsByID(id string) (*models.TotalSavings, error) {
	var entry models.TotalSavings
	if err := s.db.Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSavingsNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entry, nil
}

// UpdateSavings replaces every writable field of a savings entry.
func (s *savingsService) UpdateSavings(id string, input SavingsInput) (*models.TotalSavings, error) {
	entry, err := s.GetSavingsByID(id)
	if err != nil {
		return nil, err
	}
	if err := validateSavingsInput(&input); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"date":        input.Date.UTC(),
		"amount":      input.Amount,
		"description": input.Description,
		"category":    input.Category,
	}
	if err := s.db.Model(&models.TotalSavings{}).Where("id = ?", entry.ID).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetSavingsByID(id)
}

// DeleteSavings permanently removes a savings entry.
func (s *savingsService) DeleteSavings(id string) error {
	entry, err := s.GetSavingsByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(&models.TotalSavings{}, "id = ?", entry.ID).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ListSavings returns a page of savings entries, newest first.
func (s *savingsService) ListSavings(page pagination.PageRequest) (*pagination.PageResponse[models.TotalSavings], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.TotalSavings{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.TotalSavings
	if err := s.db.Scopes(pagination.Paginate(page)).Order("date DESC").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(entries, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetMonthlySavings totals the entries dated in the given month.
func (s *savingsService) GetMonthlySavings(year, month int) (*MonthlySavings, error) {
	y, m, _, err := resolveMonth(&month, &year, time.Now())
	if err != nil {
		return nil, err
	}
	start, end := monthBounds(y, m)

	var entries []models.TotalSavings
	if err := s.db.Where("date >= ? AND date < ?", start, end).Order("date DESC").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := &MonthlySavings{
		Year:        y,
		Month:       int(m),
		TotalAmount: decimal.Zero,
		Count:       len(entries),
		Savings:     entries,
	}
	if result.Savings == nil {
		result.Savings = []models.TotalSavings{}
	}
	for _, e := range entries {
		result.TotalAmount = result.TotalAmount.Add(e.Amount)
	}
	return result, nil
}
