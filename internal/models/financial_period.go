package models

import "time"

// PeriodType classifies a financial period. It selects the motivational
// message tiers used on the budget status.
type PeriodType string

const (
	PeriodTypeDoubleHousing PeriodType = "double_housing"
	PeriodTypeNewHome       PeriodType = "new_home"
	PeriodTypeStandard      PeriodType = "standard"
)

// IsValid reports whether t is a known period type.
func (t PeriodType) IsValid() bool {
	switch t {
	case PeriodTypeDoubleHousing, PeriodTypeNewHome, PeriodTypeStandard:
		return true
	}
	return false
}

// FinancialPeriod is a date range with its own budget limits and savings goals.
type FinancialPeriod struct {
	Base
	Name        string     `gorm:"not null" json:"name"`
	Type        PeriodType `gorm:"not null" json:"type"`
	StartDate   time.Time  `gorm:"not null" json:"start_date"`
	EndDate     time.Time  `gorm:"not null" json:"end_date"`
	IsActive    bool       `gorm:"not null;index" json:"is_active"`
	Description string     `json:"description"`
}
