package models

import "github.com/shopspring/decimal"

// AlertType is the severity of a spending alert.
type AlertType string

const (
	AlertTypeNone        AlertType = ""
	AlertTypeInfo        AlertType = "info"
	AlertTypeWarning     AlertType = "warning"
	AlertTypeCritical    AlertType = "critical"
	AlertTypeExceeded    AlertType = "exceeded"
	AlertTypeAchievement AlertType = "achievement"
)

// IsValid reports whether t is a stored alert type. AlertTypeNone is never stored.
func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeInfo, AlertTypeWarning, AlertTypeCritical, AlertTypeExceeded, AlertTypeAchievement:
		return true
	}
	return false
}

// SpendingAlert records a category crossing a spending tier in a month.
// At most one alert exists per (category, type, month).
type SpendingAlert struct {
	Base
	CategoryID      string            `gorm:"type:uuid;not null;uniqueIndex:idx_alert_category_type_month" json:"category_id"`
	Type            AlertType         `gorm:"not null;uniqueIndex:idx_alert_category_type_month" json:"type"`
	Month           string            `gorm:"size:7;not null;uniqueIndex:idx_alert_category_type_month" json:"month"`
	Message         string            `gorm:"not null" json:"message"`
	CurrentSpending decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"current_spending" swaggertype:"number"`
	BudgetLimit     decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"budget_limit" swaggertype:"number"`
	PercentageUsed  decimal.Decimal   `gorm:"type:decimal(7,2);not null" json:"percentage_used" swaggertype:"number"`
	IsRead          bool              `gorm:"not null" json:"is_read"`
	IsActive        bool              `gorm:"not null" json:"is_active"`
	Category        *SpendingCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
