package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spend against a category.
type Expense struct {
	Base
	Date          time.Time         `gorm:"not null;index" json:"date"`
	Amount        decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"amount" swaggertype:"number"`
	CategoryID    string            `gorm:"type:uuid;not null;index" json:"category_id"`
	Description   string            `gorm:"not null" json:"description"`
	PaymentMethod string            `json:"payment_method"`
	Location      string            `json:"location"`
	Tags          string            `json:"tags"`
	IsRecurring   bool              `gorm:"not null" json:"is_recurring"`
	Category      *SpendingCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
