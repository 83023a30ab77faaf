package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is money received on a given date.
type Income struct {
	Base
	Date   time.Time       `gorm:"not null;index" json:"date"`
	Amount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount" swaggertype:"number"`
	Source string          `gorm:"not null" json:"source"`
	Notes  string          `json:"notes"`
}
