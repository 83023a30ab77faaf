package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TotalSavings is a manual savings ledger entry.
type TotalSavings struct {
	Base
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount" swaggertype:"number"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
}

// TableName keeps the ledger table name stable across pluralization rules.
func (TotalSavings) TableName() string { return "total_savings" }
