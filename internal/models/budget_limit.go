package models

import "github.com/shopspring/decimal"

// BudgetLimit caps monthly spending for one category within one period.
type BudgetLimit struct {
	Base
	CategoryID        string            `gorm:"type:uuid;not null;uniqueIndex:idx_budget_limit_category_period" json:"category_id"`
	FinancialPeriodID string            `gorm:"type:uuid;not null;uniqueIndex:idx_budget_limit_category_period" json:"financial_period_id"`
	MonthlyLimit      decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"monthly_limit" swaggertype:"number"`
	IsEssential       bool              `gorm:"not null" json:"is_essential"`
	Category          *SpendingCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	FinancialPeriod   *FinancialPeriod  `gorm:"foreignKey:FinancialPeriodID" json:"financial_period,omitempty"`
}
