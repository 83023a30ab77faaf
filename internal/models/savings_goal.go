package models

import "github.com/shopspring/decimal"

// SavingsGoalType classifies a savings goal.
type SavingsGoalType string

const (
	SavingsGoalTypeEmergencyFund SavingsGoalType = "emergency_fund"
	SavingsGoalTypeInvestment    SavingsGoalType = "investment"
	SavingsGoalTypeHouseDeposit  SavingsGoalType = "house_deposit"
	SavingsGoalTypeGeneral       SavingsGoalType = "general"
)

// IsValid reports whether t is a known goal type.
func (t SavingsGoalType) IsValid() bool {
	switch t {
	case SavingsGoalTypeEmergencyFund, SavingsGoalTypeInvestment, SavingsGoalTypeHouseDeposit, SavingsGoalTypeGeneral:
		return true
	}
	return false
}

// SavingsGoal is a monthly savings target within a financial period.
type SavingsGoal struct {
	Base
	Type              SavingsGoalType  `gorm:"not null" json:"type"`
	Name              string           `gorm:"not null" json:"name"`
	MonthlyTarget     decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"monthly_target" swaggertype:"number"`
	FinancialPeriodID string           `gorm:"type:uuid;not null;index" json:"financial_period_id"`
	IsRequired        bool             `gorm:"not null" json:"is_required"`
	FinancialPeriod   *FinancialPeriod `gorm:"foreignKey:FinancialPeriodID" json:"financial_period,omitempty"`
}
