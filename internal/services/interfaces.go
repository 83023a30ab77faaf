package services

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/backup"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// ExpenseInput carries the writable fields of an expense.
type ExpenseInput struct {
	Date          time.Time
	Amount        decimal.Decimal
	CategoryID    string
	Description   string
	PaymentMethod string
	Location      string
	Tags          string
	IsRecurring   bool
}

// ExpenseFilter holds optional filter parameters for listing expenses.
// Month and Year must be given together.
type ExpenseFilter struct {
	Month         *int
	Year          *int
	CategoryID    *string
	PaymentMethod *string
}

// DailyExpenses groups the expenses of one calendar day.
type DailyExpenses struct {
	Date             time.Time        `json:"date"`
	TotalAmount      decimal.Decimal  `json:"total_amount"`
	TransactionCount int              `json:"transaction_count"`
	Expenses         []models.Expense `json:"expenses"`
}

// CategoryBreakdown is the spending of one category inside a window.
type CategoryBreakdown struct {
	CategoryID       string          `json:"category_id"`
	CategoryName     string          `json:"category_name"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TransactionCount int             `json:"transaction_count"`
}

// ExpenseAnalytics summarizes expenses between StartDate and EndDate (inclusive).
type ExpenseAnalytics struct {
	StartDate         time.Time           `json:"start_date"`
	EndDate           time.Time           `json:"end_date"`
	TotalAmount       decimal.Decimal     `json:"total_amount"`
	TransactionCount  int                 `json:"transaction_count"`
	AverageAmount     decimal.Decimal     `json:"average_amount"`
	CategoryBreakdown []CategoryBreakdown `json:"category_breakdown"`
}

// CategorySummary is a category's share of a month's spending.
type CategorySummary struct {
	CategoryID       string          `json:"category_id"`
	CategoryName     string          `json:"category_name"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TransactionCount int             `json:"transaction_count"`
	Percentage       decimal.Decimal `json:"percentage"`
}

// PaymentMethodSummary is a payment method's share of a month's spending.
type PaymentMethodSummary struct {
	PaymentMethod    string          `json:"payment_method"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TransactionCount int             `json:"transaction_count"`
	Percentage       decimal.Decimal `json:"percentage"`
}

// AlertEvaluator is notified after expense writes so budget alerts stay current.
type AlertEvaluator interface {
	EvaluateAlerts(categoryID string) error
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(input ExpenseInput) (*models.Expense, error)
	GetExpenseByID(id string) (*models.Expense, error)
	UpdateExpense(id string, input ExpenseInput) (*models.Expense, error)
	DeleteExpense(id string) error
	ListExpenses(filter ExpenseFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	GetDailyAnalytics(start, end *time.Time) ([]DailyExpenses, error)
	GetWeeklyAnalytics(month, year *int) (*ExpenseAnalytics, error)
	GetMonthlyAnalytics(month, year *int) (*ExpenseAnalytics, error)
	GetCategorySummary(month, year *int) ([]CategorySummary, error)
	GetPaymentMethodSummary(month, year *int) ([]PaymentMethodSummary, error)
}

// IncomeInput carries the writable fields of an income.
type IncomeInput struct {
	Date   time.Time
	Amount decimal.Decimal
	Source string
	Notes  string
}

// IncomeServicer defines the contract for income-related business logic.
type IncomeServicer interface {
	CreateIncome(input IncomeInput) (*models.Income, error)
	GetIncomeByID(id string) (*models.Income, error)
	UpdateIncome(id string, input IncomeInput) (*models.Income, error)
	DeleteIncome(id string) error
	ListIncomes(month, year *int, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error)
}

// CategoryBudget is one category's position against its monthly limit.
type CategoryBudget struct {
	CategoryID          string          `json:"category_id"`
	CategoryName        string          `json:"category_name"`
	Icon                string          `json:"icon"`
	IsCustom            bool            `json:"is_custom"`
	Limit               decimal.Decimal `json:"limit"`
	Spent               decimal.Decimal `json:"spent"`
	Remaining           decimal.Decimal `json:"remaining"`
	PercentageUsed      decimal.Decimal `json:"percentage_used"`
	IsEssential         bool            `json:"is_essential"`
	Status              string          `json:"status"`
	StatusColor         string          `json:"status_color"`
	DailyRecommendation decimal.Decimal `json:"daily_recommendation"`
}

// SavingsProgress is the share of this month's savings credited to one goal.
type SavingsProgress struct {
	GoalID              string                 `json:"goal_id"`
	Type                models.SavingsGoalType `json:"type"`
	Name                string                 `json:"name"`
	Target              decimal.Decimal        `json:"target"`
	Actual              decimal.Decimal        `json:"actual"`
	Progress            decimal.Decimal        `json:"progress"`
	IsAchieved          bool                   `json:"is_achieved"`
	MotivationalMessage string                 `json:"motivational_message"`
}

// BudgetStatus is the current month measured against the current period.
type BudgetStatus struct {
	CurrentPeriod       string            `json:"current_period"`
	PeriodType          models.PeriodType `json:"period_type"`
	PeriodDescription   string            `json:"period_description"`
	MonthlyIncome       decimal.Decimal   `json:"monthly_income"`
	TotalBudgeted       decimal.Decimal   `json:"total_budgeted"`
	TotalSpent          decimal.Decimal   `json:"total_spent"`
	RemainingBudget     decimal.Decimal   `json:"remaining_budget"`
	SavingsTarget       decimal.Decimal   `json:"savings_target"`
	ActualSavings       decimal.Decimal   `json:"actual_savings"`
	SavingsRate         decimal.Decimal   `json:"savings_rate"`
	DaysLeftInMonth     int               `json:"days_left_in_month"`
	CategoryBudgets     []CategoryBudget  `json:"category_budgets"`
	SavingsProgress     []SavingsProgress `json:"savings_progress"`
	MotivationalMessage string            `json:"motivational_message"`
}

// SpendingCheck previews the effect of a prospective expense.
type SpendingCheck struct {
	IsAllowed         bool             `json:"is_allowed"`
	Message           string           `json:"message"`
	AlertLevel        models.AlertType `json:"alert_level,omitempty"`
	RemainingBudget   decimal.Decimal  `json:"remaining_budget"`
	NewPercentageUsed decimal.Decimal  `json:"new_percentage_used"`
	Encouragement     string           `json:"encouragement"`
}

// FinancialHealth grades the current month's savings rate.
type FinancialHealth struct {
	Grade           string          `json:"grade"`
	SavingsRate     decimal.Decimal `json:"savings_rate"`
	Score           decimal.Decimal `json:"score"`
	Message         string          `json:"message"`
	Achievements    []string        `json:"achievements"`
	Recommendations []string        `json:"recommendations"`
	IsOnTrack       bool            `json:"is_on_track"`
}

// SavingsCelebration is the celebratory summary of the current savings rate.
type SavingsCelebration struct {
	Message       string          `json:"message"`
	SavingsRate   decimal.Decimal `json:"savings_rate"`
	SavingsAmount decimal.Decimal `json:"savings_amount"`
	Achievements  []string        `json:"achievements"`
	Encouragement string          `json:"encouragement"`
}

// BudgetLimitView is a limit in the current period with its category details.
type BudgetLimitView struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Icon         string          `json:"icon"`
	IsCustom     bool            `json:"is_custom"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
	IsEssential  bool            `json:"is_essential"`
}

// CategoryView is a spending category as listed to clients.
type CategoryView struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Icon               string `json:"icon"`
	IsCustom           bool   `json:"is_custom"`
	IsEssentialDefault bool   `json:"is_essential_default"`
}

// BudgetServicer defines the contract for budget metrics, limits and alerts.
type BudgetServicer interface {
	Initialize() error
	GetStatus() (*BudgetStatus, error)
	CheckSpending(categoryID string, amount decimal.Decimal) (*SpendingCheck, error)
	GetFinancialHealth() (*FinancialHealth, error)
	GetSavingsCelebration() (*SavingsCelebration, error)
	GetActiveAlerts() ([]models.SpendingAlert, error)
	MarkAlertRead(id string) (*models.SpendingAlert, error)
	EvaluateAlerts(categoryID string) error
	GetBudgetLimits() ([]BudgetLimitView, error)
	GetSpendingCategories() ([]CategoryView, error)
	CreateCustomCategory(name string, monthlyLimit decimal.Decimal, isEssential bool) (*CategoryBudget, error)
	UpdateCategoryLimit(categoryID string, monthlyLimit decimal.Decimal, isEssential *bool, name *string) (*BudgetLimitView, error)
}

// PeriodInput carries the fields of a new financial period.
type PeriodInput struct {
	Name        string
	Type        models.PeriodType
	StartDate   time.Time
	EndDate     time.Time
	Description string
	Activate    bool
	CopyLimits  bool
}

// SavingsGoalInput carries the fields of a new savings goal.
type SavingsGoalInput struct {
	FinancialPeriodID string
	Type              models.SavingsGoalType
	Name              string
	MonthlyTarget     decimal.Decimal
	IsRequired        bool
}

// PeriodServicer defines the contract for financial periods and savings goals.
type PeriodServicer interface {
	ListPeriods() ([]models.FinancialPeriod, error)
	GetPeriodByID(id string) (*models.FinancialPeriod, error)
	GetCurrentPeriod() (*models.FinancialPeriod, error)
	CreatePeriod(input PeriodInput) (*models.FinancialPeriod, error)
	ActivatePeriod(id string) (*models.FinancialPeriod, error)
	ListSavingsGoals(periodID *string) ([]models.SavingsGoal, error)
	CreateSavingsGoal(input SavingsGoalInput) (*models.SavingsGoal, error)
	UpdateSavingsGoal(id, name string, monthlyTarget *decimal.Decimal, isRequired *bool) (*models.SavingsGoal, error)
	DeleteSavingsGoal(id string) error
}

// SavingsInput carries the writable fields of a savings ledger entry.
type SavingsInput struct {
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	Category    string
}

// MonthlySavings totals the ledger entries of one month.
type MonthlySavings struct {
	Year        int                   `json:"year"`
	Month       int                   `json:"month"`
	TotalAmount decimal.Decimal       `json:"total_amount"`
	Count       int                   `json:"count"`
	Savings     []models.TotalSavings `json:"savings"`
}

// SavingsServicer defines the contract for the total savings ledger.
type SavingsServicer interface {
	CreateSavings(input SavingsInput) (*models.TotalSavings, error)
	GetSavingsByID(id string) (*models.TotalSavings, error)
	UpdateSavings(id string, input SavingsInput) (*models.TotalSavings, error)
	DeleteSavings(id string) error
	ListSavings(page pagination.PageRequest) (*pagination.PageResponse[models.TotalSavings], error)
	GetMonthlySavings(year, month int) (*MonthlySavings, error)
}

// CategoryAmount is a category name with the amount spent in it.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// MonthlyDashboard is the income and spending picture of one month.
type MonthlyDashboard struct {
	Month              int              `json:"month"`
	Year               int              `json:"year"`
	TotalIncome        decimal.Decimal  `json:"total_income"`
	TotalExpenses      decimal.Decimal  `json:"total_expenses"`
	NetSavings         decimal.Decimal  `json:"net_savings"`
	SavingsRate        decimal.Decimal  `json:"savings_rate"`
	ExpensesByCategory []CategoryAmount `json:"expenses_by_category"`
}

// MonthAmount is one month's total in a yearly series.
type MonthAmount struct {
	Month    int             `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// YearlyDashboard totals a calendar year with its twelve-month series.
type YearlyDashboard struct {
	Year          int             `json:"year"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetSavings    decimal.Decimal `json:"net_savings"`
	SavingsRate   decimal.Decimal `json:"savings_rate"`
	Monthly       []MonthAmount   `json:"monthly"`
}

// DashboardServicer defines the contract for dashboard aggregates.
type DashboardServicer interface {
	GetMonthly(month, year *int) (*MonthlyDashboard, error)
	GetYearly(year *int) (*YearlyDashboard, error)
	RenderYearlyChart(year *int) ([]byte, error)
}

// BackupServicer defines the contract for backups, restores and JSON transfer.
type BackupServicer interface {
	CreateBackup(name string) (*backup.Info, error)
	ListBackups() ([]backup.Info, error)
	RestoreBackup(fileName string) error
	Export() (*backup.Snapshot, error)
	Import(data []byte) (*backup.ImportResult, error)
	Cleanup(keep int) (int, error)
	BackupPath(fileName string) (string, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
