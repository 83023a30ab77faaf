package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fintrack/internal/backup"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
	"fintrack/internal/validator"
)

const (
	testID      = "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b"
	testOtherID = "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5c"
)

// --- mock services ---

type mockExpenseService struct {
	createExpenseFn           func(input services.ExpenseInput) (*models.Expense, error)
	getExpenseByIDFn          func(id string) (*models.Expense, error)
	updateExpenseFn           func(id string, input services.ExpenseInput) (*models.Expense, error)
	deleteExpenseFn           func(id string) error
	listExpensesFn            func(filter services.ExpenseFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	getDailyAnalyticsFn       func(start, end *time.Time) ([]services.DailyExpenses, error)
	getWeeklyAnalyticsFn      func(month, year *int) (*services.ExpenseAnalytics, error)
	getMonthlyAnalyticsFn     func(month, year *int) (*services.ExpenseAnalytics, error)
	getCategorySummaryFn      func(month, year *int) ([]services.CategorySummary, error)
	getPaymentMethodSummaryFn func(month, year *int) ([]services.PaymentMethodSummary, error)
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

func (m *mockExpenseService) CreateExpense(input services.ExpenseInput) (*models.Expense, error) {
	return m.createExpenseFn(input)
}

func (m *mockExpenseService) GetExpenseByID(id string) (*models.Expense, error) {
	return m.getExpenseByIDFn(id)
}

func (m *mockExpenseService) UpdateExpense(id string, input services.ExpenseInput) (*models.Expense, error) {
	return m.updateExpenseFn(id, input)
}

func (m *mockExpenseService) DeleteExpense(id string) error {
	return m.deleteExpenseFn(id)
}

func (m *mockExpenseService) ListExpenses(filter services.ExpenseFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	return m.listExpensesFn(filter, page)
}

func (m *mockExpenseService) GetDailyAnalytics(start, end *time.Time) ([]services.DailyExpenses, error) {
	return m.getDailyAnalyticsFn(start, end)
}

func (m *mockExpenseService) GetWeeklyAnalytics(month, year *int) (*services.ExpenseAnalytics, error) {
	return m.getWeeklyAnalyticsFn(month, year)
}

func (m *mockExpenseService) GetMonthlyAnalytics(month, year *int) (*services.ExpenseAnalytics, error) {
	return m.getMonthlyAnalyticsFn(month, year)
}

func (m *mockExpenseService) GetCategorySummary(month, year *int) ([]services.CategorySummary, error) {
	return m.getCategorySummaryFn(month, year)
}

func (m *mockExpenseService) GetPaymentMethodSummary(month, year *int) ([]services.PaymentMethodSummary, error) {
	return m.getPaymentMethodSummaryFn(month, year)
}

type mockIncomeService struct {
	createIncomeFn  func(input services.IncomeInput) (*models.Income, error)
	getIncomeByIDFn func(id string) (*models.Income, error)
	updateIncomeFn  func(id string, input services.IncomeInput) (*models.Income, error)
	deleteIncomeFn  func(id string) error
	listIncomesFn   func(month, year *int, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error)
}

var _ services.IncomeServicer = (*mockIncomeService)(nil)

func (m *mockIncomeService) CreateIncome(input services.IncomeInput) (*models.Income, error) {
	return m.createIncomeFn(input)
}

func (m *mockIncomeService) GetIncomeByID(id string) (*models.Income, error) {
	return m.getIncomeByIDFn(id)
}

func (m *mockIncomeService) UpdateIncome(id string, input services.IncomeInput) (*models.Income, error) {
	return m.updateIncomeFn(id, input)
}

func (m *mockIncomeService) DeleteIncome(id string) error {
	return m.deleteIncomeFn(id)
}

func (m *mockIncomeService) ListIncomes(month, year *int, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error) {
	return m.listIncomesFn(month, year, page)
}

type mockBudgetService struct {
	initializeFn            func() error
	getStatusFn             func() (*services.BudgetStatus, error)
	checkSpendingFn         func(categoryID string, amount decimal.Decimal) (*services.SpendingCheck, error)
	getFinancialHealthFn    func() (*services.FinancialHealth, error)
	getSavingsCelebrationFn func() (*services.SavingsCelebration, error)
	getActiveAlertsFn       func() ([]models.SpendingAlert, error)
	markAlertReadFn         func(id string) (*models.SpendingAlert, error)
	evaluateAlertsFn        func(categoryID string) error
	getBudgetLimitsFn       func() ([]services.BudgetLimitView, error)
	getSpendingCategoriesFn func() ([]services.CategoryView, error)
	createCustomCategoryFn  func(name string, monthlyLimit decimal.Decimal, isEssential bool) (*services.CategoryBudget, error)
	updateCategoryLimitFn   func(categoryID string, monthlyLimit decimal.Decimal, isEssential *bool, name *string) (*services.BudgetLimitView, error)
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

func (m *mockBudgetService) Initialize() error { return m.initializeFn() }

func (m *mockBudgetService) GetStatus() (*services.BudgetStatus, error) { return m.getStatusFn() }

func (m *mockBudgetService) CheckSpending(categoryID string, amount decimal.Decimal) (*services.SpendingCheck, error) {
	return m.checkSpendingFn(categoryID, amount)
}

func (m *mockBudgetService) GetFinancialHealth() (*services.FinancialHealth, error) {
	return m.getFinancialHealthFn()
}

func (m *mockBudgetService) GetSavingsCelebration() (*services.SavingsCelebration, error) {
	return m.getSavingsCelebrationFn()
}

func (m *mockBudgetService) GetActiveAlerts() ([]models.SpendingAlert, error) {
	return m.getActiveAlertsFn()
}

func (m *mockBudgetService) MarkAlertRead(id string) (*models.SpendingAlert, error) {
	return m.markAlertReadFn(id)
}

func (m *mockBudgetService) EvaluateAlerts(categoryID string) error {
	return m.evaluateAlertsFn(categoryID)
}

func (m *mockBudgetService) GetBudgetLimits() ([]services.BudgetLimitView, error) {
	return m.getBudgetLimitsFn()
}

func (m *mockBudgetService) GetSpendingCategories() ([]services.CategoryView, error) {
	return m.getSpendingCategoriesFn()
}

func (m *mockBudgetService) CreateCustomCategory(name string, monthlyLimit decimal.Decimal, isEssential bool) (*services.CategoryBudget, error) {
	return m.createCustomCategoryFn(name, monthlyLimit, isEssential)
}

func (m *mockBudgetService) UpdateCategoryLimit(categoryID string, monthlyLimit decimal.Decimal, isEssential *bool, name *string) (*services.BudgetLimitView, error) {
	return m.updateCategoryLimitFn(categoryID, monthlyLimit, isEssential, name)
}

type mockPeriodService struct {
	listPeriodsFn       func() ([]models.FinancialPeriod, error)
	getPeriodByIDFn     func(id string) (*models.FinancialPeriod, error)
	getCurrentPeriodFn  func() (*models.FinancialPeriod, error)
	createPeriodFn      func(input services.PeriodInput) (*models.FinancialPeriod, error)
	activatePeriodFn    func(id string) (*models.FinancialPeriod, error)
	listSavingsGoalsFn  func(periodID *string) ([]models.SavingsGoal, error)
	createSavingsGoalFn func(input services.SavingsGoalInput) (*models.SavingsGoal, error)
	updateSavingsGoalFn func(id, name string, monthlyTarget *decimal.Decimal, isRequired *bool) (*models.SavingsGoal, error)
	deleteSavingsGoalFn func(id string) error
}

var _ services.PeriodServicer = (*mockPeriodService)(nil)

func (m *mockPeriodService) ListPeriods() ([]models.FinancialPeriod, error) { return m.listPeriodsFn() }

func (m *mockPeriodService) GetPeriodByID(id string) (*models.FinancialPeriod, error) {
	return m.getPeriodByIDFn(id)
}

func (m *mockPeriodService) GetCurrentPeriod() (*models.FinancialPeriod, error) {
	return m.getCurrentPeriodFn()
}

func (m *mockPeriodService) CreatePeriod(input services.PeriodInput) (*models.FinancialPeriod, error) {
	return m.createPeriodFn(input)
}

func (m *mockPeriodService) ActivatePeriod(id string) (*models.FinancialPeriod, error) {
	return m.activatePeriodFn(id)
}

func (m *mockPeriodService) ListSavingsGoals(periodID *string) ([]models.SavingsGoal, error) {
	return m.listSavingsGoalsFn(periodID)
}

func (m *mockPeriodService) CreateSavingsGoal(input services.SavingsGoalInput) (*models.SavingsGoal, error) {
	return m.createSavingsGoalFn(input)
}

func (m *mockPeriodService) UpdateSavingsGoal(id, name string, monthlyTarget *decimal.Decimal, isRequired *bool) (*models.SavingsGoal, error) {
	return m.updateSavingsGoalFn(id, name, monthlyTarget, isRequired)
}

func (m *mockPeriodService) DeleteSavingsGoal(id string) error { return m.deleteSavingsGoalFn(id) }

type mockSavingsService struct {
	createSavingsFn     func(input services.SavingsInput) (*models.TotalSavings, error)
	getSavingsByIDFn    func(id string) (*models.TotalSavings, error)
	updateSavingsFn     func(id string, input services.SavingsInput) (*models.TotalSavings, error)
	deleteSavingsFn     func(id string) error
	listSavingsFn       func(page pagination.PageRequest) (*pagination.PageResponse[models.TotalSavings], error)
	getMonthlySavingsFn func(year, month int) (*services.MonthlySavings, error)
}

var _ services.SavingsServicer = (*mockSavingsService)(nil)

func (m *mockSavingsService) CreateSavings(input services.SavingsInput) (*models.TotalSavings, error) {
	return m.createSavingsFn(input)
}

func (m *mockSavingsService) GetSavingsByID(id string) (*models.TotalSavings, error) {
	return m.getSavingsByIDFn(id)
}

func (m *mockSavingsService) UpdateSavings(id string, input services.SavingsInput) (*models.TotalSavings, error) {
	return m.updateSavingsFn(id, input)
}

func (m *mockSavingsService) DeleteSavings(id string) error { return m.deleteSavingsFn(id) }

func (m *mockSavingsService) ListSavings(page pagination.PageRequest) (*pagination.PageResponse[models.TotalSavings], error) {
	return m.listSavingsFn(page)
}

func (m *mockSavingsService) GetMonthlySavings(year, month int) (*services.MonthlySavings, error) {
	return m.getMonthlySavingsFn(year, month)
}

type mockDashboardService struct {
	getMonthlyFn        func(month, year *int) (*services.MonthlyDashboard, error)
	getYearlyFn         func(year *int) (*services.YearlyDashboard, error)
	renderYearlyChartFn func(year *int) ([]byte, error)
}

var _ services.DashboardServicer = (*mockDashboardService)(nil)

func (m *mockDashboardService) GetMonthly(month, year *int) (*services.MonthlyDashboard, error) {
	return m.getMonthlyFn(month, year)
}

func (m *mockDashboardService) GetYearly(year *int) (*services.YearlyDashboard, error) {
	return m.getYearlyFn(year)
}

func (m *mockDashboardService) RenderYearlyChart(year *int) ([]byte, error) {
	return m.renderYearlyChartFn(year)
}

type mockBackupService struct {
	createBackupFn  func(name string) (*backup.Info, error)
	listBackupsFn   func() ([]backup.Info, error)
	restoreBackupFn func(fileName string) error
	exportFn        func() (*backup.Snapshot, error)
	importFn        func(data []byte) (*backup.ImportResult, error)
	cleanupFn       func(keep int) (int, error)
	backupPathFn    func(fileName string) (string, error)
}

var _ services.BackupServicer = (*mockBackupService)(nil)

func (m *mockBackupService) CreateBackup(name string) (*backup.Info, error) {
	return m.createBackupFn(name)
}

func (m *mockBackupService) ListBackups() ([]backup.Info, error) { return m.listBackupsFn() }

func (m *mockBackupService) RestoreBackup(fileName string) error { return m.restoreBackupFn(fileName) }

func (m *mockBackupService) Export() (*backup.Snapshot, error) { return m.exportFn() }

func (m *mockBackupService) Import(data []byte) (*backup.ImportResult, error) {
	return m.importFn(data)
}

func (m *mockBackupService) Cleanup(keep int) (int, error) { return m.cleanupFn(keep) }

func (m *mockBackupService) BackupPath(fileName string) (string, error) {
	return m.backupPathFn(fileName)
}

// mockAuditService records the actions it was asked to log.
type mockAuditService struct {
	actions []string
}

func (m *mockAuditService) Log(action, _, _, _ string, _ map[string]any) {
	m.actions = append(m.actions, action)
}

func (m *mockAuditService) logged(action string) bool {
	for _, a := range m.actions {
		if a == action {
			return true
		}
	}
	return false
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func intPtr(v int) *int { return &v }
