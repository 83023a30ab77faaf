package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every handler the API serves.
type Handlers struct {
	Auth      *AuthHandler
	Expense   *ExpenseHandler
	Income    *IncomeHandler
	Budget    *BudgetHandler
	Period    *PeriodHandler
	Savings   *SavingsHandler
	Dashboard *DashboardHandler
	Backup    *BackupHandler
}

// RegisterRoutes mounts the health check and the /api/v1 routes on router.
// adminAuth guards the backup group.
func RegisterRoutes(router *gin.Engine, h Handlers, adminAuth gin.HandlerFunc) {
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	v1.POST("/auth/token", h.Auth.IssueToken)

	expenses := v1.Group("/expenses")
	expenses.GET("", h.Expense.ListExpenses)
	expenses.POST("", h.Expense.CreateExpense)
	expenses.GET("/analytics/daily", h.Expense.GetDailyAnalytics)
	expenses.GET("/analytics/weekly", h.Expense.GetWeeklyAnalytics)
	expenses.GET("/analytics/monthly", h.Expense.GetMonthlyAnalytics)
	expenses.GET("/categories/summary", h.Expense.GetCategorySummary)
	expenses.GET("/payment-methods/summary", h.Expense.GetPaymentMethodSummary)
	expenses.GET("/:id", h.Expense.GetExpenseByID)
	expenses.PUT("/:id", h.Expense.UpdateExpense)
	expenses.DELETE("/:id", h.Expense.DeleteExpense)

	incomes := v1.Group("/incomes")
	incomes.GET("", h.Income.ListIncomes)
	incomes.POST("", h.Income.CreateIncome)
	incomes.GET("/:id", h.Income.GetIncomeByID)
	incomes.PUT("/:id", h.Income.UpdateIncome)
	incomes.DELETE("/:id", h.Income.DeleteIncome)

	budget := v1.Group("/budget")
	budget.POST("/initialize", h.Budget.Initialize)
	budget.GET("/status", h.Budget.GetStatus)
	budget.POST("/check-spending", h.Budget.CheckSpending)
	budget.GET("/alerts", h.Budget.GetActiveAlerts)
	budget.PUT("/alerts/:id/read", h.Budget.MarkAlertRead)
	budget.GET("/financial-health", h.Budget.GetFinancialHealth)
	budget.GET("/savings-celebration", h.Budget.GetSavingsCelebration)
	budget.GET("/limits", h.Budget.GetBudgetLimits)
	budget.GET("/categories", h.Budget.GetSpendingCategories)
	budget.POST("/categories", h.Budget.CreateCustomCategory)
	budget.PUT("/categories/:id/limit", h.Budget.UpdateCategoryLimit)

	periods := v1.Group("/periods")
	periods.GET("", h.Period.ListPeriods)
	periods.POST("", h.Period.CreatePeriod)
	periods.GET("/current", h.Period.GetCurrentPeriod)
	periods.GET("/:id", h.Period.GetPeriodByID)
	periods.POST("/:id/activate", h.Period.ActivatePeriod)

	goals := v1.Group("/savings-goals")
	goals.GET("", h.Period.ListSavingsGoals)
	goals.POST("", h.Period.CreateSavingsGoal)
	goals.PUT("/:id", h.Period.UpdateSavingsGoal)
	goals.DELETE("/:id", h.Period.DeleteSavingsGoal)

	savings := v1.Group("/savings")
	savings.GET("", h.Savings.ListSavings)
	savings.POST("", h.Savings.CreateSavings)
	savings.GET("/monthly/:year/:month", h.Savings.GetMonthlySavings)
	savings.GET("/:id", h.Savings.GetSavingsByID)
	savings.PUT("/:id", h.Savings.UpdateSavings)
	savings.DELETE("/:id", h.Savings.DeleteSavings)

	dashboard := v1.Group("/dashboard")
	dashboard.GET("", h.Dashboard.GetMonthly)
	dashboard.GET("/yearly", h.Dashboard.GetYearly)
	dashboard.GET("/yearly/chart", h.Dashboard.GetYearlyChart)

	backups := v1.Group("/backup")
	backups.Use(adminAuth)
	backups.POST("/create", h.Backup.CreateBackup)
	backups.GET("/list", h.Backup.ListBackups)
	backups.POST("/restore/:file", h.Backup.RestoreBackup)
	backups.GET("/export", h.Backup.Export)
	backups.POST("/import", h.Backup.Import)
	backups.POST("/cleanup", h.Backup.Cleanup)
	backups.GET("/download/:file", h.Backup.Download)
}
