package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// BudgetHandler handles budget status, limits, categories and alerts.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// CheckSpendingRequest represents a prospective expense to preview.
type CheckSpendingRequest struct {
	CategoryID string          `json:"category_id" binding:"required,uuid"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"number" binding:"positive_decimal"`
}

// CreateCategoryRequest represents the request payload for a custom category.
type CreateCategoryRequest struct {
	Name         string          `json:"name" binding:"required,max=100"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit" swaggertype:"number" binding:"nonneg_decimal"`
	IsEssential  bool            `json:"is_essential"`
}

// UpdateLimitRequest represents the request payload for changing a category's limit.
type UpdateLimitRequest struct {
	MonthlyLimit *decimal.Decimal `json:"monthly_limit" swaggertype:"number" binding:"required,nonneg_decimal"`
	IsEssential  *bool            `json:"is_essential"`
	Name         *string          `json:"name" binding:"omitempty,max=100"`
}

// Initialize seeds default periods, categories and limits
// @Summary     Initialize budget data
// @Description Seed the default financial periods, spending categories and limits. Safe to call repeatedly.
// @Tags        budget
// @Produce     json
// @Success     200 {object} map[string]string "Budget initialized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/initialize [post]
func (h *BudgetHandler) Initialize(c *gin.Context) {
	if err := h.budgetService.Initialize(); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget data initialized successfully"})
}

// GetStatus returns the current month against the current period
// @Summary     Budget status
// @Tags        budget
// @Produce     json
// @Success     200 {object} services.BudgetStatus "Budget status"
// @Failure     404 {object} ErrorResponse "No financial period"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/status [get]
func (h *BudgetHandler) GetStatus(c *gin.Context) {
	status, err := h.budgetService.GetStatus()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

// CheckSpending previews the budget effect of an expense
// @Summary     Check spending
// @Description Preview how a prospective expense would affect its category's budget. Nothing is recorded.
// @Tags        budget
// @Accept      json
// @Produce     json
// @Param       request body CheckSpendingRequest true "Prospective expense"
// @Success     200 {object} services.SpendingCheck "Spending preview"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/check-spending [post]
func (h *BudgetHandler) CheckSpending(c *gin.Context) {
	var req CheckSpendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	check, err := h.budgetService.CheckSpending(req.CategoryID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"check": check})
}

// GetActiveAlerts lists unread spending alerts
// @Summary     Active alerts
// @Tags        budget
// @Produce     json
// @Success     200 {object} map[string][]models.SpendingAlert "Unread alerts"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/alerts [get]
func (h *BudgetHandler) GetActiveAlerts(c *gin.Context) {
	alerts, err := h.budgetService.GetActiveAlerts()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// MarkAlertRead marks an alert as read
// @Summary     Mark alert read
// @Tags        budget
// @Produce     json
// @Param       id path string true "Alert ID"
// @Success     200 {object} models.SpendingAlert "Updated alert"
// @Failure     400 {object} ErrorResponse "Invalid alert ID"
// @Failure     404 {object} ErrorResponse "Alert not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/alerts/{id}/read [put]
func (h *BudgetHandler) MarkAlertRead(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	alert, err := h.budgetService.MarkAlertRead(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"alert": alert})
}

// GetFinancialHealth grades the current savings rate
// @Summary     Financial health
// @Tags        budget
// @Produce     json
// @Success     200 {object} services.FinancialHealth "Financial health"
// @Failure     404 {object} ErrorResponse "No financial period"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/financial-health [get]
func (h *BudgetHandler) GetFinancialHealth(c *gin.Context) {
	health, err := h.budgetService.GetFinancialHealth()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"health": health})
}

// GetSavingsCelebration returns the celebratory savings summary
// @Summary     Savings celebration
// @Tags        budget
// @Produce     json
// @Success     200 {object} services.SavingsCelebration "Celebration"
// @Failure     404 {object} ErrorResponse "No financial period"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/savings-celebration [get]
func (h *BudgetHandler) GetSavingsCelebration(c *gin.Context) {
	celebration, err := h.budgetService.GetSavingsCelebration()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"celebration": celebration})
}

// GetBudgetLimits lists the limits of the current period
// @Summary     Budget limits
// @Tags        budget
// @Produce     json
// @Success     200 {object} map[string][]services.BudgetLimitView "Limits"
// @Failure     404 {object} ErrorResponse "No financial period"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/limits [get]
func (h *BudgetHandler) GetBudgetLimits(c *gin.Context) {
	limits, err := h.budgetService.GetBudgetLimits()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"limits": limits})
}

// GetSpendingCategories lists every spending category
// @Summary     Spending categories
// @Tags        budget
// @Produce     json
// @Success     200 {object} map[string][]services.CategoryView "Categories"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/categories [get]
func (h *BudgetHandler) GetSpendingCategories(c *gin.Context) {
	categories, err := h.budgetService.GetSpendingCategories()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCustomCategory adds a category with a limit in the current period
// @Summary     Create custom category
// @Tags        budget
// @Accept      json
// @Produce     json
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} services.CategoryBudget "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "No financial period"
// @Failure     409 {object} ErrorResponse "Duplicate category"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/categories [post]
func (h *BudgetHandler) CreateCustomCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.budgetService.CreateCustomCategory(req.Name, req.MonthlyLimit, req.IsEssential)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_CATEGORY", "spending_category", category.CategoryID, c.ClientIP(),
		map[string]any{"name": category.CategoryName, "monthly_limit": req.MonthlyLimit.String()})

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// UpdateCategoryLimit changes a category's limit in the current period
// @Summary     Update category limit
// @Description Change the monthly limit and optionally the essential flag. Custom categories can also be renamed.
// @Tags        budget
// @Accept      json
// @Produce     json
// @Param       id      path string             true "Category ID"
// @Param       request body UpdateLimitRequest true "New limit"
// @Success     200 {object} services.BudgetLimitView "Updated limit"
// @Failure     400 {object} ErrorResponse "Invalid input or built-in category rename"
// @Failure     404 {object} ErrorResponse "Budget limit not found"
// @Failure     409 {object} ErrorResponse "Duplicate category name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/categories/{id}/limit [put]
func (h *BudgetHandler) UpdateCategoryLimit(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	limit, err := h.budgetService.UpdateCategoryLimit(id, *req.MonthlyLimit, req.IsEssential, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_BUDGET_LIMIT", "budget_limit", id, c.ClientIP(),
		map[string]any{"monthly_limit": req.MonthlyLimit.String()})

	c.JSON(http.StatusOK, gin.H{"limit": limit})
}
