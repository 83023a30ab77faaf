package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// ExpenseRequest represents the request payload for creating or replacing an expense.
type ExpenseRequest struct {
	Date          string          `json:"date" binding:"required"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"number" binding:"positive_decimal"`
	CategoryID    string          `json:"category_id" binding:"required,uuid"`
	Description   string          `json:"description" binding:"required,max=500"`
	PaymentMethod string          `json:"payment_method" binding:"max=100"`
	Location      string          `json:"location" binding:"max=200"`
	Tags          string          `json:"tags" binding:"max=500"`
	IsRecurring   bool            `json:"is_recurring"`
}

func (r ExpenseRequest) input() (services.ExpenseInput, error) {
	date, err := requireDate("date", r.Date)
	if err != nil {
		return services.ExpenseInput{}, err
	}
	return services.ExpenseInput{
		Date:          date,
		Amount:        r.Amount,
		CategoryID:    r.CategoryID,
		Description:   r.Description,
		PaymentMethod: r.PaymentMethod,
		Location:      r.Location,
		Tags:          r.Tags,
		IsRecurring:   r.IsRecurring,
	}, nil
}

// CreateExpense handles the creation of a new expense
// @Summary     Create an expense
// @Description Record a new expense against a spending category. Budget alerts for the category are re-evaluated.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body ExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	input, err := req.input()
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetExpenseByID handles the retrieval of a specific expense
// @Summary     Get expense by ID
// @Tags        expenses
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} models.Expense "Expense details"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense handles replacing an existing expense
// @Summary     Update expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       id      path string         true "Expense ID"
// @Param       request body ExpenseRequest true "Expense details"
// @Success     200 {object} models.Expense "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Expense or category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	input, err := req.input()
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(id, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense handles deleting an expense
// @Summary     Delete expense
// @Tags        expenses
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} map[string]string "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_EXPENSE", "expense", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// ListExpenses handles listing expenses
// @Summary     List expenses
// @Description Get a paginated list of expenses, newest first. month and year must be given together.
// @Tags        expenses
// @Produce     json
// @Param       page           query int    false "Page number (default 1)"
// @Param       page_size      query int    false "Items per page (default 20, max 100)"
// @Param       month          query int    false "Month (1-12)"
// @Param       year           query int    false "Year"
// @Param       category_id    query string false "Filter by category ID"
// @Param       payment_method query string false "Filter by payment method"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	month, year, err := queryMonthYear(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	filter := services.ExpenseFilter{Month: month, Year: year}
	if v := c.Query("category_id"); v != "" {
		filter.CategoryID = &v
	}
	if v := c.Query("payment_method"); v != "" {
		filter.PaymentMethod = &v
	}

	result, err := h.expenseService.ListExpenses(filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDailyAnalytics handles the per-day expense breakdown
// @Summary     Daily expense analytics
// @Description Expenses grouped per calendar day. Defaults to the last 30 days.
// @Tags        expenses
// @Produce     json
// @Param       start_date query string false "First day (RFC3339 or YYYY-MM-DD)"
// @Param       end_date   query string false "Last day (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} map[string][]services.DailyExpenses "Daily buckets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/analytics/daily [get]
func (h *ExpenseHandler) GetDailyAnalytics(c *gin.Context) {
	start, err := queryDate(c, "start_date")
	if err != nil {
		respondWithError(c, err)
		return
	}
	end, err := queryDate(c, "end_date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	days, err := h.expenseService.GetDailyAnalytics(start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}

// GetWeeklyAnalytics handles the week-window expense summary
// @Summary     Weekly expense analytics
// @Tags        expenses
// @Produce     json
// @Param       month query int false "Month (1-12)"
// @Param       year  query int false "Year"
// @Success     200 {object} services.ExpenseAnalytics "Week summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/analytics/weekly [get]
func (h *ExpenseHandler) GetWeeklyAnalytics(c *gin.Context) {
	month, year, err := queryMonthYear(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	analytics, err := h.expenseService.GetWeeklyAnalytics(month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"analytics": analytics})
}

// GetMonthlyAnalytics handles the month-window expense summary
// @Summary     Monthly expense analytics
// @Tags        expenses
// @Produce     json
// @Param       month query int false "Month (1-12)"
// @Param       year  query int false "Year"
// @Success     200 {object} services.ExpenseAnalytics "Month summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/analytics/monthly [get]
func (h *ExpenseHandler) GetMonthlyAnalytics(c *gin.Context) {
	month, year, err := queryMonthYear(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	analytics, err := h.expenseService.GetMonthlyAnalytics(month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"analytics": analytics})
}

// GetCategorySummary handles the per-category share of a month
// @Summary     Category summary
// @Tags        expenses
// @Produce     json
// @Param       month query int false "Month (1-12)"
// @Param       year  query int false "Year"
// @Success     200 {object} map[string][]services.CategorySummary "Category shares"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/categories/summary [get]
func (h *ExpenseHandler) GetCategorySummary(c *gin.Context) {
	month, year, err := queryMonthYear(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.expenseService.GetCategorySummary(month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": summary})
}

// GetPaymentMethodSummary handles the per-payment-method share of a month
// @Summary     Payment method summary
// @Tags        expenses
// @Produce     json
// @Param       month query int false "Month (1-12)"
// @Param       year  query int false "Year"
// @Success     200 {object} map[string][]services.PaymentMethodSummary "Payment method shares"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/payment-methods/summary [get]
func (h *ExpenseHandler) GetPaymentMethodSummary(c *gin.Context) {
	month, year, err := queryMonthYear(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.expenseService.GetPaymentMethodSummary(month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_methods": summary})
}
