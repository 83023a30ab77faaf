package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// PeriodHandler handles financial periods and their savings goals.
type PeriodHandler struct {
	periodService services.PeriodServicer
	auditService  services.AuditServicer
}

// NewPeriodHandler creates a new PeriodHandler.
func NewPeriodHandler(periodService services.PeriodServicer, auditService services.AuditServicer) *PeriodHandler {
	return &PeriodHandler{periodService: periodService, auditService: auditService}
}

// CreatePeriodRequest represents the request payload for a new financial period.
type CreatePeriodRequest struct {
	Name        string            `json:"name" binding:"required,max=100"`
	Type        models.PeriodType `json:"type" binding:"omitempty,period_type"`
	StartDate   string            `json:"start_date" binding:"required"`
	EndDate     string            `json:"end_date" binding:"required"`
	Description string            `json:"description" binding:"max=500"`
	Activate    bool              `json:"activate"`
	CopyLimits  bool              `json:"copy_limits"`
}

// CreateSavingsGoalRequest represents the request payload for a new savings goal.
type CreateSavingsGoalRequest struct {
	FinancialPeriodID string                 `json:"financial_period_id" binding:"required,uuid"`
	Type              models.SavingsGoalType `json:"type" binding:"required,savings_goal_type"`
	Name              string                 `json:"name" binding:"required,max=100"`
	MonthlyTarget     decimal.Decimal        `json:"monthly_target" swaggertype:"number" binding:"positive_decimal"`
	IsRequired        bool                   `json:"is_required"`
}

// UpdateSavingsGoalRequest represents the request payload for changing a savings goal.
type UpdateSavingsGoalRequest struct {
	Name          string           `json:"name" binding:"max=100"`
	MonthlyTarget *decimal.Decimal `json:"monthly_target" swaggertype:"number"`
	IsRequired    *bool            `json:"is_required"`
}

// ListPeriods handles listing financial periods
// @Summary     List financial periods
// @Tags        periods
// @Produce     json
// @Success     200 {object} map[string][]models.FinancialPeriod "Periods"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /periods [get]
func (h *PeriodHandler) ListPeriods(c *gin.Context) {
	periods, err := h.periodService.ListPeriods()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"periods": periods})
}

// GetCurrentPeriod returns the period the budget is measured against
// @Summary     Current financial period
// @Tags        periods
// @Produce     json
// @Success     200 {object} models.FinancialPeriod "Current period"
// @Failure     404 {object} ErrorResponse "No financial period"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /periods/current [get]
func (h *PeriodHandler) GetCurrentPeriod(c *gin.Context) {
	period, err := h.periodService.GetCurrentPeriod()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"period": period})
}

// GetPeriodByID handles the retrieval of a specific period
// @Summary     Get financial period by ID
// @Tags        periods
// @Produce     json
// @Param       id path string true "Period ID"
// @Success     200 {object} models.FinancialPeriod "Period details"
// @Failure     400 {object} ErrorResponse "Invalid period ID"
// @Failure     404 {object} ErrorResponse "Period not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /periods/{id} [get]
func (h *PeriodHandler) GetPeriodByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	period, err := h.periodService.GetPeriodByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"period": period})
}

// CreatePeriod handles the creation of a financial period
// @Summary     Create financial period
// @Description Create a period. With activate the other periods are deactivated; with copy_limits the current period's limits are copied.
// @Tags        periods
// @Accept      json
// @Produce     json
// @Param       request body CreatePeriodRequest true "Period details"
// @Success     201 {object} models.FinancialPeriod "Period created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /periods [post]
func (h *PeriodHandler) CreatePeriod(c *gin.Context) {
	var req CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	start, err := requireDate("start_date", req.StartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	end, err := requireDate("end_date", req.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	period, err := h.periodService.CreatePeriod(services.PeriodInput{
		Name:        req.Name,
		Type:        req.Type,
		StartDate:   start,
		EndDate:     end,
		Description: req.Description,
		Activate:    req.Activate,
		CopyLimits:  req.CopyLimits,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"period": period})
}

// ActivatePeriod makes one period the active one
// @Summary     Activate financial period
// @Tags        periods
// @Produce     json
// @Param       id path string true "Period ID"
// @Success     200 {object} models.FinancialPeriod "Activated period"
// @Failure     400 {object} ErrorResponse "Invalid period ID"
// @Failure     404 {object} ErrorResponse "Period not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /periods/{id}/activate [post]
func (h *PeriodHandler) ActivatePeriod(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	period, err := h.periodService.ActivatePeriod(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("ACTIVATE_PERIOD", "financial_period", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"period": period})
}

// ListSavingsGoals handles listing savings goals
// @Summary     List savings goals
// @Tags        savings-goals
// @Produce     json
// @Param       period_id query string false "Only goals of this period"
// @Success     200 {object} map[string][]models.SavingsGoal "Goals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings-goals [get]
func (h *PeriodHandler) ListSavingsGoals(c *gin.Context) {
	var periodID *string
	if v := c.Query("period_id"); v != "" {
		periodID = &v
	}

	goals, err := h.periodService.ListSavingsGoals(periodID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"savings_goals": goals})
}

// CreateSavingsGoal handles the creation of a savings goal
// @Summary     Create savings goal
// @Tags        savings-goals
// @Accept      json
// @Produce     json
// @Param       request body CreateSavingsGoalRequest true "Goal details"
// @Success     201 {object} models.SavingsGoal "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Period not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings-goals [post]
func (h *PeriodHandler) CreateSavingsGoal(c *gin.Context) {
	var req CreateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.periodService.CreateSavingsGoal(services.SavingsGoalInput{
		FinancialPeriodID: req.FinancialPeriodID,
		Type:              req.Type,
		Name:              req.Name,
		MonthlyTarget:     req.MonthlyTarget,
		IsRequired:        req.IsRequired,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"savings_goal": goal})
}

// UpdateSavingsGoal handles changing a savings goal
// @Summary     Update savings goal
// @Tags        savings-goals
// @Accept      json
// @Produce     json
// @Param       id      path string                   true "Goal ID"
// @Param       request body UpdateSavingsGoalRequest true "Fields to update"
// @Success     200 {object} models.SavingsGoal "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings-goals/{id} [put]
func (h *PeriodHandler) UpdateSavingsGoal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.periodService.UpdateSavingsGoal(id, req.Name, req.MonthlyTarget, req.IsRequired)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"savings_goal": goal})
}

// DeleteSavingsGoal handles deleting a savings goal
// @Summary     Delete savings goal
// @Tags        savings-goals
// @Produce     json
// @Param       id path string true "Goal ID"
// @Success     200 {object} map[string]string "Goal deleted"
// @Failure     400 {object} ErrorResponse "Invalid goal ID"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings-goals/{id} [delete]
func (h *PeriodHandler) DeleteSavingsGoal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.periodService.DeleteSavingsGoal(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_SAVINGS_GOAL", "savings_goal", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Savings goal deleted successfully"})
}
