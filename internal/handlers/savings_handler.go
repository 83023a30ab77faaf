package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// SavingsHandler handles the total savings ledger.
type SavingsHandler struct {
	savingsService services.SavingsServicer
	auditService   services.AuditServicer
}

// NewSavingsHandler creates a new SavingsHandler.
func NewSavingsHandler(savingsService services.SavingsServicer, auditService services.AuditServicer) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService, auditService: auditService}
}

// SavingsRequest represents the request payload for a savings ledger entry.
type SavingsRequest struct {
	Date        string          `json:"date" binding:"required"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" binding:"positive_decimal"`
	Description string          `json:"description" binding:"max=500"`
	Category    string          `json:"category" binding:"max=100"`
}

func (r SavingsRequest) input() (services.SavingsInput, error) {
	date, err := requireDate("date", r.Date)
	if err != nil {
		return services.SavingsInput{}, err
	}
	return services.SavingsInput{Date: date, Amount: r.Amount, Description: r.Description, Category: r.Category}, nil
}

// CreateSavings handles adding a ledger entry
// @Summary     Create savings entry
// @Tags        savings
// @Accept      json
// @Produce     json
// @Param       request body SavingsRequest true "Entry details"
// @Success     201 {object} models.TotalSavings "Entry created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings [post]
func (h *SavingsHandler) CreateSavings(c *gin.Context) {
	var req SavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	input, err := req.input()
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := h.savingsService.CreateSavings(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"savings": entry})
}

// GetSavingsByID handles the retrieval of a ledger entry
// @Summary     Get savings entry by ID
// @Tags        savings
// @Produce     json
// @Param       id path string true "Entry ID"
// @Success     200 {object} models.TotalSavings "Entry details"
// @Failure     400 {object} ErrorResponse "Invalid entry ID"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings/{id} [get]
func (h *SavingsHandler) GetSavingsByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := h.savingsService.GetSavingsByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"savings": entry})
}

// UpdateSavings handles replacing a ledger entry
// @Summary     Update savings entry
// @Tags        savings
// @Accept      json
// @Produce     json
// @Param       id      path string         true "Entry ID"
// @Param       request body SavingsRequest true "Entry details"
// @Success     200 {object} models.TotalSavings "Updated entry"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings/{id} [put]
func (h *SavingsHandler) UpdateSavings(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	input, err := req.input()
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := h.savingsService.UpdateSavings(id, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"savings": entry})
}

// DeleteSavings handles deleting a ledger entry
// @Summary     Delete savings entry
// @Tags        savings
// @Produce     json
// @Param       id path string true "Entry ID"
// @Success     200 {object} map[string]string "Entry deleted"
// @Failure     400 {object} ErrorResponse "Invalid entry ID"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings/{id} [delete]
func (h *SavingsHandler) DeleteSavings(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.savingsService.DeleteSavings(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_SAVINGS", "total_savings", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Savings entry deleted successfully"})
}

// ListSavings handles listing ledger entries
// @Summary     List savings entries
// @Tags        savings
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.TotalSavings] "Paginated entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings [get]
func (h *SavingsHandler) ListSavings(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.savingsService.ListSavings(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMonthlySavings totals one month of the ledger
// @Summary     Monthly savings
// @Tags        savings
// @Produce     json
// @Param       year  path int true "Year"
// @Param       month path int true "Month (1-12)"
// @Success     200 {object} services.MonthlySavings "Month total"
// @Failure     400 {object} ErrorResponse "Invalid year or month"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings/monthly/{year}/{month} [get]
func (h *SavingsHandler) GetMonthlySavings(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid year"))
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid month"))
		return
	}

	monthly, err := h.savingsService.GetMonthlySavings(year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"monthly": monthly})
}
