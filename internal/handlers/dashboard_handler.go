package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/services"
)

// DashboardHandler handles the monthly and yearly dashboards.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetMonthly returns one month's income and spending
// @Summary     Monthly dashboard
// @Tags        dashboard
// @Produce     json
// @Param       month query int false "Month (1-12), defaults to the current month"
// @Param       year  query int false "Year, defaults to the current year"
// @Success     200 {object} services.MonthlyDashboard "Month dashboard"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetMonthly(c *gin.Context) {
	month, year, err := queryMonthYear(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dashboard, err := h.dashboardService.GetMonthly(month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dashboard": dashboard})
}

// GetYearly returns a year's totals and monthly series
// @Summary     Yearly dashboard
// @Tags        dashboard
// @Produce     json
// @Param       year query int false "Year, defaults to the current year"
// @Success     200 {object} services.YearlyDashboard "Year dashboard"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/yearly [get]
func (h *DashboardHandler) GetYearly(c *gin.Context) {
	year, err := queryInt(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}

	dashboard, err := h.dashboardService.GetYearly(year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dashboard": dashboard})
}

// GetYearlyChart renders the monthly expense series as a PNG
// @Summary     Yearly expense chart
// @Tags        dashboard
// @Produce     png
// @Param       year query int false "Year, defaults to the current year"
// @Success     200 {file} binary "PNG bar chart"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/yearly/chart [get]
func (h *DashboardHandler) GetYearlyChart(c *gin.Context) {
	year, err := queryInt(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}

	png, err := h.dashboardService.RenderYearlyChart(year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
