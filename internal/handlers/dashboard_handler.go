package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/indianbuddy/personal-finance-manager/internal/services"
)

// DashboardHandler serves the derived views.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// MonthlyChartQuery selects the history length.
type MonthlyChartQuery struct {
	Months int `form:"months" binding:"omitempty,min=1,max=24"`
}

// GetDashboard handles the headline stats
// @Summary     Dashboard
// @Description Income, expenses and balance for today, this month and this year, plus the savings rate
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} services.Dashboard
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.Dashboard())
}

// GetInsights handles the insights panel
// @Summary     Insights
// @Description Average daily spending, top category, days remaining and monthly transaction count
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} services.Insights
// @Router      /insights [get]
func (h *DashboardHandler) GetInsights(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.Insights())
}

// GetExpenseChart handles the category breakdown chart
// @Summary     Expense breakdown chart
// @Tags        charts
// @Produce     json
// @Success     200 {object} insights.Chart
// @Router      /charts/expenses [get]
func (h *DashboardHandler) GetExpenseChart(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.ExpenseChart())
}

// GetIncomeExpenseChart handles the month vs year chart
// @Summary     Income vs expense chart
// @Tags        charts
// @Produce     json
// @Success     200 {object} insights.Chart
// @Router      /charts/income-expense [get]
func (h *DashboardHandler) GetIncomeExpenseChart(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.IncomeExpenseChart())
}

// GetTrendChart handles the 30-day running balance chart
// @Summary     Balance trend chart
// @Tags        charts
// @Produce     json
// @Success     200 {object} insights.Chart
// @Router      /charts/trend [get]
func (h *DashboardHandler) GetTrendChart(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.TrendChart())
}

// GetMonthlyChart handles the monthly history chart
// @Summary     Monthly history chart
// @Tags        charts
// @Produce     json
// @Param       months query int false "Months of history (default 6, max 24)"
// @Success     200 {object} insights.Chart
// @Failure     400 {object} ErrorResponse "Invalid months"
// @Router      /charts/monthly [get]
func (h *DashboardHandler) GetMonthlyChart(c *gin.Context) {
	var query MonthlyChartQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	c.JSON(http.StatusOK, h.dashboardService.MonthlyChart(query.Months))
}
