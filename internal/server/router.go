// Package server assembles the HTTP router.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/indianbuddy/personal-finance-manager/internal/docs" // Import swagger docs
	"github.com/indianbuddy/personal-finance-manager/internal/handlers"
	"github.com/indianbuddy/personal-finance-manager/internal/middleware"
	"github.com/indianbuddy/personal-finance-manager/internal/services"
)

// Deps are the services the router dispatches to.
type Deps struct {
	Ledger    services.LedgerServicer
	Dashboard services.DashboardServicer
	Audit     services.AuditServicer
}

// NewRouter builds the gin engine with middleware and every API route.
func NewRouter(deps Deps) *gin.Engine {
	if deps.Audit == nil {
		deps.Audit = services.NewNopAuditService()
	}

	transactionHandler := handlers.NewTransactionHandler(deps.Ledger)
	deleteHandler := handlers.NewDeleteHandler(deps.Ledger)
	categoryHandler := handlers.NewCategoryHandler(deps.Ledger)
	dashboardHandler := handlers.NewDashboardHandler(deps.Dashboard)
	auditHandler := handlers.NewAuditHandler(deps.Audit)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	v1.GET("/categories", categoryHandler.ListCategories)

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/recent", transactionHandler.RecentTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)

	deletes := v1.Group("/delete-requests")
	deletes.POST("", deleteHandler.RequestDelete)
	deletes.DELETE("", deleteHandler.CancelDelete)
	deletes.GET("/pending", deleteHandler.PendingDelete)
	deletes.POST("/confirm", deleteHandler.ConfirmDelete)

	v1.GET("/dashboard", dashboardHandler.GetDashboard)
	v1.GET("/insights", dashboardHandler.GetInsights)

	charts := v1.Group("/charts")
	charts.GET("/expenses", dashboardHandler.GetExpenseChart)
	charts.GET("/income-expense", dashboardHandler.GetIncomeExpenseChart)
	charts.GET("/trend", dashboardHandler.GetTrendChart)
	charts.GET("/monthly", dashboardHandler.GetMonthlyChart)

	v1.GET("/audit", auditHandler.ListAuditLogs)

	return router
}
