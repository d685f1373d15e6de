package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/indianbuddy/personal-finance-manager/internal/insights"
	"github.com/indianbuddy/personal-finance-manager/internal/ledger"
	"github.com/indianbuddy/personal-finance-manager/internal/logger"
	"github.com/indianbuddy/personal-finance-manager/internal/models"
	"github.com/indianbuddy/personal-finance-manager/internal/pagination"
	"github.com/indianbuddy/personal-finance-manager/internal/services"
	"github.com/indianbuddy/personal-finance-manager/internal/validator"
)

// --- mock services ---

type mockLedgerService struct {
	addTransactionFn     func(ctx context.Context, in ledger.Input) (*models.Transaction, error)
	listTransactionsFn   func(page pagination.PageRequest, filter services.TransactionFilter) *pagination.PageResponse[models.Transaction]
	recentTransactionsFn func() *services.RecentTransactions
	getTransactionFn     func(id int64) (*models.Transaction, error)
	requestDeleteFn      func(id int64) *services.DeleteStatus
	pendingDeleteFn      func() *services.DeleteStatus
	confirmDeleteFn      func(ctx context.Context) *services.DeleteResult
	cancelDeleteFn       func() *services.DeleteResult
	categoriesFn         func(filter *models.CategoryType) []models.Category
}

func (m *mockLedgerService) AddTransaction(ctx context.Context, in ledger.Input) (*models.Transaction, error) {
	if m.addTransactionFn != nil {
		return m.addTransactionFn(ctx, in)
	}
	return &models.Transaction{}, nil
}

func (m *mockLedgerService) ListTransactions(page pagination.PageRequest, filter services.TransactionFilter) *pagination.PageResponse[models.Transaction] {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(page, filter)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp
}

func (m *mockLedgerService) RecentTransactions() *services.RecentTransactions {
	if m.recentTransactionsFn != nil {
		return m.recentTransactionsFn()
	}
	return &services.RecentTransactions{Items: []services.TransactionRow{}}
}

func (m *mockLedgerService) GetTransaction(id int64) (*models.Transaction, error) {
	if m.getTransactionFn != nil {
		return m.getTransactionFn(id)
	}
	return &models.Transaction{ID: id}, nil
}

func (m *mockLedgerService) RequestDelete(id int64) *services.DeleteStatus {
	if m.requestDeleteFn != nil {
		return m.requestDeleteFn(id)
	}
	return &services.DeleteStatus{Pending: true, TransactionID: &id}
}

func (m *mockLedgerService) PendingDelete() *services.DeleteStatus {
	if m.pendingDeleteFn != nil {
		return m.pendingDeleteFn()
	}
	return &services.DeleteStatus{}
}

func (m *mockLedgerService) ConfirmDelete(ctx context.Context) *services.DeleteResult {
	if m.confirmDeleteFn != nil {
		return m.confirmDeleteFn(ctx)
	}
	return &services.DeleteResult{}
}

func (m *mockLedgerService) CancelDelete() *services.DeleteResult {
	if m.cancelDeleteFn != nil {
		return m.cancelDeleteFn()
	}
	return &services.DeleteResult{}
}

func (m *mockLedgerService) Categories(filter *models.CategoryType) []models.Category {
	if m.categoriesFn != nil {
		return m.categoriesFn(filter)
	}
	return []models.Category{}
}

var _ services.LedgerServicer = (*mockLedgerService)(nil)

type mockDashboardService struct {
	dashboardFn    func() *services.Dashboard
	insightsFn     func() *services.Insights
	monthlyChartFn func(months int) *insights.Chart
}

func (m *mockDashboardService) Dashboard() *services.Dashboard {
	if m.dashboardFn != nil {
		return m.dashboardFn()
	}
	return &services.Dashboard{}
}

func (m *mockDashboardService) Insights() *services.Insights {
	if m.insightsFn != nil {
		return m.insightsFn()
	}
	return &services.Insights{TopCategory: "-"}
}

func (m *mockDashboardService) ExpenseChart() *insights.Chart {
	c := insights.ExpenseChart(nil)
	return &c
}

func (m *mockDashboardService) IncomeExpenseChart() *insights.Chart {
	c := insights.IncomeExpenseChart(insights.Summary{})
	return &c
}

func (m *mockDashboardService) TrendChart() *insights.Chart {
	c := insights.TrendChart(nil)
	return &c
}

func (m *mockDashboardService) MonthlyChart(months int) *insights.Chart {
	if m.monthlyChartFn != nil {
		return m.monthlyChartFn(months)
	}
	return &insights.Chart{}
}

var _ services.DashboardServicer = (*mockDashboardService)(nil)

type mockAuditService struct {
	listFn func(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}

func (m *mockAuditService) Log(context.Context, string, models.Transaction) {}

func (m *mockAuditService) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	if m.listFn != nil {
		return m.listFn(ctx, page)
	}
	resp := pagination.NewPageResponse([]models.AuditLog{}, 1, 20, 0)
	return &resp, nil
}

var _ services.AuditServicer = (*mockAuditService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
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
