package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/indianbuddy/personal-finance-manager/internal/catalog"
	"github.com/indianbuddy/personal-finance-manager/internal/ledger"
	"github.com/indianbuddy/personal-finance-manager/internal/logger"
	"github.com/indianbuddy/personal-finance-manager/internal/models"
	"github.com/indianbuddy/personal-finance-manager/internal/services"
	"github.com/indianbuddy/personal-finance-manager/internal/testutil"
	"github.com/indianbuddy/personal-finance-manager/internal/validator"
)

var ist = time.FixedZone("IST", 5*3600+1800)

// testApp holds the full application stack.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp builds the router over a seeded ledger frozen at 2025-07-31 19:00 IST.
// withAudit backs the audit trail with an isolated in-memory SQLite database.
func setupApp(t *testing.T, withAudit bool) *testApp {
	t.Helper()

	l := ledger.New(catalog.Default())
	l.Seed(ledger.SampleTransactions())
	now := time.Date(2025, 7, 31, 19, 0, 0, 0, ist)
	store := services.NewStore(l, func() time.Time { return now })

	cache, err := services.NewViewCache(100)
	testutil.AssertNoError(t, err)
	t.Cleanup(cache.Close)

	app := &testApp{}
	audit := services.NewNopAuditService()
	if withAudit {
		app.DB = testutil.SetupTestDB(t)
		t.Cleanup(func() { testutil.TeardownTestDB(t, app.DB) })
		audit = services.NewAuditService(app.DB)
	}

	app.Router = NewRouter(Deps{
		Ledger:    services.NewLedgerService(store, audit, services.DefaultRecentLimit),
		Dashboard: services.NewDashboardService(store, cache, 0),
		Audit:     audit,
	})
	return app
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %s", rec.Body.String())
	}
	return errObj["code"].(string)
}

func stat(t *testing.T, m map[string]interface{}, period, field string) string {
	t.Helper()
	p := m[period].(map[string]interface{})
	return p[field].(map[string]interface{})["display"].(string)
}

func TestHealthAndSwagger(t *testing.T) {
	app := setupApp(t, false)

	rec := app.request("GET", "/api/health", "")
	expectStatus(t, rec, http.StatusOK)
	if parseJSON(t, rec)["status"] != "ok" {
		t.Errorf("unexpected health body %s", rec.Body.String())
	}

	rec = app.request("GET", "/swagger/doc.json", "")
	expectStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), "/delete-requests/confirm") {
		t.Error("swagger document should describe the delete routes")
	}
}

func TestCORSPreflight(t *testing.T) {
	app := setupApp(t, false)

	rec := app.request("OPTIONS", "/api/v1/transactions", "")
	expectStatus(t, rec, http.StatusNoContent)
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS headers on preflight")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected a request id header")
	}
}

func TestCategories(t *testing.T) {
	app := setupApp(t, false)

	rec := app.request("GET", "/api/v1/categories", "")
	expectStatus(t, rec, http.StatusOK)
	cats := parseJSON(t, rec)["categories"].([]interface{})
	if len(cats) != 20 {
		t.Fatalf("expected 20 categories, got %d", len(cats))
	}
	if first := cats[0].(map[string]interface{}); first["name"] != "Salary" || first["type"] != "income" {
		t.Errorf("income categories should come first, got %v", first)
	}

	rec = app.request("GET", "/api/v1/categories?type=expense", "")
	expectStatus(t, rec, http.StatusOK)
	if n := len(parseJSON(t, rec)["categories"].([]interface{})); n != 15 {
		t.Errorf("expected 15 expense categories, got %d", n)
	}

	rec = app.request("GET", "/api/v1/categories?type=transfer", "")
	expectStatus(t, rec, http.StatusBadRequest)
}

func TestAddTransactionFlow(t *testing.T) {
	app := setupApp(t, false)

	// Step 1: seeded dashboard
	rec := app.request("GET", "/api/v1/dashboard", "")
	expectStatus(t, rec, http.StatusOK)
	dash := parseJSON(t, rec)
	if got := stat(t, dash, "today", "balance"); got != "₹49,895.00" {
		t.Fatalf("expected seeded balance ₹49,895.00, got %s", got)
	}

	// Step 2: record an expense
	rec = app.request("POST", "/api/v1/transactions",
		`{"amount":"250.50","category":"Groceries/Sabzi","date":"2025-07-31","description":"Weekly vegetables"}`)
	expectStatus(t, rec, http.StatusCreated)
	tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
	if tx["id"].(float64) != 7 || tx["type"] != string(models.TransactionTypeExpense) {
		t.Errorf("unexpected transaction %v", tx)
	}

	// Step 3: totals reflect it
	rec = app.request("GET", "/api/v1/dashboard", "")
	expectStatus(t, rec, http.StatusOK)
	dash = parseJSON(t, rec)
	if got := stat(t, dash, "today", "expenses"); got != "₹355.50" {
		t.Errorf("expected today expenses ₹355.50, got %s", got)
	}
	if dash["transaction_count"].(float64) != 7 {
		t.Errorf("expected 7 transactions, got %v", dash["transaction_count"])
	}

	// Step 4: newest first in the recent list
	rec = app.request("GET", "/api/v1/transactions/recent", "")
	expectStatus(t, rec, http.StatusOK)
	recent := parseJSON(t, rec)
	first := recent["items"].([]interface{})[0].(map[string]interface{})
	if first["id"].(float64) != 7 || first["amount"] != "-₹250.50" {
		t.Errorf("unexpected first recent row %v", first)
	}
	if first["meta"] != "Groceries/Sabzi • Today" {
		t.Errorf("unexpected meta %v", first["meta"])
	}

	// Step 5: numeric amounts are accepted too, and the description defaults
	rec = app.request("POST", "/api/v1/transactions",
		`{"amount":1200,"category":"Freelance Work","date":"2025-07-15"}`)
	expectStatus(t, rec, http.StatusCreated)
	tx = parseJSON(t, rec)["transaction"].(map[string]interface{})
	if tx["description"] != "Freelance Work" {
		t.Errorf("expected description to default to the category, got %v", tx["description"])
	}

	rec = app.request("GET", "/api/v1/transactions?type=income", "")
	expectStatus(t, rec, http.StatusOK)
	if total := parseJSON(t, rec)["total_items"].(float64); total != 2 {
		t.Errorf("expected 2 income transactions, got %.0f", total)
	}
}

func TestAddTransactionValidation(t *testing.T) {
	app := setupApp(t, false)

	tests := []struct {
		name string
		body string
		code string
	}{
		{"non-numeric amount", `{"amount":"abc","category":"Salary","date":"2025-07-31"}`, "INVALID_AMOUNT"},
		{"zero amount", `{"amount":"0","category":"Salary","date":"2025-07-31"}`, "INVALID_AMOUNT"},
		{"exponent amount", `{"amount":1e5000000,"category":"Salary","date":"2025-07-31"}`, "INVALID_AMOUNT"},
		{"amount too large", `{"amount":"5000000000000000","category":"Salary","date":"2025-07-31"}`, "INVALID_AMOUNT"},
		{"missing amount", `{"category":"Salary","date":"2025-07-31"}`, "INVALID_AMOUNT"},
		{"missing category", `{"amount":"10","date":"2025-07-31"}`, "MISSING_CATEGORY"},
		{"unknown category", `{"amount":"10","category":"Lottery","date":"2025-07-31"}`, "UNKNOWN_CATEGORY"},
		{"missing date", `{"amount":"10","category":"Salary"}`, "MISSING_DATE"},
		{"bad date", `{"amount":"10","category":"Salary","date":"31-07-2025"}`, "INVALID_DATE"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := app.request("POST", "/api/v1/transactions", tc.body)
			expectStatus(t, rec, http.StatusBadRequest)
			if got := errorCode(t, rec); got != tc.code {
				t.Errorf("expected %s, got %s", tc.code, got)
			}
		})
	}

	rec := app.request("GET", "/api/v1/transactions", "")
	expectStatus(t, rec, http.StatusOK)
	if total := parseJSON(t, rec)["total_items"].(float64); total != 6 {
		t.Errorf("rejected input must not change the ledger, got %.0f transactions", total)
	}
}

func TestDeleteFlow(t *testing.T) {
	app := setupApp(t, false)

	// Step 1: request, then cancel
	rec := app.request("POST", "/api/v1/delete-requests", `{"transaction_id":4}`)
	expectStatus(t, rec, http.StatusAccepted)
	if parseJSON(t, rec)["pending"] != true {
		t.Fatal("expected a pending delete")
	}

	rec = app.request("DELETE", "/api/v1/delete-requests", "")
	expectStatus(t, rec, http.StatusOK)
	if parseJSON(t, rec)["removed"] != false {
		t.Error("cancel must not remove anything")
	}

	rec = app.request("GET", "/api/v1/delete-requests/pending", "")
	expectStatus(t, rec, http.StatusOK)
	if parseJSON(t, rec)["pending"] != false {
		t.Error("cancel should clear the pending delete")
	}

	// Step 2: request, then confirm
	rec = app.request("POST", "/api/v1/delete-requests", `{"transaction_id":4}`)
	expectStatus(t, rec, http.StatusAccepted)

	rec = app.request("POST", "/api/v1/delete-requests/confirm", "")
	expectStatus(t, rec, http.StatusOK)
	result := parseJSON(t, rec)
	if result["removed"] != true {
		t.Fatalf("expected removal, got %v", result)
	}
	if removed := result["transaction"].(map[string]interface{}); removed["category"] != "Street Food" {
		t.Errorf("unexpected removed transaction %v", removed)
	}

	// Step 3: it is gone and the totals moved
	rec = app.request("GET", "/api/v1/transactions/4", "")
	expectStatus(t, rec, http.StatusNotFound)
	if got := errorCode(t, rec); got != "TRANSACTION_NOT_FOUND" {
		t.Errorf("expected TRANSACTION_NOT_FOUND, got %s", got)
	}

	rec = app.request("GET", "/api/v1/dashboard", "")
	expectStatus(t, rec, http.StatusOK)
	if got := stat(t, parseJSON(t, rec), "month", "expenses"); got != "₹2,150.00" {
		t.Errorf("expected month expenses ₹2,150.00, got %s", got)
	}

	// Step 4: confirming again is a no-op
	rec = app.request("POST", "/api/v1/delete-requests/confirm", "")
	expectStatus(t, rec, http.StatusOK)
	if parseJSON(t, rec)["removed"] != false {
		t.Error("second confirm should not remove anything")
	}

	rec = app.request("POST", "/api/v1/delete-requests", `{"transaction_id":0}`)
	expectStatus(t, rec, http.StatusBadRequest)
}

func TestInsightsAndCharts(t *testing.T) {
	app := setupApp(t, false)

	rec := app.request("GET", "/api/v1/insights", "")
	expectStatus(t, rec, http.StatusOK)
	in := parseJSON(t, rec)
	if in["top_category"] != "Groceries/Sabzi" || in["days_remaining"].(float64) != 0 {
		t.Errorf("unexpected insights %v", in)
	}

	for _, path := range []string{"expenses", "income-expense", "trend", "monthly"} {
		t.Run(path, func(t *testing.T) {
			rec := app.request("GET", "/api/v1/charts/"+path, "")
			expectStatus(t, rec, http.StatusOK)
			chart := parseJSON(t, rec)
			if len(chart["labels"].([]interface{})) == 0 || len(chart["datasets"].([]interface{})) == 0 {
				t.Errorf("expected a populated chart, got %v", chart)
			}
		})
	}

	rec = app.request("GET", "/api/v1/charts/monthly?months=12", "")
	expectStatus(t, rec, http.StatusOK)
	if n := len(parseJSON(t, rec)["labels"].([]interface{})); n != 12 {
		t.Errorf("expected 12 months, got %d", n)
	}

	rec = app.request("GET", "/api/v1/charts/monthly?months=25", "")
	expectStatus(t, rec, http.StatusBadRequest)
}

func TestAuditTrail(t *testing.T) {
	app := setupApp(t, true)

	rec := app.request("POST", "/api/v1/transactions",
		`{"amount":"99","category":"Mobile Recharge","date":"2025-07-31"}`)
	expectStatus(t, rec, http.StatusCreated)
	id := parseJSON(t, rec)["transaction"].(map[string]interface{})["id"].(float64)

	rec = app.request("POST", "/api/v1/delete-requests", fmt.Sprintf(`{"transaction_id":%.0f}`, id))
	expectStatus(t, rec, http.StatusAccepted)
	rec = app.request("POST", "/api/v1/delete-requests/confirm", "")
	expectStatus(t, rec, http.StatusOK)

	rec = app.request("GET", "/api/v1/audit", "")
	expectStatus(t, rec, http.StatusOK)
	result := parseJSON(t, rec)
	if total := result["total_items"].(float64); total != 2 {
		t.Fatalf("expected 2 audit entries, got %.0f", total)
	}

	actions := map[string]bool{}
	for _, entry := range result["data"].([]interface{}) {
		e := entry.(map[string]interface{})
		actions[e["action"].(string)] = true
		if e["transaction_id"].(float64) != id || e["amount"] != "99" {
			t.Errorf("unexpected audit entry %v", e)
		}
	}
	if !actions[models.AuditActionAddTransaction] || !actions[models.AuditActionDeleteTransaction] {
		t.Errorf("expected add and delete entries, got %v", actions)
	}
}

func TestAuditTrailDisabled(t *testing.T) {
	app := setupApp(t, false)

	rec := app.request("GET", "/api/v1/audit", "")
	expectStatus(t, rec, http.StatusServiceUnavailable)
	if got := errorCode(t, rec); got != "UNAVAILABLE" {
		t.Errorf("expected UNAVAILABLE, got %s", got)
	}
}
