package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestLedgerFlow_ExpenseCRUD(t *testing.T) {
	app := setupApp(t)
	app.initialize(t)
	transport := app.categoryID(t, "Transport")

	// Step 1: Create
	rec := app.request("POST", "/api/v1/expenses",
		fmt.Sprintf(`{"date":%q,"amount":45.50,"category_id":%q,"description":"Fuel","payment_method":"card","tags":"car"}`, today(), transport))
	expectStatus(t, rec, http.StatusCreated)
	expense := parseJSON(t, rec)["expense"].(map[string]interface{})
	id := expense["id"].(string)
	if expense["amount"] != 45.5 {
		t.Errorf("expected amount 45.5, got %v", expense["amount"])
	}

	// Step 2: Read back with its category
	rec = app.request("GET", "/api/v1/expenses/"+id, "")
	expectStatus(t, rec, http.StatusOK)
	expense = parseJSON(t, rec)["expense"].(map[string]interface{})
	if category, ok := expense["category"].(map[string]interface{}); !ok || category["name"] != "Transport" {
		t.Errorf("expected Transport category, got %v", expense["category"])
	}

	// Step 3: Update
	rec = app.request("PUT", "/api/v1/expenses/"+id,
		fmt.Sprintf(`{"date":%q,"amount":50,"category_id":%q,"description":"Fuel and wash"}`, today(), transport))
	expectStatus(t, rec, http.StatusOK)
	expense = parseJSON(t, rec)["expense"].(map[string]interface{})
	if expense["amount"] != float64(50) || expense["description"] != "Fuel and wash" {
		t.Errorf("unexpected updated expense %v", expense)
	}

	// Step 4: Listing filters by category
	rec = app.request("GET", "/api/v1/expenses?category_id="+transport, "")
	expectStatus(t, rec, http.StatusOK)
	if total := parseJSON(t, rec)["total_items"]; total != float64(1) {
		t.Errorf("expected 1 transport expense, got %v", total)
	}

	// Step 5: Unknown category is rejected
	rec = app.request("POST", "/api/v1/expenses",
		fmt.Sprintf(`{"date":%q,"amount":5,"category_id":"0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b","description":"Ghost"}`, today()))
	expectStatus(t, rec, http.StatusNotFound)

	// Step 6: Delete, then 404
	rec = app.request("DELETE", "/api/v1/expenses/"+id, "")
	expectStatus(t, rec, http.StatusOK)
	rec = app.request("GET", "/api/v1/expenses/"+id, "")
	expectStatus(t, rec, http.StatusNotFound)
}

func TestLedgerFlow_DashboardTotals(t *testing.T) {
	app := setupApp(t)
	app.initialize(t)
	groceries := app.categoryID(t, "Groceries")
	transport := app.categoryID(t, "Transport")

	rec := app.request("POST", "/api/v1/incomes",
		fmt.Sprintf(`{"date":%q,"amount":8000,"source":"Salary"}`, today()))
	expectStatus(t, rec, http.StatusCreated)

	for _, e := range []struct {
		category string
		amount   string
	}{
		{groceries, "300"},
		{groceries, "100"},
		{transport, "200"},
	} {
		rec = app.request("POST", "/api/v1/expenses",
			fmt.Sprintf(`{"date":%q,"amount":%s,"category_id":%q,"description":"Spend"}`, today(), e.amount, e.category))
		expectStatus(t, rec, http.StatusCreated)
	}

	rec = app.request("GET", "/api/v1/dashboard", "")
	expectStatus(t, rec, http.StatusOK)
	dashboard := parseJSON(t, rec)["dashboard"].(map[string]interface{})
	if dashboard["total_income"] != float64(8000) || dashboard["total_expenses"] != float64(600) {
		t.Errorf("unexpected totals %v", dashboard)
	}
	if dashboard["net_savings"] != float64(7400) || dashboard["savings_rate"] != 92.5 {
		t.Errorf("unexpected savings %v", dashboard)
	}
	byCategory := dashboard["expenses_by_category"].([]interface{})
	if first := byCategory[0].(map[string]interface{}); first["category"] != "Groceries" || first["amount"] != float64(400) {
		t.Errorf("expected Groceries first, got %v", first)
	}

	// Category summary percentages add up
	rec = app.request("GET", "/api/v1/expenses/categories/summary", "")
	expectStatus(t, rec, http.StatusOK)
	categories := parseJSON(t, rec)["categories"].([]interface{})
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}

	// Yearly dashboard covers all twelve months
	rec = app.request("GET", fmt.Sprintf("/api/v1/dashboard/yearly?year=%d", time.Now().UTC().Year()), "")
	expectStatus(t, rec, http.StatusOK)
	yearly := parseJSON(t, rec)["dashboard"].(map[string]interface{})
	if monthly := yearly["monthly"].([]interface{}); len(monthly) != 12 {
		t.Errorf("expected 12 months, got %d", len(monthly))
	}
	if yearly["total_expenses"] != float64(600) {
		t.Errorf("expected yearly expenses 600, got %v", yearly["total_expenses"])
	}

	// The chart renders as a PNG
	rec = app.request("GET", "/api/v1/dashboard/yearly/chart", "")
	expectStatus(t, rec, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("expected image/png, got %q", ct)
	}
}

func TestLedgerFlow_SavingsLedger(t *testing.T) {
	app := setupApp(t)
	now := time.Now().UTC()

	rec := app.request("POST", "/api/v1/savings",
		fmt.Sprintf(`{"date":%q,"amount":500,"description":"Monthly transfer"}`, today()))
	expectStatus(t, rec, http.StatusCreated)
	entry := parseJSON(t, rec)["savings"].(map[string]interface{})
	if entry["category"] != "General" {
		t.Errorf("expected default category General, got %v", entry["category"])
	}

	rec = app.request("POST", "/api/v1/savings",
		fmt.Sprintf(`{"date":%q,"amount":250,"category":"Emergency"}`, today()))
	expectStatus(t, rec, http.StatusCreated)

	rec = app.request("GET", fmt.Sprintf("/api/v1/savings/monthly/%d/%d", now.Year(), int(now.Month())), "")
	expectStatus(t, rec, http.StatusOK)
	monthly := parseJSON(t, rec)["monthly"].(map[string]interface{})
	if monthly["total_amount"] != float64(750) || monthly["count"] != float64(2) {
		t.Errorf("unexpected monthly savings %v", monthly)
	}

	rec = app.request("DELETE", "/api/v1/savings/"+entry["id"].(string), "")
	expectStatus(t, rec, http.StatusOK)

	rec = app.request("GET", "/api/v1/savings", "")
	expectStatus(t, rec, http.StatusOK)
	if total := parseJSON(t, rec)["total_items"]; total != float64(1) {
		t.Errorf("expected 1 entry left, got %v", total)
	}
}

func TestLedgerFlow_PeriodSwitch(t *testing.T) {
	app := setupApp(t)
	app.initialize(t)

	rec := app.request("GET", "/api/v1/budget/limits", "")
	seeded := len(parseJSON(t, rec)["limits"].([]interface{}))

	// A new active period copying the current limits becomes current
	start := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	end := time.Now().UTC().AddDate(1, 0, 0).Format("2006-01-02")
	rec = app.request("POST", "/api/v1/periods",
		fmt.Sprintf(`{"name":"Sabbatical","start_date":%q,"end_date":%q,"activate":true,"copy_limits":true}`, start, end))
	expectStatus(t, rec, http.StatusCreated)
	period := parseJSON(t, rec)["period"].(map[string]interface{})
	if period["type"] != "standard" {
		t.Errorf("expected default type standard, got %v", period["type"])
	}

	rec = app.request("GET", "/api/v1/periods/current", "")
	expectStatus(t, rec, http.StatusOK)
	if current := parseJSON(t, rec)["period"].(map[string]interface{}); current["id"] != period["id"] {
		t.Errorf("expected new period to be current, got %v", current["name"])
	}

	rec = app.request("GET", "/api/v1/budget/limits", "")
	if copied := len(parseJSON(t, rec)["limits"].([]interface{})); copied != seeded {
		t.Errorf("expected %d copied limits, got %d", seeded, copied)
	}

	// Savings goals attach to the period and feed the status view
	rec = app.request("POST", "/api/v1/savings-goals",
		fmt.Sprintf(`{"financial_period_id":%q,"type":"emergency_fund","name":"Rainy day","monthly_target":1000,"is_required":true}`, period["id"]))
	expectStatus(t, rec, http.StatusCreated)

	rec = app.request("GET", "/api/v1/budget/status", "")
	expectStatus(t, rec, http.StatusOK)
	status := parseJSON(t, rec)["status"].(map[string]interface{})
	if status["current_period"] != "Sabbatical" || status["savings_target"] != float64(1000) {
		t.Errorf("unexpected status %v %v", status["current_period"], status["savings_target"])
	}
	if progress := status["savings_progress"].([]interface{}); len(progress) != 1 {
		t.Errorf("expected 1 goal in progress, got %d", len(progress))
	}

	// Inverted ranges are rejected
	rec = app.request("POST", "/api/v1/periods",
		fmt.Sprintf(`{"name":"Backwards","start_date":%q,"end_date":%q}`, end, start))
	expectStatus(t, rec, http.StatusBadRequest)
}
