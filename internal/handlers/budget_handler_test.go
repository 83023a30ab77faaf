package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	r.POST("/budget/initialize", handler.Initialize)
	r.GET("/budget/status", handler.GetStatus)
	r.POST("/budget/check-spending", handler.CheckSpending)
	r.GET("/budget/alerts", handler.GetActiveAlerts)
	r.PUT("/budget/alerts/:id/read", handler.MarkAlertRead)
	r.GET("/budget/financial-health", handler.GetFinancialHealth)
	r.GET("/budget/savings-celebration", handler.GetSavingsCelebration)
	r.GET("/budget/limits", handler.GetBudgetLimits)
	r.GET("/budget/categories", handler.GetSpendingCategories)
	r.POST("/budget/categories", handler.CreateCustomCategory)
	r.PUT("/budget/categories/:id/limit", handler.UpdateCategoryLimit)
	return r
}

func TestBudgetHandler_Initialize(t *testing.T) {
	t.Run("returns 200", func(t *testing.T) {
		called := false
		svc := &mockBudgetService{initializeFn: func() error { called = true; return nil }}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/budget/initialize", "")

		if rec.Code != http.StatusOK || !called {
			t.Fatalf("expected 200 and a call, got %d", rec.Code)
		}
	})

	t.Run("hides internal errors", func(t *testing.T) {
		svc := &mockBudgetService{initializeFn: func() error {
			return apperrors.Wrap(apperrors.ErrInternalServer, errors.New("database is locked"))
		}}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/budget/initialize", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		errObj := parseJSON(t, rec)["error"].(map[string]interface{})
		if errObj["message"] != apperrors.ErrInternalServer.Message {
			t.Errorf("internal detail leaked: %v", errObj["message"])
		}
	})
}

func TestBudgetHandler_GetStatus(t *testing.T) {
	t.Run("returns the status", func(t *testing.T) {
		svc := &mockBudgetService{getStatusFn: func() (*services.BudgetStatus, error) {
			return &services.BudgetStatus{
				CurrentPeriod: "New Home",
				PeriodType:    models.PeriodTypeNewHome,
				SavingsRate:   dec("25.5"),
				CategoryBudgets: []services.CategoryBudget{
					{CategoryName: "Groceries", Status: "Great", StatusColor: "green"},
				},
			}, nil
		}}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/budget/status", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		status := parseJSON(t, rec)["status"].(map[string]interface{})
		if status["period_type"] != "new_home" {
			t.Errorf("expected new_home, got %v", status["period_type"])
		}
		if status["savings_rate"] != 25.5 {
			t.Errorf("expected savings_rate 25.5, got %v", status["savings_rate"])
		}
		budgets := status["category_budgets"].([]interface{})
		if budgets[0].(map[string]interface{})["status_color"] != "green" {
			t.Errorf("unexpected category budgets %v", budgets)
		}
	})

	t.Run("returns 404 without a period", func(t *testing.T) {
		svc := &mockBudgetService{getStatusFn: func() (*services.BudgetStatus, error) {
			return nil, apperrors.ErrNoFinancialPeriod
		}}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/budget/status", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "NO_FINANCIAL_PERIOD")
	})
}

func TestBudgetHandler_CheckSpending(t *testing.T) {
	t.Run("passes category and amount", func(t *testing.T) {
		var gotID string
		var gotAmount decimal.Decimal
		svc := &mockBudgetService{checkSpendingFn: func(categoryID string, amount decimal.Decimal) (*services.SpendingCheck, error) {
			gotID, gotAmount = categoryID, amount
			return &services.SpendingCheck{IsAllowed: true, AlertLevel: models.AlertTypeWarning, NewPercentageUsed: dec("80")}, nil
		}}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/budget/check-spending", `{"category_id":"`+testID+`","amount":120.25}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotID != testID || !gotAmount.Equal(dec("120.25")) {
			t.Errorf("unexpected call %s %s", gotID, gotAmount)
		}
		check := parseJSON(t, rec)["check"].(map[string]interface{})
		if check["alert_level"] != "warning" || check["is_allowed"] != true {
			t.Errorf("unexpected check %v", check)
		}
	})

	t.Run("returns 400 on non-positive amount", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/budget/check-spending", `{"category_id":"`+testID+`","amount":0}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_Alerts(t *testing.T) {
	t.Run("lists alerts", func(t *testing.T) {
		svc := &mockBudgetService{getActiveAlertsFn: func() ([]models.SpendingAlert, error) {
			return []models.SpendingAlert{{Type: models.AlertTypeCritical, Message: "Groceries at 92%"}}, nil
		}}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/budget/alerts", "")

		alerts := parseJSON(t, rec)["alerts"].([]interface{})
		if len(alerts) != 1 || alerts[0].(map[string]interface{})["type"] != "critical" {
			t.Errorf("unexpected alerts %v", alerts)
		}
	})

	t.Run("marks an alert read", func(t *testing.T) {
		svc := &mockBudgetService{markAlertReadFn: func(id string) (*models.SpendingAlert, error) {
			return &models.SpendingAlert{Base: models.Base{ID: id}, IsRead: true}, nil
		}}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/budget/alerts/"+testID+"/read", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		alert := parseJSON(t, rec)["alert"].(map[string]interface{})
		if alert["is_read"] != true {
			t.Errorf("expected is_read true, got %v", alert["is_read"])
		}
	})

	t.Run("returns 404 for unknown alert", func(t *testing.T) {
		svc := &mockBudgetService{markAlertReadFn: func(_ string) (*models.SpendingAlert, error) {
			return nil, apperrors.ErrAlertNotFound
		}}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/budget/alerts/"+testID+"/read", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ALERT_NOT_FOUND")
	})
}

func TestBudgetHandler_HealthAndCelebration(t *testing.T) {
	svc := &mockBudgetService{
		getFinancialHealthFn: func() (*services.FinancialHealth, error) {
			return &services.FinancialHealth{Grade: "Excellent", IsOnTrack: true, Achievements: []string{}}, nil
		},
		getSavingsCelebrationFn: func() (*services.SavingsCelebration, error) {
			return &services.SavingsCelebration{Message: "GREAT!", SavingsAmount: dec("1500")}, nil
		},
	}
	r := setupBudgetRouter(NewBudgetHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "GET", "/budget/financial-health", "")
	health := parseJSON(t, rec)["health"].(map[string]interface{})
	if health["grade"] != "Excellent" || health["is_on_track"] != true {
		t.Errorf("unexpected health %v", health)
	}

	rec = doRequest(r, "GET", "/budget/savings-celebration", "")
	celebration := parseJSON(t, rec)["celebration"].(map[string]interface{})
	if celebration["savings_amount"] != float64(1500) {
		t.Errorf("unexpected celebration %v", celebration)
	}
}

func TestBudgetHandler_Categories(t *testing.T) {
	t.Run("lists limits and categories", func(t *testing.T) {
		svc := &mockBudgetService{
			getBudgetLimitsFn: func() ([]services.BudgetLimitView, error) {
				return []services.BudgetLimitView{{CategoryName: "Rent", MonthlyLimit: dec("2000"), IsEssential: true}}, nil
			},
			getSpendingCategoriesFn: func() ([]services.CategoryView, error) {
				return []services.CategoryView{{Name: "Rent"}, {Name: "Hobbies", IsCustom: true}}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/budget/limits", "")
		limits := parseJSON(t, rec)["limits"].([]interface{})
		if limits[0].(map[string]interface{})["monthly_limit"] != float64(2000) {
			t.Errorf("unexpected limits %v", limits)
		}

		rec = doRequest(r, "GET", "/budget/categories", "")
		categories := parseJSON(t, rec)["categories"].([]interface{})
		if len(categories) != 2 {
			t.Errorf("expected 2 categories, got %d", len(categories))
		}
	})

	t.Run("creates a custom category", func(t *testing.T) {
		svc := &mockBudgetService{createCustomCategoryFn: func(name string, monthlyLimit decimal.Decimal, isEssential bool) (*services.CategoryBudget, error) {
			if name != "Hobbies" || !monthlyLimit.Equal(dec("150")) || isEssential {
				t.Errorf("unexpected call %q %s %t", name, monthlyLimit, isEssential)
			}
			return &services.CategoryBudget{CategoryID: testID, CategoryName: name, IsCustom: true, Limit: monthlyLimit}, nil
		}}
		audit := &mockAuditService{}
		r := setupBudgetRouter(NewBudgetHandler(svc, audit))

		rec := doRequest(r, "POST", "/budget/categories", `{"name":"Hobbies","monthly_limit":150}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		category := parseJSON(t, rec)["category"].(map[string]interface{})
		if category["is_custom"] != true {
			t.Errorf("expected custom category, got %v", category)
		}
		if !audit.logged("CREATE_CATEGORY") {
			t.Error("expected CREATE_CATEGORY to be audited")
		}
	})

	t.Run("rejects a negative limit", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/budget/categories", `{"name":"Hobbies","monthly_limit":-1}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 409 on duplicate name", func(t *testing.T) {
		svc := &mockBudgetService{createCustomCategoryFn: func(_ string, _ decimal.Decimal, _ bool) (*services.CategoryBudget, error) {
			return nil, apperrors.ErrDuplicateCategory
		}}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/budget/categories", `{"name":"Rent","monthly_limit":10}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_CATEGORY")
	})

	t.Run("updates a limit with optional fields", func(t *testing.T) {
		svc := &mockBudgetService{updateCategoryLimitFn: func(categoryID string, monthlyLimit decimal.Decimal, isEssential *bool, name *string) (*services.BudgetLimitView, error) {
			if categoryID != testID || !monthlyLimit.Equal(dec("300")) {
				t.Errorf("unexpected call %s %s", categoryID, monthlyLimit)
			}
			if isEssential == nil || !*isEssential {
				t.Error("expected is_essential true")
			}
			if name != nil {
				t.Errorf("expected no name, got %q", *name)
			}
			return &services.BudgetLimitView{CategoryID: categoryID, MonthlyLimit: monthlyLimit, IsEssential: true}, nil
		}}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/budget/categories/"+testID+"/limit", `{"monthly_limit":300,"is_essential":true}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 when the limit is omitted", func(t *testing.T) {
		called := false
		svc := &mockBudgetService{updateCategoryLimitFn: func(_ string, _ decimal.Decimal, _ *bool, _ *string) (*services.BudgetLimitView, error) {
			called = true
			return &services.BudgetLimitView{}, nil
		}}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/budget/categories/"+testID+"/limit", `{"name":"Crafts"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		if called {
			t.Error("service must not be called without a limit")
		}
	})

	t.Run("accepts a zero limit", func(t *testing.T) {
		svc := &mockBudgetService{updateCategoryLimitFn: func(categoryID string, monthlyLimit decimal.Decimal, _ *bool, _ *string) (*services.BudgetLimitView, error) {
			if !monthlyLimit.IsZero() {
				t.Errorf("expected zero limit, got %s", monthlyLimit)
			}
			return &services.BudgetLimitView{CategoryID: categoryID, MonthlyLimit: monthlyLimit}, nil
		}}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/budget/categories/"+testID+"/limit", `{"monthly_limit":0}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 when renaming a built-in category", func(t *testing.T) {
		svc := &mockBudgetService{updateCategoryLimitFn: func(_ string, _ decimal.Decimal, _ *bool, _ *string) (*services.BudgetLimitView, error) {
			return nil, apperrors.ErrSystemCategory
		}}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/budget/categories/"+testID+"/limit", `{"monthly_limit":300,"name":"Housing"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SYSTEM_CATEGORY")
	})
}
