package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

func setupPeriodRouter(handler *PeriodHandler) *gin.Engine {
	r := gin.New()
	r.GET("/periods", handler.ListPeriods)
	r.POST("/periods", handler.CreatePeriod)
	r.GET("/periods/current", handler.GetCurrentPeriod)
	r.GET("/periods/:id", handler.GetPeriodByID)
	r.POST("/periods/:id/activate", handler.ActivatePeriod)
	r.GET("/savings-goals", handler.ListSavingsGoals)
	r.POST("/savings-goals", handler.CreateSavingsGoal)
	r.PUT("/savings-goals/:id", handler.UpdateSavingsGoal)
	r.DELETE("/savings-goals/:id", handler.DeleteSavingsGoal)
	return r
}

func TestPeriodHandler_CreatePeriod(t *testing.T) {
	t.Run("returns 201 and passes the flags", func(t *testing.T) {
		var got services.PeriodInput
		svc := &mockPeriodService{createPeriodFn: func(input services.PeriodInput) (*models.FinancialPeriod, error) {
			got = input
			return &models.FinancialPeriod{Base: models.Base{ID: testID}, Name: input.Name, Type: input.Type}, nil
		}}
		r := setupPeriodRouter(NewPeriodHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/periods",
			`{"name":"Moving","type":"double_housing","start_date":"2026-11-01","end_date":"2027-01-31","activate":true,"copy_limits":true}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Type != models.PeriodTypeDoubleHousing || !got.Activate || !got.CopyLimits {
			t.Errorf("unexpected input %+v", got)
		}
		if !got.StartDate.Equal(time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start date %v", got.StartDate)
		}
		period := parseJSON(t, rec)["period"].(map[string]interface{})
		if period["type"] != "double_housing" {
			t.Errorf("expected double_housing, got %v", period["type"])
		}
	})

	t.Run("type may be omitted", func(t *testing.T) {
		svc := &mockPeriodService{createPeriodFn: func(input services.PeriodInput) (*models.FinancialPeriod, error) {
			if input.Type != "" {
				t.Errorf("expected empty type, got %q", input.Type)
			}
			return &models.FinancialPeriod{Name: input.Name, Type: models.PeriodTypeStandard}, nil
		}}
		r := setupPeriodRouter(NewPeriodHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/periods", `{"name":"Normal","start_date":"2026-11-01","end_date":"2026-11-30"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{"unknown type", `{"name":"X","type":"vacation","start_date":"2026-11-01","end_date":"2026-11-30"}`},
		{"missing name", `{"start_date":"2026-11-01","end_date":"2026-11-30"}`},
		{"bad start date", `{"name":"X","start_date":"01/11/2026","end_date":"2026-11-30"}`},
		{"missing end date", `{"name":"X","start_date":"2026-11-01"}`},
	}
	for _, tt := range tests {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			r := setupPeriodRouter(NewPeriodHandler(&mockPeriodService{}, &mockAuditService{}))

			rec := doRequest(r, "POST", "/periods", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}

	t.Run("surfaces an inverted range", func(t *testing.T) {
		svc := &mockPeriodService{createPeriodFn: func(_ services.PeriodInput) (*models.FinancialPeriod, error) {
			return nil, apperrors.ErrInvalidPeriodRange
		}}
		r := setupPeriodRouter(NewPeriodHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/periods", `{"name":"X","start_date":"2026-11-30","end_date":"2026-11-01"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_PERIOD_RANGE")
	})
}

func TestPeriodHandler_Lookups(t *testing.T) {
	svc := &mockPeriodService{
		listPeriodsFn: func() ([]models.FinancialPeriod, error) {
			return []models.FinancialPeriod{{Name: "A"}, {Name: "B", IsActive: true}}, nil
		},
		getCurrentPeriodFn: func() (*models.FinancialPeriod, error) {
			return nil, apperrors.ErrNoFinancialPeriod
		},
		getPeriodByIDFn: func(id string) (*models.FinancialPeriod, error) {
			if id != testID {
				return nil, apperrors.ErrPeriodNotFound
			}
			return &models.FinancialPeriod{Base: models.Base{ID: id}, Name: "A"}, nil
		},
	}
	r := setupPeriodRouter(NewPeriodHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "GET", "/periods", "")
	if periods := parseJSON(t, rec)["periods"].([]interface{}); len(periods) != 2 {
		t.Errorf("expected 2 periods, got %d", len(periods))
	}

	rec = doRequest(r, "GET", "/periods/current", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for current, got %d", rec.Code)
	}

	rec = doRequest(r, "GET", "/periods/"+testID, "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	rec = doRequest(r, "GET", "/periods/"+testOtherID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}

	rec = doRequest(r, "GET", "/periods/not-a-uuid", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestPeriodHandler_ActivatePeriod(t *testing.T) {
	svc := &mockPeriodService{activatePeriodFn: func(id string) (*models.FinancialPeriod, error) {
		return &models.FinancialPeriod{Base: models.Base{ID: id}, IsActive: true}, nil
	}}
	audit := &mockAuditService{}
	r := setupPeriodRouter(NewPeriodHandler(svc, audit))

	rec := doRequest(r, "POST", "/periods/"+testID+"/activate", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	period := parseJSON(t, rec)["period"].(map[string]interface{})
	if period["is_active"] != true {
		t.Errorf("expected active period, got %v", period)
	}
	if !audit.logged("ACTIVATE_PERIOD") {
		t.Error("expected ACTIVATE_PERIOD to be audited")
	}
}

func TestPeriodHandler_SavingsGoals(t *testing.T) {
	t.Run("list filters by period", func(t *testing.T) {
		var got *string
		svc := &mockPeriodService{listSavingsGoalsFn: func(periodID *string) ([]models.SavingsGoal, error) {
			got = periodID
			return []models.SavingsGoal{}, nil
		}}
		r := setupPeriodRouter(NewPeriodHandler(svc, &mockAuditService{}))

		doRequest(r, "GET", "/savings-goals?period_id="+testID, "")
		if got == nil || *got != testID {
			t.Errorf("expected period filter %s, got %v", testID, got)
		}

		doRequest(r, "GET", "/savings-goals", "")
		if got != nil {
			t.Errorf("expected no filter, got %v", *got)
		}
	})

	t.Run("create returns 201", func(t *testing.T) {
		svc := &mockPeriodService{createSavingsGoalFn: func(input services.SavingsGoalInput) (*models.SavingsGoal, error) {
			return &models.SavingsGoal{
				Base:              models.Base{ID: testOtherID},
				Type:              input.Type,
				Name:              input.Name,
				MonthlyTarget:     input.MonthlyTarget,
				FinancialPeriodID: input.FinancialPeriodID,
				IsRequired:        input.IsRequired,
			}, nil
		}}
		r := setupPeriodRouter(NewPeriodHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/savings-goals",
			`{"financial_period_id":"`+testID+`","type":"emergency_fund","name":"Rainy day","monthly_target":500,"is_required":true}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		goal := parseJSON(t, rec)["savings_goal"].(map[string]interface{})
		if goal["monthly_target"] != float64(500) || goal["type"] != "emergency_fund" {
			t.Errorf("unexpected goal %v", goal)
		}
	})

	t.Run("create rejects an unknown goal type", func(t *testing.T) {
		r := setupPeriodRouter(NewPeriodHandler(&mockPeriodService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/savings-goals",
			`{"financial_period_id":"`+testID+`","type":"yacht","name":"Boat","monthly_target":500}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("update passes only provided fields", func(t *testing.T) {
		svc := &mockPeriodService{updateSavingsGoalFn: func(id, name string, monthlyTarget *decimal.Decimal, isRequired *bool) (*models.SavingsGoal, error) {
			if name != "" || isRequired != nil {
				t.Errorf("unexpected fields %q %v", name, isRequired)
			}
			if monthlyTarget == nil || !monthlyTarget.Equal(dec("750")) {
				t.Errorf("unexpected target %v", monthlyTarget)
			}
			return &models.SavingsGoal{Base: models.Base{ID: id}, MonthlyTarget: *monthlyTarget}, nil
		}}
		r := setupPeriodRouter(NewPeriodHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/savings-goals/"+testID, `{"monthly_target":750}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("delete audits", func(t *testing.T) {
		svc := &mockPeriodService{deleteSavingsGoalFn: func(_ string) error { return nil }}
		audit := &mockAuditService{}
		r := setupPeriodRouter(NewPeriodHandler(svc, audit))

		rec := doRequest(r, "DELETE", "/savings-goals/"+testID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !audit.logged("DELETE_SAVINGS_GOAL") {
			t.Error("expected DELETE_SAVINGS_GOAL to be audited")
		}
	})

	t.Run("delete returns 404 when missing", func(t *testing.T) {
		svc := &mockPeriodService{deleteSavingsGoalFn: func(_ string) error { return apperrors.ErrSavingsGoalNotFound }}
		audit := &mockAuditService{}
		r := setupPeriodRouter(NewPeriodHandler(svc, audit))

		rec := doRequest(r, "DELETE", "/savings-goals/"+testID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if len(audit.actions) != 0 {
			t.Errorf("expected no audit entries, got %v", audit.actions)
		}
	})
}
