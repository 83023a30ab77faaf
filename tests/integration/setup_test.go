package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fintrack/internal/backup"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/services"
	"fintrack/internal/testutil"
	"fintrack/internal/validator"
)

const (
	adminPassword = "integration-pass"
	adminAPIKey   = "integration-api-key"
	jwtSecret     = "integration-secret"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB        *gorm.DB
	Router    *gin.Engine
	BackupDir string
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by a sqlite file in a
// temp dir, so file backups work. Admin auth is enabled.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	dir := t.TempDir()
	db := testutil.OpenTestDB(t, filepath.Join(dir, "fintrack.db"))
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	backupDir := filepath.Join(dir, "backups")

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	// Services
	auditService := services.NewAuditService(db)
	budgetService := services.NewBudgetService(db, nil, decimal.NewFromInt(8000))
	expenseService := services.NewExpenseService(db, budgetService)
	backupService := backup.NewService(db, database.DriverSQLite, backupDir)
	issuer := middleware.NewTokenIssuer(jwtSecret, time.Hour)

	h := handlers.Handlers{
		Auth:      handlers.NewAuthHandler(string(hash), issuer, auditService),
		Expense:   handlers.NewExpenseHandler(expenseService, auditService),
		Income:    handlers.NewIncomeHandler(services.NewIncomeService(db), auditService),
		Budget:    handlers.NewBudgetHandler(budgetService, auditService),
		Period:    handlers.NewPeriodHandler(services.NewPeriodService(db), auditService),
		Savings:   handlers.NewSavingsHandler(services.NewSavingsService(db), auditService),
		Dashboard: handlers.NewDashboardHandler(services.NewDashboardService(db)),
		Backup:    handlers.NewBackupHandler(backupService, auditService),
	}

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())
	handlers.RegisterRoutes(router, h, middleware.AdminAuth(issuer, adminAPIKey, true))

	return &testApp{DB: db, Router: router, BackupDir: backupDir}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// admin makes a request authenticated with the API key.
func (app *testApp) admin(method, path, body string) *httptest.ResponseRecorder {
	return app.request(method, path, body, "X-API-Key", adminAPIKey)
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

// initialize seeds the default periods, categories and limits.
func (app *testApp) initialize(t *testing.T) {
	t.Helper()
	expectStatus(t, app.request("POST", "/api/v1/budget/initialize", ""), http.StatusOK)
}

// categoryID looks up a category by name through the API.
func (app *testApp) categoryID(t *testing.T, name string) string {
	t.Helper()
	rec := app.request("GET", "/api/v1/budget/categories", "")
	expectStatus(t, rec, http.StatusOK)
	for _, c := range parseJSON(t, rec)["categories"].([]interface{}) {
		category := c.(map[string]interface{})
		if category["name"] == name {
			return category["id"].(string)
		}
	}
	t.Fatalf("category %q not found", name)
	return ""
}

// today returns the current UTC date in the API's date format.
func today() string {
	return time.Now().UTC().Format("2006-01-02")
}
