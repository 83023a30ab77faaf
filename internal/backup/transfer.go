package backup

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/uuid"
)

const (
	insertBatchSize  = 100
	alertMonthLayout = "2006-01"
)

// Snapshot is the full dataset as exchanged by Export and Import.
type Snapshot struct {
	ExportedAt         time.Time                 `json:"exported_at"`
	SpendingCategories []models.SpendingCategory `json:"spending_categories"`
	FinancialPeriods   []models.FinancialPeriod  `json:"financial_periods"`
	BudgetLimits       []models.BudgetLimit      `json:"budget_limits"`
	SavingsGoals       []models.SavingsGoal      `json:"savings_goals"`
	Expenses           []models.Expense          `json:"expenses"`
	Incomes            []models.Income           `json:"incomes"`
	TotalSavings       []models.TotalSavings     `json:"total_savings"`
	SpendingAlerts     []models.SpendingAlert    `json:"spending_alerts"`
}

// ImportResult reports how many rows of each kind were imported.
type ImportResult struct {
	BackupFile         string `json:"backup_file,omitempty"`
	SpendingCategories int    `json:"spending_categories"`
	FinancialPeriods   int    `json:"financial_periods"`
	BudgetLimits       int    `json:"budget_limits"`
	SavingsGoals       int    `json:"savings_goals"`
	Expenses           int    `json:"expenses"`
	Incomes            int    `json:"incomes"`
	TotalSavings       int    `json:"total_savings"`
	SpendingAlerts     int    `json:"spending_alerts"`
}

// Export reads every domain table into a Snapshot.
func (s *Service) Export() (*Snapshot, error) {
	snapshot, err := loadSnapshot(s.db)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	snapshot.ExportedAt = s.now().UTC()
	return snapshot, nil
}

// Import replaces all domain rows with the contents of a JSON snapshot.
// On sqlite the current data is backed up first. Nothing is changed when
// any row fails.
func (s *Service) Import(data []byte) (*ImportResult, error) {
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidImport, "Import data is not valid JSON: "+err.Error())
	}
	if err := validateSnapshot(&snapshot); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := &ImportResult{
		SpendingCategories: len(snapshot.SpendingCategories),
		FinancialPeriods:   len(snapshot.FinancialPeriods),
		BudgetLimits:       len(snapshot.BudgetLimits),
		SavingsGoals:       len(snapshot.SavingsGoals),
		Expenses:           len(snapshot.Expenses),
		Incomes:            len(snapshot.Incomes),
		TotalSavings:       len(snapshot.TotalSavings),
		SpendingAlerts:     len(snapshot.SpendingAlerts),
	}
	if s.requireFiles() == nil {
		info, err := s.create("before_import_"+s.timestamp(), "Automatic backup before import")
		if err != nil {
			return nil, err
		}
		result.BackupFile = info.FileName
	}

	if err := s.replaceAll(&snapshot); err != nil {
		return nil, err
	}
	s.log.Infow("data imported",
		"categories", result.SpendingCategories,
		"expenses", result.Expenses,
		"incomes", result.Incomes,
	)
	return result, nil
}

func loadSnapshot(db *gorm.DB) (*Snapshot, error) {
	snapshot := &Snapshot{}
	queries := []struct {
		table string
		dest  interface{}
	}{
		{"spending_categories", &snapshot.SpendingCategories},
		{"financial_periods", &snapshot.FinancialPeriods},
		{"budget_limits", &snapshot.BudgetLimits},
		{"savings_goals", &snapshot.SavingsGoals},
		{"expenses", &snapshot.Expenses},
		{"incomes", &snapshot.Incomes},
		{"total_savings", &snapshot.TotalSavings},
		{"spending_alerts", &snapshot.SpendingAlerts},
	}
	for _, q := range queries {
		if err := db.Order("created_at ASC").Find(q.dest).Error; err != nil {
			return nil, fmt.Errorf("read %s: %w", q.table, err)
		}
	}
	return snapshot, nil
}

// readSnapshotFile loads a sqlite backup file through its own read-only
// connection.
func readSnapshotFile(path string) (*Snapshot, error) {
	db, err := gorm.Open(sqlite.Open("file:"+path+"?mode=ro"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open backup %s: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	defer sqlDB.Close()

	return loadSnapshot(db)
}

// replaceAll deletes every domain row and inserts the snapshot in one
// transaction. Deletes run children first, inserts parents first.
func (s *Service) replaceAll(snapshot *Snapshot) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []interface{}{
			&models.SpendingAlert{},
			&models.Expense{},
			&models.BudgetLimit{},
			&models.SavingsGoal{},
			&models.TotalSavings{},
			&models.Income{},
			&models.FinancialPeriod{},
			&models.SpendingCategory{},
		} {
			if err := wipe.Delete(model).Error; err != nil {
				return fmt.Errorf("delete %T: %w", model, err)
			}
		}

		steps := []func() error{
			func() error { return insertAll(tx, snapshot.SpendingCategories) },
			func() error { return insertAll(tx, snapshot.FinancialPeriods) },
			func() error { return insertAll(tx, snapshot.BudgetLimits) },
			func() error { return insertAll(tx, snapshot.SavingsGoals) },
			func() error { return insertAll(tx, snapshot.Expenses) },
			func() error { return insertAll(tx, snapshot.Incomes) },
			func() error { return insertAll(tx, snapshot.TotalSavings) },
			func() error { return insertAll(tx, snapshot.SpendingAlerts) },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func insertAll[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if err := tx.Omit(clause.Associations).CreateInBatches(&rows, insertBatchSize).Error; err != nil {
		return fmt.Errorf("insert %T: %w", rows, err)
	}
	return nil
}

// validateSnapshot checks every row before anything is deleted, so a bad
// document never reaches the database.
func validateSnapshot(snapshot *Snapshot) error {
	ids := newIDSet()

	categories := make(map[string]bool, len(snapshot.SpendingCategories))
	names := make(map[string]bool, len(snapshot.SpendingCategories))
	for _, c := range snapshot.SpendingCategories {
		if err := ids.add("spending category", c.ID); err != nil {
			return err
		}
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return invalidImport(fmt.Sprintf("spending category %s needs a name", c.ID))
		}
		if names[name] {
			return invalidImport(fmt.Sprintf("spending category name %q is used twice", name))
		}
		names[name] = true
		categories[c.ID] = true
	}

	periods := make(map[string]bool, len(snapshot.FinancialPeriods))
	for _, p := range snapshot.FinancialPeriods {
		if err := ids.add("financial period", p.ID); err != nil {
			return err
		}
		if strings.TrimSpace(p.Name) == "" {
			return invalidImport(fmt.Sprintf("financial period %s needs a name", p.ID))
		}
		if !p.Type.IsValid() {
			return invalidImport(fmt.Sprintf("financial period %s has unknown type %q", p.ID, p.Type))
		}
		if p.EndDate.Before(p.StartDate) {
			return invalidImport(fmt.Sprintf("financial period %s ends before it starts", p.ID))
		}
		periods[p.ID] = true
	}

	limits := make(map[string]bool, len(snapshot.BudgetLimits))
	for _, bl := range snapshot.BudgetLimits {
		if err := ids.add("budget limit", bl.ID); err != nil {
			return err
		}
		if !categories[bl.CategoryID] || !periods[bl.FinancialPeriodID] {
			return invalidImport(fmt.Sprintf("budget limit %s references a missing category or period", bl.ID))
		}
		if bl.MonthlyLimit.IsNegative() {
			return invalidImport(fmt.Sprintf("budget limit %s must not be negative", bl.ID))
		}
		key := bl.CategoryID + "/" + bl.FinancialPeriodID
		if limits[key] {
			return invalidImport(fmt.Sprintf("budget limit %s repeats a category in its period", bl.ID))
		}
		limits[key] = true
	}

	for _, g := range snapshot.SavingsGoals {
		if err := ids.add("savings goal", g.ID); err != nil {
			return err
		}
		if !periods[g.FinancialPeriodID] {
			return invalidImport(fmt.Sprintf("savings goal %s references a missing period", g.ID))
		}
		if !g.Type.IsValid() {
			return invalidImport(fmt.Sprintf("savings goal %s has unknown type %q", g.ID, g.Type))
		}
		if !g.MonthlyTarget.IsPositive() {
			return invalidImport(fmt.Sprintf("savings goal %s must have a positive monthly target", g.ID))
		}
	}

	for _, e := range snapshot.Expenses {
		if err := ids.add("expense", e.ID); err != nil {
			return err
		}
		if !categories[e.CategoryID] {
			return invalidImport(fmt.Sprintf("expense %s references a missing category", e.ID))
		}
		if !e.Amount.IsPositive() {
			return invalidImport(fmt.Sprintf("expense %s must have a positive amount", e.ID))
		}
		if strings.TrimSpace(e.Description) == "" {
			return invalidImport(fmt.Sprintf("expense %s needs a description", e.ID))
		}
	}

	for _, i := range snapshot.Incomes {
		if err := ids.add("income", i.ID); err != nil {
			return err
		}
		if !i.Amount.IsPositive() {
			return invalidImport(fmt.Sprintf("income %s must have a positive amount", i.ID))
		}
		if strings.TrimSpace(i.Source) == "" {
			return invalidImport(fmt.Sprintf("income %s needs a source", i.ID))
		}
	}

	for _, ts := range snapshot.TotalSavings {
		if err := ids.add("savings entry", ts.ID); err != nil {
			return err
		}
		if !ts.Amount.IsPositive() {
			return invalidImport(fmt.Sprintf("savings entry %s must have a positive amount", ts.ID))
		}
	}

	alerts := make(map[string]bool, len(snapshot.SpendingAlerts))
	for _, a := range snapshot.SpendingAlerts {
		if err := ids.add("spending alert", a.ID); err != nil {
			return err
		}
		if !categories[a.CategoryID] {
			return invalidImport(fmt.Sprintf("spending alert %s references a missing category", a.ID))
		}
		if !a.Type.IsValid() {
			return invalidImport(fmt.Sprintf("spending alert %s has unknown type %q", a.ID, a.Type))
		}
		if _, err := time.Parse(alertMonthLayout, a.Month); err != nil {
			return invalidImport(fmt.Sprintf("spending alert %s has month %q, want YYYY-MM", a.ID, a.Month))
		}
		key := a.CategoryID + "/" + string(a.Type) + "/" + a.Month
		if alerts[key] {
			return invalidImport(fmt.Sprintf("spending alert %s repeats a category tier in its month", a.ID))
		}
		alerts[key] = true
	}
	return nil
}

// idSet tracks the ids seen per table. Ids must be canonical UUIDs, the
// only form the API accepts in paths.
type idSet map[string]map[string]bool

func newIDSet() idSet { return idSet{} }

func (s idSet) add(kind, id string) error {
	canonical, err := uuid.Parse(id)
	if err != nil || canonical != id {
		return invalidImport(fmt.Sprintf("%s id %q is not a lowercase UUID", kind, id))
	}
	if s[kind] == nil {
		s[kind] = make(map[string]bool)
	}
	if s[kind][id] {
		return invalidImport(fmt.Sprintf("%s id %s is used twice", kind, id))
	}
	s[kind][id] = true
	return nil
}

func invalidImport(message string) error {
	return apperrors.WithMessage(apperrors.ErrInvalidImport, message)
}
