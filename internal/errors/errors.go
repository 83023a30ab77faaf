// Package errors provides custom error types for the fintrack API.
// All service-layer errors should use AppError so that responses are
// consistent and never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid password", StatusCode: http.StatusUnauthorized}
	ErrAuthNotConfigured  = &AppError{Code: "AUTH_NOT_CONFIGURED", Message: "Admin authentication is not configured", StatusCode: http.StatusServiceUnavailable}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Category and budget errors.
var (
	ErrCategoryNotFound    = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrDuplicateCategory   = &AppError{Code: "DUPLICATE_CATEGORY", Message: "A category with this name already exists", StatusCode: http.StatusConflict}
	ErrSystemCategory      = &AppError{Code: "SYSTEM_CATEGORY", Message: "Built-in categories cannot be renamed", StatusCode: http.StatusBadRequest}
	ErrBudgetLimitNotFound = &AppError{Code: "BUDGET_LIMIT_NOT_FOUND", Message: "No budget limit for this category in the current period", StatusCode: http.StatusNotFound}
	ErrDuplicateLimit      = &AppError{Code: "DUPLICATE_BUDGET_LIMIT", Message: "This category already has a limit in the current period", StatusCode: http.StatusConflict}
	ErrAlertNotFound       = &AppError{Code: "ALERT_NOT_FOUND", Message: "Alert not found", StatusCode: http.StatusNotFound}
)

// Financial period and savings goal errors.
var (
	ErrPeriodNotFound      = &AppError{Code: "PERIOD_NOT_FOUND", Message: "Financial period not found", StatusCode: http.StatusNotFound}
	ErrNoFinancialPeriod   = &AppError{Code: "NO_FINANCIAL_PERIOD", Message: "No financial period configured; initialize the budget first", StatusCode: http.StatusNotFound}
	ErrInvalidPeriodRange  = &AppError{Code: "INVALID_PERIOD_RANGE", Message: "End date must not be before start date", StatusCode: http.StatusBadRequest}
	ErrSavingsGoalNotFound = &AppError{Code: "SAVINGS_GOAL_NOT_FOUND", Message: "Savings goal not found", StatusCode: http.StatusNotFound}
)

// Record errors.
var (
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrIncomeNotFound  = &AppError{Code: "INCOME_NOT_FOUND", Message: "Income not found", StatusCode: http.StatusNotFound}
	ErrSavingsNotFound = &AppError{Code: "SAVINGS_ENTRY_NOT_FOUND", Message: "Savings entry not found", StatusCode: http.StatusNotFound}
)

// Backup errors.
var (
	ErrBackupNotFound    = &AppError{Code: "BACKUP_NOT_FOUND", Message: "Backup file not found", StatusCode: http.StatusNotFound}
	ErrBackupUnsupported = &AppError{Code: "BACKUP_UNSUPPORTED", Message: "File backups are only available for SQLite databases", StatusCode: http.StatusBadRequest}
	ErrInvalidBackupName = &AppError{Code: "INVALID_BACKUP_NAME", Message: "Invalid backup name", StatusCode: http.StatusBadRequest}
	ErrInvalidImport     = &AppError{Code: "INVALID_IMPORT", Message: "Import file is not a valid export", StatusCode: http.StatusBadRequest}
)
