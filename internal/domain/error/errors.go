package error

import (
	"context"
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest    = 4000
	CodeInsufficientFunds = 4001
	CodeInvalidAmount     = 4002
	CodeInvalidUserID     = 4003
	CodeCapExceeded       = 4006
	CodeUserLocked        = 4230

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeServiceUnavailable = 5030
)

// Base error types
var (
	// ErrInvalidAmount is returned when a charge or use amount is not positive
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrCapExceeded is returned when a charge would bring the balance to or above the cap
	ErrCapExceeded = errors.New("balance would reach or exceed the maximum")

	// ErrInsufficientFunds is returned when a use amount is larger than the current balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrUserLocked is returned when the per-user slot could not be acquired in time
	ErrUserLocked = errors.New("user is locked by another operation")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDatabaseConnection is returned when the persistence backend fails
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrCapExceeded):
		return CodeCapExceeded
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUserLocked):
		return CodeUserLocked
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return CodeServiceUnavailable
	default:
		return CodeInternalServer
	}
}

// IsValidationError reports whether err is one of the local validation failures
// that a charge or use can produce. These are never transient.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrCapExceeded) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrInvalidUserID)
}

// BalanceError represents a rejected balance mutation
type BalanceError struct {
	UserID         uint64
	Operation      string
	Amount         int64
	CurrentBalance int64
	Err            error
}

// Error implements the error interface for BalanceError
func (e *BalanceError) Error() string {
	return fmt.Sprintf("%s rejected for user %d (current balance: %d, amount: %d): %v",
		e.Operation, e.UserID, e.CurrentBalance, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *BalanceError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *BalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "balance_error",
		"operation":       e.Operation,
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrentBalance,
		"error":           e.Err.Error(),
		"error_code":      ErrorCode(e.Err),
	}
}

// NewBalanceError creates a detailed balance error wrapping one of the base kinds
func NewBalanceError(operation string, userID uint64, amount, currentBalance int64, err error) error {
	return &BalanceError{
		UserID:         userID,
		Operation:      operation,
		Amount:         amount,
		CurrentBalance: currentBalance,
		Err:            err,
	}
}

// IsUserLockedError checks if the error is related to a locked user
func IsUserLockedError(err error) bool {
	return errors.Is(err, ErrUserLocked)
}
