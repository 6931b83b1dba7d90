package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/point-ledger/internal/domain/error"
)

// statusFor maps a domain error code to its HTTP status
func statusFor(code int) int {
	switch code {
	case domainerr.CodeInvalidRequest, domainerr.CodeInvalidAmount, domainerr.CodeInvalidUserID:
		return http.StatusBadRequest
	case domainerr.CodeInsufficientFunds, domainerr.CodeCapExceeded:
		return http.StatusUnprocessableEntity
	case domainerr.CodeUserLocked:
		return http.StatusConflict
	case domainerr.CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// messageFor returns the client-facing message for an error.
// Validation failures echo their kind; anything else is reported generically.
func messageFor(code int) string {
	switch code {
	case domainerr.CodeInvalidAmount:
		return domainerr.ErrInvalidAmount.Error()
	case domainerr.CodeInsufficientFunds:
		return domainerr.ErrInsufficientFunds.Error()
	case domainerr.CodeCapExceeded:
		return domainerr.ErrCapExceeded.Error()
	case domainerr.CodeInvalidUserID:
		return "Invalid user ID"
	case domainerr.CodeInvalidRequest:
		return "Invalid request format"
	case domainerr.CodeUserLocked:
		return "User is busy with another operation. Please try again."
	case domainerr.CodeServiceUnavailable:
		return "Request canceled or timed out"
	default:
		return "Internal server error"
	}
}
