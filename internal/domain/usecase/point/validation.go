package point

import (
	"fmt"

	errs "github.com/amirhossein-jamali/point-ledger/internal/domain/error"
)

// Validator checks request arguments before any user slot is taken
type Validator struct{}

// NewValidator creates a new Validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateUserID rejects the zero user ID
func (v *Validator) ValidateUserID(userID uint64) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}
	return nil
}

// ValidateMutation checks the arguments of a charge or use.
// Cap and funds checks need the current balance and happen under the user's slot.
func (v *Validator) ValidateMutation(userID uint64, amount int64) error {
	if err := v.ValidateUserID(userID); err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidAmount, amount)
	}
	return nil
}
