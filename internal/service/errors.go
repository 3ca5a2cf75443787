package service

import (
	"errors"
)

// Validation errors. Handlers map these to 400 responses; anything else
// coming out of a service is a store failure and surfaces as 500.
var (
	ErrInvalidMonthFormat     = errors.New("invalid month, expected YYYY-MM")
	ErrInvalidDateFormat      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrNonPositiveAmount      = errors.New("amount must be greater than zero")
	ErrInvalidTransactionType = errors.New(`type must be "income" or "expense"`)
	ErrUnknownCategory        = errors.New("category is not in the active category set")
)

// IsValidationError reports whether err is a rejected-input error rather
// than a store failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidMonthFormat) ||
		errors.Is(err, ErrInvalidDateFormat) ||
		errors.Is(err, ErrNonPositiveAmount) ||
		errors.Is(err, ErrInvalidTransactionType) ||
		errors.Is(err, ErrUnknownCategory)
}
