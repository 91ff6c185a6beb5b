package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicateCode indicates that an account code is already taken,
// by an active or an inactive account.
var ErrDuplicateCode = errors.New("account code already exists")

// ErrInvalidNature indicates an account nature inconsistent with its type
// (assets and expenses are debit-natured, everything else credit-natured).
var ErrInvalidNature = errors.New("account nature does not match account type")

// ErrInvalidState indicates an entry state transition that the journal
// state machine does not permit.
var ErrInvalidState = errors.New("operation not permitted in current entry status")

// ErrInvalidRange indicates a period whose start date is after its end date.
var ErrInvalidRange = errors.New("invalid date range")

// UnbalancedEntryError reports a journal entry whose debits and credits do
// not match within the balance tolerance. It carries both totals so callers
// can surface the exact discrepancy.
type UnbalancedEntryError struct {
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
	Difference   decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("entry is not balanced: debits %s, credits %s, difference %s",
		e.TotalDebits.String(), e.TotalCredits.String(), e.Difference.String())
}

// Is makes errors.Is(err, ErrValidation) hold for unbalanced entries.
func (e *UnbalancedEntryError) Is(target error) bool {
	return target == ErrValidation
}

// InvalidMovementError reports a structurally invalid movement inside a
// journal entry (missing account, inactive account, non-positive amount...).
type InvalidMovementError struct {
	Reason string
}

func (e *InvalidMovementError) Error() string {
	return fmt.Sprintf("invalid movement: %s", e.Reason)
}

// Is makes errors.Is(err, ErrValidation) hold for invalid movements.
func (e *InvalidMovementError) Is(target error) bool {
	return target == ErrValidation
}
