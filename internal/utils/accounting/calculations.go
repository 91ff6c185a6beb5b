// Package accounting holds the double-entry sign and tolerance rules shared
// by the journal, ledger and reporting services.
package accounting

import (
	"github.com/pymeledger/pymeledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Tolerance is the fixed absolute tolerance, in currency units, under which
// two sums are considered equal. It accommodates summation drift from
// upstream systems and is deliberately not configurable per entry.
var Tolerance = decimal.New(1, -2) // 0.01

// WithinTolerance reports whether |a - b| < Tolerance.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(Tolerance)
}

// SignedAmount applies the correct sign to a movement amount given the
// nature of the affected account: a movement in the account's
// nature-increasing direction counts positive, the opposite direction
// counts negative.
//
// DEBIT to a debit-natured account  -> +amount
// CREDIT to a debit-natured account -> -amount
// CREDIT to a credit-natured account -> +amount
// DEBIT to a credit-natured account  -> -amount
func SignedAmount(direction domain.MovementDirection, nature domain.AccountNature, amount decimal.Decimal) decimal.Decimal {
	isDebit := direction == domain.Debit
	increasesWithDebit := nature == domain.DebitNature
	if isDebit == increasesWithDebit {
		return amount
	}
	return amount.Neg()
}
