package services

import (
	"context"
	"time"

	"github.com/pymeledger/pymeledger/internal/core/domain"
)

// ReportingSvcFacade produces the trial balance and the financial
// statements from derived balances. All report builders are pure functions
// of their inputs; the facade only wires repository snapshots into them.
type ReportingSvcFacade interface {
	TrialBalance(ctx context.Context, asOf time.Time, filter domain.TrialBalanceFilter) (*domain.TrialBalance, error)
	BalanceSheet(ctx context.Context, asOf time.Time, policy domain.ClassificationPolicy) (*domain.BalanceSheet, error)
	IncomeStatement(ctx context.Context, from, to time.Time, policy domain.ClassificationPolicy) (*domain.IncomeStatement, error)
}
