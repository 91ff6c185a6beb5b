package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerSvcFacade derives per-account balances from the posted entry
// history. Derivation is a pure fold: running it from scratch always matches
// incremental application of each newly posted entry.
type LedgerSvcFacade interface {
	// DeriveBalances folds the full posted history into balances keyed by
	// account ID, seeded from opening balances.
	DeriveBalances(ctx context.Context) (map[string]decimal.Decimal, error)
	// DeriveBalancesByPeriod folds only POSTED entries dated within
	// [from, to] inclusive, seeded from zero.
	DeriveBalancesByPeriod(ctx context.Context, from, to time.Time) (map[string]decimal.Decimal, error)
}
