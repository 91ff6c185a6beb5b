// Package services defines the service facades exposed by the core.
package services

import (
	"context"
	"iter"

	"github.com/pymeledger/pymeledger/internal/core/domain"
	"github.com/pymeledger/pymeledger/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountSvcFacade is the account registry: it owns the chart of accounts
// and enforces code uniqueness and type/nature consistency.
type AccountSvcFacade interface {
	RegisterAccount(ctx context.Context, req dto.RegisterAccountRequest) (*domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	// DeactivateAccount soft-deactivates; idempotent when already inactive.
	DeactivateAccount(ctx context.Context, accountID string) error
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListActiveAccounts(ctx context.Context) ([]domain.Account, error)
	ListAccountsByType(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error)
	// SearchAccounts matches text case-insensitively against code or name.
	// The returned sequence is lazy, finite and restartable.
	SearchAccounts(ctx context.Context, text string) (iter.Seq[domain.Account], error)
	// ApplyBalanceChanges is reserved for the posting path; callers must
	// never mutate balances directly.
	ApplyBalanceChanges(ctx context.Context, deltas map[string]decimal.Decimal) error
}
