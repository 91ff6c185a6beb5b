// Package memory provides in-memory repository adapters. The core is a
// library with no persistence surface; these adapters hold the working set
// supplied by the caller for the lifetime of the process.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/pymeledger/pymeledger/internal/apperrors"
	"github.com/pymeledger/pymeledger/internal/core/domain"
	portsrepo "github.com/pymeledger/pymeledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// AccountRepository is a mutex-guarded in-memory chart of accounts.
type AccountRepository struct {
	mu       sync.RWMutex
	byID     map[string]domain.Account
	codeToID map[string]string
}

// NewAccountRepository creates an empty in-memory account repository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byID:     make(map[string]domain.Account),
		codeToID: make(map[string]string),
	}
}

var _ portsrepo.AccountRepository = (*AccountRepository)(nil)

// SaveAccount stores a new account. The code index covers active and
// inactive accounts alike, so a deactivated account still reserves its code.
func (r *AccountRepository) SaveAccount(_ context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[account.AccountID]; exists {
		return fmt.Errorf("account %s: %w", account.AccountID, apperrors.ErrValidation)
	}
	if _, taken := r.codeToID[account.Code]; taken {
		return fmt.Errorf("code %s: %w", account.Code, apperrors.ErrDuplicateCode)
	}
	r.byID[account.AccountID] = account
	r.codeToID[account.Code] = account.AccountID
	return nil
}

func (r *AccountRepository) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[accountID]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return &account, nil
}

func (r *AccountRepository) FindAccountByCode(_ context.Context, code string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.codeToID[code]
	if !ok {
		return nil, fmt.Errorf("account code %s: %w", code, apperrors.ErrNotFound)
	}
	account := r.byID[id]
	return &account, nil
}

// FindAccountsByIDs returns the accounts that exist, keyed by ID. Missing
// IDs are simply absent from the result; callers decide whether that is an
// error.
func (r *AccountRepository) FindAccountsByIDs(_ context.Context, accountIDs []string) (map[string]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if account, ok := r.byID[id]; ok {
			result[id] = account
		}
	}
	return result, nil
}

func (r *AccountRepository) ListAccounts(_ context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(r.byID))
	for _, account := range r.byID {
		accounts = append(accounts, account)
	}
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].Code < accounts[j].Code
	})
	return accounts, nil
}

func (r *AccountRepository) UpdateAccount(_ context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[account.AccountID]
	if !ok {
		return fmt.Errorf("account %s: %w", account.AccountID, apperrors.ErrNotFound)
	}
	if stored.Code != account.Code {
		return fmt.Errorf("account code is immutable: %w", apperrors.ErrValidation)
	}
	r.byID[account.AccountID] = account
	return nil
}

// ApplyBalanceChanges adds each delta to its account's balance under a
// single lock acquisition, so a posted entry lands atomically.
func (r *AccountRepository) ApplyBalanceChanges(_ context.Context, deltas map[string]decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id := range deltas {
		if _, ok := r.byID[id]; !ok {
			return fmt.Errorf("account %s: %w", id, apperrors.ErrNotFound)
		}
	}
	for id, delta := range deltas {
		account := r.byID[id]
		account.Balance = account.Balance.Add(delta)
		r.byID[id] = account
	}
	return nil
}
