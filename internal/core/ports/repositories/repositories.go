// Package repositories defines the persistence ports the core services
// depend on. Adapters (in-memory today) implement these interfaces.
package repositories

import (
	"context"

	"github.com/pymeledger/pymeledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountRepository stores the chart of accounts.
type AccountRepository interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error
	// FindAccountByID returns the account or apperrors.ErrNotFound.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	// FindAccountByCode looks up by chart code, active or inactive.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	// FindAccountsByIDs returns the subset of accounts that exist, keyed by ID.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	// ListAccounts returns every account, active and inactive, ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	// UpdateAccount replaces the stored account identified by AccountID.
	UpdateAccount(ctx context.Context, account domain.Account) error
	// ApplyBalanceChanges atomically adds the given deltas to account balances.
	ApplyBalanceChanges(ctx context.Context, deltas map[string]decimal.Decimal) error
}

// JournalRepository stores journal entries and owns sequence number
// generation for posting.
type JournalRepository interface {
	// SaveEntry persists a new entry.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error
	// FindEntryByID returns the entry or apperrors.ErrNotFound.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	// FindEntryBySequence returns the posted entry holding the sequence number.
	FindEntryBySequence(ctx context.Context, sequenceNumber int64) (*domain.JournalEntry, error)
	// ListEntries returns all entries, posted ones first in sequence order,
	// then the rest in creation order.
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)
	// ListPostedEntries returns POSTED entries ordered by sequence number.
	ListPostedEntries(ctx context.Context) ([]domain.JournalEntry, error)
	// UpdateEntry replaces the stored entry identified by EntryID.
	UpdateEntry(ctx context.Context, entry domain.JournalEntry) error
	// NextSequenceNumber hands out the next unused sequence number. Numbers
	// are strictly increasing and never reused, even across voided entries.
	NextSequenceNumber(ctx context.Context) (int64, error)
}
