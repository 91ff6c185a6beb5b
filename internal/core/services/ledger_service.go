package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pymeledger/pymeledger/internal/apperrors"
	"github.com/pymeledger/pymeledger/internal/core/domain"
	portsrepo "github.com/pymeledger/pymeledger/internal/core/ports/repositories"
	portssvc "github.com/pymeledger/pymeledger/internal/core/ports/services"
	"github.com/pymeledger/pymeledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ApplyEntry folds a single POSTED entry into an existing balance map. Each
// movement adds +amount when its direction matches the account's nature and
// -amount otherwise. The map is mutated in place.
func ApplyEntry(balances map[string]decimal.Decimal, accounts map[string]domain.Account, entry domain.JournalEntry) error {
	if entry.Status != domain.Posted {
		return fmt.Errorf("entry %s is %s, not POSTED: %w", entry.EntryID, entry.Status, apperrors.ErrInvalidState)
	}
	for _, m := range entry.Movements {
		account, ok := accounts[m.AccountID]
		if !ok {
			return fmt.Errorf("account %s: %w", m.AccountID, apperrors.ErrNotFound)
		}
		signed := accounting.SignedAmount(m.Direction, account.Nature, m.Amount)
		balances[m.AccountID] = balances[m.AccountID].Add(signed)
	}
	return nil
}

// ApplyPosted re-derives every account balance from scratch: a pure fold of
// the POSTED entries (ordered by sequence number) over the accounts' opening
// balances. Entries in any other status are skipped, which keeps voided
// entries out of the ledger. Incremental application via ApplyEntry must
// always produce the same result as this fold.
func ApplyPosted(accounts map[string]domain.Account, entries []domain.JournalEntry) (map[string]decimal.Decimal, error) {
	balances := make(map[string]decimal.Decimal, len(accounts))
	for id, account := range accounts {
		balances[id] = account.OpeningBalance
	}
	for _, entry := range entries {
		if entry.Status != domain.Posted {
			continue
		}
		if err := ApplyEntry(balances, accounts, entry); err != nil {
			return nil, err
		}
	}
	return balances, nil
}

// ByPeriod returns the POSTED entries dated within [from, to] inclusive,
// preserving input order.
func ByPeriod(entries []domain.JournalEntry, from, to time.Time) ([]domain.JournalEntry, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: %s is after %s", apperrors.ErrInvalidRange,
			from.Format(time.DateOnly), to.Format(time.DateOnly))
	}
	matched := make([]domain.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Status != domain.Posted {
			continue
		}
		if entry.Date.Before(from) || entry.Date.After(to) {
			continue
		}
		matched = append(matched, entry)
	}
	return matched, nil
}

// ledgerService wires the pure folds to the repositories.
type ledgerService struct {
	accountRepo portsrepo.AccountRepository
	journalRepo portsrepo.JournalRepository
}

// NewLedgerService creates the ledger aggregation service.
func NewLedgerService(accountRepo portsrepo.AccountRepository, journalRepo portsrepo.JournalRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) snapshotAccounts(ctx context.Context) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Account, len(accounts))
	for _, account := range accounts {
		byID[account.AccountID] = account
	}
	return byID, nil
}

// DeriveBalances folds the entire posted history over opening balances.
func (s *ledgerService) DeriveBalances(ctx context.Context) (map[string]decimal.Decimal, error) {
	accounts, err := s.snapshotAccounts(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.journalRepo.ListPostedEntries(ctx)
	if err != nil {
		return nil, err
	}
	return ApplyPosted(accounts, entries)
}

// DeriveBalancesByPeriod folds only the period's posted entries, seeded from
// zero: the result is period activity, which is what income statements
// consume.
func (s *ledgerService) DeriveBalancesByPeriod(ctx context.Context, from, to time.Time) (map[string]decimal.Decimal, error) {
	accounts, err := s.snapshotAccounts(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.journalRepo.ListPostedEntries(ctx)
	if err != nil {
		return nil, err
	}
	inRange, err := ByPeriod(entries, from, to)
	if err != nil {
		return nil, err
	}
	balances := make(map[string]decimal.Decimal, len(accounts))
	for _, entry := range inRange {
		if err := ApplyEntry(balances, accounts, entry); err != nil {
			return nil, err
		}
	}
	return balances, nil
}
