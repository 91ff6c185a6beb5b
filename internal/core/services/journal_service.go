package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pymeledger/pymeledger/internal/apperrors"
	"github.com/pymeledger/pymeledger/internal/core/domain"
	portsrepo "github.com/pymeledger/pymeledger/internal/core/ports/repositories"
	portssvc "github.com/pymeledger/pymeledger/internal/core/ports/services"
	"github.com/pymeledger/pymeledger/internal/dto"
	"github.com/pymeledger/pymeledger/internal/platform/logging"
	"github.com/pymeledger/pymeledger/internal/utils/accounting"
	"github.com/pymeledger/pymeledger/internal/utils/validation"
	"github.com/shopspring/decimal"
)

// journalService drives journal entries through
// DRAFT -> VALIDATED -> POSTED, or DRAFT/VALIDATED -> VOIDED.
type journalService struct {
	journalRepo portsrepo.JournalRepository
	accountSvc  portssvc.AccountSvcFacade

	// postMu serializes posting: sequence numbers must come out strictly
	// increasing and gapless even under concurrent PostEntry calls.
	postMu sync.Mutex
}

// NewJournalService creates the journal entry service.
func NewJournalService(journalRepo portsrepo.JournalRepository, accountSvc portssvc.AccountSvcFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateEntry records a new DRAFT entry. Balance and structural invariants
// are deferred to ValidateEntry; only DTO-level shape is enforced here.
func (s *journalService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error) {
	logger := logging.FromCtx(ctx)

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	movements := make([]domain.Movement, len(req.Movements))
	for i, m := range req.Movements {
		order := m.Order
		if order == 0 {
			order = i + 1
		}
		movements[i] = domain.Movement{
			MovementID:  uuid.NewString(),
			EntryID:     entryID,
			AccountID:   m.AccountID,
			Direction:   m.Direction,
			Amount:      m.Amount,
			Description: m.Description,
			Order:       order,
		}
	}

	entry := domain.JournalEntry{
		EntryID:     entryID,
		Date:        req.Date,
		Description: req.Description,
		Reference:   req.Reference,
		EntryType:   req.EntryType,
		Status:      domain.Draft,
		Movements:   movements,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		logger.Error("Failed to save entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	logger.Info("Journal entry created",
		slog.String("entry_id", entry.EntryID),
		slog.Int("movements", len(entry.Movements)))
	return &entry, nil
}

// checkMovements enforces the structural invariants: at least two movements,
// strictly positive amounts, and every account resolving to an active
// account in the registry.
func (s *journalService) checkMovements(ctx context.Context, movements []domain.Movement) error {
	if len(movements) < 2 {
		return &apperrors.InvalidMovementError{Reason: "entry must have at least two movements"}
	}

	accountIDs := make([]string, 0, len(movements))
	seen := make(map[string]bool, len(movements))
	for _, m := range movements {
		if m.Amount.LessThanOrEqual(decimal.Zero) {
			return &apperrors.InvalidMovementError{
				Reason: fmt.Sprintf("amount must be positive for account %s", m.AccountID),
			}
		}
		if !seen[m.AccountID] {
			seen[m.AccountID] = true
			accountIDs = append(accountIDs, m.AccountID)
		}
	}

	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range accountIDs {
		account, found := accounts[id]
		if !found {
			return &apperrors.InvalidMovementError{Reason: fmt.Sprintf("account %s does not exist", id)}
		}
		if !account.IsActive {
			return &apperrors.InvalidMovementError{Reason: fmt.Sprintf("account %s is inactive", account.Code)}
		}
	}
	return nil
}

// ValidateEntry enforces the structural and balance invariants and moves a
// DRAFT entry to VALIDATED, recording its totals. Validating an already
// VALIDATED entry is an idempotent no-op. On failure the entry stays DRAFT
// with no side effects.
func (s *journalService) ValidateEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	logger := logging.FromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	switch entry.Status {
	case domain.Validated:
		return entry, nil
	case domain.Draft:
		// proceed
	default:
		return nil, fmt.Errorf("cannot validate %s entry %s: %w", entry.Status, entryID, apperrors.ErrInvalidState)
	}

	if err := s.checkMovements(ctx, entry.Movements); err != nil {
		return nil, err
	}

	entry.ComputeTotals()
	if !accounting.WithinTolerance(entry.TotalDebits, entry.TotalCredits) {
		unbalanced := &apperrors.UnbalancedEntryError{
			TotalDebits:  entry.TotalDebits,
			TotalCredits: entry.TotalCredits,
			Difference:   entry.TotalDebits.Sub(entry.TotalCredits),
		}
		logger.Info("Entry failed balance validation",
			slog.String("entry_id", entryID),
			slog.String("difference", unbalanced.Difference.String()))
		return nil, unbalanced
	}

	entry.Status = domain.Validated
	entry.LastUpdatedAt = time.Now().UTC()
	if err := s.journalRepo.UpdateEntry(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to update entry %s: %w", entryID, err)
	}

	logger.Info("Journal entry validated",
		slog.String("entry_id", entryID),
		slog.String("total_debits", entry.TotalDebits.String()))
	return entry, nil
}

// PostEntry finalizes a VALIDATED entry: it assigns the next sequence
// number, marks the entry POSTED and applies the movement deltas to the
// registry balances. Posting is serialized so sequence numbers are unique,
// strictly increasing and gapless. A failed post leaves the entry VALIDATED
// and the balances untouched.
func (s *journalService) PostEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	logger := logging.FromCtx(ctx)

	s.postMu.Lock()
	defer s.postMu.Unlock()

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.Validated {
		return nil, fmt.Errorf("cannot post %s entry %s: %w", entry.Status, entryID, apperrors.ErrInvalidState)
	}

	// Resolve accounts and compute deltas before assigning a sequence
	// number, so nothing can fail afterwards.
	accountIDs := make([]string, 0, len(entry.Movements))
	for _, m := range entry.Movements {
		accountIDs = append(accountIDs, m.AccountID)
	}
	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	deltas := make(map[string]decimal.Decimal)
	for _, m := range entry.Movements {
		account, found := accounts[m.AccountID]
		if !found {
			return nil, fmt.Errorf("account %s: %w", m.AccountID, apperrors.ErrNotFound)
		}
		signed := accounting.SignedAmount(m.Direction, account.Nature, m.Amount)
		deltas[m.AccountID] = deltas[m.AccountID].Add(signed)
	}

	seq, err := s.journalRepo.NextSequenceNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assign sequence number: %w", err)
	}

	// Balances first, the entry update as the commit point: a failure here
	// leaves the entry VALIDATED with untouched balances, never a POSTED
	// entry whose balances were not applied.
	if err := s.accountSvc.ApplyBalanceChanges(ctx, deltas); err != nil {
		return nil, fmt.Errorf("failed to apply balance changes for entry %s: %w", entryID, err)
	}

	entry.SequenceNumber = seq
	entry.Status = domain.Posted
	entry.LastUpdatedAt = time.Now().UTC()
	if err := s.journalRepo.UpdateEntry(ctx, *entry); err != nil {
		// Roll the deltas back so balances keep matching the posted history.
		reverted := make(map[string]decimal.Decimal, len(deltas))
		for id, delta := range deltas {
			reverted[id] = delta.Neg()
		}
		if revertErr := s.accountSvc.ApplyBalanceChanges(ctx, reverted); revertErr != nil {
			logger.Error("Failed to revert balance changes",
				slog.String("entry_id", entryID),
				slog.String("error", revertErr.Error()))
		}
		return nil, fmt.Errorf("failed to update entry %s: %w", entryID, err)
	}

	logger.Info("Journal entry posted",
		slog.String("entry_id", entryID),
		slog.Int64("sequence_number", seq))
	return entry, nil
}

// VoidEntry cancels a DRAFT or VALIDATED entry. Posted entries are
// immutable: reversing one takes a new compensating entry, never a
// mutation.
func (s *journalService) VoidEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	logger := logging.FromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	switch entry.Status {
	case domain.Draft, domain.Validated:
		// proceed
	default:
		return nil, fmt.Errorf("cannot void %s entry %s: %w", entry.Status, entryID, apperrors.ErrInvalidState)
	}

	entry.Status = domain.Voided
	entry.LastUpdatedAt = time.Now().UTC()
	if err := s.journalRepo.UpdateEntry(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to update entry %s: %w", entryID, err)
	}

	logger.Info("Journal entry voided", slog.String("entry_id", entryID))
	return entry, nil
}

func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	return s.journalRepo.FindEntryByID(ctx, entryID)
}

func (s *journalService) GetEntryBySequence(ctx context.Context, sequenceNumber int64) (*domain.JournalEntry, error) {
	return s.journalRepo.FindEntryBySequence(ctx, sequenceNumber)
}

func (s *journalService) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	return s.journalRepo.ListEntries(ctx)
}

// ListEntriesByPeriod returns the journal book restricted to entries dated
// within [from, to] inclusive.
func (s *journalService) ListEntriesByPeriod(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: %s is after %s", apperrors.ErrInvalidRange,
			from.Format(time.DateOnly), to.Format(time.DateOnly))
	}
	entries, err := s.journalRepo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Date.Before(from) || entry.Date.After(to) {
			continue
		}
		matched = append(matched, entry)
	}
	return matched, nil
}

// SearchEntries matches text case-insensitively against entry descriptions.
func (s *journalService) SearchEntries(ctx context.Context, text string) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(text)
	matched := make([]domain.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Description), needle) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}
