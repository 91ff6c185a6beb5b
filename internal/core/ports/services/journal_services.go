package services

import (
	"context"
	"time"

	"github.com/pymeledger/pymeledger/internal/core/domain"
	"github.com/pymeledger/pymeledger/internal/dto"
)

// JournalSvcFacade drives the journal entry state machine:
// DRAFT -> VALIDATED -> POSTED, with DRAFT/VALIDATED -> VOIDED.
type JournalSvcFacade interface {
	// CreateEntry records a new DRAFT entry without enforcing balance.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error)
	// ValidateEntry enforces the structural and balance invariants and moves
	// the entry to VALIDATED. Validating an already VALIDATED entry is a
	// no-op. On failure the entry stays DRAFT, untouched.
	ValidateEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	// PostEntry assigns the next sequence number, marks the entry POSTED and
	// applies its balance deltas to the registry. Requires VALIDATED.
	PostEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	// VoidEntry cancels a DRAFT or VALIDATED entry. Posted entries are
	// immutable; reversal takes a new compensating entry.
	VoidEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	GetEntryBySequence(ctx context.Context, sequenceNumber int64) (*domain.JournalEntry, error)
	// ListEntries returns the journal book.
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)
	// ListEntriesByPeriod returns entries dated within [from, to] inclusive.
	ListEntriesByPeriod(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error)
	// SearchEntries matches text case-insensitively against descriptions.
	SearchEntries(ctx context.Context, text string) ([]domain.JournalEntry, error)
}
