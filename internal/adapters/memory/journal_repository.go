package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/pymeledger/pymeledger/internal/apperrors"
	"github.com/pymeledger/pymeledger/internal/core/domain"
	portsrepo "github.com/pymeledger/pymeledger/internal/core/ports/repositories"
)

// JournalRepository is a mutex-guarded in-memory journal book. It owns the
// sequence counter: numbers are handed out strictly increasing and are never
// reused.
type JournalRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.JournalEntry
	order   []string // creation order of entry IDs
	lastSeq int64
}

// NewJournalRepository creates an empty in-memory journal repository.
func NewJournalRepository() *JournalRepository {
	return &JournalRepository{
		byID: make(map[string]domain.JournalEntry),
	}
}

var _ portsrepo.JournalRepository = (*JournalRepository)(nil)

func (r *JournalRepository) SaveEntry(_ context.Context, entry domain.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[entry.EntryID]; exists {
		return fmt.Errorf("entry %s: %w", entry.EntryID, apperrors.ErrValidation)
	}
	r.byID[entry.EntryID] = cloneEntry(entry)
	r.order = append(r.order, entry.EntryID)
	return nil
}

func (r *JournalRepository) FindEntryByID(_ context.Context, entryID string) (*domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byID[entryID]
	if !ok {
		return nil, fmt.Errorf("entry %s: %w", entryID, apperrors.ErrNotFound)
	}
	entry = cloneEntry(entry)
	return &entry, nil
}

func (r *JournalRepository) FindEntryBySequence(_ context.Context, sequenceNumber int64) (*domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.byID {
		if entry.Status == domain.Posted && entry.SequenceNumber == sequenceNumber {
			entry = cloneEntry(entry)
			return &entry, nil
		}
	}
	return nil, fmt.Errorf("entry with sequence %d: %w", sequenceNumber, apperrors.ErrNotFound)
}

// ListEntries returns posted entries in sequence order first, then the rest
// in creation order.
func (r *JournalRepository) ListEntries(_ context.Context) ([]domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posted := make([]domain.JournalEntry, 0, len(r.byID))
	others := make([]domain.JournalEntry, 0, len(r.byID))
	for _, id := range r.order {
		entry := cloneEntry(r.byID[id])
		if entry.Status == domain.Posted {
			posted = append(posted, entry)
		} else {
			others = append(others, entry)
		}
	}
	sort.SliceStable(posted, func(i, j int) bool {
		return posted[i].SequenceNumber < posted[j].SequenceNumber
	})
	return append(posted, others...), nil
}

func (r *JournalRepository) ListPostedEntries(_ context.Context) ([]domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posted := make([]domain.JournalEntry, 0, len(r.byID))
	for _, entry := range r.byID {
		if entry.Status == domain.Posted {
			posted = append(posted, cloneEntry(entry))
		}
	}
	sort.SliceStable(posted, func(i, j int) bool {
		return posted[i].SequenceNumber < posted[j].SequenceNumber
	})
	return posted, nil
}

func (r *JournalRepository) UpdateEntry(_ context.Context, entry domain.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[entry.EntryID]; !ok {
		return fmt.Errorf("entry %s: %w", entry.EntryID, apperrors.ErrNotFound)
	}
	r.byID[entry.EntryID] = cloneEntry(entry)
	return nil
}

// NextSequenceNumber increments and returns the counter. The counter only
// moves forward, so a voided entry never frees its number.
func (r *JournalRepository) NextSequenceNumber(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastSeq++
	return r.lastSeq, nil
}

// cloneEntry copies an entry including its movements so callers never hold
// references into the repository's storage.
func cloneEntry(entry domain.JournalEntry) domain.JournalEntry {
	movements := make([]domain.Movement, len(entry.Movements))
	copy(movements, entry.Movements)
	entry.Movements = movements
	return entry
}
