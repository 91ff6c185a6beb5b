package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies a journal entry within the accounting cycle.
type EntryType string

const (
	Opening    EntryType = "OPENING"
	Operation  EntryType = "OPERATION"
	Adjustment EntryType = "ADJUSTMENT"
	Closing    EntryType = "CLOSING"
)

// EntryStatus is the state of a journal entry. Entries move forward only:
// DRAFT -> VALIDATED -> POSTED, or DRAFT/VALIDATED -> VOIDED.
// POSTED and VOIDED are terminal.
type EntryStatus string

const (
	Draft     EntryStatus = "DRAFT"
	Validated EntryStatus = "VALIDATED"
	Posted    EntryStatus = "POSTED"
	Voided    EntryStatus = "VOIDED"
)

// MovementDirection indicates whether a movement is a debit or a credit.
type MovementDirection string

const (
	Debit  MovementDirection = "DEBIT"
	Credit MovementDirection = "CREDIT"
)

// Movement is a single debit or credit line within a journal entry,
// affecting one account. Movements are exclusively owned by their parent
// entry and are never shared or referenced independently.
type Movement struct {
	MovementID  string            `json:"movementID"`  // Primary key (UUID)
	EntryID     string            `json:"entryID"`     // Parent entry
	AccountID   string            `json:"accountID"`   // Affected account
	Direction   MovementDirection `json:"direction"`   // DEBIT or CREDIT
	Amount      decimal.Decimal   `json:"amount"`      // Strictly positive
	Description string            `json:"description"` // Optional; entry description applies when empty
	Order       int               `json:"order"`       // Display/application order within the entry
}

// EffectiveDescription returns the movement description, falling back to the
// given entry description when the movement has none of its own.
func (m Movement) EffectiveDescription(entryDescription string) string {
	if m.Description != "" {
		return m.Description
	}
	return entryDescription
}

// JournalEntry is a single balanced financial event composed of at least two
// movements. SequenceNumber is assigned at posting time only; it is unique,
// strictly increasing and gapless across the ledger, and never reused even
// when other entries are voided.
type JournalEntry struct {
	EntryID        string          `json:"entryID"`        // Primary key (UUID)
	SequenceNumber int64           `json:"sequenceNumber"` // 0 until posted
	Date           time.Time       `json:"date"`           // Date of the business event
	Description    string          `json:"description"`
	Reference      string          `json:"reference"` // Invoice/receipt number, optional
	EntryType      EntryType       `json:"entryType"`
	Status         EntryStatus     `json:"status"`
	Movements      []Movement      `json:"movements"`
	TotalDebits    decimal.Decimal `json:"totalDebits"`  // Recorded at validation
	TotalCredits   decimal.Decimal `json:"totalCredits"` // Recorded at validation
	AuditFields
}

// ComputeTotals sums the entry's movements into TotalDebits and TotalCredits.
func (e *JournalEntry) ComputeTotals() {
	debits := decimal.Zero
	credits := decimal.Zero
	for _, m := range e.Movements {
		if m.Direction == Debit {
			debits = debits.Add(m.Amount)
		} else {
			credits = credits.Add(m.Amount)
		}
	}
	e.TotalDebits = debits
	e.TotalCredits = credits
}
