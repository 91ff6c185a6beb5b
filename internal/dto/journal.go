package dto

import (
	"time"

	"github.com/pymeledger/pymeledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMovementRequest is one debit or credit line in a new entry.
type CreateMovementRequest struct {
	AccountID   string                   `json:"accountID" validate:"required"`
	Direction   domain.MovementDirection `json:"direction" validate:"required,oneof=DEBIT CREDIT"`
	Amount      decimal.Decimal          `json:"amount" validate:"required"`
	Description string                   `json:"description" validate:"max=500"`
	Order       int                      `json:"order"`
}

// CreateEntryRequest defines the data needed to create a DRAFT journal
// entry. Structural and balance invariants are enforced at validation time,
// not creation time.
type CreateEntryRequest struct {
	Date        time.Time               `json:"date" validate:"required"`
	Description string                  `json:"description" validate:"required,max=500"`
	Reference   string                  `json:"reference" validate:"max=50"`
	EntryType   domain.EntryType        `json:"entryType" validate:"required,oneof=OPENING OPERATION ADJUSTMENT CLOSING"`
	Movements   []CreateMovementRequest `json:"movements" validate:"required,min=1,dive"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID        string             `json:"entryID"`
	SequenceNumber int64              `json:"sequenceNumber"`
	Date           time.Time          `json:"date"`
	Description    string             `json:"description"`
	Reference      string             `json:"reference"`
	EntryType      domain.EntryType   `json:"entryType"`
	Status         domain.EntryStatus `json:"status"`
	TotalDebits    decimal.Decimal    `json:"totalDebits"`
	TotalCredits   decimal.Decimal    `json:"totalCredits"`
	Movements      []MovementResponse `json:"movements"`
}

// MovementResponse mirrors domain.Movement for presentation.
type MovementResponse struct {
	MovementID  string                   `json:"movementID"`
	AccountID   string                   `json:"accountID"`
	Direction   domain.MovementDirection `json:"direction"`
	Amount      decimal.Decimal          `json:"amount"`
	Description string                   `json:"description"`
	Order       int                      `json:"order"`
}

// ToEntryResponse converts a domain.JournalEntry to its response DTO.
func ToEntryResponse(entry *domain.JournalEntry) EntryResponse {
	movements := make([]MovementResponse, len(entry.Movements))
	for i, m := range entry.Movements {
		movements[i] = MovementResponse{
			MovementID:  m.MovementID,
			AccountID:   m.AccountID,
			Direction:   m.Direction,
			Amount:      m.Amount,
			Description: m.Description,
			Order:       m.Order,
		}
	}
	return EntryResponse{
		EntryID:        entry.EntryID,
		SequenceNumber: entry.SequenceNumber,
		Date:           entry.Date,
		Description:    entry.Description,
		Reference:      entry.Reference,
		EntryType:      entry.EntryType,
		Status:         entry.Status,
		TotalDebits:    entry.TotalDebits,
		TotalCredits:   entry.TotalCredits,
		Movements:      movements,
	}
}
