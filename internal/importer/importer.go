// Package importer reads chart-of-accounts and journal CSV files supplied
// by the caller. It is driver-side I/O: the core never touches files.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pymeledger/pymeledger/internal/core/domain"
	"github.com/pymeledger/pymeledger/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountsHeader is the expected header of an accounts CSV.
const AccountsHeader = "code,name,type,nature,opening_balance,description"

// JournalHeader is the expected header of a journal CSV. Rows sharing an
// entry_id form one journal entry; movement order follows row order.
const JournalHeader = "entry_id,date,type,description,reference,account_code,direction,amount"

const dateFormat = "2006-01-02"

// Entry is one journal entry read from CSV, with movements referencing
// accounts by chart code. The caller resolves codes to account IDs after
// registering the chart.
type Entry struct {
	ExternalID  string
	Date        time.Time
	EntryType   domain.EntryType
	Description string
	Reference   string
	Movements   []EntryMovement
}

// EntryMovement is one CSV journal row's movement part.
type EntryMovement struct {
	AccountCode string
	Direction   domain.MovementDirection
	Amount      decimal.Decimal
}

// checkHeader rejects files whose first row is not the expected header, so
// a headerless CSV cannot silently lose its first data row.
func checkHeader(row []string, want string) error {
	if got := strings.Join(row, ","); got != want {
		return fmt.Errorf("unexpected header %q, want %q", got, want)
	}
	return nil
}

// ReadAccounts parses an accounts CSV into register requests.
func ReadAccounts(r io.Reader) ([]dto.RegisterAccountRequest, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 6

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	if err := checkHeader(records[0], AccountsHeader); err != nil {
		return nil, fmt.Errorf("accounts CSV: %w", err)
	}

	var accounts []dto.RegisterAccountRequest
	for i, rec := range records[1:] {
		opening := decimal.Zero
		if rec[4] != "" {
			opening, err = decimal.NewFromString(rec[4])
			if err != nil {
				return nil, fmt.Errorf("row %d: opening balance %q: %w", i+2, rec[4], err)
			}
		}
		accounts = append(accounts, dto.RegisterAccountRequest{
			Code:           rec[0],
			Name:           rec[1],
			AccountType:    domain.AccountType(rec[2]),
			Nature:         domain.AccountNature(rec[3]),
			OpeningBalance: opening,
			Description:    rec[5],
		})
	}
	return accounts, nil
}

// ReadEntries parses a journal CSV, grouping rows by entry_id in order of
// first appearance and keeping movement order within each entry.
func ReadEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 8

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	if err := checkHeader(records[0], JournalHeader); err != nil {
		return nil, fmt.Errorf("journal CSV: %w", err)
	}

	byID := make(map[string]*Entry)
	var order []string
	for i, rec := range records[1:] {
		row := i + 2

		entry, seen := byID[rec[0]]
		if !seen {
			date, err := time.Parse(dateFormat, rec[1])
			if err != nil {
				return nil, fmt.Errorf("row %d: date %q: %w", row, rec[1], err)
			}
			entry = &Entry{
				ExternalID:  rec[0],
				Date:        date,
				EntryType:   domain.EntryType(rec[2]),
				Description: rec[3],
				Reference:   rec[4],
			}
			byID[rec[0]] = entry
			order = append(order, rec[0])
		}

		amount, err := decimal.NewFromString(rec[7])
		if err != nil {
			return nil, fmt.Errorf("row %d: amount %q: %w", row, rec[7], err)
		}
		entry.Movements = append(entry.Movements, EntryMovement{
			AccountCode: rec[5],
			Direction:   domain.MovementDirection(rec[6]),
			Amount:      amount,
		})
	}

	entries := make([]Entry, 0, len(order))
	for _, id := range order {
		entries = append(entries, *byID[id])
	}
	return entries, nil
}
