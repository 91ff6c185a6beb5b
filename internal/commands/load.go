package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/pymeledger/pymeledger/internal/core/services"
	"github.com/pymeledger/pymeledger/internal/dto"
	"github.com/pymeledger/pymeledger/internal/importer"
	"github.com/pymeledger/pymeledger/internal/seed"
	"github.com/pymeledger/pymeledger/pkg/config"
)

// loadLedger builds a service container from the configured CSV files, or
// from the seed chart when no accounts file is given. Journal entries are
// pushed through validate and post, so any invalid entry aborts the load.
func loadLedger(ctx context.Context, cfg *config.Config) (*services.Container, error) {
	container := services.NewContainer()

	accounts := seed.DefaultChart()
	if cfg.AccountsFile != "" {
		f, err := os.Open(cfg.AccountsFile)
		if err != nil {
			return nil, fmt.Errorf("opening accounts file: %w", err)
		}
		defer f.Close()
		accounts, err = importer.ReadAccounts(f)
		if err != nil {
			return nil, err
		}
	}

	codeToID := make(map[string]string, len(accounts))
	for _, req := range accounts {
		account, err := container.Account.RegisterAccount(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("registering account %s: %w", req.Code, err)
		}
		codeToID[account.Code] = account.AccountID
	}

	if cfg.JournalFile == "" {
		return container, nil
	}

	f, err := os.Open(cfg.JournalFile)
	if err != nil {
		return nil, fmt.Errorf("opening journal file: %w", err)
	}
	defer f.Close()
	entries, err := importer.ReadEntries(f)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		req := dto.CreateEntryRequest{
			Date:        entry.Date,
			Description: entry.Description,
			Reference:   entry.Reference,
			EntryType:   entry.EntryType,
		}
		for _, m := range entry.Movements {
			accountID, ok := codeToID[m.AccountCode]
			if !ok {
				return nil, fmt.Errorf("entry %s references unknown account code %s", entry.ExternalID, m.AccountCode)
			}
			req.Movements = append(req.Movements, dto.CreateMovementRequest{
				AccountID: accountID,
				Direction: m.Direction,
				Amount:    m.Amount,
			})
		}

		created, err := container.Journal.CreateEntry(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", entry.ExternalID, err)
		}
		if _, err := container.Journal.ValidateEntry(ctx, created.EntryID); err != nil {
			return nil, fmt.Errorf("entry %s: %w", entry.ExternalID, err)
		}
		if _, err := container.Journal.PostEntry(ctx, created.EntryID); err != nil {
			return nil, fmt.Errorf("entry %s: %w", entry.ExternalID, err)
		}
	}

	return container, nil
}
