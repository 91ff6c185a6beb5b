package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pymeledger/pymeledger/internal/core/domain"
	"github.com/pymeledger/pymeledger/internal/importer"
	"github.com/pymeledger/pymeledger/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadLedger_SeedChartWithoutFiles(t *testing.T) {
	container, err := loadLedger(context.Background(), &config.Config{})
	require.NoError(t, err)

	accounts, err := container.Account.ListActiveAccounts(context.Background())
	require.NoError(t, err)
	assert.Len(t, accounts, 14)
}

func TestLoadLedger_FromCSVFiles(t *testing.T) {
	ctx := context.Background()

	accountsCSV := importer.AccountsHeader + "\n" +
		"1001,Efectivo en Caja,ASSET,DEBIT_NATURED,1000,\n" +
		"4001,Ventas,REVENUE,CREDIT_NATURED,,\n"
	journalCSV := importer.JournalHeader + "\n" +
		"E1,2026-03-15,OPERATION,Venta al contado,,1001,DEBIT,250\n" +
		"E1,2026-03-15,OPERATION,Venta al contado,,4001,CREDIT,250\n"

	cfg := &config.Config{
		AccountsFile: writeTempFile(t, "accounts.csv", accountsCSV),
		JournalFile:  writeTempFile(t, "journal.csv", journalCSV),
	}

	container, err := loadLedger(ctx, cfg)
	require.NoError(t, err)

	cash, err := container.Account.GetAccountByCode(ctx, "1001")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1250).Equal(cash.Balance))

	entries, err := container.Journal.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.Posted, entries[0].Status)
	assert.Equal(t, int64(1), entries[0].SequenceNumber)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), entries[0].Date)
}

func TestLoadLedger_UnknownAccountCode(t *testing.T) {
	accountsCSV := importer.AccountsHeader + "\n" +
		"1001,Efectivo en Caja,ASSET,DEBIT_NATURED,,\n"
	journalCSV := importer.JournalHeader + "\n" +
		"E1,2026-03-15,OPERATION,Venta,,9999,DEBIT,100\n" +
		"E1,2026-03-15,OPERATION,Venta,,1001,CREDIT,100\n"

	cfg := &config.Config{
		AccountsFile: writeTempFile(t, "accounts.csv", accountsCSV),
		JournalFile:  writeTempFile(t, "journal.csv", journalCSV),
	}

	_, err := loadLedger(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown account code 9999")
}

func TestLoadLedger_UnbalancedEntryAbortsLoad(t *testing.T) {
	accountsCSV := importer.AccountsHeader + "\n" +
		"1001,Efectivo en Caja,ASSET,DEBIT_NATURED,,\n" +
		"4001,Ventas,REVENUE,CREDIT_NATURED,,\n"
	journalCSV := importer.JournalHeader + "\n" +
		"E1,2026-03-15,OPERATION,Venta,,1001,DEBIT,100\n" +
		"E1,2026-03-15,OPERATION,Venta,,4001,CREDIT,90\n"

	cfg := &config.Config{
		AccountsFile: writeTempFile(t, "accounts.csv", accountsCSV),
		JournalFile:  writeTempFile(t, "journal.csv", journalCSV),
	}

	_, err := loadLedger(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E1")
}
