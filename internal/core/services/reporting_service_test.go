package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/pymeledger/pymeledger/internal/core/domain"
	"github.com/pymeledger/pymeledger/internal/core/services"
	"github.com/pymeledger/pymeledger/internal/dto"
	"github.com/pymeledger/pymeledger/internal/seed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportAccounts() []domain.Account {
	return []domain.Account{
		{AccountID: "cash", Code: "1001", Name: "Efectivo en Caja", AccountType: domain.Asset, Nature: domain.DebitNature, IsActive: true},
		{AccountID: "equip", Code: "1201", Name: "Mobiliario y Equipo", AccountType: domain.Asset, Nature: domain.DebitNature, IsActive: true},
		{AccountID: "payables", Code: "2001", Name: "Proveedores", AccountType: domain.Liability, Nature: domain.CreditNature, IsActive: true},
		{AccountID: "capital", Code: "3001", Name: "Capital", AccountType: domain.Equity, Nature: domain.CreditNature, IsActive: true},
		{AccountID: "sales", Code: "4001", Name: "Ventas", AccountType: domain.Revenue, Nature: domain.CreditNature, IsActive: true},
		{AccountID: "rent", Code: "5001", Name: "Alquiler", AccountType: domain.Expense, Nature: domain.DebitNature, IsActive: true},
		{AccountID: "cogs", Code: "5101", Name: "Costo de Ventas", AccountType: domain.Expense, Nature: domain.DebitNature, IsActive: true},
		{AccountID: "closed", Code: "9001", Name: "Cuenta Cerrada", AccountType: domain.Expense, Nature: domain.DebitNature, IsActive: false},
	}
}

func asOf() time.Time {
	return time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
}

func TestBuildTrialBalance_ColumnPlacement(t *testing.T) {
	balances := map[string]decimal.Decimal{
		"cash":     decimal.NewFromInt(5000),
		"payables": decimal.NewFromInt(2000),
		"capital":  decimal.NewFromInt(3000),
	}

	tb := services.BuildTrialBalance(reportAccounts(), balances, asOf(), domain.TrialBalanceFilter{Mode: domain.FilterWithBalanceOnly})

	require.Len(t, tb.Lines, 3)
	assert.Equal(t, "1001", tb.Lines[0].Code)
	assert.True(t, decimal.NewFromInt(5000).Equal(tb.Lines[0].DebtorBalance))
	assert.True(t, tb.Lines[0].CreditorBalance.IsZero())

	assert.Equal(t, "2001", tb.Lines[1].Code)
	assert.True(t, decimal.NewFromInt(2000).Equal(tb.Lines[1].CreditorBalance))

	assert.True(t, decimal.NewFromInt(5000).Equal(tb.TotalDebtors))
	assert.True(t, decimal.NewFromInt(5000).Equal(tb.TotalCreditors))
	assert.True(t, tb.Difference.IsZero())
	assert.True(t, tb.Balanced)
	assert.Equal(t, 1, tb.DebtorAccounts)
	assert.Equal(t, 2, tb.CreditorAccounts)
}

func TestBuildTrialBalance_ContraAccountSwitchesColumn(t *testing.T) {
	// Cash overdrawn: a debit-natured account with a negative balance shows
	// in the creditor column as an absolute value.
	balances := map[string]decimal.Decimal{
		"cash": decimal.NewFromInt(-400),
	}

	tb := services.BuildTrialBalance(reportAccounts(), balances, asOf(), domain.TrialBalanceFilter{Mode: domain.FilterWithBalanceOnly})

	require.Len(t, tb.Lines, 1)
	assert.True(t, tb.Lines[0].DebtorBalance.IsZero())
	assert.True(t, decimal.NewFromInt(400).Equal(tb.Lines[0].CreditorBalance))
}

func TestBuildTrialBalance_ExcludesInactive(t *testing.T) {
	balances := map[string]decimal.Decimal{
		"closed": decimal.NewFromInt(100),
	}

	tb := services.BuildTrialBalance(reportAccounts(), balances, asOf(), domain.TrialBalanceFilter{Mode: domain.FilterAll})

	for _, line := range tb.Lines {
		assert.NotEqual(t, "9001", line.Code)
	}
}

func TestBuildTrialBalance_FilterByType(t *testing.T) {
	balances := map[string]decimal.Decimal{
		"cash":  decimal.NewFromInt(100),
		"sales": decimal.NewFromInt(100),
	}

	tb := services.BuildTrialBalance(reportAccounts(), balances, asOf(), domain.TrialBalanceFilter{
		Mode:        domain.FilterByType,
		AccountType: domain.Revenue,
	})

	require.Len(t, tb.Lines, 1)
	assert.Equal(t, "4001", tb.Lines[0].Code)
	assert.False(t, tb.Balanced, "a single account type cannot balance")
}

func TestBuildTrialBalance_FilterAllKeepsZeroLines(t *testing.T) {
	tb := services.BuildTrialBalance(reportAccounts(), nil, asOf(), domain.TrialBalanceFilter{Mode: domain.FilterAll})

	assert.Len(t, tb.Lines, 7, "every active account appears even with zero balance")
	assert.True(t, tb.Balanced)
}

func TestClassifyBalanceSheet_EquationHolds(t *testing.T) {
	// Capital 3000 plus a 1200 sale collected in cash, 200 rent paid.
	balances := map[string]decimal.Decimal{
		"cash":    decimal.NewFromInt(4000),
		"capital": decimal.NewFromInt(3000),
		"sales":   decimal.NewFromInt(1200),
		"rent":    decimal.NewFromInt(200),
	}

	tb := services.BuildTrialBalance(reportAccounts(), balances, asOf(), domain.TrialBalanceFilter{Mode: domain.FilterAll})
	bs := services.ClassifyBalanceSheet(tb, asOf(), seed.DefaultPolicy())

	assert.True(t, decimal.NewFromInt(4000).Equal(bs.TotalAssets))
	assert.True(t, bs.TotalLiabilities.IsZero())
	// Equity carries capital plus the period result (1200 - 200).
	assert.True(t, decimal.NewFromInt(4000).Equal(bs.TotalEquity))
	require.Len(t, bs.Equity, 2)
	assert.Equal(t, "Net income for the period", bs.Equity[1].Name)
	assert.True(t, decimal.NewFromInt(1000).Equal(bs.Equity[1].Amount))
	assert.True(t, bs.Balanced)
	assert.True(t, bs.Difference.IsZero())
}

func TestClassifyBalanceSheet_PolicySplitsNonCurrent(t *testing.T) {
	balances := map[string]decimal.Decimal{
		"cash":    decimal.NewFromInt(1000),
		"equip":   decimal.NewFromInt(2000),
		"capital": decimal.NewFromInt(3000),
	}

	tb := services.BuildTrialBalance(reportAccounts(), balances, asOf(), domain.TrialBalanceFilter{Mode: domain.FilterAll})
	bs := services.ClassifyBalanceSheet(tb, asOf(), seed.DefaultPolicy())

	var currentCodes, nonCurrentCodes []string
	for _, line := range bs.CurrentAssets {
		if !line.Amount.IsZero() {
			currentCodes = append(currentCodes, line.Code)
		}
	}
	for _, line := range bs.NonCurrentAssets {
		nonCurrentCodes = append(nonCurrentCodes, line.Code)
	}
	assert.Equal(t, []string{"1001"}, currentCodes)
	assert.Equal(t, []string{"1201"}, nonCurrentCodes, "1200-1299 range classifies as non-current")
	assert.True(t, bs.Balanced)
}

func TestClassifyBalanceSheet_NoSyntheticLineWithoutResult(t *testing.T) {
	balances := map[string]decimal.Decimal{
		"cash":    decimal.NewFromInt(3000),
		"capital": decimal.NewFromInt(3000),
	}

	tb := services.BuildTrialBalance(reportAccounts(), balances, asOf(), domain.TrialBalanceFilter{Mode: domain.FilterAll})
	bs := services.ClassifyBalanceSheet(tb, asOf(), seed.DefaultPolicy())

	for _, line := range bs.Equity {
		assert.NotEmpty(t, line.Code, "no synthetic result line when net income is zero")
	}
	assert.True(t, bs.Balanced)
}

func TestClassifyIncomeStatement_Profit(t *testing.T) {
	balances := map[string]decimal.Decimal{
		"sales": decimal.NewFromInt(10000),
		"cogs":  decimal.NewFromInt(6000),
		"rent":  decimal.NewFromInt(1500),
	}
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tb := services.BuildTrialBalance(reportAccounts(), balances, asOf(), domain.TrialBalanceFilter{Mode: domain.FilterAll})
	is := services.ClassifyIncomeStatement(tb, from, asOf(), seed.DefaultPolicy())

	assert.True(t, decimal.NewFromInt(10000).Equal(is.TotalRevenue))
	assert.True(t, decimal.NewFromInt(6000).Equal(is.TotalCostOfSales))
	assert.True(t, decimal.NewFromInt(4000).Equal(is.GrossProfit))
	assert.True(t, decimal.NewFromInt(1500).Equal(is.TotalExpenses))
	assert.True(t, decimal.NewFromInt(2500).Equal(is.NetIncome))
	assert.Equal(t, domain.Profit, is.ResultType)

	require.Len(t, is.CostOfSales, 1)
	assert.Equal(t, "5101", is.CostOfSales[0].Code)
}

func TestClassifyIncomeStatement_Loss(t *testing.T) {
	balances := map[string]decimal.Decimal{
		"sales": decimal.NewFromInt(1000),
		"rent":  decimal.NewFromInt(1800),
	}
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tb := services.BuildTrialBalance(reportAccounts(), balances, asOf(), domain.TrialBalanceFilter{Mode: domain.FilterAll})
	is := services.ClassifyIncomeStatement(tb, from, asOf(), seed.DefaultPolicy())

	assert.True(t, decimal.NewFromInt(-800).Equal(is.NetIncome))
	assert.Equal(t, domain.Loss, is.ResultType)
}

// End to end: register a chart, record a sale, post it and read every report.
func TestReporting_EndToEnd(t *testing.T) {
	ctx := context.Background()
	container := services.NewContainer()

	cash, err := container.Account.RegisterAccount(ctx, dto.RegisterAccountRequest{
		Code: "1001", Name: "Efectivo en Caja", AccountType: domain.Asset, Nature: domain.DebitNature,
	})
	require.NoError(t, err)
	sales, err := container.Account.RegisterAccount(ctx, dto.RegisterAccountRequest{
		Code: "4001", Name: "Ventas", AccountType: domain.Revenue, Nature: domain.CreditNature,
	})
	require.NoError(t, err)

	entry, err := container.Journal.CreateEntry(ctx, dto.CreateEntryRequest{
		Date:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Description: "Venta al contado",
		EntryType:   domain.Operation,
		Movements: []dto.CreateMovementRequest{
			{AccountID: cash.AccountID, Direction: domain.Debit, Amount: decimal.NewFromInt(12000)},
			{AccountID: sales.AccountID, Direction: domain.Credit, Amount: decimal.NewFromInt(12000)},
		},
	})
	require.NoError(t, err)
	_, err = container.Journal.ValidateEntry(ctx, entry.EntryID)
	require.NoError(t, err)
	posted, err := container.Journal.PostEntry(ctx, entry.EntryID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), posted.SequenceNumber)

	tb, err := container.Reporting.TrialBalance(ctx, asOf(), domain.TrialBalanceFilter{Mode: domain.FilterWithBalanceOnly})
	require.NoError(t, err)
	require.Len(t, tb.Lines, 2)
	assert.True(t, decimal.NewFromInt(12000).Equal(tb.TotalDebtors))
	assert.True(t, decimal.NewFromInt(12000).Equal(tb.TotalCreditors))
	assert.True(t, tb.Balanced)

	bs, err := container.Reporting.BalanceSheet(ctx, asOf(), seed.DefaultPolicy())
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(12000).Equal(bs.TotalAssets))
	assert.True(t, decimal.NewFromInt(12000).Equal(bs.TotalEquity))
	assert.True(t, bs.Balanced)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	is, err := container.Reporting.IncomeStatement(ctx, from, asOf(), seed.DefaultPolicy())
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(12000).Equal(is.TotalRevenue))
	assert.True(t, decimal.NewFromInt(12000).Equal(is.NetIncome))
	assert.Equal(t, domain.Profit, is.ResultType)
}
