package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/pymeledger/pymeledger/internal/core/domain"
	"github.com/pymeledger/pymeledger/internal/core/services"
	"github.com/pymeledger/pymeledger/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The default chart must register cleanly and its opening balances must
// already satisfy the accounting equation.
func TestDefaultChart_RegistersAndBalances(t *testing.T) {
	ctx := context.Background()
	container := services.NewContainer()

	for _, req := range seed.DefaultChart() {
		_, err := container.Account.RegisterAccount(ctx, req)
		require.NoError(t, err, "account %s", req.Code)
	}

	asOf := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tb, err := container.Reporting.TrialBalance(ctx, asOf, domain.TrialBalanceFilter{Mode: domain.FilterWithBalanceOnly})
	require.NoError(t, err)
	assert.True(t, tb.Balanced, "difference: %s", tb.Difference)

	bs, err := container.Reporting.BalanceSheet(ctx, asOf, seed.DefaultPolicy())
	require.NoError(t, err)
	assert.True(t, bs.Balanced)
	assert.Equal(t, "210100", bs.TotalAssets.String())
	assert.Equal(t, "45000", bs.TotalLiabilities.String())
	assert.Equal(t, "165100", bs.TotalEquity.String())
}

func TestDefaultPolicy(t *testing.T) {
	policy := seed.DefaultPolicy()

	assert.True(t, policy.ClassFor("5101").CostOfSales)
	assert.False(t, policy.ClassFor("5001").CostOfSales)
	assert.True(t, policy.ClassFor("1201").NonCurrent)
	assert.False(t, policy.ClassFor("1101").NonCurrent)
}
