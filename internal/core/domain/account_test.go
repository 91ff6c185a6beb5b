package domain_test

import (
	"testing"

	"github.com/pymeledger/pymeledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNatureFor(t *testing.T) {
	tests := []struct {
		accountType domain.AccountType
		want        domain.AccountNature
	}{
		{domain.Asset, domain.DebitNature},
		{domain.Expense, domain.DebitNature},
		{domain.Liability, domain.CreditNature},
		{domain.Equity, domain.CreditNature},
		{domain.Revenue, domain.CreditNature},
	}

	for _, tt := range tests {
		t.Run(string(tt.accountType), func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NatureFor(tt.accountType))
		})
	}
}

func TestAccountTypeValid(t *testing.T) {
	assert.True(t, domain.Asset.Valid())
	assert.True(t, domain.Expense.Valid())
	assert.False(t, domain.AccountType("INCOME").Valid())
	assert.False(t, domain.AccountType("").Valid())
}

func TestIncreasesWithDebit(t *testing.T) {
	cash := domain.Account{Nature: domain.DebitNature}
	sales := domain.Account{Nature: domain.CreditNature}
	assert.True(t, cash.IncreasesWithDebit())
	assert.False(t, sales.IncreasesWithDebit())
}
