package domain_test

import (
	"testing"

	"github.com/pymeledger/pymeledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	entry := domain.JournalEntry{
		Movements: []domain.Movement{
			{Direction: domain.Debit, Amount: decimal.NewFromInt(700)},
			{Direction: domain.Debit, Amount: decimal.NewFromInt(300)},
			{Direction: domain.Credit, Amount: decimal.NewFromInt(1000)},
		},
	}

	entry.ComputeTotals()

	assert.True(t, decimal.NewFromInt(1000).Equal(entry.TotalDebits), "debits: %s", entry.TotalDebits)
	assert.True(t, decimal.NewFromInt(1000).Equal(entry.TotalCredits), "credits: %s", entry.TotalCredits)
}

func TestComputeTotalsEmpty(t *testing.T) {
	var entry domain.JournalEntry
	entry.ComputeTotals()

	assert.True(t, entry.TotalDebits.IsZero())
	assert.True(t, entry.TotalCredits.IsZero())
}

func TestEffectiveDescription(t *testing.T) {
	withOwn := domain.Movement{Description: "bank fee portion"}
	without := domain.Movement{}

	assert.Equal(t, "bank fee portion", withOwn.EffectiveDescription("monthly closing"))
	assert.Equal(t, "monthly closing", without.EffectiveDescription("monthly closing"))
}

func TestClassificationPolicyClassFor(t *testing.T) {
	policy := domain.ClassificationPolicy{
		ByCode: map[string]domain.AccountClass{
			"1250": {NonCurrent: false}, // exact entry overriding the range below
			"5101": {CostOfSales: true},
		},
		Ranges: []domain.CodeRange{
			{From: "1200", To: "1299", Class: domain.AccountClass{NonCurrent: true}},
		},
	}

	assert.True(t, policy.ClassFor("1201").NonCurrent, "range match")
	assert.False(t, policy.ClassFor("1250").NonCurrent, "exact entry wins over range")
	assert.True(t, policy.ClassFor("5101").CostOfSales)
	assert.Equal(t, domain.AccountClass{}, policy.ClassFor("9999"), "unmatched code gets zero class")
}
