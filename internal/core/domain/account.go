package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account,
// following the accounting equation: assets = liabilities + equity,
// with revenue and expense feeding equity through the income statement.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Valid reports whether t is one of the five known account types.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// AccountNature determines which movement direction increases an account's
// balance. Debit-natured accounts grow with debits, credit-natured accounts
// grow with credits.
type AccountNature string

const (
	DebitNature  AccountNature = "DEBIT_NATURED"
	CreditNature AccountNature = "CREDIT_NATURED"
)

// NatureFor returns the only nature consistent with an account type:
// ASSET and EXPENSE are debit-natured, the rest credit-natured.
func NatureFor(t AccountType) AccountNature {
	if t == Asset || t == Expense {
		return DebitNature
	}
	return CreditNature
}

// Account represents one account in the chart of accounts.
// Code is unique across active and inactive accounts and immutable once
// created; Balance is mutated only by posting journal entries, never
// directly by callers.
type Account struct {
	AccountID      string          `json:"accountID"`      // Primary key (UUID)
	Code           string          `json:"code"`           // Unique, immutable chart code (e.g. "1001")
	Name           string          `json:"name"`           // Human-readable label, mutable
	AccountType    AccountType     `json:"accountType"`    // ASSET, LIABILITY, EQUITY, REVENUE, EXPENSE
	Nature         AccountNature   `json:"nature"`         // DEBIT_NATURED or CREDIT_NATURED
	Description    string          `json:"description"`    // Optional
	IsActive       bool            `json:"isActive"`       // Soft-deactivate flag; never deleted
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Immutable seed for balance derivation
	Balance        decimal.Decimal `json:"balance"`        // Running balance, signed per nature
	AuditFields
}

// IncreasesWithDebit reports whether a debit movement increases this
// account's balance.
func (a Account) IncreasesWithDebit() bool {
	return a.Nature == DebitNature
}
