package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceLine is a single row in a trial balance report. Exactly one of
// DebtorBalance/CreditorBalance is non-zero: the account's balance lands in
// the column matching its nature, or in the opposite column (as an absolute
// value) when the balance is negative, which is how contra accounts present.
type TrialBalanceLine struct {
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	AccountType     AccountType     `json:"accountType"`
	Nature          AccountNature   `json:"nature"`
	DebtorBalance   decimal.Decimal `json:"debtorBalance"`
	CreditorBalance decimal.Decimal `json:"creditorBalance"`
}

// TrialBalanceFilterMode selects which accounts a trial balance includes.
type TrialBalanceFilterMode string

const (
	FilterAll             TrialBalanceFilterMode = "ALL"
	FilterWithBalanceOnly TrialBalanceFilterMode = "WITH_BALANCE_ONLY"
	FilterByType          TrialBalanceFilterMode = "BY_TYPE"
)

// TrialBalanceFilter is an optional account filter for trial balance
// generation. AccountType is consulted only when Mode is FilterByType.
type TrialBalanceFilter struct {
	Mode        TrialBalanceFilterMode `json:"mode"`
	AccountType AccountType            `json:"accountType,omitempty"`
}

// TrialBalance lists every included account's balance split into debtor and
// creditor columns, with lines sorted by account code ascending.
type TrialBalance struct {
	AsOf             time.Time          `json:"asOf"`
	Lines            []TrialBalanceLine `json:"lines"`
	TotalDebtors     decimal.Decimal    `json:"totalDebtors"`
	TotalCreditors   decimal.Decimal    `json:"totalCreditors"`
	Difference       decimal.Decimal    `json:"difference"` // TotalDebtors - TotalCreditors
	Balanced         bool               `json:"balanced"`   // |Difference| < tolerance
	DebtorAccounts   int                `json:"debtorAccounts"`
	CreditorAccounts int                `json:"creditorAccounts"`
}

// StatementLine is one account row inside a financial statement section.
type StatementLine struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// AccountClass holds the explicit classification flags a statement needs and
// which cannot be inferred from the account type alone: the current versus
// non-current split for balance sheet accounts and the cost-of-sales versus
// operating split for expense accounts.
type AccountClass struct {
	NonCurrent  bool `json:"nonCurrent"`
	CostOfSales bool `json:"costOfSales"`
}

// CodeRange classifies every account whose code falls in [From, To]
// (inclusive, lexicographic).
type CodeRange struct {
	From  string       `json:"from"`
	To    string       `json:"to"`
	Class AccountClass `json:"class"`
}

// ClassificationPolicy is the caller-supplied input that drives statement
// classification. An exact per-code entry wins over ranges; ranges are
// consulted in order; an unmatched account gets the zero AccountClass
// (current, operating).
type ClassificationPolicy struct {
	ByCode map[string]AccountClass `json:"byCode,omitempty"`
	Ranges []CodeRange             `json:"ranges,omitempty"`
}

// ClassFor resolves the classification for an account code.
func (p ClassificationPolicy) ClassFor(code string) AccountClass {
	if c, ok := p.ByCode[code]; ok {
		return c
	}
	for _, r := range p.Ranges {
		if code >= r.From && code <= r.To {
			return r.Class
		}
	}
	return AccountClass{}
}

// BalanceSheet partitions asset, liability and equity balances into the
// standard statement-of-financial-position sections.
type BalanceSheet struct {
	AsOf                  time.Time       `json:"asOf"`
	CurrentAssets         []StatementLine `json:"currentAssets"`
	NonCurrentAssets      []StatementLine `json:"nonCurrentAssets"`
	CurrentLiabilities    []StatementLine `json:"currentLiabilities"`
	NonCurrentLiabilities []StatementLine `json:"nonCurrentLiabilities"`
	Equity                []StatementLine `json:"equity"`
	TotalAssets           decimal.Decimal `json:"totalAssets"`
	TotalLiabilities      decimal.Decimal `json:"totalLiabilities"`
	TotalEquity           decimal.Decimal `json:"totalEquity"`
	Difference            decimal.Decimal `json:"difference"` // TotalAssets - (TotalLiabilities + TotalEquity)
	Balanced              bool            `json:"balanced"`
}

// ResultType labels the bottom line of an income statement.
type ResultType string

const (
	Profit ResultType = "PROFIT"
	Loss   ResultType = "LOSS"
)

// IncomeStatement presents revenue against cost of sales and operating
// expenses for a period.
type IncomeStatement struct {
	From              time.Time       `json:"from"`
	To                time.Time       `json:"to"`
	Revenue           []StatementLine `json:"revenue"`
	CostOfSales       []StatementLine `json:"costOfSales"`
	OperatingExpenses []StatementLine `json:"operatingExpenses"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalCostOfSales  decimal.Decimal `json:"totalCostOfSales"`
	GrossProfit       decimal.Decimal `json:"grossProfit"`  // TotalRevenue - TotalCostOfSales
	TotalExpenses     decimal.Decimal `json:"totalExpenses"`
	NetIncome         decimal.Decimal `json:"netIncome"` // GrossProfit - TotalExpenses
	ResultType        ResultType      `json:"resultType"`
}
