package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/pymeledger/pymeledger/internal/core/domain"
	portsrepo "github.com/pymeledger/pymeledger/internal/core/ports/repositories"
	portssvc "github.com/pymeledger/pymeledger/internal/core/ports/services"
	"github.com/pymeledger/pymeledger/internal/platform/logging"
	"github.com/pymeledger/pymeledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// BuildTrialBalance projects account balances into debtor/creditor columns.
// Only active accounts are included. A balance lands in the column matching
// the account's nature; a negative balance (contra account) lands in the
// opposite column as an absolute value, which is expected presentation, not
// an error. Lines come out sorted by code ascending.
func BuildTrialBalance(accounts []domain.Account, balances map[string]decimal.Decimal, asOf time.Time, filter domain.TrialBalanceFilter) *domain.TrialBalance {
	tb := &domain.TrialBalance{
		AsOf:           asOf,
		TotalDebtors:   decimal.Zero,
		TotalCreditors: decimal.Zero,
	}

	for _, account := range accounts {
		if !account.IsActive {
			continue
		}
		if filter.Mode == domain.FilterByType && account.AccountType != filter.AccountType {
			continue
		}
		balance := balances[account.AccountID]
		if filter.Mode == domain.FilterWithBalanceOnly && balance.IsZero() {
			continue
		}

		line := domain.TrialBalanceLine{
			Code:            account.Code,
			Name:            account.Name,
			AccountType:     account.AccountType,
			Nature:          account.Nature,
			DebtorBalance:   decimal.Zero,
			CreditorBalance: decimal.Zero,
		}
		inNatureColumn := balance.Sign() >= 0
		debtor := account.Nature == domain.DebitNature
		if debtor == inNatureColumn {
			line.DebtorBalance = balance.Abs()
		} else {
			line.CreditorBalance = balance.Abs()
		}
		tb.Lines = append(tb.Lines, line)
	}

	sort.SliceStable(tb.Lines, func(i, j int) bool {
		return tb.Lines[i].Code < tb.Lines[j].Code
	})

	for _, line := range tb.Lines {
		tb.TotalDebtors = tb.TotalDebtors.Add(line.DebtorBalance)
		tb.TotalCreditors = tb.TotalCreditors.Add(line.CreditorBalance)
		if line.DebtorBalance.IsPositive() {
			tb.DebtorAccounts++
		}
		if line.CreditorBalance.IsPositive() {
			tb.CreditorAccounts++
		}
	}
	tb.Difference = tb.TotalDebtors.Sub(tb.TotalCreditors)
	tb.Balanced = tb.Difference.Abs().LessThan(accounting.Tolerance)
	return tb
}

// signedLineAmount converts a trial balance line back to a balance signed
// per the account's nature, so statement totals keep the accounting
// equation intact even for contra accounts.
func signedLineAmount(line domain.TrialBalanceLine) decimal.Decimal {
	if line.Nature == domain.DebitNature {
		return line.DebtorBalance.Sub(line.CreditorBalance)
	}
	return line.CreditorBalance.Sub(line.DebtorBalance)
}

// ClassifyBalanceSheet partitions trial balance lines into the balance
// sheet sections. The current/non-current split comes exclusively from the
// caller-supplied policy; it is never guessed from account types or codes.
// The period result (revenue minus expenses present in the trial balance)
// rolls into equity as a synthetic line, which is what makes
// assets = liabilities + equity hold before closing entries.
func ClassifyBalanceSheet(tb *domain.TrialBalance, asOf time.Time, policy domain.ClassificationPolicy) *domain.BalanceSheet {
	bs := &domain.BalanceSheet{
		AsOf:             asOf,
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}
	netIncome := decimal.Zero

	for _, line := range tb.Lines {
		amount := signedLineAmount(line)
		stmtLine := domain.StatementLine{Code: line.Code, Name: line.Name, Amount: amount}
		switch line.AccountType {
		case domain.Asset:
			if policy.ClassFor(line.Code).NonCurrent {
				bs.NonCurrentAssets = append(bs.NonCurrentAssets, stmtLine)
			} else {
				bs.CurrentAssets = append(bs.CurrentAssets, stmtLine)
			}
			bs.TotalAssets = bs.TotalAssets.Add(amount)
		case domain.Liability:
			if policy.ClassFor(line.Code).NonCurrent {
				bs.NonCurrentLiabilities = append(bs.NonCurrentLiabilities, stmtLine)
			} else {
				bs.CurrentLiabilities = append(bs.CurrentLiabilities, stmtLine)
			}
			bs.TotalLiabilities = bs.TotalLiabilities.Add(amount)
		case domain.Equity:
			bs.Equity = append(bs.Equity, stmtLine)
			bs.TotalEquity = bs.TotalEquity.Add(amount)
		case domain.Revenue:
			netIncome = netIncome.Add(amount)
		case domain.Expense:
			netIncome = netIncome.Sub(amount)
		}
	}

	if !netIncome.IsZero() {
		bs.Equity = append(bs.Equity, domain.StatementLine{
			Name:   "Net income for the period",
			Amount: netIncome,
		})
		bs.TotalEquity = bs.TotalEquity.Add(netIncome)
	}

	bs.Difference = bs.TotalAssets.Sub(bs.TotalLiabilities.Add(bs.TotalEquity))
	bs.Balanced = bs.Difference.Abs().LessThan(accounting.Tolerance)
	return bs
}

// ClassifyIncomeStatement partitions revenue and expense lines of a trial
// balance into the income statement. The cost-of-sales/operating split comes
// exclusively from the caller-supplied policy.
func ClassifyIncomeStatement(tb *domain.TrialBalance, from, to time.Time, policy domain.ClassificationPolicy) *domain.IncomeStatement {
	is := &domain.IncomeStatement{
		From:             from,
		To:               to,
		TotalRevenue:     decimal.Zero,
		TotalCostOfSales: decimal.Zero,
		TotalExpenses:    decimal.Zero,
	}

	for _, line := range tb.Lines {
		amount := signedLineAmount(line)
		stmtLine := domain.StatementLine{Code: line.Code, Name: line.Name, Amount: amount}
		switch line.AccountType {
		case domain.Revenue:
			is.Revenue = append(is.Revenue, stmtLine)
			is.TotalRevenue = is.TotalRevenue.Add(amount)
		case domain.Expense:
			if policy.ClassFor(line.Code).CostOfSales {
				is.CostOfSales = append(is.CostOfSales, stmtLine)
				is.TotalCostOfSales = is.TotalCostOfSales.Add(amount)
			} else {
				is.OperatingExpenses = append(is.OperatingExpenses, stmtLine)
				is.TotalExpenses = is.TotalExpenses.Add(amount)
			}
		}
	}

	is.GrossProfit = is.TotalRevenue.Sub(is.TotalCostOfSales)
	is.NetIncome = is.GrossProfit.Sub(is.TotalExpenses)
	if is.NetIncome.Sign() >= 0 {
		is.ResultType = domain.Profit
	} else {
		is.ResultType = domain.Loss
	}
	return is
}

// reportingService wires the pure report builders to repository snapshots
// and ledger derivation.
type reportingService struct {
	accountRepo portsrepo.AccountRepository
	ledgerSvc   portssvc.LedgerSvcFacade
}

// NewReportingService creates the reporting service.
func NewReportingService(accountRepo portsrepo.AccountRepository, ledgerSvc portssvc.LedgerSvcFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		accountRepo: accountRepo,
		ledgerSvc:   ledgerSvc,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time, filter domain.TrialBalanceFilter) (*domain.TrialBalance, error) {
	logger := logging.FromCtx(ctx)

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	balances, err := s.ledgerSvc.DeriveBalances(ctx)
	if err != nil {
		return nil, err
	}
	tb := BuildTrialBalance(accounts, balances, asOf, filter)

	logger.Info("Trial balance generated",
		slog.Int("lines", len(tb.Lines)),
		slog.Bool("balanced", tb.Balanced))
	return tb, nil
}

func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time, policy domain.ClassificationPolicy) (*domain.BalanceSheet, error) {
	logger := logging.FromCtx(ctx)

	tb, err := s.TrialBalance(ctx, asOf, domain.TrialBalanceFilter{Mode: domain.FilterAll})
	if err != nil {
		return nil, err
	}
	bs := ClassifyBalanceSheet(tb, asOf, policy)

	logger.Info("Balance sheet generated",
		slog.String("total_assets", bs.TotalAssets.String()),
		slog.Bool("balanced", bs.Balanced))
	return bs, nil
}

func (s *reportingService) IncomeStatement(ctx context.Context, from, to time.Time, policy domain.ClassificationPolicy) (*domain.IncomeStatement, error) {
	logger := logging.FromCtx(ctx)

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	balances, err := s.ledgerSvc.DeriveBalancesByPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	tb := BuildTrialBalance(accounts, balances, to, domain.TrialBalanceFilter{Mode: domain.FilterAll})
	is := ClassifyIncomeStatement(tb, from, to, policy)

	logger.Info("Income statement generated",
		slog.String("net_income", is.NetIncome.String()),
		slog.String("result", string(is.ResultType)))
	return is, nil
}
