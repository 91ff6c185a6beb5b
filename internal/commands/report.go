package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/pymeledger/pymeledger/internal/core/domain"
	"github.com/pymeledger/pymeledger/internal/core/services"
	"github.com/pymeledger/pymeledger/internal/platform/logging"
	"github.com/pymeledger/pymeledger/internal/seed"
	"github.com/pymeledger/pymeledger/pkg/config"
)

const dateFlagFormat = "2006-01-02"

// reportFlags are shared by the report subcommands.
type reportFlags struct {
	accountsFile string
	journalFile  string
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.accountsFile, "accounts", "", "chart of accounts CSV (defaults to the built-in chart)")
	cmd.Flags().StringVar(&f.journalFile, "journal", "", "journal CSV to validate and post before reporting")
}

// setup loads config, applies flag overrides and builds the ledger.
func (f *reportFlags) setup(cmd *cobra.Command) (context.Context, *config.Config, *services.Container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	if f.accountsFile != "" {
		cfg.AccountsFile = f.accountsFile
	}
	if f.journalFile != "" {
		cfg.JournalFile = f.journalFile
	}
	logger := setupLogger(cfg)
	ctx := logging.WithLogger(cmd.Context(), logger)

	container, err := loadLedger(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return ctx, cfg, container, nil
}

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate accounting reports",
	}
	cmd.AddCommand(newTrialBalanceCommand())
	cmd.AddCommand(newBalanceSheetCommand())
	cmd.AddCommand(newIncomeStatementCommand())
	return cmd
}

func newTrialBalanceCommand() *cobra.Command {
	var flags reportFlags
	var asOfStr string
	var withBalanceOnly bool

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Print the trial balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, container, err := flags.setup(cmd)
			if err != nil {
				return err
			}
			asOf, err := parseDateOrNow(asOfStr)
			if err != nil {
				return err
			}
			filter := domain.TrialBalanceFilter{Mode: domain.FilterAll}
			if withBalanceOnly {
				filter.Mode = domain.FilterWithBalanceOnly
			}

			tb, err := container.Reporting.TrialBalance(ctx, asOf, filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s - Trial balance as of %s\n\n", cfg.CompanyName, asOf.Format(dateFlagFormat))
			fmt.Fprintf(out, "%-6s  %-35s  %14s  %14s\n", "CODE", "NAME", "DEBTOR", "CREDITOR")
			for _, line := range tb.Lines {
				fmt.Fprintf(out, "%-6s  %-35s  %14s  %14s\n",
					line.Code, line.Name, line.DebtorBalance.StringFixed(2), line.CreditorBalance.StringFixed(2))
			}
			fmt.Fprintf(out, "\n%-43s  %14s  %14s\n", "TOTALS",
				tb.TotalDebtors.StringFixed(2), tb.TotalCreditors.StringFixed(2))
			fmt.Fprintf(out, "Balanced: %v (difference %s)\n", tb.Balanced, tb.Difference.StringFixed(2))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&asOfStr, "as-of", "", "report date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&withBalanceOnly, "with-balance-only", false, "omit zero-balance accounts")
	return cmd
}

func newBalanceSheetCommand() *cobra.Command {
	var flags reportFlags
	var asOfStr string

	cmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Print the balance sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, container, err := flags.setup(cmd)
			if err != nil {
				return err
			}
			asOf, err := parseDateOrNow(asOfStr)
			if err != nil {
				return err
			}

			bs, err := container.Reporting.BalanceSheet(ctx, asOf, seed.DefaultPolicy())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s - Balance sheet as of %s\n", cfg.CompanyName, asOf.Format(dateFlagFormat))
			printSection(out, "Current assets", bs.CurrentAssets)
			printSection(out, "Non-current assets", bs.NonCurrentAssets)
			fmt.Fprintf(out, "Total assets: %s\n", bs.TotalAssets.StringFixed(2))
			printSection(out, "Current liabilities", bs.CurrentLiabilities)
			printSection(out, "Non-current liabilities", bs.NonCurrentLiabilities)
			fmt.Fprintf(out, "Total liabilities: %s\n", bs.TotalLiabilities.StringFixed(2))
			printSection(out, "Equity", bs.Equity)
			fmt.Fprintf(out, "Total equity: %s\n", bs.TotalEquity.StringFixed(2))
			fmt.Fprintf(out, "\nBalanced: %v (difference %s)\n", bs.Balanced, bs.Difference.StringFixed(2))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&asOfStr, "as-of", "", "report date (YYYY-MM-DD, default today)")
	return cmd
}

func newIncomeStatementCommand() *cobra.Command {
	var flags reportFlags
	var fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "income-statement",
		Short: "Print the income statement",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, container, err := flags.setup(cmd)
			if err != nil {
				return err
			}
			to, err := parseDateOrNow(toStr)
			if err != nil {
				return err
			}
			from := time.Date(to.Year(), time.January, 1, 0, 0, 0, 0, to.Location())
			if fromStr != "" {
				from, err = time.Parse(dateFlagFormat, fromStr)
				if err != nil {
					return fmt.Errorf("parsing --from: %w", err)
				}
			}

			is, err := container.Reporting.IncomeStatement(ctx, from, to, seed.DefaultPolicy())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s - Income statement %s to %s\n", cfg.CompanyName,
				from.Format(dateFlagFormat), to.Format(dateFlagFormat))
			printSection(out, "Revenue", is.Revenue)
			fmt.Fprintf(out, "Total revenue: %s\n", is.TotalRevenue.StringFixed(2))
			printSection(out, "Cost of sales", is.CostOfSales)
			fmt.Fprintf(out, "Gross profit: %s\n", is.GrossProfit.StringFixed(2))
			printSection(out, "Operating expenses", is.OperatingExpenses)
			fmt.Fprintf(out, "Total operating expenses: %s\n", is.TotalExpenses.StringFixed(2))
			fmt.Fprintf(out, "\n%s: %s\n", is.ResultType, is.NetIncome.Abs().StringFixed(2))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&fromStr, "from", "", "period start (YYYY-MM-DD, default January 1st of the end year)")
	cmd.Flags().StringVar(&toStr, "to", "", "period end (YYYY-MM-DD, default today)")
	return cmd
}

func parseDateOrNow(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(dateFlagFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

func printSection(out io.Writer, title string, lines []domain.StatementLine) {
	fmt.Fprintf(out, "\n%s\n", title)
	if len(lines) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}
	for _, line := range lines {
		code := line.Code
		if code == "" {
			code = "-"
		}
		fmt.Fprintf(out, "  %-6s  %-35s  %14s\n", code, line.Name, line.Amount.StringFixed(2))
	}
}
