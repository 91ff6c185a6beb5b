package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pymeledger/pymeledger/internal/dto"
	"github.com/pymeledger/pymeledger/internal/platform/logging"
	"github.com/pymeledger/pymeledger/pkg/config"
)

func newChartCommand() *cobra.Command {
	var accountsFile string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print the chart of accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if accountsFile != "" {
				cfg.AccountsFile = accountsFile
			}
			logger := setupLogger(cfg)
			ctx := logging.WithLogger(cmd.Context(), logger)

			container, err := loadLedger(ctx, cfg)
			if err != nil {
				return err
			}

			accounts, err := container.Account.ListActiveAccounts(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-6s  %-35s  %-10s  %-14s  %14s\n", "CODE", "NAME", "TYPE", "NATURE", "BALANCE")
			for _, account := range dto.ToListAccountResponse(accounts) {
				fmt.Fprintf(out, "%-6s  %-35s  %-10s  %-14s  %14s\n",
					account.Code, account.Name, account.AccountType, account.Nature,
					account.Balance.StringFixed(2))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&accountsFile, "accounts", "", "chart of accounts CSV (defaults to the built-in chart)")
	return cmd
}
