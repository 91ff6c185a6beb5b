package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pymeledger/pymeledger/internal/dto"
)

func newJournalCommand() *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Print the journal book",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, container, err := flags.setup(cmd)
			if err != nil {
				return err
			}

			entries, err := container.Journal.ListEntries(ctx)
			if err != nil {
				return err
			}

			// Resolve account IDs to chart codes for display.
			var accountIDs []string
			for _, entry := range entries {
				for _, m := range entry.Movements {
					accountIDs = append(accountIDs, m.AccountID)
				}
			}
			accounts, err := container.Account.GetAccountsByIDs(ctx, accountIDs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-4s  %-10s  %-9s  %-40s  %12s  %12s\n",
				"SEQ", "DATE", "STATUS", "DESCRIPTION", "DEBITS", "CREDITS")
			for _, entry := range entries {
				resp := dto.ToEntryResponse(&entry)
				seq := "-"
				if resp.SequenceNumber > 0 {
					seq = fmt.Sprintf("%d", resp.SequenceNumber)
				}
				fmt.Fprintf(out, "%-4s  %-10s  %-9s  %-40s  %12s  %12s\n",
					seq, resp.Date.Format(dateFlagFormat), resp.Status, resp.Description,
					resp.TotalDebits.StringFixed(2), resp.TotalCredits.StringFixed(2))
				for _, m := range resp.Movements {
					code := m.AccountID
					if account, ok := accounts[m.AccountID]; ok {
						code = account.Code
					}
					fmt.Fprintf(out, "      %-7s  %-38s  %12s\n",
						m.Direction, code, m.Amount.StringFixed(2))
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
