package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yunz06/quan-li-chi-tieu/internal/cli"
)

func budgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "budget <MM-YYYY>",
		Short: "Check a month against its budget",
		Long: `Recompute the spending-to-income ratio for a month. A warning is
printed when spending exceeds 90% of recorded income; months without
recorded income never warn.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			alert, err := newLedger(store).CheckBudget(ctx, args[0])
			if err != nil {
				return err
			}

			// The notifier already printed the warning for a breach.
			if alert == nil {
				fmt.Println(cli.FormatInfo(fmt.Sprintf("Spending for %s is within budget.", args[0])))
			}
			return nil
		},
	}
}
