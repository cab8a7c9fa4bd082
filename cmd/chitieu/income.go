package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yunz06/quan-li-chi-tieu/internal/cli"
	"github.com/yunz06/quan-li-chi-tieu/internal/model"
)

func incomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Manage monthly income",
		Long:  `Record and review income per month. Contributions for the same month accumulate.`,
	}

	cmd.AddCommand(addIncomeCmd())
	cmd.AddCommand(listIncomesCmd())
	cmd.AddCommand(showIncomeCmd())

	return cmd
}

func addIncomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <MM-YYYY> <amount>",
		Short: "Record income for a month",
		Long: `Record an income contribution for a month. If the month already has
income, the amount is added to it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := model.ParseAmount(args[1])
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			return newLedger(store).AddIncome(ctx, args[0], amount)
		},
	}
}

func listIncomesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded income by month",
		Long:  `Display all recorded income, most recent month first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			incomes, err := store.GetAllIncomes(ctx)
			if err != nil {
				return fmt.Errorf("failed to get incomes: %w", err)
			}

			if len(incomes) == 0 {
				fmt.Println(cli.InfoStyle.Render("No income recorded yet."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\n",
				cli.TableHeaderStyle.Render("Month"),
				cli.TableHeaderStyle.Render("Amount"))
			fmt.Fprintf(w, "%s\t%s\n",
				strings.Repeat("-", 8),
				strings.Repeat("-", 14))

			for _, income := range incomes {
				fmt.Fprintf(w, "%s\t%.2f\n", income.Month, income.Amount)
			}

			return nil
		},
	}
}

func showIncomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <MM-YYYY>",
		Short: "Show income for one month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			month := strings.TrimSpace(args[0])
			if _, err := model.ParseMonth(month); err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			amount, err := store.GetIncomeForMonth(ctx, month)
			if err != nil {
				return fmt.Errorf("failed to get income: %w", err)
			}

			fmt.Printf("Income for %s: %.2f\n", month, amount)
			return nil
		},
	}
}
