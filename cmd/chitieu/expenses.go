package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/yunz06/quan-li-chi-tieu/internal/cli"
	"github.com/yunz06/quan-li-chi-tieu/internal/common"
	"github.com/yunz06/quan-li-chi-tieu/internal/model"
)

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Record and review expenses",
		Long:  `Add expenses, list them newest first, and summarize spending by category.`,
	}

	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(summaryCmd())

	return cmd
}

func addExpenseCmd() *cobra.Command {
	var (
		date        string
		category    string
		description string
		amountStr   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Long: `Record an expense. The date must be DD-MM-YYYY; it defaults to today.
After saving, the month's budget is rechecked and a warning is printed
when spending crosses 90% of recorded income.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			amount, err := model.ParseAmount(amountStr)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			cat, err := store.GetCategoryByName(ctx, strings.TrimSpace(category))
			if err != nil {
				return fmt.Errorf("failed to look up category: %w", err)
			}
			if cat == nil {
				return common.NewUserError(
					fmt.Sprintf("no category named %q; run 'chitieu categories list'", category), nil)
			}

			_, err = newLedger(store).AddExpense(ctx, date, cat.ID, description, amount)
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", time.Now().Format(model.DateLayout), "expense date (DD-MM-YYYY)")
	cmd.Flags().StringVar(&category, "category", "", "category name")
	cmd.Flags().StringVar(&description, "description", "", "what the money went to")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount spent")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func listExpensesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all expenses",
		Long:  `Display every expense, newest first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			expenses, err := store.GetAllExpenses(ctx)
			if err != nil {
				return fmt.Errorf("failed to get expenses: %w", err)
			}

			if len(expenses) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses recorded yet."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Date"),
				cli.TableHeaderStyle.Render("Category"),
				cli.TableHeaderStyle.Render("Description"),
				cli.TableHeaderStyle.Render("Amount"))

			for _, e := range expenses {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\n", e.ID, e.Date, e.CategoryName, e.Description, e.Amount)
			}

			return nil
		},
	}
}

func summaryCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize spending by category",
		Long: `Show per-category spending totals, largest first. With --month the
summary is restricted to one MM-YYYY month.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			var totals []model.CategoryTotal
			if month = strings.TrimSpace(month); month != "" {
				if _, err := model.ParseMonth(month); err != nil {
					return err
				}
				totals, err = store.GetCategorySummaryForMonth(ctx, month)
			} else {
				totals, err = store.GetCategorySummary(ctx)
			}
			if err != nil {
				return fmt.Errorf("failed to get summary: %w", err)
			}

			if len(totals) == 0 {
				fmt.Println(cli.InfoStyle.Render("Nothing to summarize yet."))
				return nil
			}

			title := "Spending by category"
			if month != "" {
				title += " for " + month
			}
			fmt.Println(cli.FormatTitle(title))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			var grand float64
			for _, t := range totals {
				grand += t.Total
				fmt.Fprintf(w, "%s\t%.2f\n", t.CategoryName, t.Total)
			}
			fmt.Fprintf(w, "%s\t%.2f\n", cli.TableHeaderStyle.Render("Total"), grand)

			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "restrict to one month (MM-YYYY)")

	return cmd
}
