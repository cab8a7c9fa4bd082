package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yunz06/quan-li-chi-tieu/internal/cli"
	"github.com/yunz06/quan-li-chi-tieu/internal/common"
	"github.com/yunz06/quan-li-chi-tieu/internal/report"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report [MM-YYYY]",
		Short: "Export a monthly report spreadsheet",
		Long: `Render a month's income and expenses into an .xlsx file. Without an
argument the current calendar month is exported. Existing reports for
the same month are never overwritten; a numeric suffix is appended.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var month string
			if len(args) == 1 {
				month = args[0]
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			path, err := report.NewExporter(store, reportDir()).Export(ctx, month)
			if err != nil {
				if errors.Is(err, common.ErrNoData) {
					return common.NewUserError("nothing to export", err)
				}
				return err
			}

			fmt.Println(cli.FormatSuccess("Report written to " + path))
			return nil
		},
	}
}
