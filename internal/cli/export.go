package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SscSPs/budget_query_app/internal/dto"
	"github.com/SscSPs/budget_query_app/internal/utils/export"
	"github.com/SscSPs/budget_query_app/internal/utils/pagination"
)

var (
	exportFormat       string
	exportOut          string
	exportMonth        string
	exportSince        string
	exportAccountID    string
	exportPaymentsOnly bool
)

// exportCmd writes the filtered listing to a CSV or XLSX file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions to CSV or XLSX",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportFormat != "csv" && exportFormat != "xlsx" {
			return fmt.Errorf("unsupported format %q (want csv or xlsx)", exportFormat)
		}
		if exportOut == "" {
			exportOut = "transactions." + exportFormat
		}

		svc, err := newTransactionService()
		if err != nil {
			return err
		}

		listing, err := svc.ListTransactions(context.Background(), dto.ListTransactionsParams{
			BudgetID:     budgetID,
			AccountID:    exportAccountID,
			Month:        exportMonth,
			SinceDate:    exportSince,
			Limit:        pagination.MaxLimit,
			PaymentsOnly: exportPaymentsOnly,
		})
		if err != nil {
			return err
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", exportOut, err)
		}
		defer f.Close()

		switch exportFormat {
		case "csv":
			err = export.WriteCSV(f, listing.Transactions)
		case "xlsx":
			err = export.WriteXLSX(f, listing.Transactions)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Wrote %d transactions to %s\n", len(listing.Transactions), exportOut)
		if listing.Pagination.HasMore {
			fmt.Printf("Window holds %d transactions; narrow the range to export the rest\n", listing.Pagination.Total)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv or xlsx")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (defaults to transactions.<format>)")
	exportCmd.Flags().StringVar(&exportMonth, "month", "", "Month filter (YYYY-MM), wins over --since")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "Earliest date to include (YYYY-MM-DD), defaults to 30 days ago")
	exportCmd.Flags().StringVar(&exportAccountID, "account", "", "Restrict to a single account ID")
	exportCmd.Flags().BoolVar(&exportPaymentsOnly, "payments-only", false, "Exclude transfers entirely")

	rootCmd.AddCommand(exportCmd)
}
