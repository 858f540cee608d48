package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/SscSPs/budget_query_app/internal/core/domain"
	"github.com/SscSPs/budget_query_app/internal/dto"
	"github.com/SscSPs/budget_query_app/internal/utils/pagination"
)

var (
	listMonth        string
	listSince        string
	listAccountID    string
	listOffset       int
	listLimit        int
	listPaymentsOnly bool
)

// listCmd lists transactions newest first, with transfer pairs grouped and a
// summary of the returned page.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newTransactionService()
		if err != nil {
			return err
		}

		listing, err := svc.ListTransactions(context.Background(), dto.ListTransactionsParams{
			BudgetID:     budgetID,
			AccountID:    listAccountID,
			Month:        listMonth,
			SinceDate:    listSince,
			Offset:       listOffset,
			Limit:        listLimit,
			PaymentsOnly: listPaymentsOnly,
		})
		if err != nil {
			return err
		}

		renderListing(listing)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listMonth, "month", "", "Month filter (YYYY-MM), wins over --since")
	listCmd.Flags().StringVar(&listSince, "since", "", "Earliest date to include (YYYY-MM-DD), defaults to 30 days ago")
	listCmd.Flags().StringVar(&listAccountID, "account", "", "Restrict to a single account ID")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "Offset into the filtered set")
	listCmd.Flags().IntVar(&listLimit, "limit", pagination.DefaultLimit, "Maximum transactions to return")
	listCmd.Flags().BoolVar(&listPaymentsOnly, "payments-only", false, "Exclude transfers entirely")

	rootCmd.AddCommand(listCmd)
}

func renderListing(listing *domain.TransactionListing) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Date", "Account", "Payee", "Category", "Memo", "Inflow", "Outflow", "Cleared"})
	for _, txn := range listing.Transactions {
		table.Append([]string{
			txn.Date,
			txn.AccountName,
			txn.PayeeName,
			txn.CategoryName,
			truncate(txn.Memo, 40),
			formatAmount(txn.Inflow),
			formatAmount(txn.Outflow),
			string(txn.Cleared),
		})
	}
	table.Render()

	if n := len(listing.RelatedTransactions); n > 0 {
		fmt.Printf("Transfer pairs reconciled on this page: %d\n", n)
	}
	printSummary(listing.Summary)
	printOffsetPagination(listing.Pagination, len(listing.Transactions))
}

func printSummary(s domain.Summary) {
	if s.DateRange.From != nil && s.DateRange.To != nil {
		fmt.Printf("Range: %s to %s\n", *s.DateRange.From, *s.DateRange.To)
	}
	fmt.Printf("Inflow: %s  Outflow: %s  Net: %s\n",
		s.TotalInflow.StringFixed(2), s.TotalOutflow.StringFixed(2), s.Net.StringFixed(2))
}

func printOffsetPagination(p domain.OffsetPagination, shown int) {
	fmt.Printf("Showing %d of %d transactions (offset %d)\n", shown, p.Total, p.Offset)
	if p.NextOffset != nil {
		fmt.Printf("More available: rerun with --offset %d\n", *p.NextOffset)
	}
}

// formatAmount renders a money column, leaving zero cells blank.
func formatAmount(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.StringFixed(2)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
