package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/SscSPs/budget_query_app/internal/core/domain"
	"github.com/SscSPs/budget_query_app/internal/dto"
	"github.com/SscSPs/budget_query_app/internal/utils/pagination"
)

var (
	searchSince    string
	searchPage     int
	searchPageSize int
)

// searchCmd ranks transactions against a phrase over memo and payee.
var searchCmd = &cobra.Command{
	Use:   "search <phrase>",
	Short: "Search transactions by memo and payee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newTransactionService()
		if err != nil {
			return err
		}

		res, err := svc.SearchTransactions(context.Background(), dto.SearchTransactionsParams{
			BudgetID:   budgetID,
			SearchText: args[0],
			SinceDate:  searchSince,
			Page:       searchPage,
			PageSize:   searchPageSize,
		})
		if err != nil {
			return err
		}

		renderSearch(res)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchSince, "since", "", "Earliest date to include (YYYY-MM-DD)")
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "Page number")
	searchCmd.Flags().IntVar(&searchPageSize, "page-size", pagination.DefaultPageSize, "Results per page")
	_ = searchCmd.MarkFlagRequired("since")

	rootCmd.AddCommand(searchCmd)
}

func renderSearch(res *domain.SearchListing) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Score", "Match", "Date", "Payee", "Memo", "Inflow", "Outflow"})
	for _, r := range res.Results {
		table.Append([]string{
			fmt.Sprintf("%.1f", r.Score),
			string(r.MatchedField),
			r.Date,
			r.PayeeName,
			truncate(r.Memo, 40),
			formatAmount(r.Inflow),
			formatAmount(r.Outflow),
		})
	}
	table.Render()

	fmt.Printf("%d matches, page %d of %d\n", res.Pagination.Total, res.Pagination.Page, res.Pagination.TotalPages)
	if res.Pagination.NextPage != nil {
		fmt.Printf("More available: rerun with --page %d\n", *res.Pagination.NextPage)
	}
}
