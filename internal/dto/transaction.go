package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/budget_query_app/internal/core/domain"
)

// ListTransactionsParams defines query parameters for listing transactions.
// Month takes precedence over SinceDate when both are given; when neither is
// given the service defaults to the last 30 days.
type ListTransactionsParams struct {
	BudgetID     string `form:"budget_id"`
	AccountID    string `form:"account_id"`
	Month        string `form:"month" binding:"omitempty,datetime=2006-01"`
	SinceDate    string `form:"since_date" binding:"omitempty,datetime=2006-01-02"`
	Offset       int    `form:"offset,default=0" binding:"omitempty,min=0"`
	Limit        int    `form:"limit,default=100" binding:"omitempty,min=1,max=500"`
	PaymentsOnly bool   `form:"payments_only"`
}

// SearchTransactionsParams defines query parameters for searching transactions.
type SearchTransactionsParams struct {
	BudgetID   string `form:"budget_id"`
	SearchText string `form:"q" binding:"required"`
	SinceDate  string `form:"since_date" binding:"required,datetime=2006-01-02"`
	Page       int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size,default=50" binding:"omitempty,min=1,max=100"`
}

// TransactionResponse defines the data returned for a single transaction.
// Mirrors domain.Transaction; money fields serialize as decimal strings.
type TransactionResponse struct {
	ID                    string          `json:"id"`
	Date                  string          `json:"date"`
	AccountName           string          `json:"account_name"`
	PayeeName             string          `json:"payee_name,omitempty"`
	CategoryName          string          `json:"category_name,omitempty"`
	Memo                  string          `json:"memo,omitempty"`
	Inflow                decimal.Decimal `json:"inflow"`
	Outflow               decimal.Decimal `json:"outflow"`
	Cleared               string          `json:"cleared"`
	Approved              bool            `json:"approved"`
	TransferTransactionID string          `json:"transfer_transaction_id,omitempty"`
}

// TransferGroupResponse pairs the two halves of a reconciled transfer.
type TransferGroupResponse struct {
	Primary TransactionResponse `json:"primary"`
	Related TransactionResponse `json:"related"`
}

// PaginationResponse carries offset/limit pagination metadata.
type PaginationResponse struct {
	Offset     int  `json:"offset"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	HasMore    bool `json:"has_more"`
	NextOffset *int `json:"next_offset"`
}

// DateRangeResponse is the inclusive date range of the full filtered set.
type DateRangeResponse struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

// SummaryResponse carries the page totals and full-set date range.
type SummaryResponse struct {
	DateRange    DateRangeResponse `json:"date_range"`
	TotalInflow  decimal.Decimal   `json:"total_inflow"`
	TotalOutflow decimal.Decimal   `json:"total_outflow"`
	Net          decimal.Decimal   `json:"net"`
}

// ListTransactionsResponse wraps one page of the transaction listing.
type ListTransactionsResponse struct {
	Transactions        []TransactionResponse            `json:"transactions"`
	RelatedTransactions map[string]TransferGroupResponse `json:"related_transactions"`
	Pagination          PaginationResponse               `json:"pagination"`
	Summary             SummaryResponse                  `json:"summary"`
}

// SearchResultResponse is a transaction annotated with match details.
type SearchResultResponse struct {
	TransactionResponse
	MatchedField string  `json:"matched_field"`
	Score        float64 `json:"score"`
}

// SearchTransactionsResponse wraps one page of search results.
type SearchTransactionsResponse struct {
	TotalMatches int                    `json:"total_matches"`
	Results      []SearchResultResponse `json:"results"`
	NextPage     *int                   `json:"next_page"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                    txn.ID,
		Date:                  txn.Date,
		AccountName:           txn.AccountName,
		PayeeName:             txn.PayeeName,
		CategoryName:          txn.CategoryName,
		Memo:                  txn.Memo,
		Inflow:                txn.Inflow,
		Outflow:               txn.Outflow,
		Cleared:               string(txn.Cleared),
		Approved:              txn.Approved,
		TransferTransactionID: txn.TransferTransactionID,
	}
}

// ToListTransactionsResponse converts a domain.TransactionListing to its response DTO.
func ToListTransactionsResponse(listing *domain.TransactionListing) ListTransactionsResponse {
	transactions := make([]TransactionResponse, len(listing.Transactions))
	for i, txn := range listing.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	related := make(map[string]TransferGroupResponse, len(listing.RelatedTransactions))
	for linkID, group := range listing.RelatedTransactions {
		related[linkID] = TransferGroupResponse{
			Primary: ToTransactionResponse(group.Primary),
			Related: ToTransactionResponse(group.Related),
		}
	}

	return ListTransactionsResponse{
		Transactions:        transactions,
		RelatedTransactions: related,
		Pagination: PaginationResponse{
			Offset:     listing.Pagination.Offset,
			Limit:      listing.Pagination.Limit,
			Total:      listing.Pagination.Total,
			HasMore:    listing.Pagination.HasMore,
			NextOffset: listing.Pagination.NextOffset,
		},
		Summary: SummaryResponse{
			DateRange: DateRangeResponse{
				From: listing.Summary.DateRange.From,
				To:   listing.Summary.DateRange.To,
			},
			TotalInflow:  listing.Summary.TotalInflow,
			TotalOutflow: listing.Summary.TotalOutflow,
			Net:          listing.Summary.Net,
		},
	}
}

// ToSearchTransactionsResponse converts a domain.SearchListing to its response DTO.
func ToSearchTransactionsResponse(listing *domain.SearchListing) SearchTransactionsResponse {
	results := make([]SearchResultResponse, len(listing.Results))
	for i, res := range listing.Results {
		results[i] = SearchResultResponse{
			TransactionResponse: ToTransactionResponse(res.Transaction),
			MatchedField:        string(res.MatchedField),
			Score:               res.Score,
		}
	}

	return SearchTransactionsResponse{
		TotalMatches: listing.Pagination.Total,
		Results:      results,
		NextPage:     listing.Pagination.NextPage,
	}
}
