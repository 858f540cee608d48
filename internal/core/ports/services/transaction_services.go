package services

import (
	"context"

	"github.com/SscSPs/budget_query_app/internal/core/domain"
	"github.com/SscSPs/budget_query_app/internal/dto"
)

// TransactionReaderSvc defines the listing side of transaction queries.
type TransactionReaderSvc interface {
	// ListTransactions fetches a budget's transactions for the requested
	// window and runs them through normalization, sorting, pagination,
	// transfer grouping and summary aggregation.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*domain.TransactionListing, error)
}

// TransactionSearcherSvc defines free-text search over transactions.
type TransactionSearcherSvc interface {
	// SearchTransactions scores a budget's transactions against a search
	// phrase and returns one page of matches, best first.
	SearchTransactions(ctx context.Context, params dto.SearchTransactionsParams) (*domain.SearchListing, error)
}

// TransactionSvcFacade combines all transaction query operations.
// This is a facade for clients that need access to all operations.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionSearcherSvc
}
