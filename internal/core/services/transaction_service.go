package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/budget_query_app/internal/apperrors"
	"github.com/SscSPs/budget_query_app/internal/core/domain"
	portsclients "github.com/SscSPs/budget_query_app/internal/core/ports/clients"
	portssvc "github.com/SscSPs/budget_query_app/internal/core/ports/services"
	"github.com/SscSPs/budget_query_app/internal/dto"
	"github.com/SscSPs/budget_query_app/internal/utils/accounting"
	"github.com/SscSPs/budget_query_app/internal/utils/mapping"
	"github.com/SscSPs/budget_query_app/internal/utils/pagination"
	"github.com/SscSPs/budget_query_app/internal/utils/search"
	"github.com/SscSPs/budget_query_app/internal/utils/transfers"
)

const dateLayout = "2006-01-02"

// defaultListingWindowDays is how far back the listing looks when the caller
// supplies neither a month nor a since date.
const defaultListingWindowDays = 30

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	client          portsclients.BudgetTransactionReader
	defaultBudgetID string
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithDefaultBudgetID sets the budget used when a request names none.
func WithDefaultBudgetID(budgetID string) TransactionServiceOption {
	return func(s *transactionService) {
		s.defaultBudgetID = budgetID
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(client portsclients.BudgetTransactionReader, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		client: client,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*domain.TransactionListing, error) {
	budgetID, err := s.resolveBudgetID(params.BudgetID)
	if err != nil {
		s.LogError(ctx, err, "No budget available for listing transactions")
		return nil, err
	}

	filter := portsclients.TransactionFilter{
		Month:     params.Month,
		AccountID: params.AccountID,
	}
	if filter.Month == "" {
		filter.SinceDate = params.SinceDate
		if filter.SinceDate == "" {
			filter.SinceDate = time.Now().AddDate(0, 0, -defaultListingWindowDays).Format(dateLayout)
		}
	}

	txns, err := s.fetch(ctx, budgetID, filter)
	if err != nil {
		return nil, err
	}

	if params.PaymentsOnly {
		txns = excludeTransfers(txns)
	}
	sortByDateDesc(txns)

	page, meta := pagination.ByOffset(txns, params.Offset, params.Limit)

	// Transfer pairs are reconciled within the returned page only; a pair
	// split across pages stays ungrouped on both.
	related := map[string]domain.TransferGroup{}
	if !params.PaymentsOnly {
		related = transfers.GroupPairs(page)
	}

	summary := accounting.Summarize(page, txns)

	s.LogInfo(ctx, "Transactions listed",
		slog.String("budget_id", budgetID),
		slog.Int("total", meta.Total),
		slog.Int("returned", len(page)),
		slog.Int("transfer_groups", len(related)))

	return &domain.TransactionListing{
		Transactions:        page,
		RelatedTransactions: related,
		Pagination:          meta,
		Summary:             summary,
	}, nil
}

func (s *transactionService) SearchTransactions(ctx context.Context, params dto.SearchTransactionsParams) (*domain.SearchListing, error) {
	budgetID, err := s.resolveBudgetID(params.BudgetID)
	if err != nil {
		s.LogError(ctx, err, "No budget available for searching transactions")
		return nil, err
	}

	phrase := strings.ToLower(strings.TrimSpace(params.SearchText))
	if phrase == "" {
		return nil, fmt.Errorf("search text must not be empty: %w", apperrors.ErrValidation)
	}
	if params.SinceDate == "" {
		return nil, fmt.Errorf("since_date is required for search: %w", apperrors.ErrValidation)
	}

	txns, err := s.fetch(ctx, budgetID, portsclients.TransactionFilter{
		SinceDate: params.SinceDate,
	})
	if err != nil {
		return nil, err
	}

	var results []domain.SearchResult
	for _, txn := range txns {
		if res, ok := search.ScoreTransaction(txn, phrase); ok {
			results = append(results, res)
		}
	}

	// Best score first, newest first among equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Date > results[j].Date
	})

	page, meta := pagination.ByPage(results, params.Page, params.PageSize)

	s.LogInfo(ctx, "Transactions searched",
		slog.String("budget_id", budgetID),
		slog.Int("matches", meta.Total),
		slog.Int("returned", len(page)))

	return &domain.SearchListing{
		Results:    page,
		Pagination: meta,
	}, nil
}

// fetch pulls raw records from the budget service and normalizes them into
// domain transactions. Upstream failures are tagged ErrUpstreamFetch, except
// for a missing budget, which keeps its ErrNotFound identity.
func (s *transactionService) fetch(ctx context.Context, budgetID string, filter portsclients.TransactionFilter) ([]domain.Transaction, error) {
	raw, err := s.client.ListTransactions(ctx, budgetID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions from budget service",
			slog.String("budget_id", budgetID),
			slog.String("since_date", filter.SinceDate),
			slog.String("month", filter.Month))
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("fetching transactions for budget %s: %w", budgetID, err)
		}
		return nil, fmt.Errorf("fetching transactions for budget %s: %w: %w", budgetID, apperrors.ErrUpstreamFetch, err)
	}
	return mapping.ToDomainTransactionSlice(raw), nil
}

// resolveBudgetID picks the request's budget or falls back to the configured default.
func (s *transactionService) resolveBudgetID(requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}
	if s.defaultBudgetID != "" {
		return s.defaultBudgetID, nil
	}
	return "", fmt.Errorf("no budget_id given and no default budget configured: %w", apperrors.ErrNoBudgetSelected)
}

func excludeTransfers(txns []domain.Transaction) []domain.Transaction {
	payments := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.IsTransfer() {
			continue
		}
		payments = append(payments, txn)
	}
	return payments
}

func sortByDateDesc(txns []domain.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date > txns[j].Date
	})
}
