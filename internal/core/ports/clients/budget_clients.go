package clients

import (
	"context"

	"github.com/SscSPs/budget_query_app/internal/models"
)

// TransactionFilter narrows a transaction fetch. Month and SinceDate are
// mutually exclusive; when both are set the client uses Month. AccountID
// optionally restricts the fetch to a single account.
type TransactionFilter struct {
	SinceDate string // YYYY-MM-DD
	Month     string // YYYY-MM
	AccountID string
}

// BudgetTransactionReader fetches raw transaction records from the external
// budgeting service. Implementations return records exactly as the service
// shaped them, soft-deleted entries included.
type BudgetTransactionReader interface {
	// ListTransactions retrieves the transactions of a budget matching filter.
	ListTransactions(ctx context.Context, budgetID string, filter TransactionFilter) ([]models.Transaction, error)
}
