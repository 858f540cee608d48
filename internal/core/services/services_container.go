package services

import (
	portsclients "github.com/SscSPs/budget_query_app/internal/core/ports/clients"
	portssvc "github.com/SscSPs/budget_query_app/internal/core/ports/services"
	"github.com/SscSPs/budget_query_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, budgetClient portsclients.BudgetTransactionReader) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Transaction = NewTransactionService(
		budgetClient,
		WithDefaultBudgetID(cfg.DefaultBudgetID),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
)
