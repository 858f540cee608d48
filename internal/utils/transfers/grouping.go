package transfers

import (
	"github.com/SscSPs/budget_query_app/internal/core/domain"
)

// GroupPairs reconciles transfer transactions within the given working set into
// primary/related pairs, keyed by the transfer-link ID of the first half
// encountered. Primary is the side with a nonzero outflow; when neither side
// has one (a zero-amount transfer) the half being processed wins.
//
// Grouping is scoped to the working set passed in: when a counterpart is not in
// the slice (for example the pair straddles a page boundary) the transaction
// simply stays ungrouped. That is a normal outcome, not an error.
func GroupPairs(txns []domain.Transaction) map[string]domain.TransferGroup {
	groups := make(map[string]domain.TransferGroup)

	byID := make(map[string]domain.Transaction, len(txns))
	for _, txn := range txns {
		byID[txn.ID] = txn
	}

	grouped := make(map[string]struct{}, len(txns))
	for _, txn := range txns {
		if !txn.IsTransfer() {
			continue
		}
		if _, done := grouped[txn.ID]; done {
			continue
		}

		counterpart, ok := byID[txn.TransferTransactionID]
		if !ok {
			continue
		}

		grouped[txn.ID] = struct{}{}
		grouped[counterpart.ID] = struct{}{}

		primary, related := txn, counterpart
		if !txn.Outflow.IsPositive() && counterpart.Outflow.IsPositive() {
			primary, related = counterpart, txn
		}
		groups[txn.TransferTransactionID] = domain.TransferGroup{
			Primary: primary,
			Related: related,
		}
	}

	return groups
}
