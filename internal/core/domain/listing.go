package domain

// TransactionListing is one page of the listing pipeline's output: the page of
// transactions, transfer pairs reconciled within that page, pagination
// metadata, and the page summary.
type TransactionListing struct {
	Transactions        []Transaction            `json:"transactions"`
	RelatedTransactions map[string]TransferGroup `json:"related_transactions"`
	Pagination          OffsetPagination         `json:"pagination"`
	Summary             Summary                  `json:"summary"`
}
