package domain

import "github.com/shopspring/decimal"

// ClearedStatus is the reconciliation state of a transaction.
type ClearedStatus string

const (
	Cleared    ClearedStatus = "cleared"
	Uncleared  ClearedStatus = "uncleared"
	Reconciled ClearedStatus = "reconciled"
)

// Transaction is a normalized transaction record ready for display. The raw
// signed milliunit amount has been split into non-negative major-unit inflow
// and outflow; exactly one of the two is nonzero unless the amount was zero.
type Transaction struct {
	ID                    string          `json:"id"`
	Date                  string          `json:"date"` // YYYY-MM-DD, fixed width so lexicographic order is date order
	AccountName           string          `json:"account_name"`
	PayeeName             string          `json:"payee_name"`    // Empty if the service reported null
	CategoryName          string          `json:"category_name"` // Empty if the service reported null
	Memo                  string          `json:"memo"`          // Empty if the service reported null
	Inflow                decimal.Decimal `json:"inflow"`
	Outflow               decimal.Decimal `json:"outflow"`
	Cleared               ClearedStatus   `json:"cleared"`
	Approved              bool            `json:"approved"`
	TransferTransactionID string          `json:"transfer_transaction_id"` // Nonempty marks one half of a transfer
}

// IsTransfer reports whether this transaction is one half of an
// account-to-account transfer.
func (t Transaction) IsTransfer() bool {
	return t.TransferTransactionID != ""
}

// TransferGroup pairs the two halves of an account-to-account transfer.
// Primary is the outflow side, Related the inflow side.
type TransferGroup struct {
	Primary Transaction `json:"primary"`
	Related Transaction `json:"related"`
}
