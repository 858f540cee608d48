package models

// ClearedStatus is the reconciliation state the budgeting service reports for a transaction.
type ClearedStatus string

const (
	ClearedStatusCleared    ClearedStatus = "cleared"
	ClearedStatusUncleared  ClearedStatus = "uncleared"
	ClearedStatusReconciled ClearedStatus = "reconciled"
)

// Transaction is a raw transaction record exactly as the budgeting service returns it.
// Amount is in milliunits: 1000 milliunits equal one major currency unit, with
// outflows negative and inflows positive.
type Transaction struct {
	ID                    string        `json:"id"`   // Unique within the budget
	Date                  string        `json:"date"` // YYYY-MM-DD
	Amount                int64         `json:"amount"`
	Memo                  *string       `json:"memo"` // Nullable
	Cleared               ClearedStatus `json:"cleared"`
	Approved              bool          `json:"approved"`
	AccountID             string        `json:"account_id"`
	AccountName           string        `json:"account_name"`
	PayeeName             *string       `json:"payee_name"`    // Nullable
	CategoryName          *string       `json:"category_name"` // Nullable
	TransferAccountID     *string       `json:"transfer_account_id"`
	TransferTransactionID *string       `json:"transfer_transaction_id"` // Points at the counterpart record of a transfer
	Deleted               bool          `json:"deleted"`
}
