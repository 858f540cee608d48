package mapping

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/budget_query_app/internal/core/domain"
	"github.com/SscSPs/budget_query_app/internal/models"
)

var milliunitsPerUnit = decimal.NewFromInt(1000)

// ToDomainTransaction converts a raw service Transaction to a domain Transaction.
// The signed milliunit amount becomes a non-negative inflow/outflow split in
// major units: positive amounts fill Inflow, negative amounts fill Outflow,
// and a zero amount leaves both at zero.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	amount := decimal.NewFromInt(m.Amount).Div(milliunitsPerUnit)

	var inflow, outflow decimal.Decimal
	if amount.IsPositive() {
		inflow = amount
	} else {
		outflow = amount.Neg()
	}

	return domain.Transaction{
		ID:                    m.ID,
		Date:                  m.Date,
		AccountName:           m.AccountName,
		PayeeName:             derefString(m.PayeeName),
		CategoryName:          derefString(m.CategoryName),
		Memo:                  derefString(m.Memo),
		Inflow:                inflow,
		Outflow:               outflow,
		Cleared:               domain.ClearedStatus(m.Cleared),
		Approved:              m.Approved,
		TransferTransactionID: derefString(m.TransferTransactionID),
	}
}

// ToDomainTransactionSlice converts a slice of raw Transactions to domain
// Transactions, dropping records the service has soft-deleted. Input order is
// preserved.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, 0, len(ms))
	for _, m := range ms {
		if m.Deleted {
			continue
		}
		ds = append(ds, ToDomainTransaction(m))
	}
	return ds
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
