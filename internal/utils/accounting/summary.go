package accounting

import (
	"github.com/SscSPs/budget_query_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Summarize computes the money totals for the supplied page of transactions
// and the date range over the full filtered set the page came from. Totals
// cover the page only; the date range covers the whole set. Each money figure
// is rounded to 2 decimal places once, after summation, so sub-cent milliunit
// remainders never accumulate per transaction.
func Summarize(page []domain.Transaction, full []domain.Transaction) domain.Summary {
	var totalInflow, totalOutflow decimal.Decimal
	for _, txn := range page {
		totalInflow = totalInflow.Add(txn.Inflow)
		totalOutflow = totalOutflow.Add(txn.Outflow)
	}
	net := totalInflow.Sub(totalOutflow)

	return domain.Summary{
		DateRange:    dateRange(full),
		TotalInflow:  totalInflow.Round(2),
		TotalOutflow: totalOutflow.Round(2),
		Net:          net.Round(2),
	}
}

// dateRange finds the lexicographic min/max date over txns. The fixed-width
// YYYY-MM-DD format makes string comparison equivalent to date comparison.
func dateRange(txns []domain.Transaction) domain.DateRange {
	if len(txns) == 0 {
		return domain.DateRange{}
	}

	from, to := txns[0].Date, txns[0].Date
	for _, txn := range txns[1:] {
		if txn.Date < from {
			from = txn.Date
		}
		if txn.Date > to {
			to = txn.Date
		}
	}
	return domain.DateRange{From: &from, To: &to}
}
