package domain

import "github.com/shopspring/decimal"

// DateRange is the inclusive min/max transaction date over a filtered set.
// Both ends are nil when the set is empty.
type DateRange struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

// Summary holds money totals for one page of transactions together with the
// date range of the full filtered set the page was drawn from. All money
// figures are rounded to 2 decimal places after summation.
type Summary struct {
	DateRange    DateRange       `json:"date_range"`
	TotalInflow  decimal.Decimal `json:"total_inflow"`
	TotalOutflow decimal.Decimal `json:"total_outflow"`
	Net          decimal.Decimal `json:"net"`
}
