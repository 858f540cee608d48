package transfers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/budget_query_app/internal/core/domain"
)

func transferTxn(id, linkID string, outflow, inflow int64) domain.Transaction {
	return domain.Transaction{
		ID:                    id,
		Date:                  "2024-03-05",
		Inflow:                decimal.NewFromInt(inflow),
		Outflow:               decimal.NewFromInt(outflow),
		TransferTransactionID: linkID,
	}
}

func TestGroupPairs_PairsPrimaryAndRelated(t *testing.T) {
	out := transferTxn("txn-out", "txn-in", 50, 0)
	in := transferTxn("txn-in", "txn-out", 0, 50)
	plain := domain.Transaction{ID: "txn-plain", Inflow: decimal.NewFromInt(10)}

	groups := GroupPairs([]domain.Transaction{out, in, plain})

	require.Len(t, groups, 1, "One pair should produce one group")
	group, ok := groups["txn-in"]
	require.True(t, ok, "Group should be keyed by the first half's transfer-link ID")
	assert.Equal(t, "txn-out", group.Primary.ID, "Outflow side should be primary")
	assert.Equal(t, "txn-in", group.Related.ID, "Inflow side should be related")
}

func TestGroupPairs_OrderInvariant(t *testing.T) {
	out := transferTxn("txn-out", "txn-in", 50, 0)
	in := transferTxn("txn-in", "txn-out", 0, 50)

	forward := GroupPairs([]domain.Transaction{out, in})
	reversed := GroupPairs([]domain.Transaction{in, out})

	require.Len(t, forward, 1)
	require.Len(t, reversed, 1)

	// Map keys differ with processing order, but the pair itself must not:
	// primary stays the outflow side regardless of which half is seen first.
	var fwd, rev domain.TransferGroup
	for _, g := range forward {
		fwd = g
	}
	for _, g := range reversed {
		rev = g
	}
	assert.Equal(t, fwd.Primary.ID, rev.Primary.ID, "Primary should not depend on input order")
	assert.Equal(t, fwd.Related.ID, rev.Related.ID, "Related should not depend on input order")
}

func TestGroupPairs_MissingCounterpart(t *testing.T) {
	// The counterpart is outside the working set (e.g. on another page).
	lonely := transferTxn("txn-out", "txn-elsewhere", 50, 0)

	groups := GroupPairs([]domain.Transaction{lonely})

	assert.Empty(t, groups, "A transfer without its counterpart in the set stays ungrouped")
}

func TestGroupPairs_ZeroAmountTransfer(t *testing.T) {
	// Neither side carries an outflow, so the half processed first is primary.
	a := transferTxn("txn-a", "txn-b", 0, 0)
	b := transferTxn("txn-b", "txn-a", 0, 0)

	groups := GroupPairs([]domain.Transaction{a, b})

	require.Len(t, groups, 1)
	group := groups["txn-b"]
	assert.Equal(t, "txn-a", group.Primary.ID, "Processed half wins when no side has an outflow")
	assert.Equal(t, "txn-b", group.Related.ID)
}

func TestGroupPairs_MultiplePairsSinglePass(t *testing.T) {
	txns := []domain.Transaction{
		transferTxn("a-out", "a-in", 10, 0),
		transferTxn("b-in", "b-out", 0, 25),
		transferTxn("a-in", "a-out", 0, 10),
		transferTxn("b-out", "b-in", 25, 0),
	}

	groups := GroupPairs(txns)

	require.Len(t, groups, 2)

	// No transaction may be primary in one group and related in another.
	primaries := make(map[string]bool)
	relateds := make(map[string]bool)
	for _, g := range groups {
		primaries[g.Primary.ID] = true
		relateds[g.Related.ID] = true
	}
	for id := range primaries {
		assert.False(t, relateds[id], "%s appears as both primary and related", id)
	}

	assert.Equal(t, "a-out", groups["a-in"].Primary.ID)
	assert.Equal(t, "b-out", groups["b-out"].Primary.ID)
}

func TestGroupPairs_NonTransfersIgnored(t *testing.T) {
	txns := []domain.Transaction{
		{ID: "plain-1", Outflow: decimal.NewFromInt(5)},
		{ID: "plain-2", Inflow: decimal.NewFromInt(5)},
	}

	assert.Empty(t, GroupPairs(txns))
}
