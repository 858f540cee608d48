package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/budget_query_app/internal/apperrors"
	portsclients "github.com/SscSPs/budget_query_app/internal/core/ports/clients"
	portssvc "github.com/SscSPs/budget_query_app/internal/core/ports/services"
	"github.com/SscSPs/budget_query_app/internal/core/services"
	"github.com/SscSPs/budget_query_app/internal/dto"
	"github.com/SscSPs/budget_query_app/internal/models"
)

// --- Mock BudgetTransactionReader ---
type MockBudgetClient struct {
	mock.Mock
}

func (m *MockBudgetClient) ListTransactions(ctx context.Context, budgetID string, filter portsclients.TransactionFilter) ([]models.Transaction, error) {
	args := m.Called(ctx, budgetID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portsclients.BudgetTransactionReader = (*MockBudgetClient)(nil)

func strPtr(s string) *string {
	return &s
}

func rawTxn(id, date string, amount int64) models.Transaction {
	return models.Transaction{
		ID:          id,
		Date:        date,
		Amount:      amount,
		AccountName: "Checking",
		Cleared:     models.ClearedStatusCleared,
		Approved:    true,
	}
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockClient *MockBudgetClient
	service    portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockClient = new(MockBudgetClient)
	suite.service = services.NewTransactionService(
		suite.mockClient,
		services.WithDefaultBudgetID("budget-default"),
	)
}

// --- Listing ---

func (suite *TransactionServiceTestSuite) TestListTransactions_Success() {
	ctx := context.Background()
	raw := []models.Transaction{
		rawTxn("txn-old", "2024-03-01", 10000),
		rawTxn("txn-gone", "2024-03-02", 5000),
		rawTxn("txn-new", "2024-03-09", -25500),
	}
	raw[1].Deleted = true

	expectedFilter := portsclients.TransactionFilter{SinceDate: "2024-03-01"}
	suite.mockClient.On("ListTransactions", ctx, "budget-1", expectedFilter).Return(raw, nil).Once()

	listing, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{
		BudgetID:  "budget-1",
		SinceDate: "2024-03-01",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(listing)

	// Deleted record dropped, remainder sorted newest first.
	suite.Require().Len(listing.Transactions, 2)
	suite.Equal("txn-new", listing.Transactions[0].ID)
	suite.Equal("txn-old", listing.Transactions[1].ID)
	suite.True(listing.Transactions[0].Outflow.Equal(decimal.RequireFromString("25.5")))
	suite.True(listing.Transactions[1].Inflow.Equal(decimal.NewFromInt(10)))

	suite.Equal(2, listing.Pagination.Total)
	suite.False(listing.Pagination.HasMore)
	suite.Nil(listing.Pagination.NextOffset)

	suite.True(listing.Summary.TotalInflow.Equal(decimal.NewFromInt(10)))
	suite.True(listing.Summary.TotalOutflow.Equal(decimal.RequireFromString("25.5")))
	suite.True(listing.Summary.Net.Equal(decimal.RequireFromString("-15.5")))
	suite.Require().NotNil(listing.Summary.DateRange.From)
	suite.Equal("2024-03-01", *listing.Summary.DateRange.From)
	suite.Equal("2024-03-09", *listing.Summary.DateRange.To)

	suite.Empty(listing.RelatedTransactions)
	suite.mockClient.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_DefaultBudget() {
	ctx := context.Background()
	suite.mockClient.On("ListTransactions", ctx, "budget-default", mock.AnythingOfType("clients.TransactionFilter")).
		Return([]models.Transaction{}, nil).Once()

	listing, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{SinceDate: "2024-01-01"})

	suite.Require().NoError(err)
	suite.Empty(listing.Transactions)
	suite.mockClient.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_NoBudgetSelected() {
	ctx := context.Background()
	svc := services.NewTransactionService(suite.mockClient) // no default budget

	listing, err := svc.ListTransactions(ctx, dto.ListTransactionsParams{SinceDate: "2024-01-01"})

	suite.Require().Error(err)
	suite.Nil(listing)
	suite.ErrorIs(err, apperrors.ErrNoBudgetSelected)
	suite.mockClient.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionServiceTestSuite) TestListTransactions_MonthWinsOverSince() {
	ctx := context.Background()
	expectedFilter := portsclients.TransactionFilter{Month: "2024-03"}
	suite.mockClient.On("ListTransactions", ctx, "budget-1", expectedFilter).
		Return([]models.Transaction{}, nil).Once()

	_, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{
		BudgetID:  "budget-1",
		Month:     "2024-03",
		SinceDate: "2024-01-01",
	})

	suite.Require().NoError(err)
	suite.mockClient.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_DefaultSinceWindow() {
	ctx := context.Background()
	expectedSince := time.Now().AddDate(0, 0, -30).Format("2006-01-02")

	suite.mockClient.On("ListTransactions", ctx, "budget-1", mock.MatchedBy(func(f portsclients.TransactionFilter) bool {
		return f.Month == "" && f.SinceDate == expectedSince
	})).Return([]models.Transaction{}, nil).Once()

	_, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{BudgetID: "budget-1"})

	suite.Require().NoError(err)
	suite.mockClient.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_FetchError() {
	ctx := context.Background()
	upstreamErr := assert.AnError

	suite.mockClient.On("ListTransactions", ctx, "budget-1", mock.AnythingOfType("clients.TransactionFilter")).
		Return(nil, upstreamErr).Once()

	listing, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{
		BudgetID:  "budget-1",
		SinceDate: "2024-01-01",
	})

	suite.Require().Error(err)
	suite.Nil(listing)
	suite.ErrorIs(err, apperrors.ErrUpstreamFetch)
	suite.ErrorIs(err, upstreamErr, "The underlying cause should stay in the chain")
	suite.mockClient.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_BudgetNotFound() {
	ctx := context.Background()
	notFoundErr := fmt.Errorf("%w: budget service returned 404", apperrors.ErrNotFound)

	suite.mockClient.On("ListTransactions", ctx, "budget-missing", mock.AnythingOfType("clients.TransactionFilter")).
		Return(nil, notFoundErr).Once()

	listing, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{
		BudgetID:  "budget-missing",
		SinceDate: "2024-01-01",
	})

	suite.Require().Error(err)
	suite.Nil(listing)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.NotErrorIs(err, apperrors.ErrUpstreamFetch, "A missing budget is not a fetch failure")
	suite.mockClient.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_TransferPairGrouped() {
	ctx := context.Background()
	out := rawTxn("txn-out", "2024-03-05", -50000)
	out.TransferTransactionID = strPtr("txn-in")
	in := rawTxn("txn-in", "2024-03-05", 50000)
	in.TransferTransactionID = strPtr("txn-out")

	suite.mockClient.On("ListTransactions", ctx, "budget-1", mock.AnythingOfType("clients.TransactionFilter")).
		Return([]models.Transaction{out, in}, nil).Once()

	listing, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{
		BudgetID:  "budget-1",
		SinceDate: "2024-03-01",
	})

	suite.Require().NoError(err)
	suite.Len(listing.Transactions, 2)
	suite.Require().Len(listing.RelatedTransactions, 1)

	group, ok := listing.RelatedTransactions["txn-in"]
	suite.Require().True(ok, "Group should be keyed by the first half's transfer link")
	suite.Equal("txn-out", group.Primary.ID)
	suite.True(group.Primary.Outflow.Equal(decimal.NewFromInt(50)))
	suite.Equal("txn-in", group.Related.ID)
	suite.True(group.Related.Inflow.Equal(decimal.NewFromInt(50)))
	suite.mockClient.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_PaymentsOnly() {
	ctx := context.Background()
	out := rawTxn("txn-out", "2024-03-05", -50000)
	out.TransferTransactionID = strPtr("txn-in")
	in := rawTxn("txn-in", "2024-03-05", 50000)
	in.TransferTransactionID = strPtr("txn-out")
	payment := rawTxn("txn-coffee", "2024-03-06", -4500)

	suite.mockClient.On("ListTransactions", ctx, "budget-1", mock.AnythingOfType("clients.TransactionFilter")).
		Return([]models.Transaction{out, in, payment}, nil).Once()

	listing, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{
		BudgetID:     "budget-1",
		SinceDate:    "2024-03-01",
		PaymentsOnly: true,
	})

	suite.Require().NoError(err)
	suite.Require().Len(listing.Transactions, 1, "Both transfer halves should be excluded outright")
	suite.Equal("txn-coffee", listing.Transactions[0].ID)
	suite.Empty(listing.RelatedTransactions, "Grouping is skipped for payments-only requests")
	suite.mockClient.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_GroupingScopedToPage() {
	ctx := context.Background()
	out := rawTxn("txn-out", "2024-03-05", -50000)
	out.TransferTransactionID = strPtr("txn-in")
	in := rawTxn("txn-in", "2024-03-05", 50000)
	in.TransferTransactionID = strPtr("txn-out")

	suite.mockClient.On("ListTransactions", ctx, "budget-1", mock.AnythingOfType("clients.TransactionFilter")).
		Return([]models.Transaction{out, in}, nil).Once()

	listing, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{
		BudgetID:  "budget-1",
		SinceDate: "2024-03-01",
		Limit:     1,
	})

	suite.Require().NoError(err)
	suite.Len(listing.Transactions, 1)
	suite.Empty(listing.RelatedTransactions, "A pair split across pages stays ungrouped")
	suite.True(listing.Pagination.HasMore)
	suite.mockClient.AssertExpectations(suite.T())
}

// --- Search ---

func (suite *TransactionServiceTestSuite) TestSearchTransactions_RanksResults() {
	ctx := context.Background()
	exact := rawTxn("txn-exact", "2024-03-01", -1000)
	exact.Memo = strPtr("rent")
	late := rawTxn("txn-late", "2024-03-02", -2000)
	late.Memo = strPtr("xx rent")
	payee := rawTxn("txn-payee", "2024-03-03", -3000)
	payee.PayeeName = strPtr("rental co")
	unrelated := rawTxn("txn-none", "2024-03-04", -4000)
	unrelated.Memo = strPtr("zzz")

	expectedFilter := portsclients.TransactionFilter{SinceDate: "2024-03-01"}
	suite.mockClient.On("ListTransactions", ctx, "budget-1", expectedFilter).
		Return([]models.Transaction{late, unrelated, exact, payee}, nil).Once()

	res, err := suite.service.SearchTransactions(ctx, dto.SearchTransactionsParams{
		BudgetID:   "budget-1",
		SearchText: "Rent",
		SinceDate:  "2024-03-01",
	})

	suite.Require().NoError(err)
	suite.Require().Len(res.Results, 3)
	suite.Equal("txn-exact", res.Results[0].ID)
	suite.Equal(100.0, res.Results[0].Score)
	suite.Equal("txn-payee", res.Results[1].ID, "Substring at position 0 outranks position 3")
	suite.Equal("txn-late", res.Results[2].ID)
	suite.Equal(3, res.Pagination.Total)
	suite.Nil(res.Pagination.NextPage)
	suite.mockClient.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestSearchTransactions_TieBreakByDate() {
	ctx := context.Background()
	older := rawTxn("txn-older", "2024-03-01", -1000)
	older.Memo = strPtr("rent")
	newer := rawTxn("txn-newer", "2024-03-09", -1000)
	newer.Memo = strPtr("rent")

	suite.mockClient.On("ListTransactions", ctx, "budget-1", mock.AnythingOfType("clients.TransactionFilter")).
		Return([]models.Transaction{older, newer}, nil).Once()

	res, err := suite.service.SearchTransactions(ctx, dto.SearchTransactionsParams{
		BudgetID:   "budget-1",
		SearchText: "rent",
		SinceDate:  "2024-03-01",
	})

	suite.Require().NoError(err)
	suite.Require().Len(res.Results, 2)
	suite.Equal("txn-newer", res.Results[0].ID, "Equal scores should rank the newer transaction first")
	suite.Equal("txn-older", res.Results[1].ID)
	suite.mockClient.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestSearchTransactions_Paging() {
	ctx := context.Background()
	raw := make([]models.Transaction, 0, 120)
	for i := 0; i < 120; i++ {
		txn := rawTxn(uuidLike(i), "2024-03-05", -1000)
		txn.Memo = strPtr("rent")
		raw = append(raw, txn)
	}

	suite.mockClient.On("ListTransactions", ctx, "budget-1", mock.AnythingOfType("clients.TransactionFilter")).
		Return(raw, nil).Once()

	res, err := suite.service.SearchTransactions(ctx, dto.SearchTransactionsParams{
		BudgetID:   "budget-1",
		SearchText: "rent",
		SinceDate:  "2024-03-01",
		Page:       2,
		PageSize:   50,
	})

	suite.Require().NoError(err)
	suite.Len(res.Results, 50)
	suite.Equal(120, res.Pagination.Total)
	suite.Equal(3, res.Pagination.TotalPages)
	suite.Require().NotNil(res.Pagination.NextPage)
	suite.Equal(3, *res.Pagination.NextPage)
	suite.mockClient.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestSearchTransactions_EmptyText() {
	ctx := context.Background()

	res, err := suite.service.SearchTransactions(ctx, dto.SearchTransactionsParams{
		BudgetID:   "budget-1",
		SearchText: "   ",
		SinceDate:  "2024-03-01",
	})

	suite.Require().Error(err)
	suite.Nil(res)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockClient.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionServiceTestSuite) TestSearchTransactions_FetchError() {
	ctx := context.Background()
	suite.mockClient.On("ListTransactions", ctx, "budget-1", mock.AnythingOfType("clients.TransactionFilter")).
		Return(nil, assert.AnError).Once()

	res, err := suite.service.SearchTransactions(ctx, dto.SearchTransactionsParams{
		BudgetID:   "budget-1",
		SearchText: "rent",
		SinceDate:  "2024-03-01",
	})

	suite.Require().Error(err)
	suite.Nil(res)
	suite.ErrorIs(err, apperrors.ErrUpstreamFetch)
	suite.mockClient.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestSearchTransactions_NoMatches() {
	ctx := context.Background()
	txn := rawTxn("txn-1", "2024-03-05", -1000)
	txn.Memo = strPtr("lunch")

	suite.mockClient.On("ListTransactions", ctx, "budget-1", mock.AnythingOfType("clients.TransactionFilter")).
		Return([]models.Transaction{txn}, nil).Once()

	res, err := suite.service.SearchTransactions(ctx, dto.SearchTransactionsParams{
		BudgetID:   "budget-1",
		SearchText: "xyz",
		SinceDate:  "2024-03-01",
	})

	suite.Require().NoError(err)
	suite.Empty(res.Results)
	suite.Equal(0, res.Pagination.Total)
	suite.Nil(res.Pagination.NextPage)
	suite.mockClient.AssertExpectations(suite.T())
}

// uuidLike builds distinct stable IDs for bulk fixtures.
func uuidLike(i int) string {
	return fmt.Sprintf("txn-%03d", i)
}

// --- Run Suite ---
func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
