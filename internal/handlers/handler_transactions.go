package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/budget_query_app/internal/apperrors"
	portssvc "github.com/SscSPs/budget_query_app/internal/core/ports/services"
	"github.com/SscSPs/budget_query_app/internal/dto"
	"github.com/SscSPs/budget_query_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.GET("/search", h.searchTransactions)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions for a budget, newest first, with transfer pairs grouped and a summary of the returned page
// @Tags transactions
// @Produce  json
// @Param   budget_id query string false "Budget ID (falls back to the configured default)"
// @Param   account_id query string false "Restrict to a single account"
// @Param   month query string false "Month filter (YYYY-MM), wins over since_date"
// @Param   since_date query string false "Earliest date to include (YYYY-MM-DD), defaults to 30 days ago"
// @Param   offset query int false "Offset for pagination" default(0)
// @Param   limit query int false "Limit number of results" default(100) maximum(500)
// @Param   payments_only query bool false "Exclude transfers entirely"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "Budget not found"
// @Failure 502 {object} map[string]string "Budget service unavailable"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + bindingErrorMessage(err)})
		return
	}

	logger.Info("Received request to list transactions",
		slog.String("budget_id", params.BudgetID),
		slog.Int("offset", params.Offset),
		slog.Int("limit", params.Limit),
		slog.Bool("payments_only", params.PaymentsOnly),
	)

	listing, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		h.respondWithError(c, logger, err, "Failed to list transactions")
		return
	}

	logger.Info("Transactions listed successfully", slog.Int("count", len(listing.Transactions)))
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(listing))
}

// searchTransactions godoc
// @Summary Search transactions
// @Description Scores transactions against a search phrase over memo and payee and returns matches ranked by relevance
// @Tags transactions
// @Produce  json
// @Param   budget_id query string false "Budget ID (falls back to the configured default)"
// @Param   q query string true "Search phrase"
// @Param   since_date query string true "Earliest date to include (YYYY-MM-DD)"
// @Param   page query int false "Page number" default(1)
// @Param   page_size query int false "Results per page" default(50) maximum(100)
// @Success 200 {object} dto.SearchTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "Budget not found"
// @Failure 502 {object} map[string]string "Budget service unavailable"
// @Router /transactions/search [get]
func (h *transactionHandler) searchTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SearchTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for SearchTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + bindingErrorMessage(err)})
		return
	}

	logger.Info("Received request to search transactions",
		slog.String("budget_id", params.BudgetID),
		slog.String("search_text", params.SearchText),
		slog.Int("page", params.Page),
	)

	results, err := h.transactionService.SearchTransactions(c.Request.Context(), params)
	if err != nil {
		h.respondWithError(c, logger, err, "Failed to search transactions")
		return
	}

	logger.Info("Transactions searched successfully", slog.Int("matches", results.Pagination.Total))
	c.JSON(http.StatusOK, dto.ToSearchTransactionsResponse(results))
}

// bindingErrorMessage flattens validator field errors into one readable line.
// Non-validator binding errors (malformed numbers and the like) pass through
// unchanged.
func bindingErrorMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// respondWithError maps service errors onto HTTP statuses.
func (h *transactionHandler) respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrNoBudgetSelected):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUpstreamFetch):
		logger.Error("Budget service fetch failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
