// Package budgetapi implements the outbound client for the budget service's
// REST API. It is the only component that talks to the network; everything it
// returns is the raw wire shape from internal/models.
package budgetapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/budget_query_app/internal/apperrors"
	portsclients "github.com/SscSPs/budget_query_app/internal/core/ports/clients"
	"github.com/SscSPs/budget_query_app/internal/models"
)

const (
	defaultTimeout = 30 * time.Second
	maxErrorBody   = 32 * 1024
)

// APIError describes a non-2xx response from the budget service.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("budget service returned %d", e.StatusCode)
	}
	return fmt.Sprintf("budget service returned %d: %s", e.StatusCode, e.Detail)
}

// Client calls the budget service with a bearer token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// ClientOption configures optional parameters for the Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the default HTTP client, e.g. to set a timeout
// from configuration or to inject a test transport.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient creates a budget service client for the given base URL and token.
func NewClient(baseURL, token string, options ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// transactionsEnvelope mirrors the service's response wrapper.
type transactionsEnvelope struct {
	Data struct {
		Transactions []models.Transaction `json:"transactions"`
	} `json:"data"`
}

// errorEnvelope mirrors the service's error wrapper.
type errorEnvelope struct {
	Error struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Detail string `json:"detail"`
	} `json:"error"`
}

// ListTransactions fetches raw transaction records for a budget. The filter
// picks the narrowest upstream endpoint: a month listing, an account listing,
// or the full budget listing with an optional since_date cutoff. When both a
// month and an account are given, the month endpoint is used and the account
// constraint is applied locally, since the service offers no combined route.
func (c *Client) ListTransactions(ctx context.Context, budgetID string, filter portsclients.TransactionFilter) ([]models.Transaction, error) {
	reqURL, err := url.Parse(c.endpointFor(budgetID, filter))
	if err != nil {
		return nil, fmt.Errorf("parsing budget service URL: %w", err)
	}
	if filter.SinceDate != "" {
		query := reqURL.Query()
		query.Set("since_date", filter.SinceDate)
		reqURL.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building budget service request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling budget service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, c.apiError(resp)
	}

	var envelope transactionsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding transactions response: %w", err)
	}

	records := envelope.Data.Transactions
	if filter.Month != "" && filter.AccountID != "" {
		records = filterByAccount(records, filter.AccountID)
	}
	return records, nil
}

// endpointFor builds the listing URL for the filter. Months are addressed by
// their first day, the format the service expects.
func (c *Client) endpointFor(budgetID string, filter portsclients.TransactionFilter) string {
	base := c.baseURL + "/budgets/" + url.PathEscape(budgetID)
	switch {
	case filter.Month != "":
		return base + "/months/" + url.PathEscape(filter.Month+"-01") + "/transactions"
	case filter.AccountID != "":
		return base + "/accounts/" + url.PathEscape(filter.AccountID) + "/transactions"
	default:
		return base + "/transactions"
	}
}

func filterByAccount(records []models.Transaction, accountID string) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(records))
	for _, record := range records {
		if record.AccountID == accountID {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// apiError converts a non-2xx response into an *APIError, pulling the detail
// out of the service's error envelope when the body carries one. A 404 is
// additionally tagged with apperrors.ErrNotFound so callers can tell an
// unknown budget apart from an unavailable service.
func (c *Client) apiError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if readErr == nil {
		var envelope errorEnvelope
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Detail != "" {
			if envelope.Error.Name != "" {
				apiErr.Detail = envelope.Error.Name + ": " + envelope.Error.Detail
			} else {
				apiErr.Detail = envelope.Error.Detail
			}
		} else {
			apiErr.Detail = strings.TrimSpace(string(body))
		}
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", apperrors.ErrNotFound, apiErr)
	}
	return apiErr
}

// Ensure Client implements the reader port.
var _ portsclients.BudgetTransactionReader = (*Client)(nil)
