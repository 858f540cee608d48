package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNoBudgetSelected indicates that no budget ID was supplied and no default
// budget is configured for the process.
var ErrNoBudgetSelected = errors.New("no budget selected")

// ErrUpstreamFetch indicates that the budgeting service call failed
// (network error, auth failure, rate limit, or a malformed response).
var ErrUpstreamFetch = errors.New("budget service fetch failed")
