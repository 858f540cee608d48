package pagination

import (
	"github.com/SscSPs/budget_query_app/internal/core/domain"
)

// Listing uses offset/limit addressing, search uses 1-indexed pages. Defaults
// and caps below are shared with the request DTOs and CLI flags.
const (
	DefaultLimit = 100
	MaxLimit     = 500

	DefaultPageSize = 50
	MaxPageSize     = 100
)

// ByOffset returns the window of items addressed by offset/limit plus the
// pagination metadata for it. The limit falls back to DefaultLimit when not
// positive and is capped at MaxLimit; negative offsets count as zero.
// Out-of-range offsets yield an empty window, not an error. The caller
// supplies items already sorted and filtered.
func ByOffset[T any](items []T, offset, limit int) ([]T, domain.OffsetPagination) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	total := len(items)
	start := min(offset, total)
	end := min(start+limit, total)

	meta := domain.OffsetPagination{
		Offset:  offset,
		Limit:   limit,
		Total:   total,
		HasMore: offset+limit < total,
	}
	if meta.HasMore {
		next := offset + limit
		meta.NextOffset = &next
	}

	return items[start:end], meta
}

// ByPage returns the window for a 1-indexed page of the given size plus its
// metadata. Page size falls back to DefaultPageSize when not positive and is
// capped at MaxPageSize; pages below 1 count as page 1. Pages past the end
// yield an empty window.
func ByPage[T any](items []T, page, pageSize int) ([]T, domain.PagePagination) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := min((page-1)*pageSize, total)
	end := min(start+pageSize, total)

	meta := domain.PagePagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
	if page < totalPages {
		next := page + 1
		meta.NextPage = &next
	}

	return items[start:end], meta
}
