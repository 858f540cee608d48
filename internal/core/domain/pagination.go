package domain

// OffsetPagination describes the window an offset/limit query returned.
type OffsetPagination struct {
	Offset     int  `json:"offset"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	HasMore    bool `json:"has_more"`
	NextOffset *int `json:"next_offset"` // Nil when there is no further page
}

// PagePagination describes the window a page/page-size query returned.
type PagePagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	NextPage   *int `json:"next_page"` // Nil on the last page
}
