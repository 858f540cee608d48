package domain

// MatchedField identifies which text field(s) of a transaction matched a search phrase.
type MatchedField string

const (
	MatchedFieldMemo  MatchedField = "memo"
	MatchedFieldPayee MatchedField = "payee"
	MatchedFieldBoth  MatchedField = "both"
)

// SearchResult is a transaction scored against a search phrase. Score is a
// heuristic relevance value; higher ranks earlier, and transactions scoring
// zero or below are never included in results.
type SearchResult struct {
	Transaction
	MatchedField MatchedField `json:"matched_field"`
	Score        float64      `json:"score"`
}

// SearchListing is one page of the search pipeline's output.
type SearchListing struct {
	Results    []SearchResult `json:"results"`
	Pagination PagePagination `json:"pagination"`
}
