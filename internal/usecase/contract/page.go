package usecasecontract

// Page is one page of a listing. Total is counted independently of Items and
// may briefly disagree with it under concurrent writes.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}
