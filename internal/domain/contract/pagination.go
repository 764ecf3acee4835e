package contract

import "math"

// Pagination is a 1-based page request.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Skip is the number of documents before the requested page. It saturates
// instead of wrapping when the page lies beyond what an int64 offset can hold.
func (p Pagination) Skip() int64 {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.OutOfRange() {
		return math.MaxInt64
	}
	return int64(p.Page-1) * int64(p.Limit)
}

// OutOfRange reports whether the page offset overflows an int64.
func (p Pagination) OutOfRange() bool {
	if p.Page <= 1 || p.Limit <= 0 {
		return false
	}
	return int64(p.Page-1) > math.MaxInt64/int64(p.Limit)
}
