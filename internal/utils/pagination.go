package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mikiasgoitom/VidTube/internal/domain"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ParsePagination parses 1-based page and limit query values. Empty values fall
// back to the defaults; anything else must be a positive integer no larger than
// maxLimit when maxLimit is set.
func ParsePagination(pageStr, limitStr string, maxLimit int) (contract.Pagination, error) {
	page, err := parsePositive(pageStr, DefaultPage)
	if err != nil {
		return contract.Pagination{}, fmt.Errorf("%w: page must be a positive integer", domain.ErrInvalidArgument)
	}
	limit, err := parsePositive(limitStr, DefaultLimit)
	if err != nil {
		return contract.Pagination{}, fmt.Errorf("%w: limit must be a positive integer", domain.ErrInvalidArgument)
	}
	if maxLimit > 0 && limit > maxLimit {
		return contract.Pagination{}, fmt.Errorf("%w: limit must not exceed %d", domain.ErrInvalidArgument, maxLimit)
	}
	p := contract.Pagination{Page: page, Limit: limit}
	if p.OutOfRange() {
		return contract.Pagination{}, fmt.Errorf("%w: page is out of range", domain.ErrInvalidArgument)
	}
	return p, nil
}

func parsePositive(s string, fallback int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%d is not positive", n)
	}
	return n, nil
}

// TotalPages is the number of pages needed for total items at limit per page.
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
