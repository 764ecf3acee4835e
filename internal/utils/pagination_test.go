package utils_test

import (
	"math"
	"testing"

	"github.com/mikiasgoitom/VidTube/internal/domain"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination_Defaults(t *testing.T) {
	p, err := utils.ParsePagination("", "", 100)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, int64(0), p.Skip())
}

func TestParsePagination_Skip(t *testing.T) {
	p, err := utils.ParsePagination("3", "10", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(20), p.Skip())
}

func TestParsePagination_Invalid(t *testing.T) {
	cases := []struct{ page, limit string }{
		{"0", "10"},
		{"-1", "10"},
		{"abc", "10"},
		{"1", "0"},
		{"1", "ten"},
		{"1", "101"},
		{"100000000000000000", "100"},
		{"99999999999999999999999", "10"},
	}
	for _, tc := range cases {
		_, err := utils.ParsePagination(tc.page, tc.limit, 100)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument, "page=%q limit=%q", tc.page, tc.limit)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, utils.TotalPages(25, 10))
	assert.Equal(t, 1, utils.TotalPages(10, 10))
	assert.Equal(t, 0, utils.TotalPages(0, 10))
}

func TestPaginationSkipNeverWraps(t *testing.T) {
	huge := contract.Pagination{Page: 100000000000000000, Limit: 100}
	assert.True(t, huge.OutOfRange())
	assert.Equal(t, int64(math.MaxInt64), huge.Skip())

	edge := contract.Pagination{Page: math.MaxInt64/100 + 1, Limit: 100}
	assert.False(t, edge.OutOfRange())
	assert.Equal(t, int64(math.MaxInt64/100)*100, edge.Skip())

	assert.Equal(t, int64(0), contract.Pagination{}.Skip())
}
