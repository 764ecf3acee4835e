package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikiasgoitom/VidTube/internal/domain"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
	"github.com/mikiasgoitom/VidTube/internal/utils"
	"golang.org/x/sync/errgroup"
)

const defaultMaxPageSize = 100

// checkPage fills in defaults for a zero page request and rejects malformed ones.
func checkPage(page contract.Pagination, maxLimit int) (contract.Pagination, error) {
	if page.Page == 0 {
		page.Page = utils.DefaultPage
	}
	if page.Limit == 0 {
		page.Limit = utils.DefaultLimit
	}
	if maxLimit <= 0 {
		maxLimit = defaultMaxPageSize
	}
	if page.Page < 0 || page.Limit < 0 {
		return page, fmt.Errorf("%w: page and limit must be positive", domain.ErrInvalidArgument)
	}
	if page.Limit > maxLimit {
		return page, fmt.Errorf("%w: limit must not exceed %d", domain.ErrInvalidArgument, maxLimit)
	}
	if page.OutOfRange() {
		return page, fmt.Errorf("%w: page is out of range", domain.ErrInvalidArgument)
	}
	return page, nil
}

// fetchPage runs the page query and the total count concurrently.
func fetchPage[T any](
	ctx context.Context,
	page contract.Pagination,
	list func(ctx context.Context) ([]T, error),
	count func(ctx context.Context) (int64, error),
) (*usecasecontract.Page[T], error) {
	var (
		items []T
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = list(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return &usecasecontract.Page[T]{
		Items:      items,
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: utils.TotalPages(total, page.Limit),
	}, nil
}

// storeErr passes through domain errors from a repository and reports anything
// else as an upstream failure.
func storeErr(op string, err error) error {
	for _, known := range []error{domain.ErrNotFound, domain.ErrConflict, domain.ErrInvalidArgument} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: failed to %s: %w", domain.ErrUpstream, op, err)
}
