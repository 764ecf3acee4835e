package contract

import (
	"context"

	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
)

// VideoFilter selects and orders videos for listing.
type VideoFilter struct {
	OwnerID       *string
	PublishedOnly bool
	SortBy        string // created_at, views, duration, title, like_count
	SortOrder     string // asc or desc
	Pagination
}

type IVideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error
	GetByID(ctx context.Context, videoID string) (*entity.Video, error)
	GetByIDs(ctx context.Context, videoIDs []string) ([]entity.Video, error)
	List(ctx context.Context, filter VideoFilter) ([]entity.Video, error)
	Count(ctx context.Context, filter VideoFilter) (int64, error)
	Update(ctx context.Context, videoID string, update entity.VideoUpdate) (*entity.Video, error)
	SetPublished(ctx context.Context, videoID string, published bool) error
	IncrementViews(ctx context.Context, videoID string) error
	Delete(ctx context.Context, videoID string) error
}
