package contract

import (
	"context"

	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
)

type ITweetRepository interface {
	Create(ctx context.Context, tweet *entity.Tweet) error
	GetByID(ctx context.Context, tweetID string) (*entity.Tweet, error)
	ListByOwner(ctx context.Context, ownerID string, page Pagination) ([]entity.Tweet, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	UpdateContent(ctx context.Context, tweetID, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, tweetID string) error
}
