package contract

import (
	"context"

	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
)

type ICommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, commentID string) (*entity.Comment, error)
	ListByVideo(ctx context.Context, videoID string, page Pagination) ([]entity.Comment, error)
	CountByVideo(ctx context.Context, videoID string) (int64, error)
	UpdateContent(ctx context.Context, commentID, content string) (*entity.Comment, error)
	Delete(ctx context.Context, commentID string) error
	// DeleteByVideo removes every comment of a video and returns their ids.
	DeleteByVideo(ctx context.Context, videoID string) ([]string, error)
}
