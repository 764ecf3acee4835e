package contract

import (
	"context"

	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
)

// IVideoCache caches video detail reads.
type IVideoCache interface {
	GetVideo(ctx context.Context, videoID string) (*entity.Video, bool, error)
	SetVideo(ctx context.Context, video *entity.Video) error
	InvalidateVideo(ctx context.Context, videoID string) error
}
