package contract

import (
	"context"

	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
)

// IWatchHistoryRepository keeps each user's most recently watched videos.
type IWatchHistoryRepository interface {
	// Record upserts the (user, video) entry with the current time.
	Record(ctx context.Context, userID, videoID string) error
	// ListByUser returns entries most recently watched first.
	ListByUser(ctx context.Context, userID string, page Pagination) ([]entity.WatchEntry, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	DeleteByVideo(ctx context.Context, videoID string) error
}
