package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
)

const defaultVideoTTL = time.Minute

// VideoCacheStore caches video detail documents as JSON.
type VideoCacheStore struct {
	rdb       redis.Cmdable
	detailTTL time.Duration
}

func NewVideoCacheStore(rdb redis.Cmdable, ttl time.Duration) *VideoCacheStore {
	if ttl <= 0 {
		ttl = defaultVideoTTL
	}
	return &VideoCacheStore{
		rdb:       rdb,
		detailTTL: ttl,
	}
}

var _ contract.IVideoCache = (*VideoCacheStore)(nil)

func videoDetailKey(id string) string { return fmt.Sprintf("video:id:%s", id) }

// GetVideo returns the cached video. A corrupt entry counts as a miss.
func (c *VideoCacheStore) GetVideo(ctx context.Context, videoID string) (*entity.Video, bool, error) {
	b, err := c.rdb.Get(ctx, videoDetailKey(videoID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var video entity.Video
	if err := json.Unmarshal(b, &video); err != nil {
		return nil, false, nil
	}
	return &video, true, nil
}

func (c *VideoCacheStore) SetVideo(ctx context.Context, video *entity.Video) error {
	data, err := json.Marshal(video)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, videoDetailKey(video.ID), data, c.detailTTL).Err()
}

func (c *VideoCacheStore) InvalidateVideo(ctx context.Context, videoID string) error {
	return c.rdb.Del(ctx, videoDetailKey(videoID)).Err()
}
