package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/go-redis/redismock/v9"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	"github.com/mikiasgoitom/VidTube/internal/infrastructure/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleVideo() *entity.Video {
	return &entity.Video{
		ID:          faker.UUIDHyphenated(),
		OwnerID:     faker.UUIDHyphenated(),
		Title:       faker.Sentence(),
		VideoURL:    "https://media.test/video/upload/v1/abc.mp4",
		IsPublished: true,
		LikeCount:   3,
		CreatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestVideoCacheStore_SetAndGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := store.NewVideoCacheStore(db, 2*time.Minute)
	ctx := context.Background()
	video := sampleVideo()
	data, err := json.Marshal(video)
	require.NoError(t, err)

	mock.ExpectSet("video:id:"+video.ID, data, 2*time.Minute).SetVal("OK")
	require.NoError(t, cache.SetVideo(ctx, video))

	mock.ExpectGet("video:id:" + video.ID).SetVal(string(data))
	got, ok, err := cache.GetVideo(ctx, video.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, video.Title, got.Title)
	assert.Equal(t, int64(3), got.LikeCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoCacheStore_Miss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := store.NewVideoCacheStore(db, 0)

	mock.ExpectGet("video:id:missing").RedisNil()
	got, ok, err := cache.GetVideo(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)

	mock.ExpectGet("video:id:corrupt").SetVal("{not json")
	_, ok, err = cache.GetVideo(context.Background(), "corrupt")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoCacheStore_ErrorAndInvalidate(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := store.NewVideoCacheStore(db, time.Minute)

	mock.ExpectGet("video:id:v1").SetErr(errors.New("connection refused"))
	_, _, err := cache.GetVideo(context.Background(), "v1")
	assert.Error(t, err)

	mock.ExpectDel("video:id:v1").SetVal(1)
	assert.NoError(t, cache.InvalidateVideo(context.Background(), "v1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
