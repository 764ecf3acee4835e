package usecase

import (
	"context"

	"github.com/mikiasgoitom/VidTube/internal/domain"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

// WatchHistory pages the videos userID opened while signed in.
func (u *VideoUsecase) WatchHistory(ctx context.Context, userID string, page contract.Pagination) (*usecasecontract.Page[entity.Video], error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	page, err := checkPage(page, u.config.GetMaxPageSize())
	if err != nil {
		return nil, err
	}
	if u.history == nil {
		return withVideos(&usecasecontract.Page[entity.WatchEntry]{Page: page.Page, Limit: page.Limit}, []entity.Video{}), nil
	}
	entries, err := fetchPage(ctx, page,
		func(ctx context.Context) ([]entity.WatchEntry, error) { return u.history.ListByUser(ctx, userID, page) },
		func(ctx context.Context) (int64, error) { return u.history.CountByUser(ctx, userID) },
	)
	if err != nil {
		return nil, storeErr("list watch history", err)
	}
	ids := make([]string, len(entries.Items))
	for i, e := range entries.Items {
		ids[i] = e.VideoID
	}
	videos, err := u.videosInOrder(ctx, ids)
	if err != nil {
		return nil, storeErr("list watch history", err)
	}
	return withVideos(entries, videos), nil
}

// LikedVideos pages the videos userID liked. A video deleted after the like
// drops out with its reactions.
func (u *VideoUsecase) LikedVideos(ctx context.Context, userID string, page contract.Pagination) (*usecasecontract.Page[entity.Video], error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	page, err := checkPage(page, u.config.GetMaxPageSize())
	if err != nil {
		return nil, err
	}
	likes, err := fetchPage(ctx, page,
		func(ctx context.Context) ([]entity.Reaction, error) {
			return u.reactions.ListByActor(ctx, userID, entity.TargetKindVideo, page)
		},
		func(ctx context.Context) (int64, error) {
			return u.reactions.CountByActor(ctx, userID, entity.TargetKindVideo)
		},
	)
	if err != nil {
		return nil, storeErr("list liked videos", err)
	}
	ids := make([]string, len(likes.Items))
	for i, r := range likes.Items {
		ids[i] = r.TargetID
	}
	videos, err := u.videosInOrder(ctx, ids)
	if err != nil {
		return nil, storeErr("list liked videos", err)
	}
	return withVideos(likes, videos), nil
}

// withVideos keeps the paging of src with videos as its items.
func withVideos[T any](src *usecasecontract.Page[T], videos []entity.Video) *usecasecontract.Page[entity.Video] {
	return &usecasecontract.Page[entity.Video]{
		Items:      videos,
		Total:      src.Total,
		Page:       src.Page,
		Limit:      src.Limit,
		TotalPages: src.TotalPages,
	}
}

func (u *VideoUsecase) videosInOrder(ctx context.Context, ids []string) ([]entity.Video, error) {
	if len(ids) == 0 {
		return []entity.Video{}, nil
	}
	found, err := u.videos.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entity.Video, len(found))
	for _, video := range found {
		byID[video.ID] = video
	}
	videos := make([]entity.Video, 0, len(ids))
	for _, id := range ids {
		if video, ok := byID[id]; ok {
			videos = append(videos, video)
		}
	}
	return videos, nil
}
