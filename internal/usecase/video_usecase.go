package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/VidTube/internal/domain"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	"github.com/mikiasgoitom/VidTube/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
	"github.com/mikiasgoitom/VidTube/internal/utils"
	"golang.org/x/sync/errgroup"
)

var videoSortFields = map[string]bool{
	"created_at": true,
	"views":      true,
	"duration":   true,
	"title":      true,
	"like_count": true,
}

// VideoUsecase publishes, edits and removes videos. Publishing is a saga over
// the media host and the document store recorded in a Publication so that a
// crash between steps can be compensated by the sweeper.
type VideoUsecase struct {
	videos       contract.IVideoRepository
	publications contract.IPublicationRepository
	reactions    contract.IReactionRepository
	comments     contract.ICommentRepository
	playlists    contract.IPlaylistRepository
	media        contract.IMediaHost
	tx           contract.ITransactor
	uuidgen      contract.IUUIDGenerator
	validator    usecasecontract.IValidator
	config       usecasecontract.IConfigProvider
	logger       usecasecontract.IAppLogger
	videoCache   contract.IVideoCache
	history      contract.IWatchHistoryRepository
}

// NewVideoUsecase creates a new VideoUsecase.
func NewVideoUsecase(
	videos contract.IVideoRepository,
	publications contract.IPublicationRepository,
	reactions contract.IReactionRepository,
	comments contract.ICommentRepository,
	playlists contract.IPlaylistRepository,
	media contract.IMediaHost,
	tx contract.ITransactor,
	uuidgen contract.IUUIDGenerator,
	validator usecasecontract.IValidator,
	config usecasecontract.IConfigProvider,
	logger usecasecontract.IAppLogger,
) *VideoUsecase {
	return &VideoUsecase{
		videos:       videos,
		publications: publications,
		reactions:    reactions,
		comments:     comments,
		playlists:    playlists,
		media:        media,
		tx:           tx,
		uuidgen:      uuidgen,
		validator:    validator,
		config:       config,
		logger:       logger,
	}
}

var _ usecasecontract.IVideoUseCase = (*VideoUsecase)(nil)

func (u *VideoUsecase) SetVideoCache(cache contract.IVideoCache) {
	u.videoCache = cache
}

// SetWatchHistory enables recording what signed-in viewers open.
func (u *VideoUsecase) SetWatchHistory(history contract.IWatchHistoryRepository) {
	u.history = history
}

// Publish uploads the video and thumbnail and records the video. Any step that
// fails undoes the steps before it; the original failure is what the caller sees.
func (u *VideoUsecase) Publish(ctx context.Context, ownerID string, in usecasecontract.PublishVideoInput) (*entity.Video, error) {
	if ownerID == "" {
		return nil, domain.ErrUnauthorized
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidArgument)
	}
	if in.Video == nil {
		return nil, fmt.Errorf("%w: video file is required", domain.ErrInvalidArgument)
	}
	if in.Thumbnail == nil {
		return nil, fmt.Errorf("%w: thumbnail file is required", domain.ErrInvalidArgument)
	}
	if err := u.checkSize(*in.Video); err != nil {
		return nil, err
	}
	if err := u.checkSize(*in.Thumbnail); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	pub := &entity.Publication{
		ID:        u.uuidgen.NewUUID(),
		OwnerID:   ownerID,
		State:     entity.PublicationPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.publications.Create(ctx, pub); err != nil {
		return nil, storeErr("record publication", err)
	}
	log := u.logger.WithFields(map[string]interface{}{"publication_id": pub.ID, "owner_id": ownerID})

	videoAsset, err := u.media.Upload(ctx, *in.Video, contract.MediaKindVideo)
	if err != nil {
		u.compensate(ctx, log, pub.ID, err)
		return nil, fmt.Errorf("%w: failed to upload video: %w", domain.ErrUpstream, err)
	}
	u.advance(ctx, log, pub.ID, contract.PublicationUpdate{
		State:        entity.PublicationVideoUploaded,
		VideoAssetID: videoAsset.AssetID,
	})

	thumbAsset, err := u.media.Upload(ctx, *in.Thumbnail, contract.MediaKindImage)
	if err != nil {
		u.compensate(ctx, log, pub.ID, err, assetRef{videoAsset.AssetID, contract.MediaKindVideo})
		return nil, fmt.Errorf("%w: failed to upload thumbnail: %w", domain.ErrUpstream, err)
	}

	video := &entity.Video{
		ID:               u.uuidgen.NewUUID(),
		OwnerID:          ownerID,
		Title:            title,
		Description:      strings.TrimSpace(in.Description),
		VideoURL:         videoAsset.URL,
		VideoAssetID:     videoAsset.AssetID,
		ThumbnailURL:     thumbAsset.URL,
		ThumbnailAssetID: thumbAsset.AssetID,
		Duration:         videoAsset.Duration,
		IsPublished:      true,
		CreatedAt:        time.Now().UTC(),
		UpdatedAt:        time.Now().UTC(),
	}
	// the video id is recorded before the insert so the sweeper can tell a
	// committed-but-unmarked publication from an abandoned one
	u.advance(ctx, log, pub.ID, contract.PublicationUpdate{
		State:            entity.PublicationThumbnailUploaded,
		ThumbnailAssetID: thumbAsset.AssetID,
		VideoID:          video.ID,
	})

	if err := u.videos.Create(ctx, video); err != nil {
		u.compensate(ctx, log, pub.ID, err,
			assetRef{videoAsset.AssetID, contract.MediaKindVideo},
			assetRef{thumbAsset.AssetID, contract.MediaKindImage},
		)
		return nil, storeErr("create video", err)
	}
	u.advance(ctx, log, pub.ID, contract.PublicationUpdate{State: entity.PublicationCommitted})
	metrics.IncPublication(string(entity.PublicationCommitted))
	return video, nil
}

// SweepStalePublications compensates publications that stopped before reaching
// a terminal state and returns how many were settled.
func (u *VideoUsecase) SweepStalePublications(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-u.config.GetSagaStaleAfter())
	stale, err := u.publications.ListStale(ctx, cutoff, 100)
	if err != nil {
		return 0, storeErr("list stale publications", err)
	}
	settled := 0
	for _, pub := range stale {
		log := u.logger.WithFields(map[string]interface{}{"publication_id": pub.ID, "state": pub.State})
		if pub.VideoID != "" {
			if _, err := u.videos.GetByID(ctx, pub.VideoID); err == nil {
				u.advance(ctx, log, pub.ID, contract.PublicationUpdate{State: entity.PublicationCommitted})
				settled++
				continue
			}
		}
		var assets []assetRef
		if pub.VideoAssetID != "" {
			assets = append(assets, assetRef{pub.VideoAssetID, contract.MediaKindVideo})
		}
		if pub.ThumbnailAssetID != "" {
			assets = append(assets, assetRef{pub.ThumbnailAssetID, contract.MediaKindImage})
		}
		if u.compensate(ctx, log, pub.ID, fmt.Errorf("publication abandoned in state %s", pub.State), assets...) {
			settled++
		}
	}
	return settled, nil
}

// GetVideo returns a video and counts the view. A signed-in viewer also gets
// the video added to their watch history.
func (u *VideoUsecase) GetVideo(ctx context.Context, videoID, viewerID string) (*entity.Video, error) {
	if err := u.validator.ValidateID(videoID); err != nil {
		return nil, fmt.Errorf("%w: invalid video id", domain.ErrInvalidArgument)
	}
	video, err := u.lookupVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := u.videos.IncrementViews(ctx, videoID); err != nil {
		u.logger.Warnf("failed to count view for video %s: %v", videoID, err)
	}
	if viewerID != "" && u.history != nil {
		if err := u.history.Record(ctx, viewerID, videoID); err != nil {
			u.logger.Warnf("failed to record watch history of %s: %v", viewerID, err)
		}
	}
	return video, nil
}

func (u *VideoUsecase) lookupVideo(ctx context.Context, videoID string) (*entity.Video, error) {
	start := time.Now()
	if u.videoCache != nil {
		cached, ok, err := u.videoCache.GetVideo(ctx, videoID)
		if err != nil {
			u.logger.Warnf("video cache read failed for %s: %v", videoID, err)
		}
		if ok {
			metrics.IncVideoCacheHit(time.Since(start).Seconds())
			return cached, nil
		}
	}
	video, err := u.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, storeErr("get video", err)
	}
	if u.videoCache != nil {
		metrics.IncVideoCacheMiss(time.Since(start).Seconds())
		if err := u.videoCache.SetVideo(ctx, video); err != nil {
			u.logger.Warnf("video cache write failed for %s: %v", videoID, err)
		}
	}
	return video, nil
}

// ListVideos pages published videos, optionally of one owner.
func (u *VideoUsecase) ListVideos(ctx context.Context, query usecasecontract.VideoQuery) (*usecasecontract.Page[entity.Video], error) {
	page, err := checkPage(query.Pagination, u.config.GetMaxPageSize())
	if err != nil {
		return nil, err
	}
	filter := contract.VideoFilter{PublishedOnly: true, Pagination: page}
	if query.OwnerID != "" {
		if err := u.validator.ValidateID(query.OwnerID); err != nil {
			return nil, fmt.Errorf("%w: invalid user id", domain.ErrInvalidArgument)
		}
		filter.OwnerID = &query.OwnerID
	}
	if query.SortBy != "" {
		if !videoSortFields[query.SortBy] {
			return nil, fmt.Errorf("%w: cannot sort by %q", domain.ErrInvalidArgument, query.SortBy)
		}
		filter.SortBy = query.SortBy
	}
	switch query.SortOrder {
	case "":
	case usecasecontract.SortOrderASC, usecasecontract.SortOrderDESC:
		filter.SortOrder = string(query.SortOrder)
	default:
		return nil, fmt.Errorf("%w: sort type must be asc or desc", domain.ErrInvalidArgument)
	}

	result, err := fetchPage(ctx, page,
		func(ctx context.Context) ([]entity.Video, error) { return u.videos.List(ctx, filter) },
		func(ctx context.Context) (int64, error) { return u.videos.Count(ctx, filter) },
	)
	if err != nil {
		return nil, storeErr("list videos", err)
	}
	return result, nil
}

// UpdateVideo changes a video's details. A new thumbnail is uploaded before the
// record changes and the old one is deleted only after the record points at the
// new one.
func (u *VideoUsecase) UpdateVideo(ctx context.Context, videoID, actorID string, in usecasecontract.UpdateVideoInput) (*entity.Video, error) {
	video, err := u.ownedVideo(ctx, videoID, actorID)
	if err != nil {
		return nil, err
	}
	if in.Title == nil && in.Description == nil && in.Thumbnail == nil {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrInvalidArgument)
	}
	update := entity.VideoUpdate{}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrInvalidArgument)
		}
		update.Title = &title
	}
	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		update.Description = &description
	}

	var thumb *contract.UploadedAsset
	if in.Thumbnail != nil {
		if err := u.checkSize(*in.Thumbnail); err != nil {
			return nil, err
		}
		thumb, err = u.media.Upload(ctx, *in.Thumbnail, contract.MediaKindImage)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to upload thumbnail: %w", domain.ErrUpstream, err)
		}
		update.ThumbnailURL = &thumb.URL
		update.ThumbnailID = &thumb.AssetID
	}

	updated, err := u.videos.Update(ctx, videoID, update)
	if err != nil {
		if thumb != nil {
			u.deleteAsset(ctx, thumb.AssetID, contract.MediaKindImage)
		}
		return nil, storeErr("update video", err)
	}
	if thumb != nil && video.ThumbnailURL != "" {
		u.deleteAsset(ctx, utils.AssetIDFromURL(video.ThumbnailURL), contract.MediaKindImage)
	}
	u.invalidate(ctx, videoID)
	return updated, nil
}

// DeleteVideo removes the video with its reactions, comments, playlist and
// history entries, then its assets.
func (u *VideoUsecase) DeleteVideo(ctx context.Context, videoID, actorID string) error {
	video, err := u.ownedVideo(ctx, videoID, actorID)
	if err != nil {
		return err
	}
	err = u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := u.videos.Delete(ctx, videoID); err != nil {
			return err
		}
		if _, err := u.reactions.DeleteByTarget(ctx, entity.TargetKindVideo, videoID); err != nil {
			return err
		}
		commentIDs, err := u.comments.DeleteByVideo(ctx, videoID)
		if err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if _, err := u.reactions.DeleteByTarget(ctx, entity.TargetKindComment, commentIDs...); err != nil {
				return err
			}
		}
		if err := u.playlists.RemoveVideoEverywhere(ctx, videoID); err != nil {
			return err
		}
		if u.history != nil {
			return u.history.DeleteByVideo(ctx, videoID)
		}
		return nil
	})
	if err != nil {
		return storeErr("delete video", err)
	}
	u.invalidate(ctx, videoID)

	cleanup := context.WithoutCancel(ctx)
	var g errgroup.Group
	for _, a := range []assetRef{
		{utils.AssetIDFromURL(video.VideoURL), contract.MediaKindVideo},
		{utils.AssetIDFromURL(video.ThumbnailURL), contract.MediaKindImage},
	} {
		if a.id == "" {
			continue
		}
		g.Go(func() error {
			return u.media.Delete(cleanup, a.id, a.kind)
		})
	}
	if err := g.Wait(); err != nil {
		u.logger.Warnf("failed to delete assets of video %s: %v", videoID, err)
	}
	return nil
}

// TogglePublish flips whether the video is listed.
func (u *VideoUsecase) TogglePublish(ctx context.Context, videoID, actorID string) (*entity.Video, error) {
	video, err := u.ownedVideo(ctx, videoID, actorID)
	if err != nil {
		return nil, err
	}
	if err := u.videos.SetPublished(ctx, videoID, !video.IsPublished); err != nil {
		return nil, storeErr("update video", err)
	}
	video.IsPublished = !video.IsPublished
	video.UpdatedAt = time.Now().UTC()
	u.invalidate(ctx, videoID)
	return video, nil
}

// ChannelVideos pages every video of a channel, published or not.
func (u *VideoUsecase) ChannelVideos(ctx context.Context, channelID string, page contract.Pagination) (*usecasecontract.Page[entity.Video], error) {
	if err := u.validator.ValidateID(channelID); err != nil {
		return nil, fmt.Errorf("%w: invalid channel id", domain.ErrInvalidArgument)
	}
	page, err := checkPage(page, u.config.GetMaxPageSize())
	if err != nil {
		return nil, err
	}
	filter := contract.VideoFilter{OwnerID: &channelID, Pagination: page}
	result, err := fetchPage(ctx, page,
		func(ctx context.Context) ([]entity.Video, error) { return u.videos.List(ctx, filter) },
		func(ctx context.Context) (int64, error) { return u.videos.Count(ctx, filter) },
	)
	if err != nil {
		return nil, storeErr("list channel videos", err)
	}
	return result, nil
}

var _ usecasecontract.IDashboardUseCase = (*VideoUsecase)(nil)

func (u *VideoUsecase) ownedVideo(ctx context.Context, videoID, actorID string) (*entity.Video, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := u.validator.ValidateID(videoID); err != nil {
		return nil, fmt.Errorf("%w: invalid video id", domain.ErrInvalidArgument)
	}
	video, err := u.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, storeErr("get video", err)
	}
	if video.OwnerID != actorID {
		return nil, fmt.Errorf("%w: only the owner can change this video", domain.ErrForbidden)
	}
	return video, nil
}

func (u *VideoUsecase) checkSize(file contract.MediaFile) error {
	limit := u.config.GetMaxUploadBytes()
	if limit > 0 && file.Size > limit {
		return fmt.Errorf("%w: %s exceeds the %d byte upload limit", domain.ErrInvalidArgument, file.Name, limit)
	}
	return nil
}

type assetRef struct {
	id   string
	kind contract.MediaKind
}

// compensate deletes the given assets and closes the publication. It reports
// whether every deletion succeeded; if not the publication is left failed for
// the sweeper.
func (u *VideoUsecase) compensate(ctx context.Context, log usecasecontract.IAppLogger, pubID string, cause error, assets ...assetRef) bool {
	ctx = context.WithoutCancel(ctx)
	state := entity.PublicationCompensated
	lastErr := cause.Error()
	for _, a := range assets {
		if err := u.media.Delete(ctx, a.id, a.kind); err != nil {
			log.Errorf("failed to delete %s asset %s: %v", a.kind, a.id, err)
			state = entity.PublicationFailed
			lastErr = fmt.Sprintf("%s; cleanup: %v", lastErr, err)
		}
	}
	u.advance(ctx, log, pubID, contract.PublicationUpdate{State: state, LastError: lastErr})
	metrics.IncPublication(string(state))
	return state == entity.PublicationCompensated
}

func (u *VideoUsecase) advance(ctx context.Context, log usecasecontract.IAppLogger, pubID string, update contract.PublicationUpdate) {
	if err := u.publications.Update(ctx, pubID, update); err != nil {
		log.Warnf("failed to move publication to %s: %v", update.State, err)
	}
}

func (u *VideoUsecase) deleteAsset(ctx context.Context, assetID string, kind contract.MediaKind) {
	if assetID == "" {
		return
	}
	if err := u.media.Delete(context.WithoutCancel(ctx), assetID, kind); err != nil {
		u.logger.Warnf("failed to delete %s asset %s: %v", kind, assetID, err)
	}
}

func (u *VideoUsecase) invalidate(ctx context.Context, videoID string) {
	if u.videoCache == nil {
		return
	}
	if err := u.videoCache.InvalidateVideo(ctx, videoID); err != nil {
		u.logger.Warnf("failed to invalidate cached video %s: %v", videoID, err)
	}
}
