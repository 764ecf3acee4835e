package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/VidTube/internal/domain"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

type commentUseCase struct {
	commentRepo  contract.ICommentRepository
	videoRepo    contract.IVideoRepository
	reactionRepo contract.IReactionRepository
	uuidgen      contract.IUUIDGenerator
	validator    usecasecontract.IValidator
	config       usecasecontract.IConfigProvider
	logger       usecasecontract.IAppLogger
}

func NewCommentUseCase(
	commentRepo contract.ICommentRepository,
	videoRepo contract.IVideoRepository,
	reactionRepo contract.IReactionRepository,
	uuidgen contract.IUUIDGenerator,
	validator usecasecontract.IValidator,
	config usecasecontract.IConfigProvider,
	logger usecasecontract.IAppLogger,
) usecasecontract.ICommentUseCase {
	return &commentUseCase{
		commentRepo:  commentRepo,
		videoRepo:    videoRepo,
		reactionRepo: reactionRepo,
		uuidgen:      uuidgen,
		validator:    validator,
		config:       config,
		logger:       logger,
	}
}

func (uc *commentUseCase) AddComment(ctx context.Context, videoID, actorID, content string) (*entity.Comment, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.validator.ValidateID(videoID); err != nil {
		return nil, fmt.Errorf("%w: invalid video id", domain.ErrInvalidArgument)
	}
	content, err := uc.cleanContent(content)
	if err != nil {
		return nil, err
	}
	if _, err := uc.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, storeErr("get video", err)
	}

	now := time.Now().UTC()
	comment := &entity.Comment{
		ID:        uc.uuidgen.NewUUID(),
		VideoID:   videoID,
		OwnerID:   actorID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, storeErr("create comment", err)
	}
	return comment, nil
}

func (uc *commentUseCase) ListVideoComments(ctx context.Context, videoID string, page contract.Pagination) (*usecasecontract.Page[entity.Comment], error) {
	if err := uc.validator.ValidateID(videoID); err != nil {
		return nil, fmt.Errorf("%w: invalid video id", domain.ErrInvalidArgument)
	}
	page, err := checkPage(page, uc.config.GetMaxPageSize())
	if err != nil {
		return nil, err
	}
	if _, err := uc.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, storeErr("get video", err)
	}
	result, err := fetchPage(ctx, page,
		func(ctx context.Context) ([]entity.Comment, error) { return uc.commentRepo.ListByVideo(ctx, videoID, page) },
		func(ctx context.Context) (int64, error) { return uc.commentRepo.CountByVideo(ctx, videoID) },
	)
	if err != nil {
		return nil, storeErr("list comments", err)
	}
	return result, nil
}

func (uc *commentUseCase) UpdateComment(ctx context.Context, commentID, actorID, content string) (*entity.Comment, error) {
	if _, err := uc.ownedComment(ctx, commentID, actorID); err != nil {
		return nil, err
	}
	content, err := uc.cleanContent(content)
	if err != nil {
		return nil, err
	}
	updated, err := uc.commentRepo.UpdateContent(ctx, commentID, content)
	if err != nil {
		return nil, storeErr("update comment", err)
	}
	return updated, nil
}

func (uc *commentUseCase) DeleteComment(ctx context.Context, commentID, actorID string) error {
	if _, err := uc.ownedComment(ctx, commentID, actorID); err != nil {
		return err
	}
	if err := uc.commentRepo.Delete(ctx, commentID); err != nil {
		return storeErr("delete comment", err)
	}
	if _, err := uc.reactionRepo.DeleteByTarget(ctx, entity.TargetKindComment, commentID); err != nil {
		uc.logger.Warnf("failed to delete reactions of comment %s: %v", commentID, err)
	}
	return nil
}

func (uc *commentUseCase) ownedComment(ctx context.Context, commentID, actorID string) (*entity.Comment, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.validator.ValidateID(commentID); err != nil {
		return nil, fmt.Errorf("%w: invalid comment id", domain.ErrInvalidArgument)
	}
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, storeErr("get comment", err)
	}
	if comment.OwnerID != actorID {
		return nil, fmt.Errorf("%w: only the author can change this comment", domain.ErrForbidden)
	}
	return comment, nil
}

func (uc *commentUseCase) cleanContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("%w: content is required", domain.ErrInvalidArgument)
	}
	if err := uc.validator.ValidateContent(content); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}
	return content, nil
}
