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

type tweetUseCase struct {
	tweetRepo    contract.ITweetRepository
	userRepo     contract.IUserRepository
	reactionRepo contract.IReactionRepository
	uuidgen      contract.IUUIDGenerator
	validator    usecasecontract.IValidator
	config       usecasecontract.IConfigProvider
	logger       usecasecontract.IAppLogger
}

func NewTweetUseCase(
	tweetRepo contract.ITweetRepository,
	userRepo contract.IUserRepository,
	reactionRepo contract.IReactionRepository,
	uuidgen contract.IUUIDGenerator,
	validator usecasecontract.IValidator,
	config usecasecontract.IConfigProvider,
	logger usecasecontract.IAppLogger,
) usecasecontract.ITweetUseCase {
	return &tweetUseCase{
		tweetRepo:    tweetRepo,
		userRepo:     userRepo,
		reactionRepo: reactionRepo,
		uuidgen:      uuidgen,
		validator:    validator,
		config:       config,
		logger:       logger,
	}
}

func (uc *tweetUseCase) CreateTweet(ctx context.Context, actorID, content string) (*entity.Tweet, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	content, err := uc.cleanContent(content)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	tweet := &entity.Tweet{
		ID:        uc.uuidgen.NewUUID(),
		OwnerID:   actorID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, storeErr("create tweet", err)
	}
	return tweet, nil
}

func (uc *tweetUseCase) ListUserTweets(ctx context.Context, username string, page contract.Pagination) (*usecasecontract.Page[entity.Tweet], error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrInvalidArgument)
	}
	page, err := checkPage(page, uc.config.GetMaxPageSize())
	if err != nil {
		return nil, err
	}
	owner, err := uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, storeErr("get user", err)
	}
	result, err := fetchPage(ctx, page,
		func(ctx context.Context) ([]entity.Tweet, error) { return uc.tweetRepo.ListByOwner(ctx, owner.ID, page) },
		func(ctx context.Context) (int64, error) { return uc.tweetRepo.CountByOwner(ctx, owner.ID) },
	)
	if err != nil {
		return nil, storeErr("list tweets", err)
	}
	return result, nil
}

func (uc *tweetUseCase) UpdateTweet(ctx context.Context, tweetID, actorID, content string) (*entity.Tweet, error) {
	if err := uc.checkOwner(ctx, tweetID, actorID); err != nil {
		return nil, err
	}
	content, err := uc.cleanContent(content)
	if err != nil {
		return nil, err
	}
	updated, err := uc.tweetRepo.UpdateContent(ctx, tweetID, content)
	if err != nil {
		return nil, storeErr("update tweet", err)
	}
	return updated, nil
}

func (uc *tweetUseCase) DeleteTweet(ctx context.Context, tweetID, actorID string) error {
	if err := uc.checkOwner(ctx, tweetID, actorID); err != nil {
		return err
	}
	if err := uc.tweetRepo.Delete(ctx, tweetID); err != nil {
		return storeErr("delete tweet", err)
	}
	if _, err := uc.reactionRepo.DeleteByTarget(ctx, entity.TargetKindTweet, tweetID); err != nil {
		uc.logger.Warnf("failed to delete reactions of tweet %s: %v", tweetID, err)
	}
	return nil
}

func (uc *tweetUseCase) checkOwner(ctx context.Context, tweetID, actorID string) error {
	if actorID == "" {
		return domain.ErrUnauthorized
	}
	if err := uc.validator.ValidateID(tweetID); err != nil {
		return fmt.Errorf("%w: invalid tweet id", domain.ErrInvalidArgument)
	}
	tweet, err := uc.tweetRepo.GetByID(ctx, tweetID)
	if err != nil {
		return storeErr("get tweet", err)
	}
	if tweet.OwnerID != actorID {
		return fmt.Errorf("%w: only the author can change this tweet", domain.ErrForbidden)
	}
	return nil
}

func (uc *tweetUseCase) cleanContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("%w: content is required", domain.ErrInvalidArgument)
	}
	if err := uc.validator.ValidateContent(content); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}
	return content, nil
}
