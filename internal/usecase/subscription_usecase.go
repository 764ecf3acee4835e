package usecase

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/VidTube/internal/domain"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

// SubscriptionUsecase is the channel flavour of reactions: the actor is the
// subscriber and the target is the channel's user id.
type SubscriptionUsecase struct {
	reactions usecasecontract.IReactionUseCase
	repo      contract.IReactionRepository
	users     contract.IUserRepository
	validator usecasecontract.IValidator
	config    usecasecontract.IConfigProvider
}

func NewSubscriptionUsecase(
	reactions usecasecontract.IReactionUseCase,
	repo contract.IReactionRepository,
	users contract.IUserRepository,
	validator usecasecontract.IValidator,
	config usecasecontract.IConfigProvider,
) *SubscriptionUsecase {
	return &SubscriptionUsecase{
		reactions: reactions,
		repo:      repo,
		users:     users,
		validator: validator,
		config:    config,
	}
}

var _ usecasecontract.ISubscriptionUseCase = (*SubscriptionUsecase)(nil)

func (u *SubscriptionUsecase) Toggle(ctx context.Context, subscriberID, channelID string) (entity.ToggleState, error) {
	return u.reactions.Toggle(ctx, subscriberID, channelID, entity.TargetKindChannel)
}

// ListSubscribers pages the users subscribed to channelID, most recent first.
func (u *SubscriptionUsecase) ListSubscribers(ctx context.Context, channelID string, page contract.Pagination) (*usecasecontract.Page[entity.User], error) {
	if err := u.validator.ValidateID(channelID); err != nil {
		return nil, fmt.Errorf("%w: invalid channel id", domain.ErrInvalidArgument)
	}
	page, err := checkPage(page, u.config.GetMaxPageSize())
	if err != nil {
		return nil, err
	}
	if _, err := u.users.GetUserByID(ctx, channelID); err != nil {
		return nil, storeErr("get channel", err)
	}
	result, err := fetchPage(ctx, page,
		func(ctx context.Context) ([]entity.User, error) {
			subs, err := u.repo.ListByTarget(ctx, entity.TargetKindChannel, channelID, page)
			if err != nil {
				return nil, err
			}
			ids := make([]string, len(subs))
			for i, s := range subs {
				ids[i] = s.ActorID
			}
			return u.usersInOrder(ctx, ids)
		},
		func(ctx context.Context) (int64, error) {
			return u.repo.CountByTarget(ctx, entity.TargetKindChannel, channelID)
		},
	)
	if err != nil {
		return nil, storeErr("list subscribers", err)
	}
	return result, nil
}

// ListSubscribedChannels pages the channels subscriberID follows, most recent first.
func (u *SubscriptionUsecase) ListSubscribedChannels(ctx context.Context, subscriberID string, page contract.Pagination) (*usecasecontract.Page[entity.User], error) {
	if subscriberID == "" {
		return nil, domain.ErrUnauthorized
	}
	page, err := checkPage(page, u.config.GetMaxPageSize())
	if err != nil {
		return nil, err
	}
	result, err := fetchPage(ctx, page,
		func(ctx context.Context) ([]entity.User, error) {
			subs, err := u.repo.ListByActor(ctx, subscriberID, entity.TargetKindChannel, page)
			if err != nil {
				return nil, err
			}
			ids := make([]string, len(subs))
			for i, s := range subs {
				ids[i] = s.TargetID
			}
			return u.usersInOrder(ctx, ids)
		},
		func(ctx context.Context) (int64, error) {
			return u.repo.CountByActor(ctx, subscriberID, entity.TargetKindChannel)
		},
	)
	if err != nil {
		return nil, storeErr("list subscribed channels", err)
	}
	return result, nil
}

// usersInOrder loads ids and returns them in the same order, skipping users
// that no longer exist.
func (u *SubscriptionUsecase) usersInOrder(ctx context.Context, ids []string) ([]entity.User, error) {
	if len(ids) == 0 {
		return []entity.User{}, nil
	}
	found, err := u.users.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entity.User, len(found))
	for _, user := range found {
		byID[user.ID] = user
	}
	users := make([]entity.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := byID[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}
