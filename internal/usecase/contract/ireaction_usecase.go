package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
)

type IReactionUseCase interface {
	Toggle(ctx context.Context, actorID, targetID string, kind entity.TargetKind) (entity.ToggleState, error)
	HasReacted(ctx context.Context, actorID, targetID string, kind entity.TargetKind) (bool, error)
	ListMine(ctx context.Context, actorID string, kind entity.TargetKind, page contract.Pagination) (*Page[entity.Reaction], error)
	Reconcile(ctx context.Context, kind entity.TargetKind, targetID string) (int64, error)
}

type ISubscriptionUseCase interface {
	Toggle(ctx context.Context, subscriberID, channelID string) (entity.ToggleState, error)
	ListSubscribers(ctx context.Context, channelID string, page contract.Pagination) (*Page[entity.User], error)
	ListSubscribedChannels(ctx context.Context, subscriberID string, page contract.Pagination) (*Page[entity.User], error)
}
