package mocks

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/VidTube/internal/domain"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

// MockReactionUsecase is a mock implementation of IReactionUseCase
type MockReactionUsecase struct {
	ShouldFailToggle bool
	ShouldFailStatus bool
	ShouldFailList   bool

	MockState   entity.ToggleState
	MockReacted bool
	MockPage    usecasecontract.Page[entity.Reaction]

	LastActorID  string
	LastTargetID string
	LastKind     entity.TargetKind
	LastPage     contract.Pagination
}

var _ usecasecontract.IReactionUseCase = (*MockReactionUsecase)(nil)

func NewMockReactionUsecase() *MockReactionUsecase {
	return &MockReactionUsecase{
		MockState: entity.ToggleStateAdded,
		MockPage:  usecasecontract.Page[entity.Reaction]{Items: []entity.Reaction{}, Page: 1, Limit: 10},
	}
}

func (m *MockReactionUsecase) Toggle(ctx context.Context, actorID, targetID string, kind entity.TargetKind) (entity.ToggleState, error) {
	m.LastActorID, m.LastTargetID, m.LastKind = actorID, targetID, kind
	if m.ShouldFailToggle {
		return "", fmt.Errorf("%w: %s %s not found", domain.ErrNotFound, kind, targetID)
	}
	return m.MockState, nil
}

func (m *MockReactionUsecase) HasReacted(ctx context.Context, actorID, targetID string, kind entity.TargetKind) (bool, error) {
	m.LastActorID, m.LastTargetID, m.LastKind = actorID, targetID, kind
	if m.ShouldFailStatus {
		return false, fmt.Errorf("%w: invalid target id", domain.ErrInvalidArgument)
	}
	return m.MockReacted, nil
}

func (m *MockReactionUsecase) ListMine(ctx context.Context, actorID string, kind entity.TargetKind, page contract.Pagination) (*usecasecontract.Page[entity.Reaction], error) {
	m.LastActorID, m.LastKind, m.LastPage = actorID, kind, page
	if m.ShouldFailList {
		return nil, fmt.Errorf("%w: failed to list reactions", domain.ErrUpstream)
	}
	return &m.MockPage, nil
}

func (m *MockReactionUsecase) Reconcile(ctx context.Context, kind entity.TargetKind, targetID string) (int64, error) {
	return 0, nil
}

// MockSubscriptionUsecase is a mock implementation of ISubscriptionUseCase
type MockSubscriptionUsecase struct {
	ShouldFailToggle bool

	MockState entity.ToggleState
	MockPage  usecasecontract.Page[entity.User]

	LastSubscriberID string
	LastChannelID    string
}

var _ usecasecontract.ISubscriptionUseCase = (*MockSubscriptionUsecase)(nil)

func NewMockSubscriptionUsecase() *MockSubscriptionUsecase {
	return &MockSubscriptionUsecase{
		MockState: entity.ToggleStateAdded,
		MockPage:  usecasecontract.Page[entity.User]{Items: []entity.User{}, Page: 1, Limit: 10},
	}
}

func (m *MockSubscriptionUsecase) Toggle(ctx context.Context, subscriberID, channelID string) (entity.ToggleState, error) {
	m.LastSubscriberID, m.LastChannelID = subscriberID, channelID
	if m.ShouldFailToggle {
		return "", fmt.Errorf("%w: cannot subscribe to your own channel", domain.ErrInvalidArgument)
	}
	return m.MockState, nil
}

func (m *MockSubscriptionUsecase) ListSubscribers(ctx context.Context, channelID string, page contract.Pagination) (*usecasecontract.Page[entity.User], error) {
	m.LastChannelID = channelID
	return &m.MockPage, nil
}

func (m *MockSubscriptionUsecase) ListSubscribedChannels(ctx context.Context, subscriberID string, page contract.Pagination) (*usecasecontract.Page[entity.User], error) {
	m.LastSubscriberID = subscriberID
	return &m.MockPage, nil
}
