package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mikiasgoitom/VidTube/internal/domain"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	"github.com/mikiasgoitom/VidTube/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

// ReactionUsecase toggles likes and subscriptions and keeps the target
// counters in step with the reaction records.
type ReactionUsecase struct {
	reactions  contract.IReactionRepository
	targets    contract.IReactableRepository
	tx         contract.ITransactor
	uuidgen    contract.IUUIDGenerator
	validator  usecasecontract.IValidator
	config     usecasecontract.IConfigProvider
	logger     usecasecontract.IAppLogger
	videoCache contract.IVideoCache
	repairs    contract.ICounterRepairRepository
}

// NewReactionUsecase creates and returns a new ReactionUsecase instance.
func NewReactionUsecase(
	reactions contract.IReactionRepository,
	targets contract.IReactableRepository,
	tx contract.ITransactor,
	uuidgen contract.IUUIDGenerator,
	validator usecasecontract.IValidator,
	config usecasecontract.IConfigProvider,
	logger usecasecontract.IAppLogger,
) *ReactionUsecase {
	return &ReactionUsecase{
		reactions: reactions,
		targets:   targets,
		tx:        tx,
		uuidgen:   uuidgen,
		validator: validator,
		config:    config,
		logger:    logger,
	}
}

var _ usecasecontract.IReactionUseCase = (*ReactionUsecase)(nil)

func (u *ReactionUsecase) SetVideoCache(cache contract.IVideoCache) {
	u.videoCache = cache
}

// SetRepairLog makes every toggle leave a durable recount mark for the
// reconciler. It is used when toggles do not run in a transaction.
func (u *ReactionUsecase) SetRepairLog(repairs contract.ICounterRepairRepository) {
	u.repairs = repairs
}

// Toggle flips the actor's reaction on the target. Removing an existing
// reaction and inserting a new one are both conditional writes keyed on the
// unique (actor, target, kind) tuple, so concurrent toggles by the same actor
// can never leave two records behind, and the counter only moves when a write
// actually changed a record.
//
// With a repair log the target is marked before the writes and again after
// them, so a crash or a failed counter write between the two is recounted.
func (u *ReactionUsecase) Toggle(ctx context.Context, actorID, targetID string, kind entity.TargetKind) (entity.ToggleState, error) {
	if err := u.checkTarget(ctx, actorID, targetID, kind); err != nil {
		return "", err
	}
	if u.repairs != nil {
		if err := u.repairs.Mark(ctx, kind, targetID); err != nil {
			return "", storeErr("record counter repair", err)
		}
		defer u.remark(ctx, kind, targetID)
	}

	key := entity.ReactionKey{ActorID: actorID, TargetID: targetID, TargetKind: kind}
	var state entity.ToggleState
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		removed, err := u.reactions.DeleteByKey(ctx, key)
		if err != nil {
			return err
		}
		if removed {
			state = entity.ToggleStateRemoved
			return u.targets.IncrementCounter(ctx, kind, targetID, -1)
		}

		inserted, err := u.reactions.Insert(ctx, &entity.Reaction{
			ID:         u.uuidgen.NewUUID(),
			ActorID:    actorID,
			TargetID:   targetID,
			TargetKind: kind,
			CreatedAt:  time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		// a concurrent toggle inserted the same key first and already counted it
		state = entity.ToggleStateAdded
		if !inserted {
			return nil
		}
		return u.targets.IncrementCounter(ctx, kind, targetID, 1)
	})
	if err != nil {
		return "", storeErr(fmt.Sprintf("toggle %s reaction", kind), err)
	}

	metrics.IncReactionToggle(string(kind), string(state))
	if kind == entity.TargetKindVideo && u.videoCache != nil {
		if err := u.videoCache.InvalidateVideo(ctx, targetID); err != nil {
			u.logger.Warnf("failed to invalidate cached video %s: %v", targetID, err)
		}
	}
	return state, nil
}

// HasReacted reports whether the actor currently has a reaction on the target.
func (u *ReactionUsecase) HasReacted(ctx context.Context, actorID, targetID string, kind entity.TargetKind) (bool, error) {
	if actorID == "" {
		return false, domain.ErrUnauthorized
	}
	if err := u.checkKindAndID(targetID, kind); err != nil {
		return false, err
	}
	ok, err := u.reactions.Exists(ctx, entity.ReactionKey{ActorID: actorID, TargetID: targetID, TargetKind: kind})
	if err != nil {
		return false, storeErr("check reaction", err)
	}
	return ok, nil
}

// ListMine pages the actor's reactions of one kind, newest first.
func (u *ReactionUsecase) ListMine(ctx context.Context, actorID string, kind entity.TargetKind, page contract.Pagination) (*usecasecontract.Page[entity.Reaction], error) {
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	if _, ok := entity.ParseTargetKind(string(kind)); !ok {
		return nil, fmt.Errorf("%w: unknown target kind %q", domain.ErrInvalidArgument, kind)
	}
	page, err := checkPage(page, u.config.GetMaxPageSize())
	if err != nil {
		return nil, err
	}
	result, err := fetchPage(ctx, page,
		func(ctx context.Context) ([]entity.Reaction, error) {
			return u.reactions.ListByActor(ctx, actorID, kind, page)
		},
		func(ctx context.Context) (int64, error) {
			return u.reactions.CountByActor(ctx, actorID, kind)
		},
	)
	if err != nil {
		return nil, storeErr("list reactions", err)
	}
	return result, nil
}

// Reconcile rewrites the target's counter from the number of reaction records
// and returns the recounted value. A toggle that lands between the count and
// the write leaves a newer repair mark behind, so the reconciler runs again.
func (u *ReactionUsecase) Reconcile(ctx context.Context, kind entity.TargetKind, targetID string) (int64, error) {
	if err := u.checkKindAndID(targetID, kind); err != nil {
		return 0, err
	}
	n, err := u.reactions.CountByTarget(ctx, kind, targetID)
	if err != nil {
		return 0, storeErr("count reactions", err)
	}
	if err := u.targets.SetCounter(ctx, kind, targetID, n); err != nil {
		return 0, storeErr(fmt.Sprintf("set %s counter", kind), err)
	}
	if kind == entity.TargetKindVideo && u.videoCache != nil {
		if err := u.videoCache.InvalidateVideo(ctx, targetID); err != nil {
			u.logger.Warnf("failed to invalidate cached video %s: %v", targetID, err)
		}
	}
	return n, nil
}

// remark bumps the mark so a recount that overlapped this toggle does not clear it.
func (u *ReactionUsecase) remark(ctx context.Context, kind entity.TargetKind, targetID string) {
	if err := u.repairs.Mark(context.WithoutCancel(ctx), kind, targetID); err != nil {
		u.logger.Warnf("failed to re-mark %s %s for recount: %v", kind, targetID, err)
	}
}

func (u *ReactionUsecase) checkKindAndID(targetID string, kind entity.TargetKind) error {
	if _, ok := entity.ParseTargetKind(string(kind)); !ok {
		return fmt.Errorf("%w: unknown target kind %q", domain.ErrInvalidArgument, kind)
	}
	if err := u.validator.ValidateID(targetID); err != nil {
		return fmt.Errorf("%w: invalid %s id", domain.ErrInvalidArgument, kind)
	}
	return nil
}

func (u *ReactionUsecase) checkTarget(ctx context.Context, actorID, targetID string, kind entity.TargetKind) error {
	if actorID == "" {
		return domain.ErrUnauthorized
	}
	if err := u.checkKindAndID(targetID, kind); err != nil {
		return err
	}
	if kind == entity.TargetKindChannel && actorID == targetID {
		return fmt.Errorf("%w: cannot subscribe to your own channel", domain.ErrInvalidArgument)
	}
	exists, err := u.targets.Exists(ctx, kind, targetID)
	if err != nil {
		return storeErr(fmt.Sprintf("look up %s", kind), err)
	}
	if !exists {
		return fmt.Errorf("%w: %s %s", domain.ErrNotFound, kind, targetID)
	}
	return nil
}
