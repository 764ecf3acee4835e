package contract

import (
	"context"

	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
)

// IReactionRepository persists reactions. Every write is keyed on the
// (actor, target, kind) tuple which the store keeps unique.
type IReactionRepository interface {
	// Insert stores the reaction. It returns false without error when a reaction
	// with the same key already exists.
	Insert(ctx context.Context, reaction *entity.Reaction) (bool, error)
	// DeleteByKey removes the reaction for key and reports whether one existed.
	DeleteByKey(ctx context.Context, key entity.ReactionKey) (bool, error)
	Exists(ctx context.Context, key entity.ReactionKey) (bool, error)
	CountByTarget(ctx context.Context, kind entity.TargetKind, targetID string) (int64, error)
	CountByActor(ctx context.Context, actorID string, kind entity.TargetKind) (int64, error)
	ListByActor(ctx context.Context, actorID string, kind entity.TargetKind, page Pagination) ([]entity.Reaction, error)
	ListByTarget(ctx context.Context, kind entity.TargetKind, targetID string, page Pagination) ([]entity.Reaction, error)
	DeleteByTarget(ctx context.Context, kind entity.TargetKind, targetIDs ...string) (int64, error)
}

// IReactableRepository exposes the denormalized counters of reaction targets.
type IReactableRepository interface {
	Exists(ctx context.Context, kind entity.TargetKind, targetID string) (bool, error)
	// IncrementCounter applies delta to the target's counter. Negative deltas
	// never take the counter below zero.
	IncrementCounter(ctx context.Context, kind entity.TargetKind, targetID string, delta int64) error
	SetCounter(ctx context.Context, kind entity.TargetKind, targetID string, value int64) error
}

// ITransactor runs fn atomically when the store supports it.
type ITransactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ICounterRepairRepository is a durable log of targets that need a recount.
type ICounterRepairRepository interface {
	// Mark records the target, bumping the version of an existing mark.
	Mark(ctx context.Context, kind entity.TargetKind, targetID string) error
	// ListPending returns the oldest marks first.
	ListPending(ctx context.Context, limit int64) ([]entity.CounterRepair, error)
	// Clear removes the mark only while it still carries repair.Version and
	// reports whether it did.
	Clear(ctx context.Context, repair entity.CounterRepair) (bool, error)
}
