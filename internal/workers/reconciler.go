package workers

import (
	"context"
	"time"

	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

const repairBatchSize = 500

// PublicationSweeper settles publications that stopped part way.
type PublicationSweeper interface {
	SweepStalePublications(ctx context.Context) (int, error)
}

// Reconciler recounts the counters of marked targets and sweeps abandoned
// publications on every tick. A nil repair log skips the recount.
type Reconciler struct {
	reactions usecasecontract.IReactionUseCase
	repairs   contract.ICounterRepairRepository
	sweeper   PublicationSweeper
	logger    usecasecontract.IAppLogger
	interval  time.Duration
}

func NewReconciler(
	reactions usecasecontract.IReactionUseCase,
	repairs contract.ICounterRepairRepository,
	sweeper PublicationSweeper,
	logger usecasecontract.IAppLogger,
	interval time.Duration,
) *Reconciler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Reconciler{
		reactions: reactions,
		repairs:   repairs,
		sweeper:   sweeper,
		logger:    logger,
		interval:  interval,
	}
}

// Start runs once immediately, picking up marks left by a previous process,
// then on every tick until ctx is cancelled.
func (r *Reconciler) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.RunOnce(ctx)
	for {
		select {
		case <-ticker.C:
			r.RunOnce(ctx)
		case <-ctx.Done():
			r.logger.Infof("shutting down reconciler")
			return
		}
	}
}

// RunOnce recounts one batch of marked targets and sweeps once.
func (r *Reconciler) RunOnce(ctx context.Context) {
	r.repair(ctx)
	r.sweep(ctx)
}

func (r *Reconciler) repair(ctx context.Context) {
	if r.repairs == nil {
		return
	}
	pending, err := r.repairs.ListPending(ctx, repairBatchSize)
	if err != nil {
		r.logger.Errorf("failed to list counter repairs: %v", err)
		return
	}
	for _, mark := range pending {
		if ctx.Err() != nil {
			return
		}
		if _, err := r.reactions.Reconcile(ctx, mark.TargetKind, mark.TargetID); err != nil {
			r.logger.Errorf("failed to reconcile %s %s: %v", mark.TargetKind, mark.TargetID, err)
			continue
		}
		metrics.IncCounterRepair(string(mark.TargetKind))
		cleared, err := r.repairs.Clear(ctx, mark)
		if err != nil {
			r.logger.Errorf("failed to clear repair mark %s: %v", mark.ID, err)
			continue
		}
		if !cleared {
			r.logger.Debugf("%s was toggled during its recount, keeping the mark", mark.ID)
		}
	}
}

func (r *Reconciler) sweep(ctx context.Context) {
	if r.sweeper == nil {
		return
	}
	n, err := r.sweeper.SweepStalePublications(ctx)
	if err != nil {
		r.logger.Errorf("publication sweep failed: %v", err)
		return
	}
	if n > 0 {
		r.logger.Infof("settled %d stale publications", n)
	}
}
