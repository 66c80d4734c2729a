package availability

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
)

type DeleteSlot struct {
	repo  domain.Repository
	slots slotSource
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewDeleteSlot(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
	log *slog.Logger,
) *DeleteSlot {
	return &DeleteSlot{
		repo:  repo,
		slots: slotSource{repo: repo, cache: c, log: log},
		audit: audit,
		now:   time.Now,
	}
}

func (uc *DeleteSlot) Execute(
	ctx context.Context,
	workerID uint,
	slotID uint,
) error {

	worker, err := uc.repo.GetWorker(ctx, workerID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteSlot(ctx, workerID, slotID, uc.now()); err != nil {
		return err
	}
	uc.slots.invalidate(ctx, workerID)

	uc.audit.Dispatch(slotEvent(worker, "slot_deleted", &slotID, nil))
	return nil
}
