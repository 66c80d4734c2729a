package availability

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AddSlot struct {
	repo  domain.Repository
	slots slotSource
	audit *audit.Dispatcher
}

func NewAddSlot(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
	log *slog.Logger,
) *AddSlot {
	return &AddSlot{
		repo:  repo,
		slots: slotSource{repo: repo, cache: c, log: log},
		audit: audit,
	}
}

func (uc *AddSlot) Execute(
	ctx context.Context,
	workerID uint,
	in domain.SlotInput,
) (*models.AvailabilitySlot, error) {

	worker, err := uc.repo.GetWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	n, err := domain.Normalize(in)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.ListSlots(ctx, workerID)
	if err != nil {
		return nil, err
	}
	for _, s := range existing {
		if s.Day == n.Day && s.Time == n.Time {
			return nil, httperr.ErrBusiness("slot_already_exists")
		}
	}

	slot := &models.AvailabilitySlot{
		WorkerID: workerID,
		Day:      n.Day,
		Time:     n.Time,
		Status:   n.Status,
	}
	if err := uc.repo.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}
	uc.slots.invalidate(ctx, workerID)

	uc.audit.Dispatch(slotEvent(worker, "slot_created", &slot.ID, nil))

	return slot, nil
}
