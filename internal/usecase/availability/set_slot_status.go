package availability

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type SetSlotStatus struct {
	repo  domain.Repository
	slots slotSource
	audit *audit.Dispatcher
}

func NewSetSlotStatus(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
	log *slog.Logger,
) *SetSlotStatus {
	return &SetSlotStatus{
		repo:  repo,
		slots: slotSource{repo: repo, cache: c, log: log},
		audit: audit,
	}
}

func (uc *SetSlotStatus) Execute(
	ctx context.Context,
	workerID uint,
	slotID uint,
	status string,
) (*models.AvailabilitySlot, error) {

	worker, err := uc.repo.GetWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	slot, err := uc.repo.GetSlot(ctx, workerID, slotID)
	if err != nil {
		return nil, err
	}

	if err := domain.SetStatus(slot, status); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateSlot(ctx, slot); err != nil {
		return nil, err
	}
	uc.slots.invalidate(ctx, workerID)

	uc.audit.Dispatch(slotEvent(worker, "slot_status_changed", &slot.ID, map[string]string{
		"status": slot.Status,
	}))

	return slot, nil
}
