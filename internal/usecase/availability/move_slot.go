package availability

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// MoveSlot drops a slot onto another day column. A slot with upcoming
// bookings stays where it is.
type MoveSlot struct {
	repo  domain.Repository
	slots slotSource
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewMoveSlot(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
	log *slog.Logger,
) *MoveSlot {
	return &MoveSlot{
		repo:  repo,
		slots: slotSource{repo: repo, cache: c, log: log},
		audit: audit,
		now:   time.Now,
	}
}

func (uc *MoveSlot) Execute(
	ctx context.Context,
	workerID uint,
	slotID uint,
	day string,
) (*models.AvailabilitySlot, error) {

	worker, err := uc.repo.GetWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	slot, err := uc.repo.GetSlot(ctx, workerID, slotID)
	if err != nil {
		return nil, err
	}

	siblings, err := uc.repo.ListSlots(ctx, workerID)
	if err != nil {
		return nil, err
	}

	from := slot.Day
	if err := domain.Move(slot, day, siblings); err != nil {
		return nil, err
	}
	if slot.Day == from {
		return slot, nil
	}

	upcoming, err := uc.repo.UpcomingBookedSlotIDs(ctx, workerID, uc.now())
	if err != nil {
		return nil, err
	}
	if _, ok := upcoming[slot.ID]; ok {
		return nil, httperr.ErrBusiness("slot_in_use")
	}

	if err := uc.repo.UpdateSlot(ctx, slot); err != nil {
		return nil, err
	}
	uc.slots.invalidate(ctx, workerID)

	uc.audit.Dispatch(slotEvent(worker, "slot_moved", &slot.ID, map[string]string{
		"from": from,
		"to":   slot.Day,
	}))

	return slot, nil
}
