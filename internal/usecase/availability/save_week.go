package availability

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// SaveWeek replaces the worker's whole weekly availability.
type SaveWeek struct {
	repo  domain.Repository
	slots slotSource
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewSaveWeek(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
	log *slog.Logger,
) *SaveWeek {
	return &SaveWeek{
		repo:  repo,
		slots: slotSource{repo: repo, cache: c, log: log},
		audit: audit,
		now:   time.Now,
	}
}

func (uc *SaveWeek) Execute(
	ctx context.Context,
	workerID uint,
	in []domain.SlotInput,
	lang string,
) (*Week, error) {

	worker, err := uc.repo.GetWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	normalized, err := domain.NormalizeWeek(in)
	if err != nil {
		return nil, err
	}

	slots := make([]models.AvailabilitySlot, 0, len(normalized))
	for _, s := range normalized {
		slots = append(slots, models.AvailabilitySlot{
			WorkerID: workerID,
			Day:      s.Day,
			Time:     s.Time,
			Status:   s.Status,
		})
	}

	if err := uc.repo.ReplaceWeek(ctx, workerID, slots, uc.now()); err != nil {
		return nil, err
	}
	uc.slots.invalidate(ctx, workerID)

	uc.audit.Dispatch(slotEvent(worker, "availability_saved", nil, map[string]any{
		"slots": len(slots),
	}))

	return uc.slots.week(ctx, workerID, lang)
}
