package availability

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Week is the dashboard board: seven day columns, Monday first.
type Week struct {
	WorkerID uint              `json:"worker_id"`
	Days     []domain.DayGroup `json:"days"`
}

// slotSource reads worker slots through the cache and invalidates it after
// every write.
type slotSource struct {
	repo  domain.Repository
	cache cache.Cache
	log   *slog.Logger
}

func (s slotSource) load(ctx context.Context, workerID uint) ([]models.AvailabilitySlot, error) {
	key := cache.WorkerSlotsKey(workerID)

	var slots []models.AvailabilitySlot
	found, err := s.cache.Get(ctx, key, &slots)
	if err != nil {
		s.log.Warn("availability cache read failed", "worker_id", workerID, "err", err)
	}
	if found {
		return slots, nil
	}

	slots, err = s.repo.ListSlots(ctx, workerID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, slots); err != nil {
		s.log.Warn("availability cache write failed", "worker_id", workerID, "err", err)
	}
	return slots, nil
}

func (s slotSource) invalidate(ctx context.Context, workerID uint) {
	if err := s.cache.Delete(ctx, cache.WorkerSlotsKey(workerID)); err != nil {
		s.log.Warn("availability cache invalidation failed", "worker_id", workerID, "err", err)
	}
}

func (s slotSource) week(ctx context.Context, workerID uint, lang string) (*Week, error) {
	slots, err := s.load(ctx, workerID)
	if err != nil {
		return nil, err
	}
	return &Week{
		WorkerID: workerID,
		Days:     domain.GroupByDay(slots, lang),
	}, nil
}

func slotEvent(worker *models.Worker, action string, slotID *uint, meta any) audit.Event {
	return audit.Event{
		StoreID:  worker.StoreID,
		ActorID:  &worker.ID,
		Action:   action,
		Entity:   "availability_slot",
		EntityID: slotID,
		Metadata: meta,
	}
}
