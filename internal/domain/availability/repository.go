package availability

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Directory --------
	GetStoreByID(
		ctx context.Context,
		storeID uint,
	) (*models.Store, error)

	GetWorker(
		ctx context.Context,
		workerID uint,
	) (*models.Worker, error)

	// -------- Slots --------
	ListSlots(
		ctx context.Context,
		workerID uint,
	) ([]models.AvailabilitySlot, error)

	GetSlot(
		ctx context.Context,
		workerID uint,
		slotID uint,
	) (*models.AvailabilitySlot, error)

	CreateSlot(
		ctx context.Context,
		slot *models.AvailabilitySlot,
	) error

	UpdateSlot(
		ctx context.Context,
		slot *models.AvailabilitySlot,
	) error

	// DeleteSlot fails with slot_in_use while the slot has a booked
	// appointment starting after now.
	DeleteSlot(
		ctx context.Context,
		workerID uint,
		slotID uint,
		now time.Time,
	) error

	// ReplaceWeek atomically swaps all slots of the worker for slots. Slots
	// it would drop must not have a booked appointment after now
	// (slot_in_use).
	ReplaceWeek(
		ctx context.Context,
		workerID uint,
		slots []models.AvailabilitySlot,
		now time.Time,
	) error

	// -------- Bookings --------
	// UpcomingBookedSlotIDs returns the worker's slots holding a booked
	// appointment that starts after now.
	UpcomingBookedSlotIDs(
		ctx context.Context,
		workerID uint,
		now time.Time,
	) (map[uint]struct{}, error)

	BookedSlotIDs(
		ctx context.Context,
		workerID uint,
		date string,
	) (map[uint]struct{}, error)
}
