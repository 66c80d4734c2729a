package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AvailabilityGormRepository struct {
	db *gorm.DB
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{db: db}
}

// --------------------------------------------------
// Directory
// --------------------------------------------------

func (r *AvailabilityGormRepository) GetStoreByID(
	ctx context.Context,
	storeID uint,
) (*models.Store, error) {

	var store models.Store
	if err := r.db.WithContext(ctx).First(&store, storeID).Error; err != nil {
		return nil, notFound(err, "store_not_found")
	}
	return &store, nil
}

func (r *AvailabilityGormRepository) GetWorker(
	ctx context.Context,
	workerID uint,
) (*models.Worker, error) {

	var w models.Worker
	if err := r.db.WithContext(ctx).First(&w, workerID).Error; err != nil {
		return nil, notFound(err, "worker_not_found")
	}
	return &w, nil
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

func (r *AvailabilityGormRepository) ListSlots(
	ctx context.Context,
	workerID uint,
) ([]models.AvailabilitySlot, error) {

	var slots []models.AvailabilitySlot
	if err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("id ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *AvailabilityGormRepository) GetSlot(
	ctx context.Context,
	workerID uint,
	slotID uint,
) (*models.AvailabilitySlot, error) {

	var slot models.AvailabilitySlot
	if err := r.db.WithContext(ctx).
		Where("id = ? AND worker_id = ?", slotID, workerID).
		First(&slot).Error; err != nil {
		return nil, notFound(err, "slot_not_found")
	}
	return &slot, nil
}

func (r *AvailabilityGormRepository) CreateSlot(
	ctx context.Context,
	slot *models.AvailabilitySlot,
) error {
	if err := r.db.WithContext(ctx).Create(slot).Error; err != nil {
		if httperr.IsConflict(err) {
			return httperr.ErrBusiness("slot_already_exists")
		}
		return err
	}
	return nil
}

func (r *AvailabilityGormRepository) UpdateSlot(
	ctx context.Context,
	slot *models.AvailabilitySlot,
) error {
	if err := r.db.WithContext(ctx).Save(slot).Error; err != nil {
		if httperr.IsConflict(err) {
			return httperr.ErrBusiness("slot_already_exists")
		}
		return err
	}
	return nil
}

func (r *AvailabilityGormRepository) DeleteSlot(
	ctx context.Context,
	workerID uint,
	slotID uint,
	now time.Time,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := refuseUpcoming(tx, workerID, []uint{slotID}, now); err != nil {
			return err
		}

		res := tx.Where("id = ? AND worker_id = ?", slotID, workerID).
			Delete(&models.AvailabilitySlot{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("slot_not_found")
		}
		return nil
	})
}

// ReplaceWeek keeps the ids of slots whose (day, time) survives so booked
// appointments keep pointing at them.
func (r *AvailabilityGormRepository) ReplaceWeek(
	ctx context.Context,
	workerID uint,
	slots []models.AvailabilitySlot,
	now time.Time,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []models.AvailabilitySlot
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("worker_id = ?", workerID).
			Find(&existing).Error; err != nil {
			return err
		}

		byKey := make(map[string]models.AvailabilitySlot, len(existing))
		for _, s := range existing {
			byKey[s.Day+" "+s.Time] = s
		}

		var toCreate []models.AvailabilitySlot
		for _, s := range slots {
			key := s.Day + " " + s.Time
			if old, ok := byKey[key]; ok {
				delete(byKey, key)
				if old.Status != s.Status {
					if err := tx.Model(&old).Update("status", s.Status).Error; err != nil {
						return err
					}
				}
				continue
			}
			s.ID = 0
			s.WorkerID = workerID
			toCreate = append(toCreate, s)
		}

		if len(byKey) > 0 {
			ids := make([]uint, 0, len(byKey))
			for _, s := range byKey {
				ids = append(ids, s.ID)
			}
			if err := refuseUpcoming(tx, workerID, ids, now); err != nil {
				return err
			}
			if err := tx.Where("id IN ?", ids).Delete(&models.AvailabilitySlot{}).Error; err != nil {
				return err
			}
		}

		if len(toCreate) > 0 {
			if err := tx.Create(&toCreate).Error; err != nil {
				if httperr.IsConflict(err) {
					return httperr.ErrBusiness("duplicate_slot")
				}
				return err
			}
		}
		return nil
	})
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *AvailabilityGormRepository) UpcomingBookedSlotIDs(
	ctx context.Context,
	workerID uint,
	now time.Time,
) (map[uint]struct{}, error) {

	return upcomingSlotIDs(r.db.WithContext(ctx), workerID, nil, now)
}

// upcomingSlotIDs narrows to slotIDs when given.
func upcomingSlotIDs(
	tx *gorm.DB,
	workerID uint,
	slotIDs []uint,
	now time.Time,
) (map[uint]struct{}, error) {

	q := tx.Model(&models.Appointment{}).
		Where("worker_id = ? AND status = ? AND start_time > ?", workerID, appointment.StatusBooked, now)
	if slotIDs != nil {
		q = q.Where("slot_id IN ?", slotIDs)
	}

	var ids []uint
	if err := q.Distinct().Pluck("slot_id", &ids).Error; err != nil {
		return nil, err
	}

	out := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

func refuseUpcoming(tx *gorm.DB, workerID uint, slotIDs []uint, now time.Time) error {
	upcoming, err := upcomingSlotIDs(tx, workerID, slotIDs, now)
	if err != nil {
		return err
	}
	if len(upcoming) > 0 {
		return httperr.ErrBusiness("slot_in_use")
	}
	return nil
}

func (r *AvailabilityGormRepository) BookedSlotIDs(
	ctx context.Context,
	workerID uint,
	date string,
) (map[uint]struct{}, error) {

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("worker_id = ? AND date = ? AND status = ?", workerID, date, appointment.StatusBooked).
		Pluck("slot_id", &ids).Error; err != nil {
		return nil, err
	}

	out := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*AvailabilityGormRepository)(nil)
