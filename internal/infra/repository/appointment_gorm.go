package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Directory
// --------------------------------------------------

func (r *AppointmentGormRepository) GetStoreByID(
	ctx context.Context,
	id uint,
) (*models.Store, error) {

	var store models.Store
	if err := r.db.WithContext(ctx).First(&store, id).Error; err != nil {
		return nil, notFound(err, "store_not_found")
	}
	return &store, nil
}

func (r *AppointmentGormRepository) GetWorker(
	ctx context.Context,
	workerID uint,
) (*models.Worker, error) {

	var w models.Worker
	if err := r.db.WithContext(ctx).First(&w, workerID).Error; err != nil {
		return nil, notFound(err, "worker_not_found")
	}
	return &w, nil
}

func (r *AppointmentGormRepository) GetSlot(
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

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	clientID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, clientID).Error; err != nil {
		return nil, notFound(err, "client_not_found")
	}
	return &client, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// The slot row lock serializes concurrent bookings of the same slot.
		var slot models.AvailabilitySlot
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND worker_id = ?", ap.SlotID, ap.WorkerID).
			First(&slot).Error; err != nil {
			return notFound(err, "slot_not_found")
		}

		if slot.Status != "available" {
			return httperr.ErrBusiness("slot_unavailable")
		}

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where("slot_id = ? AND date = ? AND status = ?", ap.SlotID, ap.Date, domain.StatusBooked).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Omit(clause.Associations).Create(ap).Error
	})

	if err != nil && httperr.IsConflict(err) {
		return httperr.ErrBusiness("slot_taken")
	}
	return err
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Store").
		Preload("Client").
		Preload("Worker").
		Preload("Slot").
		First(&ap, appointmentID).Error; err != nil {
		return nil, notFound(err, "appointment_not_found")
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForWorker(
	ctx context.Context,
	workerID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Slot").
		Where(
			"worker_id = ? AND start_time >= ? AND start_time < ?",
			workerID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Store").
		Preload("Worker").
		Preload("Slot").
		Where("client_id = ?", clientID).
		Order("start_time DESC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
