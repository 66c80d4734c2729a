package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Directory --------
	GetStoreByID(
		ctx context.Context,
		id uint,
	) (*models.Store, error)

	GetWorker(
		ctx context.Context,
		workerID uint,
	) (*models.Worker, error)

	GetSlot(
		ctx context.Context,
		workerID uint,
		slotID uint,
	) (*models.AvailabilitySlot, error)

	GetClient(
		ctx context.Context,
		clientID uint,
	) (*models.Client, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment must fail with slot_taken when the slot already
	// holds a booked appointment on the same date.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointmentsForWorker(
		ctx context.Context,
		workerID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)
}
