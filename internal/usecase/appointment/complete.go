package appointment

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/events"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CompleteAppointment struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	publisher events.Publisher
	log       *slog.Logger
	now       func() time.Time
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	publisher events.Publisher,
	log *slog.Logger,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:      repo,
		audit:     audit,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

// Execute is only available to the worker.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	workerID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	owner := Owner{WorkerID: workerID}
	ap, err := loadOwned(ctx, uc.repo, owner, appointmentID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if err := domain.Complete(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StoreID:  ap.StoreID,
		ActorID:  &workerID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})
	publish(ctx, uc.publisher, uc.log, events.TypeAppointmentCompleted, ap, now)

	return ap, nil
}
