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

type CancelAppointment struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	publisher events.Publisher
	log       *slog.Logger
	now       func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	publisher events.Publisher,
	log *slog.Logger,
) *CancelAppointment {
	return &CancelAppointment{
		repo:      repo,
		audit:     audit,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

// Execute cancels on behalf of the client or the worker who owns the
// appointment. A mismatched owner sees appointment_not_found.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	owner Owner,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := loadOwned(ctx, uc.repo, owner, appointmentID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StoreID:  ap.StoreID,
		ActorID:  owner.actorID(),
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"by": owner.kind()},
	})
	publish(ctx, uc.publisher, uc.log, events.TypeAppointmentCancelled, ap, now)

	return ap, nil
}
