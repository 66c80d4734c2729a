package appointment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/events"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	ClientID uint
	WorkerID uint
	SlotID   uint

	Date  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	publisher events.Publisher
	log       *slog.Logger
	now       func() time.Time
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	publisher events.Publisher,
	log *slog.Logger,
) *BookAppointment {
	return &BookAppointment{
		repo:      repo,
		audit:     audit,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Worker / store / slot / client
	// --------------------------------------------------
	worker, err := uc.repo.GetWorker(ctx, in.WorkerID)
	if err != nil {
		return nil, err
	}

	store, err := uc.repo.GetStoreByID(ctx, worker.StoreID)
	if err != nil {
		return nil, err
	}

	slot, err := uc.repo.GetSlot(ctx, worker.ID, in.SlotID)
	if err != nil {
		return nil, err
	}

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Date in the store's timezone
	// --------------------------------------------------
	loc := timezone.Location(store.Timezone)
	date, err := time.ParseInLocation(domain.DateLayout, in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start, err := domain.CheckBookable(worker, slot, date, loc, uc.now().In(loc))
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Create (slot lock + uniqueness in the repository)
	// --------------------------------------------------
	ap := &models.Appointment{
		Reference: uuid.NewString(),
		StoreID:   store.ID,
		WorkerID:  worker.ID,
		SlotID:    slot.ID,
		ClientID:  client.ID,
		Date:      date.Format(domain.DateLayout),
		StartTime: start,
		Status:    string(domain.StatusBooked),
		Notes:     in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			uc.audit.Dispatch(audit.Event{
				StoreID:  store.ID,
				ActorID:  &client.ID,
				Action:   "appointment_conflict",
				Entity:   "appointment",
				Metadata: map[string]any{"slot_id": slot.ID, "date": ap.Date},
			})
		}
		return nil, err
	}

	ap.Store = *store
	ap.Worker = *worker
	ap.Slot = *slot
	ap.Client = *client

	// --------------------------------------------------
	// Audit + event
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		StoreID:  store.ID,
		ActorID:  &client.ID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})
	publish(ctx, uc.publisher, uc.log, events.TypeAppointmentBooked, ap, uc.now())

	return ap, nil
}

// publish never fails the request; the appointment is already stored.
func publish(
	ctx context.Context,
	p events.Publisher,
	log *slog.Logger,
	eventType string,
	ap *models.Appointment,
	now time.Time,
) {
	if err := p.Publish(ctx, events.FromAppointment(eventType, ap, now)); err != nil {
		log.Warn("appointment event publish failed",
			"type", eventType,
			"appointment_id", ap.ID,
			"err", err,
		)
	}
}
