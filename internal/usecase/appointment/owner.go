package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Owner scopes an appointment lookup to a client or to a worker. Exactly
// one of the ids is set.
type Owner struct {
	ClientID uint
	WorkerID uint
}

func (o Owner) owns(ap *models.Appointment) bool {
	switch {
	case o.ClientID != 0:
		return ap.ClientID == o.ClientID
	case o.WorkerID != 0:
		return ap.WorkerID == o.WorkerID
	}
	return false
}

func (o Owner) kind() string {
	if o.ClientID != 0 {
		return "client"
	}
	return "worker"
}

func (o Owner) actorID() *uint {
	if o.ClientID != 0 {
		id := o.ClientID
		return &id
	}
	id := o.WorkerID
	return &id
}

func loadOwned(
	ctx context.Context,
	repo domain.Repository,
	owner Owner,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !owner.owns(ap) {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return ap, nil
}
