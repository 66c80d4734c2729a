package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/weekday"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ListClientAppointments struct {
	repo domain.Repository
}

func NewListClientAppointments(repo domain.Repository) *ListClientAppointments {
	return &ListClientAppointments{repo: repo}
}

func (uc *ListClientAppointments) Execute(
	ctx context.Context,
	clientID uint,
	lang string,
) ([]dto.AppointmentListDTO, error) {

	if _, err := uc.repo.GetClient(ctx, clientID); err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return toDTOs(appointments, lang), nil
}

func toDTOs(appointments []models.Appointment, lang string) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.FromAppointment(ap, weekday.Day(ap.Slot.Day).Label(lang)))
	}
	return out
}
