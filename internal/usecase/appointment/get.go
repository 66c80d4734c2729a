package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/weekday"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	owner Owner,
	appointmentID uint,
	lang string,
) (*dto.AppointmentListDTO, error) {

	ap, err := loadOwned(ctx, uc.repo, owner, appointmentID)
	if err != nil {
		return nil, err
	}

	out := dto.FromAppointment(*ap, weekday.Day(ap.Slot.Day).Label(lang))
	return &out, nil
}
