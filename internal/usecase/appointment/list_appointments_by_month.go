package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type ListAppointmentsByMonth struct {
	repo appointment.Repository
}

func NewListAppointmentsByMonth(
	repo appointment.Repository,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	workerID uint,
	year int,
	month int,
	lang string,
) ([]dto.AppointmentListDTO, error) {

	if year < 2000 || year > 2100 {
		return nil, httperr.ErrBusiness("invalid_year")
	}
	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	worker, err := uc.repo.GetWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	store, err := uc.repo.GetStoreByID(ctx, worker.StoreID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(store.Timezone)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	return listForWorker(ctx, uc.repo, workerID, start, end, lang)
}
