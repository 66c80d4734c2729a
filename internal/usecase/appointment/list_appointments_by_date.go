package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	workerID uint,
	dateStr string,
	lang string,
) ([]dto.AppointmentListDTO, error) {

	worker, err := uc.repo.GetWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	store, err := uc.repo.GetStoreByID(ctx, worker.StoreID)
	if err != nil {
		return nil, err
	}

	date, err := timezone.ParseDate(store.Timezone, dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start := date
	end := start.AddDate(0, 0, 1)

	return listForWorker(ctx, uc.repo, workerID, start, end, lang)
}

func listForWorker(
	ctx context.Context,
	repo domain.Repository,
	workerID uint,
	start time.Time,
	end time.Time,
	lang string,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := repo.ListAppointmentsForWorker(
		ctx,
		workerID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	return toDTOs(appointments, lang), nil
}
