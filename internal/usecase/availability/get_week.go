package availability

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
)

type GetWeek struct {
	repo  domain.Repository
	slots slotSource
}

func NewGetWeek(repo domain.Repository, c cache.Cache, log *slog.Logger) *GetWeek {
	return &GetWeek{
		repo:  repo,
		slots: slotSource{repo: repo, cache: c, log: log},
	}
}

func (uc *GetWeek) Execute(
	ctx context.Context,
	workerID uint,
	lang string,
) (*Week, error) {

	if _, err := uc.repo.GetWorker(ctx, workerID); err != nil {
		return nil, err
	}

	return uc.slots.week(ctx, workerID, lang)
}
