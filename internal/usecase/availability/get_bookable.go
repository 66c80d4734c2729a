package availability

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/weekday"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type BookableSlot struct {
	SlotID uint      `json:"slot_id"`
	Time   string    `json:"time"`
	Start  time.Time `json:"start"`
}

type BookableDay struct {
	WorkerID uint           `json:"worker_id"`
	Date     string         `json:"date"`
	Day      weekday.Day    `json:"day"`
	Label    string         `json:"label"`
	Slots    []BookableSlot `json:"slots"`
}

// GetBookable lists the slots a client can still book on one calendar date.
type GetBookable struct {
	repo  domain.Repository
	slots slotSource
	now   func() time.Time
}

func NewGetBookable(repo domain.Repository, c cache.Cache, log *slog.Logger) *GetBookable {
	return &GetBookable{
		repo:  repo,
		slots: slotSource{repo: repo, cache: c, log: log},
		now:   time.Now,
	}
}

func (uc *GetBookable) Execute(
	ctx context.Context,
	workerID uint,
	dateStr string,
	lang string,
) (*BookableDay, error) {

	worker, err := uc.repo.GetWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	store, err := uc.repo.GetStoreByID(ctx, worker.StoreID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(store.Timezone)
	date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	day := weekday.FromTime(date.Weekday())
	out := &BookableDay{
		WorkerID: workerID,
		Date:     dateStr,
		Day:      day,
		Label:    day.Label(lang),
		Slots:    []BookableSlot{},
	}

	if !worker.Active {
		return out, nil
	}

	slots, err := uc.slots.load(ctx, workerID)
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.BookedSlotIDs(ctx, workerID, dateStr)
	if err != nil {
		return nil, err
	}

	domain.SortSlots(slots)
	now := uc.now()

	for _, s := range slots {
		if weekday.Day(s.Day) != day || !domain.Status(s.Status).Bookable() {
			continue
		}
		if _, taken := booked[s.ID]; taken {
			continue
		}

		start, err := appointment.SlotStart(&s, date, loc)
		if err != nil || !start.After(now) {
			continue
		}

		out.Slots = append(out.Slots, BookableSlot{
			SlotID: s.ID,
			Time:   s.Time,
			Start:  start,
		})
	}

	return out, nil
}
