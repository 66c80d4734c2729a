package availability

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type fakeRepo struct {
	stores  map[uint]models.Store
	workers map[uint]models.Worker
	slots   []models.AvailabilitySlot
	booked  map[string]map[uint]struct{}
	// appointments feed the upcoming-bookings checks.
	appointments []models.Appointment
	nextID       uint
	listed       int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		stores:  map[uint]models.Store{1: {ID: 1, Name: "Hajvarázs", Timezone: "Europe/Budapest"}},
		workers: map[uint]models.Worker{7: {ID: 7, StoreID: 1, Name: "Kata", Active: true}},
		booked:  map[string]map[uint]struct{}{},
		nextID:  100,
	}
}

func (f *fakeRepo) GetStoreByID(_ context.Context, id uint) (*models.Store, error) {
	s, ok := f.stores[id]
	if !ok {
		return nil, httperr.ErrBusiness("store_not_found")
	}
	return &s, nil
}

func (f *fakeRepo) GetWorker(_ context.Context, id uint) (*models.Worker, error) {
	w, ok := f.workers[id]
	if !ok {
		return nil, httperr.ErrBusiness("worker_not_found")
	}
	return &w, nil
}

func (f *fakeRepo) ListSlots(_ context.Context, workerID uint) ([]models.AvailabilitySlot, error) {
	f.listed++
	var out []models.AvailabilitySlot
	for _, s := range f.slots {
		if s.WorkerID == workerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetSlot(_ context.Context, workerID, slotID uint) (*models.AvailabilitySlot, error) {
	for _, s := range f.slots {
		if s.ID == slotID && s.WorkerID == workerID {
			return &s, nil
		}
	}
	return nil, httperr.ErrBusiness("slot_not_found")
}

func (f *fakeRepo) CreateSlot(_ context.Context, slot *models.AvailabilitySlot) error {
	f.nextID++
	slot.ID = f.nextID
	f.slots = append(f.slots, *slot)
	return nil
}

func (f *fakeRepo) UpdateSlot(_ context.Context, slot *models.AvailabilitySlot) error {
	for i, s := range f.slots {
		if s.ID == slot.ID {
			f.slots[i] = *slot
			return nil
		}
	}
	return httperr.ErrBusiness("slot_not_found")
}

func (f *fakeRepo) DeleteSlot(_ context.Context, workerID, slotID uint, now time.Time) error {
	if _, ok := f.upcoming(workerID, now)[slotID]; ok {
		return httperr.ErrBusiness("slot_in_use")
	}
	for i, s := range f.slots {
		if s.ID == slotID && s.WorkerID == workerID {
			f.slots = append(f.slots[:i], f.slots[i+1:]...)
			return nil
		}
	}
	return httperr.ErrBusiness("slot_not_found")
}

func (f *fakeRepo) ReplaceWeek(_ context.Context, workerID uint, slots []models.AvailabilitySlot, now time.Time) error {
	existing := map[string]models.AvailabilitySlot{}
	var kept []models.AvailabilitySlot
	for _, s := range f.slots {
		if s.WorkerID == workerID {
			existing[s.Day+" "+s.Time] = s
			continue
		}
		kept = append(kept, s)
	}

	for _, s := range slots {
		key := s.Day + " " + s.Time
		if old, ok := existing[key]; ok {
			delete(existing, key)
			old.Status = s.Status
			kept = append(kept, old)
			continue
		}
		f.nextID++
		s.ID = f.nextID
		kept = append(kept, s)
	}

	upcoming := f.upcoming(workerID, now)
	for _, dropped := range existing {
		if _, ok := upcoming[dropped.ID]; ok {
			return httperr.ErrBusiness("slot_in_use")
		}
	}
	f.slots = kept
	return nil
}

func (f *fakeRepo) UpcomingBookedSlotIDs(_ context.Context, workerID uint, now time.Time) (map[uint]struct{}, error) {
	return f.upcoming(workerID, now), nil
}

func (f *fakeRepo) upcoming(workerID uint, now time.Time) map[uint]struct{} {
	out := map[uint]struct{}{}
	for _, ap := range f.appointments {
		if ap.WorkerID == workerID && ap.Status == "booked" && ap.StartTime.After(now) {
			out[ap.SlotID] = struct{}{}
		}
	}
	return out
}

func (f *fakeRepo) BookedSlotIDs(_ context.Context, _ uint, date string) (map[uint]struct{}, error) {
	out := map[uint]struct{}{}
	for id := range f.booked[date] {
		out[id] = struct{}{}
	}
	return out, nil
}

// memoryCache mimics Redis by storing JSON.
type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dst any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (m *memoryCache) Set(_ context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = b
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

type nopSink struct{}

func (nopSink) Write(audit.Event) error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAudit() *audit.Dispatcher {
	return audit.NewDispatcher(nopSink{}, discardLogger())
}
