package handlers

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// fakeScheduling backs both the availability and the appointment use cases.
type fakeScheduling struct {
	mu           sync.Mutex
	store        models.Store
	workers      map[uint]models.Worker
	clients      map[uint]models.Client
	slots        map[uint]models.AvailabilitySlot
	appointments map[uint]models.Appointment
	nextID       uint
}

func newFakeScheduling() *fakeScheduling {
	return &fakeScheduling{
		store: models.Store{ID: 1, Name: "Hajvarázs", Timezone: "Europe/Budapest"},
		workers: map[uint]models.Worker{
			7: {ID: 7, StoreID: 1, Name: "Kata", Active: true},
			8: {ID: 8, StoreID: 1, Name: "Bence", Active: true},
		},
		clients: map[uint]models.Client{
			21: {ID: 21, Name: "Anna"},
			22: {ID: 22, Name: "Péter"},
		},
		slots:        map[uint]models.AvailabilitySlot{},
		appointments: map[uint]models.Appointment{},
		nextID:       100,
	}
}

func (f *fakeScheduling) GetStoreByID(_ context.Context, id uint) (*models.Store, error) {
	if id != f.store.ID {
		return nil, httperr.ErrBusiness("store_not_found")
	}
	s := f.store
	return &s, nil
}

func (f *fakeScheduling) GetWorker(_ context.Context, id uint) (*models.Worker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.workers[id]
	if !ok {
		return nil, httperr.ErrBusiness("worker_not_found")
	}
	return &w, nil
}

func (f *fakeScheduling) GetClient(_ context.Context, id uint) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	return &c, nil
}

func (f *fakeScheduling) ListSlots(_ context.Context, workerID uint) ([]models.AvailabilitySlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.AvailabilitySlot
	for _, s := range f.slots {
		if s.WorkerID == workerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduling) GetSlot(_ context.Context, workerID, slotID uint) (*models.AvailabilitySlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[slotID]
	if !ok || s.WorkerID != workerID {
		return nil, httperr.ErrBusiness("slot_not_found")
	}
	return &s, nil
}

func (f *fakeScheduling) CreateSlot(_ context.Context, slot *models.AvailabilitySlot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	slot.ID = f.nextID
	f.slots[slot.ID] = *slot
	return nil
}

func (f *fakeScheduling) UpdateSlot(_ context.Context, slot *models.AvailabilitySlot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slots[slot.ID] = *slot
	return nil
}

func (f *fakeScheduling) DeleteSlot(_ context.Context, workerID, slotID uint, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.upcoming(workerID, now)[slotID]; ok {
		return httperr.ErrBusiness("slot_in_use")
	}
	s, ok := f.slots[slotID]
	if !ok || s.WorkerID != workerID {
		return httperr.ErrBusiness("slot_not_found")
	}
	delete(f.slots, slotID)
	return nil
}

func (f *fakeScheduling) ReplaceWeek(_ context.Context, workerID uint, slots []models.AvailabilitySlot, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing := map[string]models.AvailabilitySlot{}
	for _, s := range f.slots {
		if s.WorkerID == workerID {
			existing[s.Day+" "+s.Time] = s
		}
	}
	next := map[uint]models.AvailabilitySlot{}
	for _, s := range slots {
		key := s.Day + " " + s.Time
		if old, ok := existing[key]; ok {
			delete(existing, key)
			old.Status = s.Status
			next[old.ID] = old
			continue
		}
		f.nextID++
		s.ID = f.nextID
		next[s.ID] = s
	}

	upcoming := f.upcoming(workerID, now)
	for _, dropped := range existing {
		if _, ok := upcoming[dropped.ID]; ok {
			return httperr.ErrBusiness("slot_in_use")
		}
	}
	for _, dropped := range existing {
		delete(f.slots, dropped.ID)
	}
	for id, s := range next {
		f.slots[id] = s
	}
	return nil
}

func (f *fakeScheduling) UpcomingBookedSlotIDs(_ context.Context, workerID uint, now time.Time) (map[uint]struct{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.upcoming(workerID, now), nil
}

// upcoming expects f.mu to be held.
func (f *fakeScheduling) upcoming(workerID uint, now time.Time) map[uint]struct{} {
	out := map[uint]struct{}{}
	for _, ap := range f.appointments {
		if ap.WorkerID == workerID && ap.Status == "booked" && ap.StartTime.After(now) {
			out[ap.SlotID] = struct{}{}
		}
	}
	return out
}

func (f *fakeScheduling) BookedSlotIDs(_ context.Context, workerID uint, date string) (map[uint]struct{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[uint]struct{}{}
	for _, ap := range f.appointments {
		if ap.WorkerID == workerID && ap.Date == date && ap.Status == "booked" {
			out[ap.SlotID] = struct{}{}
		}
	}
	return out, nil
}

func (f *fakeScheduling) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.appointments {
		if existing.SlotID == ap.SlotID && existing.Date == ap.Date && existing.Status == "booked" {
			return httperr.ErrBusiness("slot_taken")
		}
	}
	f.nextID++
	ap.ID = f.nextID
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeScheduling) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ap, ok := f.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	f.fill(&ap)
	return &ap, nil
}

func (f *fakeScheduling) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeScheduling) ListAppointmentsForWorker(_ context.Context, workerID uint, start, end time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.WorkerID == workerID && !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			f.fill(&ap)
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeScheduling) ListAppointmentsForClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ClientID == clientID {
			f.fill(&ap)
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeScheduling) fill(ap *models.Appointment) {
	ap.Store = f.store
	ap.Worker = f.workers[ap.WorkerID]
	ap.Client = f.clients[ap.ClientID]
	ap.Slot = f.slots[ap.SlotID]
}
