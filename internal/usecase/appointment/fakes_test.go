package appointment

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/events"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type fakeRepo struct {
	stores       map[uint]models.Store
	workers      map[uint]models.Worker
	slots        map[uint]models.AvailabilitySlot
	clients      map[uint]models.Client
	appointments map[uint]models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		stores: map[uint]models.Store{
			1: {ID: 1, Name: "Hajvarázs", Timezone: "Europe/Budapest"},
		},
		workers: map[uint]models.Worker{
			7: {ID: 7, StoreID: 1, Name: "Kata", Active: true},
			8: {ID: 8, StoreID: 1, Name: "Bence", Active: true},
		},
		slots: map[uint]models.AvailabilitySlot{
			3: {ID: 3, WorkerID: 7, Day: "Tuesday", Time: "10:30", Status: "available"},
			4: {ID: 4, WorkerID: 7, Day: "Tuesday", Time: "12:00", Status: "unavailable"},
			5: {ID: 5, WorkerID: 8, Day: "Tuesday", Time: "10:30", Status: "available"},
		},
		clients: map[uint]models.Client{
			21: {ID: 21, Name: "Anna", Email: "anna@example.hu"},
			22: {ID: 22, Name: "Péter", Email: "peter@example.hu"},
		},
		appointments: map[uint]models.Appointment{},
		nextID:       500,
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

func (f *fakeRepo) GetSlot(_ context.Context, workerID, slotID uint) (*models.AvailabilitySlot, error) {
	s, ok := f.slots[slotID]
	if !ok || s.WorkerID != workerID {
		return nil, httperr.ErrBusiness("slot_not_found")
	}
	return &s, nil
}

func (f *fakeRepo) GetClient(_ context.Context, id uint) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	return &c, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
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

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	ap.Slot = f.slots[ap.SlotID]
	ap.Client = f.clients[ap.ClientID]
	ap.Worker = f.workers[ap.WorkerID]
	return &ap, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := f.appointments[ap.ID]; !ok {
		return errors.New("missing appointment")
	}
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) ListAppointmentsForWorker(_ context.Context, workerID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.WorkerID == workerID && !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			ap.Slot = f.slots[ap.SlotID]
			ap.Client = f.clients[ap.ClientID]
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ClientID == clientID {
			ap.Slot = f.slots[ap.SlotID]
			ap.Worker = f.workers[ap.WorkerID]
			ap.Store = f.stores[ap.StoreID]
			out = append(out, ap)
		}
	}
	return out, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.AppointmentEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev events.AppointmentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *recordingSink) Write(ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *recordingSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.events))
	for i, ev := range s.events {
		out[i] = ev.Action
	}
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
