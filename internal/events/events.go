package events

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const (
	TypeAppointmentBooked    = "appointment.booked"
	TypeAppointmentCancelled = "appointment.cancelled"
	TypeAppointmentCompleted = "appointment.completed"
)

type AppointmentEvent struct {
	Type          string    `json:"type"`
	Reference     string    `json:"reference"`
	AppointmentID uint      `json:"appointment_id"`
	StoreID       uint      `json:"store_id"`
	WorkerID      uint      `json:"worker_id"`
	ClientID      uint      `json:"client_id"`
	SlotID        uint      `json:"slot_id"`
	Date          string    `json:"date"`
	StartTime     time.Time `json:"start_time"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func FromAppointment(eventType string, ap *models.Appointment, now time.Time) AppointmentEvent {
	return AppointmentEvent{
		Type:          eventType,
		Reference:     ap.Reference,
		AppointmentID: ap.ID,
		StoreID:       ap.StoreID,
		WorkerID:      ap.WorkerID,
		ClientID:      ap.ClientID,
		SlotID:        ap.SlotID,
		Date:          ap.Date,
		StartTime:     ap.StartTime,
		Status:        ap.Status,
		OccurredAt:    now.UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, ev AppointmentEvent) error
}

// Noop is used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, AppointmentEvent) error { return nil }
