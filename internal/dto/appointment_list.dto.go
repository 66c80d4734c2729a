package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AppointmentListDTO struct {
	ID         uint      `json:"id"`
	Reference  string    `json:"reference"`
	Date       string    `json:"date"`
	Day        string    `json:"day"`
	Time       string    `json:"time"`
	StartTime  time.Time `json:"start_time"`
	Status     string    `json:"status"`
	StoreID    uint      `json:"store_id"`
	StoreName  string    `json:"store_name,omitempty"`
	WorkerID   uint      `json:"worker_id"`
	WorkerName string    `json:"worker_name,omitempty"`
	ClientID   uint      `json:"client_id"`
	ClientName string    `json:"client_name,omitempty"`
	Notes      string    `json:"notes,omitempty"`
}

// FromAppointment flattens ap; dayLabel is the localized slot day.
func FromAppointment(ap models.Appointment, dayLabel string) AppointmentListDTO {
	return AppointmentListDTO{
		ID:         ap.ID,
		Reference:  ap.Reference,
		Date:       ap.Date,
		Day:        dayLabel,
		Time:       ap.Slot.Time,
		StartTime:  ap.StartTime,
		Status:     ap.Status,
		StoreID:    ap.StoreID,
		StoreName:  ap.Store.Name,
		WorkerID:   ap.WorkerID,
		WorkerName: ap.Worker.Name,
		ClientID:   ap.ClientID,
		ClientName: ap.Client.Name,
		Notes:      ap.Notes,
	}
}
