package models

import "time"

// AvailabilitySlot is one weekly (day, time) entry of a worker.
type AvailabilitySlot struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	WorkerID uint `gorm:"not null;uniqueIndex:idx_worker_day_time" json:"worker_id"`

	Day    string `gorm:"size:10;not null;uniqueIndex:idx_worker_day_time" json:"day"`
	Time   string `gorm:"size:5;not null;uniqueIndex:idx_worker_day_time" json:"time"`
	Status string `gorm:"size:20;not null;default:'available'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
