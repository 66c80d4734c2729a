package models

import "time"

type Appointment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	StoreID uint  `gorm:"index" json:"store_id"`
	Store   Store `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"store"`

	WorkerID uint   `gorm:"index" json:"worker_id"`
	Worker   Worker `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"worker"`

	SlotID uint             `gorm:"uniqueIndex:idx_slot_date_booked,where:status = 'booked'" json:"slot_id"`
	Slot   AvailabilitySlot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"slot"`

	ClientID uint   `gorm:"index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// Date is the calendar day (YYYY-MM-DD) of the booked weekly slot.
	Date      string    `gorm:"size:10;uniqueIndex:idx_slot_date_booked" json:"date"`
	StartTime time.Time `json:"start_time"`

	Status string `gorm:"size:20;default:'booked'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
