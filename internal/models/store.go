package models

import "time"

type Store struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"size:500" json:"description"`
	Phone       string `gorm:"size:20" json:"phone"`
	Email       string `gorm:"size:100" json:"email"`
	Address     string `gorm:"size:255" json:"address"`
	City        string `gorm:"size:100;index" json:"city"`
	Timezone    string `gorm:"size:64;default:'Europe/Budapest'" json:"timezone"`

	Workers []Worker `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"workers,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
