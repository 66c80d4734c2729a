package models

import "time"

type Worker struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	StoreID uint   `gorm:"index;not null" json:"store_id"`
	Store   *Store `json:"store,omitempty"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Title  string `gorm:"size:100" json:"title"`
	Email  string `gorm:"size:100" json:"email"`
	Phone  string `gorm:"size:20" json:"phone"`
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
