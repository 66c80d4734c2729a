package models

import "time"

// Friendship is stored once per direction.
type Friendship struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ClientID uint   `gorm:"not null;uniqueIndex:idx_client_friend" json:"client_id"`
	FriendID uint   `gorm:"not null;uniqueIndex:idx_client_friend" json:"friend_id"`
	Friend   Client `gorm:"foreignKey:FriendID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"friend"`

	CreatedAt time.Time `json:"created_at"`
}
