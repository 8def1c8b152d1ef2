package models

import (
	"time"
)

// User is the directory record for a post author. Registration and
// authentication live outside this service; the engine only reads the
// verification flag when assembling feeds.
type User struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Username  string    `gorm:"not null;index" json:"username"`
	Verified  bool      `gorm:"not null;default:false" json:"verified"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
