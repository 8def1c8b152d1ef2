package models

import (
	"time"
)

// Like represents a user's like on a post.
// At most one Like may exist per (PostID, UserID) pair. The ID is derived
// deterministically from that pair (see the id package), so a concurrent
// duplicate insert collides on the primary key instead of slipping past a
// check-then-insert race.
type Like struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	PostID    string    `gorm:"not null;index;size:32" json:"post_id"`
	UserID    string    `gorm:"not null;index;size:64" json:"user_id"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}
