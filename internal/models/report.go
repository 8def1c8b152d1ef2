package models

import (
	"time"
)

// ReportedPost records a single user's report against a post. Multiple
// reports may reference the same post; they are purged en masse when the
// post is cascade-deleted after crossing the report threshold.
type ReportedPost struct {
	ID         string    `gorm:"primaryKey;size:32" json:"id"`
	PostID     string    `gorm:"not null;index;size:32" json:"post_id"`
	ReporterID string    `gorm:"not null;index;size:64" json:"reporter_id"`
	Reason     string    `gorm:"not null" json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}
