// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a user-authored content item in the Notebooks application.
// Its ID doubles as the partition key for every child record (likes, comments,
// reports reference it by PostID).
//
// LikeCount, CommentCount and ReportCount are maintained incrementally by the
// services rather than recomputed per read; keeping them consistent with the
// underlying Like/Comment records is an application invariant, not a storage
// guarantee.
type Post struct {
	ID           string `gorm:"primaryKey;size:32" json:"id"`
	AuthorID     string `gorm:"not null;index;size:64" json:"author_id"`
	AuthorName   string `gorm:"not null" json:"author_name"`
	ContentURL   string `gorm:"not null" json:"content_url"`
	Caption      string `json:"caption,omitempty"`
	LikeCount    int    `gorm:"not null;default:0" json:"like_count"`
	CommentCount int    `gorm:"not null;default:0" json:"comment_count"`
	ReportCount  int    `gorm:"not null;default:0" json:"report_count"`
	// Liked indicates whether the requesting viewer liked this post (computed)
	Liked bool `gorm:"-" json:"liked"`
	// AuthorVerified is resolved from the user directory at feed-assembly time (computed)
	AuthorVerified bool      `gorm:"-" json:"author_verified"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
