// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Comment represents a comment on a post in the Notebooks application.
// Comments are stored independently of their parent post and are updatable
// and deletable on their own.
type Comment struct {
	ID         string    `gorm:"primaryKey;size:32" json:"id"`
	PostID     string    `gorm:"not null;index;size:32" json:"post_id"`
	AuthorID   string    `gorm:"not null;size:64" json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
