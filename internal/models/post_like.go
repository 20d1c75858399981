package models

import "time"

// PostLike is one user's like on one post, unique per pair so the like
// toggle stays idempotent under concurrent requests. Unlike removes the
// row, no soft delete.
type PostLike struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	PostID    uint      `gorm:"uniqueIndex:idx_post_user_like;not null" json:"post_id"`
	UserID    uint      `gorm:"uniqueIndex:idx_post_user_like;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
