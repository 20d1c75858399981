package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	gorm.Model
	PostID   uint   `gorm:"not null" json:"post_id"`
	AuthorID uint   `gorm:"not null" json:"author_id"`
	Author   User   `json:"-"`
	Content  string `gorm:"not null" json:"content"`
}

type CommentResponse struct {
	ID        uint          `json:"id"`
	Author    *UserResponse `json:"author"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
}

func (comment *Comment) ToCommentResponse(author *UserResponse) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		Author:    author,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}
