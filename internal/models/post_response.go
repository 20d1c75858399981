package models

import "time"

type PostResponse struct {
	ID               uint              `json:"id"`
	Author           *UserResponse     `json:"author"`
	Content          string            `json:"content"`
	Image            string            `json:"image"`
	IsGeneratedImage bool              `json:"is_generated_image"`
	GenerationPrompt string            `json:"generation_prompt,omitempty"`
	IsEdited         bool              `json:"is_edited"`
	LikesCount       int64             `json:"likes_count"`
	IsLiked          bool              `json:"is_liked"`
	Comments         []CommentResponse `json:"comments"`
	CreatedAt        time.Time         `json:"created_at"`
}

type PostListResponse struct {
	Posts      []*PostResponse `json:"posts"`
	Pagination Pagination      `json:"pagination"`
}
