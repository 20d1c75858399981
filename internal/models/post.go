package models

import "gorm.io/gorm"

type Post struct {
	gorm.Model
	AuthorID         uint      `gorm:"not null" json:"author_id"`
	Author           User      `json:"-"`
	Content          string    `gorm:"not null" json:"content"`
	Image            string    `json:"image"`
	IsGeneratedImage bool      `gorm:"default:false" json:"is_generated_image"`
	GenerationPrompt string    `json:"generation_prompt"`
	IsEdited         bool      `gorm:"default:false" json:"is_edited"`
	Likes            []PostLike `json:"-"`
	Comments         []Comment  `json:"-"`
}

func (post *Post) ToPostResponse(author *UserResponse, likesCount int64, isLiked bool, comments []CommentResponse) *PostResponse {
	return &PostResponse{
		ID:               post.ID,
		Author:           author,
		Content:          post.Content,
		Image:            post.Image,
		IsGeneratedImage: post.IsGeneratedImage,
		GenerationPrompt: post.GenerationPrompt,
		IsEdited:         post.IsEdited,
		LikesCount:       likesCount,
		IsLiked:          isLiked,
		Comments:         comments,
		CreatedAt:        post.CreatedAt,
	}
}
