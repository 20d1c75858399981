package models

import "time"

type ProfileResponse struct {
	ID             uint            `json:"id"`
	Username       string          `json:"username"`
	Email          string          `json:"email"`
	Bio            string          `json:"bio"`
	ProfilePicture *string         `json:"profile_picture"`
	Followers      []*UserResponse `json:"followers"`
	Following      []*UserResponse `json:"following"`
	PostsCount     int64           `json:"posts_count"`
	IsOnline       bool            `json:"is_online"`
	LastSeen       *time.Time      `json:"last_seen"`
	CreatedAt      time.Time       `json:"created_at"`
}
