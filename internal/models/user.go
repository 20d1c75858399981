package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account in the application
type User struct {
	gorm.Model
	Username       string     `gorm:"unique;not null" json:"username"`
	Email          string     `gorm:"unique;not null" json:"email"`
	PasswordHash   string     `gorm:"not null" json:"-"`
	Password       string     `gorm:"-" json:"password"`
	Bio            string     `json:"bio"`
	ProfilePicture *string    `json:"profile_picture"`
	IsOnline       bool       `gorm:"default:false" json:"is_online"`
	LastSeen       *time.Time `json:"last_seen"`
}

func (user *User) ToUserResponse() *UserResponse {
	return &UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		ProfilePicture: user.ProfilePicture,
		IsOnline:       user.IsOnline,
		LastSeen:       user.LastSeen,
	}
}

func (user *User) ToProfileResponse(postsCount int64, followers, following []*UserResponse) *ProfileResponse {
	return &ProfileResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		Bio:            user.Bio,
		ProfilePicture: user.ProfilePicture,
		Followers:      followers,
		Following:      following,
		PostsCount:     postsCount,
		IsOnline:       user.IsOnline,
		LastSeen:       user.LastSeen,
		CreatedAt:      user.CreatedAt,
	}
}
