package models

import "time"

type UserResponse struct {
	ID             uint       `json:"id"`
	Username       string     `json:"username"`
	ProfilePicture *string    `json:"profile_picture"`
	IsOnline       bool       `json:"is_online"`
	LastSeen       *time.Time `json:"last_seen"`
}
