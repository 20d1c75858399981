package models

import "time"

type ConversationResponse struct {
	ID               uint            `json:"id"`
	IsGroup          bool            `json:"is_group"`
	GroupName        string          `json:"group_name,omitempty"`
	GroupDescription string          `json:"group_description,omitempty"`
	GroupImage       string          `json:"group_image,omitempty"`
	Participants     []*UserResponse `json:"participants"`
	LastMessage      *Message        `json:"last_message"`
	LastActivity     time.Time       `json:"last_activity"`
	Unread           int64           `json:"unread"`
}
