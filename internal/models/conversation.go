package models

import (
	"time"

	"gorm.io/gorm"
)

type Conversation struct {
	gorm.Model
	IsGroup          bool      `gorm:"default:false" json:"is_group"`
	GroupName        string    `json:"group_name"`
	GroupDescription string    `json:"group_description"`
	GroupImage       string    `json:"group_image"`
	LastMessageID    *uint     `json:"last_message_id"`
	LastActivity     time.Time `gorm:"index" json:"last_activity"`
	Participants     []User    `gorm:"many2many:conversation_participants;" json:"-"`
}

func (conversation *Conversation) ToConversationResponse(lastMessage *Message, unread int64) ConversationResponse {
	participants := []*UserResponse{}
	for _, participant := range conversation.Participants {
		participants = append(participants, participant.ToUserResponse())
	}
	return ConversationResponse{
		ID:               conversation.ID,
		IsGroup:          conversation.IsGroup,
		GroupName:        conversation.GroupName,
		GroupDescription: conversation.GroupDescription,
		GroupImage:       conversation.GroupImage,
		Participants:     participants,
		LastMessage:      lastMessage,
		LastActivity:     conversation.LastActivity,
		Unread:           unread,
	}
}
