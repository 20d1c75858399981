package models

import (
	"gorm.io/gorm"
)

type Message struct {
	gorm.Model
	ConversationID uint                `gorm:"index;not null" json:"conversation_id"`
	Conversation   Conversation        `json:"-"`
	SenderID       uint                `gorm:"not null" json:"sender_id"`
	Sender         User                `json:"-"`
	Content        string              `gorm:"not null" json:"content"`
	MessageType    string              `gorm:"default:text" json:"message_type"`
	Attachments    []MessageAttachment `json:"attachments"`
	ReplyToID      *uint               `json:"reply_to_id"`
	IsEdited       bool                `gorm:"default:false" json:"is_edited"`
	Reads          []MessageRead       `json:"reads"`
}
