package models

import "time"

// MessageRead records that one participant has seen one message. The
// composite unique index keeps mark-read idempotent: a second read by
// the same user never produces a second row.
type MessageRead struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	MessageID uint      `gorm:"uniqueIndex:idx_message_reader;not null" json:"message_id"`
	UserID    uint      `gorm:"uniqueIndex:idx_message_reader;not null" json:"user_id"`
	ReadAt    time.Time `json:"read_at"`
}
