package models

import "gorm.io/gorm"

type MessageAttachment struct {
	gorm.Model
	MessageID uint   `gorm:"index;not null" json:"message_id"`
	URL       string `gorm:"not null" json:"url"`
	FileName  string `json:"file_name"`
	FileType  string `json:"file_type"`
	FileSize  int64  `json:"file_size"`
}
