package models

import "time"

type ObservingSocketPayload struct {
	UserID   uint       `json:"user_id"`
	IsOnline bool       `json:"is_online"`
	LastSeen *time.Time `json:"last_seen"`
}

type ObservingSocketEvent struct {
	Event   string                 `json:"event"`
	Payload ObservingSocketPayload `json:"payload"`
}
