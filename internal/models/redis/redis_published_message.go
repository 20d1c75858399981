package models

const (
	REDIS_CHANNEL_CHAT     = "chat_channel"
	REDIS_CHANNEL_PRESENCE = "presence_channel"
)

type RedisPublishedMessage struct {
	Event          string `json:"event"`
	ConversationID uint   `json:"conversation_id"`
	SenderID       uint   `json:"sender_id"`
	Payload        any    `json:"payload"`
}
