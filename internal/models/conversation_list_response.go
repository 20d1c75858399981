package models

type ConversationListResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
}
