package models

type CreateConversationRequestBody struct {
	Participants     []uint `json:"participants"`
	IsGroup          bool   `json:"is_group"`
	GroupName        string `json:"group_name"`
	GroupDescription string `json:"group_description"`
	GroupImage       string `json:"group_image"`
}

type SendMessageRequestBody struct {
	ConversationID uint                `json:"conversation_id"`
	Content        string              `json:"content"`
	MessageType    string              `json:"message_type"`
	Attachments    []AttachmentRequest `json:"attachments"`
	ReplyTo        *uint               `json:"reply_to"`
}

type AttachmentRequest struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
}

type EditMessageRequestBody struct {
	Content string `json:"content"`
}
