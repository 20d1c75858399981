package models

type CreatePostRequestBody struct {
	Content          string `json:"content"`
	Image            string `json:"image"`
	IsGeneratedImage bool   `json:"is_generated_image"`
	GenerationPrompt string `json:"generation_prompt"`
}

type UpdatePostRequestBody struct {
	Content string `json:"content"`
}

type CreateCommentRequestBody struct {
	Content string `json:"content"`
}
