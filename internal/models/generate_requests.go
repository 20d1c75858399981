package models

import "time"

type GenerateImageRequestBody struct {
	Prompt            string   `json:"prompt"`
	NegativePrompt    string   `json:"negative_prompt"`
	NumInferenceSteps *float64 `json:"num_inference_steps"`
	GuidanceScale     *float64 `json:"guidance_scale"`
}

type GenerateImageResponse struct {
	Image    string             `json:"image"`
	Prompt   string             `json:"prompt"`
	Metadata GenerationMetadata `json:"metadata"`
}

type GenerationMetadata struct {
	NegativePrompt    string    `json:"negative_prompt"`
	NumInferenceSteps float64   `json:"num_inference_steps"`
	GuidanceScale     float64   `json:"guidance_scale"`
	GeneratedAt       time.Time `json:"generated_at"`
}

type ValidatePromptRequestBody struct {
	Prompt string `json:"prompt"`
}

type ValidatePromptResponse struct {
	IsValid     bool     `json:"is_valid"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type GenerationModel struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	MaxPromptLength  int      `json:"max_prompt_length"`
	SupportedFormats []string `json:"supported_formats"`
	Dimensions       []string `json:"dimensions"`
}
