package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/kruti2924/SocialMediaApp/configs"
	"github.com/kruti2924/SocialMediaApp/internal/errs"
	"github.com/kruti2924/SocialMediaApp/internal/models"
	"github.com/kruti2924/SocialMediaApp/internal/utils"
	"github.com/kruti2924/SocialMediaApp/internal/validators"
)

const (
	minInferenceSteps = 10
	maxInferenceSteps = 50
	minGuidanceScale  = 1
	maxGuidanceScale  = 20

	defaultInferenceSteps = 20
	defaultGuidanceScale  = 7.5

	generatedImageWidth  = 512
	generatedImageHeight = 512
)

// GenerationService proxies prompts to an external image-inference
// provider. It clamps tuning parameters, forwards the request once and
// classifies upstream failures; there is no retry policy.
type GenerationService struct {
	config     *configs.Config
	httpClient *http.Client
	apiURL     string
	apiToken   string
}

type inferencePayload struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	NegativePrompt    string  `json:"negative_prompt"`
	NumInferenceSteps float64 `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
	Width             int     `json:"width"`
	Height            int     `json:"height"`
}

func NewGenerationService(config *configs.Config) *GenerationService {
	timeout := config.Viper.GetInt("huggingface.timeout_seconds")
	if timeout <= 0 {
		timeout = 60
	}
	return &GenerationService{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		apiURL:   config.Viper.GetString("huggingface.url"),
		apiToken: config.Viper.GetString("huggingface.token"),
	}
}

// ClampGenerationParams forces the tuning parameters into the ranges
// the provider accepts: steps into [10,50], guidance into [1,20].
func ClampGenerationParams(numInferenceSteps, guidanceScale *float64) (float64, float64) {
	steps := float64(defaultInferenceSteps)
	if numInferenceSteps != nil {
		steps = *numInferenceSteps
	}
	scale := float64(defaultGuidanceScale)
	if guidanceScale != nil {
		scale = *guidanceScale
	}
	return utils.Clamp(steps, minInferenceSteps, maxInferenceSteps),
		utils.Clamp(scale, minGuidanceScale, maxGuidanceScale)
}

func (gs *GenerationService) GenerateImage(body *models.GenerateImageRequestBody) (*models.GenerateImageResponse, []error) {
	var errorList []error

	if validationErrs := validators.ValidatePromptLength(body.Prompt); len(validationErrs) > 0 {
		return nil, validationErrs
	}

	if gs.apiToken == "" {
		errorList = append(errorList, errs.ErrGenerationNotReady)
		return nil, errorList
	}

	steps, scale := ClampGenerationParams(body.NumInferenceSteps, body.GuidanceScale)

	payload := inferencePayload{
		Inputs: body.Prompt,
		Parameters: inferenceParameters{
			NegativePrompt:    body.NegativePrompt,
			NumInferenceSteps: steps,
			GuidanceScale:     scale,
			Width:             generatedImageWidth,
			Height:            generatedImageHeight,
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	request, err := http.NewRequest(http.MethodPost, gs.apiURL, bytes.NewReader(jsonPayload))
	if err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}
	request.Header.Set("Authorization", "Bearer "+gs.apiToken)
	request.Header.Set("Content-Type", "application/json")

	log.Println("Generating image with prompt:", body.Prompt)

	response, err := gs.httpClient.Do(request)
	if err != nil {
		errorList = append(errorList, classifyTransportError(err))
		return nil, errorList
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		errorList = append(errorList, ClassifyUpstreamStatus(response.StatusCode))
		return nil, errorList
	}

	imageBytes, err := io.ReadAll(response.Body)
	if err != nil {
		errorList = append(errorList, errs.ErrGenerationFailed)
		return nil, errorList
	}

	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(imageBytes)

	return &models.GenerateImageResponse{
		Image:  dataURL,
		Prompt: body.Prompt,
		Metadata: models.GenerationMetadata{
			NegativePrompt:    body.NegativePrompt,
			NumInferenceSteps: steps,
			GuidanceScale:     scale,
			GeneratedAt:       time.Now(),
		},
	}, nil
}

func (gs *GenerationService) ValidatePrompt(prompt string) (*models.ValidatePromptResponse, []error) {
	var errorList []error

	if validationErrs := validators.ValidatePromptLength(prompt); len(validationErrs) > 0 {
		return nil, validationErrs
	}

	if !validators.IsPromptAppropriate(prompt) {
		errorList = append(errorList, errs.ErrInappropriatePrompt)
		return &models.ValidatePromptResponse{IsValid: false}, errorList
	}

	return &models.ValidatePromptResponse{
		IsValid:     true,
		Suggestions: validators.PromptSuggestions(),
	}, nil
}

func (gs *GenerationService) GetAvailableModels() []models.GenerationModel {
	return []models.GenerationModel{
		{
			ID:               "stabilityai/stable-diffusion-xl-base-1.0",
			Name:             "Stable Diffusion XL",
			Description:      "High-quality image generation model",
			MaxPromptLength:  200,
			SupportedFormats: []string{"PNG", "JPEG"},
			Dimensions:       []string{"512x512", "768x768", "1024x1024"},
		},
	}
}

// ClassifyUpstreamStatus maps a provider status code onto the fixed
// failure taxonomy; every unrecognized code collapses into the generic
// failure.
func ClassifyUpstreamStatus(statusCode int) error {
	switch statusCode {
	case http.StatusServiceUnavailable:
		return errs.ErrGenerationUnavailable
	case http.StatusTooManyRequests:
		return errs.ErrGenerationRateLimited
	case http.StatusBadRequest:
		return errs.ErrGenerationBadRequest
	default:
		return errs.ErrGenerationFailed
	}
}

func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errs.ErrGenerationTimeout
	}
	return errs.ErrGenerationFailed
}
