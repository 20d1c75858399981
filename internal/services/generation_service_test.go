package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kruti2924/SocialMediaApp/internal/errs"
	"github.com/kruti2924/SocialMediaApp/internal/models"
)

func newTestGenerationService(apiURL string) *GenerationService {
	return &GenerationService{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		apiURL:     apiURL,
		apiToken:   "test-token",
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}

func TestGenerateImageClampsParameters(t *testing.T) {
	var captured inferencePayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("expected bearer token header, got %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("fake-png-bytes"))
	}))
	defer server.Close()

	gs := newTestGenerationService(server.URL)
	response, generateErrs := gs.GenerateImage(&models.GenerateImageRequestBody{
		Prompt:            "a cat sitting on a windowsill",
		NumInferenceSteps: float64Ptr(5),
		GuidanceScale:     float64Ptr(25),
	})
	if len(generateErrs) > 0 {
		t.Fatalf("expected success, got %v", generateErrs)
	}

	if captured.Parameters.NumInferenceSteps != 10 {
		t.Errorf("expected steps clamped to 10, got %v", captured.Parameters.NumInferenceSteps)
	}
	if captured.Parameters.GuidanceScale != 20 {
		t.Errorf("expected scale clamped to 20, got %v", captured.Parameters.GuidanceScale)
	}
	if captured.Parameters.Width != 512 || captured.Parameters.Height != 512 {
		t.Errorf("expected 512x512, got %dx%d", captured.Parameters.Width, captured.Parameters.Height)
	}

	if !strings.HasPrefix(response.Image, "data:image/png;base64,") {
		t.Errorf("expected data URL image, got %q", response.Image)
	}
	if response.Metadata.NumInferenceSteps != 10 || response.Metadata.GuidanceScale != 20 {
		t.Errorf("expected clamped values in metadata, got %+v", response.Metadata)
	}
}

func TestGenerateImageDefaults(t *testing.T) {
	var captured inferencePayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		w.Write([]byte("png"))
	}))
	defer server.Close()

	gs := newTestGenerationService(server.URL)
	if _, generateErrs := gs.GenerateImage(&models.GenerateImageRequestBody{
		Prompt: "a quiet forest clearing",
	}); len(generateErrs) > 0 {
		t.Fatalf("expected success, got %v", generateErrs)
	}

	if captured.Parameters.NumInferenceSteps != 20 {
		t.Errorf("expected default steps 20, got %v", captured.Parameters.NumInferenceSteps)
	}
	if captured.Parameters.GuidanceScale != 7.5 {
		t.Errorf("expected default scale 7.5, got %v", captured.Parameters.GuidanceScale)
	}
}

func TestGenerateImageUpstreamFailures(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusServiceUnavailable, errs.ErrGenerationUnavailable},
		{http.StatusTooManyRequests, errs.ErrGenerationRateLimited},
		{http.StatusBadRequest, errs.ErrGenerationBadRequest},
		{http.StatusTeapot, errs.ErrGenerationFailed},
	}

	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))

		gs := newTestGenerationService(server.URL)
		_, generateErrs := gs.GenerateImage(&models.GenerateImageRequestBody{
			Prompt: "a cat sitting on a windowsill",
		})
		server.Close()

		if len(generateErrs) == 0 || generateErrs[0] != tc.want {
			t.Errorf("status %d: expected %v, got %v", tc.status, tc.want, generateErrs)
		}
	}
}

func TestGenerateImageRejectsBadPrompts(t *testing.T) {
	gs := newTestGenerationService("http://unused")

	if _, generateErrs := gs.GenerateImage(&models.GenerateImageRequestBody{Prompt: ""}); len(generateErrs) == 0 || generateErrs[0] != errs.ErrPromptRequired {
		t.Errorf("expected ErrPromptRequired, got %v", generateErrs)
	}
	if _, generateErrs := gs.GenerateImage(&models.GenerateImageRequestBody{Prompt: "cat"}); len(generateErrs) == 0 || generateErrs[0] != errs.ErrPromptLength {
		t.Errorf("expected ErrPromptLength, got %v", generateErrs)
	}
}

func TestGenerateImageWithoutToken(t *testing.T) {
	gs := &GenerationService{
		httpClient: &http.Client{},
		apiURL:     "http://unused",
	}
	if _, generateErrs := gs.GenerateImage(&models.GenerateImageRequestBody{
		Prompt: "a cat sitting on a windowsill",
	}); len(generateErrs) == 0 || generateErrs[0] != errs.ErrGenerationNotReady {
		t.Errorf("expected ErrGenerationNotReady, got %v", generateErrs)
	}
}

func TestValidatePrompt(t *testing.T) {
	gs := newTestGenerationService("http://unused")

	result, validateErrs := gs.ValidatePrompt("a serene mountain landscape")
	if len(validateErrs) != 0 {
		t.Fatalf("expected no errors, got %v", validateErrs)
	}
	if !result.IsValid {
		t.Error("expected prompt to be valid")
	}
	if len(result.Suggestions) == 0 {
		t.Error("expected suggestions for a valid prompt")
	}

	result, validateErrs = gs.ValidatePrompt("some nsfw request")
	if len(validateErrs) == 0 || validateErrs[0] != errs.ErrInappropriatePrompt {
		t.Fatalf("expected ErrInappropriatePrompt, got %v", validateErrs)
	}
	if result.IsValid {
		t.Error("expected prompt to be invalid")
	}
}

func TestClampGenerationParams(t *testing.T) {
	steps, scale := ClampGenerationParams(nil, nil)
	if steps != 20 || scale != 7.5 {
		t.Errorf("expected defaults 20/7.5, got %v/%v", steps, scale)
	}

	steps, scale = ClampGenerationParams(float64Ptr(100), float64Ptr(0.5))
	if steps != 50 || scale != 1 {
		t.Errorf("expected clamped 50/1, got %v/%v", steps, scale)
	}
}

func TestClassifyUpstreamStatus(t *testing.T) {
	if got := ClassifyUpstreamStatus(http.StatusServiceUnavailable); got != errs.ErrGenerationUnavailable {
		t.Errorf("expected ErrGenerationUnavailable, got %v", got)
	}
	if got := ClassifyUpstreamStatus(http.StatusInternalServerError); got != errs.ErrGenerationFailed {
		t.Errorf("expected ErrGenerationFailed, got %v", got)
	}
}
