package validators

import (
	"strings"
	"testing"

	"github.com/kruti2924/SocialMediaApp/internal/errs"
)

func TestValidatePromptLength(t *testing.T) {
	if errors := ValidatePromptLength(""); len(errors) == 0 || errors[0] != errs.ErrPromptRequired {
		t.Fatalf("expected ErrPromptRequired for empty prompt, got %v", errors)
	}

	if errors := ValidatePromptLength("cat"); len(errors) == 0 || errors[0] != errs.ErrPromptLength {
		t.Fatalf("expected ErrPromptLength for short prompt, got %v", errors)
	}

	long := strings.Repeat("a", 201)
	if errors := ValidatePromptLength(long); len(errors) == 0 || errors[0] != errs.ErrPromptLength {
		t.Fatalf("expected ErrPromptLength for long prompt, got %v", errors)
	}

	if errors := ValidatePromptLength("a cat sitting on a windowsill"); len(errors) != 0 {
		t.Fatalf("expected no errors for valid prompt, got %v", errors)
	}
}

func TestIsPromptAppropriate(t *testing.T) {
	inappropriate := []string{
		"some nsfw content",
		"an EXPLICIT scene",
		"a picture full of violence",
	}
	for _, prompt := range inappropriate {
		if IsPromptAppropriate(prompt) {
			t.Errorf("expected prompt %q to be flagged", prompt)
		}
	}

	if !IsPromptAppropriate("a serene mountain landscape at dawn") {
		t.Error("expected clean prompt to pass")
	}
}

func TestPromptSuggestions(t *testing.T) {
	suggestions := PromptSuggestions()
	if len(suggestions) == 0 {
		t.Fatal("expected at least one suggestion")
	}
}
