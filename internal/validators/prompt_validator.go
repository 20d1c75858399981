package validators

import (
	"strings"

	"github.com/kruti2924/SocialMediaApp/internal/errs"
)

const (
	minPromptLength = 5
	maxPromptLength = 200
)

// inappropriateWords is a short advisory denylist checked by substring,
// not a moderation engine.
var inappropriateWords = []string{"nsfw", "explicit", "adult", "violence", "hate"}

var promptSuggestions = []string{
	"Try to be more specific about the style",
	"Include details about lighting and mood",
	"Specify the art style (realistic, cartoon, anime, etc.)",
}

func ValidatePromptLength(prompt string) []error {
	var errors []error
	if prompt == "" {
		errors = append(errors, errs.ErrPromptRequired)
		return errors
	}
	if len(prompt) < minPromptLength || len(prompt) > maxPromptLength {
		errors = append(errors, errs.ErrPromptLength)
	}
	return errors
}

func IsPromptAppropriate(prompt string) bool {
	lower := strings.ToLower(prompt)
	for _, word := range inappropriateWords {
		if strings.Contains(lower, word) {
			return false
		}
	}
	return true
}

func PromptSuggestions() []string {
	return promptSuggestions
}
