package validators

import (
	"strings"
	"testing"

	"github.com/kruti2924/SocialMediaApp/internal/enums"
	"github.com/kruti2924/SocialMediaApp/internal/errs"
)

func TestValidateMessageContent(t *testing.T) {
	if errors := ValidateMessageContent("hello", enums.MESSAGE_TYPE_TEXT); len(errors) != 0 {
		t.Fatalf("expected no errors for valid message, got %v", errors)
	}

	if errors := ValidateMessageContent("", enums.MESSAGE_TYPE_TEXT); len(errors) == 0 || errors[0] != errs.ErrEmptyMessageContent {
		t.Fatalf("expected ErrEmptyMessageContent, got %v", errors)
	}

	long := strings.Repeat("x", 1001)
	if errors := ValidateMessageContent(long, enums.MESSAGE_TYPE_TEXT); len(errors) == 0 || errors[0] != errs.ErrMessageContentTooLong {
		t.Fatalf("expected ErrMessageContentTooLong, got %v", errors)
	}

	// Exactly at the limit is fine
	if errors := ValidateMessageContent(strings.Repeat("x", 1000), enums.MESSAGE_TYPE_TEXT); len(errors) != 0 {
		t.Fatalf("expected 1000-char message to pass, got %v", errors)
	}

	if errors := ValidateMessageContent("hello", "sticker"); len(errors) == 0 || errors[0] != errs.ErrInvalidMessageType {
		t.Fatalf("expected ErrInvalidMessageType, got %v", errors)
	}

	for _, messageType := range []string{enums.MESSAGE_TYPE_TEXT, enums.MESSAGE_TYPE_IMAGE, enums.MESSAGE_TYPE_FILE} {
		if errors := ValidateMessageContent("hello", messageType); len(errors) != 0 {
			t.Errorf("expected type %q to be valid, got %v", messageType, errors)
		}
	}
}

func TestValidateMessageEdit(t *testing.T) {
	if errors := ValidateMessageEdit("updated"); len(errors) != 0 {
		t.Fatalf("expected no errors for valid content, got %v", errors)
	}

	if errors := ValidateMessageEdit(""); len(errors) == 0 || errors[0] != errs.ErrEmptyMessageContent {
		t.Fatalf("expected ErrEmptyMessageContent, got %v", errors)
	}

	if errors := ValidateMessageEdit(strings.Repeat("x", 1001)); len(errors) == 0 || errors[0] != errs.ErrMessageContentTooLong {
		t.Fatalf("expected ErrMessageContentTooLong, got %v", errors)
	}
}
