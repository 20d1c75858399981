package validators

import (
	"github.com/kruti2924/SocialMediaApp/internal/enums"
	"github.com/kruti2924/SocialMediaApp/internal/errs"
)

const maxMessageContentLength = 1000

// ValidateMessageContent rejects a message before any mutation is
// attempted: empty or over-length content and unknown message types
// never reach the repository.
func ValidateMessageContent(content, messageType string) []error {
	var errors []error
	if content == "" {
		errors = append(errors, errs.ErrEmptyMessageContent)
	}
	if len(content) > maxMessageContentLength {
		errors = append(errors, errs.ErrMessageContentTooLong)
	}
	if !enums.IsValidMessageType(messageType) {
		errors = append(errors, errs.ErrInvalidMessageType)
	}
	return errors
}

// ValidateMessageEdit checks the replacement content only; an edit
// keeps the stored message type.
func ValidateMessageEdit(content string) []error {
	var errors []error
	if content == "" {
		errors = append(errors, errs.ErrEmptyMessageContent)
	}
	if len(content) > maxMessageContentLength {
		errors = append(errors, errs.ErrMessageContentTooLong)
	}
	return errors
}
