package validators

import (
	"github.com/kruti2924/SocialMediaApp/internal/errs"
)

const (
	maxPostContentLength    = 1000
	maxCommentContentLength = 500
)

func ValidatePostContent(content string) []error {
	var errors []error
	if content == "" {
		errors = append(errors, errs.ErrEmptyPostContent)
	}
	if len(content) > maxPostContentLength {
		errors = append(errors, errs.ErrPostContentTooLong)
	}
	return errors
}

func ValidateCommentContent(content string) []error {
	var errors []error
	if content == "" {
		errors = append(errors, errs.ErrEmptyComment)
	}
	if len(content) > maxCommentContentLength {
		errors = append(errors, errs.ErrCommentTooLong)
	}
	return errors
}
