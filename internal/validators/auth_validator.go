package validators

import (
	"regexp"

	"github.com/kruti2924/SocialMediaApp/internal/errs"
	"github.com/kruti2924/SocialMediaApp/internal/models"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

func ValidateUser(user *models.User) []error {
	var errors []error
	if user == nil {
		errors = append(errors, errs.ErrInvalidRequest)
		return errors
	}

	if !ValidateUsername(user.Username) {
		errors = append(errors, errs.ErrInvalidUsername)
	}

	if user.Email == "" || !ValidateEmail(user.Email) {
		errors = append(errors, errs.ErrInvalidEmail)
	}

	if !ValidatePassword(user.Password) {
		errors = append(errors, errs.ErrInvalidPassword)
	}

	return errors
}

func ValidateProfileUpdate(update *models.UpdateProfileRequestBody) []error {
	var errors []error
	if update == nil {
		errors = append(errors, errs.ErrInvalidRequest)
		return errors
	}

	if update.Username != nil && !ValidateUsername(*update.Username) {
		errors = append(errors, errs.ErrInvalidUsername)
	}

	if update.Bio != nil && len(*update.Bio) > 500 {
		errors = append(errors, errs.ErrBioTooLong)
	}

	return errors
}

func ValidateUsername(username string) bool {
	if len(username) < 3 || len(username) > 30 {
		return false
	}
	return usernamePattern.MatchString(username)
}

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidatePassword(password string) bool {
	return len(password) >= 8
}
