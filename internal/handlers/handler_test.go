package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/kruti2924/SocialMediaApp/internal/errs"
)

func TestStatusForErrors(t *testing.T) {
	cases := []struct {
		name   string
		errors []error
		want   int
	}{
		{"no errors", nil, http.StatusOK},
		{"user not found", []error{errs.ErrUserNotFound}, http.StatusNotFound},
		{"conversation not found", []error{errs.ErrConversationNotFound}, http.StatusNotFound},
		{"not a participant", []error{errs.ErrNotAParticipant}, http.StatusForbidden},
		{"not message sender", []error{errs.ErrNotMessageSender}, http.StatusForbidden},
		{"not post author", []error{errs.ErrNotPostAuthor}, http.StatusForbidden},
		{"validation failure", []error{errs.ErrEmptyPostContent}, http.StatusBadRequest},
		{"generation unavailable", []error{errs.ErrGenerationUnavailable}, http.StatusServiceUnavailable},
		{"generation rate limited", []error{errs.ErrGenerationRateLimited}, http.StatusTooManyRequests},
		{"generation timeout", []error{errs.ErrGenerationTimeout}, http.StatusRequestTimeout},
		{"unexpected error", []error{errors.New("db connection lost")}, http.StatusInternalServerError},
		// First error wins when several are reported
		{"missing before forbidden", []error{errs.ErrMessageNotFound, errs.ErrNotAParticipant}, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusForErrors(tc.errors); got != tc.want {
				t.Errorf("StatusForErrors(%v) = %d, want %d", tc.errors, got, tc.want)
			}
		})
	}
}
