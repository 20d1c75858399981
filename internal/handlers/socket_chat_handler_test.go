package handlers

import (
	"testing"

	"github.com/kruti2924/SocialMediaApp/internal/models"
)

func TestRecipientsExcludeOriginator(t *testing.T) {
	room := []*models.SocketClient{
		{UserId: 1},
		{UserId: 2},
		{UserId: 3},
	}

	targets := recipients(room, 2)
	if len(targets) != 2 {
		t.Fatalf("expected 2 recipients, got %d", len(targets))
	}
	for _, client := range targets {
		if client.UserId == 2 {
			t.Error("originator must not receive its own event")
		}
	}

	// A sender with no connection in the room leaves everyone in
	targets = recipients(room, 9)
	if len(targets) != 3 {
		t.Errorf("expected all 3 recipients, got %d", len(targets))
	}

	if targets = recipients(nil, 1); len(targets) != 0 {
		t.Errorf("expected no recipients for an empty room, got %d", len(targets))
	}
}
