package models

import (
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/kruti2924/SocialMediaApp/internal/models"
)

// SocketUserObservingHub maps an observed user id to the clients that
// want presence updates about them.
type SocketUserObservingHub struct {
	Notifiers map[uint][]*models.SocketClient
	Mu        sync.Mutex
	Redis     *redis.Client
}
