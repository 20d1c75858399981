package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/kruti2924/SocialMediaApp/configs"
	"github.com/kruti2924/SocialMediaApp/internal/enums"
	"github.com/kruti2924/SocialMediaApp/internal/errs"
	"github.com/kruti2924/SocialMediaApp/internal/models"
	redisModels "github.com/kruti2924/SocialMediaApp/internal/models/redis"
	obsSocketModels "github.com/kruti2924/SocialMediaApp/internal/models/socket/observing"
	"github.com/kruti2924/SocialMediaApp/internal/msgs"
	"github.com/kruti2924/SocialMediaApp/internal/services"
	"github.com/kruti2924/SocialMediaApp/internal/utils"
)

const observerCacheExpiration = 24 * time.Hour

// SocketUserObservingHandler tracks presence. A connected user is
// marked online and can subscribe to status changes of the users named
// in the notifiers query param. Status flips are fanned out through
// Redis so observers on other instances see them too.
type SocketUserObservingHandler struct {
	mu          sync.Mutex
	ctx         context.Context
	config      *configs.Config
	upgrader    websocket.Upgrader
	hub         *obsSocketModels.SocketUserObservingHub
	authService *services.AuthenticationService
}

func NewSocketUserObservingHandler(
	redis *redis.Client,
	ctx context.Context,
	config *configs.Config,
	authService *services.AuthenticationService,
) *SocketUserObservingHandler {
	suoh := &SocketUserObservingHandler{
		ctx:         ctx,
		config:      config,
		authService: authService,
		hub: &obsSocketModels.SocketUserObservingHub{
			Notifiers: make(map[uint][]*models.SocketClient),
			Mu:        sync.Mutex{},
			Redis:     redis,
		},
	}
	go suoh.handleRedisMessages()
	return suoh
}

func (suoh *SocketUserObservingHandler) HandleSocketUserObservingRoute(ctx *gin.Context) {
	userInfo, err := suoh.authorize(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  models.ErrorStrings([]error{err}),
		})
		return
	}

	ws, err := suoh.upgradeHttpToWs(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  models.ErrorStrings([]error{err}),
		})
		return
	}
	defer func(ws *websocket.Conn) {
		err := ws.Close()
		if err != nil {
			log.Printf("Error closing connection: %v", err)
		}
	}(ws)

	suoh.setOnlineStatus(userInfo.ID, true)

	notifiers, err := suoh.retrieveNotifiersFromQuery(ctx)
	if err == nil && len(notifiers) > 0 {
		suoh.handleSubscription(ws, userInfo, notifiers)
	}

	suoh.keepSocketAlive(ws, userInfo.ID)
}

func (suoh *SocketUserObservingHandler) authorize(ctx *gin.Context) (*models.Claims, error) {
	jwtToken := ctx.Request.Header.Get("Authorization")
	if jwtToken == "" {
		jwtToken = ctx.Query("token")
	}
	jwtToken = strings.TrimPrefix(jwtToken, "Bearer ")
	if jwtToken == "" {
		return nil, errs.ErrUnauthorized
	}
	userInfo, err := utils.VerifyToken(jwtToken, utils.GetJwtKey(suoh.config))
	if err != nil {
		return nil, errs.ErrInvalidToken
	}
	return userInfo, nil
}

func (suoh *SocketUserObservingHandler) upgradeHttpToWs(ctx *gin.Context) (*websocket.Conn, error) {
	suoh.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	return suoh.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
}

// keepSocketAlive blocks until the peer goes away, then flips the user
// offline and drops their subscriptions.
func (suoh *SocketUserObservingHandler) keepSocketAlive(ws *websocket.Conn, userId uint) {
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			suoh.unsubscribe(userId)
			break
		}
	}
}

func (suoh *SocketUserObservingHandler) setOnlineStatus(userId uint, status bool) {
	lastSeen, err := suoh.authService.SetOnlineStatus(userId, status)
	if err != nil {
		log.Printf("failed to set user %v online status in db: %v", userId, err)
		return
	}

	if err := suoh.updateOnlineStatusInCache(userId, status, lastSeen); err != nil {
		log.Printf("Error while updating user %v online status on cache: %v", userId, err)
	}

	redisEvent := obsSocketModels.ObservingSocketEvent{
		Event: enums.SOCKET_EVENT_NOTIFY,
		Payload: obsSocketModels.ObservingSocketPayload{
			UserID:   userId,
			IsOnline: status,
			LastSeen: lastSeen,
		},
	}

	jsonEvent, err := json.Marshal(redisEvent)
	if err != nil {
		log.Println("failed to marshal presence event:", err)
		return
	}
	if err := suoh.publish(suoh.hub.Redis, redisModels.REDIS_CHANNEL_PRESENCE, jsonEvent); err != nil {
		log.Println("failed to publish presence event:", err)
	}
}

func (suoh *SocketUserObservingHandler) updateOnlineStatusInCache(userID uint, status bool, lastSeen *time.Time) error {
	statusKey := fmt.Sprintf("user_online_status_%v", userID)
	if err := suoh.hub.Redis.Set(suoh.ctx, statusKey, strconv.FormatBool(status), observerCacheExpiration).Err(); err != nil {
		return err
	}

	if lastSeen != nil {
		lastSeenKey := fmt.Sprintf("user_last_seen_%v", userID)
		if err := suoh.hub.Redis.Set(suoh.ctx, lastSeenKey, lastSeen.Format(time.RFC3339), observerCacheExpiration).Err(); err != nil {
			return err
		}
	}
	return nil
}

func (suoh *SocketUserObservingHandler) retrieveNotifiersFromQuery(ctx *gin.Context) ([]uint, error) {
	notifiersQuery := ctx.Query("notifiers")
	if notifiersQuery == "" {
		return []uint{}, errs.ErrInvalidRequest
	}
	strNotifiers := strings.Split(notifiersQuery, ",")
	var notifiers []uint
	for _, strNum := range strNotifiers {
		num, err := strconv.Atoi(strNum)
		if err != nil {
			return []uint{}, errs.ErrInvalidRequest
		}
		notifiers = append(notifiers, uint(num))
	}
	return notifiers, nil
}

func (suoh *SocketUserObservingHandler) handleSubscription(ws *websocket.Conn, userInfo *models.Claims, notifiers []uint) {
	observer := &models.SocketClient{
		Conn:   ws,
		UserId: userInfo.ID,
	}
	suoh.subscribe(observer, notifiers)
	observer.Conn.SetCloseHandler(func(code int, text string) error {
		suoh.unsubscribe(observer.UserId)
		return nil
	})
}

func (suoh *SocketUserObservingHandler) subscribe(observer *models.SocketClient, notifiersToObserve []uint) {
	suoh.mu.Lock()
	defer suoh.mu.Unlock()
	for _, notifier := range notifiersToObserve {
		if _, exists := suoh.hub.Notifiers[notifier]; !exists {
			suoh.hub.Notifiers[notifier] = []*models.SocketClient{}
		}
		observing := false
		for _, client := range suoh.hub.Notifiers[notifier] {
			if client.UserId == observer.UserId {
				observing = true
				break
			}
		}
		if !observing {
			if err := suoh.saveObserverNotifiersInCache(observer.UserId, notifier); err != nil {
				log.Printf("Could not add the notifier to observer notifiers in cache: %v", err)
				continue
			}
			suoh.hub.Notifiers[notifier] = append(suoh.hub.Notifiers[notifier], observer)
		}
	}
}

func (suoh *SocketUserObservingHandler) unsubscribe(observer uint) {
	suoh.mu.Lock()
	defer suoh.mu.Unlock()

	suoh.setOnlineStatus(observer, false)

	notifiers, err := suoh.fetchObserverNotifiersFromCache(observer)
	if err != nil {
		log.Printf("Could not fetch observer notifiers from cache: %v", err)
		return
	}
	if len(notifiers) == 0 {
		return
	}

	if err := suoh.hub.Redis.Del(suoh.ctx, fmt.Sprintf("observer_notifiers_%d", observer)).Err(); err != nil {
		log.Printf("Could not remove observer from redis cache: %v", err)
		return
	}

	for _, notifier := range notifiers {
		for i, client := range suoh.hub.Notifiers[notifier] {
			if client.UserId == observer {
				suoh.hub.Notifiers[notifier] = append(suoh.hub.Notifiers[notifier][:i], suoh.hub.Notifiers[notifier][i+1:]...)
				break
			}
		}
		if len(suoh.hub.Notifiers[notifier]) == 0 {
			delete(suoh.hub.Notifiers, notifier)
		}
	}
}

func (suoh *SocketUserObservingHandler) saveObserverNotifiersInCache(observer uint, notifier uint) error {
	key := fmt.Sprintf("observer_notifiers_%d", observer)
	return suoh.hub.Redis.RPush(suoh.ctx, key, fmt.Sprintf("%d", notifier)).Err()
}

func (suoh *SocketUserObservingHandler) fetchObserverNotifiersFromCache(observer uint) ([]uint, error) {
	key := fmt.Sprintf("observer_notifiers_%d", observer)
	value, err := suoh.hub.Redis.LRange(suoh.ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	notifiers := make([]uint, len(value))
	for i, str := range value {
		notifier, err := strconv.ParseUint(str, 10, 32)
		if err != nil {
			return nil, err
		}
		notifiers[i] = uint(notifier)
	}
	return notifiers, nil
}

func (suoh *SocketUserObservingHandler) handleRedisMessages() {
	ch := suoh.subscribeToChannel(suoh.hub.Redis, redisModels.REDIS_CHANNEL_PRESENCE)
	for msg := range ch {
		var redisMessage obsSocketModels.ObservingSocketEvent
		if err := json.Unmarshal([]byte(msg.Payload), &redisMessage); err != nil {
			log.Printf("Error unmarshalling message: %v", err)
			continue
		}
		suoh.send(redisMessage)
	}
}

func (suoh *SocketUserObservingHandler) send(redisMessage obsSocketModels.ObservingSocketEvent) {
	suoh.mu.Lock()
	defer suoh.mu.Unlock()
	observers, ok := suoh.hub.Notifiers[redisMessage.Payload.UserID]
	if !ok {
		return
	}
	for _, client := range observers {
		if err := client.Conn.WriteJSON(redisMessage); err != nil {
			log.Printf("Error writing json: %v", err)
			if err := client.Conn.Close(); err != nil {
				return
			}
		}
	}
}

func (suoh *SocketUserObservingHandler) publish(redis *redis.Client, channel string, message []byte) error {
	return redis.Publish(suoh.ctx, channel, message).Err()
}

func (suoh *SocketUserObservingHandler) subscribeToChannel(redis *redis.Client, channel string) <-chan *redis.Message {
	pubsub := redis.Subscribe(suoh.ctx, channel)
	_, err := pubsub.Receive(suoh.ctx)
	if err != nil {
		log.Fatalf("Could not subscribe to channel: %v", err)
	}
	return pubsub.Channel()
}
