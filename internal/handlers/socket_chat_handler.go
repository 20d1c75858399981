package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/kruti2924/SocialMediaApp/configs"
	"github.com/kruti2924/SocialMediaApp/internal/enums"
	"github.com/kruti2924/SocialMediaApp/internal/errs"
	"github.com/kruti2924/SocialMediaApp/internal/models"
	redisModels "github.com/kruti2924/SocialMediaApp/internal/models/redis"
	socketModels "github.com/kruti2924/SocialMediaApp/internal/models/socket"
	"github.com/kruti2924/SocialMediaApp/internal/msgs"
	"github.com/kruti2924/SocialMediaApp/internal/services"
	"github.com/kruti2924/SocialMediaApp/internal/utils"
)

// SocketChatHandler relays chat events between the clients attached to
// a conversation. Every event goes through Redis pub/sub, so relays
// work across multiple server instances. Delivery to connected peers
// is best effort; the database write is the source of truth.
type SocketChatHandler struct {
	mu          sync.Mutex
	ctx         context.Context
	config      *configs.Config
	upgrader    websocket.Upgrader
	hub         *models.SocketHub
	chatService *services.ChatService
}

func NewSocketChatHandler(
	redis *redis.Client,
	ctx context.Context,
	config *configs.Config,
	chatService *services.ChatService,
) *SocketChatHandler {
	return &SocketChatHandler{
		ctx:         ctx,
		config:      config,
		chatService: chatService,
		hub: &models.SocketHub{
			Conversations: make(map[uint][]*models.SocketClient),
			Redis:         redis,
			Mu:            sync.Mutex{},
		},
	}
}

// HandleSocketChatRoute authenticates the caller, validates the
// conversation and rejects non-participants before upgrading the
// connection.
func (sch *SocketChatHandler) HandleSocketChatRoute(ctx *gin.Context) {
	userInfo, err := sch.authorize(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  models.ErrorStrings([]error{err}),
		})
		return
	}

	conversationId := ctx.Query("conversationId")
	if conversationId == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  models.ErrorStrings([]error{errs.ErrInvalidConversationId}),
		})
		return
	}
	conversationIdInt, err := strconv.Atoi(conversationId)
	if err != nil || conversationIdInt == 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  models.ErrorStrings([]error{errs.ErrInvalidConversationId}),
		})
		return
	}
	conversationIdUInt := uint(conversationIdInt)
	if !sch.chatService.CheckConversationExists(conversationIdUInt) {
		ctx.AbortWithStatusJSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  models.ErrorStrings([]error{errs.ErrConversationNotFound}),
		})
		return
	}
	if !sch.chatService.CheckUserInConversation(userInfo.ID, conversationIdUInt) {
		ctx.AbortWithStatusJSON(http.StatusForbidden, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  models.ErrorStrings([]error{errs.ErrNotAParticipant}),
		})
		return
	}

	sch.HandleConnections(ctx, userInfo, conversationIdUInt)
}

func (sch *SocketChatHandler) authorize(ctx *gin.Context) (*models.Claims, error) {
	jwtToken := ctx.Request.Header.Get("Authorization")
	if jwtToken == "" {
		jwtToken = ctx.Query("token")
	}
	jwtToken = strings.TrimPrefix(jwtToken, "Bearer ")
	if jwtToken == "" {
		return nil, errs.ErrUnauthorized
	}

	userInfo, err := utils.VerifyToken(jwtToken, utils.GetJwtKey(sch.config))
	if err != nil {
		return nil, errs.ErrInvalidToken
	}
	if userInfo.ID == 0 {
		return nil, errs.ErrUnauthorized
	}
	return userInfo, nil
}

func (sch *SocketChatHandler) StartSocket() {
	sch.InitializeSocketUpgrader()
	go sch.HandleRedisMessages()
}

func (sch *SocketChatHandler) InitializeSocketUpgrader() {
	sch.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
}

func (sch *SocketChatHandler) HandleConnections(ctx *gin.Context, userInfo *models.Claims, conversationId uint) {
	ws, err := sch.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	defer func(ws *websocket.Conn) {
		err := ws.Close()
		if err != nil {
			log.Printf("Error closing connection: %v", err)
		}
	}(ws)

	// Handle disconnection
	sch.handleDisconnectedClient(ws, userInfo.ID, conversationId)

	// Add client to hub
	sch.addClientToConversation(userInfo.ID, conversationId, ws)

	// Handle incoming messages
	sch.handleIncomingEvents(ws, userInfo, conversationId)
}

func (sch *SocketChatHandler) handleDisconnectedClient(ws *websocket.Conn, userId uint, conversationId uint) {
	ws.SetCloseHandler(func(code int, text string) error {
		sch.deleteDisconnectedClientFromConversation(userId, conversationId)
		return nil
	})
}

func (sch *SocketChatHandler) addClientToConversation(userId uint, conversationId uint, ws *websocket.Conn) {
	sch.mu.Lock()
	if _, ok := sch.hub.Conversations[conversationId]; !ok {
		sch.hub.Conversations[conversationId] = []*models.SocketClient{}
	}
	alreadyMember := false
	for _, client := range sch.hub.Conversations[conversationId] {
		if client.Conn == ws {
			alreadyMember = true
			break
		}
	}
	if !alreadyMember {
		sch.hub.Conversations[conversationId] =
			append(sch.hub.Conversations[conversationId],
				&models.SocketClient{
					Conn:   ws,
					UserId: userId,
				},
			)
	}
	sch.mu.Unlock()

	sch.logConversations()
}

func (sch *SocketChatHandler) handleIncomingEvents(ws *websocket.Conn, userInfo *models.Claims, conversationId uint) {
	for {
		var event socketModels.SocketEvent
		err := ws.ReadJSON(&event)
		if err != nil {
			log.Printf("Error reading json: %v", err)
			sch.deleteDisconnectedClientFromConversation(userInfo.ID, conversationId)
			break
		}

		// The room membership fixed at upgrade time wins over whatever
		// the client claims in the event.
		event.ConversationID = conversationId

		switch event.Event {
		case enums.SOCKET_EVENT_SEND_MESSAGE:
			if handleErrs := sch.handleSendMessageEvent(event.Payload, userInfo, conversationId); len(handleErrs) > 0 {
				log.Printf("Error while handling send message event: %v", handleErrs)
			}
		case enums.SOCKET_EVENT_SEEN_MESSAGE:
			if handleErrs := sch.handleSeenMessageEvent(event.Payload, conversationId, userInfo.ID); len(handleErrs) > 0 {
				log.Printf("Error while handling seen message event: %v", handleErrs)
			}
		case enums.SOCKET_EVENT_IS_TYPING:
			if handleErrs := sch.handleIsTypingEvent(event.Payload, conversationId, userInfo.ID); len(handleErrs) > 0 {
				log.Printf("Error while handling is typing event: %v", handleErrs)
			}
		default:
			log.Printf("Unknown event: %v", event.Event)
		}
	}
}

func (sch *SocketChatHandler) handleSendMessageEvent(payload json.RawMessage, userInfo *models.Claims, conversationId uint) []error {
	var errors []error
	var messageRequest models.SendMessageRequestBody
	if err := json.Unmarshal(payload, &messageRequest); err != nil {
		errors = append(errors, errs.ErrInvalidRequest)
		return errors
	}
	messageRequest.ConversationID = conversationId

	savedMessage, saveMsgErrs := sch.chatService.SendMessage(userInfo.ID, &messageRequest)
	if len(saveMsgErrs) > 0 {
		errors = append(errors, saveMsgErrs...)
		return errors
	}

	return sch.publishEvent(enums.SOCKET_EVENT_SEND_MESSAGE, conversationId, userInfo.ID, savedMessage)
}

func (sch *SocketChatHandler) handleSeenMessageEvent(payload json.RawMessage, conversationId, seenerId uint) []error {
	var errors []error
	var seenData socketModels.SeenMessagePayload
	if err := json.Unmarshal(payload, &seenData); err != nil {
		errors = append(errors, errs.ErrInvalidRequest)
		return errors
	}
	seenData.SeenerID = seenerId

	if seenErrs := sch.chatService.SeenMessages(seenData.MessageIds, seenerId); len(seenErrs) > 0 {
		errors = append(errors, seenErrs...)
		return errors
	}

	return sch.publishEvent(enums.SOCKET_EVENT_SEEN_MESSAGE, conversationId, seenerId, seenData)
}

func (sch *SocketChatHandler) handleIsTypingEvent(payload json.RawMessage, conversationId, typerId uint) []error {
	var errors []error
	var isTypingPayload socketModels.IsTypingPayload
	if err := json.Unmarshal(payload, &isTypingPayload); err != nil {
		errors = append(errors, errs.ErrInvalidRequest)
		return errors
	}
	isTypingPayload.UserID = typerId

	// Typing indicators are relay-only, nothing is persisted.
	return sch.publishEvent(enums.SOCKET_EVENT_IS_TYPING, conversationId, typerId, isTypingPayload)
}

func (sch *SocketChatHandler) publishEvent(event string, conversationId, senderId uint, payload any) []error {
	var errors []error

	redisEvent := redisModels.RedisPublishedMessage{
		Event:          event,
		ConversationID: conversationId,
		SenderID:       senderId,
		Payload:        payload,
	}
	jsonEvent, err := json.Marshal(redisEvent)
	if err != nil {
		errors = append(errors, err)
		return errors
	}
	if err := sch.PublishMessage(sch.hub.Redis, redisModels.REDIS_CHANNEL_CHAT, jsonEvent); err != nil {
		errors = append(errors, err)
		return errors
	}
	return nil
}

func (sch *SocketChatHandler) deleteDisconnectedClientFromConversation(userId uint, conversationId uint) {
	sch.mu.Lock()
	defer sch.mu.Unlock()
	for i, client := range sch.hub.Conversations[conversationId] {
		if client.UserId == userId {
			sch.hub.Conversations[conversationId] = append(sch.hub.Conversations[conversationId][:i], sch.hub.Conversations[conversationId][i+1:]...)
			break
		}
	}
	// Drop the room once the last client leaves
	if len(sch.hub.Conversations[conversationId]) == 0 {
		delete(sch.hub.Conversations, conversationId)
	}
}

func (sch *SocketChatHandler) logConversations() {
	for conversationId, clients := range sch.hub.Conversations {
		log.Printf("Conversation ID: %v", conversationId)
		for _, client := range clients {
			log.Printf("Client ID: %v", client.UserId)
		}
	}
}

func (sch *SocketChatHandler) HandleRedisMessages() {
	ch := sch.SubscribeToChannel(sch.hub.Redis, redisModels.REDIS_CHANNEL_CHAT)
	for msg := range ch {
		var redisMessage redisModels.RedisPublishedMessage
		if err := json.Unmarshal([]byte(msg.Payload), &redisMessage); err != nil {
			log.Printf("Error unmarshalling message: %v", err)
			continue
		}
		sch.SendMessageToClient(redisMessage)
	}
}

// recipients filters the room down to everyone except the event's
// originator, so a client never gets its own event echoed back.
func recipients(clients []*models.SocketClient, senderId uint) []*models.SocketClient {
	result := make([]*models.SocketClient, 0, len(clients))
	for _, client := range clients {
		if client.UserId != senderId {
			result = append(result, client)
		}
	}
	return result
}

// SendMessageToClient fans the event out to every other client
// attached to the conversation. A failed write evicts the client.
func (sch *SocketChatHandler) SendMessageToClient(redisMessage redisModels.RedisPublishedMessage) {
	sch.mu.Lock()
	defer sch.mu.Unlock()
	if conversation, ok := sch.hub.Conversations[redisMessage.ConversationID]; ok {
		for _, client := range recipients(conversation, redisMessage.SenderID) {
			if err := client.Conn.WriteJSON(redisMessage); err != nil {
				log.Printf("Error writing json: %v", err)
				if err := client.Conn.Close(); err != nil {
					return
				}
				for i, c := range sch.hub.Conversations[redisMessage.ConversationID] {
					if c.UserId == client.UserId {
						sch.hub.Conversations[redisMessage.ConversationID] = append(
							sch.hub.Conversations[redisMessage.ConversationID][:i],
							sch.hub.Conversations[redisMessage.ConversationID][i+1:]...)
						break
					}
				}
			}
		}
	}
}

func (sch *SocketChatHandler) PublishMessage(redis *redis.Client, channel string, message []byte) error {
	return redis.Publish(sch.ctx, channel, message).Err()
}

func (sch *SocketChatHandler) SubscribeToChannel(redis *redis.Client, channel string) <-chan *redis.Message {
	pubsub := redis.Subscribe(sch.ctx, channel)
	_, err := pubsub.Receive(sch.ctx)
	if err != nil {
		log.Fatalf("Could not subscribe to channel: %v", err)
	}
	return pubsub.Channel()
}

func (sch *SocketChatHandler) WaitForShutdown(httpServer *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := httpServer.Shutdown(sch.ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close all WebSocket connections
	sch.mu.Lock()
	for conversationId, clients := range sch.hub.Conversations {
		for _, client := range clients {
			err := client.Conn.Close()
			if err != nil {
				return
			}
		}
		delete(sch.hub.Conversations, conversationId)
	}
	sch.mu.Unlock()

	log.Println("Server exiting")
}
