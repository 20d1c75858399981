package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kruti2924/SocialMediaApp/configs"
	"github.com/kruti2924/SocialMediaApp/internal/handlers"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	redis                  *redis.Client
	ctx                    context.Context
	config                 *configs.Config
	router                 *gin.Engine
	restHandler            *handlers.RestHandler
	socketChatHandler      *handlers.SocketChatHandler
	socketObservingHandler *handlers.SocketUserObservingHandler
}

func NewHttpServer(
	ctx context.Context,
	redis *redis.Client,
	config *configs.Config,
	restHandler *handlers.RestHandler,
	socketChatHandler *handlers.SocketChatHandler,
	socketObservingHandler *handlers.SocketUserObservingHandler,
) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:                    ctx,
			redis:                  redis,
			config:                 config,
			restHandler:            restHandler,
			socketChatHandler:      socketChatHandler,
			socketObservingHandler: socketObservingHandler,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.initializeGin()
	hs.setupRestfulRoutes()
	hs.setupWebSocketRoutes()

	hs.socketChatHandler.StartSocket()

	server := hs.startServer()

	// Wait for interrupt signal to gracefully shut down the server
	hs.socketChatHandler.WaitForShutdown(server)
}

func (hs *HttpServer) initializeGin() {
	if !hs.config.Viper.GetBool("server.debug") {
		gin.SetMode(gin.ReleaseMode)
	}
	hs.router = gin.Default()
}

func (hs *HttpServer) setupRestfulRoutes() {
	api := hs.router.Group("/api")

	api.GET("/health", hs.restHandler.Health)

	auth := api.Group("/auth")
	{
		auth.POST("/login", hs.restHandler.Login)
		auth.POST("/register", hs.restHandler.Register)
	}

	users := api.Group("/users", hs.restHandler.MustAuthenticateMiddleware())
	{
		users.GET("", hs.restHandler.GetAllUsers)
		users.GET("/search/:query", hs.restHandler.SearchUsers)
		users.GET("/:id", hs.restHandler.GetSingleUser)
		users.PUT("/:id", hs.restHandler.UpdateProfile)
		users.POST("/:id/follow", hs.restHandler.FollowUser)
		users.GET("/:id/followers", hs.restHandler.GetFollowers)
		users.GET("/:id/following", hs.restHandler.GetFollowing)
		users.GET("/:id/posts", hs.restHandler.GetUserPosts)
		users.POST("/profile-picture", hs.restHandler.UploadProfilePicture)
	}

	posts := api.Group("/posts", hs.restHandler.MustAuthenticateMiddleware())
	{
		posts.GET("", hs.restHandler.GetPosts)
		posts.POST("", hs.restHandler.CreatePost)
		posts.GET("/:id", hs.restHandler.GetPost)
		posts.GET("/user/:id", hs.restHandler.GetUserPosts)
		posts.PUT("/:id", hs.restHandler.UpdatePost)
		posts.DELETE("/:id", hs.restHandler.DeletePost)
		posts.POST("/:id/like", hs.restHandler.LikePost)
		posts.POST("/:id/comments", hs.restHandler.AddComment)
		posts.POST("/upload", hs.restHandler.UploadPostImage)
	}

	messages := api.Group("/messages", hs.restHandler.MustAuthenticateMiddleware())
	{
		messages.GET("/conversations", hs.restHandler.GetUserConversations)
		messages.POST("/conversations", hs.restHandler.CreateConversation)
		messages.GET("/:id", hs.restHandler.GetConversationMessages)
		messages.POST("", hs.restHandler.SendMessage)
		messages.PUT("/:id", hs.restHandler.EditMessage)
		messages.DELETE("/:id", hs.restHandler.DeleteMessage)
		messages.PUT("/:id/read", hs.restHandler.MarkMessageRead)
	}

	generate := api.Group("/generate", hs.restHandler.MustAuthenticateMiddleware())
	{
		generate.POST("/image", hs.restHandler.GenerateImage)
		generate.GET("/models", hs.restHandler.GetGenerationModels)
		generate.POST("/validate-prompt", hs.restHandler.ValidatePrompt)
	}

	hs.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (hs *HttpServer) setupWebSocketRoutes() {
	hs.router.GET("/ws/chat", hs.socketChatHandler.HandleSocketChatRoute)
	hs.router.GET("/ws/observe", hs.socketObservingHandler.HandleSocketUserObservingRoute)
}

func (hs *HttpServer) startServer() *http.Server {
	port := hs.config.Viper.GetInt("server.port")
	if port == 0 {
		port = 8000
	}
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: hs.router,
	}

	go func() {
		log.Printf("HTTP server started on :%d", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}
