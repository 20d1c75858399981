package app

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/kruti2924/SocialMediaApp/configs"
	"github.com/kruti2924/SocialMediaApp/internal/handlers"
	"github.com/kruti2924/SocialMediaApp/internal/repositories"
	"github.com/kruti2924/SocialMediaApp/internal/servers/database"
	"github.com/kruti2924/SocialMediaApp/internal/servers/http"
	"github.com/kruti2924/SocialMediaApp/internal/services"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.initializeConfigs()
	app.initializeRedis()

	db := database.GetDB(app.configs)

	authRepo := repositories.NewAuthenticationRepository(db)
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	chatRepo := repositories.NewChatRepository(db)

	authService := services.NewAuthenticationService(authRepo, app.configs)
	userService := services.NewUserService(userRepo, postRepo)
	postService := services.NewPostService(postRepo)
	chatService := services.NewChatService(chatRepo)
	generationService := services.NewGenerationService(app.configs)

	minioService := services.NewMinioService(app.configs)
	fileManagerService := services.NewFileManagerService(minioService)

	restHandler := handlers.NewRestHandler(
		app.configs,
		authService,
		userService,
		postService,
		chatService,
		generationService,
		fileManagerService,
	)

	socketChatHandler := handlers.NewSocketChatHandler(app.redis, app.ctx, app.configs, chatService)
	socketObservingHandler := handlers.NewSocketUserObservingHandler(app.redis, app.ctx, app.configs, authService)

	http.NewHttpServer(
		app.ctx,
		app.redis,
		app.configs,
		restHandler,
		socketChatHandler,
		socketObservingHandler,
	).Run()
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr: app.configs.Viper.GetString("redis.address"),
	})
}

func (app *App) initializeConfigs() {
	app.configs = configs.GetConfig()
}
