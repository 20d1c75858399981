package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kruti2924/SocialMediaApp/configs"
	"github.com/kruti2924/SocialMediaApp/internal/errs"
	"github.com/kruti2924/SocialMediaApp/internal/models"
	"github.com/kruti2924/SocialMediaApp/internal/msgs"
	"github.com/kruti2924/SocialMediaApp/internal/services"
)

type RestHandler struct {
	config             *configs.Config
	authService        *services.AuthenticationService
	userService        *services.UserService
	postService        *services.PostService
	chatService        *services.ChatService
	generationService  *services.GenerationService
	fileManagerService *services.FileManagerService
}

func NewRestHandler(
	config *configs.Config,
	authService *services.AuthenticationService,
	userService *services.UserService,
	postService *services.PostService,
	chatService *services.ChatService,
	generationService *services.GenerationService,
	fileManagerService *services.FileManagerService,
) *RestHandler {
	return &RestHandler{
		config:             config,
		authService:        authService,
		userService:        userService,
		postService:        postService,
		chatService:        chatService,
		generationService:  generationService,
		fileManagerService: fileManagerService,
	}
}

var notFoundErrors = map[error]struct{}{
	errs.ErrUserNotFound:         {},
	errs.ErrPostNotFound:         {},
	errs.ErrConversationNotFound: {},
	errs.ErrMessageNotFound:      {},
}

var forbiddenErrors = map[error]struct{}{
	errs.ErrUnauthorized:     {},
	errs.ErrNotAParticipant:  {},
	errs.ErrNotMessageSender: {},
	errs.ErrNotPostAuthor:    {},
}

var generationStatusErrors = map[error]int{
	errs.ErrGenerationUnavailable: http.StatusServiceUnavailable,
	errs.ErrGenerationRateLimited: http.StatusTooManyRequests,
	errs.ErrGenerationBadRequest:  http.StatusBadRequest,
	errs.ErrGenerationTimeout:     http.StatusRequestTimeout,
	errs.ErrGenerationFailed:      http.StatusInternalServerError,
	errs.ErrGenerationNotReady:    http.StatusInternalServerError,
}

// StatusForErrors maps the first error onto an HTTP status. Resource
// absence is checked before authorization by the services, so a missing
// resource always surfaces as 404 even for a non-participant caller.
func StatusForErrors(errors []error) int {
	if len(errors) == 0 {
		return http.StatusOK
	}
	first := errors[0]
	if _, ok := notFoundErrors[first]; ok {
		return http.StatusNotFound
	}
	if _, ok := forbiddenErrors[first]; ok {
		return http.StatusForbidden
	}
	if status, ok := generationStatusErrors[first]; ok {
		return status
	}
	if _, ok := first.(errs.Error); ok {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// respondWithErrors converts service errors to the uniform envelope.
// Unexpected internals are suppressed outside debug mode.
func (rh *RestHandler) respondWithErrors(ctx *gin.Context, errors []error) {
	status := StatusForErrors(errors)
	if status == http.StatusInternalServerError && !rh.config.Viper.GetBool("server.debug") {
		errors = []error{errs.ErrInternal}
	}
	ctx.AbortWithStatusJSON(status, models.Response{
		Success: false,
		Message: msgs.MsgOperationFailed,
		Errors:  models.ErrorStrings(errors),
	})
}

func (rh *RestHandler) authenticatedUserID(ctx *gin.Context) uint {
	return ctx.GetUint("user_id")
}

func uintParam(ctx *gin.Context, name string) (uint, error) {
	value, err := strconv.Atoi(ctx.Param(name))
	if err != nil || value < 1 {
		return 0, errs.ErrInvalidParams
	}
	return uint(value), nil
}

func pageAndSize(ctx *gin.Context, defaultSize int) (int, int) {
	page, err := strconv.Atoi(ctx.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil || size < 1 {
		size = defaultSize
	}
	return page, size
}
