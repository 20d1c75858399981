package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kruti2924/SocialMediaApp/configs"
	"github.com/kruti2924/SocialMediaApp/internal/utils"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *configs.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config := configs.GetConfig()
	rh := &RestHandler{config: config}

	router := gin.New()
	router.GET("/protected", rh.MustAuthenticateMiddleware(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"user_id": ctx.GetUint("user_id")})
	})
	return router, config
}

func TestMustAuthenticateMiddlewareRejectsMissingToken(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", recorder.Code)
	}
}

func TestMustAuthenticateMiddlewareRejectsGarbageToken(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", recorder.Code)
	}
}

func TestMustAuthenticateMiddlewareAcceptsValidToken(t *testing.T) {
	router, config := newAuthTestRouter(t)

	token, err := utils.CreateJwtToken(42, "alice", "alice@example.com", utils.GetJwtKey(config), time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
}
