package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kruti2924/SocialMediaApp/configs"
	"github.com/kruti2924/SocialMediaApp/internal/handlers"
)

func newTestHttpServer(t *testing.T) *HttpServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config := configs.GetConfig()
	hs := &HttpServer{
		config:      config,
		restHandler: handlers.NewRestHandler(config, nil, nil, nil, nil, nil, nil),
	}
	hs.initializeGin()
	hs.setupRestfulRoutes()
	return hs
}

func TestMessageRoutesAreRegistered(t *testing.T) {
	hs := newTestHttpServer(t)

	want := map[string]bool{
		"GET /api/messages/conversations":  false,
		"POST /api/messages/conversations": false,
		"GET /api/messages/:id":            false,
		"POST /api/messages":               false,
		"PUT /api/messages/:id":            false,
		"DELETE /api/messages/:id":         false,
		"PUT /api/messages/:id/read":       false,
	}

	for _, route := range hs.router.Routes() {
		key := route.Method + " " + route.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for key, found := range want {
		if !found {
			t.Errorf("route %s is not registered", key)
		}
	}
}

// An unauthenticated request to a registered route answers 401 from
// the auth middleware, never 404, so the status distinguishes a
// missing route from a missing token.
func TestMessageRoutesReachMiddleware(t *testing.T) {
	hs := newTestHttpServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{"PUT", "/api/messages/5/read"},
		{"GET", "/api/messages/5"},
		{"GET", "/api/messages/conversations"},
	}

	for _, p := range paths {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(p.method, p.path, nil)
		hs.router.ServeHTTP(recorder, request)

		if recorder.Code != 401 {
			t.Errorf("%s %s: expected 401, got %d", p.method, p.path, recorder.Code)
		}
	}
}
