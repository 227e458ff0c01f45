package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"webhook-cache-api/internal/api/handlers"
	"webhook-cache-api/internal/auth"
	"webhook-cache-api/internal/webhook"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() http.Handler {
	svc := &webhook.Service{Store: webhook.NewStore()}
	rh := &handlers.ReceiverHandler{Service: svc}
	dh := &handlers.DataHandler{Auth: auth.Auth{}, Service: svc}
	return NewRouter(rh, dh, time.Now())
}

func TestRouterWiring(t *testing.T) {
	router := testRouter()

	cases := []struct {
		method, path string
		body         string
		wantStatus   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodPost, "/webhook/customer-data", `{"customer_name":"Ann","email":"a@x.com","subscriptions":[1]}`, http.StatusOK},
		{http.MethodPost, "/webhook/test-hook", `{"k":"v"}`, http.StatusOK},
		{http.MethodGet, "/api/webhook-data?email=a@x.com", "", http.StatusOK},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, tc.wantStatus, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestCORSMiddleware(t *testing.T) {
	wrapped := CORSMiddleware(testRouter(), "*")

	t.Run("stamps headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		wrapped.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("answers preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/webhook-data", nil)
		w := httptest.NewRecorder()
		wrapped.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Methods"))
	})
}
