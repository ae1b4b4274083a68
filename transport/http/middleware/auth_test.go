package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"playcourt/config"
	"playcourt/infras/jwt"
	"playcourt/infras/otel/mocks"
	"playcourt/permissions"
	"playcourt/shared/constant"
	"playcourt/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWT(t *testing.T, secret string, expireMin int) jwt.JWT {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.AccessSecret = secret
	cfg.JWT.AccessExpireMin = expireMin

	service, err := jwt.New(cfg)
	require.NoError(t, err)

	return service
}

func newRouter(t *testing.T, jwtService jwt.JWT) http.Handler {
	t.Helper()

	routes, err := permissions.Parse([]byte(`{"endpoints":[
		{"path":"/bookings","method":"GET","skip":true},
		{"path":"/bookings","method":"POST","skip":false},
		{"path":"/bookings/approve/{id}","method":"PATCH","skip":true}
	]}`))
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Use(middleware.NewAuthMiddleware(jwtService, mocks.NewOtel(), routes).Auth)

	echo := func(w http.ResponseWriter, r *http.Request) {
		email, _ := r.Context().Value(constant.ContextKeyUserEmail).(string)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(email))
	}

	router.Get("/bookings", echo)
	router.Post("/bookings", echo)
	router.Patch("/bookings/approve/{id}", echo)
	router.Delete("/bookings/{id}", echo)

	return router
}

func TestAuth(t *testing.T) {
	service := newJWT(t, "secret", 120)

	valid, err := service.Issue("player@example.com")
	require.NoError(t, err)

	foreign, err := newJWT(t, "another-secret", 120).Issue("player@example.com")
	require.NoError(t, err)

	expired, err := newJWT(t, "secret", -1).Issue("player@example.com")
	require.NoError(t, err)

	tests := []struct {
		name         string
		method       string
		path         string
		header       string
		expectedCode int
		expectedBody string
		expectedErr  string
	}{
		{name: "public route without token", method: http.MethodGet, path: "/bookings", expectedCode: http.StatusOK},
		{name: "flagged public route", method: http.MethodPatch, path: "/bookings/approve/42", expectedCode: http.StatusOK},
		{name: "gated route without token", method: http.MethodPost, path: "/bookings", expectedCode: http.StatusUnauthorized, expectedErr: "missing bearer token"},
		{name: "gated route with blank token", method: http.MethodPost, path: "/bookings", header: "Bearer ", expectedCode: http.StatusUnauthorized},
		{name: "gated route with malformed token", method: http.MethodPost, path: "/bookings", header: "Bearer nope", expectedCode: http.StatusForbidden, expectedErr: "invalid token"},
		{name: "gated route with foreign signature", method: http.MethodPost, path: "/bookings", header: "Bearer " + foreign.Token, expectedCode: http.StatusForbidden},
		{name: "gated route with expired token", method: http.MethodPost, path: "/bookings", header: "Bearer " + expired.Token, expectedCode: http.StatusForbidden, expectedErr: "token has expired"},
		{
			name:         "gated route with valid token",
			method:       http.MethodPost,
			path:         "/bookings",
			header:       "Bearer " + valid.Token,
			expectedCode: http.StatusOK,
			expectedBody: "player@example.com",
		},
		{name: "unlisted route is gated", method: http.MethodDelete, path: "/bookings/42", expectedCode: http.StatusUnauthorized},
		{name: "unknown path reaches the router", method: http.MethodGet, path: "/nowhere", expectedCode: http.StatusNotFound},
	}

	router := newRouter(t, service)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}

			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.expectedCode, recorder.Code)

			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, recorder.Body.String())
			}

			if tt.expectedErr != "" {
				assert.Contains(t, recorder.Body.String(), `"error":"`+tt.expectedErr+`"`)
			}
		})
	}
}
