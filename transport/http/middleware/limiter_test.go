package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"playcourt/config"
	"playcourt/infras/otel/mocks"
	cacheMocks "playcourt/shared/cache/mocks"
	"playcourt/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name              string
		enable            bool
		setupMock         func(cache *cacheMocks.MockRedisCache)
		expectedCode      int
		expectedRemaining string
	}{
		{
			name:         "disabled",
			setupMock:    func(_ *cacheMocks.MockRedisCache) {},
			expectedCode: http.StatusOK,
		},
		{
			name:   "within the window",
			enable: true,
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), "limiter:10.0.0.1:test-agent", 60).Return(int64(2), nil)
			},
			expectedCode:      http.StatusOK,
			expectedRemaining: "1",
		},
		{
			name:   "over the limit",
			enable: true,
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(4), nil)
			},
			expectedCode:      http.StatusTooManyRequests,
			expectedRemaining: "0",
		},
		{
			name:   "counter store down",
			enable: true,
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("dial tcp: connection refused"))
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = tt.enable
			cfg.App.RateLimiter.MaxRequests = 3
			cfg.App.RateLimiter.WindowSeconds = 60

			cache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
			tt.setupMock(cache)

			app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache)
			handler := app.Tracing(app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})))

			request := httptest.NewRequest(http.MethodGet, "/courts", nil)
			request.Header.Set("X-Forwarded-For", "10.0.0.1, 172.16.0.1")
			request.Header.Set("User-Agent", "test-agent")

			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.expectedCode, recorder.Code)
			assert.Equal(t, tt.expectedRemaining, recorder.Header().Get("X-RateLimit-Remaining"))
		})
	}
}

func TestRateLimit_KeysOnRemoteHost(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 3
	cfg.App.RateLimiter.WindowSeconds = 60

	cache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
	cache.EXPECT().Increment(gomock.Any(), "limiter:192.0.2.7:test-agent", 60).Return(int64(1), nil)
	cache.EXPECT().Increment(gomock.Any(), "limiter:192.0.2.7:test-agent", 60).Return(int64(2), nil)

	app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache)
	handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, remoteAddr := range []string{"192.0.2.7:51000", "192.0.2.7:51001"} {
		request := httptest.NewRequest(http.MethodGet, "/courts", nil)
		request.RemoteAddr = remoteAddr
		request.Header.Set("User-Agent", "test-agent")

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	}
}
