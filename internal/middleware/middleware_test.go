package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-room-booking/internal/model"
	"meeting-room-booking/pkg/log"
)

type fakeAuth struct{}

func (fakeAuth) Authenticate(ctx context.Context, token string) (model.Scope, error) {
	if token != "good" {
		return model.Scope{}, errors.New("bad token")
	}
	return model.Scope{Email: "ann@example.com", Domain: "example.com"}, nil
}

func newEngine(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		sc, _ := model.GetScopeFromContext(c.Request.Context())
		c.String(http.StatusOK, sc.Email+"|"+log.RequestID(c.Request.Context()))
	})
	return r
}

func get(r http.Handler, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	mw := New(log.NewNop(), Config{Authenticator: fakeAuth{}})
	r := newEngine(mw, mw.Auth())

	w := get(r, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)

	w = get(r, map[string]string{"Authorization": "Bearer nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, map[string]string{"Authorization": "Bearer good"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "ann@example.com|"))
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newEngine(mw, mw.RequestID(), mw.Logger())

	w := get(r, map[string]string{HeaderRequestID: "req-1"})
	assert.Equal(t, "req-1", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "|req-1", w.Body.String())

	w = get(r, nil)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}

func TestCORS(t *testing.T) {
	mw := New(log.NewNop(), Config{AllowedOrigins: []string{"https://rooms.example.com", "chrome-extension://*"}})
	r := newEngine(mw, mw.CORS())

	w := get(r, map[string]string{"Origin": "chrome-extension://abcdef"})
	assert.Equal(t, "chrome-extension://abcdef", w.Header().Get("Access-Control-Allow-Origin"))

	w = get(r, map[string]string{"Origin": "https://evil.example.com"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://rooms.example.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-Client-Env")
}

func TestRateLimit(t *testing.T) {
	mw := New(log.NewNop(), Config{RateLimitPerMin: 10})
	r := newEngine(mw, mw.RateLimit())

	assert.Equal(t, http.StatusOK, get(r, nil).Code)
	w := get(r, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code, "burst of 1 is spent")
	assert.Contains(t, w.Body.String(), "too many requests")

	unlimited := New(log.NewNop(), Config{})
	r = newEngine(unlimited, unlimited.RateLimit())
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, get(r, nil).Code)
	}
}

func TestRateLimiterSharesBucketAcrossConcurrentFirstRequests(t *testing.T) {
	rl := newRateLimiter(10)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	start := make(chan struct{})
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if rl.Allow("203.0.113.7") {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), allowed.Load(), "one client gets a single burst")
	assert.Equal(t, 1, rl.limiters.Len())
}

func TestMetrics(t *testing.T) {
	metrics := NewMetrics("rooms")
	mw := New(log.NewNop(), Config{Metrics: metrics})
	r := newEngine(mw, mw.Metrics())
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	get(r, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `rooms_http_requests_total{method="GET",route="/ping",status="200"} 1`)
}
