package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magscene/magsav-api/internal/metrics"
	"github.com/magscene/magsav-api/internal/pkg/jwthelper"
)

const (
	signingKey = "test-signing-key"
	userAgent  = "magsav-desktop/1.0"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newToken(t *testing.T, userID uint, role, ua string) string {
	t.Helper()

	token, err := jwthelper.GenerateToken([]byte(signingKey), userID, role, ua, time.Hour)
	require.NoError(t, err)

	return token
}

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{NewAuthenticator(signingKey).VerifyJWT()}, extra...)
	handlers = append(handlers, func(ctx *gin.Context) {
		id, _ := UserID(ctx)
		ctx.JSON(http.StatusOK, gin.H{"user_id": id, "role": ctx.GetString(ContextKeyRole)})
	})
	r.GET("/private", handlers...)

	return r
}

func TestVerifyJWT(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		query      string
		userAgent  string
		wantStatus int
	}{
		{
			name:       "missing token",
			userAgent:  userAgent,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed token",
			header:     "Bearer not-a-jwt",
			userAgent:  userAgent,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			userAgent:  userAgent,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "other user agent",
			header:     "Bearer " + newToken(t, 7, "admin", userAgent),
			userAgent:  "curl/8.0",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid header",
			header:     "Bearer " + newToken(t, 7, "admin", userAgent),
			userAgent:  userAgent,
			wantStatus: http.StatusOK,
		},
		{
			name:       "token in query",
			query:      "?token=" + newToken(t, 7, "admin", userAgent),
			userAgent:  userAgent,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private"+tt.query, nil)
			req.Header.Set("User-Agent", tt.userAgent)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			protectedRouter().ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"user_id":7,"role":"admin"}`, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"status":401`)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	r := protectedRouter(RequireRole("admin"))

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", "Bearer "+newToken(t, 3, "utilisateur", userAgent))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req.Header.Set("Authorization", "Bearer "+newToken(t, 1, "admin", userAgent))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.NewMetrics(prometheus.NewRegistry())
	rl := NewRateLimiter(ctx, 0.5, 2, m)

	r := gin.New()
	r.Use(rl.Handler())
	r.GET("/ping", func(ctx *gin.Context) { ctx.Status(http.StatusNoContent) })

	do := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusNoContent, do("192.0.2.1:1000").Code)
	assert.Equal(t, http.StatusNoContent, do("192.0.2.1:1001").Code)

	w := do("192.0.2.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))

	// Another client has its own bucket.
	assert.Equal(t, http.StatusNoContent, do("192.0.2.2:1000").Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimitHits.WithLabelValues("/ping")))
}

func TestRateLimiter_ForgetsIdleVisitors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimiter(ctx, 1, 1, nil)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.limiter("192.0.2.1")
	now = now.Add(visitorTTL + time.Second)
	rl.limiter("192.0.2.2")

	rl.forgetIdle()

	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "192.0.2.2")
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())

	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/api/vehicules/:id", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	for _, path := range []string{"/api/vehicules/1", "/api/vehicules/2", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/vehicules/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestConfigCORS(t *testing.T) {
	r := gin.New()
	r.Use(ConfigCORS([]string{"http://localhost:3000"}))
	r.GET("/ping", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
