package middleware_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	"github.com/mikiasgoitom/VidTube/internal/handler/http/middleware"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type stubVerifier struct{}

func (stubVerifier) ParseAccessToken(token string) (*entity.Claims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return &entity.Claims{UserID: "user-1"}, nil
}

func authRouter() *gin.Engine {
	r := gin.New()
	r.GET("/me", middleware.AuthMiddleWare(stubVerifier{}), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.UserIDKey))
	})
	return r
}

func TestAuthMiddleWare(t *testing.T) {
	cases := []struct {
		name   string
		header string
		cookie string
		code   int
		body   string
	}{
		{name: "bearer header", header: "Bearer good", code: http.StatusOK, body: "user-1"},
		{name: "lowercase scheme", header: "bearer good", code: http.StatusOK, body: "user-1"},
		{name: "cookie", cookie: "good", code: http.StatusOK, body: "user-1"},
		{name: "missing", code: http.StatusUnauthorized, body: "Authorization token required"},
		{name: "wrong scheme", header: "Basic good", code: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", code: http.StatusUnauthorized, body: "Invalid or expired token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "accessToken", Value: tc.cookie})
			}
			authRouter().ServeHTTP(w, req)
			assert.Equal(t, tc.code, w.Code)
			assert.Contains(t, w.Body.String(), tc.body)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	r := gin.New()
	r.GET("/videos/v1", middleware.OptionalAuth(stubVerifier{}), func(c *gin.Context) {
		c.String(http.StatusOK, "viewer=%s", c.GetString(middleware.UserIDKey))
	})
	cases := []struct {
		name   string
		header string
		body   string
	}{
		{name: "signed in", header: "Bearer good", body: "viewer=user-1"},
		{name: "anonymous", body: "viewer="},
		{name: "invalid token", header: "Bearer bad", body: "viewer="},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/videos/v1", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.body, w.Body.String())
		})
	}
}

func TestSetRequestContextWithTimeout(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SetRequestContextWithTimeout(time.Second))
	r.GET("/", func(c *gin.Context) {
		deadline, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 500*time.Millisecond)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimiter(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RateLimiter(middleware.NewLimiter(1)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, http.StatusOK, codes[0])
	assert.Contains(t, codes, http.StatusTooManyRequests)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	r := gin.New()
	r.Use(middleware.RequestLogger(logrus.NewEntry(log)))
	r.GET("/videos/:videoId", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/videos/abc", nil)
	r.ServeHTTP(w, req)

	out := buf.String()
	assert.Contains(t, out, `"path":"/videos/:videoId"`)
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"level":"warning"`)
}
