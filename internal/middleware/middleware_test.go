package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/memorial_park_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testSecret = "test-secret"

type MiddlewareTestSuite struct {
	suite.Suite
	logs   *bytes.Buffer
	router *gin.Engine
}

func (s *MiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(s.logs, nil))

	s.router = gin.New()
	s.router.Use(StructuredLoggingMiddleware(logger))
	s.router.GET("/whoami", AuthMiddleware(testSecret), func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		GetLoggerFromCtx(c.Request.Context()).Info("inside handler")
		c.JSON(http.StatusOK, gin.H{"userID": userID, "ok": ok, "username": GetUsernameFromContext(c)})
	})
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}

func (s *MiddlewareTestSuite) do(header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *MiddlewareTestSuite) TestValidToken() {
	token, err := utils.GenerateStaffJWT("C1", "cashier.one", testSecret, time.Hour, "test")
	s.Require().NoError(err)

	w := s.do("Bearer " + token)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"userID":"C1","ok":true,"username":"cashier.one"}`, w.Body.String())
	s.NotEmpty(w.Header().Get("X-Request-ID"))
	s.Contains(s.logs.String(), `"user_id":"C1"`)
	s.Contains(s.logs.String(), "Request completed")
}

func (s *MiddlewareTestSuite) TestMissingHeader() {
	w := s.do("")
	s.Equal(http.StatusUnauthorized, w.Code)
	s.JSONEq(`{"success":false,"error":"Authorization header required"}`, w.Body.String())
}

func (s *MiddlewareTestSuite) TestMalformedHeader() {
	w := s.do("Token abc")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *MiddlewareTestSuite) TestWrongSecret() {
	token, err := utils.GenerateStaffJWT("C1", "", "other-secret", time.Hour, "test")
	s.Require().NoError(err)
	w := s.do("Bearer " + token)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.JSONEq(`{"success":false,"error":"Invalid token"}`, w.Body.String())
}

func (s *MiddlewareTestSuite) TestExpiredToken() {
	token, err := utils.GenerateStaffJWT("C1", "", testSecret, -time.Minute, "test")
	s.Require().NoError(err)
	w := s.do("Bearer " + token)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.JSONEq(`{"success":false,"error":"Token has expired"}`, w.Body.String())
}

func TestRequestIDIsPropagated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, slog.Default(), GetLoggerFromCtx(req.Context()))
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim, err := NewInMemoryLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.POST("/limited", RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/limited", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewInMemoryLimiter_BadRate(t *testing.T) {
	_, err := NewInMemoryLimiter("lots")
	assert.Error(t, err)
}

func TestSkipTracking(t *testing.T) {
	assert.True(t, skipTracking("/health"))
	assert.True(t, skipTracking("/files/documents/a.pdf"))
	assert.False(t, skipTracking("/api/cashier/walk-in"))
}
