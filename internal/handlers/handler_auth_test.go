package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/memorial_park_app/internal/apperrors"
	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	portssvc "github.com/SscSPs/memorial_park_app/internal/core/ports/services"
	"github.com/SscSPs/memorial_park_app/internal/handlers"
	"github.com/SscSPs/memorial_park_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.AuthToken, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthToken), args.Error(1)
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)

type AuthHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	auth   *MockAuthService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.auth = new(MockAuthService)

	limiter, err := middleware.NewInMemoryLimiter("2-M")
	suite.Require().NoError(err)

	suite.router = gin.New()
	handlers.RegisterAuthRoutes(suite.router.Group("/api"), suite.auth, limiter)
}

func (suite *AuthHandlerTestSuite) login(body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	expiresAt := time.Date(2024, 3, 5, 22, 30, 0, 0, time.UTC)
	suite.auth.On("Login", mock.Anything, "cashier01", "s3cret").Return(&domain.AuthToken{
		Token:     "signed.jwt.token",
		ExpiresAt: expiresAt,
		User:      domain.StaffUser{ID: "staff-1", Username: "cashier01", Role: domain.RoleCashier},
	}, nil).Once()

	w, env := suite.login(`{"username":"cashier01","password":"s3cret"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.True(env.Success)
	var data map[string]any
	suite.Require().NoError(json.Unmarshal(env.Data, &data))
	suite.Equal("signed.jwt.token", data["token"])
	suite.Equal("staff-1", data["user_id"])
	suite.Equal("cashier", data["role"])
	suite.auth.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.auth.On("Login", mock.Anything, "cashier01", "wrong").
		Return(nil, apperrors.Unauthorizedf("Invalid username or password")).Once()

	w, env := suite.login(`{"username":"cashier01","password":"wrong"}`)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.False(env.Success)
	suite.Equal("Invalid username or password", env.Error)
}

func (suite *AuthHandlerTestSuite) TestLogin_MissingFields() {
	w, env := suite.login(`{"username":"cashier01"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.False(env.Success)
	suite.auth.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestLogin_RateLimitedPerIP() {
	suite.auth.On("Login", mock.Anything, "cashier01", "wrong").
		Return(nil, apperrors.ErrUnauthorized).Times(2)

	body := `{"username":"cashier01","password":"wrong"}`
	w1, _ := suite.login(body)
	w2, _ := suite.login(body)
	w3, _ := suite.login(body)

	suite.Equal(http.StatusUnauthorized, w1.Code)
	suite.Equal(http.StatusUnauthorized, w2.Code)
	suite.Equal(http.StatusTooManyRequests, w3.Code)
	suite.auth.AssertNumberOfCalls(suite.T(), "Login", 2)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
