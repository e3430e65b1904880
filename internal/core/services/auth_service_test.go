package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/memorial_park_app/internal/apperrors"
	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	portssvc "github.com/SscSPs/memorial_park_app/internal/core/ports/services"
	"github.com/SscSPs/memorial_park_app/internal/core/services"
	"github.com/SscSPs/memorial_park_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) FindStaffByUsername(ctx context.Context, username string) (*domain.StaffUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffUser), args.Error(1)
}

type AuthServiceTestSuite struct {
	suite.Suite
	staffRepo *MockStaffRepository
	service   portssvc.AuthSvc
	ctx       context.Context
	hash      string
}

const testJWTSecret = "test-secret-key-that-is-long-enough"

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.staffRepo = new(MockStaffRepository)
	suite.ctx = context.Background()
	suite.service = services.NewAuthService(suite.staffRepo, services.TokenSettings{
		Secret: testJWTSecret,
		Expiry: 12 * time.Hour,
		Issuer: "mpa-test",
	}, services.WithClock(fixedClock))

	hash, err := utils.HashPassword("s3cret")
	suite.Require().NoError(err)
	suite.hash = hash
}

func (suite *AuthServiceTestSuite) staff() *domain.StaffUser {
	return &domain.StaffUser{ID: "staff-1", Username: "cashier01", Name: "Ana Cruz", Role: domain.RoleCashier, PasswordHash: suite.hash}
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	suite.staffRepo.On("FindStaffByUsername", suite.ctx, "cashier01").Return(suite.staff(), nil).Once()

	token, err := suite.service.Login(suite.ctx, " cashier01 ", "s3cret")

	suite.Require().NoError(err)
	suite.Equal(fixedNow.Add(12*time.Hour), token.ExpiresAt)
	suite.Equal("staff-1", token.User.ID)

	claims, err := utils.ParseStaffJWT(token.Token, testJWTSecret)
	suite.Require().NoError(err)
	suite.Equal("staff-1", claims.Subject)
	suite.Equal("cashier01", claims.Username)
	suite.Equal("mpa-test", claims.Issuer)
	suite.staffRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	suite.staffRepo.On("FindStaffByUsername", suite.ctx, "cashier01").Return(suite.staff(), nil).Once()

	token, err := suite.service.Login(suite.ctx, "cashier01", "guess")

	suite.Nil(token)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUserLooksLikeWrongPassword() {
	suite.staffRepo.On("FindStaffByUsername", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, unknownErr := suite.service.Login(suite.ctx, "ghost", "s3cret")

	suite.staffRepo.On("FindStaffByUsername", suite.ctx, "cashier01").Return(suite.staff(), nil).Once()
	_, wrongErr := suite.service.Login(suite.ctx, "cashier01", "guess")

	suite.ErrorIs(unknownErr, apperrors.ErrUnauthorized)
	suite.Equal(wrongErr.Error(), unknownErr.Error())
}

func (suite *AuthServiceTestSuite) TestLogin_MissingCredentials() {
	_, err := suite.service.Login(suite.ctx, "  ", "s3cret")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.staffRepo.AssertNotCalled(suite.T(), "FindStaffByUsername", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_RepositoryFailure() {
	dbErr := errors.New("connection refused")
	suite.staffRepo.On("FindStaffByUsername", suite.ctx, "cashier01").Return(nil, dbErr).Once()

	_, err := suite.service.Login(suite.ctx, "cashier01", "s3cret")

	suite.ErrorIs(err, dbErr)
	suite.NotErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
