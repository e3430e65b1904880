package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/memorial_park_app/internal/apperrors"
	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	portsrepo "github.com/SscSPs/memorial_park_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/memorial_park_app/internal/core/ports/services"
	"github.com/SscSPs/memorial_park_app/internal/utils"
)

// TokenSettings configures the access tokens issued on login.
type TokenSettings struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

// errInvalidCredentials hides whether the username or the password was wrong.
var errInvalidCredentials = apperrors.Unauthorizedf("Invalid username or password")

type authService struct {
	BaseService
	staffRepo portsrepo.StaffReader
	tokens    TokenSettings
}

// NewAuthService creates a new auth service.
func NewAuthService(staffRepo portsrepo.StaffReader, tokens TokenSettings, options ...ServiceOption) portssvc.AuthSvc {
	return &authService{
		BaseService: newBaseService(options...),
		staffRepo:   staffRepo,
		tokens:      tokens,
	}
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Login(ctx context.Context, username, password string) (*domain.AuthToken, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperrors.Validationf("username and password are required")
	}

	user, err := s.staffRepo.FindStaffByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Login attempt for unknown staff user", slog.String("username", username))
			return nil, errInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up staff user", slog.String("username", username))
		return nil, fmt.Errorf("failed to look up staff user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Login attempt with wrong password", slog.String("user_id", user.ID))
		return nil, errInvalidCredentials
	}

	expiresAt := s.Now().Add(s.tokens.Expiry)
	token, err := utils.GenerateStaffJWT(user.ID, user.Username, s.tokens.Secret, s.tokens.Expiry, s.tokens.Issuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("user_id", user.ID))
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	s.LogInfo(ctx, "Staff user logged in", slog.String("user_id", user.ID))
	return &domain.AuthToken{Token: token, ExpiresAt: expiresAt, User: *user}, nil
}
