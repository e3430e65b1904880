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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type clientResolver struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
	hashFn     func() (string, error)
}

func NewClientResolver(clientRepo portsrepo.ClientRepositoryFacade, options ...ServiceOption) portssvc.ClientResolverSvc {
	return &clientResolver{
		BaseService: newBaseService(options...),
		clientRepo:  clientRepo,
		hashFn:      utils.NewTemporaryPasswordHash,
	}
}

var _ portssvc.ClientResolverSvc = (*clientResolver)(nil)

func (s *clientResolver) ResolveClient(ctx context.Context, clientID, name, email string) (*domain.ResolvedClient, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID != "" {
		// The caller's id is authoritative; existence is not checked here.
		return &domain.ResolvedClient{ID: clientID, Name: strings.TrimSpace(name), Email: strings.TrimSpace(email)}, nil
	}

	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, apperrors.Validationf("clientId or clientName and clientEmail are required")
	}

	existing, err := s.clientRepo.FindClientByEmail(ctx, email)
	if err == nil {
		return &domain.ResolvedClient{ID: existing.ID, Name: existing.Name, Email: existing.Email}, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up client by email")
		return nil, fmt.Errorf("failed to look up client: %w", err)
	}

	hash, err := s.hashFn()
	if err != nil {
		return nil, fmt.Errorf("failed to generate temporary password: %w", err)
	}

	now := s.Now()
	joinDate := now.Truncate(24 * time.Hour)
	client := domain.Client{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Balance:      decimal.Zero,
		Status:       domain.ClientStatusActive,
		JoinDate:     &joinDate,
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to create client", slog.String("email", email))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.LogInfo(ctx, "Created client for walk-in payment", slog.String("client_id", client.ID))
	return &domain.ResolvedClient{ID: client.ID, Name: client.Name, Email: client.Email, Created: true}, nil
}
