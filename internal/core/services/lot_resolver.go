package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/memorial_park_app/internal/apperrors"
	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	portsrepo "github.com/SscSPs/memorial_park_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/memorial_park_app/internal/core/ports/services"
)

type lotResolver struct {
	BaseService
	lotRepo portsrepo.LotReader
}

func NewLotResolver(lotRepo portsrepo.LotReader, options ...ServiceOption) portssvc.LotResolverSvc {
	return &lotResolver{BaseService: newBaseService(options...), lotRepo: lotRepo}
}

var _ portssvc.LotResolverSvc = (*lotResolver)(nil)

func (s *lotResolver) ResolveLot(ctx context.Context, lotID, clientID string) (*domain.ResolvedLot, error) {
	var (
		lot *domain.Lot
		err error
	)

	if lotID = strings.TrimSpace(lotID); lotID != "" {
		lot, err = s.lotRepo.FindLotByID(ctx, lotID)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFoundf("Lot not found")
		}
	} else {
		lot, err = s.lotRepo.FindPrimaryLotForClient(ctx, clientID)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Validationf("client must have an assigned lot before recording a payment")
		}
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve lot", slog.String("lot_id", lotID), slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to resolve lot: %w", err)
	}

	return &domain.ResolvedLot{
		ID:          lot.ID,
		LotNumber:   lot.LotNumber,
		LotType:     lot.LotType,
		SectionName: lot.DisplaySection(),
		Price:       lot.Price,
	}, nil
}
