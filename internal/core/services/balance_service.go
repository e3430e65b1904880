package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/memorial_park_app/internal/apperrors"
	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	portsrepo "github.com/SscSPs/memorial_park_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/memorial_park_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// balanceService recomputes balances inside one transaction. The lot row is
// locked before the client row on every path.
type balanceService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	lotRepo     portsrepo.LotBalanceSupport
	clientRepo  portsrepo.ClientBalanceSupport
	paymentRepo portsrepo.PaymentTotals
}

func NewBalanceService(
	txManager portsrepo.TransactionManager,
	lotRepo portsrepo.LotBalanceSupport,
	clientRepo portsrepo.ClientBalanceSupport,
	paymentRepo portsrepo.PaymentTotals,
	options ...ServiceOption,
) portssvc.BalanceSvc {
	return &balanceService{
		BaseService: newBaseService(options...),
		txManager:   txManager,
		lotRepo:     lotRepo,
		clientRepo:  clientRepo,
		paymentRepo: paymentRepo,
	}
}

var _ portssvc.BalanceSvc = (*balanceService)(nil)

func (s *balanceService) RecomputeBalances(ctx context.Context, clientID, lotID string) (*domain.BalanceSnapshot, error) {
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := s.txManager.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back balance recompute", slog.String("lot_id", lotID))
		}
	}()

	lot, err := s.lotRepo.FindLotForUpdate(ctx, tx, lotID)
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogWarn(ctx, "Lot missing during balance recompute, skipping", slog.String("lot_id", lotID))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	totalPaid, err := s.paymentRepo.SumSettledPaymentsInTx(ctx, tx, clientID, lotID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	lotBalance := domain.LotBalance(lot.Price, totalPaid)
	if err := s.lotRepo.UpdateLotBalanceInTx(ctx, tx, lotID, lotBalance, now); err != nil {
		return nil, err
	}

	clientBalance := decimal.Zero
	clientMissing := false
	err = s.clientRepo.LockClientForUpdate(ctx, tx, clientID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		// The lot balance still stands without a client row to roll up into.
		s.LogWarn(ctx, "Client missing during balance recompute, skipping client balance",
			slog.String("client_id", clientID), slog.String("lot_id", lotID))
		clientMissing = true
	case err != nil:
		return nil, err
	default:
		ownedLots, err := s.lotRepo.ListLotsByOwnerInTx(ctx, tx, clientID)
		if err != nil {
			return nil, err
		}
		clientBalance = domain.SumLotBalances(ownedLots)
		if err := s.clientRepo.UpdateClientBalanceInTx(ctx, tx, clientID, clientBalance, now); err != nil {
			return nil, err
		}
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit balance recompute: %w", err)
	}
	committed = true

	s.LogInfo(ctx, "Balances recomputed",
		slog.String("lot_id", lotID),
		slog.String("client_id", clientID),
		slog.String("lot_balance", lotBalance.String()),
		slog.String("client_balance", clientBalance.String()))

	return &domain.BalanceSnapshot{
		LotID:         lotID,
		ClientID:      clientID,
		LotPrice:      lot.Price,
		TotalPaid:     totalPaid,
		LotBalance:    lotBalance,
		ClientBalance: clientBalance,
		ClientMissing: clientMissing,
	}, nil
}
