package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/memorial_park_app/internal/apperrors"
	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	portssvc "github.com/SscSPs/memorial_park_app/internal/core/ports/services"
	"github.com/SscSPs/memorial_park_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func decimalEq(v int64) interface{} {
	want := decimal.NewFromInt(v)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

type BalanceServiceTestSuite struct {
	suite.Suite
	tx          *MockTxManager
	lotRepo     *MockLotRepository
	clientRepo  *MockClientRepository
	paymentRepo *MockPaymentRepository
	service     portssvc.BalanceSvc
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.tx = new(MockTxManager)
	suite.lotRepo = new(MockLotRepository)
	suite.clientRepo = new(MockClientRepository)
	suite.paymentRepo = new(MockPaymentRepository)
	suite.service = services.NewBalanceService(suite.tx, suite.lotRepo, suite.clientRepo, suite.paymentRepo, services.WithClock(fixedClock))
	suite.tx.On("Begin", mock.Anything).Return(nil, nil)
}

// A 5000 lot with 2000 already paid receives 1000 more: 2000 remains.
func (suite *BalanceServiceTestSuite) TestRecompute_WalkInExample() {
	ctx := context.Background()
	suite.lotRepo.On("FindLotForUpdate", ctx, mock.Anything, "lot-1").
		Return(&domain.Lot{ID: "lot-1", Price: decimal.NewFromInt(5000)}, nil).Once()
	suite.paymentRepo.On("SumSettledPaymentsInTx", ctx, mock.Anything, "client-1", "lot-1").
		Return(decimal.NewFromInt(3000), nil).Once()
	suite.lotRepo.On("UpdateLotBalanceInTx", ctx, mock.Anything, "lot-1", decimalEq(2000), fixedNow).Return(nil).Once()
	suite.clientRepo.On("LockClientForUpdate", ctx, mock.Anything, "client-1").Return(nil).Once()
	suite.lotRepo.On("ListLotsByOwnerInTx", ctx, mock.Anything, "client-1").Return([]domain.Lot{
		{ID: "lot-1", Balance: decimal.NewFromInt(2000)},
		{ID: "lot-2", Balance: decimal.NewFromInt(1500)},
	}, nil).Once()
	suite.clientRepo.On("UpdateClientBalanceInTx", ctx, mock.Anything, "client-1", decimalEq(3500), fixedNow).Return(nil).Once()
	suite.tx.On("Commit", ctx, mock.Anything).Return(nil).Once()

	snapshot, err := suite.service.RecomputeBalances(ctx, "client-1", "lot-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(snapshot)
	suite.True(snapshot.LotBalance.Equal(decimal.NewFromInt(2000)))
	suite.True(snapshot.ClientBalance.Equal(decimal.NewFromInt(3500)))
	suite.True(snapshot.TotalPaid.Equal(decimal.NewFromInt(3000)))
	suite.tx.AssertNotCalled(suite.T(), "Rollback", mock.Anything, mock.Anything)
	suite.lotRepo.AssertExpectations(suite.T())
	suite.clientRepo.AssertExpectations(suite.T())
	suite.tx.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestRecompute_OverpaidClampsToZero() {
	ctx := context.Background()
	suite.lotRepo.On("FindLotForUpdate", ctx, mock.Anything, "lot-1").
		Return(&domain.Lot{ID: "lot-1", Price: decimal.NewFromInt(5000)}, nil).Once()
	suite.paymentRepo.On("SumSettledPaymentsInTx", ctx, mock.Anything, "client-1", "lot-1").
		Return(decimal.NewFromInt(6000), nil).Once()
	suite.lotRepo.On("UpdateLotBalanceInTx", ctx, mock.Anything, "lot-1", decimalEq(0), fixedNow).Return(nil).Once()
	suite.clientRepo.On("LockClientForUpdate", ctx, mock.Anything, "client-1").Return(nil).Once()
	suite.lotRepo.On("ListLotsByOwnerInTx", ctx, mock.Anything, "client-1").Return([]domain.Lot{{ID: "lot-1"}}, nil).Once()
	suite.clientRepo.On("UpdateClientBalanceInTx", ctx, mock.Anything, "client-1", decimalEq(0), fixedNow).Return(nil).Once()
	suite.tx.On("Commit", ctx, mock.Anything).Return(nil).Once()

	snapshot, err := suite.service.RecomputeBalances(ctx, "client-1", "lot-1")

	suite.Require().NoError(err)
	suite.True(snapshot.LotBalance.IsZero())
}

func (suite *BalanceServiceTestSuite) TestRecompute_MissingClientKeepsLotBalance() {
	ctx := context.Background()
	suite.lotRepo.On("FindLotForUpdate", ctx, mock.Anything, "lot-1").
		Return(&domain.Lot{ID: "lot-1", Price: decimal.NewFromInt(5000)}, nil).Once()
	suite.paymentRepo.On("SumSettledPaymentsInTx", ctx, mock.Anything, "client-gone", "lot-1").
		Return(decimal.NewFromInt(1000), nil).Once()
	suite.lotRepo.On("UpdateLotBalanceInTx", ctx, mock.Anything, "lot-1", decimalEq(4000), fixedNow).Return(nil).Once()
	suite.clientRepo.On("LockClientForUpdate", ctx, mock.Anything, "client-gone").Return(apperrors.ErrNotFound).Once()
	suite.tx.On("Commit", ctx, mock.Anything).Return(nil).Once()

	snapshot, err := suite.service.RecomputeBalances(ctx, "client-gone", "lot-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(snapshot)
	suite.True(snapshot.LotBalance.Equal(decimal.NewFromInt(4000)))
	suite.True(snapshot.ClientMissing)
	suite.clientRepo.AssertNotCalled(suite.T(), "UpdateClientBalanceInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.tx.AssertNotCalled(suite.T(), "Rollback", mock.Anything, mock.Anything)
	suite.tx.AssertExpectations(suite.T())
	suite.lotRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestRecompute_MissingLotIsSkipped() {
	ctx := context.Background()
	suite.lotRepo.On("FindLotForUpdate", ctx, mock.Anything, "lot-gone").Return(nil, apperrors.ErrNotFound).Once()
	suite.tx.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	snapshot, err := suite.service.RecomputeBalances(ctx, "client-1", "lot-gone")

	suite.NoError(err)
	suite.Nil(snapshot)
	suite.paymentRepo.AssertNotCalled(suite.T(), "SumSettledPaymentsInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.tx.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestRecompute_FailureRollsBack() {
	ctx := context.Background()
	suite.lotRepo.On("FindLotForUpdate", ctx, mock.Anything, "lot-1").
		Return(&domain.Lot{ID: "lot-1", Price: decimal.NewFromInt(5000)}, nil).Once()
	suite.paymentRepo.On("SumSettledPaymentsInTx", ctx, mock.Anything, "client-1", "lot-1").
		Return(decimal.Zero, errors.New("db down")).Once()
	suite.tx.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	snapshot, err := suite.service.RecomputeBalances(ctx, "client-1", "lot-1")

	suite.Error(err)
	suite.Nil(snapshot)
	suite.lotRepo.AssertNotCalled(suite.T(), "UpdateLotBalanceInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.tx.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.tx.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestRecompute_BeginFailure() {
	txm := new(MockTxManager)
	txm.On("Begin", mock.Anything).Return(nil, errors.New("pool closed")).Once()
	failing := services.NewBalanceService(txm, suite.lotRepo, suite.clientRepo, suite.paymentRepo)

	_, err := failing.RecomputeBalances(context.Background(), "client-1", "lot-1")

	suite.Error(err)
	suite.lotRepo.AssertNotCalled(suite.T(), "FindLotForUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
