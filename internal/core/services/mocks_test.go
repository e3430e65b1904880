package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	"github.com/SscSPs/memorial_park_app/internal/core/ports/gateways"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClientByEmail(ctx context.Context, email string) (*domain.Client, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepository) UpdateClientStatus(ctx context.Context, clientID string, status domain.ClientStatus, now time.Time) error {
	return m.Called(ctx, clientID, status, now).Error(0)
}

func (m *MockClientRepository) UpdateContractPDFURL(ctx context.Context, clientID string, url string, now time.Time) error {
	return m.Called(ctx, clientID, url, now).Error(0)
}

func (m *MockClientRepository) LockClientForUpdate(ctx context.Context, tx pgx.Tx, clientID string) error {
	return m.Called(ctx, tx, clientID).Error(0)
}

func (m *MockClientRepository) UpdateClientBalanceInTx(ctx context.Context, tx pgx.Tx, clientID string, balance decimal.Decimal, now time.Time) error {
	return m.Called(ctx, tx, clientID, balance, now).Error(0)
}

// --- Mock LotRepository ---
type MockLotRepository struct {
	mock.Mock
}

func (m *MockLotRepository) FindLotByID(ctx context.Context, lotID string) (*domain.Lot, error) {
	args := m.Called(ctx, lotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lot), args.Error(1)
}

func (m *MockLotRepository) FindPrimaryLotForClient(ctx context.Context, clientID string) (*domain.Lot, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lot), args.Error(1)
}

func (m *MockLotRepository) FindLotForUpdate(ctx context.Context, tx pgx.Tx, lotID string) (*domain.Lot, error) {
	args := m.Called(ctx, tx, lotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lot), args.Error(1)
}

func (m *MockLotRepository) UpdateLotBalanceInTx(ctx context.Context, tx pgx.Tx, lotID string, balance decimal.Decimal, now time.Time) error {
	return m.Called(ctx, tx, lotID, balance, now).Error(0)
}

func (m *MockLotRepository) ListLotsByOwnerInTx(ctx context.Context, tx pgx.Tx, ownerID string) ([]domain.Lot, error) {
	args := m.Called(ctx, tx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lot), args.Error(1)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindLatestInvoicedPayment(ctx context.Context, clientID string) (*domain.Payment, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) UpdatePaymentInvoice(ctx context.Context, paymentID, invoiceNumber, invoiceURL, agreementText string, now time.Time) error {
	return m.Called(ctx, paymentID, invoiceNumber, invoiceURL, agreementText, now).Error(0)
}

func (m *MockPaymentRepository) SumSettledPaymentsInTx(ctx context.Context, tx pgx.Tx, clientID, lotID string) (decimal.Decimal, error) {
	args := m.Called(ctx, tx, clientID, lotID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock NotificationRepository ---
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID, recipientID string) error {
	return m.Called(ctx, notificationID, recipientID).Error(0)
}

func (m *MockNotificationRepository) ListNotificationsByRecipient(ctx context.Context, recipientType, recipientID string, limit, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, recipientType, recipientID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

// --- Mock ActivityLogRepository ---
type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) SaveActivityLog(ctx context.Context, entry domain.ActivityLog) error {
	return m.Called(ctx, entry).Error(0)
}

// --- Mock TransactionManager ---
// Transactions are passed through untouched, so a nil pgx.Tx is enough.
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// --- Mock gateways ---
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, bucket, objectPath, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, bucket, objectPath, contentType, data)
	return args.String(0), args.Error(1)
}

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) RenderInvoice(ctx context.Context, doc domain.InvoiceDocument) ([]byte, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRenderer) RenderCertificate(ctx context.Context, doc domain.CertificateDocument) ([]byte, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, email gateways.Email) error {
	return m.Called(ctx, email).Error(0)
}

type MockLocker struct {
	mock.Mock
}

func (m *MockLocker) Obtain(ctx context.Context, key string, ttl time.Duration) (gateways.Releaser, error) {
	args := m.Called(ctx, key, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(gateways.Releaser), args.Error(1)
}

type MockReleaser struct {
	mock.Mock
}

func (m *MockReleaser) Release(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var fixedNow = time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }
