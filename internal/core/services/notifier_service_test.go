package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	"github.com/SscSPs/memorial_park_app/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/memorial_park_app/internal/core/ports/services"
	"github.com/SscSPs/memorial_park_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type NotifierServiceTestSuite struct {
	suite.Suite
	clientRepo       *MockClientRepository
	notificationRepo *MockNotificationRepository
	activityRepo     *MockActivityLogRepository
	mailer           *MockMailer
	service          portssvc.NotifierSvc
}

func (suite *NotifierServiceTestSuite) SetupTest() {
	suite.clientRepo = new(MockClientRepository)
	suite.notificationRepo = new(MockNotificationRepository)
	suite.activityRepo = new(MockActivityLogRepository)
	suite.mailer = new(MockMailer)
	suite.service = services.NewNotifierService("Memorial Park", suite.clientRepo, suite.notificationRepo,
		suite.activityRepo, suite.mailer, services.WithClock(fixedClock))
}

func walkInEvent() portssvc.WalkInEvent {
	return portssvc.WalkInEvent{
		Payment: domain.Payment{
			ID: "pay-1", ReferenceNumber: "WALK-ABC-CASHIE", Amount: decimal.NewFromInt(1000), PaymentMethod: "cash",
		},
		Client:          domain.ResolvedClient{ID: "client-1", Name: "Ana Cruz"},
		Lot:             domain.ResolvedLot{ID: "lot-1"},
		CashierID:       "cashier-01",
		CashierUsername: "cashier01",
	}
}

func (suite *NotifierServiceTestSuite) TestEmailDocuments() {
	ctx := context.Background()
	links := portssvc.DocumentLinks{
		ClientName: "Ana Cruz", Email: "ana@example.com", ReferenceNumber: "WALK-ABC-CASHIE",
		InvoiceURL: "https://cdn/invoice.pdf", ContractURL: "https://cdn/cert.pdf",
	}
	suite.mailer.On("Send", ctx, mock.MatchedBy(func(e gateways.Email) bool {
		return e.To == "ana@example.com" &&
			strings.Contains(e.Subject, "WALK-ABC-CASHIE") &&
			strings.Contains(e.HTMLBody, "Ana Cruz") &&
			strings.Contains(e.HTMLBody, "https://cdn/invoice.pdf") &&
			strings.Contains(e.HTMLBody, "https://cdn/cert.pdf") &&
			strings.Contains(e.TextBody, "https://cdn/cert.pdf")
	})).Return(nil).Once()

	err := suite.service.EmailDocuments(ctx, links)

	suite.NoError(err)
	suite.mailer.AssertExpectations(suite.T())
}

func (suite *NotifierServiceTestSuite) TestEmailDocuments_NothingToSend() {
	err := suite.service.EmailDocuments(context.Background(), portssvc.DocumentLinks{Email: "ana@example.com"})

	suite.Error(err)
	suite.mailer.AssertNotCalled(suite.T(), "Send", mock.Anything, mock.Anything)
}

func (suite *NotifierServiceTestSuite) TestEmailDocuments_SendFailure() {
	ctx := context.Background()
	suite.mailer.On("Send", ctx, mock.Anything).Return(errors.New("smtp refused")).Once()

	err := suite.service.EmailDocuments(ctx, portssvc.DocumentLinks{Email: "ana@example.com", InvoiceURL: "u"})

	suite.Error(err)
}

func (suite *NotifierServiceTestSuite) TestNotifyCashier() {
	ctx := context.Background()
	suite.notificationRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.RecipientType == "cashier" && n.RecipientID == "cashier-01" && n.Type == "payment" &&
			n.Title == "Walk-in payment recorded" && n.Message == "1,000.00 received from Ana Cruz" &&
			n.RelatedPaymentID == "pay-1" && !n.IsRead && n.Priority == domain.PriorityNormal
	})).Return(nil).Once()

	suite.NoError(suite.service.NotifyCashier(ctx, walkInEvent()))
	suite.notificationRepo.AssertExpectations(suite.T())
}

func (suite *NotifierServiceTestSuite) TestLogWalkInActivity() {
	ctx := context.Background()
	suite.activityRepo.On("SaveActivityLog", ctx, mock.MatchedBy(func(a domain.ActivityLog) bool {
		return a.ActorType == "cashier" && a.ActorID == "cashier-01" && a.ActorUsername == "cashier01" &&
			a.Action == "walk_in_payment" && a.Category == "payment" && a.Status == "success" &&
			strings.Contains(a.Details, "WALK-ABC-CASHIE") &&
			len(a.AffectedResources) == 3 &&
			a.AffectedResources[0] == domain.AffectedResource{Type: "payment", ID: "pay-1"} &&
			a.AffectedResources[1] == domain.AffectedResource{Type: "client", ID: "client-1"} &&
			a.AffectedResources[2] == domain.AffectedResource{Type: "lot", ID: "lot-1"}
	})).Return(nil).Once()

	suite.NoError(suite.service.LogWalkInActivity(ctx, walkInEvent()))
	suite.activityRepo.AssertExpectations(suite.T())
}

func (suite *NotifierServiceTestSuite) TestActivateClient() {
	ctx := context.Background()
	suite.clientRepo.On("UpdateClientStatus", ctx, "client-1", domain.ClientStatusActive, fixedNow).Return(nil).Once()

	suite.NoError(suite.service.ActivateClient(ctx, "client-1"))
	suite.clientRepo.AssertExpectations(suite.T())
}

func TestNotifierServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotifierServiceTestSuite))
}
