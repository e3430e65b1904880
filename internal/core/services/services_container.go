package services

import (
	"github.com/SscSPs/memorial_park_app/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/memorial_park_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/memorial_park_app/internal/core/ports/services"
	"github.com/SscSPs/memorial_park_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, gw gateways.Provider) *portssvc.ServiceContainer {
	documents := NewDocumentService(
		DocumentSettings{
			OrganizationName:        cfg.OrganizationName,
			InvoiceBucket:           cfg.InvoiceBucket,
			ContractBucket:          cfg.ContractBucket,
			CertificateTemplatePath: cfg.CertificateTemplatePath,
		},
		repos.ClientRepo,
		repos.PaymentRepo,
		gw.Storage,
		gw.Renderer,
	)
	notifier := NewNotifierService(cfg.OrganizationName, repos.ClientRepo, repos.NotificationRepo, repos.ActivityLogRepo, gw.Mailer)

	return &portssvc.ServiceContainer{
		Auth: NewAuthService(repos.StaffRepo, TokenSettings{
			Secret: cfg.JWTSecret,
			Expiry: cfg.JWTExpiry,
			Issuer: cfg.JWTIssuer,
		}),
		WalkIn: NewWalkInService(WalkInDeps{
			Clients:   NewClientResolver(repos.ClientRepo),
			Lots:      NewLotResolver(repos.LotRepo),
			Payments:  NewPaymentWriter(repos.PaymentRepo),
			Balances:  NewBalanceService(repos.TxManager, repos.LotRepo, repos.ClientRepo, repos.PaymentRepo),
			Documents: documents,
			Notifier:  notifier,
			ClientDir: repos.ClientRepo,
			Locker:    gw.Locker,
			LockTTL:   cfg.LockTTL,
		}),
		DocumentEmail: NewDocumentEmailService(repos.ClientRepo, repos.PaymentRepo, documents, notifier),
		Payment:       NewPaymentReadService(repos.PaymentRepo),
		Lot:           NewLotReadService(repos.LotRepo),
		Notification:  NewNotificationService(repos.NotificationRepo),
	}
}
