package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/memorial_park_app/internal/apperrors"
	portsrepo "github.com/SscSPs/memorial_park_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/memorial_park_app/internal/core/ports/services"
)

type documentEmailService struct {
	BaseService
	clientRepo  portsrepo.ClientReader
	paymentRepo portsrepo.PaymentReader
	documents   portssvc.DocumentIssuerSvc
	notifier    portssvc.NotifierSvc
}

func NewDocumentEmailService(
	clientRepo portsrepo.ClientReader,
	paymentRepo portsrepo.PaymentReader,
	documents portssvc.DocumentIssuerSvc,
	notifier portssvc.NotifierSvc,
	options ...ServiceOption,
) portssvc.DocumentEmailSvc {
	return &documentEmailService{
		BaseService: newBaseService(options...),
		clientRepo:  clientRepo,
		paymentRepo: paymentRepo,
		documents:   documents,
		notifier:    notifier,
	}
}

var _ portssvc.DocumentEmailSvc = (*documentEmailService)(nil)

func (s *documentEmailService) SendClientDocuments(ctx context.Context, clientID string) error {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return apperrors.Validationf("clientId is required")
	}

	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFoundf("Client not found")
		}
		s.LogError(ctx, err, "Failed to load client", slog.String("client_id", clientID))
		return fmt.Errorf("failed to load client: %w", err)
	}
	if strings.TrimSpace(client.Email) == "" {
		return apperrors.Validationf("Client has no email address")
	}

	links := portssvc.DocumentLinks{ClientName: client.Name, Email: client.Email}

	payment, err := s.paymentRepo.FindLatestInvoicedPayment(ctx, clientID)
	switch {
	case err == nil:
		links.InvoiceURL = payment.InvoicePDFURL
		links.ReferenceNumber = payment.ReferenceNumber
	case errors.Is(err, apperrors.ErrNotFound):
	default:
		s.LogError(ctx, err, "Failed to load latest invoice", slog.String("client_id", clientID))
		return fmt.Errorf("failed to load latest invoice: %w", err)
	}

	certificate, err := s.documents.EnsureCertificate(ctx, clientID)
	if err != nil {
		s.LogWarn(ctx, "No certificate available for client", slog.String("client_id", clientID), slog.String("error", err.Error()))
	} else {
		links.ContractURL = certificate.URL
	}

	if !links.HasAny() {
		return apperrors.NotFoundf("No documents available")
	}

	if err := s.notifier.EmailDocuments(ctx, links); err != nil {
		s.LogError(ctx, err, "Failed to email documents", slog.String("client_id", clientID))
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
