package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	"github.com/SscSPs/memorial_park_app/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/memorial_park_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/memorial_park_app/internal/core/ports/services"
	"github.com/SscSPs/memorial_park_app/internal/utils"
)

const (
	pdfContentType          = "application/pdf"
	templateCertificateName = "template-certificate.pdf"

	fallbackFieldsIncomplete = "fields_incomplete"
	fallbackGenerationFailed = "generation_failed"
)

// DocumentSettings are the storage locations and labels used when issuing documents.
type DocumentSettings struct {
	OrganizationName        string
	InvoiceBucket           string
	ContractBucket          string
	CertificateTemplatePath string
}

type documentService struct {
	BaseService
	settings     DocumentSettings
	clientRepo   portsrepo.ClientRepositoryFacade
	paymentRepo  portsrepo.PaymentWriter
	storage      gateways.ObjectStorage
	renderer     gateways.PDFRenderer
	readTemplate func(path string) ([]byte, error)
}

// DocumentOption configures the document service.
type DocumentOption func(*documentService)

// WithTemplateReader replaces how the fallback certificate template is read.
func WithTemplateReader(read func(path string) ([]byte, error)) DocumentOption {
	return func(s *documentService) {
		s.readTemplate = read
	}
}

// WithDocumentClock overrides the time source.
func WithDocumentClock(option ServiceOption) DocumentOption {
	return func(s *documentService) {
		option(&s.BaseService)
	}
}

func NewDocumentService(
	settings DocumentSettings,
	clientRepo portsrepo.ClientRepositoryFacade,
	paymentRepo portsrepo.PaymentWriter,
	storage gateways.ObjectStorage,
	renderer gateways.PDFRenderer,
	options ...DocumentOption,
) portssvc.DocumentIssuerSvc {
	svc := &documentService{
		settings:     settings,
		clientRepo:   clientRepo,
		paymentRepo:  paymentRepo,
		storage:      storage,
		renderer:     renderer,
		readTemplate: os.ReadFile,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DocumentIssuerSvc = (*documentService)(nil)

func (s *documentService) IssueInvoice(ctx context.Context, req portssvc.InvoiceRequest) (*domain.IssuedDocument, error) {
	now := s.Now()
	number := utils.InvoiceNumber(now)

	doc := domain.InvoiceDocument{
		OrganizationName: s.settings.OrganizationName,
		InvoiceNumber:    number,
		IssuedAt:         now,
		ReferenceNumber:  req.Payment.ReferenceNumber,
		ClientName:       req.Client.Name,
		ClientEmail:      req.Client.Email,
		LotNumber:        req.Lot.LotNumber,
		LotType:          req.Lot.LotType,
		SectionName:      req.Lot.SectionName,
		LotPrice:         req.Lot.Price,
		Amount:           req.Payment.Amount,
		AmountInWords:    utils.AmountInWords(req.Payment.Amount),
		PaymentType:      req.Payment.PaymentType,
		PaymentMethod:    req.Payment.PaymentMethod,
		PaymentStatus:    string(req.Payment.PaymentStatus),
		CashierName:      req.CashierName,
		Notes:            req.Payment.Notes,
		AgreementText:    req.Payment.AgreementText,
	}
	if req.RemainingBalance != nil {
		doc.RemainingBalance = *req.RemainingBalance
		doc.BalanceKnown = true
	}

	pdf, err := s.renderer.RenderInvoice(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}

	path := fmt.Sprintf("cashier-payments/%s/%s.pdf", req.Client.ID, number)
	url, err := s.storage.Upload(ctx, s.settings.InvoiceBucket, path, pdfContentType, pdf)
	if err != nil {
		return nil, fmt.Errorf("failed to upload invoice: %w", err)
	}

	if err := s.paymentRepo.UpdatePaymentInvoice(ctx, req.Payment.ID, number, url, req.Payment.AgreementText, now); err != nil {
		return nil, fmt.Errorf("failed to link invoice to payment: %w", err)
	}

	s.LogInfo(ctx, "Invoice issued", slog.String("payment_id", req.Payment.ID), slog.String("invoice_number", number))
	return &domain.IssuedDocument{
		Kind:   domain.DocumentInvoice,
		Number: number,
		Bucket: s.settings.InvoiceBucket,
		Path:   path,
		URL:    url,
	}, nil
}

func (s *documentService) EnsureCertificate(ctx context.Context, clientID string) (*domain.IssuedDocument, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load client for certificate: %w", err)
	}
	if client.ContractPDFURL != "" {
		return &domain.IssuedDocument{Kind: domain.DocumentCertificate, URL: client.ContractPDFURL}, nil
	}

	reason := fallbackFieldsIncomplete
	if client.ContractFields.Complete() {
		doc, err := s.issueCertificate(ctx, client)
		if err == nil {
			return doc, nil
		}
		s.LogError(ctx, err, "Certificate generation failed", slog.String("client_id", clientID))
		reason = fallbackGenerationFailed
	}

	// The template is linked even when contract details are incomplete.
	s.LogWarn(ctx, "Linking template certificate",
		slog.String("client_id", clientID),
		slog.String("reason", reason))
	return s.linkTemplateCertificate(ctx, client.ID)
}

func (s *documentService) issueCertificate(ctx context.Context, client *domain.Client) (*domain.IssuedDocument, error) {
	now := s.Now()
	number := utils.CertificateNumber(now, client.ID)

	pdf, err := s.renderer.RenderCertificate(ctx, domain.CertificateDocument{
		OrganizationName:   s.settings.OrganizationName,
		CertificateNumber:  number,
		IssuedAt:           now,
		ClientName:         client.Name,
		Section:            client.Section,
		Block:              client.Block,
		LotNumber:          client.LotNumber,
		LotType:            client.LotType,
		SignedAt:           *client.SignedAt,
		AuthorizedBy:       client.AuthorizedBy,
		AuthorizedPosition: client.AuthorizedPosition,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render certificate: %w", err)
	}

	path := fmt.Sprintf("contracts/%s/%s.pdf", client.ID, number)
	doc, err := s.uploadCertificate(ctx, client.ID, path, pdf)
	if err != nil {
		return nil, err
	}
	doc.Number = number

	s.LogInfo(ctx, "Certificate of ownership issued", slog.String("client_id", client.ID), slog.String("certificate_number", number))
	return doc, nil
}

func (s *documentService) linkTemplateCertificate(ctx context.Context, clientID string) (*domain.IssuedDocument, error) {
	pdf, err := s.readTemplate(s.settings.CertificateTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate template %s: %w", s.settings.CertificateTemplatePath, err)
	}

	doc, err := s.uploadCertificate(ctx, clientID, fmt.Sprintf("contracts/%s/%s", clientID, templateCertificateName), pdf)
	if err != nil {
		return nil, err
	}
	doc.Template = true
	return doc, nil
}

func (s *documentService) uploadCertificate(ctx context.Context, clientID, path string, pdf []byte) (*domain.IssuedDocument, error) {
	url, err := s.storage.Upload(ctx, s.settings.ContractBucket, path, pdfContentType, pdf)
	if err != nil {
		return nil, fmt.Errorf("failed to upload certificate: %w", err)
	}
	if err := s.clientRepo.UpdateContractPDFURL(ctx, clientID, url, s.Now()); err != nil {
		return nil, fmt.Errorf("failed to link certificate to client: %w", err)
	}
	return &domain.IssuedDocument{
		Kind:   domain.DocumentCertificate,
		Bucket: s.settings.ContractBucket,
		Path:   path,
		URL:    url,
	}, nil
}
