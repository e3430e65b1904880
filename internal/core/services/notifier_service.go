package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	"github.com/SscSPs/memorial_park_app/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/memorial_park_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/memorial_park_app/internal/core/ports/services"
	"github.com/SscSPs/memorial_park_app/internal/utils"
	"github.com/google/uuid"
)

const (
	recipientTypeCashier = "cashier"
	notificationPayment  = "payment"
	actorTypeCashier     = "cashier"
	actionWalkInPayment  = "walk_in_payment"
	categoryPayment      = "payment"
	activityStatusOK     = "success"
)

var documentsEmailTmpl = template.Must(template.New("documents").Parse(`<p>Dear {{.ClientName}},</p>
<p>Thank you for your payment to {{.Organization}}. Reference number: <strong>{{.ReferenceNumber}}</strong>.</p>
<ul>
{{- if .InvoiceURL}}
<li><a href="{{.InvoiceURL}}">Payment invoice</a></li>
{{- end}}
{{- if .ContractURL}}
<li><a href="{{.ContractURL}}">Certificate of ownership</a></li>
{{- end}}
</ul>
<p>{{.Organization}}</p>
`))

var (
	errNoRecipient     = errors.New("no recipient address")
	errNoDocumentLinks = errors.New("no document links to send")
)

type documentsEmailData struct {
	portssvc.DocumentLinks
	Organization string
}

type notifierService struct {
	BaseService
	organization     string
	clientRepo       portsrepo.ClientWriter
	notificationRepo portsrepo.NotificationWriter
	activityRepo     portsrepo.ActivityLogWriter
	mailer           gateways.Mailer
}

func NewNotifierService(
	organization string,
	clientRepo portsrepo.ClientWriter,
	notificationRepo portsrepo.NotificationWriter,
	activityRepo portsrepo.ActivityLogWriter,
	mailer gateways.Mailer,
	options ...ServiceOption,
) portssvc.NotifierSvc {
	return &notifierService{
		BaseService:      newBaseService(options...),
		organization:     organization,
		clientRepo:       clientRepo,
		notificationRepo: notificationRepo,
		activityRepo:     activityRepo,
		mailer:           mailer,
	}
}

var _ portssvc.NotifierSvc = (*notifierService)(nil)

func (s *notifierService) EmailDocuments(ctx context.Context, links portssvc.DocumentLinks) error {
	if strings.TrimSpace(links.Email) == "" {
		return errNoRecipient
	}
	if !links.HasAny() {
		return errNoDocumentLinks
	}

	var html bytes.Buffer
	if err := documentsEmailTmpl.Execute(&html, documentsEmailData{DocumentLinks: links, Organization: s.organization}); err != nil {
		return fmt.Errorf("failed to render email: %w", err)
	}

	email := gateways.Email{
		To:       links.Email,
		Subject:  documentsSubject(s.organization, links.ReferenceNumber),
		HTMLBody: html.String(),
		TextBody: documentsText(s.organization, links),
	}
	if err := s.mailer.Send(ctx, email); err != nil {
		return fmt.Errorf("failed to send documents email: %w", err)
	}

	s.LogInfo(ctx, "Documents emailed", slog.String("to", links.Email), slog.String("reference_number", links.ReferenceNumber))
	return nil
}

func documentsSubject(organization, reference string) string {
	if reference == "" {
		return fmt.Sprintf("Your %s documents", organization)
	}
	return fmt.Sprintf("Your %s documents (Ref %s)", organization, reference)
}

func documentsText(organization string, links portssvc.DocumentLinks) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", links.ClientName)
	fmt.Fprintf(&b, "Thank you for your payment to %s. Reference number: %s.\n\n", organization, links.ReferenceNumber)
	if links.InvoiceURL != "" {
		fmt.Fprintf(&b, "Payment invoice: %s\n", links.InvoiceURL)
	}
	if links.ContractURL != "" {
		fmt.Fprintf(&b, "Certificate of ownership: %s\n", links.ContractURL)
	}
	b.WriteString("\n" + organization + "\n")
	return b.String()
}

func (s *notifierService) NotifyCashier(ctx context.Context, event portssvc.WalkInEvent) error {
	notification := domain.Notification{
		ID:               uuid.NewString(),
		RecipientType:    recipientTypeCashier,
		RecipientID:      event.CashierID,
		Type:             notificationPayment,
		Title:            "Walk-in payment recorded",
		Message:          fmt.Sprintf("%s received from %s", utils.FormatMoney(event.Payment.Amount), clientLabel(event.Client)),
		RelatedPaymentID: event.Payment.ID,
		IsRead:           false,
		Priority:         domain.PriorityNormal,
		CreatedAt:        s.Now(),
	}
	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to save cashier notification: %w", err)
	}
	return nil
}

func (s *notifierService) LogWalkInActivity(ctx context.Context, event portssvc.WalkInEvent) error {
	entry := domain.ActivityLog{
		ID:            uuid.NewString(),
		ActorType:     actorTypeCashier,
		ActorID:       event.CashierID,
		ActorUsername: event.CashierUsername,
		Action:        actionWalkInPayment,
		Details: fmt.Sprintf("Walk-in payment %s of %s via %s",
			event.Payment.ReferenceNumber, utils.FormatMoney(event.Payment.Amount), event.Payment.PaymentMethod),
		Category: categoryPayment,
		Status:   activityStatusOK,
		AffectedResources: []domain.AffectedResource{
			{Type: "payment", ID: event.Payment.ID},
			{Type: "client", ID: event.Client.ID},
			{Type: "lot", ID: event.Lot.ID},
		},
		CreatedAt: s.Now(),
	}
	if err := s.activityRepo.SaveActivityLog(ctx, entry); err != nil {
		return fmt.Errorf("failed to save activity log: %w", err)
	}
	return nil
}

func (s *notifierService) ActivateClient(ctx context.Context, clientID string) error {
	if err := s.clientRepo.UpdateClientStatus(ctx, clientID, domain.ClientStatusActive, s.Now()); err != nil {
		return fmt.Errorf("failed to activate client: %w", err)
	}
	return nil
}

func clientLabel(c domain.ResolvedClient) string {
	if c.Name != "" {
		return c.Name
	}
	if c.Email != "" {
		return c.Email
	}
	return c.ID
}
