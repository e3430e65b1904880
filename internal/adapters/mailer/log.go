// Package mailer delivers outbound email over SMTP, or only logs it when no relay is configured.
package mailer

import (
	"context"
	"log/slog"

	"github.com/SscSPs/memorial_park_app/internal/core/ports/gateways"
)

// LogMailer records messages instead of sending them.
type LogMailer struct {
	logger *slog.Logger
}

var _ gateways.Mailer = (*LogMailer)(nil)

func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, email gateways.Email) error {
	m.logger.InfoContext(ctx, "Email not sent, no SMTP relay configured",
		slog.String("to", email.To),
		slog.String("subject", email.Subject),
	)
	return nil
}
