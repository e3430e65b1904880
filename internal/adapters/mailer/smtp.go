package mailer

import (
	"context"
	"fmt"

	"github.com/SscSPs/memorial_park_app/internal/core/ports/gateways"
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends mail through an SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

var _ gateways.Mailer = (*SMTPMailer)(nil)

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send dials the relay once per message. gomail has no context support, so the
// context is only checked before dialing.
func (m *SMTPMailer) Send(ctx context.Context, email gateways.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(buildMessage(m.from, email)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", email.To, err)
	}
	return nil
}

func buildMessage(from string, email gateways.Email) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", email.Subject)
	if email.TextBody != "" {
		msg.SetBody("text/plain", email.TextBody)
		if email.HTMLBody != "" {
			msg.AddAlternative("text/html", email.HTMLBody)
		}
	} else {
		msg.SetBody("text/html", email.HTMLBody)
	}
	return msg
}
