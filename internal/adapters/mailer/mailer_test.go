package mailer

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/SscSPs/memorial_park_app/internal/core/ports/gateways"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage_Alternatives(t *testing.T) {
	msg := buildMessage("park@example.com", gateways.Email{
		To:       "ana@example.com",
		Subject:  "Your documents",
		TextBody: "plain body",
		HTMLBody: "<p>html body</p>",
	})

	assert.Equal(t, []string{"park@example.com"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"ana@example.com"}, msg.GetHeader("To"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "multipart/alternative")
	assert.Contains(t, out, "plain body")
	assert.Contains(t, out, "html body")
}

func TestBuildMessage_HTMLOnly(t *testing.T) {
	msg := buildMessage("park@example.com", gateways.Email{To: "a@b.c", Subject: "s", HTMLBody: "<b>x</b>"})

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "text/html")
	assert.False(t, strings.Contains(buf.String(), "multipart/alternative"))
}

func TestSMTPMailer_CancelledContext(t *testing.T) {
	m := NewSMTPMailer("127.0.0.1", 1, "", "", "park@example.com")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Send(ctx, gateways.Email{To: "a@b.c"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogMailer_Send(t *testing.T) {
	var buf bytes.Buffer
	m := NewLogMailer(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, m.Send(context.Background(), gateways.Email{To: "ana@example.com", Subject: "Docs"}))
	assert.Contains(t, buf.String(), "ana@example.com")
}
