package mail

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeHeaderOrder(t *testing.T) {
	raw := string(compose("noreply@travelease.test", Message{
		To:      []string{"ana@example.com", "ops@example.com"},
		ReplyTo: "ana@example.com",
		Subject: "Hello\r\nBcc: evil@example.com",
		Body:    "line one\nline two",
	}))

	assert.Equal(t,
		"From: noreply@travelease.test\r\n"+
			"To: ana@example.com, ops@example.com\r\n"+
			"Subject: Hello  Bcc: evil@example.com\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n"+
			"Reply-To: ana@example.com\r\n"+
			"\r\n"+
			"line one\r\nline two",
		raw,
	)
}

func TestNewWithoutHostLogs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	m := New(Config{}, log)
	require.IsType(t, &LogMailer{}, m)

	require.NoError(t, m.Send(context.Background(), Message{To: []string{"ana@example.com"}, Subject: "Reset"}))
	assert.Contains(t, buf.String(), "subject=Reset")
}

func TestSMTPMailerHonoursCancelledContext(t *testing.T) {
	m := New(Config{Host: "127.0.0.1", Port: 1}, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, m.Send(ctx, Message{To: []string{"a@b.c"}}), context.Canceled)
}
