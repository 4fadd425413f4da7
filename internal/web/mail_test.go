package web

import (
	"context"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/config"
)

func TestSMTPMailerNotConfigured(t *testing.T) {
	m := NewSMTPMailer(config.SMTP{Host: "smtp.example.com", Port: "587"})
	err := m.Send(context.Background(), ContactForm{Name: "a", Email: "a@b.c", Message: "hi"})
	assert.ErrorIs(t, err, ErrMailerNotConfigured)
}

func TestSMTPMailerSend(t *testing.T) {
	cfg := config.SMTP{Host: "smtp.example.com", Port: "587", User: "me@example.com", Pass: "pw", To: "inbox@example.com"}
	m := NewSMTPMailer(cfg)

	var gotAddr string
	var gotTo []string
	var gotMsg []byte
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, msg
		assert.Equal(t, "me@example.com", from)
		return nil
	}

	err := m.Send(context.Background(), ContactForm{
		Name:    "Eve\r\nBcc: victim@example.com",
		Email:   "eve@example.com",
		Message: "hello there",
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"inbox@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Portfolio Contact: Eve  Bcc: victim@example.com\r\n")
	assert.NotContains(t, string(gotMsg), "\r\nBcc:")
	assert.Contains(t, string(gotMsg), "hello there")
}
