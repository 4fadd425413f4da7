package web

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"termfolio/internal/config"
)

// ErrMailerNotConfigured is returned when SMTP credentials are missing.
var ErrMailerNotConfigured = errors.New("SMTP credentials not configured")

// ContactForm is the body of POST /api/contact.
type ContactForm struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,max=5000"`
}

// Mailer delivers contact form messages.
type Mailer interface {
	Send(ctx context.Context, form ContactForm) error
}

// SMTPMailer sends through a plain-auth SMTP relay.
type SMTPMailer struct {
	cfg  config.SMTP
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer returns a mailer for cfg.
func NewSMTPMailer(cfg config.SMTP) *SMTPMailer {
	if cfg.To == "" {
		cfg.To = cfg.User
	}
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

func (m *SMTPMailer) Send(ctx context.Context, form ContactForm) error {
	if !m.cfg.Configured() {
		return ErrMailerNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port
	if err := m.send(addr, auth, m.cfg.User, []string{m.cfg.To}, composeMessage(m.cfg, form)); err != nil {
		return fmt.Errorf("send mail via %s: %w", addr, err)
	}
	return nil
}

func composeMessage(cfg config.SMTP, form ContactForm) []byte {
	name := headerSafe(form.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from the termfolio contact form
`, name, headerSafe(form.Email), form.Message)

	return []byte("To: " + cfg.To + "\r\n" +
		"Subject: Portfolio Contact: " + name + "\r\n" +
		"From: " + cfg.User + "\r\n" +
		"Reply-To: " + headerSafe(form.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// headerSafe strips line breaks so user input cannot add headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
