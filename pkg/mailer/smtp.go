package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"inventory-backend/pkg/utils"
)

// SMTPMailer sends mail over plain SMTP with optional STARTTLS and auth.
// validity is the reset-link lifetime quoted in the message body.
type SMTPMailer struct {
	config   utils.EmailConfig
	validity time.Duration
	timeout  time.Duration
}

func NewSMTPMailer(config utils.EmailConfig, validity time.Duration) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		validity: validity,
		timeout:  30 * time.Second,
	}
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, resetLink string) (string, error) {
	msg := m.buildMessage(to, resetLink)

	if err := m.send(ctx, to, msg); err != nil {
		return "", fmt.Errorf("send reset email to %s: %w", to, err)
	}

	return "", nil
}

func (m *SMTPMailer) buildMessage(to, resetLink string) string {
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("From: %s\r\n", m.config.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString("Subject: Password Reset Request\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString("<p>You requested a password reset.</p>\r\n")
	msg.WriteString(fmt.Sprintf(
		"<p>Click <a href=%q>here</a> to reset your password. The link expires in %s.</p>\r\n",
		resetLink, expiryText(m.validity)))

	return msg.String()
}

func expiryText(validity time.Duration) string {
	if validity >= time.Hour && validity%time.Hour == 0 {
		hours := int(validity / time.Hour)
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%d minutes", int(validity/time.Minute))
}

// send dials with the context so the request timeout bounds the whole call.
func (m *SMTPMailer) send(ctx context.Context, to, msg string) error {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	dialer := &net.Dialer{Timeout: m.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial smtp %s: %w", addr, err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	} else {
		conn.SetDeadline(time.Now().Add(m.timeout))
	}

	client, err := smtp.NewClient(conn, m.config.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.config.Host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}

	if m.config.User != "" {
		auth := smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(m.config.From); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		w.Close()
		return fmt.Errorf("smtp write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close body: %w", err)
	}

	return client.Quit()
}
