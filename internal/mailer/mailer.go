// Package mailer sends transactional email over SMTP.
package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"atelier/internal/middleware"
)

// Config holds SMTP connection settings. Leaving Host or Username empty
// disables delivery; messages are logged instead so development environments
// work without a mail account.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// Mailer sends email through a configured SMTP relay.
type Mailer struct {
	cfg  Config
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// New creates a Mailer with the given configuration.
func New(cfg Config) *Mailer {
	return &Mailer{cfg: cfg, send: smtp.SendMail}
}

// Enabled reports whether SMTP delivery is configured.
func (m *Mailer) Enabled() bool {
	return m.cfg.Host != "" && m.cfg.Username != ""
}

// SendWelcome sends the post-signup welcome email.
func (m *Mailer) SendWelcome(to, firstName string) error {
	subject := "Welcome to Our Platform!"
	body := fmt.Sprintf(
		"Hello %s,\n\nThank you for signing up! We're excited to have you on board.\n\nBest regards,\nThe Portfolio Masters",
		firstName,
	)
	return m.Send(to, subject, body)
}

// Send delivers a plain-text email. When SMTP is not configured the message
// is logged and no error is returned.
func (m *Mailer) Send(to, subject, body string) error {
	if !m.Enabled() {
		middleware.Logger.Info("SMTP not configured, logging email instead",
			slog.String("to", to),
			slog.String("subject", subject),
		)
		middleware.WelcomeEmails.WithLabelValues("logged").Inc()
		return nil
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port

	if err := m.send(addr, auth, from, []string{to}, []byte(msg.String())); err != nil {
		middleware.WelcomeEmails.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	middleware.WelcomeEmails.WithLabelValues("sent").Inc()
	return nil
}

// SendWelcomeAsync dispatches the welcome email on a background goroutine.
// Signup must not block or fail on mail delivery.
func (m *Mailer) SendWelcomeAsync(to, firstName string) {
	go func() {
		if err := m.SendWelcome(to, firstName); err != nil {
			middleware.Logger.Error("welcome email delivery failed",
				slog.String("to", to),
				slog.String("error", err.Error()),
			)
		}
	}()
}
