package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/logger"
)

// SMTPMailer sends transactional email through a plain SMTP relay. Delivery
// is best-effort; callers must not fail their flow on a send error.
type SMTPMailer struct {
	addr   string
	auth   smtp.Auth
	from   string
	logger *logger.Logger
}

func NewSMTPMailer(host string, port int, username, password, from string, logger *logger.Logger) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &SMTPMailer{
		addr:   fmt.Sprintf("%s:%d", host, port),
		auth:   auth,
		from:   from,
		logger: logger,
	}
}

func (m *SMTPMailer) SendVerificationCode(to, code string) error {
	subject := "Verify your email"
	body := fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code)
	return m.send(to, subject, body)
}

func (m *SMTPMailer) SendPasswordResetCode(to, code string) error {
	subject := "Reset your password"
	body := fmt.Sprintf("Your password reset code is %s. It expires in 10 minutes.", code)
	return m.send(to, subject, body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.from, to, subject, body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	m.logger.Info("Email sent", "to", to, "subject", subject)
	return nil
}

// LogMailer is the fallback when no SMTP relay is configured: codes are
// logged instead of delivered, which keeps local development usable.
type LogMailer struct {
	logger *logger.Logger
}

func NewLogMailer(logger *logger.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendVerificationCode(to, code string) error {
	m.logger.Info("Verification code (email disabled)", "to", to, "code", code)
	return nil
}

func (m *LogMailer) SendPasswordResetCode(to, code string) error {
	m.logger.Info("Password reset code (email disabled)", "to", to, "code", code)
	return nil
}
