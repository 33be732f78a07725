// Package mailer sends the booking confirmation emails over SMTP using
// the credentials from the application config.
package mailer

import (
	"fmt"
	"net/smtp"

	"booking-console/pkg/utils"

	"go.uber.org/zap"
)

// Mailer delivers one HTML message. Implementations must be safe for
// concurrent use; confirmation sends run on their own goroutine.
type Mailer interface {
	Send(to, subject, html string) error
}

type smtpMailer struct {
	host string
	port int
	user string
	pass string
	from string
	log  *zap.Logger
}

func NewSMTPMailer(config *utils.Config, log *zap.Logger) Mailer {
	return &smtpMailer{
		host: config.Email.Host,
		port: config.Email.Port,
		user: config.Email.User,
		pass: config.Email.Password,
		from: config.Email.From,
		log:  log.With(zap.String("component", "mailer")),
	}
}

func (m *smtpMailer) Send(to, subject, html string) error {
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	msg := []byte("From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		html + "\r\n")

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		m.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	m.log.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
