package email

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"

	sharedConfig "github.com/vnstore/paycore/internal/shared/config"
)

var ErrEmailServiceNotConfigured = errors.New("email service not configured")

// Sender delivers one message with plain and HTML alternatives.
type Sender interface {
	Send(to, subject, htmlBody, plainBody string) error
}

type SMTPEmailService struct {
	config sharedConfig.EmailConfig
	dialer *gomail.Dialer
}

var _ Sender = (*SMTPEmailService)(nil)

func NewSMTPEmailService(config sharedConfig.EmailConfig) (*SMTPEmailService, error) {
	if config.SMTPHost == "" || config.FromAddress == "" {
		return nil, ErrEmailServiceNotConfigured
	}
	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}, nil
}

func (s *SMTPEmailService) Send(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
