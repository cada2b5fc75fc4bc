package email

import (
	"gopkg.in/gomail.v2"

	"github.com/Mithil2603/machinery-backend/internal/config"
)

// SMTPProvider sends mail through the SMTP relay from the configuration.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.cfg.Email.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUser,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}
