package services

import (
	"fmt"

	"github.com/endfield/backend/internal/config"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	cfg *config.Config
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{cfg: cfg}
}

// Enabled reports whether outgoing mail is configured at all
func (s *EmailService) Enabled() bool {
	return s.cfg.SMTPHost != ""
}

// SendApprovalNotification tells an applicant their application was approved
// and which operator code they were assigned
func (s *EmailService) SendApprovalNotification(to, code string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.SMTPFrom, s.cfg.SMTPFromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your operator application was approved")
	m.SetBody("text/plain", fmt.Sprintf(
		"Your application has been approved.\n\nOperator code: %s\n\nYou can sign in at %s\n",
		code, s.cfg.FrontendURL))

	d := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.SMTPUsername, s.cfg.SMTPPassword)
	return d.DialAndSend(m)
}
