package email

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/hoardspace/cmd/config"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridSender struct {
	client  *sendgrid.Client
	from    *mail.Email
	sandbox bool
	appURL  string
}

func NewSendGridSender(cfg *config.Config) Sender {
	return &sendGridSender{
		client:  sendgrid.NewSendClient(cfg.SendGrid.APIKey),
		from:    mail.NewEmail(cfg.SendGrid.FromName, cfg.SendGrid.FromEmail),
		sandbox: cfg.SendGrid.SandboxMode,
		appURL:  cfg.App.URL,
	}
}

func (s *sendGridSender) SendVerificationCode(ctx context.Context, to, code string) error {
	return s.send(ctx, to, verificationMessage(code))
}

func (s *sendGridSender) SendWelcome(ctx context.Context, to, name string) error {
	return s.send(ctx, to, welcomeMessage(name, s.appURL))
}

func (s *sendGridSender) send(ctx context.Context, to string, msg message) error {
	message := mail.NewSingleEmail(s.from, msg.Subject, mail.NewEmail("", to), msg.Plain, msg.HTML)
	if s.sandbox {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		message.MailSettings = ms
	}

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
