package email

import (
	"context"

	"github.com/muhammadheryan/hoardspace/utils/logger"
	"go.uber.org/zap"
)

// logSender writes emails to the log instead of delivering them.
type logSender struct {
	appURL string
}

func NewLogSender(appURL string) Sender {
	return &logSender{appURL: appURL}
}

func (s *logSender) SendVerificationCode(ctx context.Context, to, code string) error {
	msg := verificationMessage(code)
	logger.Info("[email] delivery disabled, logging message",
		zap.String("to", to),
		zap.String("subject", msg.Subject),
		zap.String("code", code),
	)
	return nil
}

func (s *logSender) SendWelcome(ctx context.Context, to, name string) error {
	msg := welcomeMessage(name, s.appURL)
	logger.Info("[email] delivery disabled, logging message",
		zap.String("to", to),
		zap.String("subject", msg.Subject),
	)
	return nil
}
