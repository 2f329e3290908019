package sms

import (
	"context"

	"github.com/muhammadheryan/hoardspace/utils/logger"
	"go.uber.org/zap"
)

type logSender struct {
	countryCode string
}

// NewLogSender returns a Sender that only logs the message.
func NewLogSender(countryCode string) Sender {
	return &logSender{countryCode: countryCode}
}

func (s *logSender) SendVerificationCode(ctx context.Context, phone, code string) error {
	logger.Info("[sms] delivery disabled, logging message",
		zap.String("to", FormatPhone(phone, s.countryCode)),
		zap.String("body", verificationText(code)),
	)
	return nil
}
