package sms

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/hoardspace/cmd/config"
	"github.com/muhammadheryan/hoardspace/utils/logger"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

type twilioSender struct {
	client      *twilio.RestClient
	from        string
	countryCode string
}

func NewTwilioSender(cfg *config.Config) Sender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.Twilio.AccountSID,
		Password: cfg.Twilio.AuthToken,
	})
	return &twilioSender{
		client:      client,
		from:        cfg.Twilio.FromPhone,
		countryCode: cfg.Twilio.DefaultCountryCode,
	}
}

func (s *twilioSender) SendVerificationCode(ctx context.Context, phone, code string) error {
	to := FormatPhone(phone, s.countryCode)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(verificationText(code))

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio create message: %w", err)
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	logger.Info("[sms] message sent", zap.String("to", to), zap.String("sid", sid))
	return nil
}
