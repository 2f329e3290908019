package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/muhammadheryan/hoardspace/cmd/config"
	"github.com/muhammadheryan/hoardspace/constant"
	"github.com/muhammadheryan/hoardspace/model"
	otprepo "github.com/muhammadheryan/hoardspace/repository/otp"
	"github.com/muhammadheryan/hoardspace/utils/errors"
	"github.com/muhammadheryan/hoardspace/utils/logger"
	"go.uber.org/zap"
)

var codeUpperBound = big.NewInt(1_000_000)

// OTPApp owns the one-time code lifecycle: at most one usable code per
// (channel, target, purpose), single use, channel-specific expiry.
type OTPApp interface {
	Issue(ctx context.Context, target model.OTPTarget, purpose constant.OTPPurpose) (string, error)
	Resend(ctx context.Context, target model.OTPTarget, purpose constant.OTPPurpose) (string, error)
	Verify(ctx context.Context, target model.OTPTarget, purpose constant.OTPPurpose, code string) (bool, error)
	Consume(ctx context.Context, target model.OTPTarget, purpose constant.OTPPurpose) error
	PurgeExpired(ctx context.Context) (int64, error)
}

type Option func(*otpAppImpl)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *otpAppImpl) {
		s.now = now
	}
}

// WithCodeGenerator replaces the random code source.
func WithCodeGenerator(gen func() (string, error)) Option {
	return func(s *otpAppImpl) {
		s.generate = gen
	}
}

type otpAppImpl struct {
	config   *config.Config
	otpRepo  otprepo.OTPRepository
	now      func() time.Time
	generate func() (string, error)
}

func NewOTPApp(config *config.Config, otpRepo otprepo.OTPRepository, opts ...Option) OTPApp {
	s := &otpAppImpl{
		config:   config,
		otpRepo:  otpRepo,
		now:      time.Now,
		generate: GenerateCode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateCode returns a uniformly random 6-digit decimal string.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeUpperBound)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (s *otpAppImpl) Issue(ctx context.Context, target model.OTPTarget, purpose constant.OTPPurpose) (string, error) {
	code, err := s.generate()
	if err != nil {
		logger.Error("[Issue] err generate code", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	filter := newFilter(target, purpose)
	if err := s.otpRepo.Delete(ctx, filter); err != nil {
		logger.Error("[Issue] err otpRepo.Delete", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	now := s.now().UTC()
	_, err = s.otpRepo.Create(ctx, &model.OTPEntity{
		Channel:   target.Channel,
		Target:    target.Value,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: now.Add(s.expiration(target.Channel)),
		CreatedAt: now,
	})
	if err != nil {
		logger.Error("[Issue] err otpRepo.Create", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	return code, nil
}

// Resend issues a fresh code unless the latest one for the pair is younger than the cooldown.
func (s *otpAppImpl) Resend(ctx context.Context, target model.OTPTarget, purpose constant.OTPPurpose) (string, error) {
	latest, err := s.otpRepo.GetLatest(ctx, newFilter(target, purpose))
	if err != nil {
		logger.Error("[Resend] err otpRepo.GetLatest", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	if latest != nil && s.now().Sub(latest.CreatedAt) < s.cooldown() {
		return "", errors.SetCustomError(constant.ErrOTPCooldown)
	}

	return s.Issue(ctx, target, purpose)
}

func (s *otpAppImpl) Verify(ctx context.Context, target model.OTPTarget, purpose constant.OTPPurpose, code string) (bool, error) {
	filter := newFilter(target, purpose)
	filter.Code = code

	record, err := s.otpRepo.GetByCode(ctx, filter)
	if err != nil {
		logger.Error("[Verify] err otpRepo.GetByCode", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if record == nil {
		return false, nil
	}

	return record.ExpiresAt.After(s.now()), nil
}

func (s *otpAppImpl) Consume(ctx context.Context, target model.OTPTarget, purpose constant.OTPPurpose) error {
	if err := s.otpRepo.Delete(ctx, newFilter(target, purpose)); err != nil {
		logger.Error("[Consume] err otpRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *otpAppImpl) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.otpRepo.DeleteExpired(ctx, s.now().UTC())
	if err != nil {
		logger.Error("[PurgeExpired] err otpRepo.DeleteExpired", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return n, nil
}

func (s *otpAppImpl) expiration(channel constant.OTPChannel) time.Duration {
	if channel == constant.OTPChannelPhone {
		if s.config.OTP.PhoneExpiration > 0 {
			return s.config.OTP.PhoneExpiration
		}
		return 10 * time.Minute
	}
	if s.config.OTP.EmailExpiration > 0 {
		return s.config.OTP.EmailExpiration
	}
	return 15 * time.Minute
}

func (s *otpAppImpl) cooldown() time.Duration {
	if s.config.OTP.ResendCooldown > 0 {
		return s.config.OTP.ResendCooldown
	}
	return time.Minute
}

func newFilter(target model.OTPTarget, purpose constant.OTPPurpose) *model.OTPFilter {
	return &model.OTPFilter{
		Channel: target.Channel,
		Target:  target.Value,
		Purpose: purpose,
	}
}
