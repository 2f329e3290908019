package account

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/hoardspace/constant"
	"github.com/muhammadheryan/hoardspace/model"
	"github.com/muhammadheryan/hoardspace/utils/errors"
	"github.com/muhammadheryan/hoardspace/utils/logger"
	"go.uber.org/zap"
)

const oauthStateTTL = 10 * time.Minute

// GoogleAuthURL returns the consent URL with a fresh state bound in redis.
func (s *AccountAppImpl) GoogleAuthURL(ctx context.Context) (string, error) {
	if s.identity == nil || !s.identity.Configured() {
		return "", errors.SetCustomError(constant.ErrOAuthNotConfigured)
	}

	state := uuid.NewString()
	if err := s.redisRepo.SetOAuthState(ctx, state, oauthStateTTL); err != nil {
		logger.Error("[GoogleAuthURL] err redisRepo.SetOAuthState", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	return s.identity.AuthCodeURL(state), nil
}

// GoogleCallback links or creates the account behind a Google identity and
// starts a session. An existing local account becomes a Google account.
func (s *AccountAppImpl) GoogleCallback(ctx context.Context, state, code string) (*model.AuthResult, error) {
	if s.identity == nil || !s.identity.Configured() {
		return nil, errors.SetCustomError(constant.ErrOAuthNotConfigured)
	}
	if state == "" || code == "" {
		return nil, errors.SetCustomError(constant.ErrOAuthFailed)
	}

	ok, err := s.redisRepo.ConsumeOAuthState(ctx, state)
	if err != nil {
		logger.Error("[GoogleCallback] err redisRepo.ConsumeOAuthState", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrOAuthFailed)
	}
	if !ok {
		return nil, errors.SetCustomError(constant.ErrOAuthFailed)
	}

	ident, err := s.identity.Exchange(ctx, code)
	if err != nil {
		logger.Error("[GoogleCallback] err identity.Exchange", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrOAuthFailed)
	}

	emailAddr := normalizeEmail(ident.Email)
	acc, err := s.accountRepo.Get(ctx, &model.AccountFilter{Email: emailAddr})
	if err != nil {
		logger.Error("[GoogleCallback] err accountRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if acc == nil && ident.Subject != "" {
		acc, err = s.accountRepo.Get(ctx, &model.AccountFilter{GoogleID: ident.Subject})
		if err != nil {
			logger.Error("[GoogleCallback] err accountRepo.Get google id", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if acc != nil {
		update := &model.AccountUpdate{}
		if acc.GoogleID == "" {
			acc.GoogleID = ident.Subject
			update.GoogleID = &acc.GoogleID
		}
		if acc.Image == "" && ident.Picture != "" {
			acc.Image = ident.Picture
			update.Image = &acc.Image
		}
		acc.EmailVerified = true
		update.EmailVerified = &acc.EmailVerified
		if acc.AuthProvider == constant.AuthProviderLocal {
			acc.AuthProvider = constant.AuthProviderGoogle
			update.AuthProvider = &acc.AuthProvider
		}
		if err := s.accountRepo.Update(ctx, acc.ID, update); err != nil {
			logger.Error("[GoogleCallback] err accountRepo.Update", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	} else {
		name := ident.Name
		if name == "" {
			name, _, _ = strings.Cut(emailAddr, "@")
		}
		acc, err = s.accountRepo.Create(ctx, &model.AccountEntity{
			Name:          name,
			Email:         emailAddr,
			GoogleID:      ident.Subject,
			Image:         ident.Picture,
			Role:          constant.RoleBuyer,
			AuthProvider:  constant.AuthProviderGoogle,
			EmailVerified: true,
			KYCStatus:     constant.KYCStatusNotSubmitted,
		})
		if err != nil {
			logger.Error("[GoogleCallback] err accountRepo.Create", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	return s.startSession(ctx, acc, "Login successful")
}
