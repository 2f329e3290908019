package account

import (
	"context"
	"crypto/subtle"
	stderrors "errors"
	"strings"
	"time"

	otpapp "github.com/muhammadheryan/hoardspace/application/otp"
	tokenapp "github.com/muhammadheryan/hoardspace/application/token"
	"github.com/muhammadheryan/hoardspace/cmd/config"
	"github.com/muhammadheryan/hoardspace/constant"
	"github.com/muhammadheryan/hoardspace/model"
	accountrepo "github.com/muhammadheryan/hoardspace/repository/account"
	redisrepo "github.com/muhammadheryan/hoardspace/repository/redis"
	"github.com/muhammadheryan/hoardspace/thirdparty/email"
	"github.com/muhammadheryan/hoardspace/thirdparty/google"
	"github.com/muhammadheryan/hoardspace/thirdparty/sms"
	"github.com/muhammadheryan/hoardspace/utils/errors"
	"github.com/muhammadheryan/hoardspace/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const welcomeEmailTimeout = 30 * time.Second

type AccountApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResult, error)
	VerifyEmail(ctx context.Context, req *model.VerifyEmailRequest) (*model.AuthResult, error)
	ResendOTP(ctx context.Context, req *model.ResendOTPRequest) (*model.MessageResponse, error)
	SubmitKYC(ctx context.Context, accountID uint64, req *model.KYCRequest) (*model.KYCResponse, error)
	VerifyPhone(ctx context.Context, accountID uint64, req *model.VerifyPhoneRequest) (*model.MessageResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*model.AuthResult, error)
	Logout(ctx context.Context, accessToken string) (*model.MessageResponse, error)
	Me(ctx context.Context, accountID uint64) (*model.AccountProfile, error)
	ValidateToken(ctx context.Context, accessToken string) (*model.AccessTokenPayload, error)
	GoogleAuthURL(ctx context.Context) (string, error)
	GoogleCallback(ctx context.Context, state, code string) (*model.AuthResult, error)
}

type Option func(*AccountAppImpl)

// WithRunner replaces the goroutine launcher used for fire-and-forget work.
func WithRunner(run func(func())) Option {
	return func(s *AccountAppImpl) {
		s.run = run
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *AccountAppImpl) {
		s.now = now
	}
}

type AccountAppImpl struct {
	config      *config.Config
	accountRepo accountrepo.AccountRepository
	redisRepo   redisrepo.Repository
	otpApp      otpapp.OTPApp
	tokenApp    tokenapp.TokenApp
	mailer      email.Sender
	texter      sms.Sender
	identity    google.IdentityProvider
	run         func(func())
	now         func() time.Time
}

func NewAccountApp(
	config *config.Config,
	accountRepo accountrepo.AccountRepository,
	redisRepo redisrepo.Repository,
	otpApp otpapp.OTPApp,
	tokenApp tokenapp.TokenApp,
	mailer email.Sender,
	texter sms.Sender,
	identity google.IdentityProvider,
	opts ...Option,
) AccountApp {
	s := &AccountAppImpl{
		config:      config,
		accountRepo: accountRepo,
		redisRepo:   redisRepo,
		otpApp:      otpApp,
		tokenApp:    tokenApp,
		mailer:      mailer,
		texter:      texter,
		identity:    identity,
		run:         func(f func()) { go f() },
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AccountAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	emailAddr := normalizeEmail(req.Email)

	existing, err := s.accountRepo.Get(ctx, &model.AccountFilter{Email: emailAddr})
	if err != nil {
		logger.Error("[Register] err accountRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil && existing.EmailVerified {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	hash := string(hashedPassword)

	role := req.Role
	if role == "" {
		role = constant.RoleBuyer
	}

	if existing != nil {
		// unverified accounts can be re-registered with fresh details
		err = s.accountRepo.Update(ctx, existing.ID, &model.AccountUpdate{
			Name:         &req.Name,
			PasswordHash: &hash,
			Role:         &role,
		})
		if err != nil {
			logger.Error("[Register] err accountRepo.Update", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	} else {
		_, err = s.accountRepo.Create(ctx, &model.AccountEntity{
			Name:         req.Name,
			Email:        emailAddr,
			PasswordHash: hash,
			Role:         role,
			AuthProvider: constant.AuthProviderLocal,
			KYCStatus:    constant.KYCStatusNotSubmitted,
		})
		if err != nil {
			if stderrors.Is(err, accountrepo.ErrDuplicateEmail) {
				return nil, errors.SetCustomError(constant.ErrCredentialExists)
			}
			logger.Error("[Register] err accountRepo.Create", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	code, err := s.otpApp.Issue(ctx, model.EmailTarget(emailAddr), constant.OTPPurposeVerification)
	if err != nil {
		return nil, err
	}
	if err := s.mailer.SendVerificationCode(ctx, emailAddr, code); err != nil {
		logger.Error("[Register] err mailer.SendVerificationCode", zap.String("error", err.Error()))
	}

	return &model.RegisterResponse{
		Message:              "Registration successful. Please check your email for the verification code.",
		Email:                emailAddr,
		VerificationRequired: true,
	}, nil
}

func (s *AccountAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResult, error) {
	emailAddr := normalizeEmail(req.Email)

	acc, err := s.accountRepo.Get(ctx, &model.AccountFilter{Email: emailAddr})
	if err != nil {
		logger.Error("[Login] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	// google-only accounts have no password
	if acc == nil || acc.PasswordHash == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	if !acc.EmailVerified {
		code, err := s.otpApp.Issue(ctx, model.EmailTarget(acc.Email), constant.OTPPurposeVerification)
		if err != nil {
			return nil, err
		}
		if err := s.mailer.SendVerificationCode(ctx, acc.Email, code); err != nil {
			logger.Error("[Login] err mailer.SendVerificationCode", zap.String("error", err.Error()))
		}
		return nil, errors.SetCustomErrorWithData(constant.ErrEmailNotVerified, &model.EmailVerificationRequired{
			RequiresEmailVerification: true,
			Email:                     acc.Email,
		})
	}

	return s.startSession(ctx, acc, "Login successful")
}

// Refresh issues a new access token. The refresh token itself is not rotated.
func (s *AccountAppImpl) Refresh(ctx context.Context, refreshToken string) (*model.AuthResult, error) {
	payload, ok := s.tokenApp.VerifyRefreshToken(refreshToken)
	if !ok {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrUnauthorize, "Invalid refresh token")
	}

	acc, err := s.accountRepo.Get(ctx, &model.AccountFilter{ID: payload.AccountID})
	if err != nil {
		logger.Error("[Refresh] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if acc == nil || acc.RefreshToken == "" ||
		subtle.ConstantTimeCompare([]byte(acc.RefreshToken), []byte(refreshToken)) != 1 {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrUnauthorize, "Invalid refresh token")
	}

	if acc.RefreshTokenExpiry != nil && acc.RefreshTokenExpiry.Before(s.now()) {
		if err := s.accountRepo.Update(ctx, acc.ID, &model.AccountUpdate{ClearRefreshToken: true}); err != nil {
			logger.Error("[Refresh] err accountRepo.Update clear", zap.String("error", err.Error()))
		}
		return nil, errors.SetCustomError(constant.ErrRefreshTokenExpired)
	}

	accessToken, accessExp, err := s.tokenApp.IssueAccessToken(acc.ID, acc.Role)
	if err != nil {
		logger.Error("[Refresh] err tokenApp.IssueAccessToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AuthResult{
		Message:              "Token refreshed successfully",
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessExp,
	}, nil
}

// Logout never fails: an invalid or missing token still clears the cookies.
func (s *AccountAppImpl) Logout(ctx context.Context, accessToken string) (*model.MessageResponse, error) {
	if payload, ok := s.tokenApp.VerifyAccessToken(accessToken); ok {
		if err := s.accountRepo.Update(ctx, payload.AccountID, &model.AccountUpdate{ClearRefreshToken: true}); err != nil {
			logger.Error("[Logout] err accountRepo.Update", zap.String("error", err.Error()))
		}
	}
	return &model.MessageResponse{Message: "Logout successful"}, nil
}

func (s *AccountAppImpl) Me(ctx context.Context, accountID uint64) (*model.AccountProfile, error) {
	acc, err := s.getAccount(ctx, "Me", accountID)
	if err != nil {
		return nil, err
	}
	return model.NewAccountProfile(acc), nil
}

func (s *AccountAppImpl) ValidateToken(ctx context.Context, accessToken string) (*model.AccessTokenPayload, error) {
	payload, ok := s.tokenApp.VerifyAccessToken(accessToken)
	if !ok {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrUnauthorize, "Invalid token")
	}
	return payload, nil
}

// startSession issues both tokens and stores the refresh token as the single active one.
func (s *AccountAppImpl) startSession(ctx context.Context, acc *model.AccountEntity, message string) (*model.AuthResult, error) {
	accessToken, accessExp, err := s.tokenApp.IssueAccessToken(acc.ID, acc.Role)
	if err != nil {
		logger.Error("[startSession] err tokenApp.IssueAccessToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	refreshToken, refreshExp, err := s.tokenApp.IssueRefreshToken(acc.ID)
	if err != nil {
		logger.Error("[startSession] err tokenApp.IssueRefreshToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.accountRepo.Update(ctx, acc.ID, &model.AccountUpdate{
		RefreshToken:       &refreshToken,
		RefreshTokenExpiry: &refreshExp,
	})
	if err != nil {
		logger.Error("[startSession] err accountRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AuthResult{
		Message:               message,
		User:                  model.NewAccountProfile(acc),
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}

func (s *AccountAppImpl) getAccount(ctx context.Context, method string, id uint64) (*model.AccountEntity, error) {
	acc, err := s.accountRepo.Get(ctx, &model.AccountFilter{ID: id})
	if err != nil {
		logger.Error("["+method+"] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if acc == nil {
		return nil, errors.SetCustomError(constant.ErrAccountNotFound)
	}
	return acc, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
