package account_test

import (
	"context"
	"errors"
	"testing"
	"time"

	accountapp "github.com/muhammadheryan/hoardspace/application/account"
	"github.com/muhammadheryan/hoardspace/cmd/config"
	"github.com/muhammadheryan/hoardspace/constant"
	otpmocks "github.com/muhammadheryan/hoardspace/mocks/application/otp"
	tokenmocks "github.com/muhammadheryan/hoardspace/mocks/application/token"
	accountmocks "github.com/muhammadheryan/hoardspace/mocks/repository/account"
	redismocks "github.com/muhammadheryan/hoardspace/mocks/repository/redis"
	emailmocks "github.com/muhammadheryan/hoardspace/mocks/thirdparty/email"
	googlemocks "github.com/muhammadheryan/hoardspace/mocks/thirdparty/google"
	smsmocks "github.com/muhammadheryan/hoardspace/mocks/thirdparty/sms"
	"github.com/muhammadheryan/hoardspace/model"
	accountrepo "github.com/muhammadheryan/hoardspace/repository/account"
	cerr "github.com/muhammadheryan/hoardspace/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

type fields struct {
	config      *config.Config
	accountRepo *accountmocks.AccountRepository
	redisRepo   *redismocks.Repository
	otpApp      *otpmocks.OTPApp
	tokenApp    *tokenmocks.TokenApp
	mailer      *emailmocks.Sender
	texter      *smsmocks.Sender
	identity    *googlemocks.IdentityProvider
}

func newFields(t *testing.T) fields {
	return fields{
		config:      &config.Config{App: config.AppConfig{URL: "http://localhost:3000"}},
		accountRepo: accountmocks.NewAccountRepository(t),
		redisRepo:   redismocks.NewRepository(t),
		otpApp:      otpmocks.NewOTPApp(t),
		tokenApp:    tokenmocks.NewTokenApp(t),
		mailer:      emailmocks.NewSender(t),
		texter:      smsmocks.NewSender(t),
		identity:    googlemocks.NewIdentityProvider(t),
	}
}

func (f fields) app() accountapp.AccountApp {
	return accountapp.NewAccountApp(f.config, f.accountRepo, f.redisRepo, f.otpApp, f.tokenApp, f.mailer, f.texter, f.identity,
		accountapp.WithRunner(func(fn func()) { fn() }),
		accountapp.WithClock(func() time.Time { return fixedNow }),
	)
}

// expectSession mocks the token issuance and refresh token persistence done on every login.
func (f fields) expectSession(accountID uint64, role constant.Role) {
	f.tokenApp.On("IssueAccessToken", accountID, role).Return("access-token", fixedNow.Add(15*time.Minute), nil).Once()
	f.tokenApp.On("IssueRefreshToken", accountID).Return("refresh-token", fixedNow.Add(7*24*time.Hour), nil).Once()
	f.accountRepo.On("Update", mock.Anything, accountID, mock.MatchedBy(func(u *model.AccountUpdate) bool {
		return u.RefreshToken != nil && *u.RefreshToken == "refresh-token" && u.RefreshTokenExpiry != nil
	})).Return(nil).Once()
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.Type() != want {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func hashPassword(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAccountApp_Register(t *testing.T) {
	req := &model.RegisterRequest{Name: "Asha", Email: " A@X.com ", Password: "secret1", Role: constant.RoleVendor}

	tests := []struct {
		name     string
		mockCall func(f fields)
		want     *model.RegisterResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: new account",
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{Email: "a@x.com"}).Return(nil, nil).Once()
				f.accountRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.AccountEntity) bool {
					return e.Email == "a@x.com" && e.Role == constant.RoleVendor &&
						e.AuthProvider == constant.AuthProviderLocal && !e.EmailVerified &&
						e.KYCStatus == constant.KYCStatusNotSubmitted &&
						bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte("secret1")) == nil
				})).Return(&model.AccountEntity{ID: 1}, nil).Once()
				f.otpApp.On("Issue", mock.Anything, model.EmailTarget("a@x.com"), constant.OTPPurposeVerification).Return("123456", nil).Once()
				f.mailer.On("SendVerificationCode", mock.Anything, "a@x.com", "123456").Return(nil).Once()
			},
			want: &model.RegisterResponse{
				Message:              "Registration successful. Please check your email for the verification code.",
				Email:                "a@x.com",
				VerificationRequired: true,
			},
		},
		{
			name: "success: unverified account is refreshed and mail failure is ignored",
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, mock.Anything).Return(&model.AccountEntity{ID: 9, Email: "a@x.com"}, nil).Once()
				f.accountRepo.On("Update", mock.Anything, uint64(9), mock.MatchedBy(func(u *model.AccountUpdate) bool {
					return u.Name != nil && *u.Name == "Asha" && u.PasswordHash != nil && u.Role != nil && *u.Role == constant.RoleVendor
				})).Return(nil).Once()
				f.otpApp.On("Issue", mock.Anything, mock.Anything, mock.Anything).Return("654321", nil).Once()
				f.mailer.On("SendVerificationCode", mock.Anything, "a@x.com", "654321").Return(errors.New("smtp down")).Once()
			},
			want: &model.RegisterResponse{
				Message:              "Registration successful. Please check your email for the verification code.",
				Email:                "a@x.com",
				VerificationRequired: true,
			},
		},
		{
			name: "error: email already verified",
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, mock.Anything).Return(&model.AccountEntity{ID: 9, EmailVerified: true}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: concurrent insert hits unique email",
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
				f.accountRepo.On("Create", mock.Anything, mock.Anything).Return(nil, accountrepo.ErrDuplicateEmail).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: lookup fails",
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().Register(context.Background(), req)
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountApp_Login(t *testing.T) {
	hash := hashPassword(t, "secret1")

	tests := []struct {
		name     string
		req      *model.LoginRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
		wantData any
	}{
		{
			name: "success",
			req:  &model.LoginRequest{Email: "a@x.com", Password: "secret1"},
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{Email: "a@x.com"}).
					Return(&model.AccountEntity{ID: 1, Email: "a@x.com", PasswordHash: hash, EmailVerified: true, Role: constant.RoleBuyer}, nil).Once()
				f.expectSession(1, constant.RoleBuyer)
			},
		},
		{
			name: "error: unknown email",
			req:  &model.LoginRequest{Email: "nobody@x.com", Password: "secret1"},
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: wrong password",
			req:  &model.LoginRequest{Email: "a@x.com", Password: "nope"},
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, mock.Anything).
					Return(&model.AccountEntity{ID: 1, PasswordHash: hash, EmailVerified: true}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: google-only account has no password",
			req:  &model.LoginRequest{Email: "a@x.com", Password: "secret1"},
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, mock.Anything).
					Return(&model.AccountEntity{ID: 1, EmailVerified: true, AuthProvider: constant.AuthProviderGoogle}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: unverified email re-sends code",
			req:  &model.LoginRequest{Email: "a@x.com", Password: "secret1"},
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, mock.Anything).
					Return(&model.AccountEntity{ID: 1, Email: "a@x.com", PasswordHash: hash}, nil).Once()
				f.otpApp.On("Issue", mock.Anything, model.EmailTarget("a@x.com"), constant.OTPPurposeVerification).Return("123456", nil).Once()
				f.mailer.On("SendVerificationCode", mock.Anything, "a@x.com", "123456").Return(nil).Once()
			},
			wantErr:  true,
			errCode:  constant.ErrEmailNotVerified,
			wantData: &model.EmailVerificationRequired{RequiresEmailVerification: true, Email: "a@x.com"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().Login(context.Background(), tt.req)
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				if tt.wantData != nil {
					var ce cerr.CustomError
					require.True(t, errors.As(err, &ce))
					assert.Equal(t, tt.wantData, ce.Data())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Login successful", got.Message)
			assert.Equal(t, "access-token", got.AccessToken)
			assert.Equal(t, "refresh-token", got.RefreshToken)
			assert.Equal(t, uint64(1), got.User.ID)
		})
	}
}

func TestAccountApp_VerifyEmail(t *testing.T) {
	unverified := func() *model.AccountEntity {
		return &model.AccountEntity{ID: 3, Name: "Asha", Email: "a@x.com", Role: constant.RoleBuyer, KYCStatus: constant.KYCStatusNotSubmitted}
	}

	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: marks verified, consumes code, welcomes and logs in",
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{Email: "a@x.com"}).Return(unverified(), nil).Once()
				f.otpApp.On("Verify", mock.Anything, model.EmailTarget("a@x.com"), constant.OTPPurposeVerification, "123456").Return(true, nil).Once()
				f.accountRepo.On("Update", mock.Anything, uint64(3), mock.MatchedBy(func(u *model.AccountUpdate) bool {
					return u.EmailVerified != nil && *u.EmailVerified && u.RefreshToken == nil
				})).Return(nil).Once()
				f.otpApp.On("Consume", mock.Anything, model.EmailTarget("a@x.com"), constant.OTPPurposeVerification).Return(nil).Once()
				f.mailer.On("SendWelcome", mock.Anything, "a@x.com", "Asha").Return(nil).Once()
				f.expectSession(3, constant.RoleBuyer)
			},
		},
		{
			name: "error: wrong code leaves account untouched",
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, mock.Anything).Return(unverified(), nil).Once()
				f.otpApp.On("Verify", mock.Anything, mock.Anything, mock.Anything, "123456").Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOTP,
		},
		{
			name: "error: already verified",
			mockCall: func(f fields) {
				acc := unverified()
				acc.EmailVerified = true
				f.accountRepo.On("Get", mock.Anything, mock.Anything).Return(acc, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrEmailAlreadyVerified,
		},
		{
			name: "error: unknown email",
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().VerifyEmail(context.Background(), &model.VerifyEmailRequest{Email: "a@x.com", OTP: "123456"})
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Email verified successfully! You are now logged in.", got.Message)
			assert.True(t, got.User.EmailVerified)
			assert.Equal(t, "access-token", got.AccessToken)
		})
	}
}

func TestAccountApp_ResendOTP(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.ResendOTPRequest
		mockCall func(f fields)
		want     string
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:    "error: neither email nor phone",
			req:     &model.ResendOTPRequest{},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "success: email",
			req:  &model.ResendOTPRequest{Email: "a@x.com"},
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{Email: "a@x.com"}).Return(&model.AccountEntity{ID: 1, Email: "a@x.com"}, nil).Once()
				f.otpApp.On("Resend", mock.Anything, model.EmailTarget("a@x.com"), constant.OTPPurposeVerification).Return("111111", nil).Once()
				f.mailer.On("SendVerificationCode", mock.Anything, "a@x.com", "111111").Return(nil).Once()
			},
			want: "OTP sent successfully to a@x.com",
		},
		{
			name: "success: phone with separators",
			req:  &model.ResendOTPRequest{Phone: "+91 98765-43210"},
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{Phone: "+919876543210"}).
					Return(&model.AccountEntity{ID: 1, Phone: "+919876543210", EmailVerified: true}, nil).Once()
				f.otpApp.On("Resend", mock.Anything, model.PhoneTarget("+919876543210"), constant.OTPPurposeVerification).Return("222222", nil).Once()
				f.texter.On("SendVerificationCode", mock.Anything, "+919876543210", "222222").Return(nil).Once()
			},
			want: "OTP sent successfully to +919876543210",
		},
		{
			name: "error: email already verified",
			req:  &model.ResendOTPRequest{Email: "a@x.com"},
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, mock.Anything).Return(&model.AccountEntity{ID: 1, EmailVerified: true}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrEmailAlreadyVerified,
		},
		{
			name: "error: cooldown",
			req:  &model.ResendOTPRequest{Email: "a@x.com"},
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, mock.Anything).Return(&model.AccountEntity{ID: 1, Email: "a@x.com"}, nil).Once()
				f.otpApp.On("Resend", mock.Anything, mock.Anything, mock.Anything).Return("", cerr.SetCustomError(constant.ErrOTPCooldown)).Once()
			},
			wantErr: true,
			errCode: constant.ErrOTPCooldown,
		},
		{
			name: "error: delivery failure",
			req:  &model.ResendOTPRequest{Email: "a@x.com"},
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, mock.Anything).Return(&model.AccountEntity{ID: 1, Email: "a@x.com"}, nil).Once()
				f.otpApp.On("Resend", mock.Anything, mock.Anything, mock.Anything).Return("111111", nil).Once()
				f.mailer.On("SendVerificationCode", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrEmailDeliveryFailed,
		},
		{
			name: "error: unknown account",
			req:  &model.ResendOTPRequest{Email: "a@x.com"},
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().ResendOTP(context.Background(), tt.req)
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Message)
		})
	}
}

func TestAccountApp_SubmitKYC(t *testing.T) {
	const phone = "+919876543210"
	req := &model.KYCRequest{Phone: "+91 98765 43210", PAN: "ABCDE1234F", Aadhaar: "123412341234"}

	tests := []struct {
		name     string
		account  *model.AccountEntity
		mockCall func(f fields)
		want     *model.KYCResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: already verified phone goes straight to review",
			account: &model.AccountEntity{ID: 5, EmailVerified: true, Phone: phone, PhoneVerified: true,
				KYCStatus: constant.KYCStatusRejected, KYCDetails: &model.KYCDetails{PAN: "OLD"}},
			mockCall: func(f fields) {
				f.accountRepo.On("Update", mock.Anything, uint64(5), mock.MatchedBy(func(u *model.AccountUpdate) bool {
					return u.KYCStatus != nil && *u.KYCStatus == constant.KYCStatusPending &&
						u.KYCDetails != nil && u.KYCDetails.PAN == "ABCDE1234F" && u.PhoneVerified == nil
				})).Return(nil).Once()
			},
			want: &model.KYCResponse{Message: "KYC submitted successfully.", KYCStatus: constant.KYCStatusPending},
		},
		{
			name:    "success: new phone needs verification",
			account: &model.AccountEntity{ID: 5, EmailVerified: true, KYCStatus: constant.KYCStatusNotSubmitted},
			mockCall: func(f fields) {
				f.accountRepo.On("Update", mock.Anything, uint64(5), mock.MatchedBy(func(u *model.AccountUpdate) bool {
					return u.Phone != nil && *u.Phone == phone && u.PhoneVerified != nil && !*u.PhoneVerified &&
						u.KYCDetails != nil && u.KYCStatus == nil
				})).Return(nil).Once()
				f.otpApp.On("Issue", mock.Anything, model.PhoneTarget(phone), constant.OTPPurposeVerification).Return("333333", nil).Once()
				f.texter.On("SendVerificationCode", mock.Anything, phone, "333333").Return(nil).Once()
			},
			want: &model.KYCResponse{
				Message:                   "KYC submitted. Please verify phone.",
				KYCStatus:                 constant.KYCStatusNotSubmitted,
				PhoneVerificationRequired: true,
			},
		},
		{
			name: "success: pending review with a different phone drops back to phone verification",
			account: &model.AccountEntity{ID: 5, EmailVerified: true, Phone: "+919000000000", PhoneVerified: true,
				KYCStatus: constant.KYCStatusPending, KYCDetails: &model.KYCDetails{}},
			mockCall: func(f fields) {
				f.accountRepo.On("Update", mock.Anything, uint64(5), mock.MatchedBy(func(u *model.AccountUpdate) bool {
					return u.KYCStatus != nil && *u.KYCStatus == constant.KYCStatusNotSubmitted &&
						u.PhoneVerified != nil && !*u.PhoneVerified
				})).Return(nil).Once()
				f.otpApp.On("Issue", mock.Anything, model.PhoneTarget(phone), constant.OTPPurposeVerification).Return("333333", nil).Once()
				f.texter.On("SendVerificationCode", mock.Anything, phone, "333333").Return(errors.New("twilio down")).Once()
			},
			want: &model.KYCResponse{
				Message:                   "KYC submitted. Please verify phone.",
				KYCStatus:                 constant.KYCStatusNotSubmitted,
				PhoneVerificationRequired: true,
			},
		},
		{
			name:    "error: email not verified",
			account: &model.AccountEntity{ID: 5, KYCStatus: constant.KYCStatusNotSubmitted},
			wantErr: true,
			errCode: constant.ErrEmailNotVerified,
		},
		{
			name:    "error: already approved",
			account: &model.AccountEntity{ID: 5, EmailVerified: true, KYCStatus: constant.KYCStatusApproved},
			wantErr: true,
			errCode: constant.ErrKYCAlreadyApproved,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 5}).Return(tt.account, nil).Once()
			f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{Phone: phone, ExcludeID: 5}).Return(nil, nil).Once()
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().SubmitKYC(context.Background(), 5, req)
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountApp_SubmitKYC_PhoneInUse(t *testing.T) {
	f := newFields(t)
	f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 5}).
		Return(&model.AccountEntity{ID: 5, EmailVerified: true}, nil).Once()
	f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{Phone: "+919876543210", ExcludeID: 5}).
		Return(&model.AccountEntity{ID: 6}, nil).Once()

	_, err := f.app().SubmitKYC(context.Background(), 5, &model.KYCRequest{Phone: "+919876543210", PAN: "ABCDE1234F", Aadhaar: "123412341234"})
	assertErrCode(t, err, constant.ErrPhoneInUse)
}

func TestAccountApp_VerifyPhone(t *testing.T) {
	const phone = "+919876543210"
	submitted := func() *model.AccountEntity {
		return &model.AccountEntity{ID: 5, EmailVerified: true, Phone: phone, KYCStatus: constant.KYCStatusNotSubmitted, KYCDetails: &model.KYCDetails{}}
	}

	tests := []struct {
		name     string
		req      *model.VerifyPhoneRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			req:  &model.VerifyPhoneRequest{Phone: phone, OTP: "333333"},
			mockCall: func(f fields) {
				f.otpApp.On("Verify", mock.Anything, model.PhoneTarget(phone), constant.OTPPurposeVerification, "333333").Return(true, nil).Once()
				f.accountRepo.On("Update", mock.Anything, uint64(5), mock.MatchedBy(func(u *model.AccountUpdate) bool {
					return u.PhoneVerified != nil && *u.PhoneVerified && u.KYCStatus != nil && *u.KYCStatus == constant.KYCStatusPending
				})).Return(nil).Once()
				f.otpApp.On("Consume", mock.Anything, model.PhoneTarget(phone), constant.OTPPurposeVerification).Return(nil).Once()
			},
		},
		{
			name:    "error: phone differs from submitted",
			req:     &model.VerifyPhoneRequest{Phone: "+919000000000", OTP: "333333"},
			wantErr: true,
			errCode: constant.ErrPhoneMismatch,
		},
		{
			name: "error: wrong code",
			req:  &model.VerifyPhoneRequest{Phone: phone, OTP: "000000"},
			mockCall: func(f fields) {
				f.otpApp.On("Verify", mock.Anything, mock.Anything, mock.Anything, "000000").Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOTP,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 5}).Return(submitted(), nil).Once()
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().VerifyPhone(context.Background(), 5, tt.req)
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Phone verified successfully. Account pending approval.", got.Message)
		})
	}
}

func TestAccountApp_Refresh(t *testing.T) {
	future := fixedNow.Add(time.Hour)
	past := fixedNow.Add(-time.Second)

	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: new access token only",
			mockCall: func(f fields) {
				f.tokenApp.On("VerifyRefreshToken", "rt").Return(&model.RefreshTokenPayload{AccountID: 1}, true).Once()
				f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 1}).
					Return(&model.AccountEntity{ID: 1, Role: constant.RoleBuyer, RefreshToken: "rt", RefreshTokenExpiry: &future}, nil).Once()
				f.tokenApp.On("IssueAccessToken", uint64(1), constant.RoleBuyer).Return("new-access", fixedNow.Add(15*time.Minute), nil).Once()
			},
		},
		{
			name: "error: signature invalid",
			mockCall: func(f fields) {
				f.tokenApp.On("VerifyRefreshToken", "rt").Return(nil, false).Once()
			},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name: "error: not the stored token",
			mockCall: func(f fields) {
				f.tokenApp.On("VerifyRefreshToken", "rt").Return(&model.RefreshTokenPayload{AccountID: 1}, true).Once()
				f.accountRepo.On("Get", mock.Anything, mock.Anything).
					Return(&model.AccountEntity{ID: 1, RefreshToken: "other", RefreshTokenExpiry: &future}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name: "error: stored token expired is cleared",
			mockCall: func(f fields) {
				f.tokenApp.On("VerifyRefreshToken", "rt").Return(&model.RefreshTokenPayload{AccountID: 1}, true).Once()
				f.accountRepo.On("Get", mock.Anything, mock.Anything).
					Return(&model.AccountEntity{ID: 1, RefreshToken: "rt", RefreshTokenExpiry: &past}, nil).Once()
				f.accountRepo.On("Update", mock.Anything, uint64(1), &model.AccountUpdate{ClearRefreshToken: true}).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrRefreshTokenExpired,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().Refresh(context.Background(), "rt")
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "new-access", got.AccessToken)
			assert.Empty(t, got.RefreshToken)
		})
	}
}

func TestAccountApp_Logout(t *testing.T) {
	t.Run("valid token clears stored refresh token", func(t *testing.T) {
		f := newFields(t)
		f.tokenApp.On("VerifyAccessToken", "at").Return(&model.AccessTokenPayload{AccountID: 4}, true).Once()
		f.accountRepo.On("Update", mock.Anything, uint64(4), &model.AccountUpdate{ClearRefreshToken: true}).Return(nil).Once()

		got, err := f.app().Logout(context.Background(), "at")
		require.NoError(t, err)
		assert.Equal(t, "Logout successful", got.Message)
	})

	t.Run("missing token still succeeds", func(t *testing.T) {
		f := newFields(t)
		f.tokenApp.On("VerifyAccessToken", "").Return(nil, false).Once()

		got, err := f.app().Logout(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "Logout successful", got.Message)
	})
}

func TestAccountApp_Google(t *testing.T) {
	t.Run("auth url requires configuration", func(t *testing.T) {
		f := newFields(t)
		f.identity.On("Configured").Return(false).Once()

		_, err := f.app().GoogleAuthURL(context.Background())
		assertErrCode(t, err, constant.ErrOAuthNotConfigured)
	})

	t.Run("auth url stores state", func(t *testing.T) {
		f := newFields(t)
		var state string
		f.identity.On("Configured").Return(true).Once()
		f.redisRepo.On("SetOAuthState", mock.Anything, mock.AnythingOfType("string"), 10*time.Minute).
			Run(func(args mock.Arguments) { state = args.String(1) }).Return(nil).Once()
		f.identity.On("AuthCodeURL", mock.Anything).Return(func(s string) string { return "https://accounts.google.com/o?state=" + s }).Once()

		url, err := f.app().GoogleAuthURL(context.Background())
		require.NoError(t, err)
		assert.NotEmpty(t, state)
		assert.Equal(t, "https://accounts.google.com/o?state="+state, url)
	})

	t.Run("callback rejects unknown state", func(t *testing.T) {
		f := newFields(t)
		f.identity.On("Configured").Return(true).Once()
		f.redisRepo.On("ConsumeOAuthState", mock.Anything, "forged").Return(false, nil).Once()

		_, err := f.app().GoogleCallback(context.Background(), "forged", "code")
		assertErrCode(t, err, constant.ErrOAuthFailed)
	})

	t.Run("callback links an existing local account", func(t *testing.T) {
		f := newFields(t)
		f.identity.On("Configured").Return(true).Once()
		f.redisRepo.On("ConsumeOAuthState", mock.Anything, "st").Return(true, nil).Once()
		f.identity.On("Exchange", mock.Anything, "code").
			Return(&model.ExternalIdentity{Subject: "g-1", Email: "A@x.com", Picture: "https://img"}, nil).Once()
		f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{Email: "a@x.com"}).
			Return(&model.AccountEntity{ID: 2, Email: "a@x.com", Role: constant.RoleVendor, AuthProvider: constant.AuthProviderLocal}, nil).Once()
		f.accountRepo.On("Update", mock.Anything, uint64(2), mock.MatchedBy(func(u *model.AccountUpdate) bool {
			return u.GoogleID != nil && *u.GoogleID == "g-1" &&
				u.AuthProvider != nil && *u.AuthProvider == constant.AuthProviderGoogle &&
				u.EmailVerified != nil && *u.EmailVerified
		})).Return(nil).Once()
		f.expectSession(2, constant.RoleVendor)

		got, err := f.app().GoogleCallback(context.Background(), "st", "code")
		require.NoError(t, err)
		assert.Equal(t, "refresh-token", got.RefreshToken)
		assert.Equal(t, constant.AuthProviderGoogle, got.User.AuthProvider)
	})

	t.Run("callback creates a buyer", func(t *testing.T) {
		f := newFields(t)
		f.identity.On("Configured").Return(true).Once()
		f.redisRepo.On("ConsumeOAuthState", mock.Anything, "st").Return(true, nil).Once()
		f.identity.On("Exchange", mock.Anything, "code").
			Return(&model.ExternalIdentity{Subject: "g-9", Email: "new@x.com"}, nil).Once()
		f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{Email: "new@x.com"}).Return(nil, nil).Once()
		f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{GoogleID: "g-9"}).Return(nil, nil).Once()
		f.accountRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.AccountEntity) bool {
			return e.Name == "new" && e.Role == constant.RoleBuyer && e.EmailVerified && e.PasswordHash == ""
		})).Return(&model.AccountEntity{ID: 11, Name: "new", Email: "new@x.com", Role: constant.RoleBuyer, EmailVerified: true}, nil).Once()
		f.expectSession(11, constant.RoleBuyer)

		got, err := f.app().GoogleCallback(context.Background(), "st", "code")
		require.NoError(t, err)
		assert.Equal(t, uint64(11), got.User.ID)
	})
}
