package account_test

import (
	"context"
	"sync"
	"testing"
	"time"

	accountapp "github.com/muhammadheryan/hoardspace/application/account"
	otpapp "github.com/muhammadheryan/hoardspace/application/otp"
	tokenapp "github.com/muhammadheryan/hoardspace/application/token"
	"github.com/muhammadheryan/hoardspace/cmd/config"
	"github.com/muhammadheryan/hoardspace/constant"
	redismocks "github.com/muhammadheryan/hoardspace/mocks/repository/redis"
	smsmocks "github.com/muhammadheryan/hoardspace/mocks/thirdparty/sms"
	"github.com/muhammadheryan/hoardspace/model"
	accountrepo "github.com/muhammadheryan/hoardspace/repository/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memAccounts is an in-memory AccountRepository.
type memAccounts struct {
	mu     sync.Mutex
	nextID uint64
	rows   map[uint64]*model.AccountEntity
}

func newMemAccounts() *memAccounts {
	return &memAccounts{rows: map[uint64]*model.AccountEntity{}}
}

func (m *memAccounts) Create(_ context.Context, req *model.AccountEntity) (*model.AccountEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.Email == req.Email {
			return nil, accountrepo.ErrDuplicateEmail
		}
	}
	m.nextID++
	row := *req
	row.ID = m.nextID
	m.rows[row.ID] = &row
	out := row
	return &out, nil
}

func (m *memAccounts) Get(_ context.Context, f *model.AccountFilter) (*model.AccountEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if f.ID != 0 && r.ID != f.ID {
			continue
		}
		if f.Email != "" && r.Email != f.Email {
			continue
		}
		if f.Phone != "" && r.Phone != f.Phone {
			continue
		}
		if f.GoogleID != "" && r.GoogleID != f.GoogleID {
			continue
		}
		if f.ExcludeID != 0 && r.ID == f.ExcludeID {
			continue
		}
		out := *r
		return &out, nil
	}
	return nil, nil
}

func (m *memAccounts) Update(_ context.Context, id uint64, u *model.AccountUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return nil
	}
	if u.EmailVerified != nil {
		r.EmailVerified = *u.EmailVerified
	}
	if u.PhoneVerified != nil {
		r.PhoneVerified = *u.PhoneVerified
	}
	if u.Phone != nil {
		r.Phone = *u.Phone
	}
	if u.KYCStatus != nil {
		r.KYCStatus = *u.KYCStatus
	}
	if u.KYCDetails != nil {
		r.KYCDetails = u.KYCDetails
	}
	if u.RefreshToken != nil {
		r.RefreshToken = *u.RefreshToken
	}
	if u.RefreshTokenExpiry != nil {
		r.RefreshTokenExpiry = u.RefreshTokenExpiry
	}
	if u.ClearRefreshToken {
		r.RefreshToken, r.RefreshTokenExpiry = "", nil
	}
	return nil
}

func (m *memAccounts) ClearExpiredRefreshTokens(context.Context, time.Time) (int64, error) {
	return 0, nil
}

// memOTPs is an in-memory OTPRepository.
type memOTPs struct {
	mu   sync.Mutex
	rows []*model.OTPEntity
}

func (m *memOTPs) match(r *model.OTPEntity, f *model.OTPFilter) bool {
	return r.Channel == f.Channel && r.Target == f.Target && r.Purpose == f.Purpose
}

func (m *memOTPs) Create(_ context.Context, d *model.OTPEntity) (*model.OTPEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, d)
	return d, nil
}

func (m *memOTPs) GetLatest(_ context.Context, f *model.OTPFilter) (*model.OTPEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.match(m.rows[i], f) {
			return m.rows[i], nil
		}
	}
	return nil, nil
}

func (m *memOTPs) GetByCode(_ context.Context, f *model.OTPFilter) (*model.OTPEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if m.match(r, f) && r.Code == f.Code {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memOTPs) Delete(_ context.Context, f *model.OTPFilter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.rows[:0]
	for _, r := range m.rows {
		if !m.match(r, f) {
			kept = append(kept, r)
		}
	}
	m.rows = kept
	return nil
}

func (m *memOTPs) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (m *memOTPs) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

// outbox records every mail instead of sending it.
type outbox struct {
	mu       sync.Mutex
	codes    map[string]string
	welcomed []string
}

func (o *outbox) SendVerificationCode(_ context.Context, to, code string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.codes[to] = code
	return nil
}

func (o *outbox) SendWelcome(_ context.Context, to, _ string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.welcomed = append(o.welcomed, to)
	return nil
}

type harness struct {
	accounts *memAccounts
	otps     *memOTPs
	mail     *outbox
	texter   *smsmocks.Sender
	tokens   tokenapp.TokenApp
	app      accountapp.AccountApp
}

func newHarness(t *testing.T) *harness {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:              "test-secret",
			AccessTokenExpiration:  15 * time.Minute,
			RefreshTokenExpiration: 7 * 24 * time.Hour,
		},
		OTP: config.OTPConfig{
			EmailExpiration: 15 * time.Minute,
			PhoneExpiration: 10 * time.Minute,
			ResendCooldown:  time.Minute,
		},
	}
	h := &harness{
		accounts: newMemAccounts(),
		otps:     &memOTPs{},
		mail:     &outbox{codes: map[string]string{}},
		texter:   smsmocks.NewSender(t),
		tokens:   tokenapp.NewTokenApp(cfg),
	}
	h.app = accountapp.NewAccountApp(cfg, h.accounts, redismocks.NewRepository(t),
		otpapp.NewOTPApp(cfg, h.otps), h.tokens, h.mail, h.texter, nil,
		accountapp.WithRunner(func(fn func()) { fn() }),
	)
	return h
}

func TestWorkflow_RegisterVerifyMe(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	reg, err := h.app.Register(ctx, &model.RegisterRequest{Name: "Asha", Email: "a@x.com", Password: "secret1", Role: constant.RoleBuyer})
	require.NoError(t, err)
	assert.True(t, reg.VerificationRequired)

	code := h.mail.codes["a@x.com"]
	require.Len(t, code, 6)

	// login is refused until the email is verified
	_, err = h.app.Login(ctx, &model.LoginRequest{Email: "a@x.com", Password: "secret1"})
	assertErrCode(t, err, constant.ErrEmailNotVerified)
	code = h.mail.codes["a@x.com"]

	res, err := h.app.VerifyEmail(ctx, &model.VerifyEmailRequest{Email: "a@x.com", OTP: code})
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	assert.Equal(t, []string{"a@x.com"}, h.mail.welcomed)
	assert.Zero(t, h.otps.count(), "verification code must be single use")

	payload, err := h.app.ValidateToken(ctx, res.AccessToken)
	require.NoError(t, err)

	me, err := h.app.Me(ctx, payload.AccountID)
	require.NoError(t, err)
	assert.True(t, me.EmailVerified)
	assert.Equal(t, constant.RoleBuyer, me.Role)

	_, err = h.app.VerifyEmail(ctx, &model.VerifyEmailRequest{Email: "a@x.com", OTP: code})
	assertErrCode(t, err, constant.ErrEmailAlreadyVerified)

	refreshed, err := h.app.Refresh(ctx, res.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestWorkflow_KYCWithVerifiedPhoneSkipsOTP(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	acc, err := h.accounts.Create(ctx, &model.AccountEntity{
		Name:          "Ravi",
		Email:         "v@x.com",
		Role:          constant.RoleVendor,
		EmailVerified: true,
		Phone:         "+919876543210",
		PhoneVerified: true,
		KYCStatus:     constant.KYCStatusRejected,
		KYCDetails:    &model.KYCDetails{PAN: "OLDPAN0000"},
	})
	require.NoError(t, err)

	res, err := h.app.SubmitKYC(ctx, acc.ID, &model.KYCRequest{
		Phone:   "+91 98765 43210",
		PAN:     "ABCDE1234F",
		Aadhaar: "123412341234",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.KYCStatusPending, res.KYCStatus)
	assert.False(t, res.PhoneVerificationRequired)
	assert.Zero(t, h.otps.count())
	h.texter.AssertNotCalled(t, "SendVerificationCode", mock.Anything, mock.Anything, mock.Anything)

	stored, err := h.accounts.Get(ctx, &model.AccountFilter{ID: acc.ID})
	require.NoError(t, err)
	assert.Equal(t, constant.KYCStatusPending, stored.KYCStatus)
	assert.True(t, stored.PhoneVerified)
	assert.Equal(t, "ABCDE1234F", stored.KYCDetails.PAN)
}
