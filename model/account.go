package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/hoardspace/constant"
)

// AccountEntity represents the account table entity
type AccountEntity struct {
	ID                 uint64                `db:"id" json:"id"`
	Name               string                `db:"name" json:"name"`
	Email              string                `db:"email" json:"email"`
	PasswordHash       string                `db:"password_hash" json:"-"`
	Phone              string                `db:"phone" json:"phone,omitempty"`
	Role               constant.Role         `db:"role" json:"role"`
	AuthProvider       constant.AuthProvider `db:"auth_provider" json:"authProvider"`
	EmailVerified      bool                  `db:"email_verified" json:"emailVerified"`
	PhoneVerified      bool                  `db:"phone_verified" json:"isPhoneVerified"`
	KYCStatus          constant.KYCStatus    `db:"kyc_status" json:"kycStatus"`
	KYCDetails         *KYCDetails           `db:"kyc_details" json:"kycDetails,omitempty"`
	Image              string                `db:"image" json:"image,omitempty"`
	GoogleID           string                `db:"google_id" json:"-"`
	RefreshToken       string                `db:"refresh_token" json:"-"`
	RefreshTokenExpiry *time.Time            `db:"refresh_token_expiry" json:"-"`
	CreatedAt          time.Time             `db:"created_at" json:"createdAt"`
	UpdatedAt          *time.Time            `db:"updated_at" json:"updatedAt,omitempty"`
}

// KYCDetails is stored as a JSON column on the account row.
type KYCDetails struct {
	CompanyName string   `json:"companyName,omitempty"`
	GSTIN       string   `json:"gstin,omitempty"`
	PAN         string   `json:"pan"`
	Aadhaar     string   `json:"aadhaar"`
	Address     string   `json:"address,omitempty"`
	Documents   []string `json:"documents,omitempty"`
}

func (k KYCDetails) Value() (driver.Value, error) {
	b, err := json.Marshal(k)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (k *KYCDetails) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, k)
	case string:
		return json.Unmarshal([]byte(v), k)
	default:
		return fmt.Errorf("kyc details: unsupported type %T", src)
	}
}

// AccountFilter for querying accounts. Zero values are ignored.
type AccountFilter struct {
	ID        uint64
	Email     string
	Phone     string
	GoogleID  string
	ExcludeID uint64
}

// AccountUpdate lists the columns to change; nil fields are left untouched.
type AccountUpdate struct {
	Name               *string
	PasswordHash       *string
	Role               *constant.Role
	AuthProvider       *constant.AuthProvider
	EmailVerified      *bool
	PhoneVerified      *bool
	Phone              *string
	KYCStatus          *constant.KYCStatus
	KYCDetails         *KYCDetails
	Image              *string
	GoogleID           *string
	RefreshToken       *string
	RefreshTokenExpiry *time.Time
	ClearRefreshToken  bool
}

func (u *AccountUpdate) IsEmpty() bool {
	return u == nil || (u.Name == nil && u.PasswordHash == nil && u.Role == nil && u.AuthProvider == nil &&
		u.EmailVerified == nil && u.PhoneVerified == nil && u.Phone == nil && u.KYCStatus == nil &&
		u.KYCDetails == nil && u.Image == nil && u.GoogleID == nil && u.RefreshToken == nil &&
		u.RefreshTokenExpiry == nil && !u.ClearRefreshToken)
}

// Caller is the authenticated principal attached to a request.
type Caller struct {
	ID   uint64
	Role constant.Role
}

// RegisterRequest for account registration
type RegisterRequest struct {
	Name     string        `json:"name" validate:"required,min=2"`
	Email    string        `json:"email" validate:"required,email"`
	Password string        `json:"password" validate:"required,min=6"`
	Role     constant.Role `json:"role" validate:"omitempty,oneof=buyer vendor admin"`
}

type RegisterResponse struct {
	Message              string `json:"message"`
	Email                string `json:"email"`
	VerificationRequired bool   `json:"verificationRequired"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// EmailVerificationRequired is attached to the 403 returned by login for unverified accounts.
type EmailVerificationRequired struct {
	RequiresEmailVerification bool   `json:"requiresEmailVerification"`
	Email                     string `json:"email"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,otp"`
}

type ResendOTPRequest struct {
	Email   string              `json:"email" validate:"omitempty,email"`
	Phone   string              `json:"phone"`
	Purpose constant.OTPPurpose `json:"type" validate:"omitempty,oneof=verification login reset"`
}

type KYCRequest struct {
	Phone       string   `json:"phone" validate:"required,min=10,max=15,kycphone"`
	CompanyName string   `json:"companyName"`
	GSTIN       string   `json:"gstin"`
	PAN         string   `json:"pan" validate:"required,min=10"`
	Aadhaar     string   `json:"aadhaar" validate:"required,min=12"`
	Address     string   `json:"address"`
	Documents   []string `json:"documents"`
}

type KYCResponse struct {
	Message                   string             `json:"message"`
	KYCStatus                 constant.KYCStatus `json:"kycStatus"`
	PhoneVerificationRequired bool               `json:"phoneVerificationRequired"`
}

type VerifyPhoneRequest struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required,otp"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// AccountProfile is the public projection returned by /auth/me and login.
type AccountProfile struct {
	ID            uint64                `json:"id"`
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	Role          constant.Role         `json:"role"`
	Phone         string                `json:"phone,omitempty"`
	EmailVerified bool                  `json:"emailVerified"`
	PhoneVerified bool                  `json:"isPhoneVerified"`
	KYCStatus     constant.KYCStatus    `json:"kycStatus"`
	Image         string                `json:"image,omitempty"`
	AuthProvider  constant.AuthProvider `json:"authProvider"`
}

func NewAccountProfile(a *AccountEntity) *AccountProfile {
	return &AccountProfile{
		ID:            a.ID,
		Name:          a.Name,
		Email:         a.Email,
		Role:          a.Role,
		Phone:         a.Phone,
		EmailVerified: a.EmailVerified,
		PhoneVerified: a.PhoneVerified,
		KYCStatus:     a.KYCStatus,
		Image:         a.Image,
		AuthProvider:  a.AuthProvider,
	}
}

type MeResponse struct {
	User *AccountProfile `json:"user"`
}

// AuthResult carries issued credentials to the transport, which turns them into cookies.
type AuthResult struct {
	Message               string          `json:"message"`
	User                  *AccountProfile `json:"user,omitempty"`
	AccessToken           string          `json:"-"`
	AccessTokenExpiresAt  time.Time       `json:"-"`
	RefreshToken          string          `json:"-"`
	RefreshTokenExpiresAt time.Time       `json:"-"`
}

type AccessTokenPayload struct {
	AccountID uint64
	Role      constant.Role
	ExpiresAt time.Time
}

type RefreshTokenPayload struct {
	AccountID uint64
	TokenID   string
	ExpiresAt time.Time
}

// ExternalIdentity is the profile returned by the external identity provider.
type ExternalIdentity struct {
	Subject       string
	Email         string
	Name          string
	Picture       string
	EmailVerified bool
}
