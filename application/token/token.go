package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/hoardspace/cmd/config"
	"github.com/muhammadheryan/hoardspace/constant"
	"github.com/muhammadheryan/hoardspace/model"
)

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

type TokenApp interface {
	IssueAccessToken(accountID uint64, role constant.Role) (string, time.Time, error)
	IssueRefreshToken(accountID uint64) (string, time.Time, error)
	VerifyAccessToken(token string) (*model.AccessTokenPayload, bool)
	VerifyRefreshToken(token string) (*model.RefreshTokenPayload, bool)
}

type accessClaims struct {
	Role      constant.Role `json:"role"`
	TokenType string        `json:"typ"`
	jwt.RegisteredClaims
}

type refreshClaims struct {
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

type tokenAppImpl struct {
	config *config.Config
	now    func() time.Time
}

func NewTokenApp(config *config.Config) TokenApp {
	return &tokenAppImpl{config: config, now: time.Now}
}

func (s *tokenAppImpl) IssueAccessToken(accountID uint64, role constant.Role) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.config.Auth.AccessTokenExpiration)
	claims := accessClaims{
		Role:      role,
		TokenType: typeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(accountID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, expiresAt, nil
}

// IssueRefreshToken embeds a random jti so two tokens issued in the same second differ.
func (s *tokenAppImpl) IssueRefreshToken(accountID uint64) (string, time.Time, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate token id: %w", err)
	}

	now := s.now()
	expiresAt := now.Add(s.config.Auth.RefreshTokenExpiration)
	claims := refreshClaims{
		TokenType: typeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(accountID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        tokenID.String(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.refreshSecret()))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return signed, expiresAt, nil
}

func (s *tokenAppImpl) VerifyAccessToken(tokenString string) (*model.AccessTokenPayload, bool) {
	if tokenString == "" {
		return nil, false
	}

	claims := &accessClaims{}
	if !s.parse(tokenString, claims, s.config.Auth.JWTSecret) || claims.TokenType != typeAccess {
		return nil, false
	}

	accountID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, false
	}

	return &model.AccessTokenPayload{
		AccountID: accountID,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, true
}

func (s *tokenAppImpl) VerifyRefreshToken(tokenString string) (*model.RefreshTokenPayload, bool) {
	if tokenString == "" {
		return nil, false
	}

	claims := &refreshClaims{}
	if !s.parse(tokenString, claims, s.refreshSecret()) || claims.TokenType != typeRefresh || claims.ID == "" {
		return nil, false
	}

	accountID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, false
	}

	return &model.RefreshTokenPayload{
		AccountID: accountID,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, true
}

func (s *tokenAppImpl) parse(tokenString string, claims jwt.Claims, secret string) bool {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return false
	}
	exp, err := claims.GetExpirationTime()
	return err == nil && exp != nil
}

func (s *tokenAppImpl) refreshSecret() string {
	if s.config.Auth.RefreshSecret != "" {
		return s.config.Auth.RefreshSecret
	}
	return s.config.Auth.JWTSecret
}
