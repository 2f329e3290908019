package transport

import (
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/hoardspace/constant"
	"github.com/muhammadheryan/hoardspace/model"
	utilsContext "github.com/muhammadheryan/hoardspace/utils/context"
	"github.com/muhammadheryan/hoardspace/utils/errors"
	"github.com/muhammadheryan/hoardspace/utils/logger"
	"go.uber.org/zap"
)

// Register handler
// @Summary Register account
// @Description Create or refresh an unverified account and email a verification code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AccountApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login
// @Description Login with email and password. Sets the accessToken and refreshToken cookies.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.AuthResult
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AccountApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	s.setAuthCookies(w, res)
	writeSuccess(w, res)
}

// VerifyEmail handler
// @Summary Verify email
// @Description Verify the emailed code and start a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.VerifyEmailRequest true "Verify Email Request"
// @Success 200 {object} model.AuthResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /auth/verify-email [post]
func (s *RestHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyEmailRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AccountApp.VerifyEmail(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	s.setAuthCookies(w, res)
	writeSuccess(w, res)
}

// ResendOTP handler
// @Summary Resend verification code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.ResendOTPRequest true "Resend Request"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/resend-otp [post]
func (s *RestHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req model.ResendOTPRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AccountApp.ResendOTP(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SubmitKYC handler
// @Summary Submit KYC
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.KYCRequest true "KYC Request"
// @Success 200 {object} model.KYCResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/kyc [post]
func (s *RestHandler) SubmitKYC(w http.ResponseWriter, r *http.Request) {
	caller := utilsContext.GetCaller(r.Context())

	var req model.KYCRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AccountApp.SubmitKYC(r.Context(), caller.ID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// VerifyPhone handler
// @Summary Verify phone
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.VerifyPhoneRequest true "Verify Phone Request"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/verify-phone [post]
func (s *RestHandler) VerifyPhone(w http.ResponseWriter, r *http.Request) {
	caller := utilsContext.GetCaller(r.Context())

	var req model.VerifyPhoneRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AccountApp.VerifyPhone(r.Context(), caller.ID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Refresh handler
// @Summary Refresh access token
// @Description Issues a new access token from the refreshToken cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} model.MessageResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/refresh [post]
func (s *RestHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	token := cookieValue(r, refreshTokenCookie)
	if token == "" {
		writeError(w, errors.SetCustomErrorWithMessage(constant.ErrUnauthorize, "No refresh token"))
		return
	}

	res, err := s.AccountApp.Refresh(r.Context(), token)
	if err != nil {
		if stderrors.Is(err, errors.SetCustomError(constant.ErrRefreshTokenExpired)) {
			s.clearAuthCookies(w)
		}
		writeError(w, err)
		return
	}

	s.setAuthCookies(w, res)
	writeSuccess(w, model.MessageResponse{Message: res.Message})
}

// Logout handler
// @Summary Logout
// @Tags Auth
// @Produce json
// @Success 200 {object} model.MessageResponse
// @Router /auth/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	res, err := s.AccountApp.Logout(r.Context(), accessToken(r))
	s.clearAuthCookies(w)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Me handler
// @Summary Current account
// @Tags Auth
// @Produce json
// @Success 200 {object} model.MeResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	caller := utilsContext.GetCaller(r.Context())

	res, err := s.AccountApp.Me(r.Context(), caller.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.MeResponse{User: res})
}

// GoogleAuth handler
// @Summary Start Google sign-in
// @Tags Auth
// @Success 302
// @Failure 500 {object} ErrorResponse
// @Router /auth/google [get]
func (s *RestHandler) GoogleAuth(w http.ResponseWriter, r *http.Request) {
	url, err := s.AccountApp.GoogleAuthURL(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}

// GoogleCallback handler
// @Summary Google sign-in callback
// @Description Redirects to the app with auth=success or auth=error
// @Tags Auth
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 302
// @Router /auth/google/callback [get]
func (s *RestHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("error") != "" {
		logger.Info("[GoogleCallback] provider returned error", zap.String("error", q.Get("error")))
		http.Redirect(w, r, s.config.App.URL+"/?auth=error", http.StatusFound)
		return
	}

	res, err := s.AccountApp.GoogleCallback(r.Context(), q.Get("state"), q.Get("code"))
	if err != nil {
		http.Redirect(w, r, s.config.App.URL+"/?auth=error", http.StatusFound)
		return
	}

	s.setAuthCookies(w, res)
	http.Redirect(w, r, s.config.App.URL+"/?auth=success", http.StatusFound)
}
