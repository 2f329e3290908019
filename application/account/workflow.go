package account

import (
	"context"

	"github.com/muhammadheryan/hoardspace/application/verification"
	"github.com/muhammadheryan/hoardspace/constant"
	"github.com/muhammadheryan/hoardspace/model"
	"github.com/muhammadheryan/hoardspace/utils/errors"
	"github.com/muhammadheryan/hoardspace/utils/logger"
	validatorx "github.com/muhammadheryan/hoardspace/utils/validator"
	"go.uber.org/zap"
)

func (s *AccountAppImpl) VerifyEmail(ctx context.Context, req *model.VerifyEmailRequest) (*model.AuthResult, error) {
	emailAddr := normalizeEmail(req.Email)

	acc, err := s.accountRepo.Get(ctx, &model.AccountFilter{Email: emailAddr})
	if err != nil {
		logger.Error("[VerifyEmail] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if acc == nil {
		return nil, errors.SetCustomError(constant.ErrAccountNotFound)
	}

	_, effects, err := verification.Transition(
		verification.StateOf(verification.SnapshotOf(acc)),
		verification.Event{Type: verification.EventEmailCodeVerified},
	)
	if err != nil {
		return nil, err
	}

	target := model.EmailTarget(acc.Email)
	valid, err := s.otpApp.Verify(ctx, target, constant.OTPPurposeVerification, req.OTP)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, errors.SetCustomError(constant.ErrInvalidOTP)
	}

	if err := s.applyEffects(ctx, "VerifyEmail", acc, effects, nil); err != nil {
		return nil, err
	}

	if verification.HasEffect(effects, verification.EffectConsumeEmailCode) {
		if err := s.otpApp.Consume(ctx, target, constant.OTPPurposeVerification); err != nil {
			logger.Error("[VerifyEmail] err otpApp.Consume", zap.String("error", err.Error()))
		}
	}
	if verification.HasEffect(effects, verification.EffectSendWelcome) {
		s.sendWelcome(ctx, acc.Email, acc.Name)
	}
	if !verification.HasEffect(effects, verification.EffectIssueTokens) {
		return &model.AuthResult{Message: "Email verified successfully! You are now logged in.", User: model.NewAccountProfile(acc)}, nil
	}
	return s.startSession(ctx, acc, "Email verified successfully! You are now logged in.")
}

func (s *AccountAppImpl) ResendOTP(ctx context.Context, req *model.ResendOTPRequest) (*model.MessageResponse, error) {
	purpose := req.Purpose
	if purpose == "" {
		purpose = constant.OTPPurposeVerification
	}

	var (
		filter *model.AccountFilter
		target model.OTPTarget
	)
	switch {
	case req.Email != "":
		filter = &model.AccountFilter{Email: normalizeEmail(req.Email)}
	case req.Phone != "":
		filter = &model.AccountFilter{Phone: validatorx.NormalizePhone(req.Phone)}
	default:
		return nil, errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, "Email or phone is required")
	}

	acc, err := s.accountRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[ResendOTP] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if acc == nil {
		return nil, errors.SetCustomError(constant.ErrAccountNotFound)
	}

	if filter.Email != "" {
		if acc.EmailVerified {
			return nil, errors.SetCustomError(constant.ErrEmailAlreadyVerified)
		}
		target = model.EmailTarget(acc.Email)
	} else {
		if acc.PhoneVerified {
			return nil, errors.SetCustomError(constant.ErrPhoneAlreadyVerified)
		}
		target = model.PhoneTarget(acc.Phone)
	}

	code, err := s.otpApp.Resend(ctx, target, purpose)
	if err != nil {
		return nil, err
	}

	// the stored code stays valid when delivery fails
	if target.Channel == constant.OTPChannelEmail {
		if err := s.mailer.SendVerificationCode(ctx, target.Value, code); err != nil {
			logger.Error("[ResendOTP] err mailer.SendVerificationCode", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrEmailDeliveryFailed)
		}
	} else {
		if err := s.texter.SendVerificationCode(ctx, target.Value, code); err != nil {
			logger.Error("[ResendOTP] err texter.SendVerificationCode", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrSMSDeliveryFailed)
		}
	}

	return &model.MessageResponse{Message: "OTP sent successfully to " + target.Value}, nil
}

func (s *AccountAppImpl) SubmitKYC(ctx context.Context, accountID uint64, req *model.KYCRequest) (*model.KYCResponse, error) {
	acc, err := s.getAccount(ctx, "SubmitKYC", accountID)
	if err != nil {
		return nil, err
	}

	phone := validatorx.NormalizePhone(req.Phone)

	other, err := s.accountRepo.Get(ctx, &model.AccountFilter{Phone: phone, ExcludeID: acc.ID})
	if err != nil {
		logger.Error("[SubmitKYC] err accountRepo.Get phone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if other != nil {
		return nil, errors.SetCustomError(constant.ErrPhoneInUse)
	}

	next, effects, err := verification.Transition(
		verification.StateOf(verification.SnapshotOf(acc)),
		verification.Event{
			Type:           verification.EventKYCSubmitted,
			SubmittedPhone: phone,
			VerifiedPhone:  verification.VerifiedPhone(acc),
		},
	)
	if err != nil {
		return nil, err
	}

	details := &model.KYCDetails{
		CompanyName: req.CompanyName,
		GSTIN:       req.GSTIN,
		PAN:         req.PAN,
		Aadhaar:     req.Aadhaar,
		Address:     req.Address,
		Documents:   req.Documents,
	}
	if details.Documents == nil {
		details.Documents = []string{}
	}

	acc.Phone = phone
	if err := s.applyEffects(ctx, "SubmitKYC", acc, effects, details); err != nil {
		return nil, err
	}

	if next == verification.StateKYCPendingReview {
		return &model.KYCResponse{
			Message:   "KYC submitted successfully.",
			KYCStatus: constant.KYCStatusPending,
		}, nil
	}

	if verification.HasEffect(effects, verification.EffectIssuePhoneCode) {
		code, err := s.otpApp.Issue(ctx, model.PhoneTarget(phone), constant.OTPPurposeVerification)
		if err != nil {
			return nil, err
		}
		// the KYC record is kept; the user can request a resend
		if err := s.texter.SendVerificationCode(ctx, phone, code); err != nil {
			logger.Error("[SubmitKYC] err texter.SendVerificationCode", zap.String("error", err.Error()))
		}
	}

	return &model.KYCResponse{
		Message:                   "KYC submitted. Please verify phone.",
		KYCStatus:                 acc.KYCStatus,
		PhoneVerificationRequired: true,
	}, nil
}

func (s *AccountAppImpl) VerifyPhone(ctx context.Context, accountID uint64, req *model.VerifyPhoneRequest) (*model.MessageResponse, error) {
	acc, err := s.getAccount(ctx, "VerifyPhone", accountID)
	if err != nil {
		return nil, err
	}

	phone := validatorx.NormalizePhone(req.Phone)
	if acc.Phone == "" || phone != acc.Phone {
		return nil, errors.SetCustomError(constant.ErrPhoneMismatch)
	}

	_, effects, err := verification.Transition(
		verification.StateOf(verification.SnapshotOf(acc)),
		verification.Event{Type: verification.EventPhoneCodeVerified},
	)
	if err != nil {
		return nil, err
	}

	target := model.PhoneTarget(phone)
	valid, err := s.otpApp.Verify(ctx, target, constant.OTPPurposeVerification, req.OTP)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, errors.SetCustomError(constant.ErrInvalidOTP)
	}

	if err := s.applyEffects(ctx, "VerifyPhone", acc, effects, nil); err != nil {
		return nil, err
	}

	if verification.HasEffect(effects, verification.EffectConsumePhoneCode) {
		if err := s.otpApp.Consume(ctx, target, constant.OTPPurposeVerification); err != nil {
			logger.Error("[VerifyPhone] err otpApp.Consume", zap.String("error", err.Error()))
		}
	}

	return &model.MessageResponse{Message: "Phone verified successfully. Account pending approval."}, nil
}

// applyEffects persists the column changes among effects and mirrors them on acc.
// Non-persistent effects (codes, emails, tokens) are left to the caller.
func (s *AccountAppImpl) applyEffects(ctx context.Context, method string, acc *model.AccountEntity, effects []verification.Effect, details *model.KYCDetails) error {
	update := &model.AccountUpdate{}
	for _, e := range effects {
		switch e {
		case verification.EffectMarkEmailVerified:
			acc.EmailVerified = true
			update.EmailVerified = &acc.EmailVerified
		case verification.EffectSaveKYCDetails:
			acc.KYCDetails = details
			update.KYCDetails = details
			update.Phone = &acc.Phone
		case verification.EffectResetPhoneVerification:
			acc.PhoneVerified = false
			update.PhoneVerified = &acc.PhoneVerified
		case verification.EffectMarkPhoneVerified:
			acc.PhoneVerified = true
			update.PhoneVerified = &acc.PhoneVerified
		case verification.EffectSetKYCPending:
			acc.KYCStatus = constant.KYCStatusPending
			update.KYCStatus = &acc.KYCStatus
		case verification.EffectClearKYCPending:
			acc.KYCStatus = constant.KYCStatusNotSubmitted
			update.KYCStatus = &acc.KYCStatus
		case verification.EffectSetKYCApproved:
			acc.KYCStatus = constant.KYCStatusApproved
			update.KYCStatus = &acc.KYCStatus
		case verification.EffectSetKYCRejected:
			acc.KYCStatus = constant.KYCStatusRejected
			update.KYCStatus = &acc.KYCStatus
		}
	}

	if update.IsEmpty() {
		return nil
	}
	if err := s.accountRepo.Update(ctx, acc.ID, update); err != nil {
		logger.Error("["+method+"] err accountRepo.Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// sendWelcome runs detached from the request; failures are only logged.
func (s *AccountAppImpl) sendWelcome(ctx context.Context, to, name string) {
	bg := context.WithoutCancel(ctx)
	s.run(func() {
		ctx, cancel := context.WithTimeout(bg, welcomeEmailTimeout)
		defer cancel()
		if err := s.mailer.SendWelcome(ctx, to, name); err != nil {
			logger.Error("[sendWelcome] err mailer.SendWelcome", zap.String("error", err.Error()))
		}
	})
}
