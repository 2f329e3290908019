// Package verification models the account verification workflow as an
// explicit state type and a pure transition function. It performs no I/O:
// callers derive the current state from the account, feed an event, and
// apply the returned effects in order.
package verification

import (
	"github.com/muhammadheryan/hoardspace/constant"
	"github.com/muhammadheryan/hoardspace/utils/errors"
)

var errEmailRequired = errors.SetCustomErrorWithMessage(constant.ErrEmailNotVerified, "Please verify your email first.")

type State int

const (
	StateUnverified State = iota
	StateEmailVerified
	StateKYCSubmittedPhoneUnverified
	StateKYCPendingReview
	StateKYCApproved
	StateKYCRejected
)

var stateNames = map[State]string{
	StateUnverified:                  "unverified",
	StateEmailVerified:               "email_verified",
	StateKYCSubmittedPhoneUnverified: "kyc_submitted_phone_unverified",
	StateKYCPendingReview:            "kyc_pending_review",
	StateKYCApproved:                 "kyc_approved",
	StateKYCRejected:                 "kyc_rejected",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

type EventType int

const (
	EventEmailCodeVerified EventType = iota + 1
	EventKYCSubmitted
	EventPhoneCodeVerified
	EventKYCApproved
	EventKYCRejected
)

// Event is an input to Transition. SubmittedPhone and VerifiedPhone are only
// read for EventKYCSubmitted; VerifiedPhone is empty when no phone is verified.
type Event struct {
	Type           EventType
	SubmittedPhone string
	VerifiedPhone  string
}

type Effect int

const (
	EffectMarkEmailVerified Effect = iota + 1
	EffectConsumeEmailCode
	EffectSendWelcome
	EffectIssueTokens
	EffectSaveKYCDetails
	EffectResetPhoneVerification
	EffectIssuePhoneCode
	EffectMarkPhoneVerified
	EffectSetKYCPending
	EffectConsumePhoneCode
	EffectSetKYCApproved
	EffectSetKYCRejected
	EffectClearKYCPending
)

// Snapshot is the subset of account fields the workflow depends on.
type Snapshot struct {
	EmailVerified bool
	PhoneVerified bool
	Phone         string
	KYCStatus     constant.KYCStatus
	KYCSubmitted  bool
}

// StateOf derives the workflow state from persisted account flags.
func StateOf(s Snapshot) State {
	switch {
	case !s.EmailVerified:
		return StateUnverified
	case s.KYCStatus.IsApproved():
		return StateKYCApproved
	case s.KYCStatus == constant.KYCStatusPending:
		return StateKYCPendingReview
	case s.KYCSubmitted && !s.PhoneVerified:
		return StateKYCSubmittedPhoneUnverified
	case s.KYCStatus == constant.KYCStatusRejected:
		return StateKYCRejected
	default:
		return StateEmailVerified
	}
}

// Transition returns the next state and the effects to apply, or a typed
// error when the event is not allowed from the given state.
func Transition(from State, ev Event) (State, []Effect, error) {
	switch ev.Type {
	case EventEmailCodeVerified:
		if from != StateUnverified {
			return from, nil, errors.SetCustomError(constant.ErrEmailAlreadyVerified)
		}
		return StateEmailVerified, []Effect{
			EffectMarkEmailVerified,
			EffectConsumeEmailCode,
			EffectSendWelcome,
			EffectIssueTokens,
		}, nil

	case EventKYCSubmitted:
		switch from {
		case StateUnverified:
			return from, nil, errEmailRequired
		case StateKYCApproved:
			return from, nil, errors.SetCustomError(constant.ErrKYCAlreadyApproved)
		}
		if ev.VerifiedPhone != "" && ev.SubmittedPhone == ev.VerifiedPhone {
			return StateKYCPendingReview, []Effect{
				EffectSaveKYCDetails,
				EffectSetKYCPending,
			}, nil
		}
		effects := []Effect{
			EffectSaveKYCDetails,
			EffectResetPhoneVerification,
			EffectIssuePhoneCode,
		}
		// pending is only reachable through a verified phone
		if from == StateKYCPendingReview {
			effects = append(effects, EffectClearKYCPending)
		}
		return StateKYCSubmittedPhoneUnverified, effects, nil

	case EventPhoneCodeVerified:
		switch from {
		case StateKYCSubmittedPhoneUnverified:
			return StateKYCPendingReview, []Effect{
				EffectMarkPhoneVerified,
				EffectSetKYCPending,
				EffectConsumePhoneCode,
			}, nil
		case StateUnverified:
			return from, nil, errEmailRequired
		case StateKYCPendingReview, StateKYCApproved:
			return from, nil, errors.SetCustomError(constant.ErrPhoneAlreadyVerified)
		}
		return from, nil, errors.SetCustomError(constant.ErrInvalidTransition)

	case EventKYCApproved, EventKYCRejected:
		if from != StateKYCPendingReview {
			return from, nil, errors.SetCustomError(constant.ErrInvalidTransition)
		}
		if ev.Type == EventKYCApproved {
			return StateKYCApproved, []Effect{EffectSetKYCApproved}, nil
		}
		return StateKYCRejected, []Effect{EffectSetKYCRejected}, nil
	}

	return from, nil, errors.SetCustomError(constant.ErrInvalidTransition)
}

// CheckBookingEligibility allows checkout only for email-verified accounts
// with an approved KYC. Each other KYC status has its own error code.
func CheckBookingEligibility(s Snapshot) error {
	if !s.EmailVerified {
		return errEmailRequired
	}
	switch {
	case s.KYCStatus.IsApproved():
		return nil
	case s.KYCStatus == constant.KYCStatusPending:
		return errors.SetCustomError(constant.ErrKYCPending)
	case s.KYCStatus == constant.KYCStatusRejected:
		return errors.SetCustomError(constant.ErrKYCRejected)
	default:
		return errors.SetCustomError(constant.ErrKYCNotSubmitted)
	}
}

func HasEffect(effects []Effect, e Effect) bool {
	for _, eff := range effects {
		if eff == e {
			return true
		}
	}
	return false
}
