package model

import (
	"time"

	"github.com/muhammadheryan/hoardspace/constant"
)

// OTPEntity represents the otp table entity
type OTPEntity struct {
	ID        uint64              `db:"id"`
	Channel   constant.OTPChannel `db:"channel"`
	Target    string              `db:"target"`
	Code      string              `db:"code"`
	Purpose   constant.OTPPurpose `db:"purpose"`
	ExpiresAt time.Time           `db:"expires_at"`
	CreatedAt time.Time           `db:"created_at"`
}

// OTPTarget is the contact address a code is bound to.
type OTPTarget struct {
	Channel constant.OTPChannel
	Value   string
}

func EmailTarget(email string) OTPTarget {
	return OTPTarget{Channel: constant.OTPChannelEmail, Value: email}
}

func PhoneTarget(phone string) OTPTarget {
	return OTPTarget{Channel: constant.OTPChannelPhone, Value: phone}
}

// OTPFilter selects codes for a (channel, target, purpose) pair, optionally by code.
type OTPFilter struct {
	Channel constant.OTPChannel
	Target  string
	Purpose constant.OTPPurpose
	Code    string
}
