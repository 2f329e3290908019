package verification

import "github.com/muhammadheryan/hoardspace/model"

func SnapshotOf(a *model.AccountEntity) Snapshot {
	return Snapshot{
		EmailVerified: a.EmailVerified,
		PhoneVerified: a.PhoneVerified,
		Phone:         a.Phone,
		KYCStatus:     a.KYCStatus,
		KYCSubmitted:  a.KYCDetails != nil,
	}
}

// VerifiedPhone returns the account phone only when it has been verified.
func VerifiedPhone(a *model.AccountEntity) string {
	if a.PhoneVerified {
		return a.Phone
	}
	return ""
}
