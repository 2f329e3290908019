package constant

type OTPChannel string

const (
	OTPChannelEmail OTPChannel = "email"
	OTPChannelPhone OTPChannel = "phone"
)

type OTPPurpose string

const (
	OTPPurposeVerification OTPPurpose = "verification"
	OTPPurposeLogin        OTPPurpose = "login"
	OTPPurposeReset        OTPPurpose = "reset"
)

const OTPLength = 6
