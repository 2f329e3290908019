package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrForbidden
	ErrEmailNotVerified
	ErrEmailAlreadyVerified
	ErrPhoneAlreadyVerified
	ErrPhoneInUse
	ErrPhoneMismatch
	ErrInvalidOTP
	ErrOTPCooldown
	ErrEmailDeliveryFailed
	ErrSMSDeliveryFailed
	ErrAccountNotFound
	ErrRefreshTokenExpired
	ErrKYCNotSubmitted
	ErrKYCPending
	ErrKYCRejected
	ErrKYCAlreadyApproved
	ErrInvalidTransition
	ErrVendorOnly
	ErrHoardingNotFound
	ErrBookingNotFound
	ErrInvalidBookingStatus
	ErrBelowMinimumBooking
	ErrInvalidSignature
	ErrPaymentGateway
	ErrOAuthNotConfigured
	ErrOAuthFailed
	ErrGeocodeNoResults
	ErrGeocodeFailed
	ErrUploadFailed
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "Internal Server Error",
	ErrNotFound:             "data not found",
	ErrInvalidRequest:       "invalid request",
	ErrUnauthorize:          "Unauthorized",
	ErrCredentialExists:     "Email already registered and verified. Please login instead.",
	ErrInvalidPassword:      "Invalid credentials",
	ErrForbidden:            "Forbidden",
	ErrEmailNotVerified:     "Email not verified. A verification code has been sent to your email.",
	ErrEmailAlreadyVerified: "Email already verified",
	ErrPhoneAlreadyVerified: "Phone already verified",
	ErrPhoneInUse:           "Phone number already in use",
	ErrPhoneMismatch:        "Phone does not match the submitted KYC phone",
	ErrInvalidOTP:           "Invalid or expired OTP",
	ErrOTPCooldown:          "Please wait before requesting another OTP. Try again in 1 minute.",
	ErrEmailDeliveryFailed:  "Failed to send OTP email. Please try again.",
	ErrSMSDeliveryFailed:    "Failed to send OTP SMS. Please try again.",
	ErrAccountNotFound:      "User not found",
	ErrRefreshTokenExpired:  "Refresh token expired",
	ErrKYCNotSubmitted:      "Please complete your KYC to continue.",
	ErrKYCPending:           "Your KYC is under review. Please wait for approval.",
	ErrKYCRejected:          "Your KYC was rejected. Please resubmit your details.",
	ErrKYCAlreadyApproved:   "KYC already approved",
	ErrInvalidTransition:    "This action is not allowed for the current account state",
	ErrVendorOnly:           "Only vendors can list hoardings",
	ErrHoardingNotFound:     "Hoarding not found",
	ErrBookingNotFound:      "Booking not found",
	ErrInvalidBookingStatus: "Booking is no longer pending",
	ErrBelowMinimumBooking:  "Booking amount is below the minimum for this hoarding",
	ErrInvalidSignature:     "Invalid signature",
	ErrPaymentGateway:       "Payment initiation failed",
	ErrOAuthNotConfigured:   "Google OAuth not configured",
	ErrOAuthFailed:          "Google sign-in failed",
	ErrGeocodeNoResults:     "No results found",
	ErrGeocodeFailed:        "Geocoding failed",
	ErrUploadFailed:         "Upload failed",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusNotFound,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrCredentialExists:     http.StatusBadRequest,
	ErrInvalidPassword:      http.StatusUnauthorized,
	ErrForbidden:            http.StatusForbidden,
	ErrEmailNotVerified:     http.StatusForbidden,
	ErrEmailAlreadyVerified: http.StatusBadRequest,
	ErrPhoneAlreadyVerified: http.StatusBadRequest,
	ErrPhoneInUse:           http.StatusBadRequest,
	ErrPhoneMismatch:        http.StatusBadRequest,
	ErrInvalidOTP:           http.StatusBadRequest,
	ErrOTPCooldown:          http.StatusTooManyRequests,
	ErrEmailDeliveryFailed:  http.StatusInternalServerError,
	ErrSMSDeliveryFailed:    http.StatusInternalServerError,
	ErrAccountNotFound:      http.StatusNotFound,
	ErrRefreshTokenExpired:  http.StatusUnauthorized,
	ErrKYCNotSubmitted:      http.StatusForbidden,
	ErrKYCPending:           http.StatusForbidden,
	ErrKYCRejected:          http.StatusForbidden,
	ErrKYCAlreadyApproved:   http.StatusBadRequest,
	ErrInvalidTransition:    http.StatusBadRequest,
	ErrVendorOnly:           http.StatusForbidden,
	ErrHoardingNotFound:     http.StatusNotFound,
	ErrBookingNotFound:      http.StatusNotFound,
	ErrInvalidBookingStatus: http.StatusBadRequest,
	ErrBelowMinimumBooking:  http.StatusBadRequest,
	ErrInvalidSignature:     http.StatusBadRequest,
	ErrPaymentGateway:       http.StatusInternalServerError,
	ErrOAuthNotConfigured:   http.StatusInternalServerError,
	ErrOAuthFailed:          http.StatusInternalServerError,
	ErrGeocodeNoResults:     http.StatusNotFound,
	ErrGeocodeFailed:        http.StatusInternalServerError,
	ErrUploadFailed:         http.StatusInternalServerError,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrUnauthorize:          "0004",
	ErrCredentialExists:     "0005",
	ErrInvalidPassword:      "0006",
	ErrForbidden:            "0007",
	ErrEmailNotVerified:     "0008",
	ErrEmailAlreadyVerified: "0009",
	ErrPhoneAlreadyVerified: "0010",
	ErrPhoneInUse:           "0011",
	ErrPhoneMismatch:        "0012",
	ErrInvalidOTP:           "0013",
	ErrOTPCooldown:          "0014",
	ErrEmailDeliveryFailed:  "0015",
	ErrSMSDeliveryFailed:    "0016",
	ErrAccountNotFound:      "0017",
	ErrRefreshTokenExpired:  "0018",
	ErrKYCNotSubmitted:      "0019",
	ErrKYCPending:           "0020",
	ErrKYCRejected:          "0021",
	ErrKYCAlreadyApproved:   "0022",
	ErrInvalidTransition:    "0023",
	ErrVendorOnly:           "0024",
	ErrHoardingNotFound:     "0025",
	ErrBookingNotFound:      "0026",
	ErrInvalidBookingStatus: "0027",
	ErrBelowMinimumBooking:  "0028",
	ErrInvalidSignature:     "0029",
	ErrPaymentGateway:       "0030",
	ErrOAuthNotConfigured:   "0031",
	ErrOAuthFailed:          "0032",
	ErrGeocodeNoResults:     "0033",
	ErrGeocodeFailed:        "0034",
	ErrUploadFailed:         "0035",
}
