package constant

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

type AuthProvider string

const (
	AuthProviderLocal  AuthProvider = "local"
	AuthProviderGoogle AuthProvider = "google"
)

type KYCStatus string

const (
	KYCStatusNotSubmitted KYCStatus = "not_submitted"
	KYCStatusPending      KYCStatus = "pending"
	KYCStatusApproved     KYCStatus = "approved"
	KYCStatusRejected     KYCStatus = "rejected"
	// KYCStatusVerified is a legacy value written by older admin tooling.
	KYCStatusVerified KYCStatus = "verified"
)

// IsApproved reports whether the status counts as an approved KYC.
func (s KYCStatus) IsApproved() bool {
	return s == KYCStatusApproved || s == KYCStatusVerified
}
