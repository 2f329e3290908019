package constant

type HoardingStatus string

const (
	HoardingStatusPending  HoardingStatus = "pending"
	HoardingStatusApproved HoardingStatus = "approved"
	HoardingStatusRejected HoardingStatus = "rejected"
)

// Accepted values for hoarding type and lighting, as shown in the listing form.
var (
	HoardingTypes = []string{"Billboard", "Unipole", "Gantry", "Bus Shelter", "Kiosk", "Other"}
	LightingTypes = []string{"Lit", "Non-Lit", "Front Lit", "Back Lit"}
)

// HoardingView selects the owner-only listing feed.
const HoardingViewVendor = "vendor"
