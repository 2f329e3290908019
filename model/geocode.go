package model

const (
	GeocodeTypePincode     = "pincode"
	GeocodeTypeCoordinates = "coordinates"
)

type GeocodeRequest struct {
	Type    string  `validate:"required,oneof=pincode coordinates"`
	Pincode string
	Lat     float64 `validate:"gte=-90,lte=90"`
	Lng     float64 `validate:"gte=-180,lte=180"`
}

// GeoLocation is a structured address resolved from a pincode or a coordinate pair.
type GeoLocation struct {
	Address string  `json:"address"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	Area    string  `json:"area"`
	ZipCode string  `json:"zipCode"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}
