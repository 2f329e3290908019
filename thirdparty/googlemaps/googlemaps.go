package googlemaps

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/hoardspace/model"
	"googlemaps.github.io/maps"
)

// Geocoder resolves pincodes and coordinates to structured addresses.
// A nil location with a nil error means the provider found nothing.
type Geocoder interface {
	GeocodePincode(ctx context.Context, pincode string) (*model.GeoLocation, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (*model.GeoLocation, error)
}

type geocoder struct {
	client *maps.Client
}

func NewGeocoder(apiKey string) (Geocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("maps client: %w", err)
	}
	return &geocoder{client: client}, nil
}

func (g *geocoder) GeocodePincode(ctx context.Context, pincode string) (*model.GeoLocation, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address: pincode + ",India",
	})
	if err != nil {
		return nil, fmt.Errorf("geocode %s: %w", pincode, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	loc := ParseResult(results[0])
	loc.Lat = results[0].Geometry.Location.Lat
	loc.Lng = results[0].Geometry.Location.Lng
	return loc, nil
}

func (g *geocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (*model.GeoLocation, error) {
	results, err := g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lng},
	})
	if err != nil {
		return nil, fmt.Errorf("reverse geocode %f,%f: %w", lat, lng, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	loc := ParseResult(results[0])
	loc.Lat = lat
	loc.Lng = lng
	return loc, nil
}

// ParseResult maps address components onto a GeoLocation. Area prefers
// sublocality and falls back to sublocality_level_2 or neighborhood.
func ParseResult(r maps.GeocodingResult) *model.GeoLocation {
	loc := &model.GeoLocation{Address: r.FormattedAddress}

	for _, c := range r.AddressComponents {
		switch {
		case hasType(c.Types, "locality", "postal_town"):
			loc.City = c.LongName
		case hasType(c.Types, "administrative_area_level_1"):
			loc.State = c.LongName
		case hasType(c.Types, "sublocality", "sublocality_level_1"):
			loc.Area = c.LongName
		case hasType(c.Types, "postal_code"):
			loc.ZipCode = c.LongName
		}
	}

	if loc.Area == "" {
		for _, c := range r.AddressComponents {
			if hasType(c.Types, "sublocality_level_2", "neighborhood") {
				loc.Area = c.LongName
			}
		}
	}

	return loc
}

func hasType(types []string, want ...string) bool {
	for _, t := range types {
		for _, w := range want {
			if t == w {
				return true
			}
		}
	}
	return false
}
