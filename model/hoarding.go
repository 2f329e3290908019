package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/hoardspace/constant"
)

// HoardingEntity represents the hoarding table entity
type HoardingEntity struct {
	ID                   uint64                  `db:"id" json:"id"`
	Name                 string                  `db:"name" json:"name"`
	Description          string                  `db:"description" json:"description,omitempty"`
	Address              string                  `db:"address" json:"-"`
	City                 string                  `db:"city" json:"-"`
	Area                 string                  `db:"area" json:"-"`
	State                string                  `db:"state" json:"-"`
	ZipCode              string                  `db:"zip_code" json:"-"`
	Latitude             *float64                `db:"latitude" json:"-"`
	Longitude            *float64                `db:"longitude" json:"-"`
	Width                float64                 `db:"width" json:"-"`
	Height               float64                 `db:"height" json:"-"`
	Type                 string                  `db:"type" json:"type"`
	LightingType         string                  `db:"lighting_type" json:"lightingType"`
	PricePerMonth        float64                 `db:"price_per_month" json:"pricePerMonth"`
	MinimumBookingAmount float64                 `db:"minimum_booking_amount" json:"minimumBookingAmount"`
	Images               StringList              `db:"images" json:"images"`
	UniqueReach          string                  `db:"unique_reach" json:"uniqueReach,omitempty"`
	OwnerID              uint64                  `db:"owner_id" json:"owner"`
	Status               constant.HoardingStatus `db:"status" json:"status"`
	CreatedAt            time.Time               `db:"created_at" json:"createdAt"`
	UpdatedAt            *time.Time              `db:"updated_at" json:"updatedAt,omitempty"`
}

// StringList is a JSON array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("string list: unsupported type %T", src)
	}
	return json.Unmarshal(raw, (*[]string)(l))
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type HoardingLocation struct {
	Address     string       `json:"address"`
	City        string       `json:"city"`
	Area        string       `json:"area"`
	State       string       `json:"state"`
	ZipCode     string       `json:"zipCode"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// HoardingRequest is the flat listing form submitted by a vendor. Location and
// dimensions are nested only in the stored listing.
type HoardingRequest struct {
	Name                 string   `json:"name" validate:"required,min=3"`
	Description          string   `json:"description"`
	Address              string   `json:"address" validate:"required,min=5"`
	City                 string   `json:"city" validate:"required,min=2"`
	Area                 string   `json:"area" validate:"required,min=2"`
	State                string   `json:"state" validate:"required,min=2"`
	ZipCode              string   `json:"zipCode"`
	Latitude             *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude            *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Width                float64  `json:"width" validate:"gte=1"`
	Height               float64  `json:"height" validate:"gte=1"`
	Type                 string   `json:"type" validate:"required,hoardingtype"`
	LightingType         string   `json:"lightingType" validate:"required,lightingtype"`
	PricePerMonth        float64  `json:"pricePerMonth" validate:"gte=0"`
	MinimumBookingAmount float64  `json:"minimumBookingAmount" validate:"gte=0"`
	Images               []string `json:"images" validate:"omitempty,dive,url"`
	UniqueReach          string   `json:"uniqueReach"`
}

// Coordinates returns nil unless both latitude and longitude are set and non-zero.
func (r *HoardingRequest) Coordinates() *Coordinates {
	if r.Latitude == nil || r.Longitude == nil || *r.Latitude == 0 || *r.Longitude == 0 {
		return nil
	}
	return &Coordinates{Lat: *r.Latitude, Lng: *r.Longitude}
}

// HoardingFilter for listing queries. Statuses empty means any status.
type HoardingFilter struct {
	ID       uint64
	OwnerID  uint64
	City     string
	Statuses []constant.HoardingStatus
}

// Hoarding is the API projection of a listing.
type Hoarding struct {
	*HoardingEntity
	Location   HoardingLocation `json:"location"`
	Dimensions Dimensions       `json:"dimensions"`
}

func NewHoarding(e *HoardingEntity) *Hoarding {
	h := &Hoarding{
		HoardingEntity: e,
		Location: HoardingLocation{
			Address: e.Address,
			City:    e.City,
			Area:    e.Area,
			State:   e.State,
			ZipCode: e.ZipCode,
		},
		Dimensions: Dimensions{Width: e.Width, Height: e.Height},
	}
	if e.Latitude != nil && e.Longitude != nil {
		h.Location.Coordinates = &Coordinates{Lat: *e.Latitude, Lng: *e.Longitude}
	}
	return h
}

type HoardingCreateResponse struct {
	Message  string    `json:"message"`
	Hoarding *Hoarding `json:"hoarding"`
}

type HoardingListResponse struct {
	Hoardings []*Hoarding `json:"hoardings"`
}

type HoardingResponse struct {
	Hoarding *Hoarding `json:"hoarding"`
}
