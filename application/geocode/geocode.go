package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/hoardspace/constant"
	"github.com/muhammadheryan/hoardspace/model"
	redisrepo "github.com/muhammadheryan/hoardspace/repository/redis"
	"github.com/muhammadheryan/hoardspace/thirdparty/googlemaps"
	"github.com/muhammadheryan/hoardspace/utils/errors"
	"github.com/muhammadheryan/hoardspace/utils/logger"
	validatorx "github.com/muhammadheryan/hoardspace/utils/validator"
	"go.uber.org/zap"
)

const cacheTTL = 24 * time.Hour

type GeocodeApp interface {
	Resolve(ctx context.Context, req *model.GeocodeRequest) (*model.GeoLocation, error)
}

type geocodeAppImpl struct {
	redisRepo redisrepo.Repository
	geocoder  googlemaps.Geocoder
}

// NewGeocodeApp accepts a nil geocoder when no maps key is configured.
func NewGeocodeApp(redisRepo redisrepo.Repository, geocoder googlemaps.Geocoder) GeocodeApp {
	return &geocodeAppImpl{redisRepo: redisRepo, geocoder: geocoder}
}

func (s *geocodeAppImpl) Resolve(ctx context.Context, req *model.GeocodeRequest) (*model.GeoLocation, error) {
	if req.Type == model.GeocodeTypePincode && !validatorx.IsValidPincode(req.Pincode) {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, "Invalid pincode")
	}
	if s.geocoder == nil {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrGeocodeFailed, "Geocoding service not configured")
	}

	key := cacheKey(req)
	if cached, err := s.redisRepo.Get(ctx, key); err != nil {
		logger.Warn("[Resolve] err redisRepo.Get", zap.String("error", err.Error()))
	} else if cached != "" {
		var loc model.GeoLocation
		if err := json.Unmarshal([]byte(cached), &loc); err == nil {
			return &loc, nil
		}
	}

	var (
		loc *model.GeoLocation
		err error
	)
	if req.Type == model.GeocodeTypePincode {
		loc, err = s.geocoder.GeocodePincode(ctx, req.Pincode)
	} else {
		loc, err = s.geocoder.ReverseGeocode(ctx, req.Lat, req.Lng)
	}
	if err != nil {
		logger.Error("[Resolve] err geocoder", zap.String("type", req.Type), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrGeocodeFailed)
	}
	if loc == nil {
		return nil, errors.SetCustomError(constant.ErrGeocodeNoResults)
	}

	if b, err := json.Marshal(loc); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, key, string(b), cacheTTL); err != nil {
			logger.Warn("[Resolve] err redisRepo.SetWithTTL", zap.String("error", err.Error()))
		}
	}

	return loc, nil
}

func cacheKey(req *model.GeocodeRequest) string {
	if req.Type == model.GeocodeTypePincode {
		return "geocode:pincode:" + req.Pincode
	}
	return fmt.Sprintf("geocode:coords:%.6f,%.6f", req.Lat, req.Lng)
}
