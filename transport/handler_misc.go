package transport

import (
	"net/http"
	"strconv"

	"github.com/muhammadheryan/hoardspace/application/upload"
	"github.com/muhammadheryan/hoardspace/constant"
	"github.com/muhammadheryan/hoardspace/model"
	"github.com/muhammadheryan/hoardspace/utils/errors"
	validatorx "github.com/muhammadheryan/hoardspace/utils/validator"
)

// Geocode handler
// @Summary Geocode
// @Description Resolve an Indian pincode or a coordinate pair to a structured address
// @Tags Geocode
// @Produce json
// @Param type query string true "pincode or coordinates"
// @Param pincode query string false "6-digit pincode"
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 200 {object} model.GeoLocation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /geocode [get]
func (s *RestHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := model.GeocodeRequest{
		Type:    q.Get("type"),
		Pincode: q.Get("pincode"),
	}

	if req.Type == model.GeocodeTypeCoordinates {
		lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
		lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
		if errLat != nil || errLng != nil {
			writeError(w, errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, "Latitude and longitude are required"))
			return
		}
		req.Lat, req.Lng = lat, lng
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, validatorx.Message(err)))
		return
	}

	res, err := s.GeocodeApp.Resolve(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Upload handler
// @Summary Upload a file
// @Description Stores an image or document and returns its public URL. Max 10 MB.
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File"
// @Success 200 {object} model.UploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /upload [post]
func (s *RestHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxFileSize)
	if err := r.ParseMultipartForm(upload.MaxFileSize); err != nil {
		writeError(w, errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, "File too large or malformed form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, "No file provided"))
		return
	}
	defer file.Close()

	res, err := s.UploadApp.Upload(r.Context(), file, header.Filename)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
