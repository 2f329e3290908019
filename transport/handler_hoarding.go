package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/hoardspace/constant"
	"github.com/muhammadheryan/hoardspace/model"
	utilsContext "github.com/muhammadheryan/hoardspace/utils/context"
	"github.com/muhammadheryan/hoardspace/utils/errors"
)

// ListHoardings handler
// @Summary List hoardings
// @Description Public feed filtered by city. view=vendor returns the caller's own listings.
// @Tags Hoarding
// @Produce json
// @Param city query string false "City (case-insensitive)"
// @Param view query string false "vendor"
// @Success 200 {object} model.HoardingListResponse
// @Failure 403 {object} ErrorResponse
// @Router /hoardings [get]
func (s *RestHandler) ListHoardings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := utilsContext.GetCaller(ctx)

	var (
		res []*model.Hoarding
		err error
	)
	if r.URL.Query().Get("view") == "vendor" {
		res, err = s.HoardingApp.ListByOwner(ctx, caller)
	} else {
		res, err = s.HoardingApp.List(ctx, caller, r.URL.Query().Get("city"))
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.HoardingListResponse{Hoardings: res})
}

// GetHoarding handler
// @Summary Get hoarding
// @Tags Hoarding
// @Produce json
// @Param id path int true "Hoarding ID"
// @Success 200 {object} model.HoardingResponse
// @Failure 404 {object} ErrorResponse
// @Router /hoardings/{id} [get]
func (s *RestHandler) GetHoarding(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrHoardingNotFound))
		return
	}

	res, err := s.HoardingApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.HoardingResponse{Hoarding: res})
}

// CreateHoarding handler
// @Summary Create hoarding
// @Description Vendor with a verified email and approved KYC lists a hoarding
// @Tags Hoarding
// @Accept json
// @Produce json
// @Param request body model.HoardingRequest true "Hoarding Request"
// @Success 201 {object} model.HoardingCreateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /hoardings [post]
func (s *RestHandler) CreateHoarding(w http.ResponseWriter, r *http.Request) {
	var req model.HoardingRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.HoardingApp.Create(r.Context(), utilsContext.GetCaller(r.Context()), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}
