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

// Checkout handler
// @Summary Checkout
// @Description Price the date range, open a gateway order and hold a pending booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body model.CheckoutRequest true "Checkout Request"
// @Success 200 {object} model.CheckoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings/checkout [post]
func (s *RestHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req model.CheckoutRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BookingApp.Checkout(r.Context(), utilsContext.GetCaller(r.Context()), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// VerifyPayment handler
// @Summary Verify payment
// @Description Confirm a pending booking from the gateway's signed callback
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body model.VerifyPaymentRequest true "Verify Payment Request"
// @Success 200 {object} model.VerifyPaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /bookings/verify [post]
func (s *RestHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyPaymentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BookingApp.VerifyPayment(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CancelBooking handler
// @Summary Cancel an expired booking
// @Description Internal. Called by the booking expiration consumer.
// @Tags Internal
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} model.MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 400 {object} ErrorResponse
// @Security InternalKey
// @Router /internal/v1/bookings/{id}/cancel [post]
func (s *RestHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrBookingNotFound))
		return
	}

	if err := s.BookingApp.CancelExpired(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.MessageResponse{Message: "Booking cancelled"})
}
