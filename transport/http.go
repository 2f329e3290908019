package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	accountapp "github.com/muhammadheryan/hoardspace/application/account"
	bookingapp "github.com/muhammadheryan/hoardspace/application/booking"
	geocodeapp "github.com/muhammadheryan/hoardspace/application/geocode"
	hoardingapp "github.com/muhammadheryan/hoardspace/application/hoarding"
	uploadapp "github.com/muhammadheryan/hoardspace/application/upload"
	"github.com/muhammadheryan/hoardspace/cmd/config"
	"github.com/muhammadheryan/hoardspace/model"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	config      *config.Config
	AccountApp  accountapp.AccountApp
	HoardingApp hoardingapp.HoardingApp
	BookingApp  bookingapp.BookingApp
	GeocodeApp  geocodeapp.GeocodeApp
	UploadApp   uploadapp.UploadApp
}

func NewTransport(
	cfg *config.Config,
	AccountApp accountapp.AccountApp,
	HoardingApp hoardingapp.HoardingApp,
	BookingApp bookingapp.BookingApp,
	GeocodeApp geocodeapp.GeocodeApp,
	UploadApp uploadapp.UploadApp,
) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		config:      cfg,
		AccountApp:  AccountApp,
		HoardingApp: HoardingApp,
		BookingApp:  BookingApp,
		GeocodeApp:  GeocodeApp,
		UploadApp:   UploadApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.HandleFunc("/healthz", rh.Health).Methods(http.MethodGet)

	// Public routes
	mux.HandleFunc("/auth/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/auth/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/auth/verify-email", rh.VerifyEmail).Methods(http.MethodPost)
	mux.HandleFunc("/auth/resend-otp", rh.ResendOTP).Methods(http.MethodPost)
	mux.HandleFunc("/auth/refresh", rh.Refresh).Methods(http.MethodPost)
	mux.HandleFunc("/auth/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/auth/google", rh.GoogleAuth).Methods(http.MethodGet)
	mux.HandleFunc("/auth/google/callback", rh.GoogleCallback).Methods(http.MethodGet)
	mux.HandleFunc("/hoardings", rh.ListHoardings).Methods(http.MethodGet)
	mux.HandleFunc("/hoardings/{id:[0-9]+}", rh.GetHoarding).Methods(http.MethodGet)
	mux.HandleFunc("/bookings/verify", rh.VerifyPayment).Methods(http.MethodPost)
	mux.HandleFunc("/geocode", rh.Geocode).Methods(http.MethodGet)
	mux.HandleFunc("/upload", rh.Upload).Methods(http.MethodPost)

	// protected routes
	protected := mux.NewRoute().Subrouter()
	protected.Use(RequireAuth())
	protected.HandleFunc("/auth/me", rh.Me).Methods(http.MethodGet)
	protected.HandleFunc("/auth/kyc", rh.SubmitKYC).Methods(http.MethodPost)
	protected.HandleFunc("/auth/verify-phone", rh.VerifyPhone).Methods(http.MethodPost)
	protected.HandleFunc("/hoardings", rh.CreateHoarding).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/checkout", rh.Checkout).Methods(http.MethodPost)

	// internal routes, called by the booking expiry consumer
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))
	internal.HandleFunc("/bookings/{id:[0-9]+}/cancel", rh.CancelBooking).Methods(http.MethodPost)

	// middleware
	mux.Use(RecoveryMiddleware())
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(AccountApp))

	return mux
}

// Health handler
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} model.MessageResponse
// @Router /healthz [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, model.MessageResponse{Message: "ok"})
}
