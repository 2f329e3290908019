package main

import (
	"context"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	accountapp "github.com/muhammadheryan/hoardspace/application/account"
	bookingapp "github.com/muhammadheryan/hoardspace/application/booking"
	geocodeapp "github.com/muhammadheryan/hoardspace/application/geocode"
	hoardingapp "github.com/muhammadheryan/hoardspace/application/hoarding"
	otpapp "github.com/muhammadheryan/hoardspace/application/otp"
	tokenapp "github.com/muhammadheryan/hoardspace/application/token"
	uploadapp "github.com/muhammadheryan/hoardspace/application/upload"
	"github.com/muhammadheryan/hoardspace/cmd/config"
	redisclient "github.com/muhammadheryan/hoardspace/cmd/redis"
	_ "github.com/muhammadheryan/hoardspace/docs"
	accountRepo "github.com/muhammadheryan/hoardspace/repository/account"
	bookingRepo "github.com/muhammadheryan/hoardspace/repository/booking"
	hoardingRepo "github.com/muhammadheryan/hoardspace/repository/hoarding"
	otpRepo "github.com/muhammadheryan/hoardspace/repository/otp"
	redisRepo "github.com/muhammadheryan/hoardspace/repository/redis"
	txRepo "github.com/muhammadheryan/hoardspace/repository/tx"
	"github.com/muhammadheryan/hoardspace/thirdparty/cloudinary"
	"github.com/muhammadheryan/hoardspace/thirdparty/email"
	"github.com/muhammadheryan/hoardspace/thirdparty/google"
	"github.com/muhammadheryan/hoardspace/thirdparty/googlemaps"
	"github.com/muhammadheryan/hoardspace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/hoardspace/thirdparty/razorpay"
	"github.com/muhammadheryan/hoardspace/thirdparty/sms"
	"github.com/muhammadheryan/hoardspace/transport"
	"github.com/muhammadheryan/hoardspace/utils/logger"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// @title HoardSpace API
// @version 1.0
// @description Outdoor advertising marketplace: vendors list hoardings, buyers book them.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey InternalKey
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "hoardspace-api", cfg.Log.Level); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// redis only backs caches and oauth state, so the api still starts without it
	rdb, err := redisclient.New(cfg)
	if err != nil {
		logger.Warn("redis unavailable, caching disabled", zap.Error(err))
	} else {
		defer func() {
			_ = rdb.Close()
		}()
	}

	// Initialize repositories
	AccountRepo := accountRepo.NewAccountRepository(db)
	OTPRepo := otpRepo.NewOTPRepository(db)
	HoardingRepo := hoardingRepo.NewHoardingRepository(db)
	BookingRepo := bookingRepo.NewBookingRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository(rdb)

	// Outbound integrations
	var (
		mailer email.Sender
		texter sms.Sender
	)
	if cfg.Delivery.Mode == config.DeliveryModeLive {
		mailer = email.NewSendGridSender(cfg)
		texter = sms.NewTwilioSender(cfg)
	} else {
		mailer = email.NewLogSender(cfg.App.URL)
		texter = sms.NewLogSender(cfg.Twilio.DefaultCountryCode)
	}
	logger.Info("delivery mode", zap.String("mode", cfg.Delivery.Mode))

	identity := google.NewIdentityProvider(cfg)
	gateway := razorpay.NewGateway(cfg)

	var geocoder googlemaps.Geocoder
	if cfg.Google.MapsAPIKey != "" {
		if geocoder, err = googlemaps.NewGeocoder(cfg.Google.MapsAPIKey); err != nil {
			logger.Warn("geocoder disabled", zap.Error(err))
		}
	}

	uploader, err := cloudinary.NewUploader(cfg)
	if err != nil {
		// uploader stays nil; /upload answers "Upload service not configured"
		logger.Warn("uploads disabled", zap.Error(err))
	}

	var expiry bookingapp.ExpirationPublisher
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, booking expiry disabled", zap.Error(err))
	} else {
		expiry = publisher
		defer publisher.Close()
	}

	// Initialize application layers
	TokenApp := tokenapp.NewTokenApp(cfg)
	OTPApp := otpapp.NewOTPApp(cfg, OTPRepo)
	AccountApp := accountapp.NewAccountApp(cfg, AccountRepo, RedisRepo, OTPApp, TokenApp, mailer, texter, identity)
	HoardingApp := hoardingapp.NewHoardingApp(AccountRepo, HoardingRepo)
	BookingApp := bookingapp.NewBookingApp(cfg, TxRepo, AccountRepo, HoardingRepo, BookingRepo, gateway, expiry)
	GeocodeApp := geocodeapp.NewGeocodeApp(RedisRepo, geocoder)
	UploadApp := uploadapp.NewUploadApp(uploader)

	// Housekeeping for expired codes and sessions
	c := cron.New(cron.WithLocation(time.UTC))
	_, err = c.AddFunc(cfg.OTP.CleanupSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if n, err := OTPApp.PurgeExpired(ctx); err != nil {
			logger.Error("[cron] err PurgeExpired", zap.Error(err))
		} else if n > 0 {
			logger.Info("[cron] purged expired codes", zap.Int64("count", n))
		}
		if n, err := AccountRepo.ClearExpiredRefreshTokens(ctx, time.Now()); err != nil {
			logger.Error("[cron] err ClearExpiredRefreshTokens", zap.Error(err))
		} else if n > 0 {
			logger.Info("[cron] cleared expired refresh tokens", zap.Int64("count", n))
		}
	})
	if err != nil {
		logger.Fatal("err schedule cleanup", zap.Error(err))
	}
	c.Start()
	defer c.Stop()

	httpTransport := transport.NewTransport(cfg, AccountApp, HoardingApp, BookingApp, GeocodeApp, UploadApp)

	co := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      co.Handler(httpTransport),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
