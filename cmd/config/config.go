package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DeliveryModeLive = "live"
	DeliveryModeLog  = "log"
)

type Config struct {
	Environment string
	Log         LogConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	OTP         OTPConfig
	Booking     BookingConfig
	Internal    InternalConfig
	Delivery    DeliveryConfig
	SendGrid    SendGridConfig
	Twilio      TwilioConfig
	Razorpay    RazorpayConfig
	Google      GoogleConfig
	Cloudinary  CloudinaryConfig
	App         AppConfig
}

type LogConfig struct {
	Level string
}

type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type AuthConfig struct {
	JWTSecret              string
	RefreshSecret          string
	AccessTokenExpiration  time.Duration
	RefreshTokenExpiration time.Duration
}

type OTPConfig struct {
	EmailExpiration time.Duration
	PhoneExpiration time.Duration
	ResendCooldown  time.Duration
	CleanupSchedule string
}

type BookingConfig struct {
	CheckoutExpiration time.Duration
	Currency           string
}

// InternalConfig is shared between the API and the expiry consumer.
type InternalConfig struct {
	APIKey string
	APIURL string
}

type DeliveryConfig struct {
	Mode string
}

type SendGridConfig struct {
	APIKey      string
	FromEmail   string
	FromName    string
	SandboxMode bool
}

type TwilioConfig struct {
	AccountSID         string
	AuthToken          string
	FromPhone          string
	DefaultCountryCode string
}

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	MapsAPIKey   string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

type AppConfig struct {
	URL string
}

// Load reads configuration from the environment, with .env as an optional source.
func Load() *Config {
	_ = godotenv.Load()

	env := getEnv("ENVIRONMENT", "development")
	defaultDelivery := DeliveryModeLog
	if env == "production" {
		defaultDelivery = DeliveryModeLive
	}

	jwtSecret := getEnv("AUTH_JWT_SECRET", "change-me")
	appURL := getEnv("APP_URL", "http://localhost:3000")

	return &Config{
		Environment: env,
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", ""),
		},
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			ReadTimeout:    getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:    getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{appURL}),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "hoardspace"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Auth: AuthConfig{
			JWTSecret:              jwtSecret,
			RefreshSecret:          getEnv("AUTH_REFRESH_SECRET", jwtSecret),
			AccessTokenExpiration:  getEnvDuration("AUTH_ACCESS_TOKEN_EXPIRATION", 15*time.Minute),
			RefreshTokenExpiration: getEnvDuration("AUTH_REFRESH_TOKEN_EXPIRATION", 7*24*time.Hour),
		},
		OTP: OTPConfig{
			EmailExpiration: getEnvDuration("OTP_EMAIL_EXPIRATION", 15*time.Minute),
			PhoneExpiration: getEnvDuration("OTP_PHONE_EXPIRATION", 10*time.Minute),
			ResendCooldown:  getEnvDuration("OTP_RESEND_COOLDOWN", time.Minute),
			CleanupSchedule: getEnv("OTP_CLEANUP_SCHEDULE", "*/30 * * * *"),
		},
		Booking: BookingConfig{
			CheckoutExpiration: getEnvDuration("BOOKING_CHECKOUT_EXPIRATION", 30*time.Minute),
			Currency:           getEnv("BOOKING_CURRENCY", "INR"),
		},
		Internal: InternalConfig{
			APIKey: getEnv("INTERNAL_API_KEY", ""),
			APIURL: getEnv("INTERNAL_API_URL", "http://localhost:8080"),
		},
		Delivery: DeliveryConfig{
			Mode: getEnv("DELIVERY_MODE", defaultDelivery),
		},
		SendGrid: SendGridConfig{
			APIKey:      getEnv("SENDGRID_API_KEY", ""),
			FromEmail:   getEnv("SENDGRID_FROM_EMAIL", "no-reply@hoardspace.in"),
			FromName:    getEnv("SENDGRID_FROM_NAME", "HoardSpace"),
			SandboxMode: getEnvBool("SENDGRID_SANDBOX_MODE", false),
		},
		Twilio: TwilioConfig{
			AccountSID:         getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:          getEnv("TWILIO_AUTH_TOKEN", ""),
			FromPhone:          getEnv("TWILIO_PHONE_NUMBER", ""),
			DefaultCountryCode: getEnv("TWILIO_DEFAULT_COUNTRY_CODE", "+91"),
		},
		Razorpay: RazorpayConfig{
			KeyID:     getEnv("RAZORPAY_KEY_ID", ""),
			KeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),
		},
		Google: GoogleConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/auth/google/callback"),
			MapsAPIKey:   getEnv("GOOGLE_MAPS_API_KEY", ""),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
			APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
			Folder:    getEnv("CLOUDINARY_FOLDER", "hoardspace"),
		},
		App: AppConfig{
			URL: appURL,
		},
	}
}

// GetDSN builds the MySQL DSN. parseTime is required for DATETIME scanning.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&charset=utf8mb4",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings such as "15m" or "168h".
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// getEnvList splits a comma-separated value, dropping empty entries.
func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
