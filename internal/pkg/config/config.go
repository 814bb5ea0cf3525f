package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, cookie keys)
// - default: Values common across all environments (restaurant policy, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	Restaurant   RestaurantConfig
	Mail         MailConfig
	Session      SessionConfig
	Confirmation ConfirmationConfig
	NATS         NATSConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Paris"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Paris"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

// RestaurantConfig holds the seating policy. The last seating hour leaves room
// for the two hours a party is assumed to occupy its table.
type RestaurantConfig struct {
	Name             string `envconfig:"RESTAURANT_NAME" default:"Le Gourmet"`
	TimeZone         string `envconfig:"RESTAURANT_TIMEZONE" default:"Europe/Paris"`
	TotalTables      int    `envconfig:"TOTAL_TABLES" default:"15"`
	SeatsPerTable    int    `envconfig:"SEATS_PER_TABLE" default:"4"`
	FirstSeatingHour int    `envconfig:"FIRST_SEATING_HOUR" default:"12"`
	LastSeatingHour  int    `envconfig:"LAST_SEATING_HOUR" default:"21"`
	MinPartySize     int    `envconfig:"MIN_PARTY_SIZE" default:"1"`
	MaxPartySize     int    `envconfig:"MAX_PARTY_SIZE" default:"20"`
	ContactPhone     string `envconfig:"RESTAURANT_PHONE" default:"+212670251030"`
	Address          string `envconfig:"RESTAURANT_ADDRESS" default:"123 Rue de la Gastronomie, 75001 Paris"`
}

type MailConfig struct {
	Driver        string        `envconfig:"MAIL_DRIVER" default:"smtp"` // smtp | mailersend | log (dev only, never delivers)
	FromName      string        `envconfig:"MAIL_FROM_NAME" default:"Le Gourmet"`
	FromEmail     string        `envconfig:"MAIL_FROM" default:"reservations@legourmet.com"`
	Timeout       time.Duration `envconfig:"MAIL_TIMEOUT" default:"10s"`
	SMTPHost      string        `envconfig:"SMTP_HOST" default:"localhost"`
	SMTPPort      int           `envconfig:"SMTP_PORT" default:"25"`
	SMTPUser      string        `envconfig:"SMTP_USER"`
	SMTPPass      string        `envconfig:"SMTP_PASS"`
	SMTPStartTLS  string        `envconfig:"SMTP_STARTTLS" default:"auto"` // auto | off | required
	MailerSendKey string        `envconfig:"MAILERSEND_API_KEY"`
}

type SessionConfig struct {
	CookieName string `envconfig:"COOKIE_NAME" default:"reservation_confirmation"`
	HashKey    string `envconfig:"COOKIE_HASH_KEY" required:"true"`
	BlockKey   string `envconfig:"COOKIE_BLOCK_KEY" required:"true"`
	Secure     bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite   string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type ConfirmationConfig struct {
	Store         string        `envconfig:"CONFIRMATION_STORE" default:"memory"` // memory | redis
	TTL           time.Duration `envconfig:"CONFIRMATION_TTL" default:"15m"`
	RedisURL      string        `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
}

type NATSConfig struct {
	URL     string `envconfig:"NATS_URL"`
	Subject string `envconfig:"NATS_SUBJECT" default:"reservation.confirmed"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c RestaurantConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid RESTAURANT_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// Keys decodes the base64 cookie keys. The block key enables encryption and must
// be 16, 24 or 32 bytes long.
func (c SessionConfig) Keys() (hashKey, blockKey []byte, err error) {
	hashKey, err = decodeKey(c.HashKey)
	if err != nil {
		return nil, nil, fmt.Errorf("COOKIE_HASH_KEY: %w", err)
	}
	blockKey, err = decodeKey(c.BlockKey)
	if err != nil {
		return nil, nil, fmt.Errorf("COOKIE_BLOCK_KEY: %w", err)
	}
	switch len(blockKey) {
	case 16, 24, 32:
	default:
		return nil, nil, fmt.Errorf("COOKIE_BLOCK_KEY must decode to 16, 24 or 32 bytes (got %d)", len(blockKey))
	}
	return hashKey, blockKey, nil
}

func decodeKey(v string) ([]byte, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, errors.New("empty key")
	}
	if b, err := base64.StdEncoding.DecodeString(v); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(v)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if strings.TrimSpace(cfg.Server.Port) == "" {
		return Config{}, errors.New("PORT must not be blank")
	}
	if _, err := cfg.Restaurant.Location(); err != nil {
		return Config{}, err
	}
	if _, _, err := cfg.Session.Keys(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Paris",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Paris",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		Restaurant: RestaurantConfig{
			Name:             "Le Gourmet",
			TimeZone:         "Europe/Paris",
			TotalTables:      15,
			SeatsPerTable:    4,
			FirstSeatingHour: 12,
			LastSeatingHour:  21,
			MinPartySize:     1,
			MaxPartySize:     20,
		},
		Mail: MailConfig{
			Driver:    "log",
			FromName:  "Le Gourmet",
			FromEmail: "reservations@legourmet.com",
			Timeout:   2 * time.Second,
		},
		Session: SessionConfig{
			CookieName: "reservation_confirmation",
			// 32 zero-ish bytes; tests only
			HashKey:  base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef")),
			BlockKey: base64.StdEncoding.EncodeToString([]byte("abcdef0123456789abcdef0123456789")),
			SameSite: "Lax",
		},
		Confirmation: ConfirmationConfig{
			Store: "memory",
			TTL:   5 * time.Minute,
		},
	}
}
