package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Venue   VenueConfig
	Catalog CatalogConfig
	Redis   RedisConfig
	Broker  BrokerConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// JWTConfig verifies tokens issued by the identity provider.
type JWTConfig struct {
	Secret    string `envconfig:"JWT_SECRET" required:"true"`
	Issuer    string `envconfig:"JWT_ISSUER" default:""`
	AdminRole string `envconfig:"JWT_ADMIN_ROLE" default:"admin"`
}

// VenueConfig holds pricing defaults. Fallback rates apply to catalog names
// the add-ons catalog does not return.
type VenueConfig struct {
	TimeZone              string          `envconfig:"VENUE_TIMEZONE" default:"UTC"`
	TaxRate               decimal.Decimal `envconfig:"VENUE_TAX_RATE" default:"0.07"`
	FallbackSeatRate      decimal.Decimal `envconfig:"VENUE_FALLBACK_SEAT_RATE" default:"0"`
	FallbackRegularRate   decimal.Decimal `envconfig:"VENUE_FALLBACK_REGULAR_RATE" default:"0"`
	FallbackSaturdayRate  decimal.Decimal `envconfig:"VENUE_FALLBACK_SATURDAY_RATE" default:"0"`
	FallbackCleaningSmall decimal.Decimal `envconfig:"VENUE_FALLBACK_CLEANING_SMALL" default:"0"`
	FallbackCleaningLarge decimal.Decimal `envconfig:"VENUE_FALLBACK_CLEANING_LARGE" default:"0"`
	FallbackOvertimeRate  decimal.Decimal `envconfig:"VENUE_FALLBACK_OVERTIME_RATE" default:"0"`
	PriceTolerance        decimal.Decimal `envconfig:"VENUE_PRICE_TOLERANCE" default:"0.01"`
}

// CatalogConfig points at the venue REST API. Token authenticates catalog
// reads; reservation writes forward the caller's own token.
type CatalogConfig struct {
	BaseURL string        `envconfig:"CATALOG_API_URL" required:"true"`
	Token   string        `envconfig:"CATALOG_API_TOKEN" default:""`
	Timeout time.Duration `envconfig:"CATALOG_API_TIMEOUT" default:"10s"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	RateTTL  time.Duration `envconfig:"REDIS_RATE_TTL" default:"5m"`
}

type BrokerConfig struct {
	URL      string `envconfig:"AMQP_URL" default:""`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"venue.reservations"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *VenueConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load venue time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// LoadConfig reads a .env file when present outside production, then the
// process environment.
func LoadConfig() (Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
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
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:    "test-secret",
			AdminRole: "admin",
		},
		Venue: VenueConfig{
			TimeZone:       "UTC",
			TaxRate:        decimal.RequireFromString("0.07"),
			PriceTolerance: decimal.RequireFromString("0.01"),
		},
		Catalog: CatalogConfig{
			BaseURL: "http://localhost:8085",
			Timeout: 5 * time.Second,
		},
		Redis: RedisConfig{
			Addr:    "localhost:6379",
			RateTTL: time.Minute,
		},
		Broker: BrokerConfig{
			Exchange: "venue.reservations",
		},
	}
}
