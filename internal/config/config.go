package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

const defaultJWTSecret = "change-me-in-production"

type Config struct {
	Server ServerConfig

	// Database Configuration
	Database DatabaseConfig

	// Activity store and streak cache backends
	Mongo MongoConfig
	Redis RedisConfig

	Auth      AuthConfig
	Streak    StreakConfig
	RateLimit RateLimitConfig

	// Logging Configuration
	Logging LoggingConfig
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Host         string        `env:"SERVER_HOST,default=0.0.0.0"`
	Port         string        `env:"SERVER_PORT,default=3000"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT,default=15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT,default=15s"`
	Environment  string        `env:"ENVIRONMENT,default=development"` // development, staging, production
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver       string `env:"DB_DRIVER,default=mysql"` // mysql, postgres
	Host         string `env:"DB_HOST,default=localhost"`
	Port         string `env:"DB_PORT"`
	Username     string `env:"DB_USER,default=stepsocial"`
	Password     string `env:"DB_PASSWORD"`
	DatabaseName string `env:"DB_NAME,default=stepsocial"`
	SSLMode      string `env:"DB_SSLMODE,default=disable"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS,default=25"`
	MaxIdleConns int    `env:"DB_MAX_IDLE_CONNS,default=5"`
}

type MongoConfig struct {
	// ActivityStore selects where daily activity lives: "sql" or "mongo".
	ActivityStore string `env:"ACTIVITY_STORE,default=sql"`
	URI           string `env:"MONGO_URI,default=mongodb://localhost:27017"`
	Database      string `env:"MONGO_DATABASE,default=stepsocial"`
}

// RedisConfig configures the streak cache. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,default=0"`
	TTL      time.Duration `env:"STREAK_CACHE_TTL,default=6h"`
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET,default=change-me-in-production"`
	Issuer    string        `env:"JWT_ISSUER,default=stepsocial"`
	TokenTTL  time.Duration `env:"JWT_TTL,default=24h"`
}

type StreakConfig struct {
	// GapsBreak makes a calendar gap between two recorded days end the
	// longest-streak run.
	GapsBreak       bool `env:"STREAK_GAPS_BREAK,default=false"`
	DefaultStepGoal int  `env:"DEFAULT_STEP_GOAL,default=10000"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `env:"RATE_LIMIT_RPS,default=10"`
	Burst             int     `env:"RATE_LIMIT_BURST,default=20"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL,default=info"`  // debug, info, warn, error
	Format string `env:"LOG_FORMAT,default=text"` // json, text
}

// LoadConfig reads an optional .env file and then decodes the environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) IsProduction() bool {
	return cfg.Server.Environment == "production"
}

func (cfg *Config) Validate() error {
	switch cfg.Database.Driver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	switch cfg.Mongo.ActivityStore {
	case "sql", "mongo":
	default:
		return fmt.Errorf("unsupported ACTIVITY_STORE %q", cfg.Mongo.ActivityStore)
	}

	if cfg.Streak.DefaultStepGoal <= 0 {
		return fmt.Errorf("DEFAULT_STEP_GOAL must be positive, got %d", cfg.Streak.DefaultStepGoal)
	}

	if cfg.IsProduction() {
		if cfg.Auth.JWTSecret == "" || cfg.Auth.JWTSecret == defaultJWTSecret {
			return errors.New("JWT_SECRET must be set in production")
		}
		if cfg.Database.Password == "" {
			return errors.New("DB_PASSWORD must be set in production")
		}
	}
	return nil
}

// DSN builds the connection string for the configured driver.
func (cfg *Config) DSN() string {
	db := cfg.Database
	if db.Host == "" {
		db.Host = "localhost"
	}

	switch db.Driver {
	case "postgres":
		if db.Port == "" {
			db.Port = "5432"
		}
		dsn := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(db.Username, db.Password),
			Host:     net.JoinHostPort(db.Host, db.Port),
			Path:     "/" + db.DatabaseName,
			RawQuery: url.Values{"sslmode": {db.SSLMode}}.Encode(),
		}
		return dsn.String()
	default:
		if db.Port == "" {
			db.Port = "3306"
		}
		// loc=UTC keeps DATE columns on calendar days instead of shifting them.
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			db.Username,
			db.Password,
			db.Host,
			db.Port,
			db.DatabaseName,
		)
	}
}

func (cfg *Config) Addr() string {
	return fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
}
