package config

import (
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"SERVER_HOST", "SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "ENVIRONMENT",
	"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	"ACTIVITY_STORE", "MONGO_URI", "MONGO_DATABASE",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "STREAK_CACHE_TTL",
	"JWT_SECRET", "JWT_ISSUER", "JWT_TTL",
	"STREAK_GAPS_BREAK", "DEFAULT_STEP_GOAL",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	"LOG_LEVEL", "LOG_FORMAT",
}

// isolateEnv runs the test in an empty directory with none of the config keys set.
func isolateEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	for _, key := range configEnvKeys {
		key := key
		if old, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, old) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolateEnv(t)

	config, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, "0.0.0.0", config.Server.Host)
	assert.Equal(t, "3000", config.Server.Port)
	assert.Equal(t, 15*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, "development", config.Server.Environment)

	assert.Equal(t, "mysql", config.Database.Driver)
	assert.Equal(t, "localhost", config.Database.Host)
	assert.Equal(t, "stepsocial", config.Database.Username)
	assert.Equal(t, "stepsocial", config.Database.DatabaseName)
	assert.Equal(t, 25, config.Database.MaxOpenConns)
	assert.Equal(t, 5, config.Database.MaxIdleConns)

	assert.Equal(t, "sql", config.Mongo.ActivityStore)
	assert.Empty(t, config.Redis.Addr)
	assert.Equal(t, 6*time.Hour, config.Redis.TTL)

	assert.Equal(t, "stepsocial", config.Auth.Issuer)
	assert.Equal(t, 24*time.Hour, config.Auth.TokenTTL)

	assert.False(t, config.Streak.GapsBreak)
	assert.Equal(t, 10000, config.Streak.DefaultStepGoal)
	assert.Equal(t, 10.0, config.RateLimit.RequestsPerSecond)
	assert.Equal(t, 20, config.RateLimit.Burst)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "text", config.Logging.Format)
}

func TestLoadConfig_WithEnvironmentOverrides(t *testing.T) {
	isolateEnv(t)

	testEnvVars := map[string]string{
		"SERVER_PORT":       "8081",
		"DB_DRIVER":         "postgres",
		"DB_HOST":           "test-db-host",
		"DB_PORT":           "5433",
		"DB_USER":           "test-user",
		"DB_PASSWORD":       "test-pass",
		"ACTIVITY_STORE":    "mongo",
		"MONGO_URI":         "mongodb://mongo:27017",
		"REDIS_ADDR":        "redis:6379",
		"STREAK_CACHE_TTL":  "30m",
		"STREAK_GAPS_BREAK": "true",
		"DEFAULT_STEP_GOAL": "8000",
		"LOG_LEVEL":         "debug",
	}
	for key, value := range testEnvVars {
		os.Setenv(key, value)
	}

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", config.Server.Port)
	assert.Equal(t, "postgres", config.Database.Driver)
	assert.Equal(t, "test-db-host", config.Database.Host)
	assert.Equal(t, "5433", config.Database.Port)
	assert.Equal(t, "mongo", config.Mongo.ActivityStore)
	assert.Equal(t, "mongodb://mongo:27017", config.Mongo.URI)
	assert.Equal(t, "redis:6379", config.Redis.Addr)
	assert.Equal(t, 30*time.Minute, config.Redis.TTL)
	assert.True(t, config.Streak.GapsBreak)
	assert.Equal(t, 8000, config.Streak.DefaultStepGoal)
	assert.Equal(t, "debug", config.Logging.Level)
}

func TestLoadConfig_ReadsDotEnvFile(t *testing.T) {
	isolateEnv(t)

	content := "# Test .env file\nDB_HOST=from-dotenv\nLOG_FORMAT=json\n"
	require.NoError(t, os.WriteFile(".env", []byte(content), 0644))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", config.Database.Host)
	assert.Equal(t, "json", config.Logging.Format)
}

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	isolateEnv(t)
	os.Setenv("DB_DRIVER", "sqlite")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestValidate_Production(t *testing.T) {
	config := &Config{
		Server:   ServerConfig{Environment: "production"},
		Database: DatabaseConfig{Driver: "mysql", Password: "secret"},
		Mongo:    MongoConfig{ActivityStore: "sql"},
		Auth:     AuthConfig{JWTSecret: defaultJWTSecret},
		Streak:   StreakConfig{DefaultStepGoal: 10000},
	}
	err := config.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	config.Auth.JWTSecret = "a-real-secret"
	assert.NoError(t, config.Validate())

	config.Database.Password = ""
	assert.Error(t, config.Validate())
}

func TestValidate_NonPositiveGoal(t *testing.T) {
	config := &Config{
		Database: DatabaseConfig{Driver: "mysql"},
		Mongo:    MongoConfig{ActivityStore: "sql"},
		Streak:   StreakConfig{DefaultStepGoal: 0},
	}
	assert.Error(t, config.Validate())
}

func TestDSN_MySQL(t *testing.T) {
	config := &Config{
		Database: DatabaseConfig{
			Driver:       "mysql",
			Host:         "test-host",
			Port:         "3307",
			Username:     "testuser",
			Password:     "testpass",
			DatabaseName: "testdb",
		},
	}

	expected := "testuser:testpass@tcp(test-host:3307)/testdb?charset=utf8mb4&parseTime=True&loc=UTC"
	assert.Equal(t, expected, config.DSN())
}

func TestDSN_WithEmptyHostPort(t *testing.T) {
	config := &Config{
		Database: DatabaseConfig{
			Username:     "testuser",
			Password:     "testpass",
			DatabaseName: "testdb",
		},
	}

	expected := "testuser:testpass@tcp(localhost:3306)/testdb?charset=utf8mb4&parseTime=True&loc=UTC"
	assert.Equal(t, expected, config.DSN())
	// DSN must not write the defaults back.
	assert.Empty(t, config.Database.Host)
}

func TestDSN_Postgres(t *testing.T) {
	config := &Config{
		Database: DatabaseConfig{
			Driver:       "postgres",
			Host:         "pg",
			Username:     "steps",
			Password:     "pw",
			DatabaseName: "steps",
			SSLMode:      "require",
		},
	}

	assert.Equal(t, "postgres://steps:pw@pg:5432/steps?sslmode=require", config.DSN())
}

func TestDSN_PostgresEscapesCredentials(t *testing.T) {
	config := &Config{
		Database: DatabaseConfig{
			Driver:       "postgres",
			Host:         "pg",
			Port:         "6432",
			Username:     "step user",
			Password:     "p@ss/w:rd?#",
			DatabaseName: "steps",
			SSLMode:      "verify-full",
		},
	}

	parsed, err := url.Parse(config.DSN())
	require.NoError(t, err)
	assert.Equal(t, "postgres", parsed.Scheme)
	assert.Equal(t, "step user", parsed.User.Username())
	password, ok := parsed.User.Password()
	require.True(t, ok)
	assert.Equal(t, "p@ss/w:rd?#", password)
	assert.Equal(t, "pg", parsed.Hostname())
	assert.Equal(t, "6432", parsed.Port())
	assert.Equal(t, "/steps", parsed.Path)
	assert.Equal(t, "verify-full", parsed.Query().Get("sslmode"))
}
