package wire

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stepsocial/internal/common"
	"stepsocial/internal/config"
	"stepsocial/internal/streak"
)

func TestProvideStreakCalculator(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, streak.GapsIgnored, ProvideStreakCalculator(cfg).Policy)

	cfg.Streak.GapsBreak = true
	assert.Equal(t, streak.GapsBreak, ProvideStreakCalculator(cfg).Policy)
}

func TestProvideActivityStore(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	cfg := &config.Config{Mongo: config.MongoConfig{ActivityStore: "sql"}}
	store, err := ProvideActivityStore(cfg, db, nil)
	require.NoError(t, err)
	assert.NotNil(t, store)

	cfg.Mongo.ActivityStore = "mongo"
	_, err = ProvideActivityStore(cfg, db, nil)
	assert.ErrorIs(t, err, common.ErrConfiguration)
}

func TestProvideMongo_DisabledForSQLStore(t *testing.T) {
	cfg := &config.Config{Mongo: config.MongoConfig{ActivityStore: "sql"}}
	client, cleanup, err := ProvideMongo(cfg, logrus.New())
	require.NoError(t, err)
	assert.Nil(t, client)
	cleanup()
}

func TestProvideUserServiceAndRateLimiter(t *testing.T) {
	cfg := &config.Config{RateLimit: config.RateLimitConfig{RequestsPerSecond: 5, Burst: 10}}
	cfg.Streak.DefaultStepGoal = 7500
	assert.NotNil(t, ProvideUserService(nil, cfg, logrus.New()))
	assert.NotNil(t, ProvideRateLimiter(cfg, logrus.New()))
}
