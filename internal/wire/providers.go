// Package wire assembles the application graph. wire.go is the injector
// declaration; wire_gen.go is generated from it with `wire ./internal/wire`.
package wire

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"stepsocial/internal/activity"
	"stepsocial/internal/common"
	"stepsocial/internal/config"
	"stepsocial/internal/dbmongo"
	"stepsocial/internal/dbmysql"
	"stepsocial/internal/social"
	"stepsocial/internal/streak"
	"stepsocial/internal/user"
)

type Application struct {
	Config          *config.Config
	Logger          *logrus.Logger
	DB              *gorm.DB
	Mongo           *dbmongo.MongoClient
	Verifier        *common.TokenVerifier
	RateLimiter     *common.RateLimiter
	UserHandler     *user.Handler
	ActivityHandler *activity.Handler
	SocialHandler   *social.Handler
}

// Ping reports whether every configured backing store answers.
func (a *Application) Ping(ctx context.Context) error {
	if err := dbmysql.Ping(ctx, a.DB); err != nil {
		return fmt.Errorf("sql: %w", err)
	}
	if a.Mongo != nil {
		if err := a.Mongo.Ping(ctx); err != nil {
			return fmt.Errorf("mongo: %w", err)
		}
	}
	return nil
}

func ProvideDatabase(cfg *config.Config, logger logrus.FieldLogger) (*gorm.DB, func(), error) {
	db, err := dbmysql.NewDatabase(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

// ProvideMongo connects only when activity is stored in MongoDB; otherwise it
// returns a nil client.
func ProvideMongo(cfg *config.Config, logger logrus.FieldLogger) (*dbmongo.MongoClient, func(), error) {
	if cfg.Mongo.ActivityStore != "mongo" {
		return nil, func() {}, nil
	}
	client, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.WithField("db", cfg.Mongo.Database).Info("Connected to MongoDB")

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Close(ctx)
	}
	return client, cleanup, nil
}

func ProvideActivityStore(cfg *config.Config, db *gorm.DB, mongo *dbmongo.MongoClient) (activity.ActivityStore, error) {
	if cfg.Mongo.ActivityStore != "mongo" {
		return activity.NewActivityRepository(db), nil
	}
	if mongo == nil {
		return nil, fmt.Errorf("%w: ACTIVITY_STORE=mongo without a mongo connection", common.ErrConfiguration)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := dbmongo.NewActivityStore(ctx, mongo)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func ProvideStreakCalculator(cfg *config.Config) streak.Calculator {
	if cfg.Streak.GapsBreak {
		return streak.NewCalculator(streak.GapsBreak)
	}
	return streak.NewCalculator(streak.GapsIgnored)
}

func ProvideUserService(repo user.UserRepository, cfg *config.Config, logger logrus.FieldLogger) user.UserService {
	return user.NewUserService(repo, cfg.Streak.DefaultStepGoal, logger)
}

func ProvideRateLimiter(cfg *config.Config, logger logrus.FieldLogger) *common.RateLimiter {
	return common.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, logger)
}
