package dbmysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stepsocial/internal/config"
)

// NewDatabase returns a GORM DB for the configured driver with the schema
// migrated. Duplicate-key errors surface as gorm.ErrDuplicatedKey.
func NewDatabase(cfg *config.Config, log logrus.FieldLogger) (*gorm.DB, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if cfg.Logging.Level == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to %s: %w", cfg.Database.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql.DB error: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.WithFields(logrus.Fields{
		"driver": cfg.Database.Driver,
		"host":   cfg.Database.Host,
		"db":     cfg.Database.DatabaseName,
	}).Info("Connected to database")
	return db, nil
}

func openDialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.Database.Driver {
	case "postgres":
		sqlDB, err := sql.Open("postgres", cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return postgres.New(postgres.Config{Conn: sqlDB}), nil
	case "mysql", "":
		return mysql.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &DailyActivity{}, &FriendRequest{})
}

// Ping checks the pool within ctx's deadline.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
