package activity

//go:generate mockgen -source=store.go -destination=mock_store.go -package=activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stepsocial/internal/common"
	"stepsocial/internal/dbmysql"
)

// ActivityStore persists one step record per user and calendar day.
type ActivityStore interface {
	// GetHistory returns every record for the user, oldest day first.
	GetHistory(ctx context.Context, userID uint64) ([]dbmysql.DailyActivity, error)
	// GetDay returns common.ErrNotFound when the user has no record for date.
	GetDay(ctx context.Context, userID uint64, date time.Time) (*dbmysql.DailyActivity, error)
	// UpsertDay inserts or overwrites the (UserID, StepDate) record and
	// returns the stored row.
	UpsertDay(ctx context.Context, activity *dbmysql.DailyActivity) (*dbmysql.DailyActivity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityStore {
	return &activityRepository{db: db}
}

func (r *activityRepository) GetHistory(ctx context.Context, userID uint64) ([]dbmysql.DailyActivity, error) {
	var history []dbmysql.DailyActivity
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("step_date ASC").
		Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("load step history for user %d: %w", userID, err)
	}
	return history, nil
}

func (r *activityRepository) GetDay(ctx context.Context, userID uint64, date time.Time) (*dbmysql.DailyActivity, error) {
	var activity dbmysql.DailyActivity
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND step_date = ?", userID, dbmysql.DateOf(date)).
		First(&activity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: steps for user %d on %s", common.ErrNotFound, userID, dbmysql.DateKey(date))
	}
	if err != nil {
		return nil, fmt.Errorf("load steps for user %d on %s: %w", userID, dbmysql.DateKey(date), err)
	}
	return &activity, nil
}

// UpsertDay relies on the uq_user_day index, so two concurrent writers for
// the same day leave exactly one row. An update keeps the stored source hint
// unless a new one is supplied.
func (r *activityRepository) UpsertDay(ctx context.Context, activity *dbmysql.DailyActivity) (*dbmysql.DailyActivity, error) {
	activity.StepDate = dbmysql.DateOf(activity.StepDate)

	updates := []string{"step_count", "last_synced_at"}
	if activity.SourceHint != nil {
		updates = append(updates, "source_hint")
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "step_date"}},
		DoUpdates: clause.AssignmentColumns(updates),
	}).Create(activity).Error
	if err != nil {
		return nil, fmt.Errorf("upsert steps for user %d on %s: %w", activity.UserID, dbmysql.DateKey(activity.StepDate), err)
	}

	return r.GetDay(ctx, activity.UserID, activity.StepDate)
}
