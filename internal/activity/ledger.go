package activity

//go:generate mockgen -source=ledger.go -destination=mock_ledger.go -package=activity

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"stepsocial/internal/common"
	"stepsocial/internal/dbmysql"
	"stepsocial/internal/metrics"
	"stepsocial/internal/streak"
)

// Ledger is the per-user daily step log and the streaks derived from it.
type Ledger interface {
	UpsertDay(ctx context.Context, userID uint64, date time.Time, stepCount int, sourceHint *string) (*dbmysql.DailyActivity, error)
	GetHistory(ctx context.Context, userID uint64) ([]dbmysql.DailyActivity, error)
	// TodaySteps reports found=false when nothing was recorded for today.
	TodaySteps(ctx context.Context, userID uint64, today time.Time) (*dbmysql.DailyActivity, bool, error)
	Streaks(ctx context.Context, user *dbmysql.User, today time.Time) (streak.Result, error)
}

type ledger struct {
	store  ActivityStore
	cache  StreakCache
	calc   streak.Calculator
	logger logrus.FieldLogger
	now    func() time.Time
}

func NewLedger(store ActivityStore, cache StreakCache, calc streak.Calculator, logger logrus.FieldLogger) Ledger {
	if cache == nil {
		cache = NoopStreakCache{}
	}
	return &ledger{
		store:  store,
		cache:  cache,
		calc:   calc,
		logger: logger,
		now:    time.Now,
	}
}

func (l *ledger) UpsertDay(ctx context.Context, userID uint64, date time.Time, stepCount int, sourceHint *string) (*dbmysql.DailyActivity, error) {
	if err := common.ValidateStepCount(stepCount); err != nil {
		return nil, err
	}

	day := dbmysql.DateOf(date)
	log := l.logger.WithFields(logrus.Fields{
		"userId":    userID,
		"stepDate":  dbmysql.DateKey(day),
		"stepCount": stepCount,
	})
	log.Info("Updating daily steps")

	saved, err := l.store.UpsertDay(ctx, &dbmysql.DailyActivity{
		UserID:       userID,
		StepDate:     day,
		StepCount:    stepCount,
		SourceHint:   sourceHint,
		LastSyncedAt: l.now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	metrics.RecordStepUpsert()

	if err := l.cache.Invalidate(ctx, userID); err != nil {
		log.WithError(err).Warn("Failed to invalidate streak cache")
	}

	log.WithField("recordId", saved.ID).Info("Daily steps saved")
	return saved, nil
}

func (l *ledger) GetHistory(ctx context.Context, userID uint64) ([]dbmysql.DailyActivity, error) {
	return l.store.GetHistory(ctx, userID)
}

func (l *ledger) TodaySteps(ctx context.Context, userID uint64, today time.Time) (*dbmysql.DailyActivity, bool, error) {
	activity, err := l.store.GetDay(ctx, userID, today)
	if errors.Is(err, common.ErrNotFound) {
		l.logger.WithFields(logrus.Fields{
			"userId":   userID,
			"stepDate": dbmysql.DateKey(today),
		}).Info("No steps recorded for today")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return activity, true, nil
}

// Streaks serves from the cache when it can. Without a readable generation
// the answer is computed but neither read from nor written to the cache.
func (l *ledger) Streaks(ctx context.Context, user *dbmysql.User, today time.Time) (streak.Result, error) {
	log := l.logger.WithField("userId", user.ID)

	cacheable := true
	generation, err := l.cache.Generation(ctx, user.ID)
	if err != nil {
		log.WithError(err).Warn("Streak cache generation read failed")
		cacheable = false
	}
	field := CacheField(dbmysql.DateKey(today), user.StepGoal, l.calc.Policy, generation)

	if cacheable {
		if cached, ok, err := l.cache.Get(ctx, user.ID, field); err != nil {
			log.WithError(err).Warn("Streak cache read failed")
		} else if ok {
			metrics.RecordStreakComputation(metrics.StreakFromCache)
			return cached, nil
		}
	}

	history, err := l.store.GetHistory(ctx, user.ID)
	if err != nil {
		return streak.Result{}, err
	}

	result, err := l.calc.Compute(history, user.StepGoal, today)
	if err != nil {
		return streak.Result{}, err
	}
	metrics.RecordStreakComputation(metrics.StreakFromComputed)

	if !cacheable {
		return result, nil
	}
	if err := l.cache.Set(ctx, user.ID, field, result); err != nil {
		log.WithError(err).Warn("Streak cache write failed")
	}
	return result, nil
}
