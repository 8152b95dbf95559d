package dbmysql

import (
	"time"
)

// DailyActivity is one user's step count for one calendar day. StepDate carries
// no time component; it is always UTC midnight.
type DailyActivity struct {
	ID           uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	UserID       uint64    `gorm:"column:user_id;not null;uniqueIndex:uq_user_day,priority:1" json:"userId"`
	StepDate     time.Time `gorm:"column:step_date;type:date;not null;uniqueIndex:uq_user_day,priority:2" json:"stepDate"`
	StepCount    int       `gorm:"column:step_count;not null;default:0" json:"stepCount"`
	SourceHint   *string   `gorm:"column:source_hint;size:64" json:"sourceHint"`
	LastSyncedAt time.Time `gorm:"column:last_synced_at;not null" json:"lastSyncedAt"`
}

func (DailyActivity) TableName() string {
	return "steps_daily"
}

// DateOf truncates t to its calendar day in t's own location and returns that
// day as UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey formats a calendar day as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
