// Package streak derives goal streaks from a user's daily activity log.
// Everything here is pure: callers load the history and pass "today" in.
package streak

import (
	"fmt"
	"sort"
	"time"

	"stepsocial/internal/common"
	"stepsocial/internal/dbmysql"
)

// GapPolicy decides how the longest-streak scan treats a calendar gap
// between two recorded days.
type GapPolicy int

const (
	// GapsIgnored scans recorded days only; a missing day between two
	// qualifying records does not end the run.
	GapsIgnored GapPolicy = iota
	// GapsBreak requires recorded days to be calendar-adjacent to extend a run.
	GapsBreak
)

func (p GapPolicy) String() string {
	if p == GapsBreak {
		return "gaps-break"
	}
	return "gaps-ignored"
}

type Result struct {
	Current int `json:"currentStreak"`
	Longest int `json:"longestStreak"`
}

type Calculator struct {
	Policy GapPolicy
}

func NewCalculator(policy GapPolicy) Calculator {
	return Calculator{Policy: policy}
}

// Compute uses the default GapsIgnored policy.
func Compute(history []dbmysql.DailyActivity, goal int, today time.Time) (Result, error) {
	return Calculator{}.Compute(history, goal, today)
}

func (c Calculator) Compute(history []dbmysql.DailyActivity, goal int, today time.Time) (Result, error) {
	if goal <= 0 {
		return Result{}, fmt.Errorf("%w: goal must be positive, got %d", common.ErrConfiguration, goal)
	}

	days := normalize(history)
	if len(days) == 0 {
		return Result{}, nil
	}

	return Result{
		Current: current(days, goal, dbmysql.DateOf(today)),
		Longest: c.longest(days, goal),
	}, nil
}

type day struct {
	date  time.Time
	steps int
}

// normalize returns one entry per calendar day in ascending order. If the
// input holds two records for the same day, the later one wins.
func normalize(history []dbmysql.DailyActivity) []day {
	byDate := make(map[time.Time]int, len(history))
	for _, a := range history {
		byDate[dbmysql.DateOf(a.StepDate)] = a.StepCount
	}

	days := make([]day, 0, len(byDate))
	for date, steps := range byDate {
		days = append(days, day{date: date, steps: steps})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].date.Before(days[j].date) })
	return days
}

func current(days []day, goal int, today time.Time) int {
	steps := make(map[time.Time]int, len(days))
	for _, d := range days {
		steps[d.date] = d.steps
	}
	earliest := days[0].date

	count := 0
	cursor := today
	// An unfinished today neither counts nor breaks the streak.
	if n, ok := steps[cursor]; ok && n >= goal {
		count++
	}
	cursor = cursor.AddDate(0, 0, -1)

	for !cursor.Before(earliest) {
		n, ok := steps[cursor]
		if !ok || n < goal {
			break
		}
		count++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return count
}

func (c Calculator) longest(days []day, goal int) int {
	best, run := 0, 0
	var prev time.Time
	for i, d := range days {
		if d.steps < goal {
			run = 0
		} else {
			if c.Policy == GapsBreak && i > 0 && run > 0 && !prev.AddDate(0, 0, 1).Equal(d.date) {
				run = 0
			}
			run++
		}
		if run > best {
			best = run
		}
		prev = d.date
	}
	return best
}
