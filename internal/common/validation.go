package common

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.]+$`)
	dateRegex     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 1 || len(username) > 50 {
		return fmt.Errorf("%w: username must be between 1 and 50 characters", ErrInvalidOperation)
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("%w: username can only contain letters, numbers, dots and underscores", ErrInvalidOperation)
	}
	return nil
}

func ValidateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%w: valid email is required", ErrInvalidOperation)
	}
	return nil
}

func ValidateStepGoal(goal int) error {
	if goal < 1 {
		return fmt.Errorf("%w: step goal must be at least 1", ErrInvalidOperation)
	}
	return nil
}

func ValidateStepCount(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: step count must be 0 or greater", ErrInvalidOperation)
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD calendar day into UTC midnight.
func ParseDate(value string) (time.Time, error) {
	if !dateRegex.MatchString(value) {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidOperation)
	}
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrInvalidOperation, value)
	}
	return day, nil
}
