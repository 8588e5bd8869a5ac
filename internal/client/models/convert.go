package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// startInputLayout is the local-timezone-naive datetime input format used by
// edit forms ("2026-05-30T18:00").
const startInputLayout = "2006-01-02T15:04"

var ErrInvalidDuration = fmt.Errorf("duration must be HH:MM")

// NormalizeDuration canonicalizes a user-entered "H:M" duration into
// zero-padded "HH:MM".
func NormalizeDuration(s string) (string, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return "", ErrInvalidDuration
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return "", ErrInvalidDuration
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return "", ErrInvalidDuration
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes), nil
}

// DurationToWire appends the seconds suffix the API expects: "1:5" → "01:05:00".
func DurationToWire(s string) (string, error) {
	normalized, err := NormalizeDuration(s)
	if err != nil {
		return "", err
	}
	return normalized + ":00", nil
}

// DurationFromWire strips the seconds component off a wire duration for
// editing: "01:05:00" → "01:05". Values that do not look like a wire
// duration are returned untouched.
func DurationFromWire(s string) string {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return s
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return s
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return s
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// FormatStartInput renders an absolute timestamp as a local-naive input
// value. The represented instant is unchanged, only the rendering is local.
func FormatStartInput(t time.Time) string {
	return t.Local().Format(startInputLayout)
}

// ParseStartInput interprets a local-naive input value in the local
// timezone, producing the absolute instant it denotes.
func ParseStartInput(s string) (time.Time, error) {
	t, err := time.ParseInLocation(startInputLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start datetime: %w", err)
	}
	return t, nil
}
