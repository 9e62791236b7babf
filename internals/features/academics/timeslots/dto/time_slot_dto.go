// file: internals/features/academics/timeslots/dto/time_slot_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	layoutDate = "2006-01-02" // DATE
	layoutTS   = time.RFC3339 // timestamps
)

type CreateTimeSlotRequest struct {
	Day       string `json:"day" validate:"required"`        // "YYYY-MM-DD"
	StartTime string `json:"start_time" validate:"required"` // RFC3339
	EndTime   string `json:"end_time" validate:"required"`   // RFC3339
}

func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	t, err := time.Parse(layoutDate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (want YYYY-MM-DD): %w", err)
	}
	return t, nil
}

func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	t, err := time.Parse(layoutTS, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp (want RFC3339): %w", err)
	}
	return t.UTC(), nil
}
