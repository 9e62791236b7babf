// file: internals/features/academics/timeslots/service/generator.go
package service

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"unischedule_backend/internals/features/academics/timeslots/model"
)

/* =======================================================
   Time Slot Generator

   Emits one slot per matching calendar day per block
   template over a forward horizon. Generation alone is not
   idempotent; callers (seed runner, admin jobs) must guard
   against re-running over an already-populated horizon.
   ======================================================= */

// BlockTemplate is a time-of-day window, "HH:MM" in UTC.
type BlockTemplate struct {
	Start string
	End   string
}

// DefaultBlocks are the two teaching blocks used by the seeded horizon and
// the recurring scheduling path.
var DefaultBlocks = []BlockTemplate{
	{Start: "07:15", End: "09:15"},
	{Start: "10:15", End: "12:15"},
}

// DefaultWeekdays is the seeded Monday/Wednesday pattern.
var DefaultWeekdays = map[time.Weekday]bool{
	time.Monday:    true,
	time.Wednesday: true,
}

// Generate produces slots for every day in [from, from+horizonDays]
// (inclusive) whose weekday passes the filter, one per block template.
// Day is the calendar date; start/end combine that date with the template
// time-of-day in UTC.
func Generate(from time.Time, horizonDays int, weekdays map[time.Weekday]bool, blocks []BlockTemplate) ([]model.TimeSlotModel, error) {
	day := truncateToDayUTC(from)
	end := day.AddDate(0, 0, horizonDays)

	var slots []model.TimeSlotModel
	for !day.After(end) {
		if weekdays[day.Weekday()] {
			for _, b := range blocks {
				start, err := CombineUTC(day, b.Start)
				if err != nil {
					return nil, err
				}
				stop, err := CombineUTC(day, b.End)
				if err != nil {
					return nil, err
				}
				slots = append(slots, model.TimeSlotModel{
					TimeSlotDay:       day,
					TimeSlotStartTime: start,
					TimeSlotEndTime:   stop,
				})
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return slots, nil
}

// GenerateAndStore persists a generated horizon in one bulk insert.
func GenerateAndStore(db *gorm.DB, from time.Time, horizonDays int, weekdays map[time.Weekday]bool, blocks []BlockTemplate) (int, error) {
	slots, err := Generate(from, horizonDays, weekdays, blocks)
	if err != nil {
		return 0, err
	}
	if len(slots) == 0 {
		return 0, nil
	}
	if err := db.Create(&slots).Error; err != nil {
		return 0, err
	}
	return len(slots), nil
}

// MatchesTemplates reports whether a slot's start/end times-of-day equal one
// of the block templates.
func MatchesTemplates(slot model.TimeSlotModel, blocks []BlockTemplate) bool {
	start := slot.TimeSlotStartTime.UTC().Format("15:04")
	end := slot.TimeSlotEndTime.UTC().Format("15:04")
	for _, b := range blocks {
		if start == b.Start && end == b.End {
			return true
		}
	}
	return false
}

// CombineUTC attaches an "HH:MM" time-of-day to a calendar date, in UTC.
func CombineUTC(day time.Time, hhmm string) (time.Time, error) {
	tod, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid block time %q (want HH:MM): %w", hhmm, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), 0, 0, time.UTC), nil
}

func truncateToDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
