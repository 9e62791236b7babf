package service

import (
	"testing"
	"time"
)

// 2026-09-07 is a Monday.
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func TestGenerate_MondayWednesdayWeek(t *testing.T) {
	// 7-day horizon starting on a Monday: Mon, Wed, Mon fall inside
	// [day, day+7] inclusive.
	slots, err := Generate(monday, 7, DefaultWeekdays, DefaultBlocks)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	wantDays := 3 // Mon 7th, Wed 9th, Mon 14th
	if got := len(slots); got != wantDays*len(DefaultBlocks) {
		t.Fatalf("expected %d slots, got %d", wantDays*len(DefaultBlocks), got)
	}

	for _, s := range slots {
		wd := s.TimeSlotDay.Weekday()
		if wd != time.Monday && wd != time.Wednesday {
			t.Errorf("slot on unexpected weekday %s", wd)
		}
		if !MatchesTemplates(s, DefaultBlocks) {
			t.Errorf("slot %s-%s does not match any block template",
				s.TimeSlotStartTime.Format("15:04"), s.TimeSlotEndTime.Format("15:04"))
		}
		if !s.TimeSlotStartTime.Truncate(24 * time.Hour).Equal(s.TimeSlotDay) {
			t.Errorf("start time %v not on slot day %v", s.TimeSlotStartTime, s.TimeSlotDay)
		}
	}
}

func TestGenerate_BlockTimes(t *testing.T) {
	slots, err := Generate(monday, 0, map[time.Weekday]bool{time.Monday: true}, DefaultBlocks)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots for a single Monday, got %d", len(slots))
	}

	first := slots[0]
	if first.TimeSlotStartTime.Hour() != 7 || first.TimeSlotStartTime.Minute() != 15 {
		t.Errorf("first block starts at %s, want 07:15", first.TimeSlotStartTime.Format("15:04"))
	}
	if first.TimeSlotEndTime.Hour() != 9 || first.TimeSlotEndTime.Minute() != 15 {
		t.Errorf("first block ends at %s, want 09:15", first.TimeSlotEndTime.Format("15:04"))
	}

	second := slots[1]
	if second.TimeSlotStartTime.Hour() != 10 || second.TimeSlotStartTime.Minute() != 15 {
		t.Errorf("second block starts at %s, want 10:15", second.TimeSlotStartTime.Format("15:04"))
	}
}

func TestGenerate_EmptyWeekdayFilter(t *testing.T) {
	slots, err := Generate(monday, 30, map[time.Weekday]bool{}, DefaultBlocks)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots with an empty weekday filter, got %d", len(slots))
	}
}

func TestGenerate_InvalidBlock(t *testing.T) {
	_, err := Generate(monday, 7, DefaultWeekdays, []BlockTemplate{{Start: "7h15", End: "09:15"}})
	if err == nil {
		t.Fatal("expected error for malformed block time")
	}
}

func TestMatchesTemplates_RejectsOtherBlocks(t *testing.T) {
	slots, err := Generate(monday, 0, map[time.Weekday]bool{time.Monday: true},
		[]BlockTemplate{{Start: "13:00", End: "15:00"}})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if MatchesTemplates(slots[0], DefaultBlocks) {
		t.Error("13:00-15:00 slot should not match the default blocks")
	}
}
