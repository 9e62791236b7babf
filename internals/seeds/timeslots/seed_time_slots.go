package timeslots

import (
	"log"
	"time"

	"gorm.io/gorm"

	"unischedule_backend/internals/features/academics/timeslots/model"
	"unischedule_backend/internals/features/academics/timeslots/service"
)

// SeedTimeSlots generates the 24-week Monday/Wednesday teaching horizon.
// The generator itself is not idempotent, so this guards with a count
// check: an already-populated table is left alone.
func SeedTimeSlots(db *gorm.DB) error {
	var existing int64
	if err := db.Model(&model.TimeSlotModel{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		log.Printf("[INFO] time slots already seeded (%d rows), skipping", existing)
		return nil
	}

	n, err := service.GenerateAndStore(db, time.Now().UTC(), 24*7, service.DefaultWeekdays, service.DefaultBlocks)
	if err != nil {
		return err
	}
	log.Printf("[INFO] seeded %d time slots", n)
	return nil
}
