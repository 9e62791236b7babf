package seeds

import (
	"log"

	"gorm.io/gorm"

	timeslotseed "unischedule_backend/internals/seeds/timeslots"
	userseed "unischedule_backend/internals/seeds/users"
)

// RunAllSeeds populates the baseline data a fresh deployment needs.
func RunAllSeeds(db *gorm.DB) {
	if err := userseed.SeedUsers(db); err != nil {
		log.Printf("[ERROR] seed users: %v", err)
	}
	if err := timeslotseed.SeedTimeSlots(db); err != nil {
		log.Printf("[ERROR] seed time slots: %v", err)
	}
}
