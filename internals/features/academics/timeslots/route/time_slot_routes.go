// file: internals/features/academics/timeslots/route/time_slot_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/academics/timeslots/controller"
)

func AdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewTimeSlotController(db)
	admin.Post("/timeslots", ctl.Create)
}

// PublicRoutes: the upcoming-slot listing needs no authentication.
func PublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := controller.NewTimeSlotController(db)
	public.Get("/timeslots", ctl.ListUpcoming)
}
