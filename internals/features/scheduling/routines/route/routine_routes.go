// file: internals/features/scheduling/routines/route/routine_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/scheduling/routines/controller"
)

// AdminRoutes mounts the scheduling endpoints (create/patch/list).
func AdminRoutes(admin fiber.Router, db *gorm.DB, horizonWeeks int) {
	ctl := controller.NewClassRoutineController(db, horizonWeeks)

	grp := admin.Group("/classroutines")
	grp.Get("/", ctl.ListAdmin)
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Patch)
}

// TeacherRoutes mounts the lecturer timetable view.
func TeacherRoutes(teacher fiber.Router, db *gorm.DB, horizonWeeks int) {
	ctl := controller.NewClassRoutineController(db, horizonWeeks)
	teacher.Get("/classroutines", ctl.ListTeacher)
}

// StudentRoutes mounts the student timetable view.
func StudentRoutes(student fiber.Router, db *gorm.DB, horizonWeeks int) {
	ctl := controller.NewClassRoutineController(db, horizonWeeks)
	student.Get("/classroutines", ctl.ListStudent)
}

// AllRoutes mounts endpoints open to any authenticated role.
func AllRoutes(all fiber.Router, db *gorm.DB, horizonWeeks int) {
	ctl := controller.NewClassRoutineController(db, horizonWeeks)
	all.Get("/classroutines/requirements", ctl.Requirements)
}
