// file: internals/features/attendance/attendances/route/attendance_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/attendance/attendances/controller"
)

func AdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)
	admin.Get("/attendances/all", ctl.AdminStats)
}

func TeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)
	teacher.Post("/attendances", ctl.Create)
	teacher.Get("/attendances/stats", ctl.TeacherStats)
}

func StudentRoutes(student fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)
	student.Get("/attendances/stats", ctl.StudentStats)
}
