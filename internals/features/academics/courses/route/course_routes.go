// file: internals/features/academics/courses/route/course_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/academics/courses/controller"
)

func AdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseController(db)

	grp := admin.Group("/courses")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}

// AllRoutes exposes the course catalogue to any authenticated role.
func AllRoutes(all fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseController(db)
	all.Get("/courses", ctl.List)
}
