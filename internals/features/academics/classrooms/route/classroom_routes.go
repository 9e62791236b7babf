// file: internals/features/academics/classrooms/route/classroom_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/academics/classrooms/controller"
)

func AdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassroomController(db)

	grp := admin.Group("/classrooms")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
