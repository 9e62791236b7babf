// file: internals/features/users/user/route/user_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/users/user/controller"
)

func AdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	grp := admin.Group("/users")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
}
