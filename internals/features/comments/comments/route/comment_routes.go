// file: internals/features/comments/comments/route/comment_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/comments/comments/controller"
)

func StudentRoutes(student fiber.Router, db *gorm.DB) {
	ctl := controller.NewCommentController(db)
	student.Post("/comments", ctl.Create)
}

func AllRoutes(all fiber.Router, db *gorm.DB) {
	ctl := controller.NewCommentController(db)
	all.Get("/classroutines/:id/comments", ctl.ListByRoutine)
}
