// file: internals/route/base_routes.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unischedule_backend/internals/configs"
	"unischedule_backend/internals/constants"
	classroomroute "unischedule_backend/internals/features/academics/classrooms/route"
	courseroute "unischedule_backend/internals/features/academics/courses/route"
	timeslotroute "unischedule_backend/internals/features/academics/timeslots/route"
	attendanceroute "unischedule_backend/internals/features/attendance/attendances/route"
	commentroute "unischedule_backend/internals/features/comments/comments/route"
	routineroute "unischedule_backend/internals/features/scheduling/routines/route"
	userroute "unischedule_backend/internals/features/users/user/route"
	"unischedule_backend/internals/middlewares"
	authmw "unischedule_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every endpoint group. Role gating happens here, once,
// at the boundary; controllers only see a typed principal.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] setting up PUBLIC group...")
	public := app.Group("/api/public")
	timeslotroute.PublicRoutes(public, db)

	// ===================== ANY AUTHENTICATED =====================
	log.Println("[INFO] setting up AUTHENTICATED group...")
	authed := app.Group("/api/u", authmw.AuthMiddleware(cfg.JWTSecret))
	routineroute.AllRoutes(authed, db, cfg.RecurringHorizonWeeks)
	courseroute.AllRoutes(authed, db)
	commentroute.AllRoutes(authed, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] setting up ADMIN group...")
	admin := app.Group("/api/a",
		authmw.AuthMiddleware(cfg.JWTSecret),
		authmw.OnlyRoles(constants.RoleErrorAdmin("scheduling management"), constants.AdminOnly...),
		middlewares.SchedulingRateLimiter(),
	)
	routineroute.AdminRoutes(admin, db, cfg.RecurringHorizonWeeks)
	attendanceroute.AdminRoutes(admin, db)
	timeslotroute.AdminRoutes(admin, db)
	classroomroute.AdminRoutes(admin, db)
	courseroute.AdminRoutes(admin, db)
	userroute.AdminRoutes(admin, db)

	// ===================== TEACHER =====================
	log.Println("[INFO] setting up TEACHER group...")
	teacher := app.Group("/api/t",
		authmw.AuthMiddleware(cfg.JWTSecret),
		authmw.OnlyRoles(constants.RoleErrorTeacher("class sessions"), constants.TeacherOnly...),
	)
	routineroute.TeacherRoutes(teacher, db, cfg.RecurringHorizonWeeks)
	attendanceroute.TeacherRoutes(teacher, db)

	// ===================== STUDENT =====================
	log.Println("[INFO] setting up STUDENT group...")
	student := app.Group("/api/s",
		authmw.AuthMiddleware(cfg.JWTSecret),
		authmw.OnlyRoles(constants.RoleErrorStudent("the student timetable"), constants.StudentOnly...),
	)
	routineroute.StudentRoutes(student, db, cfg.RecurringHorizonWeeks)
	attendanceroute.StudentRoutes(student, db)
	commentroute.StudentRoutes(student, db)
}
