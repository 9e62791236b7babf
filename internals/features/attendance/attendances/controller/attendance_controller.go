// file: internals/features/attendance/attendances/controller/attendance_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/attendance/attendances/dto"
	"unischedule_backend/internals/features/attendance/attendances/model"
	"unischedule_backend/internals/features/attendance/attendances/service"
	routinemodel "unischedule_backend/internals/features/scheduling/routines/model"
	helper "unischedule_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Stats    *service.StatsService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:       db,
		Validate: validator.New(),
		Stats:    service.NewStatsService(db),
	}
}

/* =========================
   Create (teacher)
   ========================= */

// Create records the present students for one session occurrence. The
// lecturer is the authenticated caller; records are append-only.
func (ctl *AttendanceController) Create(c *fiber.Ctx) error {
	principal, err := helper.GetPrincipal(c)
	if err != nil {
		return err
	}

	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	present, err := req.StudentIDs.ToSet()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	routineID, err := uuid.Parse(req.ClassRoutineID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid class routine id")
	}
	var routine routinemodel.ClassRoutineModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&routine, "class_routine_id = ?", routineID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Class routine not found")
		}
		log.Printf("[ERROR] load routine: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	m := model.AttendanceModel{
		AttendanceClassRoutineID: routineID,
		AttendanceLecturerID:     principal.ID,
		AttendanceStudentIDs:     present,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		log.Printf("[ERROR] save attendance: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": true})
}

/* =========================
   Stats
   ========================= */

// StudentStats returns per-course attendance stats for the caller.
func (ctl *AttendanceController) StudentStats(c *fiber.Ctx) error {
	principal, err := helper.GetPrincipal(c)
	if err != nil {
		return err
	}
	stats, err := ctl.Stats.StudentStats(c.UserContext(), principal.ID)
	if err != nil {
		log.Printf("[ERROR] student stats: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": stats})
}

// TeacherStats returns per-course stats for the calling lecturer.
func (ctl *AttendanceController) TeacherStats(c *fiber.Ctx) error {
	principal, err := helper.GetPrincipal(c)
	if err != nil {
		return err
	}
	stats, err := ctl.Stats.TeacherStats(c.UserContext(), principal.ID)
	if err != nil {
		log.Printf("[ERROR] teacher stats: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": stats})
}

// AdminStats returns org-wide totals for every participant seen in any
// attendance record.
func (ctl *AttendanceController) AdminStats(c *fiber.Ctx) error {
	lecturers, students, err := ctl.Stats.AdminStats(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] admin stats: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": fiber.Map{
		"lecturers_data": lecturers,
		"students_data":  students,
	}})
}
