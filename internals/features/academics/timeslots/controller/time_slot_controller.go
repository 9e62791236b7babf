// file: internals/features/academics/timeslots/controller/time_slot_controller.go
package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/academics/timeslots/dto"
	"unischedule_backend/internals/features/academics/timeslots/model"
	helper "unischedule_backend/internals/helpers"
)

type TimeSlotController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTimeSlotController(db *gorm.DB) *TimeSlotController {
	return &TimeSlotController{DB: db, Validate: validator.New()}
}

// ListUpcoming returns slots for the next 7 days.
func (ctl *TimeSlotController) ListUpcoming(c *fiber.Ctx) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	var slots []model.TimeSlotModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("time_slot_day BETWEEN ? AND ?", today, today.AddDate(0, 0, 7)).
		Order("time_slot_day ASC, time_slot_start_time ASC").
		Find(&slots).Error; err != nil {
		log.Printf("[ERROR] list time slots: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch time slots")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": slots})
}

// Create adds a single slot. Slots are immutable afterwards; there is no
// update endpoint.
func (ctl *TimeSlotController) Create(c *fiber.Ctx) error {
	var req dto.CreateTimeSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	day, err := dto.ParseDate(req.Day)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	start, err := dto.ParseTimestamp(req.StartTime)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	end, err := dto.ParseTimestamp(req.EndTime)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if !end.After(start) {
		return helper.Error(c, fiber.StatusBadRequest, "end_time must be after start_time")
	}

	slot := model.TimeSlotModel{
		TimeSlotDay:       day,
		TimeSlotStartTime: start,
		TimeSlotEndTime:   end,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&slot).Error; err != nil {
		log.Printf("[ERROR] create time slot: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create time slot")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": slot})
}
