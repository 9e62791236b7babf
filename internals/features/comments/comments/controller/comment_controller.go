// file: internals/features/comments/comments/controller/comment_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/comments/comments/dto"
	"unischedule_backend/internals/features/comments/comments/model"
	helper "unischedule_backend/internals/helpers"
)

type CommentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db, Validate: validator.New()}
}

// Create stores free-form feedback from a student on a routine.
func (ctl *CommentController) Create(c *fiber.Ctx) error {
	principal, err := helper.GetPrincipal(c)
	if err != nil {
		return err
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	routineID, err := uuid.Parse(req.ClassRoutineID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid class routine id")
	}

	comment := model.CommentModel{
		CommentClassRoutineID: routineID,
		CommentStudentID:      principal.ID,
		CommentText:           req.CommentText,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&comment).Error; err != nil {
		log.Printf("[ERROR] create comment: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save comment")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": true})
}

// ListByRoutine returns comments for one routine, newest first.
func (ctl *CommentController) ListByRoutine(c *fiber.Ctx) error {
	routineID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid routine id")
	}

	var comments []model.CommentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("comment_class_routine_id = ?", routineID).
		Order("comment_created_at DESC").
		Find(&comments).Error; err != nil {
		log.Printf("[ERROR] list comments: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch comments")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": comments})
}
