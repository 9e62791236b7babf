// file: internals/features/scheduling/routines/service/schedule_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	timeslotmodel "unischedule_backend/internals/features/academics/timeslots/model"
	timeslotservice "unischedule_backend/internals/features/academics/timeslots/service"
	"unischedule_backend/internals/features/scheduling/routines/model"
)

/* =======================================================
   Scheduling/Conflict Engine

   Constraint checking is delegated entirely to the store's
   unique indexes at insert time: no check-then-act, so two
   admins racing for the same (room, slot) are serialized by
   Postgres and exactly one wins. Conflicts are discovered
   at commit time and mapped to a specific reason.
   ======================================================= */

// ErrRoutineNotFound is returned by Update for an unknown routine id.
var ErrRoutineNotFound = errors.New("class routine not found")

// ConflictError names the scheduling combination that clashed.
type ConflictError struct {
	Constraint string
	Reason     string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// Checked in this fixed order when mapping a unique violation.
var conflictOrder = []struct {
	constraint string
	reason     string
}{
	{model.UqRoomCourseSlot, "The combination of classroom, course and time slot must be unique."},
	{model.UqLecturerSlot, "The combination of lecturer and time slot must be unique."},
	{model.UqStudentsSlot, "The combination of students and time slot must be unique."},
	{model.UqRoomSlot, "The combination of classroom and time slot must be unique."},
}

// ConflictFromError maps a Postgres unique violation on class_routines to
// its ConflictError; any other error is passed through unchanged.
func ConflictFromError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "23505") &&
		!strings.Contains(msg, "duplicate key") &&
		!strings.Contains(msg, "unique constraint") {
		return err
	}
	for _, c := range conflictOrder {
		if strings.Contains(msg, c.constraint) {
			return &ConflictError{Constraint: c.constraint, Reason: c.reason}
		}
	}
	return err
}

type ScheduleService struct {
	DB *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{DB: db}
}

/* =========================
   Single-slot path
   ========================= */

type CreateInput struct {
	ClassRoomID uuid.UUID
	CourseID    uuid.UUID
	TimeSlotID  uuid.UUID
	LecturerID  uuid.UUID
	StudentIDs  model.StudentIDSet
}

// Create inserts one routine. On a unique violation the violated constraint
// is mapped to its conflict reason, never a generic failure.
func (s *ScheduleService) Create(ctx context.Context, in CreateInput) (*model.ClassRoutineModel, error) {
	m := model.ClassRoutineModel{
		ClassRoutineClassRoomID: in.ClassRoomID,
		ClassRoutineCourseID:    in.CourseID,
		ClassRoutineTimeSlotID:  in.TimeSlotID,
		ClassRoutineLecturerID:  in.LecturerID,
		ClassRoutineStudentIDs:  model.NewStudentIDSet(in.StudentIDs),
	}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, ConflictFromError(err)
	}
	return &m, nil
}

/* =========================
   Recurring/batch path
   ========================= */

type RecurringInput struct {
	ClassRoomID  uuid.UUID
	CourseID     uuid.UUID
	LecturerID   uuid.UUID
	StudentIDs   model.StudentIDSet
	HorizonWeeks int
	Blocks       []timeslotservice.BlockTemplate
}

// CreateRecurring books every slot in the horizon that matches the block
// templates, inside one transaction: a conflict on any slot rolls back the
// whole batch and surfaces that slot's reason.
func (s *ScheduleService) CreateRecurring(ctx context.Context, in RecurringInput) ([]model.ClassRoutineModel, error) {
	if in.HorizonWeeks <= 0 {
		in.HorizonWeeks = 12
	}
	if len(in.Blocks) == 0 {
		in.Blocks = timeslotservice.DefaultBlocks
	}

	slots, err := s.resolveSlots(ctx, in.HorizonWeeks, in.Blocks)
	if err != nil {
		return nil, err
	}

	studentIDs := model.NewStudentIDSet(in.StudentIDs)
	created := make([]model.ClassRoutineModel, 0, len(slots))

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, slot := range slots {
			m := model.ClassRoutineModel{
				ClassRoutineClassRoomID: in.ClassRoomID,
				ClassRoutineCourseID:    in.CourseID,
				ClassRoutineTimeSlotID:  slot.TimeSlotID,
				ClassRoutineLecturerID:  in.LecturerID,
				ClassRoutineStudentIDs:  studentIDs,
			}
			if err := tx.Create(&m).Error; err != nil {
				return ConflictFromError(err)
			}
			created = append(created, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// resolveSlots fetches the concrete slots within the horizon, restricted to
// the block templates, ordered by day then start time so batch iteration is
// deterministic.
func (s *ScheduleService) resolveSlots(ctx context.Context, horizonWeeks int, blocks []timeslotservice.BlockTemplate) ([]timeslotmodel.TimeSlotModel, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	end := today.AddDate(0, 0, horizonWeeks*7)

	var candidates []timeslotmodel.TimeSlotModel
	if err := s.DB.WithContext(ctx).
		Where("time_slot_day BETWEEN ? AND ?", today, end).
		Order("time_slot_day ASC, time_slot_start_time ASC").
		Find(&candidates).Error; err != nil {
		return nil, err
	}

	matched := candidates[:0]
	for _, slot := range candidates {
		if timeslotservice.MatchesTemplates(slot, blocks) {
			matched = append(matched, slot)
		}
	}
	return matched, nil
}

/* =========================
   Update path
   ========================= */

type UpdateInput struct {
	ClassRoomID *uuid.UUID
	CourseID    *uuid.UUID
	TimeSlotID  *uuid.UUID
	LecturerID  *uuid.UUID
	StudentIDs  *model.StudentIDSet
}

// Update patches an existing routine. The four constraints apply to updates
// exactly as to creates.
func (s *ScheduleService) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*model.ClassRoutineModel, error) {
	var m model.ClassRoutineModel
	if err := s.DB.WithContext(ctx).First(&m, "class_routine_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}

	if in.ClassRoomID != nil {
		m.ClassRoutineClassRoomID = *in.ClassRoomID
	}
	if in.CourseID != nil {
		m.ClassRoutineCourseID = *in.CourseID
	}
	if in.TimeSlotID != nil {
		m.ClassRoutineTimeSlotID = *in.TimeSlotID
	}
	if in.LecturerID != nil {
		m.ClassRoutineLecturerID = *in.LecturerID
	}
	if in.StudentIDs != nil {
		m.ClassRoutineStudentIDs = model.NewStudentIDSet(*in.StudentIDs)
	}

	if err := s.DB.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, ConflictFromError(err)
	}
	return &m, nil
}
