// file: internals/features/scheduling/routines/dto/class_routine_dto.go
package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"unischedule_backend/internals/features/scheduling/routines/model"
)

/* =======================================================
   StudentIDList: wire form of the student set.
   Clients may send a JSON array of ids or a single
   comma-joined string; both normalize to the same set.
   ======================================================= */

type StudentIDList []string

func (l *StudentIDList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var arr []string
		if err := json.Unmarshal(data, &arr); err != nil {
			return err
		}
		*l = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*l = nil
		return nil
	}
	*l = strings.Split(s, ",")
	return nil
}

// ToSet parses and canonicalizes the list.
func (l StudentIDList) ToSet() (model.StudentIDSet, error) {
	ids := make([]uuid.UUID, 0, len(l))
	for _, raw := range l {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid student id %q", raw)
		}
		ids = append(ids, id)
	}
	return model.NewStudentIDSet(ids), nil
}

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateClassRoutineRequest struct {
	ClassRoomID string        `json:"class_room_id" validate:"required,uuid4"`
	CourseID    string        `json:"course_id" validate:"required,uuid4"`
	LecturerID  string        `json:"lecturer_id" validate:"required,uuid4"`
	StudentIDs  StudentIDList `json:"student_ids" validate:"required,min=1"`

	// SingleSlot selects the single-slot path; TimeSlotID is then required.
	// When false the recurring path books the whole horizon.
	SingleSlot bool    `json:"single_slot"`
	TimeSlotID *string `json:"time_slot_id,omitempty" validate:"omitempty,uuid4"`
}

type PatchClassRoutineRequest struct {
	// All optional; only non-nil fields are applied.
	ClassRoomID *string        `json:"class_room_id,omitempty" validate:"omitempty,uuid4"`
	CourseID    *string        `json:"course_id,omitempty" validate:"omitempty,uuid4"`
	TimeSlotID  *string        `json:"time_slot_id,omitempty" validate:"omitempty,uuid4"`
	LecturerID  *string        `json:"lecturer_id,omitempty" validate:"omitempty,uuid4"`
	StudentIDs  *StudentIDList `json:"student_ids,omitempty" validate:"omitempty,min=1"`
}

/* =======================================================
   Response DTOs
   ======================================================= */

type RoutineClassroom struct {
	ClassroomID   uuid.UUID `json:"classroom_id"`
	ClassroomName string    `json:"classroom_name"`
}

type RoutineCourse struct {
	CourseID   uuid.UUID `json:"course_id"`
	CourseName string    `json:"course_name"`
	CourseCode string    `json:"course_code"`
}

type RoutineTimeSlot struct {
	TimeSlotID        uuid.UUID `json:"time_slot_id"`
	TimeSlotDay       time.Time `json:"time_slot_day"`
	TimeSlotStartTime time.Time `json:"time_slot_start_time"`
	TimeSlotEndTime   time.Time `json:"time_slot_end_time"`
}

type RoutineUser struct {
	UserID       uuid.UUID `json:"user_id"`
	UserFullName string    `json:"user_full_name"`
	UserEmail    string    `json:"user_email,omitempty"`
}

type ClassRoutineResponse struct {
	ClassRoutineID uuid.UUID        `json:"class_routine_id"`
	Classroom      RoutineClassroom `json:"classroom"`
	Course         RoutineCourse    `json:"course"`
	TimeSlot       RoutineTimeSlot  `json:"time_slot"`
	Lecturer       RoutineUser      `json:"lecturer"`
	Students       []RoutineUser    `json:"students"`
}
