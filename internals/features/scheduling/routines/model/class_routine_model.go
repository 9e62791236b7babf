// file: internals/features/scheduling/routines/model/class_routine_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   ClassRoutineModel (table: class_routines)

   The four named unique constraints are the durable schema
   contract; conflicting scheduling requests are serialized
   by Postgres at insert time and the violated constraint
   name is mapped to a user-facing conflict reason.
   ======================================================= */

const (
	UqRoomCourseSlot = "uq_class_routines_room_course_slot"
	UqLecturerSlot   = "uq_class_routines_lecturer_slot"
	UqStudentsSlot   = "uq_class_routines_students_slot"
	UqRoomSlot       = "uq_class_routines_room_slot"
)

type ClassRoutineModel struct {
	ClassRoutineID uuid.UUID `json:"class_routine_id" gorm:"type:uuid;primaryKey;column:class_routine_id;default:gen_random_uuid()"`

	ClassRoutineClassRoomID uuid.UUID `json:"class_routine_class_room_id" gorm:"type:uuid;not null;column:class_routine_class_room_id;uniqueIndex:uq_class_routines_room_course_slot,priority:1;uniqueIndex:uq_class_routines_room_slot,priority:1"`
	ClassRoutineCourseID    uuid.UUID `json:"class_routine_course_id" gorm:"type:uuid;not null;column:class_routine_course_id;uniqueIndex:uq_class_routines_room_course_slot,priority:2"`
	ClassRoutineTimeSlotID  uuid.UUID `json:"class_routine_time_slot_id" gorm:"type:uuid;not null;column:class_routine_time_slot_id;uniqueIndex:uq_class_routines_room_course_slot,priority:3;uniqueIndex:uq_class_routines_lecturer_slot,priority:2;uniqueIndex:uq_class_routines_students_slot,priority:2;uniqueIndex:uq_class_routines_room_slot,priority:2"`
	ClassRoutineLecturerID  uuid.UUID `json:"class_routine_lecturer_id" gorm:"type:uuid;not null;column:class_routine_lecturer_id;uniqueIndex:uq_class_routines_lecturer_slot,priority:1"`

	// Canonical comma-joined serialization of the student set. The
	// students+slot constraint is a literal match on this column, which is
	// why the set is always stored sorted and deduplicated.
	ClassRoutineStudentIDs StudentIDSet `json:"class_routine_student_ids" gorm:"type:text;not null;column:class_routine_student_ids;uniqueIndex:uq_class_routines_students_slot,priority:1"`

	ClassRoutineCreatedAt time.Time `json:"class_routine_created_at" gorm:"column:class_routine_created_at;not null;autoCreateTime"`
	ClassRoutineUpdatedAt time.Time `json:"class_routine_updated_at" gorm:"column:class_routine_updated_at;not null;autoUpdateTime"`
}

func (ClassRoutineModel) TableName() string {
	return "class_routines"
}
