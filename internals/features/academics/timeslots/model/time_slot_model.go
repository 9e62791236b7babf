// file: internals/features/academics/timeslots/model/time_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   TimeSlotModel (table: time_slots)
   Slots are generated in bulk ahead of time and are
   immutable once created (no update path).
   ======================================================= */

type TimeSlotModel struct {
	TimeSlotID uuid.UUID `json:"time_slot_id" gorm:"type:uuid;primaryKey;column:time_slot_id;default:gen_random_uuid()"`

	// Calendar date of the slot; start/end are full UTC timestamps on that date.
	TimeSlotDay       time.Time `json:"time_slot_day" gorm:"type:date;not null;index:idx_time_slots_day;column:time_slot_day"`
	TimeSlotStartTime time.Time `json:"time_slot_start_time" gorm:"type:timestamptz;not null;column:time_slot_start_time"`
	TimeSlotEndTime   time.Time `json:"time_slot_end_time" gorm:"type:timestamptz;not null;column:time_slot_end_time"`
}

func (TimeSlotModel) TableName() string {
	return "time_slots"
}
