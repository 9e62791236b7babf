// file: internals/features/academics/classrooms/model/classroom_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ClassroomModel struct {
	ClassroomID uuid.UUID `json:"classroom_id" gorm:"type:uuid;primaryKey;column:classroom_id;default:gen_random_uuid()"`

	ClassroomName     string `json:"classroom_name" gorm:"type:varchar(100);not null;uniqueIndex:uq_classrooms_name;column:classroom_name"`
	ClassroomCapacity int    `json:"classroom_capacity" gorm:"type:int;not null;column:classroom_capacity"`

	ClassroomCreatedAt time.Time `json:"classroom_created_at" gorm:"column:classroom_created_at;not null;autoCreateTime"`
	ClassroomUpdatedAt time.Time `json:"classroom_updated_at" gorm:"column:classroom_updated_at;not null;autoUpdateTime"`
}

func (ClassroomModel) TableName() string {
	return "classrooms"
}
