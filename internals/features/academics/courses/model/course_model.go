// file: internals/features/academics/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CourseStatus string

const (
	CourseActive   CourseStatus = "active"
	CourseArchived CourseStatus = "archived"
)

type CourseModel struct {
	CourseID uuid.UUID `json:"course_id" gorm:"type:uuid;primaryKey;column:course_id;default:gen_random_uuid()"`

	CourseName    string `json:"course_name" gorm:"type:varchar(100);not null;uniqueIndex:uq_courses_name;column:course_name"`
	CourseCode    string `json:"course_code" gorm:"type:varchar(20);not null;uniqueIndex:uq_courses_code;column:course_code"`
	CourseCredits int    `json:"course_credits" gorm:"type:int;not null;column:course_credits"`

	// Optional metadata
	CoursePic         *string        `json:"course_pic,omitempty" gorm:"type:text;column:course_pic"`
	CourseCategory    *string        `json:"course_category,omitempty" gorm:"type:varchar(50);column:course_category"`
	CourseDescription *string        `json:"course_description,omitempty" gorm:"type:text;column:course_description"`
	CourseTags        datatypes.JSON `json:"course_tags,omitempty" gorm:"type:jsonb;column:course_tags"`
	CourseStatus      CourseStatus   `json:"course_status" gorm:"type:varchar(20);not null;default:'active';column:course_status"`

	CourseCreatedAt time.Time `json:"course_created_at" gorm:"column:course_created_at;not null;autoCreateTime"`
	CourseUpdatedAt time.Time `json:"course_updated_at" gorm:"column:course_updated_at;not null;autoUpdateTime"`
}

func (CourseModel) TableName() string {
	return "courses"
}
