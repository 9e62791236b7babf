// file: internals/features/comments/comments/model/comment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type CommentModel struct {
	CommentID uuid.UUID `json:"comment_id" gorm:"type:uuid;primaryKey;column:comment_id;default:gen_random_uuid()"`

	CommentClassRoutineID uuid.UUID `json:"comment_class_routine_id" gorm:"type:uuid;not null;index:idx_comments_class_routine;column:comment_class_routine_id"`
	CommentStudentID      uuid.UUID `json:"comment_student_id" gorm:"type:uuid;not null;column:comment_student_id"`
	CommentText           string    `json:"comment_text" gorm:"type:text;not null;column:comment_text"`

	CommentCreatedAt time.Time `json:"comment_created_at" gorm:"column:comment_created_at;not null;autoCreateTime"`
	CommentUpdatedAt time.Time `json:"comment_updated_at" gorm:"column:comment_updated_at;not null;autoUpdateTime"`
}

func (CommentModel) TableName() string {
	return "comments"
}
