package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentModel struct {
	StudentID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentName    string    `gorm:"not null;column:student_name"                                     json:"student_name"`
	StudentEmail   *string   `gorm:"column:student_email"                                             json:"student_email,omitempty"`
	StudentBatchID uuid.UUID `gorm:"type:uuid;not null;index;column:student_batch_id"                 json:"student_batch_id"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
}

func (StudentModel) TableName() string { return "students" }
