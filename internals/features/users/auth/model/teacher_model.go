package model

import (
	"time"

	"github.com/google/uuid"
)

type TeacherModel struct {
	TeacherID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_id" json:"teacher_id"`
	TeacherName     string    `gorm:"not null;column:teacher_name"                                     json:"teacher_name"`
	TeacherEmail    string    `gorm:"not null;uniqueIndex;column:teacher_email"                        json:"teacher_email"`
	TeacherPassword string    `gorm:"not null;column:teacher_password"                                 json:"-"`
	TeacherCity     string    `gorm:"not null;column:teacher_city"                                     json:"teacher_city"`

	TeacherCreatedAt time.Time  `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt *time.Time `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }
