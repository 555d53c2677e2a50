package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Subject adalah satu mata pelajaran yang melekat pada batch (embedded JSONB).
type Subject struct {
	Name     string   `json:"name"`
	Chapters []string `json:"chapters"`
}

type BatchModel struct {
	BatchID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:batch_id" json:"batch_id"`
	BatchName      string    `gorm:"not null;column:batch_name"                                     json:"batch_name"`
	BatchTeacherID uuid.UUID `gorm:"type:uuid;not null;index;column:batch_teacher_id"               json:"batch_teacher_id"`
	BatchCity      string    `gorm:"not null;column:batch_city"                                     json:"batch_city"`
	BatchType      *string   `gorm:"column:batch_type"                                              json:"batch_type,omitempty"`

	BatchSubjects datatypes.JSON `gorm:"type:jsonb;column:batch_subjects" json:"batch_subjects"`

	BatchCreatedAt time.Time `gorm:"column:batch_created_at;autoCreateTime" json:"batch_created_at"`
}

func (BatchModel) TableName() string { return "batches" }

// Subjects mendekode kolom JSONB; kolom kosong berarti slice kosong.
func (m BatchModel) Subjects() ([]Subject, error) {
	if len(m.BatchSubjects) == 0 {
		return nil, nil
	}
	var subjects []Subject
	if err := json.Unmarshal(m.BatchSubjects, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

func EncodeSubjects(subjects []Subject) (datatypes.JSON, error) {
	raw, err := json.Marshal(subjects)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
