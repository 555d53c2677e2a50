package model

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SyllabusEntry struct {
	Subject string `json:"subject"`
	Chapter string `json:"chapter"`
	Remark  string `json:"remark"`
}

// Satu record per (batch, tanggal); daftar entry disimpan sebagai JSONB.
type SyllabusModel struct {
	SyllabusID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:syllabus_id" json:"syllabus_id"`

	SyllabusBatchID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_syllabus_batch_date;index;column:syllabus_batch_id" json:"syllabus_batch_id"`
	SyllabusDate    time.Time `gorm:"type:timestamptz;not null;uniqueIndex:idx_syllabus_batch_date;column:syllabus_date"    json:"syllabus_date"`

	SyllabusEntries    datatypes.JSON `gorm:"type:jsonb;column:syllabus_entries"             json:"syllabus_entries"`
	SyllabusAuthorName string         `gorm:"not null;default:'';column:syllabus_author_name" json:"syllabus_author_name"`

	SyllabusCreatedAt time.Time `gorm:"autoCreateTime;column:syllabus_created_at" json:"syllabus_created_at"`
	SyllabusUpdatedAt time.Time `gorm:"autoUpdateTime;column:syllabus_updated_at" json:"syllabus_updated_at"`
}

func (SyllabusModel) TableName() string { return "syllabuses" }

func (m *SyllabusModel) Entries() []SyllabusEntry {
	if len(m.SyllabusEntries) == 0 {
		return nil
	}
	var entries []SyllabusEntry
	if err := sonic.Unmarshal(m.SyllabusEntries, &entries); err != nil {
		return nil
	}
	return entries
}

func EncodeEntries(entries []SyllabusEntry) (datatypes.JSON, error) {
	raw, err := sonic.Marshal(entries)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
