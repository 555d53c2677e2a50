package model

import (
	"time"

	"github.com/google/uuid"
)

// Satu entri = status satu student pada satu tanggal di satu batch.
// Student/batch adalah weak reference (tanpa FK): entri harus tetap hidup
// setelah student dihapus, dengan snapshot nama untuk display.
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceStudentID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_student_batch_date;column:attendance_student_id" json:"attendance_student_id"`
	AttendanceStudentName string    `gorm:"not null;default:'';column:attendance_student_name"                                            json:"attendance_student_name"`
	AttendanceBatchID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_student_batch_date;index;column:attendance_batch_id" json:"attendance_batch_id"`

	// Tengah malam IST; unique index (student,batch,date) menopang upsert.
	AttendanceDate    time.Time `gorm:"type:timestamptz;not null;uniqueIndex:idx_attendance_student_batch_date;index;column:attendance_date" json:"attendance_date"`
	AttendanceStatus  string    `gorm:"not null;column:attendance_status"              json:"attendance_status"`
	AttendanceRemarks string    `gorm:"not null;default:'';column:attendance_remarks"  json:"attendance_remarks"`
}

func (AttendanceModel) TableName() string { return "attendances" }
