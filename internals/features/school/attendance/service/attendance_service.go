package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tuitiontrack_backend/internals/features/school/attendance/model"
)

// Status yang diterima. Status lain ditolak saat menulis; pembaca (summary)
// tetap permisif terhadap string tak dikenal yang sudah terlanjur tersimpan.
var ValidStatuses = []string{"Present", "Absent", "Holiday"}

// NormalizeStatus: kapital di depan, sisanya lowercase ("present" -> "Present").
func NormalizeStatus(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("missing status")
	}
	normalized := strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	for _, valid := range ValidStatuses {
		if normalized == valid {
			return normalized, nil
		}
	}
	return "", fmt.Errorf("invalid status '%s'. Valid: %s", raw, strings.Join(ValidStatuses, ", "))
}

// ResolveMarkInput memvalidasi satu record bulk-mark terlepas dari record
// lain: parse student id, terapkan override hari libur, normalisasi status.
// Hari libur menimpa status individual; remark libur kosong default "Holiday".
func ResolveMarkInput(rawStudentID, rawStatus, rawRemarks string, isHoliday bool, holidayReason string) (uuid.UUID, string, string, error) {
	studentID, err := uuid.Parse(strings.TrimSpace(rawStudentID))
	if err != nil {
		return uuid.Nil, "", "", fmt.Errorf("student_id tidak valid")
	}
	if isHoliday {
		remarks := holidayReason
		if remarks == "" {
			remarks = "Holiday"
		}
		return studentID, "Holiday", remarks, nil
	}
	status, err := NormalizeStatus(rawStatus)
	if err != nil {
		return uuid.Nil, "", "", err
	}
	return studentID, status, rawRemarks, nil
}

// UpsertEntry menulis entri (student,batch,date) secara atomik: satu
// INSERT ... ON CONFLICT DO UPDATE, bukan read-then-write, supaya submit
// ganda untuk tanggal yang sama tidak menghasilkan duplikat.
func UpsertEntry(db *gorm.DB, entry *model.AttendanceModel) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_student_id"},
			{Name: "attendance_batch_id"},
			{Name: "attendance_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"attendance_status",
			"attendance_remarks",
			"attendance_student_name",
		}),
	}).Create(entry).Error
}

// SnapshotStudentName membaca nama student saat menulis entri; best effort,
// string kosong kalau student tidak ditemukan.
func SnapshotStudentName(db *gorm.DB, studentID uuid.UUID) string {
	var names []string
	_ = db.Table("students").
		Where("student_id = ?", studentID).
		Limit(1).
		Pluck("student_name", &names).Error
	if len(names) == 0 {
		return ""
	}
	return names[0]
}
