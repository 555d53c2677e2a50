package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attendancemodel "tuitiontrack_backend/internals/features/school/attendance/model"
	batchmodel "tuitiontrack_backend/internals/features/school/batches/model"
)

// Filters menyempitkan entri attendance; semua field opsional dan
// di-AND-kan. City/TeacherID menyempit lewat batch yang cocok.
type Filters struct {
	City      string
	TeacherID *uuid.UUID
	BatchID   *uuid.UUID
	StudentID *uuid.UUID
	Range     *DateRange
}

type ResolutionState int

const (
	ResolutionLive ResolutionState = iota
	ResolutionDeleted
	ResolutionUnknown
)

// StudentResolution dihitung sekali saat query, bukan berulang di tiap
// consumer. Key stabil per student (dipakai grouping summary & kolom Excel),
// DisplayName mengikuti rantai: nama hidup -> "snapshot (deleted)" ->
// "Unknown (deleted)". Email hanya terisi untuk student yang masih hidup —
// snapshot di entri tidak menyimpan email.
type StudentResolution struct {
	State       ResolutionState
	Key         string
	DisplayName string
	Email       *string
}

type BatchRef struct {
	ID   uuid.UUID
	Name string
}

// AttendanceRecord = entri mentah + referensi yang sudah diresolve.
type AttendanceRecord struct {
	ID      uuid.UUID
	Date    time.Time
	Status  string
	Remarks string
	Student StudentResolution
	Batch   *BatchRef // nil kalau batch sudah dihapus
}

// GetFilteredAttendance menjalankan pipeline filter lalu meresolve semua
// referensi student/batch dengan dua query IN — bukan satu query per entri.
func GetFilteredAttendance(db *gorm.DB, f Filters) ([]AttendanceRecord, error) {
	q := db.Model(&attendancemodel.AttendanceModel{})

	// Pre-resolve batch: kalau scope batch-nya saja sudah kosong, tidak
	// perlu menyentuh tabel attendance sama sekali.
	if f.BatchID != nil {
		var batch batchmodel.BatchModel
		err := db.Where("batch_id = ?", *f.BatchID).Take(&batch).Error
		if err == gorm.ErrRecordNotFound {
			return []AttendanceRecord{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("resolve batch: %w", err)
		}
		if f.TeacherID != nil && batch.BatchTeacherID != *f.TeacherID {
			return []AttendanceRecord{}, nil
		}
		if f.City != "" && batch.BatchCity != f.City {
			return []AttendanceRecord{}, nil
		}
		q = q.Where("attendance_batch_id = ?", *f.BatchID)
	} else if f.TeacherID != nil || f.City != "" {
		bq := db.Model(&batchmodel.BatchModel{})
		if f.TeacherID != nil {
			bq = bq.Where("batch_teacher_id = ?", *f.TeacherID)
		}
		if f.City != "" {
			bq = bq.Where("batch_city = ?", f.City)
		}
		var batchIDs []uuid.UUID
		if err := bq.Pluck("batch_id", &batchIDs).Error; err != nil {
			return nil, fmt.Errorf("resolve batches: %w", err)
		}
		if len(batchIDs) == 0 {
			return []AttendanceRecord{}, nil
		}
		q = q.Where("attendance_batch_id IN ?", batchIDs)
	}

	if f.StudentID != nil {
		q = q.Where("attendance_student_id = ?", *f.StudentID)
	}
	if f.Range != nil {
		q = q.Where("attendance_date >= ? AND attendance_date < ?", f.Range.Start, f.Range.End)
	}

	var entries []attendancemodel.AttendanceModel
	if err := q.Order("attendance_date ASC, attendance_student_name ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("query attendance: %w", err)
	}
	if len(entries) == 0 {
		return []AttendanceRecord{}, nil
	}

	liveStudents, err := resolveStudents(db, entries)
	if err != nil {
		return nil, err
	}
	liveBatches, err := resolveBatches(db, entries)
	if err != nil {
		return nil, err
	}

	records := make([]AttendanceRecord, 0, len(entries))
	for _, e := range entries {
		rec := AttendanceRecord{
			ID:      e.AttendanceID,
			Date:    e.AttendanceDate,
			Status:  e.AttendanceStatus,
			Remarks: e.AttendanceRemarks,
			Student: resolveStudent(e, liveStudents),
		}
		if ref, ok := liveBatches[e.AttendanceBatchID]; ok {
			rec.Batch = &BatchRef{ID: e.AttendanceBatchID, Name: ref}
		}
		records = append(records, rec)
	}
	return records, nil
}

type studentRow struct {
	StudentID    uuid.UUID `gorm:"column:student_id"`
	StudentName  string    `gorm:"column:student_name"`
	StudentEmail *string   `gorm:"column:student_email"`
}

func resolveStudents(db *gorm.DB, entries []attendancemodel.AttendanceModel) (map[uuid.UUID]studentRow, error) {
	ids := make([]uuid.UUID, 0, len(entries))
	seen := make(map[uuid.UUID]struct{}, len(entries))
	for _, e := range entries {
		if e.AttendanceStudentID == uuid.Nil {
			continue
		}
		if _, ok := seen[e.AttendanceStudentID]; ok {
			continue
		}
		seen[e.AttendanceStudentID] = struct{}{}
		ids = append(ids, e.AttendanceStudentID)
	}
	out := make(map[uuid.UUID]studentRow, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []studentRow
	if err := db.Table("students").Where("student_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("resolve students: %w", err)
	}
	for _, r := range rows {
		out[r.StudentID] = r
	}
	return out, nil
}

func resolveBatches(db *gorm.DB, entries []attendancemodel.AttendanceModel) (map[uuid.UUID]string, error) {
	ids := make([]uuid.UUID, 0, len(entries))
	seen := make(map[uuid.UUID]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.AttendanceBatchID]; ok {
			continue
		}
		seen[e.AttendanceBatchID] = struct{}{}
		ids = append(ids, e.AttendanceBatchID)
	}
	out := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []batchmodel.BatchModel
	if err := db.Where("batch_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("resolve batches: %w", err)
	}
	for _, r := range rows {
		out[r.BatchID] = r.BatchName
	}
	return out, nil
}

// resolveStudent: key harus stabil antar-request supaya grouping tidak
// berubah hanya karena student dihapus. Selama id ada, id-lah key-nya;
// key sintetis hanya untuk entri lama tanpa referensi student.
func resolveStudent(e attendancemodel.AttendanceModel, live map[uuid.UUID]studentRow) StudentResolution {
	if e.AttendanceStudentID != uuid.Nil {
		key := e.AttendanceStudentID.String()
		if row, ok := live[e.AttendanceStudentID]; ok {
			return StudentResolution{
				State:       ResolutionLive,
				Key:         key,
				DisplayName: row.StudentName,
				Email:       row.StudentEmail,
			}
		}
		if e.AttendanceStudentName != "" {
			return StudentResolution{
				State:       ResolutionDeleted,
				Key:         key,
				DisplayName: e.AttendanceStudentName + " (deleted)",
			}
		}
		return StudentResolution{State: ResolutionUnknown, Key: key, DisplayName: "Unknown (deleted)"}
	}

	idStr := e.AttendanceID.String()
	suffix := idStr
	if len(idStr) > 6 {
		suffix = idStr[len(idStr)-6:]
	}
	if e.AttendanceStudentName != "" {
		return StudentResolution{
			State:       ResolutionDeleted,
			Key:         "deleted:" + e.AttendanceStudentName + ":" + suffix,
			DisplayName: e.AttendanceStudentName + " (deleted)",
		}
	}
	return StudentResolution{
		State:       ResolutionUnknown,
		Key:         "deleted:unknown:" + suffix,
		DisplayName: "Unknown (deleted)",
	}
}
