package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	attendancemodel "tuitiontrack_backend/internals/features/school/attendance/model"
)

func TestResolveStudent_Live(t *testing.T) {
	studentID := uuid.New()
	entry := attendancemodel.AttendanceModel{
		AttendanceID:          uuid.New(),
		AttendanceStudentID:   studentID,
		AttendanceStudentName: "Old Snapshot",
	}
	email := "alice@example.com"
	live := map[uuid.UUID]studentRow{
		studentID: {StudentID: studentID, StudentName: "Alice", StudentEmail: &email},
	}

	res := resolveStudent(entry, live)
	if res.State != ResolutionLive {
		t.Errorf("state = %v, want Live", res.State)
	}
	if res.DisplayName != "Alice" {
		t.Errorf("display = %q, snapshot must not shadow live name", res.DisplayName)
	}
	if res.Key != studentID.String() {
		t.Errorf("key = %q, want student id", res.Key)
	}
	if res.Email == nil || *res.Email != email {
		t.Errorf("email = %v, want %q", res.Email, email)
	}
}

func TestResolveStudent_DeletedWithSnapshot(t *testing.T) {
	studentID := uuid.New()
	entry := attendancemodel.AttendanceModel{
		AttendanceID:          uuid.New(),
		AttendanceStudentID:   studentID,
		AttendanceStudentName: "Alice",
	}

	res := resolveStudent(entry, map[uuid.UUID]studentRow{})
	if res.State != ResolutionDeleted {
		t.Errorf("state = %v, want Deleted", res.State)
	}
	if res.DisplayName != "Alice (deleted)" {
		t.Errorf("display = %q", res.DisplayName)
	}
	// Key tetap student id: dua entri student terhapus yang sama harus
	// tetap satu grup.
	if res.Key != studentID.String() {
		t.Errorf("key = %q, want stable student id", res.Key)
	}
	// Snapshot tidak menyimpan email.
	if res.Email != nil {
		t.Errorf("email = %q, want nil for deleted student", *res.Email)
	}
}

func TestResolveStudent_DeletedNoSnapshot(t *testing.T) {
	entry := attendancemodel.AttendanceModel{
		AttendanceID:        uuid.New(),
		AttendanceStudentID: uuid.New(),
	}

	res := resolveStudent(entry, map[uuid.UUID]studentRow{})
	if res.State != ResolutionUnknown || res.DisplayName != "Unknown (deleted)" {
		t.Errorf("res = %+v", res)
	}
}

// Entri lama tanpa referensi student sama sekali: key sintetis dari
// snapshot + akhiran id entri.
func TestResolveStudent_SyntheticKey(t *testing.T) {
	entry := attendancemodel.AttendanceModel{
		AttendanceID:          uuid.New(),
		AttendanceStudentID:   uuid.Nil,
		AttendanceStudentName: "Bob",
	}

	res := resolveStudent(entry, nil)
	if !strings.HasPrefix(res.Key, "deleted:Bob:") {
		t.Errorf("key = %q", res.Key)
	}
	idStr := entry.AttendanceID.String()
	if !strings.HasSuffix(res.Key, idStr[len(idStr)-6:]) {
		t.Errorf("key %q should end with last 6 chars of entry id", res.Key)
	}
	if res.DisplayName != "Bob (deleted)" {
		t.Errorf("display = %q", res.DisplayName)
	}

	// Deterministik untuk entri yang sama.
	if again := resolveStudent(entry, nil); again.Key != res.Key {
		t.Errorf("key not deterministic: %q vs %q", res.Key, again.Key)
	}

	blank := attendancemodel.AttendanceModel{AttendanceID: uuid.New()}
	if res := resolveStudent(blank, nil); !strings.HasPrefix(res.Key, "deleted:unknown:") {
		t.Errorf("blank key = %q", res.Key)
	}
}
