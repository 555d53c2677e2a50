package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

func deletedRecord(batch *BatchRef, snapshotName, dateKey, status string) AttendanceRecord {
	id := uuid.New()
	return AttendanceRecord{
		ID:     uuid.New(),
		Date:   day(dateKey),
		Status: status,
		Student: StudentResolution{
			State:       ResolutionDeleted,
			Key:         id.String(),
			DisplayName: snapshotName + " (deleted)",
		},
		Batch: batch,
	}
}

func TestBuildAttendanceWorkbook_NoRecords(t *testing.T) {
	if _, _, err := BuildAttendanceWorkbook(nil, ""); err != ErrNoRecords {
		t.Errorf("err = %v, want ErrNoRecords", err)
	}
	// Entri yang batch-nya sudah terhapus tidak bisa diekspor.
	orphan := liveRecord(nil, "Ghost", "2025-01-05", "Present")
	if _, _, err := BuildAttendanceWorkbook([]AttendanceRecord{orphan}, ""); err != ErrNoRecords {
		t.Errorf("orphan-only err = %v, want ErrNoRecords", err)
	}
}

func TestBuildAttendanceWorkbook_RoundTrip(t *testing.T) {
	b := &BatchRef{ID: uuid.New(), Name: "Morning Batch"}
	alice := liveRecord(b, "Alice", "2025-01-05", "Present")
	aliceDay2 := alice
	aliceDay2.Date = day("2025-01-06")
	aliceDay2.Status = "Absent"
	aliceDay2.Remarks = "sick"
	bob := liveRecord(b, "Bob", "2025-01-05", "Absent")

	f, filename, err := BuildAttendanceWorkbook([]AttendanceRecord{alice, aliceDay2, bob}, "Not in Batch")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer f.Close()

	if filename != "Morning_Batch_January_2025.xlsx" {
		t.Errorf("filename = %q", filename)
	}

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	// 2 header + 2 data
	if len(rows) != 4 {
		t.Fatalf("row count = %d, want 4", len(rows))
	}

	if got := rows[0][0]; got != "Student Name" {
		t.Errorf("A1 = %q", got)
	}
	if got := rows[0][1]; got != "January 2025" {
		t.Errorf("month band = %q", got)
	}
	if rows[1][1] != "05 Jan" || rows[1][2] != "06 Jan" {
		t.Errorf("date header = %v", rows[1][1:])
	}

	// Data alfabetis: Alice lalu Bob.
	if rows[2][0] != "Alice" || rows[2][1] != "Present" || rows[2][2] != "Absent (sick)" {
		t.Errorf("Alice row = %v", rows[2])
	}
	if rows[3][0] != "Bob" || rows[3][1] != "Absent" || rows[3][2] != "Not in Batch" {
		t.Errorf("Bob row = %v", rows[3])
	}
}

func TestBuildAttendanceWorkbook_DeletedStudentsAfterLive(t *testing.T) {
	b := &BatchRef{ID: uuid.New(), Name: "B"}
	records := []AttendanceRecord{
		deletedRecord(b, "Aaron", "2025-01-05", "Present"),
		liveRecord(b, "Zoe", "2025-01-05", "Present"),
	}

	f, _, err := BuildAttendanceWorkbook(records, "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer f.Close()

	rows, _ := f.GetRows(f.GetSheetName(0))
	// Zoe (live) sebelum Aaron (deleted) meski urutan alfabet terbalik.
	if rows[2][0] != "Zoe" {
		t.Errorf("row 3 = %q, want Zoe first", rows[2][0])
	}
	if rows[3][0] != "Aaron (deleted)" {
		t.Errorf("row 4 = %q, want deleted suffix", rows[3][0])
	}
}

// Jumlah baris tidak berubah ketika student dihapus: resolusi Deleted
// memakai key yang sama (student id) dengan resolusi Live.
func TestBuildAttendanceWorkbook_DeletedStudentRowStability(t *testing.T) {
	b := &BatchRef{ID: uuid.New(), Name: "B"}
	studentKey := uuid.New().String()

	mk := func(state ResolutionState, display, dateKey, status string) AttendanceRecord {
		return AttendanceRecord{
			ID:      uuid.New(),
			Date:    day(dateKey),
			Status:  status,
			Student: StudentResolution{State: state, Key: studentKey, DisplayName: display},
			Batch:   b,
		}
	}

	before := []AttendanceRecord{
		mk(ResolutionLive, "Alice", "2025-01-05", "Present"),
		mk(ResolutionLive, "Alice", "2025-01-06", "Absent"),
	}
	after := []AttendanceRecord{
		mk(ResolutionDeleted, "Alice (deleted)", "2025-01-05", "Present"),
		mk(ResolutionDeleted, "Alice (deleted)", "2025-01-06", "Absent"),
	}

	fb, _, _ := BuildAttendanceWorkbook(before, "")
	fa, _, _ := BuildAttendanceWorkbook(after, "")
	defer fb.Close()
	defer fa.Close()

	rowsBefore, _ := fb.GetRows(fb.GetSheetName(0))
	rowsAfter, _ := fa.GetRows(fa.GetSheetName(0))
	if len(rowsBefore) != len(rowsAfter) {
		t.Errorf("row count changed after deletion: %d -> %d", len(rowsBefore), len(rowsAfter))
	}
	if rowsAfter[2][0] != "Alice (deleted)" {
		t.Errorf("display = %q", rowsAfter[2][0])
	}
}

func TestBuildAttendanceWorkbook_MultiMonthBands(t *testing.T) {
	b := &BatchRef{ID: uuid.New(), Name: "B"}
	records := []AttendanceRecord{
		liveRecord(b, "A", "2025-01-30", "Present"),
		liveRecord(b, "A", "2025-02-02", "Present"),
	}
	// Satu student dua tanggal: samakan key supaya jadi satu baris.
	records[1].Student = records[0].Student

	f, filename, err := BuildAttendanceWorkbook(records, "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer f.Close()

	if filename != "B_Jan_to_Feb_2025.xlsx" {
		t.Errorf("filename = %q", filename)
	}

	rows, _ := f.GetRows(f.GetSheetName(0))
	if rows[0][1] != "January 2025" {
		t.Errorf("first band = %q", rows[0][1])
	}
	// Kolom kedua milik band Februari (sel merge kosong hanya kalau run > 1).
	if rows[0][2] != "February 2025" {
		t.Errorf("second band = %q", rows[0][2])
	}
}

func TestDeriveFilename(t *testing.T) {
	tests := []struct {
		name  string
		batch string
		dates []string
		want  string
	}{
		{"single month", "Morning Batch", []string{"2025-01-05", "2025-01-20"}, "Morning_Batch_January_2025.xlsx"},
		{"same year", "B", []string{"2025-01-05", "2025-03-02"}, "B_Jan_to_Mar_2025.xlsx"},
		{"cross year", "B", []string{"2024-12-05", "2025-02-02"}, "B_Dec2024_to_Feb2025.xlsx"},
		{"whitespace collapsed", "  My   Batch ", []string{"2025-01-05"}, "My_Batch_January_2025.xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveFilename(tt.batch, tt.dates); got != tt.want {
				t.Errorf("deriveFilename(%q, %v) = %q, want %q", tt.batch, tt.dates, got, tt.want)
			}
		})
	}
}

func TestSheetName(t *testing.T) {
	long := "This Batch Name Is Far Too Long For A Sheet"
	if got := sheetName(long); len(got) != sheetNameMaxLen {
		t.Errorf("len = %d, want %d", len(got), sheetNameMaxLen)
	}
	if sheetName("  ") != "Attendance" {
		t.Errorf("blank name should fall back to Attendance")
	}

	// Karakter terlarang disanitasi, bukan diloloskan ke excelize.
	if got := sheetName(`Math/Science 2025`); strings.ContainsAny(got, `:\/?*[]`) {
		t.Errorf("sanitized name still has forbidden chars: %q", got)
	}
	if got := sheetName(`a:b\c/d?e*f[g]h`); strings.ContainsAny(got, `:\/?*[]`) {
		t.Errorf("sanitized name still has forbidden chars: %q", got)
	}
	if sheetName("***") != "Attendance" {
		t.Errorf("all-forbidden name should fall back to Attendance")
	}

	// Potong per rune: nama multibyte tidak boleh terpenggal di tengah.
	wide := strings.Repeat("班", 40)
	got := sheetName(wide)
	if utf8.RuneCountInString(got) != sheetNameMaxLen {
		t.Errorf("rune count = %d, want %d", utf8.RuneCountInString(got), sheetNameMaxLen)
	}
	if !utf8.ValidString(got) {
		t.Errorf("truncated name is not valid UTF-8")
	}
}

// Nama batch dengan '/' dulu membuat SetSheetName gagal diam-diam dan semua
// tulisan berikutnya menyasar sheet yang tidak ada.
func TestBuildAttendanceWorkbook_SlashedBatchName(t *testing.T) {
	b := &BatchRef{ID: uuid.New(), Name: "Math/Science 2025"}
	f, _, err := BuildAttendanceWorkbook([]AttendanceRecord{
		liveRecord(b, "Alice", "2025-01-05", "Present"),
	}, "")
	if err != nil {
		t.Fatalf("build with slashed batch name: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet != "Math-Science 2025" {
		t.Errorf("sheet = %q", sheet)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 || rows[2][0] != "Alice" {
		t.Errorf("rows = %v", rows)
	}
}

func TestPartitionMonthRuns(t *testing.T) {
	dates := []string{"2024-12-30", "2024-12-31", "2025-01-01", "2025-01-02", "2025-03-01"}
	runs := partitionMonthRuns(dates)
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	want := []monthRun{
		{Label: "December 2024", StartCol: 0, EndCol: 1},
		{Label: "January 2025", StartCol: 2, EndCol: 3},
		{Label: "March 2025", StartCol: 4, EndCol: 4},
	}
	for i, r := range runs {
		if r != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, r, want[i])
		}
	}
}

// Sel Present/Absent diberi fill; cek lewat style id yang berbeda dari sel
// placeholder di baris yang sama.
func TestBuildAttendanceWorkbook_StatusFills(t *testing.T) {
	b := &BatchRef{ID: uuid.New(), Name: "B"}
	alice := liveRecord(b, "Alice", "2025-01-05", "Present")
	aliceDay2 := alice
	aliceDay2.Date = day("2025-01-06")
	aliceDay2.Status = "Absent"

	f, _, err := BuildAttendanceWorkbook([]AttendanceRecord{alice, aliceDay2}, "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	presentStyle := mustCellStyle(t, f, sheet, "B3")
	absentStyle := mustCellStyle(t, f, sheet, "C3")
	if presentStyle == absentStyle {
		t.Errorf("Present and Absent cells share style id %d", presentStyle)
	}
}

func mustCellStyle(t *testing.T, f *excelize.File, sheet, cell string) int {
	t.Helper()
	id, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		t.Fatalf("GetCellStyle(%s): %v", cell, err)
	}
	return id
}
