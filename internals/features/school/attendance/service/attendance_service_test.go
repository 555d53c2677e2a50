package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"Present", "Present", false},
		{"present", "Present", false},
		{"PRESENT", "Present", false},
		{"  absent ", "Absent", false},
		{"hOLIDAY", "Holiday", false},
		{"", "", true},
		{"  ", "", true},
		{"Late", "", true},
		{"Presentt", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeStatus(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("NormalizeStatus(%q) err = %v, wantErr %t", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Tiga record, record #2 id-nya rusak: #1 dan #3 tetap lolos, hanya #2
// yang gagal — kegagalan satu record tidak menular ke record lain.
func TestResolveMarkInputIndependentPerRecord(t *testing.T) {
	records := []struct {
		id     string
		status string
	}{
		{uuid.New().String(), "Present"},
		{"not-a-uuid", "Present"},
		{uuid.New().String(), "absent"},
	}

	var failed []int
	for i, r := range records {
		if _, _, _, err := ResolveMarkInput(r.id, r.status, "", false, ""); err != nil {
			failed = append(failed, i)
		}
	}
	if len(failed) != 1 || failed[0] != 1 {
		t.Errorf("failed indexes = %v, want [1]", failed)
	}
}

func TestResolveMarkInputHolidayOverride(t *testing.T) {
	id := uuid.New().String()

	// Hari libur menimpa status apapun yang dikirim per record.
	_, status, remarks, err := ResolveMarkInput(id, "Present", "was here", true, "Eid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "Holiday" || remarks != "Eid" {
		t.Errorf("got (%q, %q), want (Holiday, Eid)", status, remarks)
	}

	// Tanpa alasan, remark default "Holiday".
	_, _, remarks, err = ResolveMarkInput(id, "", "", true, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if remarks != "Holiday" {
		t.Errorf("remarks = %q, want default Holiday", remarks)
	}
}

func TestResolveMarkInputErrors(t *testing.T) {
	if _, _, _, err := ResolveMarkInput("", "Present", "", false, ""); err == nil {
		t.Errorf("empty student_id should fail")
	}
	if _, _, _, err := ResolveMarkInput(uuid.New().String(), "Late", "", false, ""); err == nil {
		t.Errorf("unknown status should fail")
	}
}
