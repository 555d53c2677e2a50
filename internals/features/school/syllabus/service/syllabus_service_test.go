package service

import (
	"strings"
	"testing"

	batchmodel "tuitiontrack_backend/internals/features/school/batches/model"
	"tuitiontrack_backend/internals/features/school/syllabus/model"
	"tuitiontrack_backend/internals/helpers/dbtime"
)

func batchWithSubjects(t *testing.T, subjects []batchmodel.Subject) *batchmodel.BatchModel {
	t.Helper()
	encoded, err := batchmodel.EncodeSubjects(subjects)
	if err != nil {
		t.Fatalf("encode subjects: %v", err)
	}
	return &batchmodel.BatchModel{BatchName: "B", BatchSubjects: encoded}
}

func TestValidateEntries(t *testing.T) {
	batch := batchWithSubjects(t, []batchmodel.Subject{
		{Name: "Quran", Chapters: []string{"Al-Fatiha", "Al-Baqarah"}},
		{Name: "History", Chapters: []string{"Ch 1"}},
	})

	tests := []struct {
		name    string
		entries []model.SyllabusEntry
		wantErr string
	}{
		{
			name:    "valid",
			entries: []model.SyllabusEntry{{Subject: "Quran", Chapter: "Al-Fatiha"}},
		},
		{
			name:    "unknown subject",
			entries: []model.SyllabusEntry{{Subject: "Math", Chapter: "Algebra"}},
			wantErr: "subject 'Math'",
		},
		{
			name: "unknown chapter",
			entries: []model.SyllabusEntry{
				{Subject: "Quran", Chapter: "Al-Fatiha"},
				{Subject: "History", Chapter: "Ch 9"},
			},
			wantErr: "chapter 'Ch 9'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntries(batch, tt.entries)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want contains %q", err, tt.wantErr)
			}
		})
	}
}

// Batch tanpa definisi subjects: semua entry lolos.
func TestValidateEntriesEmptyDefinition(t *testing.T) {
	batch := &batchmodel.BatchModel{BatchName: "B"}
	entries := []model.SyllabusEntry{{Subject: "Anything", Chapter: "Whatever"}}
	if err := ValidateEntries(batch, entries); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAssembleReportGroupsByMonthThenDay(t *testing.T) {
	mk := func(t *testing.T, dateKey string, author string, entries []model.SyllabusEntry) model.SyllabusModel {
		t.Helper()
		encoded, err := model.EncodeEntries(entries)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		day, ok := dbtime.ParseDay(dateKey)
		if !ok {
			t.Fatalf("bad date %q", dateKey)
		}
		return model.SyllabusModel{
			SyllabusDate:       day,
			SyllabusEntries:    encoded,
			SyllabusAuthorName: author,
		}
	}

	records := []model.SyllabusModel{
		mk(t, "2025-01-05", "Ust. Ali", []model.SyllabusEntry{
			{Subject: "Quran", Chapter: "Al-Fatiha", Remark: "recap"},
			{Subject: "History", Chapter: "Ch 1"},
		}),
		mk(t, "2025-01-12", "Ust. Ali", []model.SyllabusEntry{
			{Subject: "Quran", Chapter: "Al-Baqarah"},
		}),
		mk(t, "2025-02-02", "Ust. Umar", []model.SyllabusEntry{
			{Subject: "History", Chapter: "Ch 2"},
		}),
	}

	report := AssembleReport(records)
	if len(report) != 2 {
		t.Fatalf("months = %d, want 2", len(report))
	}

	jan := report[0]
	if jan.MonthLabel != "January 2025" || len(jan.Days) != 2 {
		t.Fatalf("jan = %+v", jan)
	}
	if jan.Days[0].DayLabel != "05 January 2025" {
		t.Errorf("day label = %q", jan.Days[0].DayLabel)
	}
	if len(jan.Days[0].Rows) != 2 || jan.Days[0].Rows[0].Author != "Ust. Ali" {
		t.Errorf("rows = %+v", jan.Days[0].Rows)
	}
	if jan.Days[0].Rows[0].Remark != "recap" {
		t.Errorf("remark = %q", jan.Days[0].Rows[0].Remark)
	}

	feb := report[1]
	if feb.MonthLabel != "February 2025" || len(feb.Days) != 1 {
		t.Fatalf("feb = %+v", feb)
	}
	if feb.Days[0].Rows[0].Author != "Ust. Umar" {
		t.Errorf("author = %q", feb.Days[0].Rows[0].Author)
	}
}

func TestAssembleReportEmptyInput(t *testing.T) {
	report := AssembleReport(nil)
	if len(report) != 0 {
		t.Errorf("report = %+v, want empty", report)
	}
}
