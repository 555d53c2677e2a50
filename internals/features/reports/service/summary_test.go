package service

import (
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"tuitiontrack_backend/internals/helpers/dbtime"
)

func day(s string) time.Time {
	t, _ := dbtime.ParseDay(s)
	return t
}

func liveRecord(batch *BatchRef, studentName, dateKey, status string) AttendanceRecord {
	id := uuid.New()
	return AttendanceRecord{
		ID:     uuid.New(),
		Date:   day(dateKey),
		Status: status,
		Student: StudentResolution{
			State:       ResolutionLive,
			Key:         id.String(),
			DisplayName: studentName,
		},
		Batch: batch,
	}
}

func TestSummarizeAttendance_Scenario(t *testing.T) {
	b1 := &BatchRef{ID: uuid.New(), Name: "B1"}
	records := []AttendanceRecord{
		liveRecord(b1, "Alice", "2025-01-05", "Present"),
		liveRecord(b1, "Bob", "2025-01-05", "Absent"),
		liveRecord(b1, "Alice", "2025-01-06", "Absent"),
		liveRecord(b1, "Bob", "2025-01-06", "Present"),
	}

	summaries := SummarizeAttendance(records)
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}
	s := summaries[0]
	if s.BatchID != b1.ID || s.BatchName != "B1" {
		t.Errorf("batch = %s/%s", s.BatchID, s.BatchName)
	}
	if s.Counts["Present"] != 2 || s.Counts["Absent"] != 2 || s.Counts["Holiday"] != 0 {
		t.Errorf("counts = %v, want Present:2 Absent:2 Holiday:0", s.Counts)
	}
}

func TestSummarizeAttendance_UnknownStatusGetsOwnCounter(t *testing.T) {
	b := &BatchRef{ID: uuid.New(), Name: "B"}
	records := []AttendanceRecord{
		liveRecord(b, "A", "2025-01-05", "Late"),
		liveRecord(b, "B", "2025-01-05", "Late"),
		liveRecord(b, "C", "2025-01-05", "Present"),
	}

	summaries := SummarizeAttendance(records)
	if summaries[0].Counts["Late"] != 2 {
		t.Errorf("Late = %d, want 2", summaries[0].Counts["Late"])
	}
}

func TestSummarizeAttendance_SkipsDeletedBatch(t *testing.T) {
	b := &BatchRef{ID: uuid.New(), Name: "B"}
	records := []AttendanceRecord{
		liveRecord(nil, "Ghost", "2025-01-05", "Present"),
		liveRecord(b, "Alive", "2025-01-05", "Present"),
	}

	summaries := SummarizeAttendance(records)
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1 (nil batch skipped)", len(summaries))
	}
	if summaries[0].Counts["Present"] != 1 {
		t.Errorf("Present = %d, want 1", summaries[0].Counts["Present"])
	}
}

func TestSummarizeAttendance_FirstSeenOrder(t *testing.T) {
	b1 := &BatchRef{ID: uuid.New(), Name: "Zulu"}
	b2 := &BatchRef{ID: uuid.New(), Name: "Alpha"}
	records := []AttendanceRecord{
		liveRecord(b1, "A", "2025-01-05", "Present"),
		liveRecord(b2, "B", "2025-01-05", "Present"),
		liveRecord(b1, "C", "2025-01-06", "Absent"),
	}

	summaries := SummarizeAttendance(records)
	if len(summaries) != 2 || summaries[0].BatchName != "Zulu" || summaries[1].BatchName != "Alpha" {
		t.Errorf("order = %+v, want Zulu then Alpha", summaries)
	}
}

func TestBatchSummaryMarshalFlattens(t *testing.T) {
	s := BatchSummary{
		BatchID:   uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		BatchName: "B1",
		Counts:    map[string]int{"Present": 2, "Absent": 0, "Holiday": 0, "Late": 1},
	}
	raw, err := sonic.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var flat map[string]interface{}
	if err := sonic.Unmarshal(raw, &flat); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if flat["batch"] != "B1" {
		t.Errorf("batch = %v", flat["batch"])
	}
	if !strings.Contains(string(raw), `"batch_id"`) {
		t.Errorf("missing batch_id in %s", raw)
	}
	for key, want := range map[string]float64{"Present": 2, "Absent": 0, "Holiday": 0, "Late": 1} {
		if got, ok := flat[key].(float64); !ok || got != want {
			t.Errorf("%s = %v, want %v", key, flat[key], want)
		}
	}
}
