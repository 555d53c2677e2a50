package dbtime

import (
	"testing"
	"time"
)

func TestAtMidnightUsesISTCalendarDay(t *testing.T) {
	// 2025-01-05 20:00 UTC = 2025-01-06 01:30 IST: hari kalender lokalnya
	// sudah tanggal 6.
	utcEvening := time.Date(2025, 1, 5, 20, 0, 0, 0, time.UTC)
	got := AtMidnight(utcEvening)

	want := time.Date(2025, 1, 6, 0, 0, 0, 0, IST)
	if !got.Equal(want) {
		t.Errorf("AtMidnight = %v, want %v", got, want)
	}
}

func TestDayKeyMatchesParseDay(t *testing.T) {
	keys := []string{"2024-02-29", "2025-01-01", "2025-12-31"}
	for _, key := range keys {
		parsed, ok := ParseDay(key)
		if !ok {
			t.Fatalf("ParseDay(%q) failed", key)
		}
		if got := DayKey(parsed); got != key {
			t.Errorf("DayKey(ParseDay(%q)) = %q", key, got)
		}
	}
}

func TestParseDayRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "2025-13-01", "05-01-2025", "2025/01/05", "yesterday"} {
		if _, ok := ParseDay(bad); ok {
			t.Errorf("ParseDay(%q) accepted", bad)
		}
	}
}

func TestMonthStartNormalizesOutOfRange(t *testing.T) {
	// month 0 = Desember tahun sebelumnya, month 13 = Januari berikutnya.
	if got := MonthStart(2025, 0); !got.Equal(time.Date(2024, 12, 1, 0, 0, 0, 0, IST)) {
		t.Errorf("MonthStart(2025, 0) = %v", got)
	}
	if got := MonthStart(2024, 13); !got.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, IST)) {
		t.Errorf("MonthStart(2024, 13) = %v", got)
	}
}
