// file: internals/helpers/dbtime/dbtime.go
package dbtime

import (
	"time"
)

// IST adalah offset tetap UTC+05:30. Semua batas hari/bulan dihitung di
// offset ini, bukan timezone host, supaya hasil query deterministik di
// deployment manapun.
var IST = time.FixedZone("IST", 330*60)

const DayLayout = "2006-01-02"

// AtMidnight memotong jam ke 00:00 IST pada hari kalender yang sama.
func AtMidnight(t time.Time) time.Time {
	local := t.In(IST)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, IST)
}

// DayKey mengembalikan kunci hari kalender lokal (YYYY-MM-DD, IST).
func DayKey(t time.Time) string {
	return t.In(IST).Format(DayLayout)
}

// ParseDay membaca "YYYY-MM-DD" sebagai tengah malam IST.
func ParseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DayLayout, s, IST)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MonthStart: instan pertama bulan (year, month) di IST. month boleh di luar
// 1..12; time.Date menormalkan (0 berarti Desember tahun sebelumnya, dst).
func MonthStart(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, IST)
}
