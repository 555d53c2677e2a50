package service

import (
	"fmt"
	"time"

	"tuitiontrack_backend/internals/helpers/dbtime"
)

// Permintaan rentang tanggal mentah dari query string; semua field opsional.
type RangeRequest struct {
	SingleDate string // "date" — satu hari
	StartDate  string // "start_date"
	EndDate    string // "end_date"
	Period     string // "3m" | "6m" — rolling window berakhir bulan berjalan
	Year       string // "2025"
	Month      string // "1".."12"
}

// Rentang half-open [Start, End): End selalu eksklusif (tengah malam IST
// hari setelah hari terakhir), supaya query timestamptz tidak perlu trik
// 23:59:59.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// ResolveDateRange menurunkan satu rentang dari kombinasi parameter.
// Prioritas: start+end eksplisit > single date > period > year/month.
// Tanpa parameter sama sekali hasilnya nil — artinya "tanpa batas waktu".
func ResolveDateRange(req RangeRequest, now time.Time) (*DateRange, error) {
	now = now.In(dbtime.IST)

	if req.StartDate != "" || req.EndDate != "" {
		if req.StartDate == "" {
			return nil, fmt.Errorf("end_date requires start_date")
		}
		start, ok := dbtime.ParseDay(req.StartDate)
		if !ok {
			return nil, fmt.Errorf("invalid start_date '%s', expected YYYY-MM-DD", req.StartDate)
		}
		// start tanpa end = rentang satu hari, sama seperti single date.
		if req.EndDate == "" {
			return &DateRange{Start: start, End: start.AddDate(0, 0, 1)}, nil
		}
		end, ok := dbtime.ParseDay(req.EndDate)
		if !ok {
			return nil, fmt.Errorf("invalid end_date '%s', expected YYYY-MM-DD", req.EndDate)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("end_date is before start_date")
		}
		return &DateRange{Start: start, End: end.AddDate(0, 0, 1)}, nil
	}

	if req.SingleDate != "" {
		day, ok := dbtime.ParseDay(req.SingleDate)
		if !ok {
			return nil, fmt.Errorf("invalid date '%s', expected YYYY-MM-DD", req.SingleDate)
		}
		return &DateRange{Start: day, End: day.AddDate(0, 0, 1)}, nil
	}

	if req.Period != "" {
		var months int
		switch req.Period {
		case "3m":
			months = 3
		case "6m":
			months = 6
		default:
			return nil, fmt.Errorf("invalid period '%s', expected 3m or 6m", req.Period)
		}
		// Window mencakup bulan berjalan: mis. period=3m pada 15 Maret
		// berarti Januari s.d. Maret.
		end := dbtime.MonthStart(now.Year(), int(now.Month())+1)
		start := dbtime.MonthStart(now.Year(), int(now.Month())-months+1)
		return &DateRange{Start: start, End: end}, nil
	}

	if req.Year != "" {
		year, ok := parsePositive(req.Year)
		if !ok {
			return nil, fmt.Errorf("invalid year '%s'", req.Year)
		}
		if req.Month != "" {
			month, ok := parsePositive(req.Month)
			if !ok || month < 1 || month > 12 {
				return nil, fmt.Errorf("invalid month '%s'", req.Month)
			}
			start := dbtime.MonthStart(year, month)
			return &DateRange{Start: start, End: dbtime.MonthStart(year, month+1)}, nil
		}
		return &DateRange{
			Start: dbtime.MonthStart(year, 1),
			End:   dbtime.MonthStart(year+1, 1),
		}, nil
	}

	if req.Month != "" {
		// Bulan tanpa tahun -> tahun berjalan.
		month, ok := parsePositive(req.Month)
		if !ok || month < 1 || month > 12 {
			return nil, fmt.Errorf("invalid month '%s'", req.Month)
		}
		start := dbtime.MonthStart(now.Year(), month)
		return &DateRange{Start: start, End: dbtime.MonthStart(now.Year(), month+1)}, nil
	}

	return nil, nil
}

func parsePositive(s string) (int, bool) {
	n := 0
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
