package service

import (
	"tuitiontrack_backend/internals/features/school/syllabus/model"
	"tuitiontrack_backend/internals/helpers/dbtime"
)

type ReportRow struct {
	Subject string `json:"subject"`
	Chapter string `json:"chapter"`
	Remark  string `json:"remark"`
	Author  string `json:"author"`
}

type DaySection struct {
	DayLabel string      `json:"day"`  // "05 January 2025"
	Rows     []ReportRow `json:"rows"`
}

type MonthSection struct {
	MonthLabel string       `json:"month"` // "January 2025"
	Days       []DaySection `json:"days"`
}

// AssembleReport menyusun records (sudah terurut tanggal menaik) jadi tabel
// per hari, dikelompokkan per bulan. Urutan bulan/hari mengikuti urutan
// kemunculan di input.
func AssembleReport(records []model.SyllabusModel) []MonthSection {
	months := make([]MonthSection, 0)
	monthIndex := make(map[string]int)

	for _, rec := range records {
		local := rec.SyllabusDate.In(dbtime.IST)
		monthLabel := local.Format("January 2006")
		dayLabel := local.Format("02 January 2006")

		mi, ok := monthIndex[monthLabel]
		if !ok {
			mi = len(months)
			monthIndex[monthLabel] = mi
			months = append(months, MonthSection{MonthLabel: monthLabel, Days: []DaySection{}})
		}

		rows := make([]ReportRow, 0)
		for _, e := range rec.Entries() {
			rows = append(rows, ReportRow{
				Subject: e.Subject,
				Chapter: e.Chapter,
				Remark:  e.Remark,
				Author:  rec.SyllabusAuthorName,
			})
		}
		// (batch,date) unik, jadi satu record = satu section hari.
		months[mi].Days = append(months[mi].Days, DaySection{DayLabel: dayLabel, Rows: rows})
	}
	return months
}
