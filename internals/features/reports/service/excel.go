package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"tuitiontrack_backend/internals/helpers/dbtime"
)

// ErrNoRecords: export tanpa satupun entri ber-batch valid adalah kegagalan,
// bukan spreadsheet kosong.
var ErrNoRecords = errors.New("no attendance records to export")

const (
	sheetNameMaxLen = 31
	dataColumnWidth = 20

	fillMonthBand = "F1F5F9"
	fillZebra     = "F8FAFC"
	fillPresent   = "D1FAE5"
	fillAbsent    = "FEE2E2"
)

// Satu run tanggal berurutan dalam bulan kalender yang sama; menjadi satu
// band header yang di-merge.
type monthRun struct {
	Label    string // "January 2025"
	StartCol int    // index 0-based di dates
	EndCol   int
}

type gridStudent struct {
	Key     string
	Display string
	Deleted bool
}

// BuildAttendanceWorkbook menyusun grid student × tanggal dan mengembalikan
// workbook plus nama file turunan. Urutan langkah deterministik supaya
// output reproducible untuk input yang sama.
func BuildAttendanceWorkbook(records []AttendanceRecord, emptyCell string) (*excelize.File, string, error) {
	exportable := make([]AttendanceRecord, 0, len(records))
	for _, rec := range records {
		if rec.Batch != nil {
			exportable = append(exportable, rec)
		}
	}
	if len(exportable) == 0 {
		return nil, "", ErrNoRecords
	}

	dates := collectDateKeys(exportable)
	students := collectStudents(exportable)
	runs := partitionMonthRuns(dates)

	// Lookup sel sekali di depan; tanpa ini pengisian grid jadi O(students × dates × entries).
	cells := make(map[string]AttendanceRecord, len(exportable))
	for _, rec := range exportable {
		cells[rec.Student.Key+"|"+dbtime.DayKey(rec.Date)] = rec
	}

	batchName := exportable[0].Batch.Name
	f := excelize.NewFile()
	sheet := sheetName(batchName)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", fmt.Errorf("rename sheet: %w", err)
	}

	styles := newStyleSet(f)

	// Kolom pertama = Student Name, merge dua baris header.
	if err := writeHeader(f, sheet, dates, runs, styles); err != nil {
		return nil, "", err
	}
	if err := writeRows(f, sheet, dates, students, runs, cells, emptyCell, styles); err != nil {
		return nil, "", err
	}

	lastCol, _ := excelize.ColumnNumberToName(len(dates) + 1)
	_ = f.SetColWidth(sheet, "A", lastCol, dataColumnWidth)

	return f, deriveFilename(batchName, dates), nil
}

func collectDateKeys(records []AttendanceRecord) []string {
	seen := make(map[string]struct{}, len(records))
	keys := make([]string, 0, len(records))
	for _, rec := range records {
		k := dbtime.DayKey(rec.Date)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Student hidup dulu, lalu yang terhapus; masing-masing alfabetis
// case-insensitive.
func collectStudents(records []AttendanceRecord) []gridStudent {
	seen := make(map[string]struct{}, len(records))
	students := make([]gridStudent, 0, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.Student.Key]; ok {
			continue
		}
		seen[rec.Student.Key] = struct{}{}
		students = append(students, gridStudent{
			Key:     rec.Student.Key,
			Display: rec.Student.DisplayName,
			Deleted: rec.Student.State != ResolutionLive,
		})
	}
	sort.SliceStable(students, func(i, j int) bool {
		if students[i].Deleted != students[j].Deleted {
			return !students[i].Deleted
		}
		return strings.ToLower(students[i].Display) < strings.ToLower(students[j].Display)
	})
	return students
}

func partitionMonthRuns(dates []string) []monthRun {
	runs := make([]monthRun, 0)
	for i, key := range dates {
		day, _ := dbtime.ParseDay(key)
		label := day.Format("January 2006")
		if len(runs) > 0 && runs[len(runs)-1].Label == label {
			runs[len(runs)-1].EndCol = i
			continue
		}
		runs = append(runs, monthRun{Label: label, StartCol: i, EndCol: i})
	}
	return runs
}

func writeHeader(f *excelize.File, sheet string, dates []string, runs []monthRun, styles *styleSet) error {
	if err := f.MergeCell(sheet, "A1", "A2"); err != nil {
		return fmt.Errorf("merge name header: %w", err)
	}
	_ = f.SetCellValue(sheet, "A1", "Student Name")
	_ = f.SetCellStyle(sheet, "A1", "A2", styles.header(false))

	for _, run := range runs {
		startCell, _ := excelize.CoordinatesToCellName(run.StartCol+2, 1)
		endCell, _ := excelize.CoordinatesToCellName(run.EndCol+2, 1)
		if startCell != endCell {
			if err := f.MergeCell(sheet, startCell, endCell); err != nil {
				return fmt.Errorf("merge month band: %w", err)
			}
		}
		_ = f.SetCellValue(sheet, startCell, run.Label)
		_ = f.SetCellStyle(sheet, startCell, endCell, styles.header(true))
	}

	monthStarts := monthStartSet(runs)
	for i, key := range dates {
		cell, _ := excelize.CoordinatesToCellName(i+2, 2)
		day, _ := dbtime.ParseDay(key)
		_ = f.SetCellValue(sheet, cell, day.Format("02 Jan"))
		_ = f.SetCellStyle(sheet, cell, cell, styles.dateHeader(monthStarts[i]))
	}
	return nil
}

func writeRows(
	f *excelize.File,
	sheet string,
	dates []string,
	students []gridStudent,
	runs []monthRun,
	cells map[string]AttendanceRecord,
	emptyCell string,
	styles *styleSet,
) error {
	monthStarts := monthStartSet(runs)

	for si, student := range students {
		row := si + 3 // dua baris header
		zebra := row%2 == 0

		nameCell, _ := excelize.CoordinatesToCellName(1, row)
		_ = f.SetCellValue(sheet, nameCell, student.Display)
		if err := f.SetCellStyle(sheet, nameCell, nameCell, styles.data(zebra, "", false)); err != nil {
			return fmt.Errorf("style name cell: %w", err)
		}

		for di, key := range dates {
			cell, _ := excelize.CoordinatesToCellName(di+2, row)
			text := emptyCell
			status := ""
			if rec, ok := cells[student.Key+"|"+key]; ok {
				status = rec.Status
				text = rec.Status
				if rec.Remarks != "" {
					text = fmt.Sprintf("%s (%s)", rec.Status, rec.Remarks)
				}
			}
			_ = f.SetCellValue(sheet, cell, text)
			if err := f.SetCellStyle(sheet, cell, cell, styles.data(zebra, status, monthStarts[di])); err != nil {
				return fmt.Errorf("style data cell: %w", err)
			}
		}
	}
	return nil
}

func monthStartSet(runs []monthRun) map[int]bool {
	starts := make(map[int]bool, len(runs))
	for _, run := range runs {
		starts[run.StartCol] = true
	}
	return starts
}

/* =============================== STYLES =============================== */

// excelize menghitung style per definisi, bukan per sel; cache id per
// kombinasi supaya workbook besar tidak menumpuk ratusan definisi identik.
type styleSet struct {
	f     *excelize.File
	cache map[string]int
}

func newStyleSet(f *excelize.File) *styleSet {
	return &styleSet{f: f, cache: make(map[string]int)}
}

func (s *styleSet) get(key string, build func() *excelize.Style) int {
	if id, ok := s.cache[key]; ok {
		return id
	}
	id, err := s.f.NewStyle(build())
	if err != nil {
		return 0
	}
	s.cache[key] = id
	return id
}

func (s *styleSet) header(band bool) int {
	key := "header"
	if band {
		key = "band"
	}
	return s.get(key, func() *excelize.Style {
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fillMonthBand}},
			Border:    thinBox(false),
		}
	})
}

func (s *styleSet) dateHeader(monthStart bool) int {
	key := fmt.Sprintf("datehdr|%t", monthStart)
	return s.get(key, func() *excelize.Style {
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fillMonthBand}},
			Border:    thinBox(monthStart),
		}
	})
}

func (s *styleSet) data(zebra bool, status string, monthStart bool) int {
	fill := ""
	switch {
	case strings.HasPrefix(status, "Present"):
		fill = fillPresent
	case strings.HasPrefix(status, "Absent"):
		fill = fillAbsent
	case zebra:
		fill = fillZebra
	}
	key := fmt.Sprintf("data|%s|%t", fill, monthStart)
	return s.get(key, func() *excelize.Style {
		st := &excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBox(monthStart),
		}
		if fill != "" {
			st.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}}
		}
		return st
	})
}

// Kotak border tipis; sisi kiri jadi tebal di kolom pertama tiap bulan.
func thinBox(thickLeft bool) []excelize.Border {
	left := excelize.Border{Type: "left", Color: "CBD5E1", Style: 1}
	if thickLeft {
		left = excelize.Border{Type: "left", Color: "475569", Style: 5}
	}
	return []excelize.Border{
		left,
		{Type: "right", Color: "CBD5E1", Style: 1},
		{Type: "top", Color: "CBD5E1", Style: 1},
		{Type: "bottom", Color: "CBD5E1", Style: 1},
	}
}

/* ============================== FILENAME ============================== */

// Karakter yang ditolak excelize untuk nama sheet.
var sheetNameReplacer = strings.NewReplacer(
	":", "-", "\\", "-", "/", "-",
	"?", "", "*", "", "[", "(", "]", ")",
)

// sheetName: nama batch bebas teks, nama sheet tidak — sanitasi karakter
// terlarang dan potong ke 31 karakter (per rune, bukan byte, supaya tidak
// memenggal UTF-8 di tengah).
func sheetName(batchName string) string {
	name := strings.TrimSpace(sheetNameReplacer.Replace(batchName))
	if name == "" {
		name = "Attendance"
	}
	if runes := []rune(name); len(runes) > sheetNameMaxLen {
		name = string(runes[:sheetNameMaxLen])
	}
	return name
}

// deriveFilename:
//   - satu bulan          -> <batch>_January_2025.xlsx
//   - multi bulan, 1 tahun-> <batch>_Jan_to_Mar_2025.xlsx
//   - lintas tahun        -> <batch>_Dec2024_to_Feb2025.xlsx
func deriveFilename(batchName string, dates []string) string {
	base := strings.Join(strings.Fields(strings.TrimSpace(batchName)), "_")
	if base == "" {
		base = "attendance"
	}

	first, _ := dbtime.ParseDay(dates[0])
	last, _ := dbtime.ParseDay(dates[len(dates)-1])

	switch {
	case first.Year() == last.Year() && first.Month() == last.Month():
		return fmt.Sprintf("%s_%s_%d.xlsx", base, first.Format("January"), first.Year())
	case first.Year() == last.Year():
		return fmt.Sprintf("%s_%s_to_%s_%d.xlsx", base, first.Format("Jan"), last.Format("Jan"), first.Year())
	default:
		return fmt.Sprintf("%s_%s_to_%s.xlsx", base, first.Format("Jan2006"), last.Format("Jan2006"))
	}
}
