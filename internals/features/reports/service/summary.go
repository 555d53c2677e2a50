package service

import (
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// Counter status yang selalu muncul di output, meski nol.
var seededStatuses = []string{"Present", "Absent", "Holiday"}

// BatchSummary = hitungan status per batch. Counts menyimpan juga status
// tak dikenal yang ditemukan di data lama — pembaca permisif.
type BatchSummary struct {
	BatchID   uuid.UUID
	BatchName string
	Counts    map[string]int
}

// MarshalJSON meratakan counter ke level atas:
// {"batch_id":"..","batch":"..","Present":2,"Absent":1,"Holiday":0}.
func (s BatchSummary) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(s.Counts)+2)
	flat["batch_id"] = s.BatchID
	flat["batch"] = s.BatchName
	for _, status := range seededStatuses {
		flat[status] = s.Counts[status]
	}
	for status, n := range s.Counts {
		flat[status] = n
	}
	return sonic.Marshal(flat)
}

// SummarizeAttendance menghitung status per batch, urut sesuai kemunculan
// pertama batch di input. Entri yang batch-nya sudah dihapus dilewati:
// tidak ada baris bermakna yang bisa ditampilkan untuknya.
func SummarizeAttendance(records []AttendanceRecord) []BatchSummary {
	index := make(map[uuid.UUID]int)
	summaries := make([]BatchSummary, 0)

	for _, rec := range records {
		if rec.Batch == nil {
			continue
		}
		i, ok := index[rec.Batch.ID]
		if !ok {
			i = len(summaries)
			index[rec.Batch.ID] = i
			counts := make(map[string]int, len(seededStatuses))
			for _, status := range seededStatuses {
				counts[status] = 0
			}
			summaries = append(summaries, BatchSummary{
				BatchID:   rec.Batch.ID,
				BatchName: rec.Batch.Name,
				Counts:    counts,
			})
		}
		summaries[i].Counts[rec.Status]++
	}
	return summaries
}
