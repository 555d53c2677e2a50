package configs

import (
	"encoding/json"
	"log"
	"os"
)

// SubjectConfig is one subject with its ordered chapter list, as stored on a batch.
type SubjectConfig struct {
	Name     string   `json:"name"`
	Chapters []string `json:"chapters"`
}

// BatchSubjectMap maps a batch type to the default subjects allocated at batch creation.
// Loaded once at startup and injected into the batch controller — business code
// never reads this as a global.
type BatchSubjectMap map[string][]SubjectConfig

// DefaultBatchSubjectMap returns the built-in batch type → subjects table.
func DefaultBatchSubjectMap() BatchSubjectMap {
	return BatchSubjectMap{
		"Ammar": {
			{Name: "Aqaed", Chapters: []string{"NA", "Ch1", "Ch2", "Ch3"}},
			{Name: "Ahkaam", Chapters: []string{"NA", "Ch1", "Ch2"}},
			{Name: "Special topic", Chapters: []string{"NA", "chp1"}},
		},
		"Miqdaad": {
			{Name: "Math", Chapters: []string{"NA", "Numbers", "Algebra I", "Algebra II"}},
			{Name: "Science", Chapters: []string{"NA", "Biology Basics", "Chemistry Intro"}},
			{Name: "Special topic", Chapters: []string{"NA", "Ch1", "Ch2"}},
		},
		"Bilal": {
			{Name: "Quran", Chapters: []string{"NA", "Surah 1", "Surah 2", "Surah 3"}},
			{Name: "Aqaid", Chapters: []string{"NA", "Tawheed", "Imaan"}},
		},
		"Abuzar": {
			{Name: "History", Chapters: []string{"Islamic History I", "Islamic History II", "Ohud"}},
			{Name: "Arabic", Chapters: []string{"NA", "Alphabet", "Basic Phrases"}},
			{Name: "Quran", Chapters: []string{"NA", "Surah1", "Surah2"}},
		},
		"Salman": {
			{Name: "Computer", Chapters: []string{"NA", "Intro", "Basics", "Advanced"}},
			{Name: "Math", Chapters: []string{"NA", "Arithmetic", "Algebra"}},
		},
	}
}

// LoadBatchSubjectMap reads BATCH_SUBJECTS_FILE (JSON, same shape as the default
// map) when set, otherwise falls back to the built-in table.
func LoadBatchSubjectMap() BatchSubjectMap {
	path := os.Getenv("BATCH_SUBJECTS_FILE")
	if path == "" {
		return DefaultBatchSubjectMap()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️ Gagal baca BATCH_SUBJECTS_FILE (%s): %v — pakai default", path, err)
		return DefaultBatchSubjectMap()
	}
	var m BatchSubjectMap
	if err := json.Unmarshal(raw, &m); err != nil {
		log.Printf("⚠️ BATCH_SUBJECTS_FILE bukan JSON valid: %v — pakai default", err)
		return DefaultBatchSubjectMap()
	}
	return m
}
