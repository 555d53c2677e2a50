package service

import (
	"fmt"
	"strings"

	batchmodel "tuitiontrack_backend/internals/features/school/batches/model"
	"tuitiontrack_backend/internals/features/school/syllabus/model"
)

// ValidateEntries mencocokkan subject/chapter tiap entry dengan definisi
// subjects milik batch. Batch tanpa definisi subjects tidak divalidasi —
// daftar kosong berarti bebas, bukan "semua salah".
func ValidateEntries(batch *batchmodel.BatchModel, entries []model.SyllabusEntry) error {
	subjects, err := batch.Subjects()
	if err != nil {
		return fmt.Errorf("decode batch subjects: %w", err)
	}
	if len(subjects) == 0 {
		return nil
	}

	chapters := make(map[string]map[string]struct{}, len(subjects))
	for _, s := range subjects {
		set := make(map[string]struct{}, len(s.Chapters))
		for _, ch := range s.Chapters {
			set[ch] = struct{}{}
		}
		chapters[s.Name] = set
	}

	for i, e := range entries {
		set, ok := chapters[e.Subject]
		if !ok {
			return fmt.Errorf("entry %d: subject '%s' tidak ada di batch ini (valid: %s)",
				i+1, e.Subject, strings.Join(subjectNames(subjects), ", "))
		}
		if len(set) > 0 {
			if _, ok := set[e.Chapter]; !ok {
				return fmt.Errorf("entry %d: chapter '%s' tidak ada di subject '%s'", i+1, e.Chapter, e.Subject)
			}
		}
	}
	return nil
}

func subjectNames(subjects []batchmodel.Subject) []string {
	names := make([]string, 0, len(subjects))
	for _, s := range subjects {
		names = append(names, s.Name)
	}
	return names
}
