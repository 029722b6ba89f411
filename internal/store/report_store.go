package store

import (
	"fmt"

	"gcat/internal/domain"
)

// ReportFileStore writes rendered reports so readers never observe a
// partially written file.
type ReportFileStore struct{}

// NewReportFileStore returns a ReportFileStore.
func NewReportFileStore() *ReportFileStore { return &ReportFileStore{} }

// WriteReport atomically replaces the file at path with data.
func (s *ReportFileStore) WriteReport(path string, data []byte) error {
	if err := writeFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Compile-time assertion that ReportFileStore implements domain.ReportStore.
var _ domain.ReportStore = (*ReportFileStore)(nil)
