package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"gcat/internal/domain"
)

// StudyFileStore reads and writes study definitions as YAML or JSON files.
type StudyFileStore struct{}

// NewStudyFileStore returns a StudyFileStore.
func NewStudyFileStore() *StudyFileStore { return &StudyFileStore{} }

// LoadStudy decodes the study at path. Unlike config files, a missing study
// is an error.
func (s *StudyFileStore) LoadStudy(path string) (domain.Study, error) {
	var st domain.Study
	ok, err := ReadYAML(path, &st)
	if err != nil {
		return domain.Study{}, fmt.Errorf("load study: %w", err)
	}
	if !ok {
		return domain.Study{}, fmt.Errorf("load study %s: %w", path, os.ErrNotExist)
	}
	if st.Name == "" {
		st.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return st, nil
}

// SaveStudy writes st to path, as JSON when the extension is .json and as
// YAML otherwise.
func (s *StudyFileStore) SaveStudy(path string, st domain.Study) error {
	var (
		b   []byte
		err error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		b, err = json.MarshalIndent(st, "", "  ")
		b = append(b, '\n')
	} else {
		b, err = yaml.Marshal(st)
	}
	if err != nil {
		return fmt.Errorf("save study: %w", err)
	}
	if err := writeFile(path, b, 0o644); err != nil {
		return fmt.Errorf("save study: %w", err)
	}
	return nil
}

// Compile-time assertion that StudyFileStore implements domain.StudyStore.
var _ domain.StudyStore = (*StudyFileStore)(nil)
