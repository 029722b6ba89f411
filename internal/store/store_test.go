package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcat/internal/domain"
	"gcat/internal/store"
)

const stepYAML = `name: backward-facing step
grids:
  elements: [7250, 4250, 2500]
  measure: 500000
  dim: 2
safety_factor: 1.25
quantities:
  - name: reattachment length
    values: [6.063, 5.972, 5.863]
`

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadStudy_YAML(t *testing.T) {
	var ss domain.StudyStore = store.NewStudyFileStore()

	st, err := ss.LoadStudy(writeTemp(t, "step.yaml", stepYAML))
	require.NoError(t, err)

	fs := 1.25
	want := domain.Study{
		Name:         "backward-facing step",
		Grids:        domain.StudyGrids{Elements: []int{7250, 4250, 2500}, Measure: 500000, Dim: 2},
		SafetyFactor: &fs,
		Quantities: []domain.Quantity{
			{Name: "reattachment length", Values: []float64{6.063, 5.972, 5.863}},
		},
	}
	assert.Empty(t, cmp.Diff(want, st))
}

func TestLoadStudy_JSON(t *testing.T) {
	body := `{"grids": {"sizes": [1, 2, 4]}, "quantities": [{"name": "q", "values": [1, 2, 4]}]}`
	st, err := store.NewStudyFileStore().LoadStudy(writeTemp(t, "cavity.json", body))
	require.NoError(t, err)

	assert.Equal(t, "cavity", st.Name, "name defaults to the file stem")
	assert.Equal(t, []float64{1, 2, 4}, st.Grids.Sizes)
	assert.Nil(t, st.SafetyFactor)
}

func TestLoadStudy_Missing(t *testing.T) {
	_, err := store.NewStudyFileStore().LoadStudy(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadStudy_UnknownField(t *testing.T) {
	_, err := store.NewStudyFileStore().LoadStudy(writeTemp(t, "bad.yaml", "name: x\ngrid: {}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestSaveStudy_RoundTrip(t *testing.T) {
	ss := store.NewStudyFileStore()
	orig, err := ss.LoadStudy(writeTemp(t, "step.yaml", stepYAML))
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"copy.yaml", "copy.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, ss.SaveStudy(path, orig))

		back, err := ss.LoadStudy(path)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(orig, back), name)
	}
}

func TestWriteReport_AtomicReplace(t *testing.T) {
	var rs domain.ReportStore = store.NewReportFileStore()
	dir := t.TempDir()
	path := filepath.Join(dir, "report.md")

	require.NoError(t, rs.WriteReport(path, []byte("first")))
	require.NoError(t, rs.WriteReport(path, []byte("second")))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestWriteReport_MissingDir(t *testing.T) {
	err := store.NewReportFileStore().WriteReport(filepath.Join(t.TempDir(), "no", "such", "r.txt"), nil)
	assert.Error(t, err)
}

func TestReadYAML_MissingIsNotError(t *testing.T) {
	out := map[string]int{"keep": 1}
	ok, err := store.ReadYAML(filepath.Join(t.TempDir(), "absent.yaml"), &out)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, map[string]int{"keep": 1}, out)
}

func TestReadYAML_EmptyFile(t *testing.T) {
	var out struct {
		A int `yaml:"a"`
	}
	ok, err := store.ReadYAML(writeTemp(t, "empty.yaml", ""), &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, out.A)
}
