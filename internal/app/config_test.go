package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcat/internal/app"
	"gcat/internal/convergence"
	"gcat/internal/format"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gcat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := app.Load("")
	require.NoError(t, err)

	assert.Equal(t, app.DefaultConfig(), cfg)
	assert.Equal(t, convergence.DefaultSafetyFactor, cfg.Solver.SafetyFactor)
	assert.Equal(t, convergence.DefaultMaxIterations, cfg.Solver.MaxIterations)
	assert.Equal(t, format.ASCII, cfg.Mode())
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := app.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, app.DefaultConfig(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	cfg, err := app.Load(writeConfig(t, "format: markdown\nsolver:\n  relaxation: 0.5\n"))
	require.NoError(t, err)

	assert.Equal(t, format.Markdown, cfg.Mode())
	assert.Equal(t, 0.5, cfg.Solver.Relaxation)
	assert.Equal(t, convergence.DefaultTolerance, cfg.Solver.Tolerance, "unset keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv(app.EnvSafetyFactor, "3")
	t.Setenv(app.EnvTolerance, "1e-9")
	t.Setenv(app.EnvMaxIter, "250")
	t.Setenv(app.EnvFormat, "json")

	cfg, err := app.Load(writeConfig(t, "format: markdown\nsolver:\n  safety_factor: 1.5\n"))
	require.NoError(t, err)

	assert.Equal(t, 3.0, cfg.Solver.SafetyFactor)
	assert.Equal(t, 1e-9, cfg.Solver.Tolerance)
	assert.Equal(t, 250, cfg.Solver.MaxIterations)
	assert.Equal(t, format.JSON, cfg.Mode())
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv(app.EnvMaxIter, "many")
	_, err := app.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), app.EnvMaxIter)
}

func TestLoad_BadFile(t *testing.T) {
	_, err := app.Load(writeConfig(t, "solver: [1, 2]\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Format = "yaml"
	assert.Error(t, cfg.Validate())

	cfg = app.DefaultConfig()
	cfg.Solver.SafetyFactor = 0
	assert.ErrorIs(t, cfg.Validate(), convergence.ErrInvalidInput)
}

func TestNewWire(t *testing.T) {
	w, err := app.NewWire(app.DefaultConfig(), nil)
	require.NoError(t, err)
	require.NotNil(t, w.Analysis)
	assert.Equal(t, app.DefaultConfig().Solver, w.Analysis.Defaults())
	assert.NotNil(t, w.Studies)
	assert.NotNil(t, w.Reports)

	bad := app.DefaultConfig()
	bad.Solver.Relaxation = 2
	_, err = app.NewWire(bad, nil)
	assert.ErrorIs(t, err, convergence.ErrInvalidInput)
}
