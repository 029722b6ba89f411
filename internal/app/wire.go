package app

import (
	"go.uber.org/zap"

	"gcat/internal/domain"
	"gcat/internal/services/analysis"
	"gcat/internal/store"
)

// Wire bundles the stores and services for the CLI.
type Wire struct {
	Config   *Config
	Log      *zap.Logger
	Analysis *analysis.Service
	Studies  domain.StudyStore
	Reports  domain.ReportStore
}

// NewWire constructs the dependency graph from cfg. A nil logger discards
// all output.
func NewWire(cfg *Config, log *zap.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	// File-based stores
	studyStore := store.NewStudyFileStore()
	reportStore := store.NewReportFileStore()

	log.Debug("wired",
		zap.String("format", cfg.Mode().String()),
		zap.Float64("safety_factor", cfg.Solver.SafetyFactor),
		zap.Float64("tolerance", cfg.Solver.Tolerance),
		zap.Int("max_iterations", cfg.Solver.MaxIterations),
		zap.Float64("relaxation", cfg.Solver.Relaxation),
	)

	return &Wire{
		Config:   cfg,
		Log:      log,
		Analysis: analysis.New(log, cfg.Solver),
		Studies:  studyStore,
		Reports:  reportStore,
	}, nil
}
