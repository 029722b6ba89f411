package analysis

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gcat/internal/convergence"
	"gcat/internal/digest"
	"gcat/internal/domain"
)

// MinRatio is the smallest refinement ratio the GCI procedure recommends.
const MinRatio = 1.3

// ErrInvalidStudy is returned when a study file is structurally malformed.
var ErrInvalidStudy = errors.New("invalid study")

// Service runs check, gci and study requests.
type Service struct {
	log      *zap.Logger
	defaults domain.SolverSettings
}

// New returns a Service. Studies use defaults for every solver setting they
// do not override. A nil logger discards all output.
func New(log *zap.Logger, defaults domain.SolverSettings) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{log: log.Named("analysis"), defaults: defaults}
}

// Defaults returns the solver settings the service was built with.
func (s *Service) Defaults() domain.SolverSettings { return s.defaults }

// Check derives representative sizes and refinement ratios from element
// counts. Ratios below MinRatio are reported as warnings, not errors.
func (s *Service) Check(req domain.CheckRequest) (domain.CheckReport, error) {
	d, err := dimensionality(req.Dim)
	if err != nil {
		return domain.CheckReport{}, fmt.Errorf("check: %w", err)
	}
	res, err := convergence.Check(
		convergence.Counts{N1: req.N1, N2: req.N2, N3: req.N3}, req.Measure, d,
	)
	if err != nil {
		return domain.CheckReport{}, fmt.Errorf("check: %w", err)
	}
	fp, err := digest.Of(req)
	if err != nil {
		return domain.CheckReport{}, err
	}

	warnings := ratioWarnings(res.R21, res.R32)
	s.warn(warnings)
	s.log.Debug("grid check",
		zap.Float64s("h", []float64{res.H1, res.H2, res.H3}),
		zap.Float64("r21", res.R21),
		zap.Float64("r32", res.R32),
		zap.String("fingerprint", fp.String()),
	)

	req.Dim = int(res.Dim)
	return domain.CheckReport{
		Input:       req,
		H1:          res.H1,
		H2:          res.H2,
		H3:          res.H3,
		R21:         res.R21,
		R32:         res.R32,
		Warnings:    warnings,
		Fingerprint: fp,
	}, nil
}

// GCI runs the full procedure on one quantity. Unlike Check, a ratio at or
// below 1 is an error here because the observed order is undefined.
func (s *Service) GCI(req domain.GCIRequest) (domain.GCIReport, error) {
	rep, err := s.evaluate(
		convergence.Sizes{H1: req.H1, H2: req.H2, H3: req.H3},
		convergence.Triple{F1: req.F1, F2: req.F2, F3: req.F3},
		req.Solver,
	)
	if err != nil {
		return domain.GCIReport{}, fmt.Errorf("gci: %w", err)
	}
	rep.Warnings = append(ratioWarnings(rep.R21, rep.R32), rep.Warnings...)
	s.warn(rep.Warnings)
	return rep, nil
}

// Study evaluates every quantity of st, in order, against its grid sequence.
// The first failing quantity aborts the study.
func (s *Service) Study(st domain.Study) (domain.StudyReport, error) {
	sizes, err := s.studySizes(st)
	if err != nil {
		return domain.StudyReport{}, fmt.Errorf("study %q: %w", st.Name, err)
	}
	if len(st.Quantities) == 0 {
		return domain.StudyReport{}, fmt.Errorf("study %q: %w: no quantities", st.Name, ErrInvalidStudy)
	}

	settings := s.defaults
	if st.SafetyFactor != nil {
		settings.SafetyFactor = *st.SafetyFactor
	}

	r21, r32, err := sizes.Ratios()
	if err != nil {
		return domain.StudyReport{}, fmt.Errorf("study %q: %w", st.Name, err)
	}
	warnings := ratioWarnings(r21, r32)

	reports := make([]domain.QuantityReport, 0, len(st.Quantities))
	for i, q := range st.Quantities {
		if len(q.Values) != 3 {
			return domain.StudyReport{}, fmt.Errorf("study %q: quantity %d (%s): %w: want 3 values, got %d",
				st.Name, i+1, q.Name, ErrInvalidStudy, len(q.Values))
		}
		rep, err := s.evaluate(sizes, convergence.Triple{F1: q.Values[0], F2: q.Values[1], F3: q.Values[2]}, settings)
		if err != nil {
			return domain.StudyReport{}, fmt.Errorf("study %q: quantity %q: %w", st.Name, q.Name, err)
		}
		for _, w := range rep.Warnings {
			warnings = append(warnings, q.Name+": "+w)
		}
		reports = append(reports, domain.QuantityReport{Name: q.Name, GCIReport: rep})
	}

	fp, err := digest.Of(st)
	if err != nil {
		return domain.StudyReport{}, err
	}
	s.warn(warnings)
	s.log.Debug("study evaluated",
		zap.String("study", st.Name),
		zap.Int("quantities", len(reports)),
		zap.String("fingerprint", fp.String()),
	)

	return domain.StudyReport{
		Name:        st.Name,
		H1:          sizes.H1,
		H2:          sizes.H2,
		H3:          sizes.H3,
		R21:         r21,
		R32:         r32,
		Quantities:  reports,
		Warnings:    warnings,
		Fingerprint: fp,
	}, nil
}

// studySizes resolves the representative sizes of a study's grids.
func (s *Service) studySizes(st domain.Study) (convergence.Sizes, error) {
	g := st.Grids
	switch {
	case len(g.Elements) > 0 && len(g.Sizes) > 0:
		return convergence.Sizes{}, fmt.Errorf("%w: grids give both elements and sizes", ErrInvalidStudy)
	case len(g.Sizes) > 0:
		if len(g.Sizes) != 3 {
			return convergence.Sizes{}, fmt.Errorf("%w: want 3 grid sizes, got %d", ErrInvalidStudy, len(g.Sizes))
		}
		return convergence.Sizes{H1: g.Sizes[0], H2: g.Sizes[1], H3: g.Sizes[2]}, nil
	case len(g.Elements) > 0:
		if len(g.Elements) != 3 {
			return convergence.Sizes{}, fmt.Errorf("%w: want 3 element counts, got %d", ErrInvalidStudy, len(g.Elements))
		}
		d, err := dimensionality(g.Dim)
		if err != nil {
			return convergence.Sizes{}, err
		}
		res, err := convergence.Check(
			convergence.Counts{N1: g.Elements[0], N2: g.Elements[1], N3: g.Elements[2]}, g.Measure, d,
		)
		if err != nil {
			return convergence.Sizes{}, err
		}
		return res.Sizes, nil
	}
	return convergence.Sizes{}, fmt.Errorf("%w: grids need elements or sizes", ErrInvalidStudy)
}

// evaluate runs the procedure for one quantity and builds its report. Only
// warnings specific to the quantity are attached; ratio warnings belong to
// the grid sequence.
func (s *Service) evaluate(sizes convergence.Sizes, f convergence.Triple, settings domain.SolverSettings) (domain.GCIReport, error) {
	opts := Options(settings)
	res, err := convergence.Analyze(sizes, f, &opts)
	if err != nil {
		return domain.GCIReport{}, err
	}

	req := domain.GCIRequest{
		H1: sizes.H1, H2: sizes.H2, H3: sizes.H3,
		F1: f.F1, F2: f.F2, F3: f.F3,
		Solver: settings,
	}
	fp, err := digest.Of(req)
	if err != nil {
		return domain.GCIReport{}, err
	}

	var extErr *float64
	if res.Extrapolated != 0 {
		e, err := convergence.ExtrapolatedRelativeError(f.F1, res.Extrapolated)
		if err != nil {
			return domain.GCIReport{}, err
		}
		extErr = &e
	}

	var warnings []string
	if res.Oscillatory {
		warnings = append(warnings, "oscillatory convergence: (f3-f2)/(f2-f1) < 0")
	}

	s.log.Debug("observed order",
		zap.Float64("p", res.Order),
		zap.Int("iterations", res.Iterations),
		zap.Bool("closed_form", res.ClosedForm),
		zap.Bool("oscillatory", res.Oscillatory),
		zap.Float64("asymptotic_ratio", res.AsymptoticRatio),
	)

	return domain.GCIReport{
		Input:             req,
		Order:             res.Order,
		Iterations:        res.Iterations,
		Oscillatory:       res.Oscillatory,
		ClosedForm:        res.ClosedForm,
		R21:               res.R21,
		R32:               res.R32,
		Extrapolated:      res.Extrapolated,
		ExtrapolatedError: extErr,
		RelativeError21:   res.RelativeError21,
		RelativeError32:   res.RelativeError32,
		GCI21Fine:         res.GCI21Fine,
		GCI21Coarse:       res.GCI21Coarse,
		GCI32Fine:         res.GCI32Fine,
		GCI32Coarse:       res.GCI32Coarse,
		AsymptoticRatio:   res.AsymptoticRatio,
		Warnings:          warnings,
		Fingerprint:       fp,
	}, nil
}

func (s *Service) warn(warnings []string) {
	for _, w := range warnings {
		s.log.Warn(w)
	}
}

// Options maps solver settings onto calculator options.
func Options(ss domain.SolverSettings) convergence.Options {
	return convergence.Options{
		Tolerance:     ss.Tolerance,
		MaxIterations: ss.MaxIterations,
		Relaxation:    ss.Relaxation,
		MaxResidual:   ss.MaxResidual,
		SafetyFactor:  ss.SafetyFactor,
	}
}

// Settings is the inverse of Options.
func Settings(o convergence.Options) domain.SolverSettings {
	return domain.SolverSettings{
		SafetyFactor:  o.SafetyFactor,
		Tolerance:     o.Tolerance,
		MaxIterations: o.MaxIterations,
		Relaxation:    o.Relaxation,
		MaxResidual:   o.MaxResidual,
	}
}

func dimensionality(d int) (convergence.Dimensionality, error) {
	if d < 0 || d > int(convergence.Dim3) {
		return 0, &convergence.InputError{Name: "dimensionality", Value: float64(d), Reason: "must be 1, 2 or 3"}
	}
	return convergence.Dimensionality(d), nil
}

func ratioWarnings(r21, r32 float64) []string {
	var out []string
	for _, r := range []struct {
		name string
		v    float64
	}{{"r21", r21}, {"r32", r32}} {
		switch {
		case r.v <= 1:
			out = append(out, fmt.Sprintf("%s = %.6f <= 1: grids are not ordered fine to coarse", r.name, r.v))
		case r.v < MinRatio:
			out = append(out, fmt.Sprintf("%s = %.6f < %.1f: refinement may be too weak for a reliable GCI", r.name, r.v, MinRatio))
		}
	}
	return out
}

// Compile-time assertion that Service implements domain.AnalysisService.
var _ domain.AnalysisService = (*Service)(nil)
