package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"gcat/internal/convergence"
	"gcat/internal/domain"
	"gcat/internal/format"
)

func gciCmd(st *state) *cobra.Command {
	var (
		req    domain.GCIRequest
		solver domain.SolverSettings
	)

	cmd := &cobra.Command{
		Use:   "gci",
		Short: "Compute the observed order, extrapolated value and GCI for one quantity",
		Long: `Runs the Celik/Roache procedure on solutions f1, f2, f3 obtained on grids
with representative sizes h1 < h2 < h3. Solver flags default to the
configuration (file, then GCAT_* environment).

Example:
  gcat gci --h1 8.304548 --h2 10.846523 --h3 14.142136 --f1 1 --f2 1.02 --f3 1.08`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Solver = st.wire.Analysis.Defaults()
			if cmd.Flags().Changed("fs") {
				req.Solver.SafetyFactor = solver.SafetyFactor
			}
			if cmd.Flags().Changed("tol") {
				req.Solver.Tolerance = solver.Tolerance
			}
			if cmd.Flags().Changed("max-iter") {
				req.Solver.MaxIterations = solver.MaxIterations
			}
			if cmd.Flags().Changed("relax") {
				req.Solver.Relaxation = solver.Relaxation
			}

			rep, err := st.wire.Analysis.GCI(req)
			if err != nil {
				return err
			}
			return st.render(cmd, rep, rep.Warnings, func(m format.Mode) string {
				return gciTable(m, rep)
			})
		},
	}

	cmd.Flags().Float64Var(&req.H1, "h1", 0, "representative size of the fine grid")
	cmd.Flags().Float64Var(&req.H2, "h2", 0, "representative size of the medium grid")
	cmd.Flags().Float64Var(&req.H3, "h3", 0, "representative size of the coarse grid")
	cmd.Flags().Float64Var(&req.F1, "f1", 0, "solution on the fine grid")
	cmd.Flags().Float64Var(&req.F2, "f2", 0, "solution on the medium grid")
	cmd.Flags().Float64Var(&req.F3, "f3", 0, "solution on the coarse grid")
	for _, f := range []string{"h1", "h2", "h3", "f1", "f2", "f3"} {
		_ = cmd.MarkFlagRequired(f)
	}

	cmd.Flags().Float64Var(&solver.SafetyFactor, "fs", convergence.DefaultSafetyFactor, "safety factor Fs (3 for two-grid studies)")
	cmd.Flags().Float64Var(&solver.Tolerance, "tol", convergence.DefaultTolerance, "convergence tolerance on p")
	cmd.Flags().IntVar(&solver.MaxIterations, "max-iter", convergence.DefaultMaxIterations, "iteration cap for p")
	cmd.Flags().Float64Var(&solver.Relaxation, "relax", convergence.DefaultRelaxation, "under-relaxation factor in (0, 1]")
	return cmd
}

func gciTable(m format.Mode, rep domain.GCIReport) string {
	tb := format.NewTable(m)
	tb.Header("Quantity", "Value")
	tb.Columns(format.ColumnConfig{Number: 2, Align: format.AlignRight})

	order := format.Fixed(rep.Order)
	if rep.ClosedForm {
		order += " (closed form)"
	}
	tb.Row("p", order)
	tb.Row("iterations", strconv.Itoa(rep.Iterations))
	tb.Row("oscillatory", format.BoolMark(rep.Oscillatory))
	tb.Row("r21", format.Fixed(rep.R21))
	tb.Row("r32", format.Fixed(rep.R32))
	tb.Row("f_ext21", format.Sci(rep.Extrapolated))
	tb.Row("e21", format.Sci(rep.RelativeError21))
	tb.Row("e32", format.Sci(rep.RelativeError32))
	tb.Row("e_ext21", format.OptionalSci(rep.ExtrapolatedError))
	tb.Row("GCI21 fine", format.Percent(rep.GCI21Fine))
	tb.Row("GCI21 coarse", format.Percent(rep.GCI21Coarse))
	tb.Row("GCI32 fine", format.Percent(rep.GCI32Fine))
	tb.Row("GCI32 coarse", format.Percent(rep.GCI32Coarse))
	tb.Row("asymptotic ratio", format.Fixed(rep.AsymptoticRatio))
	tb.Row("safety factor", strconv.FormatFloat(rep.Input.Solver.SafetyFactor, 'g', -1, 64))
	tb.Row("fingerprint", rep.Fingerprint.String())
	return tb.String()
}
