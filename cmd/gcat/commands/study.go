package commands

import (
	"github.com/spf13/cobra"

	"gcat/internal/domain"
	"gcat/internal/format"
)

func studyCmd(st *state) *cobra.Command {
	var normalized string

	cmd := &cobra.Command{
		Use:   "study FILE",
		Short: "Evaluate every quantity of a study file",
		Long: `Loads a YAML or JSON study (one grid sequence, any number of named
quantities) and runs the GCI procedure on each quantity in order.

Example file:
  name: backward-facing step
  grids:
    elements: [7250, 4250, 2500]
    measure: 0.5e6
    dim: 2
  quantities:
    - name: reattachment length
      values: [6.063, 5.972, 5.863]

With --normalized, the study is also written back with its grids resolved to
representative sizes and the effective safety factor filled in.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			study, err := st.wire.Studies.LoadStudy(args[0])
			if err != nil {
				return err
			}
			rep, err := st.wire.Analysis.Study(study)
			if err != nil {
				return err
			}
			if normalized != "" {
				if err := st.wire.Studies.SaveStudy(normalized, normalize(study, rep)); err != nil {
					return err
				}
			}
			return st.render(cmd, rep, rep.Warnings, func(m format.Mode) string {
				return studyTable(m, rep)
			})
		},
	}
	cmd.Flags().StringVar(&normalized, "normalized", "", "also write the study with resolved grid sizes to this file (.yaml or .json)")
	return cmd
}

// normalize returns st with its grids given as sizes and its safety factor
// explicit, so re-evaluating it needs neither element counts nor config.
func normalize(st domain.Study, rep domain.StudyReport) domain.Study {
	st.Name = rep.Name
	st.Grids = domain.StudyGrids{Sizes: []float64{rep.H1, rep.H2, rep.H3}}
	fs := rep.Quantities[0].Input.Solver.SafetyFactor
	st.SafetyFactor = &fs
	return st
}

func studyTable(m format.Mode, rep domain.StudyReport) string {
	tb := format.NewTable(m)
	if m != format.Markdown {
		tb.Title(rep.Name + "  (r21 = " + format.Fixed(rep.R21) + ", r32 = " + format.Fixed(rep.R32) + ")")
	}
	tb.Header("Quantity", "p", "f_ext21", "e21", "GCI21 fine", "GCI32 fine", "Ratio")
	cols := make([]format.ColumnConfig, 0, 6)
	for i := 2; i <= 7; i++ {
		cols = append(cols, format.ColumnConfig{Number: i, Align: format.AlignRight})
	}
	tb.Columns(cols...)
	for _, q := range rep.Quantities {
		tb.Row(
			q.Name,
			format.Fixed(q.Order),
			format.Sci(q.Extrapolated),
			format.Sci(q.RelativeError21),
			format.Percent(q.GCI21Fine),
			format.Percent(q.GCI32Fine),
			format.Fixed(q.AsymptoticRatio),
		)
	}
	return tb.String()
}
