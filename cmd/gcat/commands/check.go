package commands

import (
	"github.com/spf13/cobra"

	"gcat/internal/domain"
	"gcat/internal/format"
)

func checkCmd(st *state) *cobra.Command {
	var (
		req                  domain.CheckRequest
		length, area, volume float64
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Derive representative sizes and refinement ratios from element counts",
		Long: `Computes h = (measure/N)^(1/d) for three grids ordered fine to coarse and
the ratios r21 = h2/h1, r32 = h3/h2. The measure flag fixes d: --length for
1D, --area for 2D, --volume for 3D. Ratios below 1.3 are reported as
warnings.

Example:
  gcat check --n1 7250 --n2 4250 --n3 2500 --area 0.5e6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case cmd.Flags().Changed("length"):
				req.Measure, req.Dim = length, 1
			case cmd.Flags().Changed("volume"):
				req.Measure, req.Dim = volume, 3
			default:
				req.Measure, req.Dim = area, 2
			}

			rep, err := st.wire.Analysis.Check(req)
			if err != nil {
				return err
			}
			return st.render(cmd, rep, rep.Warnings, func(m format.Mode) string {
				return checkTable(m, rep)
			})
		},
	}

	cmd.Flags().IntVar(&req.N1, "n1", 0, "element count of the fine grid")
	cmd.Flags().IntVar(&req.N2, "n2", 0, "element count of the medium grid")
	cmd.Flags().IntVar(&req.N3, "n3", 0, "element count of the coarse grid")
	cmd.Flags().Float64Var(&length, "length", 0, "domain length (1D)")
	cmd.Flags().Float64Var(&area, "area", 0, "domain area (2D)")
	cmd.Flags().Float64Var(&volume, "volume", 0, "domain volume (3D)")
	for _, f := range []string{"n1", "n2", "n3"} {
		_ = cmd.MarkFlagRequired(f)
	}
	cmd.MarkFlagsMutuallyExclusive("length", "area", "volume")
	cmd.MarkFlagsOneRequired("length", "area", "volume")
	return cmd
}

func checkTable(m format.Mode, rep domain.CheckReport) string {
	tb := format.NewTable(m)
	tb.Header("Grid", "N", "h", "Ratio")
	tb.Columns(
		format.ColumnConfig{Number: 2, Align: format.AlignRight},
		format.ColumnConfig{Number: 3, Align: format.AlignRight},
		format.ColumnConfig{Number: 4, Align: format.AlignRight},
	)
	tb.Row("1 (fine)", rep.Input.N1, format.Fixed(rep.H1), "")
	tb.Row("2 (medium)", rep.Input.N2, format.Fixed(rep.H2), "r21 = "+format.Fixed(rep.R21))
	tb.Row("3 (coarse)", rep.Input.N3, format.Fixed(rep.H3), "r32 = "+format.Fixed(rep.R32))
	return tb.String()
}
