package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gcat/internal/app"
	"gcat/internal/logging"
)

// Version is stamped at build time with -ldflags "-X gcat/cmd/gcat/commands.Version=...".
var Version = "dev"

// state is shared by the root command and its subcommands for one run.
type state struct {
	configPath string
	format     string
	output     string
	verbose    bool

	logger *zap.Logger
	wire   *app.Wire
}

// Execute runs the gcat CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:           "gcat",
		Short:         "Grid convergence analysis (GCI) for simulation studies",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(st.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = st.format
			}

			st.logger, err = logging.New(st.verbose)
			if err != nil {
				return err
			}
			st.wire, err = app.NewWire(cfg, st.logger)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if st.logger != nil {
				_ = st.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&st.configPath, "config", "", "YAML config file (missing file means defaults)")
	root.PersistentFlags().StringVar(&st.format, "format", "table", "output format: table, markdown or json")
	root.PersistentFlags().StringVarP(&st.output, "output", "o", "", "write the report to this file instead of stdout")
	root.PersistentFlags().BoolVarP(&st.verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(checkCmd(st), gciCmd(st), studyCmd(st))
	return root
}
