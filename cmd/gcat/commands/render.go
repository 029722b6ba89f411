package commands

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gcat/internal/format"
)

// render writes a report in the configured format, to --output when set and
// to the command's stdout otherwise. Table modes list warnings below the table;
// JSON carries them in the report itself.
func (st *state) render(cmd *cobra.Command, report any, warnings []string, table func(format.Mode) string) error {
	mode := st.wire.Config.Mode()

	var buf bytes.Buffer
	if mode == format.JSON {
		b, err := format.EncodeJSON(report)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		buf.Write(b)
	} else {
		buf.WriteString(table(mode))
		buf.WriteByte('\n')
		for _, w := range warnings {
			fmt.Fprintf(&buf, "warning: %s\n", w)
		}
	}

	if st.output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := st.wire.Reports.WriteReport(st.output, buf.Bytes()); err != nil {
		return err
	}
	st.logger.Debug("report written", zap.String("path", st.output), zap.String("format", mode.String()))
	return nil
}
